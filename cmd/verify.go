package cmd

import (
	"errors"
	"fmt"

	"github.com/inovacc/focset/internal/dlc"
	"github.com/spf13/cobra"
)

var errOutOfSync = errors.New("target files are out of sync")

var (
	verifyExe    string
	verifyOutput = outputTable
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that both DLC files list the same identifiers",
	Long: `Compare the UniqueId values in Transcustomization.ini and Transgame.int.

Identifiers found in only one file usually come from an append that failed
half way. The command exits with status 1 when the files differ.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify(app, verifyExe, verifyOutput)
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVar(&verifyExe, "exe", "", "Game executable (default: the last one used)")
	verifyCmd.Flags().VarP(&verifyOutput, "output", "o", "Output format: table, json, yaml")
}

func runVerify(env *appEnv, exeFlag string, format outputFormat) error {
	targets, err := env.targets(exeFlag)
	if err != nil {
		return err
	}

	div, err := dlc.CompareTargets(targets)
	if err != nil {
		return err
	}

	if format != outputTable {
		if err := writeOutput(env.stdout, format, div); err != nil {
			return err
		}
	} else {
		printDivergence(env, targets, div)
	}

	if !div.InSync() {
		return fmt.Errorf("%w: %d only in %s, %d only in %s", errOutOfSync,
			len(div.OnlyPrimary), dlc.PrimaryFileName,
			len(div.OnlySecondary), dlc.SecondaryFileName)
	}

	return nil
}

func printDivergence(env *appEnv, targets dlc.Targets, div dlc.Divergence) {
	if div.InSync() {
		_, _ = fmt.Fprintf(env.stdout, "%s and %s list the same identifiers.\n",
			dlc.PrimaryFileName, dlc.SecondaryFileName)

		return
	}

	for _, id := range div.OnlyPrimary {
		_, _ = fmt.Fprintf(env.stdout, "%s only in %s\n", id, targets.Primary)
	}

	for _, id := range div.OnlySecondary {
		_, _ = fmt.Fprintf(env.stdout, "%s only in %s\n", id, targets.Secondary)
	}
}
