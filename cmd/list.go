package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/inovacc/focset/internal/core"
	"github.com/inovacc/focset/internal/dlc"
	"github.com/spf13/cobra"
)

var (
	listExe    string
	listOutput = outputTable
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the part entries in Transcustomization.ini",
	Long: `List every part entry found in Transcustomization.ini next to the game
executable, in file order.

Examples:
  focset list
  focset list --exe ~/Games/FOC/Binaries/TFOC.exe --output yaml`,
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(app, listExe, listOutput)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listExe, "exe", "", "Game executable (default: the last one used)")
	listCmd.Flags().VarP(&listOutput, "output", "o", "Output format: table, json, yaml")
}

func runList(env *appEnv, exeFlag string, format outputFormat) error {
	targets, err := env.targets(exeFlag)
	if err != nil {
		return err
	}

	entries, err := dlc.ReadEntries(targets.Primary)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", targets.Primary, err)
	}

	if entries == nil {
		entries = []dlc.Entry{}
	}

	if format != outputTable {
		return writeOutput(env.stdout, format, entries)
	}

	if len(entries) == 0 {
		_, _ = fmt.Fprintf(env.stdout, "No part entries in %s.\n", targets.Primary)
		_, _ = fmt.Fprintln(env.stdout, "Add one with: focset add")

		return nil
	}

	w := tabwriter.NewWriter(env.stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "UNIQUEID\tNAME\tTYPE\tCLASSES\tPARTS")

	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			e.UniqueID,
			truncateString(e.FriendlyName, 32),
			e.PartType,
			strings.Join(e.Specialty, ","),
			len(e.PartPaths),
		)
	}

	return w.Flush()
}

// targets derives the DLC files from the --exe flag or the remembered
// executable.
func (e *appEnv) targets(exeFlag string) (dlc.Targets, error) {
	exe, err := e.resolveExecutable(exeFlag)
	if err != nil {
		return dlc.Targets{}, err
	}

	if exe == "" {
		return dlc.Targets{}, core.ErrMissingExecutablePath
	}

	return dlc.TargetsFor(exe)
}
