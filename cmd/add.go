package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/inovacc/focset/internal/catalog"
	"github.com/inovacc/focset/internal/cli"
	"github.com/inovacc/focset/internal/core"
	"github.com/inovacc/focset/internal/model"
	"github.com/spf13/cobra"
)

type addOptions struct {
	exe      string
	bodyPart bodyPartValue
	classes  classesValue
	name     string
	parts    []string
	yes      bool
}

var addOpts = addOptions{bodyPart: bodyPartValue(model.BodyPartArmLo)}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a part entry without the form",
	Long: `Append a part entry to Transcustomization.ini and Transgame.int.

Parts are given in slot order, at most 10. Null leaves a slot empty. Parts
that carry a warning are confirmed on stdin unless --yes is given.

Examples:
  focset add --exe ~/Games/FOC/Binaries/TFOC.exe --body-part Head \
    --class Scout --class Leader --name "Crowned Scout" --part "Bee Crown"
  focset add --body-part Chest --class Soldier,Scientist --name "Heavy" \
    --part Megatron --part Null --part "Optimus Prime" --yes`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(cmd.Context(), app, addOpts)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addOpts.exe, "exe", "", "Game executable (default: the last one used)")
	addCmd.Flags().Var(&addOpts.bodyPart, "body-part", "Body part: ArmLo, ArmUp, Chest, Head, Legs")
	addCmd.Flags().Var(&addOpts.classes, "class", "Class restriction, repeatable: Scout, Leader, Soldier, Scientist")
	addCmd.Flags().StringVar(&addOpts.name, "name", "", "In game name")
	addCmd.Flags().StringArrayVar(&addOpts.parts, "part", nil, "Part name, repeatable, in slot order")
	addCmd.Flags().BoolVarP(&addOpts.yes, "yes", "y", false, "Accept every part warning")
}

func runAdd(ctx context.Context, env *appEnv, opts addOptions) error {
	exe, err := env.resolveExecutable(opts.exe)
	if err != nil {
		return err
	}

	for _, name := range opts.parts {
		if !model.IsNullPart(name) && !catalog.Known(name) {
			env.logger.Warn("unknown part name, written as given", "part", name)
		}
	}

	var confirmer core.Confirmer = cli.NewLineConfirmer(env.stdin, env.stderr)
	if opts.yes {
		confirmer = core.ProceedAll
	}

	gen, closeGen := env.newGenerator(confirmer)
	defer closeGen()

	sel := model.PartSelection{
		BodyPart:    model.BodyPart(opts.bodyPart),
		Specialties: opts.classes,
		DisplayName: opts.name,
		PartNames:   opts.parts,
	}

	res, err := gen.Submit(ctx, sel, exe)
	if err != nil {
		return err
	}

	env.rememberExecutable(exe)

	printInfoBox(env.stdout, "Part added!", map[string]string{
		"UniqueId":  res.UniqueID,
		"Name":      res.Block.DisplayName,
		"PartType":  res.Block.BodyPart.String(),
		"Classes":   res.Block.Specialty,
		"Parts":     strings.Join(res.Block.Parts, ", "),
		"Primary":   res.Targets.Primary,
		"Secondary": res.Targets.Secondary,
	}, []string{"UniqueId", "Name", "PartType", "Classes", "Parts", "Primary", "Secondary"})

	_, _ = fmt.Fprintln(env.stdout)

	return nil
}
