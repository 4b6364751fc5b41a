package cmd

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/focset/internal/cli"
	"github.com/inovacc/focset/internal/core"
	"github.com/inovacc/focset/internal/model"
	"github.com/spf13/cobra"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the interactive part entry form",
	Long: `Open the part entry form. This is also what runs when focset is started
without a command.

The form stays open after each submission so several entries can be added
in a row. Warnings for special parts are asked in a Yes/No dialog.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runForm(cmd.Context(), app)
	},
}

func init() {
	rootCmd.AddCommand(formCmd)
}

func runForm(ctx context.Context, env *appEnv) error {
	if !isTerminal(env.stdin) {
		return errors.New("the form needs an interactive terminal, use 'focset add' instead")
	}

	gen, closeGen := env.newGenerator(cli.TeaConfirmer{})
	defer closeGen()

	exe := env.cfg.Executable

	var (
		sel       model.PartSelection
		status    string
		statusErr bool
	)

	for {
		m := cli.NewFormModel(exe, sel).WithStatus(status, statusErr)

		final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
		if err != nil {
			return fmt.Errorf("form: %w", err)
		}

		form, ok := final.(cli.FormModel)
		if !ok || !form.Submitted() {
			return nil
		}

		exe, sel = form.Executable(), form.Selection()

		res, err := gen.Submit(ctx, sel, exe)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			env.logger.Debug("submission failed", "error", err)
			status, statusErr = core.UserMessage(err), true

			continue
		}

		env.rememberExecutable(exe)

		status, statusErr = fmt.Sprintf("Part added! UniqueId=%s", res.UniqueID), false
	}
}
