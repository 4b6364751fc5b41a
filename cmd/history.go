package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/inovacc/focset/internal/model"
	"github.com/inovacc/focset/internal/store"
	"github.com/spf13/cobra"
)

var (
	historyLimit  int
	historyOutput = outputTable
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent submissions",
	Long: `Show the entries focset appended, newest first.

History is kept in history.db next to the config file while
history.enabled is true.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHistory(cmd.Context(), app, historyLimit, historyOutput)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of submissions to show, 0 for all")
	historyCmd.Flags().VarP(&historyOutput, "output", "o", "Output format: table, json, yaml")
}

func runHistory(ctx context.Context, env *appEnv, limit int, format outputFormat) error {
	st, err := store.Open(env.dataDir())
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}

	defer func() { _ = st.Close() }()

	subs, err := st.ListSubmissions(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if subs == nil {
		subs = []model.Submission{}
	}

	if format != outputTable {
		return writeOutput(env.stdout, format, subs)
	}

	if len(subs) == 0 {
		_, _ = fmt.Fprintln(env.stdout, "No submissions recorded.")

		return nil
	}

	w := tabwriter.NewWriter(env.stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CREATED\tUNIQUEID\tNAME\tTYPE\tCLASSES\tPARTS")

	for _, s := range subs {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
			s.CreatedAt.Local().Format(time.DateTime),
			s.UniqueID,
			truncateString(s.FriendlyName, 32),
			s.PartType,
			s.Specialty,
			len(s.Parts),
		)
	}

	return w.Flush()
}
