package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/inovacc/focset/internal/catalog"
	"github.com/spf13/cobra"
)

var partsOutput = outputTable

var partsCmd = &cobra.Command{
	Use:   "parts",
	Short: "List the part names offered by the form",
	Long: `List the part names offered by the form with the internal name written
to the DLC files. Renamed parts and parts that ask for confirmation are
marked.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParts(app, partsOutput)
	},
}

func init() {
	rootCmd.AddCommand(partsCmd)
	partsCmd.Flags().VarP(&partsOutput, "output", "o", "Output format: table, json, yaml")
}

// partInfo is one catalog line in structured output.
type partInfo struct {
	Name     string `json:"name" yaml:"name"`
	Internal string `json:"internal" yaml:"internal"`
	Renamed  bool   `json:"renamed,omitempty" yaml:"renamed,omitempty"`
	Warning  string `json:"warning,omitempty" yaml:"warning,omitempty"`
}

func catalogInfo() []partInfo {
	names := catalog.Names()
	out := make([]partInfo, 0, len(names))

	for _, name := range names {
		res := catalog.Resolve(name)
		_, renamed := catalog.Renamed(name)

		out = append(out, partInfo{
			Name:     name,
			Internal: res.Internal,
			Renamed:  renamed,
			Warning:  res.Warning,
		})
	}

	return out
}

func runParts(env *appEnv, format outputFormat) error {
	parts := catalogInfo()

	if format != outputTable {
		return writeOutput(env.stdout, format, parts)
	}

	w := tabwriter.NewWriter(env.stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tINTERNAL\tNOTE")

	for _, p := range parts {
		note := ""

		switch {
		case p.Warning != "":
			note = "asks: " + p.Warning
		case p.Renamed:
			note = "renamed"
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.Internal, note)
	}

	return w.Flush()
}
