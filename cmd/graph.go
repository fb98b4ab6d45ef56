package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxkimambo/fate/internal/graph"
)

func newGraphCmd(opts *rootOptions) *cobra.Command {
	var format string

	graphCmd := &cobra.Command{
		Use:   "graph TARGET",
		Short: "Show the dependency closure of a target without running it",
		Long: `Show the dependency closure of a target without running it.

Formats:
  text  execution order with the actions of every task
  dot   Graphviz digraph, e.g. fate graph build --format dot | dot -Tsvg
  json  nodes, edges and statistics
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManager(opts)
			if err != nil {
				return err
			}

			g, err := graph.FromManager(m, args[0])
			if err != nil {
				return err
			}

			out, err := g.Render(format)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	graphCmd.Flags().StringVar(&format, "format", graph.FormatText, "Output format: text, dot or json")

	return graphCmd
}
