package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maxkimambo/fate/internal/utils"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the targets declared in the task file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManager(opts)
			if err != nil {
				return err
			}

			table := utils.NewTableFormatter("TARGET", "DEPENDENCIES", "ACTIONS")
			for _, name := range m.Names() {
				task, _ := m.Task(name)
				table.AddRow(name, strings.Join(m.Deps(name), " "), strconv.Itoa(len(task.Actions())))
			}

			out := cmd.OutOrStdout()
			if table.Len() == 0 {
				fmt.Fprintln(out, "No targets declared")
			} else {
				fmt.Fprint(out, table.String())
			}
			fmt.Fprintf(out, "Defaults: %s\n", m.Defaults())
			return nil
		},
	}
}
