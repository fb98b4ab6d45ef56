package cmd

import (
	"github.com/spf13/cobra"

	"github.com/maxkimambo/fate/internal/logger"
	"github.com/maxkimambo/fate/internal/progress"
	"github.com/maxkimambo/fate/internal/runner"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run TARGET",
		Short: "Run a target after everything it depends on",
		Long: `Run a target after everything it transitively depends on, each task once.

Flags override the options declared in the task file. A flag that is not
passed leaves the file's setting in place; --keep-going=false turns an
option off explicitly.

Example:
fate run build
fate run test --keep-going
fate -f ci/fate.yaml run release --dry-run
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManager(opts)
			if err != nil {
				return err
			}

			tracker := progress.NewTracker(runner.LogReporter{})
			m.SetReporter(tracker)

			target := args[0]
			callOpts := callSiteOpts(cmd.Flags())
			if err := m.Run(cmd.Context(), target, callOpts); err != nil {
				logger.Op.Info(tracker.Summary())
				return err
			}

			if m.Defaults().Merge(callOpts).IsDry() {
				logger.User.Infof("Dry run of '%s' complete, nothing was executed: %s", target, tracker.Summary())
				return nil
			}
			logger.User.Successf("'%s' completed: %s", target, tracker.Summary())
			return nil
		},
	}

	runCmd.Flags().Bool("silent", false, "Discard the output of every action")
	runCmd.Flags().Bool("ignore-err", false, "Treat failing actions as successful")
	runCmd.Flags().BoolP("keep-going", "k", false, "Keep running independent tasks after a failure")
	runCmd.Flags().BoolP("dry-run", "n", false, "Print the actions without executing them")

	return runCmd
}
