package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	fateerrors "github.com/maxkimambo/fate/internal/errors"
	"github.com/maxkimambo/fate/internal/logger"
	"github.com/maxkimambo/fate/internal/utils"
)

var version = "v0.1.0"

// rootOptions holds the persistent flags shared by every command
type rootOptions struct {
	file     string
	parser   string
	debug    bool
	verbose  bool
	jsonLogs bool
	quiet    bool
}

// NewRootCmd builds the fate command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "fate",
		Short: "Run named tasks and everything they depend on",
		Long: `fate runs named tasks declared in pyproject.toml ([tool.fate]) or fate.yaml.

A task is an ordered list of shell commands. Requesting a task first runs its
dependencies, each at most once, then the task itself.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Setup(opts.verbose || opts.debug, opts.jsonLogs, opts.quiet)
			if opts.debug {
				logger.Op.Debug("Debug logging enabled")
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "Task file to read (default: discovered in the working directory)")
	rootCmd.PersistentFlags().StringVar(&opts.parser, "parser", "", "Task file format: pyproject or yaml (default: guessed)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonLogs, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress non-error output")

	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newGraphCmd(opts))

	return rootCmd
}

// Execute runs the command tree and prints any failure once, boxed, on stderr
func Execute(ctx context.Context) error {
	rootCmd := NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func printError(w io.Writer, err error) {
	logger.Op.WithFields(map[string]interface{}{"code": fateerrors.GetErrorCode(err)}).
		Debug(fateerrors.DisplayErrorSummary(err))
	fmt.Fprintln(w, utils.Error("fate failed", fateerrors.FormatForCLI(err)))
}
