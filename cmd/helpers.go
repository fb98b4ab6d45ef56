package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/maxkimambo/fate/internal/config"
	"github.com/maxkimambo/fate/internal/logger"
	"github.com/maxkimambo/fate/internal/runner"
)

func loadManager(opts *rootOptions) (*runner.Manager, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	m, path, err := config.Load(dir, opts.parser, opts.file)
	if err != nil {
		return nil, err
	}

	logger.Op.WithFields(map[string]interface{}{"file": path, "tasks": len(m.Names())}).
		Debug("Loaded task file")
	return m, nil
}

// callSiteOpts turns the run flags into call-site options. Flags the user
// did not pass stay unset so lower layers can decide.
func callSiteOpts(flags *pflag.FlagSet) runner.Opts {
	return runner.Opts{
		Silent:    changedBool(flags, "silent"),
		IgnoreErr: changedBool(flags, "ignore-err"),
		KeepGoing: changedBool(flags, "keep-going"),
		Dry:       changedBool(flags, "dry-run"),
	}
}

func changedBool(flags *pflag.FlagSet, name string) *bool {
	if !flags.Changed(name) {
		return nil
	}
	v, err := flags.GetBool(name)
	if err != nil {
		return nil
	}
	return runner.Bool(v)
}
