package config

import (
	"fmt"
	"sort"

	"github.com/maxkimambo/fate/internal/runner"
)

// buildManager turns a decoded tool table into a manager. The table holds an
// optional "options" table and a "targets" table whose entries are either a
// list of commands or a table with commands, options and dependencies.
func buildManager(source string, tool map[string]any) (*runner.Manager, error) {
	opts, err := decodeOpts(source, "options", tool["options"])
	if err != nil {
		return nil, err
	}
	m := runner.NewManager(opts)

	rawTargets, ok := tool["targets"]
	if !ok {
		return nil, &ParseError{Source: source, Message: "missing 'targets' table"}
	}
	targets, ok := rawTargets.(map[string]any)
	if !ok {
		return nil, &ParseError{Source: source, Message: fmt.Sprintf("'targets' must be a table, got %T", rawTargets)}
	}

	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		task, deps, err := decodeTarget(source, name, targets[name])
		if err != nil {
			return nil, err
		}
		m.Add(name, task, deps...)
	}
	return m, nil
}

func decodeTarget(source, name string, raw any) (*runner.Task, []string, error) {
	switch v := raw.(type) {
	case []any:
		actions, err := decodeCommands(source, name, v)
		if err != nil {
			return nil, nil, err
		}
		return runner.NewTask(actions, runner.Opts{}), nil, nil

	case map[string]any:
		for key := range v {
			switch key {
			case "commands", "options", "dependencies":
			default:
				return nil, nil, &ParseError{Source: source, Message: fmt.Sprintf("target '%s': unknown key '%s'", name, key)}
			}
		}

		var commands []any
		if rawCommands, ok := v["commands"]; ok {
			if commands, ok = rawCommands.([]any); !ok {
				return nil, nil, &ParseError{Source: source, Message: fmt.Sprintf("target '%s': 'commands' must be a list", name)}
			}
		}
		actions, err := decodeCommands(source, name, commands)
		if err != nil {
			return nil, nil, err
		}

		opts, err := decodeOpts(source, fmt.Sprintf("target '%s' options", name), v["options"])
		if err != nil {
			return nil, nil, err
		}

		deps, err := decodeStrings(source, fmt.Sprintf("target '%s' dependencies", name), v["dependencies"])
		if err != nil {
			return nil, nil, err
		}
		return runner.NewTask(actions, opts), deps, nil

	default:
		return nil, nil, &ParseError{Source: source, Message: fmt.Sprintf("target not list or mapping: %s", name)}
	}
}

// decodeCommands accepts shell strings and argument vectors
func decodeCommands(source, name string, raw []any) ([]*runner.Action, error) {
	actions := make([]*runner.Action, 0, len(raw))
	for i, cmd := range raw {
		switch c := cmd.(type) {
		case string:
			actions = append(actions, runner.NewShellAction(c, runner.Opts{}))
		case []any:
			argv, err := decodeStrings(source, fmt.Sprintf("target '%s' command %d", name, i+1), c)
			if err != nil {
				return nil, err
			}
			if len(argv) == 0 {
				return nil, &ParseError{Source: source, Message: fmt.Sprintf("target '%s' command %d is empty", name, i+1)}
			}
			actions = append(actions, runner.NewProcessAction(argv, runner.Opts{}))
		default:
			return nil, &ParseError{Source: source, Message: fmt.Sprintf("target '%s' command %d must be a string or a list of strings, got %T", name, i+1, cmd)}
		}
	}
	return actions, nil
}

func decodeStrings(source, what string, raw any) ([]string, error) {
	if raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, &ParseError{Source: source, Message: fmt.Sprintf("%s must be a list of strings, got %T", what, raw)}
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, &ParseError{Source: source, Message: fmt.Sprintf("%s must be a list of strings, got element %T", what, item)}
		}
		out = append(out, s)
	}
	return out, nil
}

func decodeOpts(source, what string, raw any) (runner.Opts, error) {
	var opts runner.Opts
	if raw == nil {
		return opts, nil
	}
	table, ok := raw.(map[string]any)
	if !ok {
		return opts, &ParseError{Source: source, Message: fmt.Sprintf("%s must be a table, got %T", what, raw)}
	}

	for key, value := range table {
		b, ok := value.(bool)
		if !ok {
			return opts, &ParseError{Source: source, Message: fmt.Sprintf("%s: '%s' must be a boolean, got %T", what, key, value)}
		}
		switch key {
		case "silent":
			opts.Silent = runner.Bool(b)
		case "ignore_err":
			opts.IgnoreErr = runner.Bool(b)
		case "keep_going":
			opts.KeepGoing = runner.Bool(b)
		case "dry":
			opts.Dry = runner.Bool(b)
		default:
			return opts, &ParseError{Source: source, Message: fmt.Sprintf("%s: unknown option '%s'", what, key)}
		}
	}
	return opts, nil
}
