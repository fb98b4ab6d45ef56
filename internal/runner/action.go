package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"reflect"
	"runtime"
	"strings"

	"github.com/maxkimambo/fate/internal/logger"
)

// Func is the signature of a callback action. It receives the arguments bound
// at construction time.
type Func func(args ...any) error

// work is the closed set of things an Action can execute: processWork and
// callbackWork.
type work interface {
	describe() string
	kind() string
	execute(ctx context.Context, opts Opts) error
}

// Action is a single immutable unit of work with its own default options
type Action struct {
	opts Opts
	work work
}

// NewShellAction creates an action running cmd through the system shell
func NewShellAction(cmd string, opts Opts) *Action {
	return &Action{opts: opts, work: &processWork{shell: cmd, useShell: true}}
}

// NewProcessAction creates an action executing argv directly, without a shell
func NewProcessAction(argv []string, opts Opts) *Action {
	return &Action{opts: opts, work: &processWork{argv: append([]string(nil), argv...)}}
}

// NewFuncAction creates a callback action. Its description is the name of
// the function symbol behind fn.
func NewFuncAction(fn Func, opts Opts, args ...any) *Action {
	return NewNamedFuncAction(funcName(fn), fn, opts, args...)
}

// NewNamedFuncAction creates a callback action described by name
func NewNamedFuncAction(name string, fn Func, opts Opts, args ...any) *Action {
	return &Action{opts: opts, work: &callbackWork{name: name, fn: fn, args: args}}
}

// Description returns the human-readable form announced before execution
func (a *Action) Description() string {
	return a.work.describe()
}

// Kind returns "process" or "callback"
func (a *Action) Kind() string {
	return a.work.kind()
}

// Defaults returns the action-level options
func (a *Action) Defaults() Opts {
	return a.opts
}

// String implements fmt.Stringer
func (a *Action) String() string {
	return fmt.Sprintf("%sAction(%q)", a.work.kind(), a.work.describe())
}

// Run executes the action with opts layered over the action defaults.
// Failures are swallowed when ignore-errors is in effect, otherwise they are
// returned as *ActionError.
func (a *Action) Run(ctx context.Context, opts Opts) error {
	opts = a.opts.Merge(opts)
	rep := ReporterFromContext(ctx)

	logger.Op.Debugf("Current action: %s", a)
	rep.ActionStarted(a.Description(), opts)
	if opts.IsDry() {
		return nil
	}

	if err := a.work.execute(ctx, opts); err != nil {
		if opts.IsIgnoreErr() {
			rep.ActionIgnored(a.Description(), err)
			return nil
		}
		return &ActionError{Action: a.Description(), Err: err}
	}
	return nil
}

type processWork struct {
	shell    string
	argv     []string
	useShell bool
}

func (p *processWork) describe() string {
	if p.useShell {
		return p.shell
	}
	return strings.Join(p.argv, " ")
}

func (p *processWork) kind() string {
	return "process"
}

func (p *processWork) command(ctx context.Context) (*exec.Cmd, error) {
	if p.useShell {
		if runtime.GOOS == "windows" {
			return exec.CommandContext(ctx, "cmd", "/C", p.shell), nil
		}
		return exec.CommandContext(ctx, "sh", "-c", p.shell), nil
	}
	if len(p.argv) == 0 {
		return nil, errors.New("empty command")
	}
	return exec.CommandContext(ctx, p.argv[0], p.argv[1:]...), nil
}

func (p *processWork) execute(ctx context.Context, opts Opts) error {
	cmd, err := p.command(ctx)
	if err != nil {
		return err
	}

	// A nil Stdout/Stderr on exec.Cmd is connected to the null device
	cmd.Stdin = os.Stdin
	if !opts.IsSilent() {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command '%s': %w", p.describe(), err)
	}
	return nil
}

type callbackWork struct {
	name string
	fn   Func
	args []any
}

func (c *callbackWork) describe() string {
	return c.name
}

func (c *callbackWork) kind() string {
	return "callback"
}

func (c *callbackWork) execute(ctx context.Context, opts Opts) error {
	if c.fn == nil {
		return fmt.Errorf("callback '%s' is nil", c.name)
	}
	if opts.IsSilent() {
		restore, err := suppressOutput()
		if err != nil {
			return err
		}
		defer restore()
	}
	return c.invoke()
}

func (c *callbackWork) invoke() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("callback '%s' panicked: %v", c.name, r)
		}
	}()
	return c.fn(c.args...)
}

func funcName(fn Func) string {
	if fn == nil {
		return "<nil>"
	}
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return "<unknown>"
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
