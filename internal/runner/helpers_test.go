package runner

import (
	"context"
	"errors"
)

// recordingReporter captures the run trace for assertions
type recordingReporter struct {
	tasks   []string
	actions []string
	ignored []string
	failed  []string
}

func (r *recordingReporter) TaskStarted(name string, opts Opts) {
	r.tasks = append(r.tasks, name)
}

func (r *recordingReporter) ActionStarted(description string, opts Opts) {
	r.actions = append(r.actions, description)
}

func (r *recordingReporter) ActionIgnored(description string, err error) {
	r.ignored = append(r.ignored, description)
}

func (r *recordingReporter) TaskFailed(name string, err error) {
	r.failed = append(r.failed, name)
}

func withRecorder() (context.Context, *recordingReporter) {
	rec := &recordingReporter{}
	return ContextWithReporter(context.Background(), rec), rec
}

var errBoom = errors.New("boom")

// journal records which callbacks executed, in order
type journal struct {
	entries []string
}

func (j *journal) record(name string) *Action {
	return NewNamedFuncAction(name, func(args ...any) error {
		j.entries = append(j.entries, name)
		return nil
	}, Opts{})
}

func (j *journal) fail(name string) *Action {
	return NewNamedFuncAction(name, func(args ...any) error {
		j.entries = append(j.entries, name)
		return errBoom
	}, Opts{})
}

func (j *journal) task(names ...string) *Task {
	actions := make([]*Action, 0, len(names))
	for _, name := range names {
		actions = append(actions, j.record(name))
	}
	return NewTask(actions, Opts{})
}

func noop(args ...any) error {
	return nil
}

// probeWork records the fully merged options it was executed with
type probeWork struct {
	seen *Opts
}

func (p *probeWork) describe() string {
	return "probe"
}

func (p *probeWork) kind() string {
	return "probe"
}

func (p *probeWork) execute(ctx context.Context, opts Opts) error {
	*p.seen = opts
	return nil
}
