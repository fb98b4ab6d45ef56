package runner

import "context"

// Task is an ordered sequence of actions sharing default options
type Task struct {
	actions []*Action
	opts    Opts
}

// NewTask creates a task running actions in the given order
func NewTask(actions []*Action, opts Opts) *Task {
	return &Task{
		actions: append([]*Action(nil), actions...),
		opts:    opts,
	}
}

// Actions returns a copy of the task's actions in execution order
func (t *Task) Actions() []*Action {
	return append([]*Action(nil), t.actions...)
}

// Defaults returns the task-level options
func (t *Task) Defaults() Opts {
	return t.opts
}

// Run executes the actions strictly in order. The first action returning an
// error stops the task and that error is returned unchanged.
func (t *Task) Run(ctx context.Context, opts Opts) error {
	opts = t.opts.Merge(opts)

	for _, action := range t.actions {
		if err := action.Run(ctx, opts); err != nil {
			return err
		}
	}
	return nil
}
