package runner

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/maxkimambo/fate/internal/logger"
)

// Manager is the registry of named tasks and their dependencies, and the
// engine that runs a task's dependency closure.
type Manager struct {
	tasks    map[string]*Task
	deps     map[string][]string
	opts     Opts
	reporter Reporter
}

// ManagerOption configures a Manager instance
type ManagerOption func(*Manager)

// WithReporter sets the reporter receiving the run trace
func WithReporter(r Reporter) ManagerOption {
	return func(m *Manager) {
		m.reporter = r
	}
}

// NewManager creates an empty manager with the given default options
func NewManager(opts Opts, options ...ManagerOption) *Manager {
	m := &Manager{
		tasks:    make(map[string]*Task),
		deps:     make(map[string][]string),
		opts:     opts,
		reporter: LogReporter{},
	}
	for _, option := range options {
		option(m)
	}
	if m.reporter == nil {
		m.reporter = LogReporter{}
	}
	return m
}

// SetReporter replaces the reporter receiving the run trace. A nil r
// restores the LogReporter.
func (m *Manager) SetReporter(r Reporter) {
	if r == nil {
		r = LogReporter{}
	}
	m.reporter = r
}

// Add registers task under name with its dependency names, replacing any
// previous registration. Dependencies are not checked until Run.
func (m *Manager) Add(name string, task *Task, deps ...string) {
	m.tasks[name] = task
	m.deps[name] = append([]string(nil), deps...)
}

// Task returns the task registered under name
func (m *Manager) Task(name string) (*Task, bool) {
	task, ok := m.tasks[name]
	return task, ok
}

// Deps returns the declared dependencies of name in order
func (m *Manager) Deps(name string) []string {
	return append([]string(nil), m.deps[name]...)
}

// Names returns all registered task names, sorted
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.tasks))
	for name := range m.tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Defaults returns the manager-level options
func (m *Manager) Defaults() Opts {
	return m.opts
}

// Run executes name after everything it transitively depends on, each task
// at most once. opts is the highest precedence layer.
//
// Without keep-going the first failure is returned as is. With keep-going
// every reachable subtree is attempted and the failures are returned together
// as a *FateError. A missing task always aborts the run with
// *TaskNotFoundError; failures collected before it are kept alongside it in
// a *FateError.
//
// A reporter already carried by ctx receives the trace instead of the
// manager's own.
func (m *Manager) Run(ctx context.Context, name string, opts Opts) error {
	if _, ok := m.tasks[name]; !ok {
		return &TaskNotFoundError{Name: name}
	}

	reporter, ok := reporterFromContext(ctx)
	if !ok {
		reporter = m.reporter
		ctx = ContextWithReporter(ctx, reporter)
	}
	s := newSession(m.opts.Merge(opts), opts, reporter)

	logger.Op.With(logger.WithRunID(s.id), logger.Field{Key: "target", Value: name}).
		Debugf("Manager options: %s", s.opts)

	if err := m.resolve(ctx, s, name); err != nil {
		var notFound *TaskNotFoundError
		if errors.As(err, &notFound) && len(s.errors) > 0 {
			return &FateError{Errors: append(s.errors, err)}
		}
		return err
	}
	if len(s.errors) > 0 {
		return &FateError{Errors: s.errors}
	}
	return nil
}

func (m *Manager) resolve(ctx context.Context, s *session, name string) error {
	log := logger.Op.With(logger.WithRunID(s.id), logger.Field{Key: "task", Value: name})

	if s.alreadyRun[name] {
		log.Debug("Skipping deduped task")
		return nil
	}
	s.enter(name)
	defer s.leave(name)

	deps := m.deps[name]
	if len(deps) > 0 {
		log.Debugf("Dependencies: %s", strings.Join(deps, " "))
	}
	for _, dep := range deps {
		if err := m.resolve(ctx, s, dep); err != nil {
			return err
		}
	}

	err := m.runTask(ctx, s, name, deps)
	if err == nil {
		return nil
	}

	var notFound *TaskNotFoundError
	if errors.As(err, &notFound) {
		return err
	}

	s.fail(name, err)
	s.reporter.TaskFailed(name, err)
	if !s.opts.IsKeepGoing() {
		return err
	}
	return nil
}

func (m *Manager) runTask(ctx context.Context, s *session, name string, deps []string) error {
	var failed, cyclic, unresolved []string
	for _, dep := range deps {
		switch {
		case s.failed[dep]:
			failed = append(failed, dep)
		case s.active[dep]:
			cyclic = append(cyclic, dep)
		case !s.alreadyRun[dep]:
			unresolved = append(unresolved, dep)
		}
	}

	if len(failed) > 0 {
		return &DependencyError{Task: name, Failed: failed}
	}
	if len(cyclic) > 0 {
		return &CycleError{Task: name, Path: s.cycleTo(cyclic[0])}
	}
	if len(unresolved) > 0 {
		return &DependencyError{Task: name, Unresolved: unresolved}
	}

	task, ok := m.tasks[name]
	if !ok {
		return &TaskNotFoundError{Name: name}
	}

	// Task defaults sit between the manager defaults and the call site
	opts := m.opts.Merge(task.Defaults()).Merge(s.callOpts)
	s.reporter.TaskStarted(name, opts)
	return task.Run(ctx, opts)
}
