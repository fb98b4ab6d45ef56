package runner

import (
	"context"

	"github.com/maxkimambo/fate/internal/logger"
)

// Reporter receives a human-readable trace of what a run is about to do.
// Announcements happen in dry runs too.
type Reporter interface {
	// TaskStarted is called before the actions of a task run
	TaskStarted(name string, opts Opts)

	// ActionStarted is called with the action description before it executes
	ActionStarted(description string, opts Opts)

	// ActionIgnored is called when a failure was swallowed by ignore-errors
	ActionIgnored(description string, err error)

	// TaskFailed is called when a task ends in an unignored failure
	TaskFailed(name string, err error)
}

// LogReporter writes the trace through the unified logger
type LogReporter struct{}

// TaskStarted logs the task name on the user channel
func (LogReporter) TaskStarted(name string, opts Opts) {
	logger.User.Task(name)
	logger.Op.Debugf("Task options: %s", opts)
}

// ActionStarted logs the action description on the user channel
func (LogReporter) ActionStarted(description string, opts Opts) {
	logger.User.Action(description)
	logger.Op.Debugf("Action options: %s", opts)
}

// ActionIgnored warns about the swallowed failure on the user channel
func (LogReporter) ActionIgnored(description string, err error) {
	logger.User.Warnf("%v (ignored)", err)
}

// TaskFailed logs the failure on the operational channel
func (LogReporter) TaskFailed(name string, err error) {
	logger.Op.With(logger.Field{Key: "task", Value: name}).Error(err.Error())
}

type reporterKey struct{}

// ContextWithReporter returns a child context carrying r
func ContextWithReporter(ctx context.Context, r Reporter) context.Context {
	return context.WithValue(ctx, reporterKey{}, r)
}

// ReporterFromContext returns the reporter stored in ctx, or a LogReporter
func ReporterFromContext(ctx context.Context) Reporter {
	if r, ok := reporterFromContext(ctx); ok {
		return r
	}
	return LogReporter{}
}

func reporterFromContext(ctx context.Context) (Reporter, bool) {
	r, ok := ctx.Value(reporterKey{}).(Reporter)
	return r, ok && r != nil
}
