package runner

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTaskNotFound is matched by every TaskNotFoundError via errors.Is
var ErrTaskNotFound = errors.New("task not found")

// ActionError wraps a failure of a single action's underlying work: a
// non-zero exit, a spawn failure, or a callback error or panic.
type ActionError struct {
	Action string
	Err    error
}

// Error implements the error interface
func (e *ActionError) Error() string {
	return fmt.Sprintf("action '%s' failed: %v", e.Action, e.Err)
}

// Unwrap returns the original error for error chain compatibility
func (e *ActionError) Unwrap() error {
	return e.Err
}

// DependencyError is returned when a task cannot run because some of its
// dependencies failed or were never resolved.
type DependencyError struct {
	Task       string
	Failed     []string
	Unresolved []string
}

// Error implements the error interface
func (e *DependencyError) Error() string {
	if len(e.Failed) > 0 {
		return fmt.Sprintf("Dependencies failed for '%s': %s", e.Task, strings.Join(e.Failed, " "))
	}
	return fmt.Sprintf("Dependencies not run for '%s': %s", e.Task, strings.Join(e.Unresolved, " "))
}

// CycleError is returned when a task depends, directly or transitively, on a
// task that is still being resolved. Path starts and ends with the same name.
type CycleError struct {
	Task string
	Path []string
}

// Error implements the error interface
func (e *CycleError) Error() string {
	return fmt.Sprintf("Dependency cycle detected for '%s': %s", e.Task, strings.Join(e.Path, " -> "))
}

// TaskNotFoundError is returned when a requested or depended-on task name is
// not registered with the manager.
type TaskNotFoundError struct {
	Name string
}

// Error implements the error interface
func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("task not found: '%s'", e.Name)
}

// Is makes errors.Is(err, ErrTaskNotFound) work
func (e *TaskNotFoundError) Is(target error) bool {
	return target == ErrTaskNotFound
}

// FateError aggregates the failures collected during a keep-going run
type FateError struct {
	Errors []error
}

// Error implements the error interface
func (e *FateError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d task failure(s):", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString("\n  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap exposes every collected error to errors.Is and errors.As
func (e *FateError) Unwrap() []error {
	return e.Errors
}
