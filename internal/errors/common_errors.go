package errors

import (
	goerrors "errors"
	"io/fs"
	"os/exec"
	"strings"

	"github.com/maxkimambo/fate/internal/config"
	"github.com/maxkimambo/fate/internal/runner"
)

// Common error codes
const (
	// Action error codes
	CodeActionExit     = "001"
	CodeActionSpawn    = "002"
	CodeActionCallback = "003"

	// Dependency error codes
	CodeDependencyFailed     = "001"
	CodeDependencyUnresolved = "002"

	// Cycle error codes
	CodeCycleDetected = "001"

	// Lookup error codes
	CodeLookupTask   = "001"
	CodeLookupParser = "002"

	// Config error codes
	CodeConfigParse = "001"
	CodeConfigGuess = "002"
)

// Classify maps a runner or config error onto a RunError carrying a code
// and troubleshooting steps. It returns nil for errors it does not know.
func Classify(err error) *RunError {
	if err == nil {
		return nil
	}

	var runErr *RunError
	if goerrors.As(err, &runErr) {
		return runErr
	}

	var notFound *runner.TaskNotFoundError
	if goerrors.As(err, &notFound) {
		return NewTaskNotFoundError(notFound)
	}

	var cycle *runner.CycleError
	if goerrors.As(err, &cycle) {
		return NewCycleError(cycle)
	}

	var depErr *runner.DependencyError
	if goerrors.As(err, &depErr) {
		return NewDependencyError(depErr)
	}

	var actionErr *runner.ActionError
	if goerrors.As(err, &actionErr) {
		return NewActionError(actionErr)
	}

	var parseErr *config.ParseError
	if goerrors.As(err, &parseErr) {
		return NewRunError(ErrorCategoryConfig, CodeConfigParse,
			parseErr.Message, "Task file parsing").
			WithContext("file", parseErr.Source).
			WithOriginalError(parseErr.Err).
			WithTroubleshooting(
				"Check the file against the documented layout: an optional 'options' table and a 'targets' table",
				"Commands must be strings or lists of strings",
				"Option values must be true or false",
			)
	}

	var guessErr *config.GuessError
	if goerrors.As(err, &guessErr) {
		runErr := NewRunError(ErrorCategoryConfig, CodeConfigGuess,
			guessErr.Error(), "Task file discovery").
			WithTroubleshooting(
				"Run fate from the directory that holds pyproject.toml or fate.yaml",
				"Point at the file explicitly with --file",
				"Pick the format explicitly with --parser",
			)
		if guessErr.File != "" {
			runErr.WithContext("file", guessErr.File)
		} else {
			runErr.WithContext("dir", guessErr.Dir)
		}
		return runErr
	}

	if goerrors.Is(err, config.ErrUnknownParser) {
		return NewRunError(ErrorCategoryLookup, CodeLookupParser,
			err.Error(), "Parser lookup").
			WithContext("available", strings.Join(config.Names(), ", ")).
			WithTroubleshooting("Use one of the available parser names with --parser")
	}

	return nil
}

// NewTaskNotFoundError creates an error for an unregistered task name
func NewTaskNotFoundError(err *runner.TaskNotFoundError) *RunError {
	return NewRunError(ErrorCategoryLookup, CodeLookupTask,
		err.Error(), "Task lookup").
		WithContext("task", err.Name).
		WithTroubleshooting(
			"Run 'fate list' to see the available targets",
			"Check the spelling of the target and of every name under 'dependencies'",
		)
}

// NewCycleError creates an error for circular task dependencies
func NewCycleError(err *runner.CycleError) *RunError {
	return NewRunError(ErrorCategoryCycle, CodeCycleDetected,
		err.Error(), "Dependency resolution").
		WithContext("task", err.Task).
		WithContext("path", strings.Join(err.Path, " -> ")).
		WithTroubleshooting(
			"Remove one of the dependencies along the reported path",
			"Run 'fate graph "+err.Task+"' to inspect the dependency closure",
		)
}

// NewDependencyError creates an error for a task blocked by its dependencies
func NewDependencyError(err *runner.DependencyError) *RunError {
	if len(err.Failed) > 0 {
		return NewRunError(ErrorCategoryDependency, CodeDependencyFailed,
			err.Error(), "Dependency resolution").
			WithContext("task", err.Task).
			WithContext("failed", strings.Join(err.Failed, ", ")).
			WithTroubleshooting(
				"Fix the failing dependencies listed above; this task was not started",
			)
	}
	return NewRunError(ErrorCategoryDependency, CodeDependencyUnresolved,
		err.Error(), "Dependency resolution").
		WithContext("task", err.Task).
		WithContext("unresolved", strings.Join(err.Unresolved, ", ")).
		WithTroubleshooting(
			"Run 'fate graph "+err.Task+"' to inspect the dependency closure",
		)
}

// NewActionError creates an error for a failing command or callback
func NewActionError(err *runner.ActionError) *RunError {
	var exitErr *exec.ExitError
	if goerrors.As(err, &exitErr) {
		return NewRunError(ErrorCategoryAction, CodeActionExit,
			"Command exited with a non-zero status", "Action execution").
			WithContext("action", err.Action).
			WithContext("exit_code", exitErr.ExitCode()).
			WithOriginalError(err.Err).
			WithTroubleshooting(
				"Run the command by hand to see its full output",
				"Drop --silent to see the command output",
				"Use --ignore-err or set ignore_err to tolerate this failure",
			)
	}

	if goerrors.Is(err, exec.ErrNotFound) || goerrors.Is(err, fs.ErrNotExist) || goerrors.Is(err, fs.ErrPermission) {
		return NewRunError(ErrorCategoryAction, CodeActionSpawn,
			"Command could not be started", "Action execution").
			WithContext("action", err.Action).
			WithOriginalError(err.Err).
			WithTroubleshooting(
				"Check that the program exists and is on PATH",
				"Check that the program is executable",
			)
	}

	return NewRunError(ErrorCategoryAction, CodeActionCallback,
		err.Error(), "Action execution").
		WithContext("action", err.Action).
		WithOriginalError(err.Err).
		WithTroubleshooting(
			"Re-run with --debug for the full operation log",
		)
}

// IsUserError determines if an error is due to the task file or the command line
func IsUserError(err error) bool {
	runErr := Classify(err)
	if runErr == nil {
		return false
	}
	return runErr.Category == ErrorCategoryLookup ||
		runErr.Category == ErrorCategoryConfig ||
		runErr.Category == ErrorCategoryCycle
}
