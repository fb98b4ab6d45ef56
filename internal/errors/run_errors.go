package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorCategory represents the category of error
type ErrorCategory string

const (
	// ErrorCategoryAction represents a failing command or callback
	ErrorCategoryAction ErrorCategory = "ACTION"
	// ErrorCategoryDependency represents tasks blocked by their dependencies
	ErrorCategoryDependency ErrorCategory = "DEPENDENCY"
	// ErrorCategoryCycle represents circular task dependencies
	ErrorCategoryCycle ErrorCategory = "CYCLE"
	// ErrorCategoryLookup represents unknown task or parser names
	ErrorCategoryLookup ErrorCategory = "LOOKUP"
	// ErrorCategoryConfig represents unreadable or malformed task files
	ErrorCategoryConfig ErrorCategory = "CONFIG"
)

// RunError represents a structured error with context and troubleshooting information
type RunError struct {
	Category        ErrorCategory
	Code            string
	Message         string
	Operation       string
	Context         map[string]interface{}
	Troubleshooting []string
	OriginalError   error
}

// Error implements the error interface
func (e *RunError) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s-%s: %s", e.Category, e.Code, e.Message))

	if e.Operation != "" {
		sb.WriteString(fmt.Sprintf("\nOperation: %s", e.Operation))
	}

	if len(e.Context) > 0 {
		sb.WriteString("\nContext:")
		for _, key := range e.contextKeys() {
			sb.WriteString(fmt.Sprintf("\n  %s: %v", key, e.Context[key]))
		}
	}

	if len(e.Troubleshooting) > 0 {
		sb.WriteString("\nTroubleshooting:")
		for i, step := range e.Troubleshooting {
			sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, step))
		}
	}

	if e.OriginalError != nil {
		sb.WriteString(fmt.Sprintf("\nUnderlying error: %v", e.OriginalError))
	}

	return sb.String()
}

// Unwrap returns the original error for error chain compatibility
func (e *RunError) Unwrap() error {
	return e.OriginalError
}

// NewRunError creates a new run error with the specified parameters
func NewRunError(category ErrorCategory, code, message, operation string) *RunError {
	return &RunError{
		Category:        category,
		Code:            code,
		Message:         message,
		Operation:       operation,
		Context:         make(map[string]interface{}),
		Troubleshooting: []string{},
	}
}

// WithContext adds context information to the error
func (e *RunError) WithContext(key string, value interface{}) *RunError {
	e.Context[key] = value
	return e
}

// WithTroubleshooting adds troubleshooting steps to the error
func (e *RunError) WithTroubleshooting(steps ...string) *RunError {
	e.Troubleshooting = append(e.Troubleshooting, steps...)
	return e
}

// WithOriginalError adds the original error to the run error
func (e *RunError) WithOriginalError(err error) *RunError {
	e.OriginalError = err
	return e
}

// contextKeys returns the context keys sorted for stable output
func (e *RunError) contextKeys() []string {
	keys := make([]string, 0, len(e.Context))
	for key := range e.Context {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
