package runner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Action",
			err:      &ActionError{Action: "make test", Err: errors.New("exit status 2")},
			expected: "action 'make test' failed: exit status 2",
		},
		{
			name:     "Failed dependencies",
			err:      &DependencyError{Task: "release", Failed: []string{"build", "lint"}},
			expected: "Dependencies failed for 'release': build lint",
		},
		{
			name:     "Unresolved dependencies",
			err:      &DependencyError{Task: "release", Unresolved: []string{"docs"}},
			expected: "Dependencies not run for 'release': docs",
		},
		{
			name:     "Cycle",
			err:      &CycleError{Task: "b", Path: []string{"a", "b", "a"}},
			expected: "Dependency cycle detected for 'b': a -> b -> a",
		},
		{
			name:     "Not found",
			err:      &TaskNotFoundError{Name: "ghost"},
			expected: "task not found: 'ghost'",
		},
		{
			name: "Aggregate",
			err: &FateError{Errors: []error{
				&ActionError{Action: "false", Err: errors.New("exit status 1")},
				&DependencyError{Task: "all", Failed: []string{"check"}},
			}},
			expected: "2 task failure(s):\n  - action 'false' failed: exit status 1\n  - Dependencies failed for 'all': check",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.expected)
		})
	}
}

func TestFateErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &FateError{Errors: []error{
		&DependencyError{Task: "a", Failed: []string{"b"}},
		&ActionError{Action: "cp", Err: cause},
	}}

	assert.ErrorIs(t, err, cause)

	var depErr *DependencyError
	assert.ErrorAs(t, err, &depErr)
	assert.Equal(t, "a", depErr.Task)

	assert.NotErrorIs(t, err, ErrTaskNotFound)
	assert.ErrorIs(t, &TaskNotFoundError{Name: "x"}, ErrTaskNotFound)
}
