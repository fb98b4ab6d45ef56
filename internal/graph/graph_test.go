package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxkimambo/fate/internal/runner"
)

func shellTask(cmds ...string) *runner.Task {
	actions := make([]*runner.Action, 0, len(cmds))
	for _, cmd := range cmds {
		actions = append(actions, runner.NewShellAction(cmd, runner.Opts{}))
	}
	return runner.NewTask(actions, runner.Opts{})
}

func diamond() *runner.Manager {
	m := runner.NewManager(runner.Opts{})
	m.Add("A", shellTask("echo a"), "B", "C")
	m.Add("B", shellTask("echo b"), "D")
	m.Add("C", shellTask("echo c"), "D")
	m.Add("D", shellTask("echo d"))
	m.Add("unrelated", shellTask("echo x"))
	return m
}

func TestFromManager(t *testing.T) {
	g, err := FromManager(diamond(), "A")
	require.NoError(t, err)

	assert.Equal(t, "A", g.Target())
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Names())
	assert.Equal(t, 4, g.Size())

	node, ok := g.Node("A")
	require.True(t, ok)
	assert.Equal(t, []string{"B", "C"}, node.Deps)
	assert.Equal(t, []string{"echo a"}, node.Actions)
	assert.False(t, node.Missing)

	_, ok = g.Node("unrelated")
	assert.False(t, ok)
}

func TestFromManager_UnknownTarget(t *testing.T) {
	_, err := FromManager(diamond(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, runner.ErrTaskNotFound))
}

func TestFromManager_MissingDependency(t *testing.T) {
	m := runner.NewManager(runner.Opts{})
	m.Add("build", shellTask("make"), "ghost")

	g, err := FromManager(m, "build")
	require.NoError(t, err)

	node, ok := g.Node("ghost")
	require.True(t, ok)
	assert.True(t, node.Missing)
	assert.Equal(t, []string{"ghost"}, g.MissingNames())

	order, err := g.ExecutionOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"ghost", "build"}, order)
}

func TestGraph_TopologicalSort(t *testing.T) {
	tests := []struct {
		name     string
		manager  func() *runner.Manager
		target   string
		expected []string
	}{
		{
			name:     "diamond",
			manager:  diamond,
			target:   "A",
			expected: []string{"D", "B", "C", "A"},
		},
		{
			name: "ties broken by name",
			manager: func() *runner.Manager {
				m := runner.NewManager(runner.Opts{})
				m.Add("all", shellTask(), "zeta", "alpha")
				m.Add("zeta", shellTask("true"))
				m.Add("alpha", shellTask("true"))
				return m
			},
			target:   "all",
			expected: []string{"alpha", "zeta", "all"},
		},
		{
			name: "single task",
			manager: func() *runner.Manager {
				m := runner.NewManager(runner.Opts{})
				m.Add("solo", shellTask("true"))
				return m
			},
			target:   "solo",
			expected: []string{"solo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := FromManager(tt.manager(), tt.target)
			require.NoError(t, err)

			order, err := g.TopologicalSort()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, order)
		})
	}
}

func TestGraph_ExecutionOrder(t *testing.T) {
	m := runner.NewManager(runner.Opts{})
	m.Add("all", shellTask(), "zeta", "alpha")
	m.Add("zeta", shellTask("true"))
	m.Add("alpha", shellTask("true"))

	g, err := FromManager(m, "all")
	require.NoError(t, err)

	// Declared order, not name order
	order, err := g.ExecutionOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "all"}, order)

	g, err = FromManager(diamond(), "A")
	require.NoError(t, err)
	order, err = g.ExecutionOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "B", "C", "A"}, order)
}

func TestGraph_Cycles(t *testing.T) {
	m := runner.NewManager(runner.Opts{})
	m.Add("a", shellTask("true"), "b")
	m.Add("b", shellTask("true"), "a")
	m.Add("loop", shellTask("true"), "loop")

	g, err := FromManager(m, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "a"}, g.FindCycle())

	_, err = g.TopologicalSort()
	assert.ErrorContains(t, err, "circular dependency detected: a -> b -> a")

	_, err = g.ExecutionOrder()
	assert.ErrorContains(t, err, "a -> b -> a")

	g, err = FromManager(m, "loop")
	require.NoError(t, err)
	assert.Equal(t, []string{"loop", "loop"}, g.FindCycle())

	g, err = FromManager(diamond(), "A")
	require.NoError(t, err)
	assert.Nil(t, g.FindCycle())
}
