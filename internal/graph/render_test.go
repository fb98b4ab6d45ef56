package graph

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxkimambo/fate/internal/runner"
)

func TestGraph_GenerateInfo(t *testing.T) {
	g, err := FromManager(diamond(), "A")
	require.NoError(t, err)

	info := g.GenerateInfo()
	assert.Equal(t, "A", info.Target)
	require.Len(t, info.Nodes, 4)
	assert.Equal(t, "A", info.Nodes[0].ID)
	assert.Equal(t, 4, info.Nodes[0].Step)
	assert.Equal(t, 1, info.Nodes[3].Step)

	assert.Equal(t, []EdgeInfo{
		{From: "B", To: "A"},
		{From: "C", To: "A"},
		{From: "D", To: "B"},
		{From: "D", To: "C"},
	}, info.Edges)

	assert.Equal(t, Stats{TotalNodes: 4, TotalEdges: 4, TotalActions: 4}, info.Stats)
}

func TestGraph_GenerateInfo_Cycle(t *testing.T) {
	m := runner.NewManager(runner.Opts{})
	m.Add("a", shellTask("true"), "b")
	m.Add("b", shellTask("true"), "a")

	g, err := FromManager(m, "a")
	require.NoError(t, err)

	info := g.GenerateInfo()
	assert.Equal(t, []string{"a", "b", "a"}, info.Stats.Cycle)
	for _, node := range info.Nodes {
		assert.Zero(t, node.Step)
	}
}

func TestGraph_Render(t *testing.T) {
	g, err := FromManager(diamond(), "A")
	require.NoError(t, err)

	t.Run("Text", func(t *testing.T) {
		out, err := g.Render(FormatText)
		require.NoError(t, err)
		assert.Contains(t, out, "=== Dependencies of A ===")
		assert.Contains(t, out, "  Tasks: 4\n")
		assert.Contains(t, out, "Execution Order:\n  1. D\n       echo d\n  2. B\n")
		assert.NotContains(t, out, "Missing")
	})

	t.Run("Default is text", func(t *testing.T) {
		out, err := g.Render("")
		require.NoError(t, err)
		assert.Contains(t, out, "Execution Order:")
	})

	t.Run("DOT", func(t *testing.T) {
		out, err := g.Render(FormatDOT)
		require.NoError(t, err)
		assert.Contains(t, out, "digraph fate {\n")
		assert.Contains(t, out, `"A" [label="A\n1 action(s)", fillcolor="lightblue"];`)
		assert.Contains(t, out, `"D" -> "B";`)
		assert.Contains(t, out, `"D" -> "C";`)
		assert.True(t, len(out) > 0 && out[len(out)-2:] == "}\n")
	})

	t.Run("JSON", func(t *testing.T) {
		out, err := g.Render(FormatJSON)
		require.NoError(t, err)

		var info Info
		require.NoError(t, json.Unmarshal([]byte(out), &info))
		assert.Equal(t, "A", info.Target)
		assert.Equal(t, 4, info.Stats.TotalNodes)
		assert.Len(t, info.Edges, 4)
	})

	t.Run("Unknown format", func(t *testing.T) {
		_, err := g.Render("svg")
		assert.ErrorContains(t, err, "unknown graph format 'svg'")
	})
}

func TestGraph_Render_MissingAndCycle(t *testing.T) {
	m := runner.NewManager(runner.Opts{})
	m.Add("build", shellTask("make"), "ghost")
	m.Add("a", shellTask("true"), "b")
	m.Add("b", shellTask("true"), "a")

	g, err := FromManager(m, "build")
	require.NoError(t, err)

	out, err := g.Render(FormatText)
	require.NoError(t, err)
	assert.Contains(t, out, "  Missing: ghost\n")
	assert.Contains(t, out, "  1. ghost (missing)\n")

	dot := g.GenerateDOTGraph()
	assert.Contains(t, dot, `"ghost" [label="ghost\n(missing)", fillcolor="salmon"];`)

	g, err = FromManager(m, "a")
	require.NoError(t, err)
	out, err = g.Render(FormatText)
	require.NoError(t, err)
	assert.Contains(t, out, "Cycle: a -> b -> a\n")
	assert.NotContains(t, out, "Execution Order")
	assert.Contains(t, g.GenerateDOTGraph(), `fillcolor="orange"`)
}
