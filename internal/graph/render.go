package graph

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Supported render formats
const (
	FormatText = "text"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// NodeInfo contains information about a node for visualization
type NodeInfo struct {
	ID      string   `json:"id"`
	Deps    []string `json:"deps"`
	Actions []string `json:"actions"`
	Missing bool     `json:"missing,omitempty"`
	// Step is the 1-based position in the execution order, 0 if unreachable
	Step int `json:"step,omitempty"`
}

// EdgeInfo points from a dependency to the task that needs it
type EdgeInfo struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Info contains the full graph structure for visualization
type Info struct {
	Target string     `json:"target"`
	Nodes  []NodeInfo `json:"nodes"`
	Edges  []EdgeInfo `json:"edges"`
	Stats  Stats      `json:"stats"`
}

// Stats contains summary counts about the graph
type Stats struct {
	TotalNodes   int      `json:"totalNodes"`
	TotalEdges   int      `json:"totalEdges"`
	TotalActions int      `json:"totalActions"`
	MissingNodes int      `json:"missingNodes"`
	Cycle        []string `json:"cycle,omitempty"`
}

// GenerateInfo creates a representation of the graph for visualization.
// Nodes are listed by name and edges follow each node's declared order.
func (g *Graph) GenerateInfo() *Info {
	info := &Info{
		Target: g.target,
		Nodes:  []NodeInfo{},
		Edges:  []EdgeInfo{},
	}

	steps := make(map[string]int)
	if order, err := g.ExecutionOrder(); err == nil {
		for i, name := range order {
			steps[name] = i + 1
		}
	} else {
		info.Stats.Cycle = g.FindCycle()
	}

	for _, name := range g.Names() {
		node := g.nodes[name]
		info.Nodes = append(info.Nodes, NodeInfo{
			ID:      name,
			Deps:    append([]string{}, node.Deps...),
			Actions: append([]string{}, node.Actions...),
			Missing: node.Missing,
			Step:    steps[name],
		})
		for _, dep := range node.Deps {
			info.Edges = append(info.Edges, EdgeInfo{From: dep, To: name})
		}

		info.Stats.TotalActions += len(node.Actions)
		if node.Missing {
			info.Stats.MissingNodes++
		}
	}
	info.Stats.TotalNodes = len(info.Nodes)
	info.Stats.TotalEdges = len(info.Edges)
	return info
}

// Render returns the graph in the requested format
func (g *Graph) Render(format string) (string, error) {
	switch format {
	case FormatText, "":
		return g.GenerateTextSummary(), nil
	case FormatDOT:
		return g.GenerateDOTGraph(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(g.GenerateInfo(), "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode graph: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unknown graph format '%s' (available: %s, %s, %s)",
			format, FormatText, FormatDOT, FormatJSON)
	}
}

// GenerateDOTGraph creates a DOT format graph for visualization with Graphviz
func (g *Graph) GenerateDOTGraph() string {
	info := g.GenerateInfo()

	var sb strings.Builder
	sb.WriteString("digraph fate {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box, style=filled];\n")
	sb.WriteString(fmt.Sprintf("  label=%q;\n", "Dependencies of "+info.Target))
	sb.WriteString("  labelloc=\"t\";\n\n")

	onCycle := make(map[string]bool)
	for _, name := range info.Stats.Cycle {
		onCycle[name] = true
	}

	for _, node := range info.Nodes {
		color := "white"
		switch {
		case node.Missing:
			color = "salmon"
		case onCycle[node.ID]:
			color = "orange"
		case node.ID == info.Target:
			color = "lightblue"
		}

		label := node.ID
		if node.Missing {
			label += "\\n(missing)"
		} else {
			label += fmt.Sprintf("\\n%d action(s)", len(node.Actions))
		}

		sb.WriteString(fmt.Sprintf("  %q [label=\"%s\", fillcolor=\"%s\"];\n", node.ID, label, color))
	}

	if len(info.Edges) > 0 {
		sb.WriteString("\n")
	}
	for _, edge := range info.Edges {
		sb.WriteString(fmt.Sprintf("  %q -> %q;\n", edge.From, edge.To))
	}

	sb.WriteString("}\n")
	return sb.String()
}

// GenerateTextSummary creates a human-readable summary of the closure
func (g *Graph) GenerateTextSummary() string {
	info := g.GenerateInfo()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("=== Dependencies of %s ===\n\n", info.Target))

	sb.WriteString("Statistics:\n")
	sb.WriteString(fmt.Sprintf("  Tasks: %d\n", info.Stats.TotalNodes))
	sb.WriteString(fmt.Sprintf("  Edges: %d\n", info.Stats.TotalEdges))
	sb.WriteString(fmt.Sprintf("  Actions: %d\n", info.Stats.TotalActions))
	if info.Stats.MissingNodes > 0 {
		sb.WriteString(fmt.Sprintf("  Missing: %s\n", strings.Join(g.MissingNames(), ", ")))
	}
	sb.WriteString("\n")

	if len(info.Stats.Cycle) > 0 {
		sb.WriteString(fmt.Sprintf("Cycle: %s\n", strings.Join(info.Stats.Cycle, " -> ")))
		return sb.String()
	}

	order, _ := g.ExecutionOrder()
	sb.WriteString("Execution Order:\n")
	for i, name := range order {
		node := g.nodes[name]
		sb.WriteString(fmt.Sprintf("  %d. %s", i+1, name))
		if node.Missing {
			sb.WriteString(" (missing)")
		}
		sb.WriteString("\n")
		for _, action := range node.Actions {
			sb.WriteString(fmt.Sprintf("       %s\n", action))
		}
	}
	return sb.String()
}
