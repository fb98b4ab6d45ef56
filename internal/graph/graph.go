package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maxkimambo/fate/internal/runner"
)

// Node is one task in the dependency closure of a target
type Node struct {
	Name    string
	Deps    []string
	Actions []string
	// Missing is set for dependency names with no registered task
	Missing bool
}

// Graph is the static dependency closure of a single target
type Graph struct {
	target string
	nodes  map[string]*Node
}

// FromManager collects target and everything it transitively depends on.
// Unregistered dependencies become Missing nodes instead of errors so the
// whole closure can be inspected.
func FromManager(m *runner.Manager, target string) (*Graph, error) {
	if _, ok := m.Task(target); !ok {
		return nil, &runner.TaskNotFoundError{Name: target}
	}

	g := &Graph{
		target: target,
		nodes:  make(map[string]*Node),
	}

	stack := []string{target}
	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := g.nodes[name]; seen {
			continue
		}

		node := &Node{Name: name, Deps: m.Deps(name)}
		task, ok := m.Task(name)
		if ok {
			for _, action := range task.Actions() {
				node.Actions = append(node.Actions, action.Description())
			}
		} else {
			node.Missing = true
		}
		g.nodes[name] = node
		stack = append(stack, node.Deps...)
	}
	return g, nil
}

// Target returns the name the graph was built for
func (g *Graph) Target() string {
	return g.target
}

// Node returns the node called name
func (g *Graph) Node(name string) (*Node, bool) {
	node, ok := g.nodes[name]
	return node, ok
}

// Names returns all node names, sorted
func (g *Graph) Names() []string {
	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size returns the number of nodes in the graph
func (g *Graph) Size() int {
	return len(g.nodes)
}

// TopologicalSort returns the nodes with every dependency before its
// dependents. Ties are broken by name so the result is stable.
func (g *Graph) TopologicalSort() ([]string, error) {
	inDegree := make(map[string]int, len(g.nodes))
	dependents := make(map[string][]string)
	for name, node := range g.nodes {
		seen := make(map[string]bool)
		for _, dep := range node.Deps {
			if seen[dep] {
				continue
			}
			seen[dep] = true
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var queue []string
	for name := range g.nodes {
		if inDegree[name] == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue)

	var result []string
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		result = append(result, current)

		var ready []string
		for _, name := range dependents[current] {
			inDegree[name]--
			if inDegree[name] == 0 {
				ready = append(ready, name)
			}
		}
		sort.Strings(ready)
		queue = append(queue, ready...)
		sort.Strings(queue)
	}

	if len(result) != len(g.nodes) {
		return nil, fmt.Errorf("circular dependency detected: %s", strings.Join(g.FindCycle(), " -> "))
	}
	return result, nil
}

// ExecutionOrder returns the depth-first order in which a run of the target
// attempts its tasks: dependencies in declared order, each task once.
func (g *Graph) ExecutionOrder() ([]string, error) {
	if cycle := g.FindCycle(); cycle != nil {
		return nil, fmt.Errorf("circular dependency detected: %s", strings.Join(cycle, " -> "))
	}

	visited := make(map[string]bool)
	var order []string
	var visit func(name string)
	visit = func(name string) {
		if visited[name] {
			return
		}
		visited[name] = true
		for _, dep := range g.nodes[name].Deps {
			visit(dep)
		}
		order = append(order, name)
	}
	visit(g.target)
	return order, nil
}

// FindCycle returns one dependency cycle reachable from the target, first
// and last element equal, or nil when there is none.
func (g *Graph) FindCycle() []string {
	visited := make(map[string]bool)
	onPath := make(map[string]bool)
	var path []string

	var dfs func(name string) []string
	dfs = func(name string) []string {
		visited[name] = true
		onPath[name] = true
		path = append(path, name)

		for _, dep := range g.nodes[name].Deps {
			if onPath[dep] {
				for i, p := range path {
					if p == dep {
						return append(append([]string(nil), path[i:]...), dep)
					}
				}
			}
			if !visited[dep] {
				if cycle := dfs(dep); cycle != nil {
					return cycle
				}
			}
		}

		onPath[name] = false
		path = path[:len(path)-1]
		return nil
	}
	return dfs(g.target)
}

// MissingNames returns dependency names with no registered task, sorted
func (g *Graph) MissingNames() []string {
	var missing []string
	for _, name := range g.Names() {
		if g.nodes[name].Missing {
			missing = append(missing, name)
		}
	}
	return missing
}
