// Package core holds the pipeline domain: shared state records, the
// routing-table graph, the engine that interprets it, collaborator
// ports, and the error taxonomy.
package core

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Node names one step in a pipeline graph.
type Node string

// End is the terminal marker. Routing to End finishes the run.
const End Node = "__end__"

// StepFunc is one named transformation over the shared pipeline state.
type StepFunc[S any] func(ctx context.Context, state *S) error

// Predicate selects the next step at a decision point by returning a
// label from the branch's target table.
type Predicate[S any] func(state *S) string

// Branch is a conditional routing entry: a predicate plus the labeled
// targets it may select from.
type Branch[S any] struct {
	Predicate Predicate[S]
	Targets   map[string]Node
}

// Graph is a static routing table over named steps. It is built
// imperatively, then compiled; Compile validates the table so that a
// dangling label or edge fails at construction time, not mid-run.
type Graph[S any] struct {
	name     string
	entry    Node
	steps    map[Node]StepFunc[S]
	edges    map[Node]Node
	branches map[Node]Branch[S]
	compiled bool
}

// NewGraph creates an empty graph with a diagnostic name.
func NewGraph[S any](name string) *Graph[S] {
	return &Graph[S]{
		name:     name,
		steps:    make(map[Node]StepFunc[S]),
		edges:    make(map[Node]Node),
		branches: make(map[Node]Branch[S]),
	}
}

// Name returns the graph's diagnostic name.
func (g *Graph[S]) Name() string {
	return g.name
}

// AddNode registers a step under a node name.
func (g *Graph[S]) AddNode(n Node, fn StepFunc[S]) *Graph[S] {
	g.steps[n] = fn
	return g
}

// SetEntry marks the initial node.
func (g *Graph[S]) SetEntry(n Node) *Graph[S] {
	g.entry = n
	return g
}

// AddEdge registers an unconditional transition.
func (g *Graph[S]) AddEdge(from, to Node) *Graph[S] {
	g.edges[from] = to
	return g
}

// AddBranch registers a decision point. The predicate must return one
// of the target labels; anything else is a fatal configuration error.
func (g *Graph[S]) AddBranch(from Node, p Predicate[S], targets map[string]Node) *Graph[S] {
	g.branches[from] = Branch[S]{Predicate: p, Targets: targets}
	return g
}

// Compile validates the routing table and freezes the graph.
func (g *Graph[S]) Compile() (*Graph[S], error) {
	if g.entry == "" {
		return nil, ErrGraphConfig(fmt.Sprintf("graph %q: no entry point", g.name))
	}
	if _, ok := g.steps[g.entry]; !ok {
		return nil, ErrGraphConfig(fmt.Sprintf("graph %q: entry %q is not a registered node", g.name, g.entry))
	}
	for from, to := range g.edges {
		if _, ok := g.steps[from]; !ok {
			return nil, ErrGraphConfig(fmt.Sprintf("graph %q: edge from unknown node %q", g.name, from))
		}
		if to != End {
			if _, ok := g.steps[to]; !ok {
				return nil, ErrGraphConfig(fmt.Sprintf("graph %q: edge %q -> unknown node %q", g.name, from, to))
			}
		}
	}
	for from, br := range g.branches {
		if _, ok := g.steps[from]; !ok {
			return nil, ErrGraphConfig(fmt.Sprintf("graph %q: branch from unknown node %q", g.name, from))
		}
		if br.Predicate == nil {
			return nil, ErrGraphConfig(fmt.Sprintf("graph %q: branch at %q has no predicate", g.name, from))
		}
		if len(br.Targets) == 0 {
			return nil, ErrGraphConfig(fmt.Sprintf("graph %q: branch at %q has no targets", g.name, from))
		}
		for label, to := range br.Targets {
			if to != End {
				if _, ok := g.steps[to]; !ok {
					return nil, ErrGraphConfig(fmt.Sprintf("graph %q: branch %q label %q -> unknown node %q", g.name, from, label, to))
				}
			}
		}
	}
	// Every node needs exactly one way out: an edge or a branch.
	for n := range g.steps {
		_, hasEdge := g.edges[n]
		_, hasBranch := g.branches[n]
		if hasEdge && hasBranch {
			return nil, ErrGraphConfig(fmt.Sprintf("graph %q: node %q has both an edge and a branch", g.name, n))
		}
		if !hasEdge && !hasBranch {
			return nil, ErrGraphConfig(fmt.Sprintf("graph %q: node %q has no outgoing route", g.name, n))
		}
	}
	g.compiled = true
	return g, nil
}

// Nodes returns all registered node names in deterministic order.
func (g *Graph[S]) Nodes() []Node {
	out := make([]Node, 0, len(g.steps))
	for n := range g.steps {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Mermaid renders the routing table as a Mermaid flowchart, one line
// per transition, with branch labels on the arrows. Nodes and labels
// are emitted in sorted order so the output is deterministic.
func (g *Graph[S]) Mermaid() string {
	var b strings.Builder
	b.WriteString("flowchart TD\n")
	fmt.Fprintf(&b, "    START([start]) --> %s\n", g.entry)
	for _, n := range g.Nodes() {
		if to, ok := g.edges[n]; ok {
			fmt.Fprintf(&b, "    %s --> %s\n", n, mermaidNode(to))
		}
		if br, ok := g.branches[n]; ok {
			labels := make([]string, 0, len(br.Targets))
			for label := range br.Targets {
				labels = append(labels, label)
			}
			sort.Strings(labels)
			for _, label := range labels {
				fmt.Fprintf(&b, "    %s -->|%s| %s\n", n, label, mermaidNode(br.Targets[label]))
			}
		}
	}
	return b.String()
}

// mermaidNode maps the internal terminal marker to a printable name.
func mermaidNode(n Node) string {
	if n == End {
		return "END([end])"
	}
	return string(n)
}
