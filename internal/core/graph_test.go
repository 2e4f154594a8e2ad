package core

import (
	"context"
	"testing"
)

type testState struct {
	visited []string
	flag    bool
}

func visit(name string) StepFunc[testState] {
	return func(_ context.Context, s *testState) error {
		s.visited = append(s.visited, name)
		return nil
	}
}

func TestGraph_CompileRejectsMissingEntry(t *testing.T) {
	g := NewGraph[testState]("t")
	g.AddNode("a", visit("a")).AddEdge("a", End)
	if _, err := g.Compile(); err == nil {
		t.Fatalf("expected compile error for missing entry")
	}
}

func TestGraph_CompileRejectsUnknownEdgeTarget(t *testing.T) {
	g := NewGraph[testState]("t")
	g.AddNode("a", visit("a")).SetEntry("a").AddEdge("a", "ghost")
	if _, err := g.Compile(); err == nil {
		t.Fatalf("expected compile error for unknown edge target")
	}
}

func TestGraph_CompileRejectsDanglingBranchLabel(t *testing.T) {
	g := NewGraph[testState]("t")
	g.AddNode("a", visit("a")).SetEntry("a")
	g.AddBranch("a", func(*testState) string { return "go" }, map[string]Node{
		"go": "missing",
	})
	_, err := g.Compile()
	if err == nil {
		t.Fatalf("expected compile error for dangling branch label")
	}
	if !IsCategory(err, ErrCatConfig) {
		t.Fatalf("expected config category, got %v", GetCategory(err))
	}
}

func TestGraph_CompileRejectsDeadEndNode(t *testing.T) {
	g := NewGraph[testState]("t")
	g.AddNode("a", visit("a")).AddNode("b", visit("b")).SetEntry("a")
	g.AddEdge("a", "b")
	// b has no route out
	if _, err := g.Compile(); err == nil {
		t.Fatalf("expected compile error for node without outgoing route")
	}
}

func TestGraph_CompileRejectsEdgeAndBranchOnSameNode(t *testing.T) {
	g := NewGraph[testState]("t")
	g.AddNode("a", visit("a")).SetEntry("a")
	g.AddEdge("a", End)
	g.AddBranch("a", func(*testState) string { return "x" }, map[string]Node{"x": End})
	if _, err := g.Compile(); err == nil {
		t.Fatalf("expected compile error for node with edge and branch")
	}
}

func TestGraph_MermaidIsDeterministic(t *testing.T) {
	build := func() *Graph[testState] {
		g := NewGraph[testState]("t")
		g.AddNode("a", visit("a")).AddNode("b", visit("b")).SetEntry("a")
		g.AddBranch("a", func(*testState) string { return "next" },
			map[string]Node{"again": "a", "next": "b"})
		g.AddEdge("b", End)
		return g
	}
	want := "flowchart TD\n" +
		"    START([start]) --> a\n" +
		"    a -->|again| a\n" +
		"    a -->|next| b\n" +
		"    b --> END([end])\n"
	for i := 0; i < 10; i++ {
		if got := build().Mermaid(); got != want {
			t.Fatalf("iteration %d:\ngot:\n%s\nwant:\n%s", i, got, want)
		}
	}
}

func TestGraph_CompileAcceptsValidTable(t *testing.T) {
	g := NewGraph[testState]("t")
	g.AddNode("a", visit("a")).AddNode("b", visit("b")).SetEntry("a")
	g.AddBranch("a", func(s *testState) string {
		if s.flag {
			return "again"
		}
		return "next"
	}, map[string]Node{"again": "a", "next": "b"})
	g.AddEdge("b", End)
	if _, err := g.Compile(); err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}
}
