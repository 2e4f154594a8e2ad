package core

import (
	"context"
	"fmt"

	"github.com/draftsmith-ai/draftsmith/internal/logging"
)

// DefaultMaxSteps bounds one run. Every step execution counts,
// including revisits through retry edges.
const DefaultMaxSteps = 50

// Engine interprets a compiled graph over a shared state object.
type Engine[S any] struct {
	graph    *Graph[S]
	maxSteps int
	logger   *logging.Logger
}

// EngineOption configures the engine.
type EngineOption[S any] func(*Engine[S])

// WithMaxSteps overrides the step budget for one run.
func WithMaxSteps[S any](n int) EngineOption[S] {
	return func(e *Engine[S]) {
		if n > 0 {
			e.maxSteps = n
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger[S any](l *logging.Logger) EngineOption[S] {
	return func(e *Engine[S]) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an engine for a compiled graph.
func NewEngine[S any](g *Graph[S], opts ...EngineOption[S]) (*Engine[S], error) {
	if g == nil {
		return nil, ErrGraphConfig("nil graph")
	}
	if !g.compiled {
		return nil, ErrGraphConfig(fmt.Sprintf("graph %q: not compiled", g.name))
	}
	e := &Engine[S]{
		graph:    g,
		maxSteps: DefaultMaxSteps,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Run executes the graph from its entry node until End, threading the
// state through every step. On failure the state is returned as-is so
// the caller can inspect what the failing step recorded.
func (e *Engine[S]) Run(ctx context.Context, state *S) (*S, error) {
	log := e.logger.With("graph", e.graph.name)
	current := e.graph.entry
	steps := 0

	for current != End {
		if err := ctx.Err(); err != nil {
			return state, fmt.Errorf("run canceled at %q: %w", current, err)
		}

		steps++
		if steps > e.maxSteps {
			log.Error("step budget exhausted", "node", current, "steps", steps-1)
			return state, ErrRecursionLimit(e.maxSteps)
		}

		fn := e.graph.steps[current]
		log.Debug("executing step", "node", current, "step", steps)
		if err := fn(ctx, state); err != nil {
			log.Error("step failed", "node", current, "error", err)
			return state, fmt.Errorf("step %q: %w", current, err)
		}

		next, err := e.route(current, state, log)
		if err != nil {
			return state, err
		}
		current = next
	}

	log.Debug("run finished", "steps", steps)
	return state, nil
}

// route picks the successor of a node from the routing table.
func (e *Engine[S]) route(n Node, state *S, log *logging.Logger) (Node, error) {
	if br, ok := e.graph.branches[n]; ok {
		label := br.Predicate(state)
		next, ok := br.Targets[label]
		if !ok {
			// Unreachable after Compile unless a predicate returns a
			// label outside its declared table.
			return "", &DomainError{
				Category: ErrCatConfig,
				Code:     CodeUnknownLabel,
				Message:  fmt.Sprintf("graph %q: predicate at %q returned unknown label %q", e.graph.name, n, label),
			}
		}
		log.Debug("routing decision", "node", n, "label", label, "next", next)
		return next, nil
	}
	return e.graph.edges[n], nil
}

// MaxSteps returns the configured step budget.
func (e *Engine[S]) MaxSteps() int {
	return e.maxSteps
}
