// Package sqlagent implements the question-answering pipeline: turn a
// natural-language question into a SELECT against the students table,
// execute it, and narrate the rows.
package sqlagent

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/draftsmith-ai/draftsmith/internal/core"
	"github.com/draftsmith-ai/draftsmith/internal/logging"
)

// Node names for the SQL graph.
const (
	nodeParse    core.Node = "parse"
	nodeValidate core.Node = "validate"
	nodeExecute  core.Node = "execute"
	nodeRespond  core.Node = "respond"
)

// Agent owns the SQL graph and its collaborators.
type Agent struct {
	model    core.ModelClient
	dataset  core.Dataset
	log      *logging.Logger
	maxSteps int
}

// New builds an agent from its collaborators.
func New(model core.ModelClient, dataset core.Dataset, log *logging.Logger, maxSteps int) *Agent {
	if log == nil {
		log = logging.NewNop()
	}
	if maxSteps <= 0 {
		maxSteps = core.DefaultMaxSteps
	}
	return &Agent{
		model:    model,
		dataset:  dataset,
		log:      log.WithPipeline("sql"),
		maxSteps: maxSteps,
	}
}

// shouldReparse routes a rejected statement back to parse for another
// attempt; execution errors and clean statements both continue forward.
// The step budget bounds the re-parse loop.
func shouldReparse(s *core.QueryState) string {
	if s.Failed() && strings.Contains(s.Err, "Only SELECT") {
		return "parse"
	}
	return "execute"
}

// Graph compiles the SQL routing table.
func (a *Agent) Graph() (*core.Graph[core.QueryState], error) {
	g := core.NewGraph[core.QueryState]("sql")
	g.AddNode(nodeParse, a.parse).
		AddNode(nodeValidate, a.validate).
		AddNode(nodeExecute, a.execute).
		AddNode(nodeRespond, a.respond)

	g.SetEntry(nodeParse)
	g.AddEdge(nodeParse, nodeValidate)
	g.AddBranch(nodeValidate, shouldReparse, map[string]core.Node{
		"parse":   nodeParse,
		"execute": nodeExecute,
	})
	g.AddEdge(nodeExecute, nodeRespond)
	g.AddEdge(nodeRespond, core.End)
	return g.Compile()
}

// Run answers one question.
func (a *Agent) Run(ctx context.Context, question string) (*core.QueryState, error) {
	if strings.TrimSpace(question) == "" {
		return nil, core.ErrInvalidInput(core.CodeEmptyQuestion, "question must not be empty")
	}
	g, err := a.Graph()
	if err != nil {
		return nil, err
	}
	engine, err := core.NewEngine(g,
		core.WithMaxSteps[core.QueryState](a.maxSteps),
		core.WithLogger[core.QueryState](a.log))
	if err != nil {
		return nil, err
	}
	state := &core.QueryState{
		RunID:    uuid.NewString(),
		Question: strings.TrimSpace(question),
	}
	return engine.Run(ctx, state)
}
