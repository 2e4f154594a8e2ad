// Package content implements the research-backed content pipeline:
// classify the request, gather and verify sources, plan and generate
// sections, optionally render a chart, and assemble the final artifact.
package content

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/draftsmith-ai/draftsmith/internal/core"
	"github.com/draftsmith-ai/draftsmith/internal/logging"
)

// Node names for the content graph.
const (
	nodeAnalyze  core.Node = "analyze"
	nodeResearch core.Node = "research"
	nodeVerify   core.Node = "verify"
	nodePlan     core.Node = "plan"
	nodeGenerate core.Node = "generate"
	nodeVisuals  core.Node = "visuals"
	nodeTemplate core.Node = "template"
	nodeAssemble core.Node = "assemble"
)

// Deps are the collaborators a pipeline needs. All are required except
// the three research clients, which may be nil to disable that source.
type Deps struct {
	Model   core.ModelClient
	Web     core.WebSearcher
	Wiki    core.Encyclopedia
	Papers  core.PaperSearcher
	Charts  core.ChartRenderer
	Writers core.WriterRegistry
	Logger  *logging.Logger
}

// Config tunes per-run behavior.
type Config struct {
	WebResults   int
	PaperResults int
	MaxSteps     int
}

// Pipeline owns the content graph and its collaborators. One Pipeline
// serves many runs; each run gets its own state.
type Pipeline struct {
	model   core.ModelClient
	web     core.WebSearcher
	wiki    core.Encyclopedia
	papers  core.PaperSearcher
	charts  core.ChartRenderer
	writers core.WriterRegistry
	log     *logging.Logger

	webResults   int
	paperResults int
	maxSteps     int

	// Routing policies. The retry edges are wired but the default
	// policies never take them; tests may inject a real policy.
	retryResearch core.Predicate[core.ContentState]
	retryVerify   core.Predicate[core.ContentState]
}

// Option overrides pipeline behavior.
type Option func(*Pipeline)

// WithResearchPolicy replaces the research retry predicate.
func WithResearchPolicy(p core.Predicate[core.ContentState]) Option {
	return func(pl *Pipeline) { pl.retryResearch = p }
}

// WithVerificationPolicy replaces the verification retry predicate.
func WithVerificationPolicy(p core.Predicate[core.ContentState]) Option {
	return func(pl *Pipeline) { pl.retryVerify = p }
}

// New builds a pipeline from its collaborators.
func New(deps Deps, cfg Config, opts ...Option) *Pipeline {
	if cfg.WebResults <= 0 {
		cfg.WebResults = 3
	}
	if cfg.PaperResults <= 0 {
		cfg.PaperResults = 2
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = core.DefaultMaxSteps
	}
	log := deps.Logger
	if log == nil {
		log = logging.NewNop()
	}
	p := &Pipeline{
		model:         deps.Model,
		web:           deps.Web,
		wiki:          deps.Wiki,
		papers:        deps.Papers,
		charts:        deps.Charts,
		writers:       deps.Writers,
		log:           log.WithPipeline("content"),
		webResults:    cfg.WebResults,
		paperResults:  cfg.PaperResults,
		maxSteps:      cfg.MaxSteps,
		retryResearch: proceedAlways,
		retryVerify:   proceedAlways,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// proceedAlways is the placeholder retry policy: the retry edges exist
// in the routing table but are never taken.
func proceedAlways(*core.ContentState) string { return "proceed" }

// needsVisuals routes chart-bearing content types through the visual
// step.
func needsVisuals(s *core.ContentState) string {
	switch s.ContentType {
	case core.ContentTypePresentation, core.ContentTypeDocument:
		return "with_visuals"
	default:
		return "no_visuals"
	}
}

// Graph compiles the content routing table.
func (p *Pipeline) Graph() (*core.Graph[core.ContentState], error) {
	g := core.NewGraph[core.ContentState]("content")
	g.AddNode(nodeAnalyze, p.analyze).
		AddNode(nodeResearch, p.research).
		AddNode(nodeVerify, p.verify).
		AddNode(nodePlan, p.plan).
		AddNode(nodeGenerate, p.generate).
		AddNode(nodeVisuals, p.visuals).
		AddNode(nodeTemplate, p.selectTemplate).
		AddNode(nodeAssemble, p.assemble)

	g.SetEntry(nodeAnalyze)
	g.AddEdge(nodeAnalyze, nodeResearch)
	g.AddBranch(nodeResearch, p.retryResearch, map[string]core.Node{
		"proceed": nodeVerify,
		"retry":   nodeResearch,
	})
	g.AddBranch(nodeVerify, p.retryVerify, map[string]core.Node{
		"proceed": nodePlan,
		"retry":   nodeResearch,
	})
	g.AddEdge(nodePlan, nodeGenerate)
	g.AddBranch(nodeGenerate, needsVisuals, map[string]core.Node{
		"with_visuals": nodeVisuals,
		"no_visuals":   nodeTemplate,
	})
	g.AddEdge(nodeVisuals, nodeTemplate)
	g.AddEdge(nodeTemplate, nodeAssemble)
	g.AddEdge(nodeAssemble, core.End)
	return g.Compile()
}

// Run executes one content run for a query.
func (p *Pipeline) Run(ctx context.Context, query string) (*core.ContentState, error) {
	if strings.TrimSpace(query) == "" {
		return nil, core.ErrInvalidInput(core.CodeEmptyQuery, "query must not be empty")
	}
	g, err := p.Graph()
	if err != nil {
		return nil, err
	}
	engine, err := core.NewEngine(g,
		core.WithMaxSteps[core.ContentState](p.maxSteps),
		core.WithLogger[core.ContentState](p.log))
	if err != nil {
		return nil, err
	}
	state := &core.ContentState{
		RunID: uuid.NewString(),
		Query: strings.TrimSpace(query),
	}
	return engine.Run(ctx, state)
}
