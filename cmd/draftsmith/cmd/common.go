package cmd

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/draftsmith-ai/draftsmith/internal/adapters/chart"
	"github.com/draftsmith-ai/draftsmith/internal/adapters/dataset"
	"github.com/draftsmith-ai/draftsmith/internal/adapters/llm"
	"github.com/draftsmith-ai/draftsmith/internal/adapters/search"
	"github.com/draftsmith-ai/draftsmith/internal/adapters/writer"
	"github.com/draftsmith-ai/draftsmith/internal/config"
	"github.com/draftsmith-ai/draftsmith/internal/content"
	"github.com/draftsmith-ai/draftsmith/internal/core"
	"github.com/draftsmith-ai/draftsmith/internal/logging"
	"github.com/draftsmith-ai/draftsmith/internal/sqlagent"
)

// buildModel constructs the Gemini collaborator the driver passes to
// both pipelines.
func buildModel(ctx context.Context, cfg *config.Config, log *logging.Logger) (core.ModelClient, error) {
	return llm.NewGeminiClient(ctx, llm.Options{
		APIKey:      cfg.Model.APIKey,
		Model:       cfg.Model.Model,
		Temperature: cfg.Model.Temperature,
		Logger:      log,
	})
}

// buildContentPipeline wires the full content pipeline from config.
func buildContentPipeline(ctx context.Context, cfg *config.Config, log *logging.Logger) (*content.Pipeline, error) {
	model, err := buildModel(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	timeout, err := cfg.LookupTimeout()
	if err != nil {
		timeout = 5 * time.Second
	}
	httpClient := &http.Client{Timeout: 30 * time.Second}
	ua := cfg.Research.UserAgent

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return nil, err
	}

	return content.New(content.Deps{
		Model:   model,
		Web:     search.NewDuckDuckGoClient(httpClient, ua),
		Wiki:    search.NewWikipediaClient(httpClient, ua, timeout),
		Papers:  search.NewArxivClient(httpClient, ua, timeout),
		Charts:  chart.NewRenderer(cfg.Output.Dir),
		Writers: writer.NewRegistry(cfg.Output.Dir),
		Logger:  log,
	}, content.Config{
		WebResults:   cfg.Research.WebResults,
		PaperResults: cfg.Research.PaperResults,
		MaxSteps:     cfg.Engine.MaxSteps,
	}), nil
}

// buildAgent wires the SQL pipeline and seeds its dataset.
func buildAgent(ctx context.Context, cfg *config.Config, log *logging.Logger) (*sqlagent.Agent, *dataset.SQLite, error) {
	model, err := buildModel(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	ds, err := dataset.Open(cfg.Dataset.Path)
	if err != nil {
		return nil, nil, err
	}
	if err := ds.Seed(ctx); err != nil {
		_ = ds.Close()
		return nil, nil, err
	}
	return sqlagent.New(model, ds, log, cfg.Engine.MaxSteps), ds, nil
}
