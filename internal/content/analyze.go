package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/draftsmith-ai/draftsmith/internal/core"
)

// analyze classifies the query into a content type with one model call.
// A failed or unrecognized response degrades to webpage; this step
// never fails on collaborator trouble.
func (p *Pipeline) analyze(ctx context.Context, s *core.ContentState) error {
	if strings.TrimSpace(s.Query) == "" {
		return core.ErrMissingField("query")
	}

	prompt := fmt.Sprintf(
		"Analyze this query and determine content type (presentation/document/webpage): %s",
		s.Query)
	resp, err := p.model.Complete(ctx, prompt)
	if err != nil {
		p.log.Warn("content type analysis failed, defaulting to webpage", "error", err)
		s.ContentType = core.ContentTypeWebpage
		return nil
	}

	lower := strings.ToLower(resp)
	switch {
	case strings.Contains(lower, "presentation"), strings.Contains(lower, "slides"):
		s.ContentType = core.ContentTypePresentation
	case strings.Contains(lower, "document"), strings.Contains(lower, "report"):
		s.ContentType = core.ContentTypeDocument
	default:
		s.ContentType = core.ContentTypeWebpage
	}
	p.log.Info("content type determined", "run_id", s.RunID, "content_type", s.ContentType)
	return nil
}
