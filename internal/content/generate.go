package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/draftsmith-ai/draftsmith/internal/core"
)

// topSourcesDigest summarizes the three most credible sources for
// prompting.
func topSourcesDigest(sources []core.VerifiedSource) string {
	top := sources
	if len(top) > 3 {
		top = top[:3]
	}
	lines := make([]string, 0, len(top))
	for _, s := range top {
		lines = append(lines, fmt.Sprintf("- %s: %s", s.Title, s.Snippet))
	}
	return strings.Join(lines, "\n")
}

// generate produces text for every planned section, one model call per
// section, sequentially in plan order. A failed call yields a
// placeholder for that section rather than aborting the run.
func (p *Pipeline) generate(ctx context.Context, s *core.ContentState) error {
	if s.ContentPlan == nil {
		return core.ErrMissingField("content_plan")
	}

	digest := topSourcesDigest(s.VerifiedSources)
	generated := make([]core.Section, 0, len(s.ContentPlan.Sections))
	for _, section := range s.ContentPlan.Sections {
		prompt := fmt.Sprintf("Generate %s content for %s about: %s\nBased on: %s",
			section, s.ContentType, s.Query, digest)
		text, err := p.model.Complete(ctx, prompt)
		if err != nil {
			p.log.Warn("section generation failed", "run_id", s.RunID, "section", section, "error", err)
			text = fmt.Sprintf("Content for %s is unavailable.", section)
		}
		generated = append(generated, core.Section{Name: section, Text: text})
	}

	s.Generated = generated
	p.log.Info("content generated", "run_id", s.RunID, "sections", len(generated))
	return nil
}
