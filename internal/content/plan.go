package content

import (
	"context"

	"github.com/draftsmith-ai/draftsmith/internal/core"
)

// plan selects the fixed section layout for the content type. Static
// lookup, idempotent.
func (p *Pipeline) plan(_ context.Context, s *core.ContentState) error {
	switch s.ContentType {
	case core.ContentTypePresentation:
		s.ContentPlan = &core.ContentPlan{
			Sections: []string{"Title", "Introduction", "Main Points", "Data/Statistics", "Conclusion"},
			Slides:   5,
		}
	case core.ContentTypeDocument:
		s.ContentPlan = &core.ContentPlan{
			Sections: []string{"Executive Summary", "Introduction", "Analysis", "Findings", "Conclusion"},
			Pages:    3,
		}
	default:
		s.ContentPlan = &core.ContentPlan{
			Sections: []string{"Header", "Overview", "Content", "Sources"},
			Layout:   "single_page",
		}
	}
	p.log.Info("content plan created", "run_id", s.RunID, "sections", len(s.ContentPlan.Sections))
	return nil
}

// templates maps each content type to its render template.
var templates = map[core.ContentType]string{
	core.ContentTypePresentation: "modern_slides",
	core.ContentTypeDocument:     "professional_report",
	core.ContentTypeWebpage:      "clean_web",
}

// selectTemplate picks the template for the content type. The default
// arm is unreachable while analyze's fallback holds, but stays for
// completeness.
func (p *Pipeline) selectTemplate(_ context.Context, s *core.ContentState) error {
	t, ok := templates[s.ContentType]
	if !ok {
		t = "default"
	}
	s.Template = t
	p.log.Info("template selected", "run_id", s.RunID, "template", t)
	return nil
}
