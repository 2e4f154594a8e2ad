package content

import (
	"context"
	"time"

	"github.com/draftsmith-ai/draftsmith/internal/core"
)

// assemble is the terminal step: it builds the final output record and
// delegates to the one format writer matching the content type. A
// failed write is logged and leaves FilesCreated empty; the assembled
// record still completes the run.
func (p *Pipeline) assemble(ctx context.Context, s *core.ContentState) error {
	sources := make([]string, 0, len(s.VerifiedSources))
	for _, src := range s.VerifiedSources {
		sources = append(sources, src.URL)
	}

	assembly := &core.Assembly{
		Type:     s.ContentType,
		Template: s.Template,
		Content:  s.Generated,
		Visuals:  s.Visuals,
		Sources:  sources,
		Metadata: core.AssemblyMetadata{
			RunID:        s.RunID,
			Query:        s.Query,
			QualityScore: s.QualityScore,
			GeneratedAt:  time.Now().UTC(),
		},
	}

	w, ok := p.writers.For(s.ContentType)
	if !ok {
		p.log.Error("no writer registered for content type", "run_id", s.RunID, "content_type", s.ContentType)
	} else {
		filename, err := w.Write(ctx, s)
		if err != nil {
			p.log.Error("document write failed", "run_id", s.RunID, "error", err)
		} else {
			assembly.FilesCreated = append(assembly.FilesCreated, filename)
		}
	}

	s.FinalOutput = assembly
	p.log.Info("content assembled", "run_id", s.RunID, "files", len(assembly.FilesCreated))
	return nil
}
