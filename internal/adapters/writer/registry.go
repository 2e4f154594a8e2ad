// Package writer persists assembled content runs as concrete artifacts:
// a .pptx presentation, a .pdf document, or an .html webpage, plus the
// machine-readable JSON summary of the run.
package writer

import "github.com/draftsmith-ai/draftsmith/internal/core"

// Registry maps each content type to its format writer.
type Registry struct {
	writers map[core.ContentType]core.DocumentWriter
}

// NewRegistry builds the standard registry with all three format
// writers targeting outDir.
func NewRegistry(outDir string) *Registry {
	return &Registry{
		writers: map[core.ContentType]core.DocumentWriter{
			core.ContentTypePresentation: NewSlidesWriter(outDir),
			core.ContentTypeDocument:     NewPDFWriter(outDir),
			core.ContentTypeWebpage:      NewWebpageWriter(outDir),
		},
	}
}

// For returns the writer for a content type.
func (r *Registry) For(t core.ContentType) (core.DocumentWriter, bool) {
	w, ok := r.writers[t]
	return w, ok
}
