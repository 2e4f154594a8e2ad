package core

import "context"

// ModelClient is the language-model collaborator. Implementations may be
// slow or fail; failures surface as collaborator errors, never panics.
type ModelClient interface {
	// Complete sends one prompt and returns the model's text response.
	Complete(ctx context.Context, prompt string) (string, error)
}

// WebSearcher queries a general web search collaborator.
type WebSearcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error)
}

// Encyclopedia looks up a single encyclopedic summary for a term.
// A nil result with nil error means no page exists.
type Encyclopedia interface {
	Lookup(ctx context.Context, term string) (*SearchResult, error)
}

// PaperSearcher queries an academic-paper search collaborator.
type PaperSearcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error)
}

// ChartSpec describes one chart to render.
type ChartSpec struct {
	Title      string
	XLabel     string
	YLabel     string
	Categories []string
	Values     []float64
}

// ChartRenderer renders a chart once and returns both the on-disk path
// and the raw PNG bytes from the same rendering call, so the file and
// any embedded copy are pixel-identical.
type ChartRenderer interface {
	Render(ctx context.Context, spec ChartSpec, filename string) (path string, png []byte, err error)
}

// DocumentWriter persists an assembled content state as one file of a
// specific format and returns the filename it created.
type DocumentWriter interface {
	Write(ctx context.Context, state *ContentState) (filename string, err error)
}

// WriterRegistry resolves the format-specific writer for a content type.
type WriterRegistry interface {
	For(t ContentType) (DocumentWriter, bool)
}

// Dataset is the fixed relational collaborator for the SQL pipeline.
// The underlying store is not safe for concurrent writers; callers must
// serialize access externally.
type Dataset interface {
	// Seed (re)creates the fixed table and its rows. Idempotent.
	Seed(ctx context.Context) error
	// Execute runs one statement and returns all rows.
	Execute(ctx context.Context, sql string) ([][]any, error)
	Close() error
}
