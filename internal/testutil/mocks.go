// Package testutil provides stub collaborators for pipeline tests.
package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/draftsmith-ai/draftsmith/internal/core"
)

// ScriptedModel is a core.ModelClient that replays canned responses in
// order and records every prompt it receives.
type ScriptedModel struct {
	mu        sync.Mutex
	Responses []string
	Err       error
	Prompts   []string
}

// Complete returns the next scripted response. When the script runs
// out, the last response repeats; an empty script returns "".
func (m *ScriptedModel) Complete(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) == 0 {
		return "", nil
	}
	i := len(m.Prompts) - 1
	if i >= len(m.Responses) {
		i = len(m.Responses) - 1
	}
	return m.Responses[i], nil
}

// Calls reports how many prompts the model has received.
func (m *ScriptedModel) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Prompts)
}

// PromptContaining reports whether any recorded prompt contains s.
func (m *ScriptedModel) PromptContaining(s string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.Prompts {
		if strings.Contains(p, s) {
			return true
		}
	}
	return false
}

// StaticSearcher returns the same results for every query. Implements
// both core.WebSearcher and core.PaperSearcher.
type StaticSearcher struct {
	Results []core.SearchResult
}

func (s *StaticSearcher) Search(_ context.Context, _ string, maxResults int) ([]core.SearchResult, error) {
	if len(s.Results) > maxResults {
		return s.Results[:maxResults], nil
	}
	return s.Results, nil
}

// FailingSearcher always fails. Implements core.WebSearcher and
// core.PaperSearcher.
type FailingSearcher struct{}

func (FailingSearcher) Search(context.Context, string, int) ([]core.SearchResult, error) {
	return nil, core.ErrCollaborator(core.CodeSearchFailed, "search unavailable")
}

// StaticEncyclopedia returns one fixed page, or (nil, nil) when Page
// is nil.
type StaticEncyclopedia struct {
	Page *core.SearchResult
}

func (e *StaticEncyclopedia) Lookup(context.Context, string) (*core.SearchResult, error) {
	return e.Page, nil
}

// FailingEncyclopedia always fails.
type FailingEncyclopedia struct{}

func (FailingEncyclopedia) Lookup(context.Context, string) (*core.SearchResult, error) {
	return nil, core.ErrCollaborator(core.CodeSearchFailed, "encyclopedia unavailable")
}

// StubRenderer is a core.ChartRenderer that fabricates a tiny PNG
// without touching the filesystem.
type StubRenderer struct {
	Err      error
	Rendered []core.ChartSpec
}

func (r *StubRenderer) Render(_ context.Context, spec core.ChartSpec, filename string) (string, []byte, error) {
	if r.Err != nil {
		return "", nil, r.Err
	}
	r.Rendered = append(r.Rendered, spec)
	return filename, []byte("\x89PNG\r\n\x1a\nstub"), nil
}

// StubWriter is a core.DocumentWriter that records the states it was
// asked to persist.
type StubWriter struct {
	Filename string
	Err      error
	Written  []*core.ContentState
}

func (w *StubWriter) Write(_ context.Context, state *core.ContentState) (string, error) {
	if w.Err != nil {
		return "", w.Err
	}
	w.Written = append(w.Written, state)
	return w.Filename, nil
}

// StubRegistry resolves every content type to a single stub writer.
type StubRegistry struct {
	Writer *StubWriter
}

func (r *StubRegistry) For(core.ContentType) (core.DocumentWriter, bool) {
	if r.Writer == nil {
		return nil, false
	}
	return r.Writer, true
}

// MemoryDataset is a core.Dataset that replays scripted rows.
type MemoryDataset struct {
	Rows     [][]any
	Err      error
	Executed []string
	Seeded   bool
}

func (d *MemoryDataset) Seed(context.Context) error {
	d.Seeded = true
	return nil
}

func (d *MemoryDataset) Execute(_ context.Context, sql string) ([][]any, error) {
	d.Executed = append(d.Executed, sql)
	if d.Err != nil {
		return nil, d.Err
	}
	return d.Rows, nil
}

func (d *MemoryDataset) Close() error { return nil }
