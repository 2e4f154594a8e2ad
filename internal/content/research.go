package content

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/draftsmith-ai/draftsmith/internal/core"
)

// Snippet caps. Academic abstracts get more room than web blurbs.
const (
	snippetLimit      = 200
	paperSnippetLimit = 300
)

// research gathers candidate sources from the web, encyclopedia and
// academic collaborators. Each is best-effort: a failure is logged and
// skipped, never aborts the step. An empty harvest is replaced by a
// deterministic synthetic pair so downstream steps always have sources.
func (p *Pipeline) research(ctx context.Context, s *core.ContentState) error {
	var results []core.SearchResult

	if p.web != nil {
		web, err := p.web.Search(ctx, s.Query, p.webResults)
		if err != nil {
			p.log.Warn("web search failed", "run_id", s.RunID, "error", err)
		}
		for _, r := range web {
			r.Snippet = truncate(r.Snippet, snippetLimit)
			results = append(results, r)
		}
	}

	if p.wiki != nil {
		// Short terms match encyclopedia titles far better than full
		// queries.
		page, err := p.wiki.Lookup(ctx, firstWords(s.Query, 2))
		if err != nil {
			p.log.Warn("encyclopedia lookup failed", "run_id", s.RunID, "error", err)
		}
		if page != nil {
			page.Snippet = truncate(page.Snippet, snippetLimit)
			results = append(results, *page)
		}
	}

	if p.papers != nil {
		papers, err := p.papers.Search(ctx, s.Query, p.paperResults)
		if err != nil {
			p.log.Warn("paper search failed", "run_id", s.RunID, "error", err)
		}
		for _, r := range papers {
			r.Snippet = truncate(r.Snippet, paperSnippetLimit)
			results = append(results, r)
		}
	}

	if len(results) == 0 {
		p.log.Warn("all research collaborators came up empty, using fallback sources", "run_id", s.RunID)
		results = fallbackSources(s.Query)
	}

	s.SearchResults = results
	p.log.Info("research complete", "run_id", s.RunID, "results", len(results))
	return nil
}

// fallbackSources is the synthetic source pair substituted when every
// collaborator fails. Deterministic for a given query.
func fallbackSources(query string) []core.SearchResult {
	return []core.SearchResult{
		{
			Title:   "Academic Research: " + query,
			URL:     "https://scholar.google.com",
			Snippet: "Academic research and scholarly articles about " + query,
		},
		{
			Title:   "Industry Analysis: " + query,
			URL:     "https://industry-reports.com",
			Snippet: "Industry analysis and market research for " + query,
		},
	}
}

// truncate caps s at limit characters, marking the cut with an
// ellipsis. Counts runes, not bytes, so a multibyte character is never
// split.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}

// firstWords returns the first n whitespace-separated words of s.
func firstWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}
