// Package search provides the HTTP-backed research collaborators:
// DuckDuckGo for general web search, Wikipedia for encyclopedic
// lookups, and arXiv for academic papers. Each client is best-effort;
// callers treat failures as skippable.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/draftsmith-ai/draftsmith/internal/core"
)

const duckDuckGoEndpoint = "https://api.duckduckgo.com/"

// DuckDuckGoClient implements core.WebSearcher on the DuckDuckGo
// Instant Answer API.
type DuckDuckGoClient struct {
	http      *http.Client
	endpoint  string
	userAgent string
}

// NewDuckDuckGoClient creates a DuckDuckGo search client.
func NewDuckDuckGoClient(httpClient *http.Client, userAgent string) *DuckDuckGoClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &DuckDuckGoClient{
		http:      httpClient,
		endpoint:  duckDuckGoEndpoint,
		userAgent: userAgent,
	}
}

type ddgResponse struct {
	Heading      string `json:"Heading"`
	AbstractText string `json:"AbstractText"`
	AbstractURL  string `json:"AbstractURL"`
	RelatedTopics []struct {
		Text     string `json:"Text"`
		FirstURL string `json:"FirstURL"`
	} `json:"RelatedTopics"`
}

// Search queries DuckDuckGo and returns up to maxResults candidates.
func (c *DuckDuckGoClient) Search(ctx context.Context, query string, maxResults int) ([]core.SearchResult, error) {
	u := fmt.Sprintf("%s?q=%s&format=json&no_html=1&skip_disambig=1", c.endpoint, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, core.ErrCollaborator(core.CodeSearchFailed, "duckduckgo request failed").WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, core.ErrCollaborator(core.CodeSearchFailed,
			fmt.Sprintf("duckduckgo returned status %d", resp.StatusCode))
	}

	var body ddgResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, core.ErrCollaborator(core.CodeSearchFailed, "decoding duckduckgo response").WithCause(err)
	}

	var results []core.SearchResult
	if body.AbstractText != "" && body.AbstractURL != "" {
		results = append(results, core.SearchResult{
			Title:   body.Heading,
			URL:     body.AbstractURL,
			Snippet: body.AbstractText,
		})
	}
	for _, topic := range body.RelatedTopics {
		if len(results) >= maxResults {
			break
		}
		if topic.FirstURL == "" || topic.Text == "" {
			continue
		}
		results = append(results, core.SearchResult{
			Title:   topic.Text,
			URL:     topic.FirstURL,
			Snippet: topic.Text,
		})
	}
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}
