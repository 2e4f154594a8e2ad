package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/draftsmith-ai/draftsmith/internal/core"
)

const wikipediaEndpoint = "https://en.wikipedia.org/api/rest_v1/page/summary/"

// WikipediaClient implements core.Encyclopedia on the Wikipedia REST
// summary endpoint.
type WikipediaClient struct {
	http      *http.Client
	endpoint  string
	userAgent string
	timeout   time.Duration
}

// NewWikipediaClient creates a Wikipedia lookup client.
func NewWikipediaClient(httpClient *http.Client, userAgent string, timeout time.Duration) *WikipediaClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &WikipediaClient{
		http:      httpClient,
		endpoint:  wikipediaEndpoint,
		userAgent: userAgent,
		timeout:   timeout,
	}
}

type wikiSummary struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// Lookup fetches the summary for a term. Returns (nil, nil) when no
// page exists.
func (c *WikipediaClient) Lookup(ctx context.Context, term string) (*core.SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	title := strings.ReplaceAll(strings.TrimSpace(term), " ", "_")
	u := c.endpoint + url.PathEscape(title)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, core.ErrCollaborator(core.CodeSearchFailed, "wikipedia request failed").WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, core.ErrCollaborator(core.CodeSearchFailed,
			fmt.Sprintf("wikipedia returned status %d", resp.StatusCode))
	}

	var body wikiSummary
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, core.ErrCollaborator(core.CodeSearchFailed, "decoding wikipedia response").WithCause(err)
	}
	if body.Extract == "" {
		return nil, nil
	}

	return &core.SearchResult{
		Title:   body.Title,
		URL:     body.ContentURLs.Desktop.Page,
		Snippet: body.Extract,
	}, nil
}
