package search

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/draftsmith-ai/draftsmith/internal/core"
)

const arxivEndpoint = "http://export.arxiv.org/api/query"

// ArxivClient implements core.PaperSearcher on the arXiv Atom API.
type ArxivClient struct {
	http      *http.Client
	endpoint  string
	userAgent string
	timeout   time.Duration
}

// NewArxivClient creates an arXiv search client.
func NewArxivClient(httpClient *http.Client, userAgent string, timeout time.Duration) *ArxivClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ArxivClient{
		http:      httpClient,
		endpoint:  arxivEndpoint,
		userAgent: userAgent,
		timeout:   timeout,
	}
}

type arxivFeed struct {
	XMLName xml.Name     `xml:"feed"`
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID      string `xml:"id"`
	Title   string `xml:"title"`
	Summary string `xml:"summary"`
}

// Search queries arXiv and returns up to maxResults papers.
func (c *ArxivClient) Search(ctx context.Context, query string, maxResults int) ([]core.SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := fmt.Sprintf("%s?search_query=all:%s&max_results=%d", c.endpoint, url.QueryEscape(query), maxResults)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, core.ErrCollaborator(core.CodeSearchFailed, "arxiv request failed").WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, core.ErrCollaborator(core.CodeSearchFailed,
			fmt.Sprintf("arxiv returned status %d", resp.StatusCode))
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, core.ErrCollaborator(core.CodeSearchFailed, "decoding arxiv feed").WithCause(err)
	}

	var results []core.SearchResult
	for _, entry := range feed.Entries {
		if len(results) >= maxResults {
			break
		}
		title := strings.TrimSpace(entry.Title)
		id := strings.TrimSpace(entry.ID)
		if title == "" || id == "" {
			continue
		}
		results = append(results, core.SearchResult{
			Title:   title,
			URL:     id,
			Snippet: strings.TrimSpace(entry.Summary),
		})
	}
	return results, nil
}
