package core

import "time"

// ContentType classifies what kind of artifact a content run produces.
type ContentType string

const (
	ContentTypePresentation ContentType = "presentation"
	ContentTypeDocument     ContentType = "document"
	ContentTypeWebpage      ContentType = "webpage"
)

// ValidContentType checks if a content type is one of the known values.
func ValidContentType(t ContentType) bool {
	switch t {
	case ContentTypePresentation, ContentTypeDocument, ContentTypeWebpage:
		return true
	default:
		return false
	}
}

// String returns the string representation of the content type.
func (t ContentType) String() string {
	return string(t)
}

// SearchResult is one candidate source returned by a research collaborator.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// VerifiedSource is a search result with an assigned credibility score.
type VerifiedSource struct {
	SearchResult
	CredibilityScore float64 `json:"credibility_score"`
}

// ContentPlan is the fixed section layout selected for a content type.
type ContentPlan struct {
	Sections []string `json:"sections"`
	Slides   int      `json:"slides,omitempty"`
	Pages    int      `json:"pages,omitempty"`
	Layout   string   `json:"layout,omitempty"`
}

// Section pairs a planned section name with its generated text.
// Sections keep plan order; a map would lose it.
type Section struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Visual is one generated chart artifact, kept both on disk and as an
// embeddable base64 copy rendered from the same bytes.
type Visual struct {
	Type     string `json:"type"`
	Filename string `json:"filename"`
	Data     string `json:"data"`
	Caption  string `json:"caption"`
}

// Assembly is the final output record produced by the terminal step.
type Assembly struct {
	Type         ContentType       `json:"type"`
	Template     string            `json:"template"`
	Content      []Section         `json:"content"`
	Visuals      []Visual          `json:"visuals"`
	Sources      []string          `json:"sources"`
	Metadata     AssemblyMetadata  `json:"metadata"`
	FilesCreated []string          `json:"files_created"`
}

// AssemblyMetadata carries run-level context into the output record.
type AssemblyMetadata struct {
	RunID        string    `json:"run_id"`
	Query        string    `json:"query"`
	QualityScore float64   `json:"quality_score"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// ContentState is the shared state threaded through the content pipeline.
// It is owned exclusively by the running pipeline instance; no step
// deletes another step's fields, and the state is discarded after the
// terminal step.
type ContentState struct {
	RunID           string           `json:"run_id"`
	Query           string           `json:"query"`
	ContentType     ContentType      `json:"content_type"`
	SearchResults   []SearchResult   `json:"search_results"`
	VerifiedSources []VerifiedSource `json:"verified_sources"`
	ContentPlan     *ContentPlan     `json:"content_plan"`
	Generated       []Section        `json:"generated_content"`
	Visuals         []Visual         `json:"visuals"`
	Template        string           `json:"template"`
	QualityScore    float64          `json:"quality_score"`
	FinalOutput     *Assembly        `json:"final_output"`
	RetryCount      int              `json:"retry_count"`
}

// GeneratedFor returns the generated text for a section name, if any.
func (s *ContentState) GeneratedFor(name string) (string, bool) {
	for _, sec := range s.Generated {
		if sec.Name == name {
			return sec.Text, true
		}
	}
	return "", false
}

// QueryState is the shared state threaded through the SQL pipeline.
// Err non-empty is mutually exclusive with populated Rows/Response for
// the step that set it.
type QueryState struct {
	RunID    string  `json:"run_id"`
	Question string  `json:"question"`
	SQL      string  `json:"sql"`
	Rows     [][]any `json:"results,omitempty"`
	Response string  `json:"response"`
	Err      string  `json:"error"`
}

// Failed reports whether a previous step recorded an error.
func (s *QueryState) Failed() bool {
	return s.Err != ""
}
