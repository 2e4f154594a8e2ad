package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftsmith-ai/draftsmith/internal/core"
)

type stubContent struct {
	state *core.ContentState
	err   error
}

func (s *stubContent) Run(_ context.Context, _ string) (*core.ContentState, error) {
	return s.state, s.err
}

type stubSQL struct {
	state *core.QueryState
	err   error
}

func (s *stubSQL) Run(_ context.Context, _ string) (*core.QueryState, error) {
	return s.state, s.err
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv := NewServer(&stubContent{}, &stubSQL{}, WithVersion("1.2.3"))
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "1.2.3", body["version"])
}

func TestGenerate(t *testing.T) {
	state := &core.ContentState{
		RunID:       "run-42",
		ContentType: core.ContentTypePresentation,
		Template:    "modern_slides",
		FinalOutput: &core.Assembly{
			Type:         core.ContentTypePresentation,
			FilesCreated: []string{"x_presentation.pptx"},
		},
	}
	srv := NewServer(&stubContent{state: state}, &stubSQL{})

	rec := postJSON(t, srv.Handler(), "/api/generate", map[string]string{"query": "make slides"})
	require.Equal(t, http.StatusOK, rec.Code)

	var body generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "run-42", body.RunID)
	assert.Equal(t, "presentation", body.ContentType)
	assert.Equal(t, []string{"x_presentation.pptx"}, body.FilesCreated)
}

func TestGenerate_EmptyQuery(t *testing.T) {
	srv := NewServer(&stubContent{}, &stubSQL{})
	rec := postJSON(t, srv.Handler(), "/api/generate", map[string]string{"query": "  "})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGenerate_PipelineError(t *testing.T) {
	srv := NewServer(&stubContent{err: core.ErrRecursionLimit(50)}, &stubSQL{})
	rec := postJSON(t, srv.Handler(), "/api/generate", map[string]string{"query": "q"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAsk(t *testing.T) {
	state := &core.QueryState{
		RunID:    "run-7",
		SQL:      "SELECT name FROM students",
		Response: "Alice, Bob and Charlie.",
	}
	srv := NewServer(&stubContent{}, &stubSQL{state: state})

	rec := postJSON(t, srv.Handler(), "/api/ask", map[string]string{"question": "who?"})
	require.Equal(t, http.StatusOK, rec.Code)

	var body askResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "SELECT name FROM students", body.SQL)
	assert.Equal(t, "Alice, Bob and Charlie.", body.Response)
	assert.Empty(t, body.Error)
}

func TestAsk_BadBody(t *testing.T) {
	srv := NewServer(&stubContent{}, &stubSQL{})
	req := httptest.NewRequest(http.MethodPost, "/api/ask", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAsk_CollaboratorFailure(t *testing.T) {
	srv := NewServer(&stubContent{}, &stubSQL{err: core.ErrCollaborator(core.CodeModelFailed, "down")})
	rec := postJSON(t, srv.Handler(), "/api/ask", map[string]string{"question": "q"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
