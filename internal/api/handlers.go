package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/draftsmith-ai/draftsmith/internal/core"
)

// ContentService runs one content generation per call.
type ContentService interface {
	Run(ctx context.Context, query string) (*core.ContentState, error)
}

// SQLService answers one question per call.
type SQLService interface {
	Run(ctx context.Context, question string) (*core.QueryState, error)
}

type generateRequest struct {
	Query string `json:"query"`
}

type generateResponse struct {
	RunID        string         `json:"run_id"`
	ContentType  string         `json:"content_type"`
	Template     string         `json:"template"`
	QualityScore float64        `json:"quality_score"`
	FilesCreated []string       `json:"files_created"`
	Output       *core.Assembly `json:"output"`
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	RunID    string `json:"run_id"`
	SQL      string `json:"sql"`
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.version,
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "query is required"})
		return
	}

	state, err := s.content.Run(r.Context(), req.Query)
	if err != nil {
		s.writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	resp := generateResponse{
		RunID:        state.RunID,
		ContentType:  state.ContentType.String(),
		Template:     state.Template,
		QualityScore: state.QualityScore,
		Output:       state.FinalOutput,
	}
	if state.FinalOutput != nil {
		resp.FilesCreated = state.FinalOutput.FilesCreated
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "question is required"})
		return
	}

	state, err := s.sql.Run(r.Context(), req.Question)
	if err != nil {
		s.writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}

	s.writeJSON(w, http.StatusOK, askResponse{
		RunID:    state.RunID,
		SQL:      state.SQL,
		Response: state.Response,
		Error:    state.Err,
	})
}

// statusFor maps domain error categories onto HTTP status codes.
func statusFor(err error) int {
	var domErr *core.DomainError
	if !errors.As(err, &domErr) {
		return http.StatusInternalServerError
	}
	switch domErr.Category {
	case core.ErrCatValidation:
		return http.StatusUnprocessableEntity
	case core.ErrCatCollaborator:
		return http.StatusBadGateway
	case core.ErrCatLimit:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
