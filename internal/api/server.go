// Package api exposes the two pipelines over HTTP.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/draftsmith-ai/draftsmith/internal/logging"
)

// Server serves the pipeline API. One pipeline run per request; each
// request gets its own state.
type Server struct {
	router  chi.Router
	content ContentService
	sql     SQLService
	logger  *logging.Logger
	version string
	origins []string
}

// ServerOption configures the server.
type ServerOption func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *logging.Logger) ServerOption {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithVersion sets the version string reported by the health endpoint.
func WithVersion(v string) ServerOption {
	return func(s *Server) { s.version = v }
}

// WithAllowedOrigins restricts CORS origins.
func WithAllowedOrigins(origins []string) ServerOption {
	return func(s *Server) {
		if len(origins) > 0 {
			s.origins = origins
		}
	}
}

// NewServer creates an API server over the two pipeline services.
func NewServer(content ContentService, sql SQLService, opts ...ServerOption) *Server {
	s := &Server{
		content: content,
		sql:     sql,
		logger:  logging.NewNop(),
		version: "dev",
		origins: []string{"*"},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.setupRouter()
	return s
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Minute))
	r.Use(s.loggingMiddleware)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   s.origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	})
	r.Use(corsHandler.Handler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/generate", s.handleGenerate)
		r.Post("/ask", s.handleAsk)
	})

	return r
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func() {
			s.logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).String())
		}()
		next.ServeHTTP(ww, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "error", err)
	}
}
