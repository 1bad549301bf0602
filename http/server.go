package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/postlens/postlens"
)

// Server exposes the analysis pipeline over HTTP. The pipeline runs
// classify → fetch → extract → orchestrate; only classification and fetch
// failures abort a request, per-provider failures stay inside the result
// map.
type Server struct {
	Fetcher      postlens.Fetcher
	Extractor    postlens.Extractor
	Orchestrator postlens.Orchestrator
	Logger       *slog.Logger
}

// NewServer creates a Server wired with its collaborators.
func NewServer(fetcher postlens.Fetcher, extractor postlens.Extractor, orchestrator postlens.Orchestrator, logger *slog.Logger) *Server {
	return &Server{
		Fetcher:      fetcher,
		Extractor:    extractor,
		Orchestrator: orchestrator,
		Logger:       logger,
	}
}

// envelope is the fixed response shape for every endpoint.
type envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// analyzeRequest is the POST /api/analyze body.
type analyzeRequest struct {
	URL string `json:"url"`
}

// analyzeData is the success payload for POST /api/analyze.
type analyzeData struct {
	Title        string               `json:"title"`
	Author       string               `json:"author"`
	ReadCount    string               `json:"readCount"`
	CommentCount string               `json:"commentCount"`
	AIResults    postlens.AnalysisMap `json:"aiResults"`
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	return s.withRequestID(mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "postlens is running")
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		s.writeJSON(w, http.StatusBadRequest, envelope{Code: 400, Message: "URL is required"})
		return
	}

	platform, err := postlens.Classify(req.URL)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, envelope{Code: 400, Message: postlens.ErrorMessage(err)})
		return
	}

	html, err := s.Fetcher.Fetch(r.Context(), req.URL)
	if err != nil {
		s.logger().Error("source page fetch failed", "url", req.URL, "err", err)
		s.writeJSON(w, http.StatusInternalServerError, envelope{Code: 500, Message: fmt.Sprintf("Failed to fetch content: %v", err)})
		return
	}

	content := s.Extractor.Extract(platform, html)
	results := s.Orchestrator.RunAll(r.Context(), content)

	s.writeJSON(w, http.StatusOK, envelope{
		Code:    200,
		Message: "Success",
		Data: &analyzeData{
			Title:        content.Title,
			Author:       content.Author,
			ReadCount:    content.ReadCount,
			CommentCount: content.CommentCount,
			AIResults:    results,
		},
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		s.logger().Error("response encoding failed", "err", err)
	}
}

// withRequestID tags each request with a correlation ID, echoes it in the
// X-Request-ID header, and logs the request once served.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)

		begin := time.Now()
		next.ServeHTTP(w, r)

		s.logger().Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(begin),
		)
	})
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
