package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/JG4N6/Random-Chat-Generator/internal/chat"
	"github.com/JG4N6/Random-Chat-Generator/internal/export"
	"github.com/JG4N6/Random-Chat-Generator/internal/store"
	"github.com/JG4N6/Random-Chat-Generator/internal/timeline"
)

type Server struct {
	router *chi.Mux
	port   int
	gen    *chat.Generator
	db     *store.Store // nil when no archive is configured
	logger *slog.Logger
}

func NewServer(port int, gen *chat.Generator, db *store.Store, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router: router,
		port:   port,
		gen:    gen,
		db:     db,
		logger: logger,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/chatgen/status", s.status)
	router.Post("/api/v1/chatgen/generate", s.generate)
	router.Get("/api/v1/chatgen/datasets", s.datasets)

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	archive := "disabled"
	if s.db != nil {
		archive = "enabled"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"service": "chatgen",
		"status":  "ok",
		"archive": archive,
	})
}

// generateRequest narrows one on-demand generation. All fields optional.
type generateRequest struct {
	Platform     string `json:"platform"`
	Participants int    `json:"participants"`
	MessageCount int    `json:"message_count"`
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	// An empty body means "all defaults"; only malformed JSON is an error.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	ds, err := s.gen.Generate(chat.Params{
		Platform:     req.Platform,
		Participants: req.Participants,
		MessageCount: req.MessageCount,
	})
	if err != nil {
		var confErr *chat.ConfigurationError
		var infeasible *timeline.InfeasibleError
		switch {
		case errors.As(err, &confErr):
			writeError(w, http.StatusBadRequest, confErr.Error())
		case errors.As(err, &infeasible):
			writeError(w, http.StatusUnprocessableEntity, infeasible.Error())
		default:
			s.logger.Error("generation failed", "error", err)
			writeError(w, http.StatusInternalServerError, "generation failed")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(export.BuildDocument(ds))
}

func (s *Server) datasets(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeError(w, http.StatusServiceUnavailable, "dataset archive not configured")
		return
	}

	summaries, err := s.db.ListRecent(r.Context(), 20)
	if err != nil {
		s.logger.Error("list datasets failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list datasets failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{"datasets": summaries})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
