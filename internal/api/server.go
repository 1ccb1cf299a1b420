package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/docstyler/internal/config"
	"github.com/dgallion1/docstyler/internal/pipeline"
	"github.com/dgallion1/docstyler/internal/stats"
	"github.com/dgallion1/docstyler/internal/styles"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for docstyler.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	baseRules    styles.RuleTable // Read-only default table for the process.
	stats        *stats.FormatStats
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server. baseRules is the default
// rule table used when a request supplies no style map; it is shared across
// requests and must never be mutated.
func NewServer(orch *pipeline.Orchestrator, baseRules styles.RuleTable, st *stats.FormatStats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		baseRules:    baseRules,
		stats:        st,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.DocstylerAPIKey, s.log))

		r.Post("/api/format", s.handleFormat)
		r.Get("/api/styles", s.handleStyles)

		r.Post("/api/format/batch", s.handleBatchFormat)
		r.Get("/api/format/{jobID}/status", s.handleJobStatus)
		r.Get("/api/format/{jobID}/result", s.handleJobResult)

		r.Get("/api/stats/format", s.handleFormatStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
