// Package server exposes the analysis pipeline over HTTP.
//
// # Endpoints
//
//   - POST /v1/analyze: analyze a catalog sent as CSV (text/csv) or JSON
//     (application/json). Query parameters: plan, term_credits, skip_schedule.
//   - POST /v1/schedule: schedule an explicit course list without a catalog.
//   - GET /healthz: liveness and build information.
//   - GET /metrics: Prometheus exposition, when the hooks provide one.
//
// Errors are returned as {"error": {"code": ..., "message": ...}} with a
// status derived from the error code.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/curricula/pkg/observability"
	"github.com/matzehuels/curricula/pkg/pipeline"
)

// MaxBodyBytes caps the size of request bodies.
const MaxBodyBytes = 8 << 20

const shutdownTimeout = 5 * time.Second

// Server routes HTTP requests to a pipeline runner.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	hooks  observability.Hooks
	router chi.Router

	// Timeout bounds the metrics stage of each analysis. Zero waits
	// indefinitely.
	Timeout time.Duration
}

// New creates a server. A nil logger uses log.Default() and nil hooks
// discard every event.
func New(runner *pipeline.Runner, logger *log.Logger, hooks observability.Hooks) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		logger: logger,
		hooks:  observability.OrNoop(hooks),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.instrument)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	if h, ok := observability.MetricsHandler(s.hooks); ok {
		r.Method(http.MethodGet, "/metrics", h)
	}
	r.Route("/v1", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/schedule", s.handleSchedule)
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
