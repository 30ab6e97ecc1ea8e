// Package server exposes the pipeline over HTTP.
//
// Routes:
//
//	GET    /healthz
//	GET    /metrics
//	POST   /v1/layout            document body → layout JSON
//	POST   /v1/render            document body → artifact
//	GET    /v1/maps              list published maps
//	POST   /v1/maps              document body → published map
//	GET    /v1/maps/{id}         stored layout
//	GET    /v1/maps/{id}/render  stored layout → artifact
//	DELETE /v1/maps/{id}
//
// Layout and render options travel as query parameters; see optionsFromQuery.
// Errors are returned as JSON {"code": ..., "message": ...}.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/radialmap/pkg/pipeline"
	"github.com/matzehuels/radialmap/pkg/storage"
)

// Defaults for Config.
const (
	DefaultTimeout     = 30 * time.Second
	DefaultMaxBodySize = 8 << 20
	shutdownTimeout    = 10 * time.Second
)

// Config wires the server's dependencies.
type Config struct {
	Runner      *pipeline.Runner    // nil means an uncached runner
	Store       storage.Store       // nil means a MemoryStore
	Logger      *log.Logger         // nil means log.Default()
	Gatherer    prometheus.Gatherer // nil disables /metrics
	Timeout     time.Duration
	MaxBodySize int64
}

// Server serves the HTTP API.
type Server struct {
	runner   *pipeline.Runner
	store    storage.Store
	logger   *log.Logger
	gatherer prometheus.Gatherer
	timeout  time.Duration
	maxBody  int64
}

// New creates a server, filling unset Config fields with defaults.
func New(cfg Config) *Server {
	s := &Server{
		runner:   cfg.Runner,
		store:    cfg.Store,
		logger:   cfg.Logger,
		gatherer: cfg.Gatherer,
		timeout:  cfg.Timeout,
		maxBody:  cfg.MaxBodySize,
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.runner == nil {
		s.runner = pipeline.NewRunner(nil, nil, s.logger)
	}
	if s.store == nil {
		s.store = storage.NewMemoryStore()
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}
	if s.maxBody <= 0 {
		s.maxBody = DefaultMaxBodySize
	}
	return s
}

// Handler returns the routed handler with the middleware stack applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.timeout))

	r.Get("/healthz", s.handleHealth)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/render", s.handleRender)
		r.Route("/maps", func(r chi.Router) {
			r.Get("/", s.handleListMaps)
			r.Post("/", s.handleCreateMap)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetMap)
				r.Delete("/", s.handleDeleteMap)
				r.Get("/render", s.handleRenderMap)
			})
		})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return s.store.Close(shutdownCtx)
}
