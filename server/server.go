// Package server exposes the search engines over HTTP.
//
// Routes:
//
//	GET  /healthz                liveness probe
//	GET  /api/algorithms         registered engines in display order
//	GET  /api/algorithms/{name}  one engine, 404 if unknown
//	POST /api/search             run an engine on a posted grid
//
// Every response carries an X-Request-Id header. Errors are JSON objects
// of the form {"error": "...", "requestId": "..."}.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultMaxCells caps the number of cells accepted by /api/search.
const DefaultMaxCells = 400 * 400

// DefaultMaxBody caps the request body of /api/search in bytes.
const DefaultMaxBody = 8 << 20

// Options configures a Server.
type Options struct {
	MaxCells        int
	MaxBody         int64
	ShutdownTimeout time.Duration
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		MaxCells:        DefaultMaxCells,
		MaxBody:         DefaultMaxBody,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Option customizes Options.
type Option func(*Options)

// WithMaxCells sets the largest accepted rows×cols. Panics if n < 1.
func WithMaxCells(n int) Option {
	if n < 1 {
		panic("server: WithMaxCells(n<1)")
	}
	return func(o *Options) { o.MaxCells = n }
}

// WithMaxBody sets the largest accepted request body in bytes. Panics if n < 1.
func WithMaxBody(n int64) Option {
	if n < 1 {
		panic("server: WithMaxBody(n<1)")
	}
	return func(o *Options) { o.MaxBody = n }
}

// Server is the HTTP front end. Handlers share no mutable state, so a
// Server serves concurrent requests.
type Server struct {
	opts   Options
	logger *log.Logger
	router chi.Router
}

// New builds a Server that logs to logger.
func New(logger *log.Logger, opts ...Option) *Server {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{opts: o, logger: logger}
	s.router = s.routes()

	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/algorithms", s.handleAlgorithms)
		r.Get("/algorithms/{name}", s.handleAlgorithm)
		r.Post("/search", s.handleSearch)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, errNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, errMethod)
	})

	return r
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully within ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return ctx.Err()
}
