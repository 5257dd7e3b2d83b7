// Package server implements the starmap HTTP service.
//
// The service generates galaxies on request and archives the ones clients
// ask to keep. Generation and rendering go through the same
// [pipeline.Runner] as the CLI, backed by Redis when configured.
//
// # Routes
//
//	GET  /healthz
//	GET  /v1/galaxy?seed=&format=&style=    generate with the default config
//	POST /v1/galaxy                         generate with a JSON config body
//	POST /v1/galaxies                       generate and archive
//	GET  /v1/galaxies                       list archived galaxies
//	GET  /v1/galaxies/{id}?format=          fetch or render an archived galaxy
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/starmap/pkg/pipeline"
	"github.com/matzehuels/starmap/pkg/store"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 10 * time.Second

// Server serves the HTTP API.
type Server struct {
	cfg     Config
	runner  *pipeline.Runner
	store   store.Store
	logger  *log.Logger
	limiter *rateLimiter
}

// New creates a server. The caller keeps ownership of runner and st.
func New(cfg Config, runner *pipeline.Runner, st store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		cfg:    cfg,
		runner: runner,
		store:  st,
		logger: logger,
	}
	if cfg.RateLimit > 0 {
		s.limiter = newRateLimiter(cfg.RateLimit, cfg.RateBurst, cfg.TrustProxy, logger)
	}
	return s
}

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(newCORS(s.cfg.CORSOrigins).Handler)

	r.Get("/healthz", s.handle(s.health))

	r.Route("/v1", func(r chi.Router) {
		if s.limiter != nil {
			r.Use(s.limiter.middleware)
		}
		r.Group(func(r chi.Router) {
			r.Use(instrument(s.logger))
			r.Get("/galaxy", s.handle(s.getGalaxy))
			r.Post("/galaxy", s.handle(s.postGalaxy))
			r.Post("/galaxies", s.handle(s.archiveGalaxy))
			r.Get("/galaxies", s.handle(s.listGalaxies))
			r.Get("/galaxies/{id}", s.handle(s.getArchived))
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errNotFound(r.URL.Path))
	})
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
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
	if err := <-errc; !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// handlerFunc is an HTTP handler that reports failures as errors.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (s *Server) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			if status := statusOf(err); status >= http.StatusInternalServerError {
				s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
			}
			writeError(w, err)
		}
	}
}
