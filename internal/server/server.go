// Package server exposes the catalog over a small HTTP API for browser
// clients: derived themes/barriers/personas for the chart, the filtered
// resource list, and decoded selection state for address-bar sync.
//
// The catalog is held behind an atomic pointer so a watch-triggered
// reload can swap it without interrupting in-flight requests.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hupe1980/resnav/internal/catalog"
)

// Server serves the catalog navigation API.
type Server struct {
	addr    string
	logger  *slog.Logger
	catalog atomic.Pointer[catalog.Catalog]
}

// New creates a server for the given catalog. logger may be nil, in which
// case slog.Default() is used.
func New(addr string, cat *catalog.Catalog, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{addr: addr, logger: logger}
	s.catalog.Store(cat)

	return s
}

// Swap atomically replaces the served catalog. In-flight requests keep
// the snapshot they already loaded.
func (s *Server) Swap(cat *catalog.Catalog) {
	s.catalog.Store(cat)
}

// Catalog returns the currently served catalog snapshot.
func (s *Server) Catalog() *catalog.Catalog {
	return s.catalog.Load()
}

// Handler builds the chi router with all routes and middleware attached.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(s.logger))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/themes", s.handleThemes)
		r.Get("/barriers", s.handleBarriers)
		r.Get("/personas", s.handlePersonas)
		r.Get("/resources", s.handleResources)
		r.Get("/state", s.handleState)
	})

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("http server listening", slog.String("addr", s.addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}

		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("http server: %w", err)
	}
}
