// Package web exposes the tracked state as a small JSON API.
package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"deskflow/internal/ports"
	"deskflow/internal/watcher"
)

// Server serves the read-only state API.
type Server struct {
	httpServer *http.Server
	logger     ports.Logger
}

// NewServer builds a server listening on the given port.
func NewServer(port int, state *watcher.State, logger ports.Logger) *Server {
	mux := http.NewServeMux()
	h := &handlers{state: state}

	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("GET /api/state", h.fullState)
	mux.HandleFunc("GET /api/score", h.score)
	mux.HandleFunc("GET /api/summary", h.summary)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// ListenAndServe blocks serving requests until Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.logger.Debug("web server listening on " + s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
