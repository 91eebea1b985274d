package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/FlankaLanka/CollabCanvas-sub002/internal/config"
	"github.com/FlankaLanka/CollabCanvas-sub002/pkg/lifecycle"
)

// httpServer wraps the net/http server with lifecycle-driven shutdown.
type httpServer struct {
	http            *http.Server
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

func newHTTPServer(cfg *config.ServerConfig, handler http.Handler, logger *slog.Logger) *httpServer {
	return &httpServer{
		http: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeoutDuration(),
			WriteTimeout: cfg.WriteTimeoutDuration(),
		},
		logger:          logger.With("system", "http"),
		shutdownTimeout: cfg.ShutdownTimeoutDuration(),
	}
}

// Start begins listening and registers a shutdown hook that drains the
// server when the lifecycle context is cancelled.
func (s *httpServer) Start(lc *lifecycle.Coordinator) error {
	go s.listen()
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		s.drain()
	})
	return nil
}

func (s *httpServer) listen() {
	s.logger.Info("server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("server error", "error", err)
	}
}

func (s *httpServer) drain() {
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Error("server shutdown error", "error", err)
		return
	}
	s.logger.Info("server shutdown complete")
}
