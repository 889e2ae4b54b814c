package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/msto63/mRW/foundation/core/config"
	mrwlog "github.com/msto63/mRW/foundation/core/log"
	"github.com/msto63/mRW/internal/session"
)

// Server is the HTTP and WebSocket evaluation gateway
type Server struct {
	httpServer *http.Server
	logger     *mrwlog.Logger
}

// New wires the API and WebSocket handlers onto one HTTP server
func New(cfg *config.Config, sess *session.Session, logger *mrwlog.Logger) *Server {
	mux := http.NewServeMux()

	handler := NewHandler(sess, logger)
	handler.Register(mux)

	wsHandler := NewWebSocketHandler(sess, logger)
	mux.Handle("/ws", wsHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Server.Address,
			Handler:      mux,
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		},
		logger: logger.WithField("component", "server"),
	}
}

// Start runs the server until it is shut down
func (s *Server) Start() error {
	s.logger.Info("Gateway listening", mrwlog.Fields{
		"address": s.httpServer.Addr,
	})

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Gateway shutting down")
	return s.httpServer.Shutdown(ctx)
}
