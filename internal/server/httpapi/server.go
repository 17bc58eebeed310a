// Package httpapi exposes the server's JSON API: device registration and
// login, token refresh, card publishing, voice note presigning, and the
// public hosted card pages.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/harshpatel958/kontax/internal/logging"
)

type Server struct {
	address string
	logger  logging.Logger
	handler http.Handler
}

func NewServer(address string, logger logging.Logger, h *Handler, secretKey string) *Server {
	l := logger.With("module", "http_server")
	return &Server{
		address: address,
		logger:  l,
		handler: newRouter(h, l, []byte(secretKey)),
	}
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.handler,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
