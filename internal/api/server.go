package api

import (
	"context"
	"fmt"
	"time"

	"github.com/pensionview/retirement-projection/internal/calculation"
	"github.com/valyala/fasthttp"
)

const shutdownTimeout = 5 * time.Second

// Server is the projection HTTP server.
type Server struct {
	Addr    string
	handler *Handler
	log     calculation.Logger
}

// NewServer creates a server listening on addr.
func NewServer(addr string, engine *calculation.ProjectionEngine, log calculation.Logger) *Server {
	h := NewHandler(engine, log)
	return &Server{Addr: addr, handler: h, log: h.log}
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	baseCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.handler.base = baseCtx

	srv := &fasthttp.Server{
		Handler:      s.handler.HandleRequest,
		Name:         "pensionview",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("listening on %s", s.Addr)
		errCh <- srv.ListenAndServe(s.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving %s: %w", s.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Infof("shutting down")
	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := srv.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
