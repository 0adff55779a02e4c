// Package server is the optional helper service: it issues anonymous identities
// and exposes rooms of the shared transport read-only over HTTP and websocket.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/chipsync/internal/server/handlers"
	"github.com/iudanet/chipsync/internal/server/middleware"
	"github.com/iudanet/chipsync/internal/storage"
	"github.com/iudanet/chipsync/internal/transport"
)

const (
	healthPath      = "/api/v1/health"
	shutdownTimeout = 10 * time.Second
)

// Options holds the server's collaborators.
type Options struct {
	Logger     *slog.Logger
	Transport  transport.Transport
	Identities storage.IdentityStorage
	DB         handlers.Pinger
	JWT        handlers.JWTConfig
	Address    string
	// RateLimit is the number of identity requests allowed per client IP per minute
	RateLimit int
}

// Server is the HTTP server.
type Server struct {
	http    *http.Server
	limiter *middleware.RateLimiter
	logger  *slog.Logger
}

// New builds the router. The server does not listen until Run.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 30
	}

	limiter := middleware.NewRateLimiter(opts.RateLimit, time.Minute, opts.Logger)

	health := handlers.NewHealthHandler(opts.Logger, opts.DB)
	identity := handlers.NewIdentityHandler(opts.Logger, opts.Identities, opts.JWT)
	rooms := handlers.NewRoomHandler(opts.Logger, opts.Transport)
	stream := handlers.NewStreamHandler(opts.Logger, opts.Transport, 0)

	r := chi.NewRouter()
	r.Use(middleware.LoggingWithSkip(opts.Logger, []string{healthPath}))
	r.Use(middleware.RecoveryMiddleware(opts.Logger))

	r.Get(healthPath, health.Health)
	r.With(limiter.Middleware).Post("/api/v1/identity/anonymous", identity.Anonymous)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(opts.Logger, opts.JWT, opts.Identities))
		r.Get("/api/v1/rooms/{roomID}", rooms.GetRoom)
		r.Get("/api/v1/rooms/{roomID}/records/{dataType}", rooms.GetRecord)
		r.Get("/api/v1/rooms/{roomID}/ws", stream.Stream)
	})

	return &Server{
		http: &http.Server{
			Addr:              opts.Address,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		limiter: limiter,
		logger:  opts.Logger,
	}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run listens until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	defer s.limiter.Stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", "address", s.http.Addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	s.logger.Info("Server stopped gracefully")
	return nil
}

// Close stops background work of a server that was never run.
func (s *Server) Close() {
	s.limiter.Stop()
}
