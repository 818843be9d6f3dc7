// Package server exposes skill extraction over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/kamusis/skillscan/internal/config"
	"github.com/kamusis/skillscan/internal/extract"
)

// ShutdownTimeout bounds how long Serve waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	Config    *config.Config
	Extractor *extract.Extractor
	Logger    zerolog.Logger
	Version   string
}

// Server is the skillscand HTTP service.
type Server struct {
	app    *fiber.App
	addr   string
	logger zerolog.Logger
}

// New builds the Fiber app and registers all routes.
func New(opts Options) (*Server, error) {
	if opts.Config == nil || opts.Extractor == nil {
		return nil, errors.New("server: config and extractor are required")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               "skillscand",
		BodyLimit:             opts.Config.BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	app.Use(requestLogger(opts.Logger))

	h := &handlers{extractor: opts.Extractor, version: opts.Version}
	v1 := app.Group("/api/v1")
	v1.Get("/health", h.health)

	skills := v1.Group("/skills")
	if opts.Config.AuthEnabled() {
		skills.Use(bearerAuth(opts.Config.JWTSecret, opts.Config.JWTIssuer))
	}
	skills.Get("/", h.catalog)
	skills.Post("/extract", h.extract)
	skills.Post("/match", h.match)

	return &Server{app: app, addr: opts.Config.Addr, logger: opts.Logger}, nil
}

// App returns the underlying Fiber app.
func (s *Server) App() *fiber.App { return s.app }

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("cannot serve on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. ln is closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("listening")
		errCh <- s.app.Listener(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("cannot serve on %s: %w", ln.Addr(), err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
