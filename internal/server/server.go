// Package server runs the AlumniConnect HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/yigit/alumniconnect/internal/bootstrap"
	"github.com/yigit/alumniconnect/internal/config"
	"github.com/yigit/alumniconnect/internal/pkg/helpers"
)

const defaultShutdownTimeout = 10 * time.Second

// Server couples the API router with the background work it depends on.
type Server struct {
	deps            *bootstrap.Dependencies
	logger          zerolog.Logger
	http            *http.Server
	shutdownTimeout time.Duration
}

// Open loads the configuration at configPath and builds a Server from it.
func Open(configPath string) (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath, nil)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return New(cfg, lgr)
}

// New wires the dependencies described by cfg.
func New(cfg *config.Config, lgr zerolog.Logger) (*Server, error) {
	deps, err := bootstrap.BuildDependencies(context.Background(), cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("build dependencies: %w", err)
	}

	return &Server{
		deps:   deps,
		logger: lgr.With().Str("component", "server").Logger(),
		http: &http.Server{
			Addr:              net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
			Handler:           bootstrap.SetupRouter(cfg, deps, lgr),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       helpers.ParseDuration(cfg.Server.ReadTimeout, 10*time.Second),
			WriteTimeout:      helpers.ParseDuration(cfg.Server.WriteTimeout, 10*time.Second),
			IdleTimeout:       2 * time.Minute,
		},
		shutdownTimeout: helpers.ParseDuration(cfg.Server.ShutdownTimeout, defaultShutdownTimeout),
	}, nil
}

// Handler exposes the router.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves on the configured address until ctx is done, then drains
// in-flight requests and releases every dependency.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		_ = s.deps.Close()
		return fmt.Errorf("listen on %s: %w", s.http.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.deps.Hub.Run(gctx)
		return nil
	})

	g.Go(func() error {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("HTTP server listening")
		if err := s.http.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info().Msg("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	if cerr := s.deps.Close(); cerr != nil {
		s.logger.Error().Err(cerr).Msg("Failed to close activity publisher")
		err = errors.Join(err, cerr)
	}
	if err != nil {
		return err
	}
	s.logger.Info().Msg("Server stopped")
	return nil
}
