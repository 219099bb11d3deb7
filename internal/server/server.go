// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"time"

	"github.com/fisiocare/fisio-api/internal/config"
	"github.com/fisiocare/fisio-api/internal/handler"
	"github.com/fisiocare/fisio-api/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if address := cfg.HTTPAddress(); address != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), address, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg.GRPCAddress, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer binds every transport, serves until ctx is cancelled and then
// shuts down within the configured timeout. A transport that stops serving
// on its own cancels the others.
func (s *server) RunServer(ctx context.Context) error {
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersToRun
	}

	if err := s.listen(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	serveErrs := make(chan error, 2)
	running := 0
	if s.httpServer != nil {
		running++
		go func() { serveErrs <- s.httpServer.RunServer() }()
	}
	if s.gRPCServer != nil {
		running++
		go func() { serveErrs <- s.gRPCServer.RunServer() }()
	}

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-serveErrs:
		running--
		cancel()
	}

	shutdownCtx, stop := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer stop()

	shutdownErr := s.Shutdown(shutdownCtx)
	for ; running > 0; running-- {
		serveErr = errors.Join(serveErr, <-serveErrs)
	}

	if err := errors.Join(serveErr, shutdownErr); err != nil {
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error

	if s.httpServer != nil {
		errs = append(errs, s.httpServer.Shutdown(ctx))
	}
	if s.gRPCServer != nil {
		errs = append(errs, s.gRPCServer.Shutdown(ctx))
	}

	return errors.Join(errs...)
}

func (s *server) listen() error {
	if s.httpServer != nil {
		if err := s.httpServer.listen(); err != nil {
			return err
		}
	}
	if s.gRPCServer != nil {
		if err := s.gRPCServer.listen(); err != nil {
			if s.httpServer != nil {
				_ = s.httpServer.listener.Close()
			}
			return err
		}
	}
	return nil
}
