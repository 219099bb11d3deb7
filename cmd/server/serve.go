// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fisiocare/fisio-api/internal/adapter"
	"github.com/fisiocare/fisio-api/internal/config"
	"github.com/fisiocare/fisio-api/internal/handler"
	"github.com/fisiocare/fisio-api/internal/logger"
	"github.com/fisiocare/fisio-api/internal/server"
	"github.com/fisiocare/fisio-api/internal/service"
	"github.com/fisiocare/fisio-api/internal/store"
	"github.com/fisiocare/fisio-api/models"
	"github.com/spf13/cobra"
)

func newServeCmd(info models.AppBuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API (and the optional gRPC health server)",
		Args:  cobra.NoArgs,
	}
	flags := config.RegisterFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		defer stop()

		return runServer(ctx, flags, info)
	}

	return cmd
}

func runServer(ctx context.Context, flags *config.StructuredConfig, info models.AppBuildInfo) error {
	log := logger.NewLogger("fisio-api")
	log.Info().
		Str("version", info.Version()).
		Str("date", info.Date()).
		Str("commit", info.Commit()).
		Msg("starting")

	cfg, err := config.GetStructuredConfig(flags)
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return err
	}
	if !logger.SetLevel(cfg.Log.Level) {
		log.Warn().Str("level", cfg.Log.Level).Msg("unknown log level, keeping debug")
	}

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return err
	}
	defer db.Close()

	var verifier adapter.TokenVerifier
	if !cfg.App.AuthDisabled {
		verifier, err = adapter.NewFirebaseVerifier(cfg.Auth, log)
		if err != nil {
			log.Err(err).Msg("error creating token verifier")
			return err
		}
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, verifier, cfg.App, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating handlers")
		return err
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return err
	}

	if err := srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
		return fmt.Errorf("running server: %w", err)
	}

	return nil
}
