// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/fisiocare/fisio-api/internal/config"
	"github.com/fisiocare/fisio-api/internal/logger"
	"github.com/fisiocare/fisio-api/internal/store"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database migrations",
		Args:  cobra.NoArgs,
	}
	flags := config.RegisterFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		log := logger.NewLogger("fisio-api-migrate")

		cfg, err := config.GetStorageConfig(flags)
		if err != nil {
			log.Err(err).Msg("error getting configs")
			return err
		}
		logger.SetLevel(cfg.Log.Level)

		db, err := store.NewConnectPostgres(cmd.Context(), cfg.Storage.DB, log)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.Migrate(); err != nil {
			log.Err(err).Msg("migration failed")
			return err
		}

		log.Info().Msg("migrations applied")
		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
		return nil
	}

	return cmd
}
