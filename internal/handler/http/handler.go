// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/fisiocare/fisio-api/internal/config"
	"github.com/fisiocare/fisio-api/internal/logger"
	"github.com/fisiocare/fisio-api/internal/service"
)

type Handler struct {
	services *service.Services

	// authDisabled skips the bearer-token middleware on every route.
	authDisabled bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	if cfg.AuthDisabled {
		logger.Warn().Msg("authentication is disabled, every route is public")
	}
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		authDisabled: cfg.AuthDisabled,
		logger:       logger,
	}
}
