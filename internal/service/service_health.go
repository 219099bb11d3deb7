// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/fisiocare/fisio-api/internal/logger"
	"github.com/fisiocare/fisio-api/internal/store"
)

type healthService struct {
	pinger store.Pinger

	logger *logger.Logger
}

func NewHealthService(pinger store.Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		pinger: pinger,
		logger: logger,
	}
}

func (h *healthService) Check(ctx context.Context) error {
	if h.pinger == nil {
		return fmt.Errorf("%w: %w", ErrBackendFailure, store.ErrNoConnection)
	}

	if err := h.pinger.Ping(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*healthService.Check").Msg("database ping failed")
		return fmt.Errorf("%w: %w", ErrBackendFailure, err)
	}
	return nil
}
