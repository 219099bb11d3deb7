// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the use cases behind the HTTP routes. Services
// are thin: they scope requests, delegate to the repositories and translate
// storage errors into ErrNotFound / ErrBackendFailure.
package service

import (
	"errors"
	"fmt"

	"github.com/fisiocare/fisio-api/internal/adapter"
	"github.com/fisiocare/fisio-api/internal/config"
	"github.com/fisiocare/fisio-api/internal/logger"
	"github.com/fisiocare/fisio-api/internal/store"
)

type Services struct {
	AuthService      AuthService
	PatientService   PatientService
	DiagnosisService DiagnosisService
	HistoryService   HistoryService
	HealthService    HealthService
}

// NewServices wires every service. verifier may be nil when authentication
// is disabled.
func NewServices(storages *store.Storages, verifier adapter.TokenVerifier, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(verifier, cfg, logger),
		PatientService:   NewPatientService(storages.PatientRepository, logger),
		DiagnosisService: NewDiagnosisService(storages.DiagnosisRepository, logger),
		HistoryService:   NewHistoryService(storages.HistoryRepository, logger),
		HealthService:    NewHealthService(storages.Pinger, logger),
	}
}

// storageError maps store errors onto the service taxonomy.
func storageError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %w", ErrBackendFailure, err)
}
