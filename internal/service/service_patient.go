// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/fisiocare/fisio-api/internal/logger"
	"github.com/fisiocare/fisio-api/internal/store"
	"github.com/fisiocare/fisio-api/models"
)

type patientService struct {
	patientRepository store.PatientRepository

	logger *logger.Logger
}

func NewPatientService(patientRepository store.PatientRepository, logger *logger.Logger) PatientService {
	return &patientService{
		patientRepository: patientRepository,
		logger:            logger,
	}
}

func (p *patientService) ListPatients(ctx context.Context, fisioID *string) ([]models.Patient, error) {
	patients, err := p.patientRepository.ListPatients(ctx, fisioID)
	if err != nil {
		return nil, storageError(err)
	}
	return patients, nil
}

func (p *patientService) SearchPatients(ctx context.Context, search models.PatientSearch) ([]models.Patient, error) {
	patients, err := p.patientRepository.SearchPatients(ctx, search)
	if err != nil {
		return nil, storageError(err)
	}
	return patients, nil
}

func (p *patientService) CreatePatient(ctx context.Context, patient models.Patient) error {
	if err := p.patientRepository.CreatePatient(ctx, patient); err != nil {
		return storageError(err)
	}
	return nil
}

// UpdatePatient succeeds even when no row matched the key.
func (p *patientService) UpdatePatient(ctx context.Context, patient models.Patient) error {
	affected, err := p.patientRepository.UpdatePatient(ctx, patient)
	if err != nil {
		return storageError(err)
	}

	logger.FromContext(ctx).Debug().Str("func", "*patientService.UpdatePatient").
		Interface("paciente_id", patient.PacienteID).
		Int64("affected", affected).
		Msg("patient updated")
	return nil
}

// DeletePatient succeeds even when no row matched the key.
func (p *patientService) DeletePatient(ctx context.Context, key models.PatientKey) error {
	affected, err := p.patientRepository.DeletePatient(ctx, key)
	if err != nil {
		return storageError(err)
	}

	logger.FromContext(ctx).Debug().Str("func", "*patientService.DeletePatient").
		Interface("paciente_id", key.PacienteID).
		Int64("affected", affected).
		Msg("patient deleted")
	return nil
}
