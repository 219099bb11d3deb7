// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/fisiocare/fisio-api/internal/logger"
	"github.com/fisiocare/fisio-api/internal/store"
	"github.com/fisiocare/fisio-api/models"
)

type diagnosisService struct {
	diagnosisRepository store.DiagnosisRepository

	logger *logger.Logger
}

func NewDiagnosisService(diagnosisRepository store.DiagnosisRepository, logger *logger.Logger) DiagnosisService {
	return &diagnosisService{
		diagnosisRepository: diagnosisRepository,
		logger:              logger,
	}
}

func (d *diagnosisService) ListDiagnoses(ctx context.Context) ([]models.Diagnosis, error) {
	diagnoses, err := d.diagnosisRepository.ListDiagnoses(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return diagnoses, nil
}

func (d *diagnosisService) FindDiagnosesByID(ctx context.Context, pattern *string) ([]models.Diagnosis, error) {
	diagnoses, err := d.diagnosisRepository.FindDiagnosesByID(ctx, pattern)
	if err != nil {
		return nil, storageError(err)
	}
	return diagnoses, nil
}

func (d *diagnosisService) ListPatientDiagnoses(ctx context.Context, key models.PatientKey) ([]models.Diagnosis, error) {
	diagnoses, err := d.diagnosisRepository.ListPatientDiagnoses(ctx, key)
	if err != nil {
		return nil, storageError(err)
	}
	return diagnoses, nil
}

// LatestPatientDiagnosis returns ErrNotFound for a patient without history.
func (d *diagnosisService) LatestPatientDiagnosis(ctx context.Context, key models.PatientKey) (models.Diagnosis, error) {
	diagnosis, err := d.diagnosisRepository.LatestPatientDiagnosis(ctx, key)
	if err != nil {
		return models.Diagnosis{}, storageError(err)
	}
	return diagnosis, nil
}
