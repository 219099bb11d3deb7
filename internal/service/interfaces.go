// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/fisiocare/fisio-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	// Verify validates a bearer token; failures wrap ErrUnauthorized.
	Verify(ctx context.Context, token string) (models.Identity, error)
	// ResolveFisioID returns the therapist id a request is scoped to.
	ResolveFisioID(ctx context.Context, supplied *string) *string
}

type PatientService interface {
	ListPatients(ctx context.Context, fisioID *string) ([]models.Patient, error)
	SearchPatients(ctx context.Context, search models.PatientSearch) ([]models.Patient, error)
	CreatePatient(ctx context.Context, patient models.Patient) error
	UpdatePatient(ctx context.Context, patient models.Patient) error
	DeletePatient(ctx context.Context, key models.PatientKey) error
}

type DiagnosisService interface {
	ListDiagnoses(ctx context.Context) ([]models.Diagnosis, error)
	FindDiagnosesByID(ctx context.Context, pattern *string) ([]models.Diagnosis, error)
	ListPatientDiagnoses(ctx context.Context, key models.PatientKey) ([]models.Diagnosis, error)
	LatestPatientDiagnosis(ctx context.Context, key models.PatientKey) (models.Diagnosis, error)
}

type HistoryService interface {
	GetHistoryEntry(ctx context.Context, key models.HistoryKey) (models.HistoryDetail, error)
	CreateHistoryEntry(ctx context.Context, entry models.HistoryEntry) (models.HistoryEntry, error)
	UpdateHistoryEntry(ctx context.Context, entry models.HistoryEntry) (models.HistoryEntry, error)
	DeleteHistoryEntry(ctx context.Context, key models.HistoryKey) error
}

type HealthService interface {
	// Check returns nil when the database answers a ping.
	Check(ctx context.Context) error
}
