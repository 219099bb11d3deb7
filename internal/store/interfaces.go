// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/fisiocare/fisio-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PatientRepository persists patients. Every method is scoped to one
// therapist through the fisio_id column.
type PatientRepository interface {
	ListPatients(ctx context.Context, fisioID *string) ([]models.Patient, error)
	SearchPatients(ctx context.Context, search models.PatientSearch) ([]models.Patient, error)
	CreatePatient(ctx context.Context, patient models.Patient) error
	// UpdatePatient and DeletePatient report the number of affected rows;
	// zero is not an error.
	UpdatePatient(ctx context.Context, patient models.Patient) (int64, error)
	DeletePatient(ctx context.Context, key models.PatientKey) (int64, error)
}

// DiagnosisRepository reads the diagnosis catalog, alone or joined with the
// medical history of a patient.
type DiagnosisRepository interface {
	ListDiagnoses(ctx context.Context) ([]models.Diagnosis, error)
	FindDiagnosesByID(ctx context.Context, pattern *string) ([]models.Diagnosis, error)
	ListPatientDiagnoses(ctx context.Context, key models.PatientKey) ([]models.Diagnosis, error)
	// LatestPatientDiagnosis returns ErrNotFound when the patient has no
	// history entries.
	LatestPatientDiagnosis(ctx context.Context, key models.PatientKey) (models.Diagnosis, error)
}

// HistoryRepository persists medical history entries keyed by
// (paciente_id, fisio_id, diagnostico_id).
type HistoryRepository interface {
	// GetHistoryEntry returns ErrNotFound when the key matches no row.
	GetHistoryEntry(ctx context.Context, key models.HistoryKey) (models.HistoryDetail, error)
	CreateHistoryEntry(ctx context.Context, entry models.HistoryEntry) (models.HistoryEntry, error)
	// UpdateHistoryEntry returns ErrNotFound when the key matches no row.
	UpdateHistoryEntry(ctx context.Context, entry models.HistoryEntry) (models.HistoryEntry, error)
	DeleteHistoryEntry(ctx context.Context, key models.HistoryKey) (int64, error)
}

// Pinger reports database reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
