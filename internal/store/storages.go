// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/fisiocare/fisio-api/internal/logger"

// Storages bundles every repository built on one connection pool.
type Storages struct {
	PatientRepository   PatientRepository
	DiagnosisRepository DiagnosisRepository
	HistoryRepository   HistoryRepository
	Pinger              Pinger
}

// NewStorages wires the PostgreSQL repositories on db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		PatientRepository:   NewPatientRepository(db, log),
		DiagnosisRepository: NewDiagnosisRepository(db, log),
		HistoryRepository:   NewHistoryRepository(db, log),
		Pinger:              db,
	}
}
