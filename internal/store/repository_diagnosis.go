// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fisiocare/fisio-api/internal/logger"
	"github.com/fisiocare/fisio-api/models"
)

// diagnosisRepository reads the "diagnostico_medico" catalog.
type diagnosisRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewDiagnosisRepository(db *DB, logger *logger.Logger) DiagnosisRepository {
	logger.Debug().Msg("creating diagnosis repository")
	return &diagnosisRepository{
		db:     db,
		logger: logger,
	}
}

func (r *diagnosisRepository) ListDiagnoses(ctx context.Context) ([]models.Diagnosis, error) {
	query, args, err := buildListDiagnosesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryDiagnoses(ctx, "*diagnosisRepository.ListDiagnoses", query, args)
}

func (r *diagnosisRepository) FindDiagnosesByID(ctx context.Context, pattern *string) ([]models.Diagnosis, error) {
	query, args, err := buildFindDiagnosesByIDQuery(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryDiagnoses(ctx, "*diagnosisRepository.FindDiagnosesByID", query, args)
}

// ListPatientDiagnoses returns one catalog row per history entry of the
// patient, so a diagnosis recorded twice appears twice.
func (r *diagnosisRepository) ListPatientDiagnoses(ctx context.Context, key models.PatientKey) ([]models.Diagnosis, error) {
	query, args, err := buildListPatientDiagnosesQuery(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryDiagnoses(ctx, "*diagnosisRepository.ListPatientDiagnoses", query, args)
}

func (r *diagnosisRepository) LatestPatientDiagnosis(ctx context.Context, key models.PatientKey) (models.Diagnosis, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLatestPatientDiagnosisQuery(key)
	if err != nil {
		return models.Diagnosis{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var d models.Diagnosis
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&d.ID, &d.SistemaLesionado, &d.ZonaAfectada)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Diagnosis{}, ErrNotFound
	case err != nil:
		log.Err(err).Str("func", "*diagnosisRepository.LatestPatientDiagnosis").
			Str("pg_code", postgresError(err)).
			Bool("retryable", r.db.retryable(err)).
			Msg("error querying latest diagnosis")
		return models.Diagnosis{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return d, nil
}

func (r *diagnosisRepository) queryDiagnoses(ctx context.Context, fn, query string, args []any) ([]models.Diagnosis, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).
			Str("pg_code", postgresError(err)).
			Bool("retryable", r.db.retryable(err)).
			Msg("error querying diagnoses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	diagnoses := make([]models.Diagnosis, 0)
	for rows.Next() {
		var d models.Diagnosis
		if err = rows.Scan(&d.ID, &d.SistemaLesionado, &d.ZonaAfectada); err != nil {
			log.Err(err).Str("func", fn).Msg("error scanning diagnosis row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		diagnoses = append(diagnoses, d)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error iterating diagnosis rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return diagnoses, nil
}
