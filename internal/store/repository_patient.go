// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/fisiocare/fisio-api/internal/logger"
	"github.com/fisiocare/fisio-api/models"
)

// patientRepository is the PostgreSQL-backed implementation of
// [PatientRepository] over the "paciente_fisio" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type patientRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPatientRepository constructs a [PatientRepository] backed by the provided
// database connection and logger.
func NewPatientRepository(db *DB, logger *logger.Logger) PatientRepository {
	logger.Debug().Msg("creating patient repository")
	return &patientRepository{
		db:     db,
		logger: logger,
	}
}

// ListPatients returns every patient of the therapist. An unknown fisioID
// yields an empty slice.
func (r *patientRepository) ListPatients(ctx context.Context, fisioID *string) ([]models.Patient, error) {
	query, args, err := buildListPatientsQuery(fisioID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryPatients(ctx, "*patientRepository.ListPatients", query, args)
}

// SearchPatients matches search.Nombre as a case-insensitive regular
// expression against the full name. An invalid pattern is reported by the
// database and returned wrapped in [ErrExecutingQuery].
func (r *patientRepository) SearchPatients(ctx context.Context, search models.PatientSearch) ([]models.Patient, error) {
	query, args, err := buildSearchPatientsQuery(search)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryPatients(ctx, "*patientRepository.SearchPatients", query, args)
}

func (r *patientRepository) CreatePatient(ctx context.Context, patient models.Patient) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPatientQuery(patient)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*patientRepository.CreatePatient").
			Interface("paciente_id", patient.PacienteID).
			Str("pg_code", postgresError(err)).
			Bool("retryable", r.db.retryable(err)).
			Msg("error inserting patient")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *patientRepository) UpdatePatient(ctx context.Context, patient models.Patient) (int64, error) {
	query, args, err := buildUpdatePatientQuery(patient)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*patientRepository.UpdatePatient", query, args)
}

func (r *patientRepository) DeletePatient(ctx context.Context, key models.PatientKey) (int64, error) {
	query, args, err := buildDeletePatientQuery(key)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*patientRepository.DeletePatient", query, args)
}

func (r *patientRepository) exec(ctx context.Context, fn, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).
			Str("pg_code", postgresError(err)).
			Bool("retryable", r.db.retryable(err)).
			Msg("error executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrReadingAffectedRows, err)
	}

	log.Debug().Str("func", fn).Int64("affected", affected).Msg("statement executed")
	return affected, nil
}

func (r *patientRepository) queryPatients(ctx context.Context, fn, query string, args []any) ([]models.Patient, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).
			Str("pg_code", postgresError(err)).
			Bool("retryable", r.db.retryable(err)).
			Msg("error querying patients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	patients := make([]models.Patient, 0)
	for rows.Next() {
		var p models.Patient
		if err = rows.Scan(&p.PacienteID, &p.Nombre, &p.Apellidos, &p.Direccion, &p.Telefono, &p.FechaNacimiento, &p.FisioID); err != nil {
			log.Err(err).Str("func", fn).Msg("error scanning patient row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		patients = append(patients, p)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Msg("error iterating patient rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return patients, nil
}
