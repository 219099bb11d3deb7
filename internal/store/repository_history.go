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

// historyRepository is the PostgreSQL-backed implementation of
// [HistoryRepository] over the "paciente_historial_medico" table.
//
// Inserts and updates use a RETURNING clause, so callers receive the row as
// stored (including database defaults and date normalisation).
type historyRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	logger.Debug().Msg("creating history repository")
	return &historyRepository{
		db:     db,
		logger: logger,
	}
}

func (r *historyRepository) GetHistoryEntry(ctx context.Context, key models.HistoryKey) (models.HistoryDetail, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectHistoryEntryQuery(key)
	if err != nil {
		return models.HistoryDetail{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var d models.HistoryDetail
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&d.DiagnosticoID,
		&d.FechaDiagnostico,
		&d.FechaInicioTratamiento,
		&d.FechaFinTratamiento,
		&d.Sintomas,
		&d.Medicamentos,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.HistoryDetail{}, ErrNotFound
	case err != nil:
		log.Err(err).Str("func", "*historyRepository.GetHistoryEntry").
			Str("pg_code", postgresError(err)).
			Bool("retryable", r.db.retryable(err)).
			Msg("error querying history entry")
		return models.HistoryDetail{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return d, nil
}

func (r *historyRepository) CreateHistoryEntry(ctx context.Context, entry models.HistoryEntry) (models.HistoryEntry, error) {
	query, args, err := buildInsertHistoryEntryQuery(entry)
	if err != nil {
		return models.HistoryEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	saved, err := r.queryEntry(ctx, "*historyRepository.CreateHistoryEntry", query, args)
	if errors.Is(err, ErrNotFound) {
		// INSERT ... RETURNING always yields the inserted row
		return models.HistoryEntry{}, fmt.Errorf("%w: insert returned no row", ErrExecutingQuery)
	}
	return saved, err
}

// UpdateHistoryEntry overwrites the dates and clinical notes of the entry.
// A key that matches no row leaves the table untouched and returns
// [ErrNotFound].
func (r *historyRepository) UpdateHistoryEntry(ctx context.Context, entry models.HistoryEntry) (models.HistoryEntry, error) {
	query, args, err := buildUpdateHistoryEntryQuery(entry)
	if err != nil {
		return models.HistoryEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryEntry(ctx, "*historyRepository.UpdateHistoryEntry", query, args)
}

func (r *historyRepository) DeleteHistoryEntry(ctx context.Context, key models.HistoryKey) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteHistoryEntryQuery(key)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.DeleteHistoryEntry").
			Str("pg_code", postgresError(err)).
			Bool("retryable", r.db.retryable(err)).
			Msg("error deleting history entry")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrReadingAffectedRows, err)
	}

	return affected, nil
}

func (r *historyRepository) queryEntry(ctx context.Context, fn, query string, args []any) (models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	var e models.HistoryEntry
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&e.PacienteID,
		&e.FisioID,
		&e.DiagnosticoID,
		&e.FechaDiagnostico,
		&e.FechaInicioTratamiento,
		&e.FechaFinTratamiento,
		&e.Sintomas,
		&e.Medicamentos,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.HistoryEntry{}, ErrNotFound
	case err != nil:
		log.Err(err).Str("func", fn).
			Str("pg_code", postgresError(err)).
			Bool("retryable", r.db.retryable(err)).
			Msg("error writing history entry")
		return models.HistoryEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return e, nil
}
