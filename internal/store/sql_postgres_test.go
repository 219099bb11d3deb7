// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/fisiocare/fisio-api/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_Ping(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer sqlDB.Close()
		mock.ExpectPing()

		assert.NoError(t, newDB(sqlDB, logger.Nop(), 0).Ping(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unreachable", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer sqlDB.Close()
		mock.ExpectPing().WillReturnError(errors.New("dial tcp: connection refused"))

		err = newDB(sqlDB, logger.Nop(), 0).Ping(context.Background())

		assert.ErrorIs(t, err, ErrNoConnection)
	})

	t.Run("nil pool", func(t *testing.T) {
		var db *DB
		assert.ErrorIs(t, db.Ping(context.Background()), ErrNoConnection)
	})
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("x"), want: NonRetryable},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Retryable},
		{name: "admin shutdown", err: &pgconn.PgError{Code: pgerrcode.AdminShutdown}, want: Retryable},
		{name: "deadlock wrapped", err: fmt.Errorf("%w: %w", ErrExecutingQuery, &pgconn.PgError{Code: pgerrcode.DeadlockDetected}), want: Retryable},
		{name: "invalid regex", err: &pgconn.PgError{Code: pgerrcode.InvalidRegularExpression}, want: NonRetryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "unknown code", err: &pgconn.PgError{Code: "XX000"}, want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPostgresError(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, postgresError(fmt.Errorf("wrap: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})))
	assert.Empty(t, postgresError(errors.New("plain")))
}
