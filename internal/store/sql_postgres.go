// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fisiocare/fisio-api/internal/config"
	"github.com/fisiocare/fisio-api/internal/logger"
	"github.com/fisiocare/fisio-api/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB is the shared connection pool of the service. It is safe for concurrent
// use; every statement borrows a connection for its own duration.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	pingTimeout        time.Duration
}

// NewConnectPostgres opens the pool and pings the database once.
//
// A failed ping does not fail startup: it is logged and the pool is returned
// anyway, so the service keeps answering (requests that touch the database
// get a 500) and recovers as soon as the database becomes reachable.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// open pool; sql.Open does not dial
	conn, err := sql.Open("pgx", cfg.ConnString())
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	db := newDB(conn, log, cfg.PingTimeout)

	// ping database
	if err = db.Ping(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").
			Bool("retryable", db.retryable(err)).
			Msg("error connecting database (ping), serving in degraded mode")
		return db, nil
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return db, nil
}

func newDB(conn *sql.DB, log *logger.Logger, pingTimeout time.Duration) *DB {
	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
		pingTimeout:        pingTimeout,
	}
}

// Ping checks that a connection to the database can be established.
func (db *DB) Ping(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return ErrNoConnection
	}

	if db.pingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, db.pingTimeout)
		defer cancel()
	}

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrNoConnection, err)
	}
	return nil
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

func (db *DB) retryable(err error) bool {
	return db.errorClassificator.Classify(err) == Retryable
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
