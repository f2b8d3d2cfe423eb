// Package database provides helpers for connecting to PostgreSQL and running migrations.
// This file has two responsibilities:
//  1. Opening a GORM connection whose logs go through zerolog
//  2. Applying the SQL migration files that define the schema
package database

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	// Registers the postgres database driver for migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	// Registers the "file://" source driver so migrate can read .sql files from disk.
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a connection pool to the PostgreSQL database at dsn.
//
// The pool is lazy: no connection is attempted until the first query, so an unreachable
// or unset database does not stop the server from starting. Queries then fail and the
// handlers answer with 500s.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableAutomaticPing: true,
		Logger: logger.New(&log.Logger, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
}

// RunMigrations applies any pending "up" migrations found in dir.
// migrate tracks applied versions in the schema_migrations table, so this is safe on every boot.
func RunMigrations(dsn, dir string) error {
	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return errors.Wrap(err, "open migrations")
	}
	defer m.Close()

	// ErrNoChange just means the schema is already current.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "apply migrations")
	}
	return nil
}
