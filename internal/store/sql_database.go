// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/MKhiriev/photosync/internal/config"
	"github.com/MKhiriev/photosync/internal/logger"
	"github.com/MKhiriev/photosync/migrations"
	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"
)

const (
	maxRetries          = 3
	defaultRetryBackoff = 100 * time.Millisecond
)

// Dialect describes one supported SQL backend.
type Dialect struct {
	// Name is the goose dialect name.
	Name string
	// Driver is the database/sql driver name.
	Driver string
	// Placeholder is the squirrel bind parameter format.
	Placeholder sq.PlaceholderFormat
}

var (
	PostgresDialect = Dialect{Name: "postgres", Driver: "pgx", Placeholder: sq.Dollar}
	SQLiteDialect   = Dialect{Name: "sqlite3", Driver: "sqlite3", Placeholder: sq.Question}
)

// DialectForDSN selects PostgreSQL for postgres:// and postgresql:// URLs and
// SQLite for everything else.
func DialectForDSN(dsn string) Dialect {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return PostgresDialect
	}
	return SQLiteDialect
}

type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	retryBackoff       time.Duration
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.DSN.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.TrimSpace(cfg.DSN) == "" {
		return nil, ErrUnsupportedDSN
	}

	switch DialectForDSN(cfg.DSN).Name {
	case PostgresDialect.Name:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.Name)
}

func (db *DB) builder() sq.StatementBuilderType {
	placeholder := db.dialect.Placeholder
	if placeholder == nil {
		placeholder = sq.Question
	}
	return sq.StatementBuilder.PlaceholderFormat(placeholder)
}

// withRetry runs op up to maxRetries extra times while the classifier reports
// its error as retryable.
func (db *DB) withRetry(ctx context.Context, name string, op func(ctx context.Context) error) error {
	backoff := db.retryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}

	attempt := 0
	return retry.Do(ctx, retry.WithMaxRetries(maxRetries, retry.NewExponential(backoff)), func(ctx context.Context) error {
		attempt++
		err := op(ctx)
		if err == nil {
			return nil
		}
		if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).
				Str("op", name).
				Int("attempt", attempt).
				Msg("retryable database error")
			return retry.RetryableError(err)
		}
		return err
	})
}

func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}
