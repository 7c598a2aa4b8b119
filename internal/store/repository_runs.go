// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/photosync/internal/logger"
	"github.com/MKhiriev/photosync/models"
)

// runRepository is the SQL implementation of [RunRepository] over the
// "sync_runs" table.
type runRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewRunRepository(db *DB, logger *logger.Logger) RunRepository {
	logger.Debug().Str("dialect", db.dialect.Name).Msg("creating run repository")
	return &runRepository{
		db:     db,
		logger: logger,
	}
}

// SaveRun implements [RunRepository]. Transient driver errors are retried.
func (r *runRepository) SaveRun(ctx context.Context, run models.SyncSummary) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRunQuery(r.db.builder(), run)
	if err != nil {
		log.Err(err).Str("func", "*runRepository.SaveRun").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, "save run", func(ctx context.Context) error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*runRepository.SaveRun").Str("run_id", run.RunID).Msg("error saving sync run")
		if r.db.isUniqueViolation(err) {
			return ErrRunAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListRuns implements [RunRepository].
func (r *runRepository) ListRuns(ctx context.Context, limit int) ([]models.SyncSummary, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		return []models.SyncSummary{}, nil
	}

	query, args, err := buildListRunsQuery(r.db.builder(), limit)
	if err != nil {
		log.Err(err).Str("func", "*runRepository.ListRuns").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = r.db.withRetry(ctx, "list runs", func(ctx context.Context) error {
		var queryErr error
		rows, queryErr = r.db.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "*runRepository.ListRuns").Msg("error querying sync runs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	runs := make([]models.SyncSummary, 0, limit)
	for rows.Next() {
		var (
			run     models.SyncSummary
			outcome string
		)
		if err = rows.Scan(
			&run.RunID,
			&run.SessionID,
			&outcome,
			&run.SyncCount,
			&run.SkippedCount,
			&run.TotalContacts,
			&run.StartedAt,
			&run.FinishedAt,
			&run.Error,
		); err != nil {
			log.Err(err).Str("func", "*runRepository.ListRuns").Msg("error scanning sync run")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		run.Outcome = models.SyncOutcome(outcome)
		runs = append(runs, run)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*runRepository.ListRuns").Msg("error iterating sync runs")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return runs, nil
}
