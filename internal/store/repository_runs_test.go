// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/photosync/internal/config"
	"github.com/MKhiriev/photosync/internal/logger"
	"github.com/MKhiriev/photosync/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunRepo(t *testing.T) (*runRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &runRepository{
		db: &DB{
			DB:                 db,
			dialect:            PostgresDialect,
			errorClassificator: NewPostgresErrorClassifier(),
			retryBackoff:       time.Millisecond,
			logger:             l,
		},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var (
	testStartedAt  = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	testFinishedAt = testStartedAt.Add(90 * time.Second)
)

func testRun(id string) models.SyncSummary {
	return models.SyncSummary{
		RunID:         id,
		SessionID:     "session-1",
		Outcome:       models.SyncOutcomeDone,
		SyncCount:     3,
		SkippedCount:  1,
		TotalContacts: 10,
		StartedAt:     testStartedAt,
		FinishedAt:    testFinishedAt,
	}
}

func runArgs(run models.SyncSummary) []driver.Value {
	return []driver.Value{
		run.RunID, run.SessionID, string(run.Outcome),
		run.SyncCount, run.SkippedCount, run.TotalContacts,
		run.StartedAt, run.FinishedAt, run.Error,
	}
}

// ── SaveRun ─────────────────────────────────────────────────────────────────

func TestSaveRun_Success(t *testing.T) {
	repo, mock, db := newTestRunRepo(t)
	defer db.Close()

	run := testRun("run-1")

	mock.ExpectExec(`INSERT INTO sync_runs \(run_id,session_id,outcome`).
		WithArgs(runArgs(run)...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveRun(context.Background(), run))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRun_DuplicateRunID(t *testing.T) {
	repo, mock, db := newTestRunRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sync_runs").WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.SaveRun(context.Background(), testRun("run-1"))

	assert.ErrorIs(t, err, ErrRunAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRun_RetriesTransientErrors(t *testing.T) {
	repo, mock, db := newTestRunRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sync_runs").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectExec("INSERT INTO sync_runs").WillReturnError(pgError(pgerrcode.ConnectionFailure))
	mock.ExpectExec("INSERT INTO sync_runs").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveRun(context.Background(), testRun("run-1")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRun_GivesUpAfterMaxRetries(t *testing.T) {
	repo, mock, db := newTestRunRepo(t)
	defer db.Close()

	for range maxRetries + 1 {
		mock.ExpectExec("INSERT INTO sync_runs").WillReturnError(pgError(pgerrcode.DeadlockDetected))
	}

	err := repo.SaveRun(context.Background(), testRun("run-1"))

	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRun_NonRetryableErrorFailsFast(t *testing.T) {
	repo, mock, db := newTestRunRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sync_runs").WillReturnError(pgError(pgerrcode.UndefinedTable))

	err := repo.SaveRun(context.Background(), testRun("run-1"))

	assert.ErrorIs(t, err, ErrExecutingStatement)
	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, pgerrcode.UndefinedTable, pgErr.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── ListRuns ────────────────────────────────────────────────────────────────

func TestListRuns_Success(t *testing.T) {
	repo, mock, db := newTestRunRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(syncRunColumns).
		AddRow("run-2", "session-1", "aborted", 0, 0, 0, testStartedAt.Add(time.Hour), testFinishedAt.Add(time.Hour), "load failed").
		AddRow("run-1", "session-1", "done", 3, 1, 10, testStartedAt, testFinishedAt, "")

	mock.ExpectQuery(`SELECT run_id, .* FROM sync_runs ORDER BY started_at DESC, run_id LIMIT 5`).
		WillReturnRows(rows)

	runs, err := repo.ListRuns(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-2", runs[0].RunID)
	assert.Equal(t, models.SyncOutcomeAborted, runs[0].Outcome)
	assert.Equal(t, "load failed", runs[0].Error)
	assert.Equal(t, testRun("run-1"), runs[1])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListRuns_Empty(t *testing.T) {
	repo, mock, db := newTestRunRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM sync_runs").WillReturnRows(sqlmock.NewRows(syncRunColumns))

	runs, err := repo.ListRuns(context.Background(), 10)

	require.NoError(t, err)
	assert.NotNil(t, runs)
	assert.Empty(t, runs)
}

func TestListRuns_NonPositiveLimitSkipsQuery(t *testing.T) {
	repo, mock, db := newTestRunRepo(t)
	defer db.Close()

	runs, err := repo.ListRuns(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, runs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListRuns_QueryError(t *testing.T) {
	repo, mock, db := newTestRunRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM sync_runs").WillReturnError(errors.New("boom"))

	_, err := repo.ListRuns(context.Background(), 10)

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListRuns_ScanError(t *testing.T) {
	repo, mock, db := newTestRunRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(syncRunColumns).
		AddRow("run-1", "session-1", "done", "not-a-number", 0, 0, testStartedAt, testFinishedAt, "")
	mock.ExpectQuery("FROM sync_runs").WillReturnRows(rows)

	_, err := repo.ListRuns(context.Background(), 10)

	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestListRuns_RowIterationError(t *testing.T) {
	repo, mock, db := newTestRunRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(syncRunColumns).
		AddRow("run-1", "session-1", "done", 1, 0, 1, testStartedAt, testFinishedAt, "").
		RowError(0, errors.New("connection reset"))
	mock.ExpectQuery("FROM sync_runs").WillReturnRows(rows)

	_, err := repo.ListRuns(context.Background(), 10)

	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── SQLite end-to-end ───────────────────────────────────────────────────────

func TestStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "runs.db")

	storages, err := NewStorages(ctx, config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	first := testRun("run-1")
	second := testRun("run-2")
	second.StartedAt = first.StartedAt.Add(time.Minute)
	second.FinishedAt = second.StartedAt.Add(time.Second)
	second.Outcome = models.SyncOutcomeDisconnected

	require.NoError(t, storages.RunRepository.SaveRun(ctx, first))
	require.NoError(t, storages.RunRepository.SaveRun(ctx, second))
	assert.ErrorIs(t, storages.RunRepository.SaveRun(ctx, first), ErrRunAlreadyExists)

	runs, err := storages.RunRepository.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-2", runs[0].RunID)
	assert.Equal(t, models.SyncOutcomeDisconnected, runs[0].Outcome)
	assert.True(t, first.StartedAt.Equal(runs[1].StartedAt))
	assert.Equal(t, first.Duration(), runs[1].Duration())

	limited, err := storages.RunRepository.ListRuns(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "run-2", limited[0].RunID)
}

func TestStorages_CloseNil(t *testing.T) {
	var storages *Storages
	assert.NoError(t, storages.Close())
}

func TestNewConnect_EmptyDSN(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}
