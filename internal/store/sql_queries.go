// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/photosync/models"
)

const syncRunsTable = "sync_runs"

var syncRunColumns = []string{
	"run_id",
	"session_id",
	"outcome",
	"sync_count",
	"skipped_count",
	"total_contacts",
	"started_at",
	"finished_at",
	"error",
}

// buildInsertRunQuery builds an INSERT of one sync run row.
func buildInsertRunQuery(builder sq.StatementBuilderType, run models.SyncSummary) (string, []any, error) {
	return builder.
		Insert(syncRunsTable).
		Columns(syncRunColumns...).
		Values(
			run.RunID,
			run.SessionID,
			string(run.Outcome),
			run.SyncCount,
			run.SkippedCount,
			run.TotalContacts,
			run.StartedAt.UTC(),
			run.FinishedAt.UTC(),
			run.Error,
		).
		ToSql()
}

// buildListRunsQuery selects the latest limit runs, newest first.
func buildListRunsQuery(builder sq.StatementBuilderType, limit int) (string, []any, error) {
	return builder.
		Select(syncRunColumns...).
		From(syncRunsTable).
		OrderBy("started_at DESC", "run_id").
		Limit(uint64(limit)).
		ToSql()
}
