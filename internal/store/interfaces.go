// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists sync run history in SQLite or PostgreSQL.
package store

import (
	"context"

	"github.com/MKhiriev/photosync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RunRepository records finished sync runs.
type RunRepository interface {
	// SaveRun inserts one finished run. Saving the same run id twice returns
	// [ErrRunAlreadyExists].
	SaveRun(ctx context.Context, run models.SyncSummary) error
	// ListRuns returns at most limit runs, most recently started first.
	ListRuns(ctx context.Context, limit int) ([]models.SyncSummary, error)
}
