// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the sync engine of photosync.
//
// A [SyncService] drives one sync run: it loads both contact sets, pairs
// them by phone number, asks for approval when required and applies photo
// updates under a rate limit while reporting progress on the feedback
// channel. [RunService] builds a [SyncService] per messaging session and keeps
// the run history.
package service

import (
	"context"

	"github.com/MKhiriev/photosync/internal/feedback"
	"github.com/MKhiriev/photosync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService runs a single photo sync with collaborators bound at
// construction time.
type SyncService interface {
	// Run blocks until the run is finished and returns its summary. The
	// feedback channel is closed when Run returns.
	Run(ctx context.Context, opts models.SyncOptions) models.SyncSummary
}

// RunService starts sync runs for sessions and exposes their history.
type RunService interface {
	StartRun(ctx context.Context, session models.SyncSession, opts models.SyncOptions, channel feedback.Channel) models.SyncSummary
	ListRuns(ctx context.Context, limit int) ([]models.SyncSummary, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
