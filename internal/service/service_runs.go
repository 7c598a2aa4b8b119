// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/photosync/internal/adapter"
	"github.com/MKhiriev/photosync/internal/feedback"
	"github.com/MKhiriev/photosync/internal/logger"
	"github.com/MKhiriev/photosync/internal/metrics"
	"github.com/MKhiriev/photosync/internal/store"
	"github.com/MKhiriev/photosync/internal/utils"
	"github.com/MKhiriev/photosync/models"
)

const (
	DefaultRunsLimit = 20
	MaxRunsLimit     = 100

	saveRunTimeout = 5 * time.Second
)

type runService struct {
	factory  adapter.ClientFactory
	runs     store.RunRepository
	settings SyncSettings
	ids      *utils.UUIDGenerator

	recorder metrics.Recorder
	logger   *logger.Logger
}

func NewRunService(factory adapter.ClientFactory, runs store.RunRepository, settings SyncSettings, recorder metrics.Recorder, logger *logger.Logger) RunService {
	return &runService{
		factory:  factory,
		runs:     runs,
		settings: settings,
		ids:      utils.NewUUIDGenerator(),
		recorder: recorder,
		logger:   logger,
	}
}

// StartRun builds the session adapters, runs one sync and records its
// summary. A failure to record the summary is logged and does not change the
// returned summary.
func (r *runService) StartRun(ctx context.Context, session models.SyncSession, opts models.SyncOptions, channel feedback.Channel) models.SyncSummary {
	directory, messaging := r.factory.ForSession(session)

	summary := NewSyncService(directory, messaging, channel, r.settings, r.recorder, r.logger,
		WithRun(r.ids.Generate(), session.ID),
	).Run(ctx, opts)

	// the run may end because ctx was cancelled; the summary is still stored
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), saveRunTimeout)
	defer cancel()

	if err := r.runs.SaveRun(saveCtx, summary); err != nil {
		r.logger.Error().Err(err).Str("run_id", summary.RunID).Msg("failed to save sync run")
	}

	return summary
}

// ListRuns returns the most recent runs first. limit is clamped to
// [1, MaxRunsLimit]; a non-positive limit means DefaultRunsLimit.
func (r *runService) ListRuns(ctx context.Context, limit int) ([]models.SyncSummary, error) {
	switch {
	case limit <= 0:
		limit = DefaultRunsLimit
	case limit > MaxRunsLimit:
		limit = MaxRunsLimit
	}

	return r.runs.ListRuns(ctx, limit)
}
