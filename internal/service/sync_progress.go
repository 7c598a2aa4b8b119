// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/photosync/internal/feedback"
	"github.com/MKhiriev/photosync/internal/logger"
	"github.com/MKhiriev/photosync/models"
)

// progressReporter publishes sync_progress events. Delivery is best effort.
type progressReporter struct {
	channel feedback.Channel
	logger  *logger.Logger
}

func newProgressReporter(channel feedback.Channel, logger *logger.Logger) *progressReporter {
	return &progressReporter{channel: channel, logger: logger}
}

// Emit sends progress if the channel is still open. Failures are logged.
func (p *progressReporter) Emit(ctx context.Context, progress models.SyncProgress) {
	if !feedback.IsOpen(p.channel) {
		return
	}

	event, err := models.NewEvent(models.EventSyncProgress, progress)
	if err != nil {
		p.logger.Warn().Err(err).Msg("failed to encode progress event")
		return
	}

	if err = p.channel.Send(ctx, event); err != nil {
		p.logger.Warn().Err(err).Float64("progress", progress.Progress).Msg("failed to deliver progress event")
	}
}

// EmitError sends a single progress event carrying message.
func (p *progressReporter) EmitError(ctx context.Context, message string) {
	p.Emit(ctx, models.SyncProgress{Error: message})
}
