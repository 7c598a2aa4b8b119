// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/photosync/internal/feedback"
	"github.com/MKhiriev/photosync/internal/logger"
	"github.com/MKhiriev/photosync/internal/metrics"
	"github.com/MKhiriev/photosync/models"
)

// approvalGate asks the feedback consumer to approve a photo update and
// waits for the decision. Only one request may be outstanding at a time.
type approvalGate struct {
	channel  feedback.Channel
	required bool
	timeout  time.Duration
	pending  atomic.Bool

	recorder metrics.Recorder
	logger   *logger.Logger
}

func newApprovalGate(channel feedback.Channel, required bool, timeout time.Duration, recorder metrics.Recorder, logger *logger.Logger) *approvalGate {
	return &approvalGate{
		channel:  channel,
		required: required,
		timeout:  timeout,
		recorder: recorder,
		logger:   logger,
	}
}

// Request publishes a contact_compare event and waits for the consumer.
//
// It returns true right away when confirmation is not required or the run
// has no feedback channel. Otherwise contact_photo_apply approves,
// contact_photo_skip denies and the timeout denies. A channel that is
// already closed, or closes mid-wait, yields [ErrFeedbackClosed].
func (g *approvalGate) Request(ctx context.Context, compare models.ContactCompare) (bool, error) {
	if !g.required || g.channel == nil {
		return true, nil
	}
	if !feedback.IsOpen(g.channel) {
		return false, ErrFeedbackClosed
	}

	if !g.pending.CompareAndSwap(false, true) {
		return false, ErrApprovalPending
	}
	defer g.pending.Store(false)

	g.drainStale()

	event, err := models.NewEvent(models.EventContactCompare, compare)
	if err != nil {
		return false, err
	}
	if err = g.channel.Send(ctx, event); err != nil {
		if !feedback.IsOpen(g.channel) {
			return false, ErrFeedbackClosed
		}
		return false, fmt.Errorf("publish contact comparison: %w", err)
	}

	started := time.Now()
	timer := time.NewTimer(g.timeout)
	defer timer.Stop()

	for {
		select {
		case response := <-g.channel.Responses():
			switch response.Type {
			case models.EventContactPhotoApply:
				g.resolve(metrics.ApprovalApproved, started, compare.Name)
				return true, nil
			case models.EventContactPhotoSkip:
				g.resolve(metrics.ApprovalDenied, started, compare.Name)
				return false, nil
			default:
				g.logger.Debug().Str("type", string(response.Type)).Msg("ignoring event while awaiting approval")
			}
		case <-timer.C:
			g.logger.Warn().
				Str("contact", compare.Name).
				Dur("timeout", g.timeout).
				Msg("approval timed out, skipping photo update")
			g.recorder.ObserveApprovalWait(metrics.ApprovalTimeout, time.Since(started))
			return false, nil
		case <-g.channel.Done():
			return false, ErrFeedbackClosed
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}

func (g *approvalGate) resolve(result metrics.ApprovalResult, started time.Time, name string) {
	wait := time.Since(started)
	g.recorder.ObserveApprovalWait(result, wait)
	g.logger.Debug().
		Str("contact", name).
		Str("result", string(result)).
		Dur("wait", wait).
		Msg("approval resolved")
}

// drainStale discards responses that arrived after the previous request was
// already resolved.
func (g *approvalGate) drainStale() {
	for {
		select {
		case response := <-g.channel.Responses():
			g.logger.Debug().Str("type", string(response.Type)).Msg("discarding stale approval response")
		default:
			return
		}
	}
}
