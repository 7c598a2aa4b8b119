// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/MKhiriev/photosync/internal/adapter"
	"github.com/MKhiriev/photosync/internal/config"
	"github.com/MKhiriev/photosync/internal/feedback"
	"github.com/MKhiriev/photosync/internal/logger"
	"github.com/MKhiriev/photosync/internal/metrics"
	"github.com/MKhiriev/photosync/internal/utils"
	"github.com/MKhiriev/photosync/models"
	"golang.org/x/sync/errgroup"
)

// SyncSettings are the process-wide tuning knobs of every sync run.
type SyncSettings struct {
	// UpdateInterval is the minimum spacing between two photo updates.
	UpdateInterval time.Duration
	// ApprovalTimeout is how long a pending approval waits before it is denied.
	ApprovalTimeout time.Duration
	// Shuffle randomizes the contact order so contacts with photos are spread
	// over the run instead of bunched at one end.
	Shuffle bool
}

// NewSyncSettings converts the sync configuration section.
func NewSyncSettings(cfg config.Sync) SyncSettings {
	return SyncSettings{
		UpdateInterval:  cfg.UpdateInterval,
		ApprovalTimeout: cfg.ApprovalTimeout,
		Shuffle:         !cfg.DisableShuffle,
	}
}

// SyncOption customizes a [SyncService].
type SyncOption func(*syncService)

// WithShuffle replaces the function used to reorder contacts before iterating.
func WithShuffle(shuffle func([]models.DirectoryContact)) SyncOption {
	return func(s *syncService) {
		s.shuffle = shuffle
	}
}

// WithRun sets the run and session identifiers reported in logs and in the
// summary. Without it a fresh run id is generated.
func WithRun(runID, sessionID string) SyncOption {
	return func(s *syncService) {
		s.runID = runID
		s.sessionID = sessionID
	}
}

// WithClock replaces time.Now for summary timestamps.
func WithClock(now func() time.Time) SyncOption {
	return func(s *syncService) {
		s.now = now
	}
}

type syncService struct {
	directory adapter.DirectoryAdapter
	messaging adapter.MessagingAdapter
	channel   feedback.Channel
	settings  SyncSettings

	shuffle   func([]models.DirectoryContact)
	runID     string
	sessionID string
	now       func() time.Time

	recorder metrics.Recorder
	logger   *logger.Logger
}

// NewSyncService builds a sync run over the given collaborators. The run owns
// channel and closes it when done.
func NewSyncService(
	directory adapter.DirectoryAdapter,
	messaging adapter.MessagingAdapter,
	channel feedback.Channel,
	settings SyncSettings,
	recorder metrics.Recorder,
	logger *logger.Logger,
	opts ...SyncOption,
) SyncService {
	if settings.ApprovalTimeout <= 0 {
		settings.ApprovalTimeout = config.DefaultApprovalTimeout
	}
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}

	s := &syncService{
		directory: directory,
		messaging: messaging,
		channel:   channel,
		settings:  settings,
		shuffle:   shuffleContacts,
		now:       time.Now,
		recorder:  recorder,
		logger:    logger,
	}
	if !settings.Shuffle {
		s.shuffle = func([]models.DirectoryContact) {}
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.runID == "" {
		s.runID = utils.NewUUIDGenerator().Generate()
	}

	return s
}

func shuffleContacts(contacts []models.DirectoryContact) {
	rand.Shuffle(len(contacts), func(i, j int) {
		contacts[i], contacts[j] = contacts[j], contacts[i]
	})
}

// runState is the per-run context passed through the contact loop.
type runState struct {
	models.SyncState

	index    models.MessagingIndex
	opts     models.SyncOptions
	gate     *approvalGate
	limiter  *photoRateLimiter
	progress *progressReporter
	log      *logger.Logger
}

// Run implements [SyncService].
func (s *syncService) Run(ctx context.Context, opts models.SyncOptions) (summary models.SyncSummary) {
	log := s.logger.ForRun(s.runID, s.sessionID)
	summary = models.SyncSummary{
		RunID:     s.runID,
		SessionID: s.sessionID,
		StartedAt: s.now(),
	}
	defer func() {
		s.closeChannel(log)
		s.recorder.IncRunOutcome(string(summary.Outcome))
		s.recorder.ObserveRunDuration(summary.Duration())
		log.Info().
			Str("outcome", string(summary.Outcome)).
			Int("synced", summary.SyncCount).
			Int("skipped", summary.SkippedCount).
			Int("total", summary.TotalContacts).
			Dur("duration", summary.Duration()).
			Msg("sync run finished")
	}()

	progress := newProgressReporter(s.channel, log)

	contacts, index, err := s.load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load contacts")
		progress.EmitError(ctx, loadFailedMessage)
		return s.finish(summary, models.SyncOutcomeAborted, models.SyncState{}, err)
	}

	total := len(contacts)
	summary.TotalContacts = total
	log.Info().
		Int("directory_contacts", total).
		Int("messaging_contacts", len(index)).
		Bool("overwrite_photos", opts.OverwritePhotos).
		Bool("require_confirmation", opts.RequireConfirmation).
		Msg("sync run started")

	s.shuffle(contacts)

	state := &runState{
		index:    index,
		opts:     opts,
		gate:     newApprovalGate(s.channel, opts.RequireConfirmation, s.settings.ApprovalTimeout, s.recorder, log),
		limiter:  newPhotoRateLimiter(s.settings.UpdateInterval),
		progress: progress,
		log:      log,
	}

	for i, contact := range contacts {
		if !feedback.IsOpen(s.channel) {
			log.Info().Int("processed", i).Msg("feedback channel closed, stopping sync")
			return s.finish(summary, models.SyncOutcomeDisconnected, state.SyncState, nil)
		}
		if err = ctx.Err(); err != nil {
			return s.finish(summary, models.SyncOutcomeAborted, state.SyncState, err)
		}

		if !opts.OverwritePhotos && contact.HasPhoto {
			s.recorder.IncContactOutcome(metrics.ContactSkippedExisting)
			continue
		}

		state.CurrentPhoto = nil
		if err = s.processContact(ctx, contact, state); err != nil {
			if errors.Is(err, ErrFeedbackClosed) {
				log.Info().Int("processed", i).Msg("feedback channel closed during approval, stopping sync")
				return s.finish(summary, models.SyncOutcomeDisconnected, state.SyncState, nil)
			}
			return s.finish(summary, models.SyncOutcomeAborted, state.SyncState, err)
		}

		progress.Emit(ctx, models.SyncProgress{
			Progress:      float64(i) / float64(total) * 100,
			SyncCount:     state.SyncCount,
			SkippedCount:  state.SkippedCount,
			TotalContacts: &total,
			Image:         state.CurrentPhoto,
			IsSynced:      state.LastSynced,
		})
	}

	progress.Emit(ctx, models.SyncProgress{
		Progress:      100,
		SyncCount:     state.SyncCount,
		SkippedCount:  state.SkippedCount,
		TotalContacts: &total,
	})

	return s.finish(summary, models.SyncOutcomeDone, state.SyncState, nil)
}

// load fetches the directory contacts and the messaging index concurrently.
func (s *syncService) load(ctx context.Context) ([]models.DirectoryContact, models.MessagingIndex, error) {
	var (
		contacts []models.DirectoryContact
		index    models.MessagingIndex
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if contacts, err = s.directory.ListContacts(gctx); err != nil {
			return fmt.Errorf("load directory contacts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if index, err = s.messaging.LoadIndex(gctx); err != nil {
			return fmt.Errorf("load messaging index: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return contacts, index, nil
}

// processContact walks one contact through matching, photo fetch, approval
// and apply. Only errors that end the run are returned.
func (s *syncService) processContact(ctx context.Context, contact models.DirectoryContact, state *runState) error {
	log := state.log.With().Str("contact_id", contact.ID).Logger()

	messagingID, ok := MatchContact(contact, state.index)
	if !ok {
		s.recorder.IncContactOutcome(metrics.ContactNoMatch)
		return nil
	}

	photo, err := s.messaging.DownloadPhoto(ctx, messagingID)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Warn().Err(err).Str("messaging_id", messagingID).Msg("failed to download messaging photo")
		s.recorder.IncContactOutcome(metrics.ContactNoPhoto)
		return nil
	}
	if len(photo) == 0 {
		s.recorder.IncContactOutcome(metrics.ContactNoPhoto)
		return nil
	}
	state.CurrentPhoto = photo

	approved, err := s.approve(ctx, contact, photo, state)
	if err != nil {
		return err
	}
	if !approved {
		state.recordSkip()
		s.recorder.IncContactOutcome(metrics.ContactDenied)
		return nil
	}

	if err = state.limiter.Acquire(ctx); err != nil {
		return err
	}
	if err = s.directory.UpdateContactPhoto(ctx, contact.ID, photo); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Warn().Err(err).Msg("failed to update directory photo")
		state.recordSkip()
		s.recorder.IncContactOutcome(metrics.ContactFailed)
		return nil
	}

	synced := true
	state.SyncCount++
	state.LastSynced = &synced
	s.recorder.IncContactOutcome(metrics.ContactSynced)

	return nil
}

// approve returns the approval decision for contact. Errors are returned only
// when the run has to stop; a failed comparison lookup counts as a denial.
// A consumer that left after the per-contact check stops the run before any
// further external call.
func (s *syncService) approve(ctx context.Context, contact models.DirectoryContact, photo []byte, state *runState) (bool, error) {
	if !state.opts.RequireConfirmation || s.channel == nil {
		return true, nil
	}
	if !feedback.IsOpen(s.channel) {
		return false, ErrFeedbackClosed
	}

	current, err := s.directory.GetContact(ctx, contact.ID)
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		state.log.Warn().Err(err).Str("contact_id", contact.ID).Msg("failed to fetch directory contact for comparison")
		return false, nil
	}

	approved, err := state.gate.Request(ctx, models.ContactCompare{
		Name:     current.Name,
		Google:   current.Photo,
		WhatsApp: photo,
	})
	switch {
	case err == nil:
		return approved, nil
	case errors.Is(err, ErrFeedbackClosed), ctx.Err() != nil:
		return false, err
	default:
		state.log.Warn().Err(err).Str("contact_id", contact.ID).Msg("approval request failed")
		return false, nil
	}
}

func (r *runState) recordSkip() {
	synced := false
	r.SkippedCount++
	r.LastSynced = &synced
}

func (s *syncService) finish(summary models.SyncSummary, outcome models.SyncOutcome, state models.SyncState, err error) models.SyncSummary {
	summary.Outcome = outcome
	summary.SyncCount = state.SyncCount
	summary.SkippedCount = state.SkippedCount
	summary.FinishedAt = s.now()
	if err != nil {
		summary.Error = err.Error()
	}
	return summary
}

func (s *syncService) closeChannel(log *logger.Logger) {
	if s.channel == nil {
		return
	}
	if err := s.channel.Close(); err != nil {
		log.Debug().Err(err).Msg("failed to close feedback channel")
	}
}
