// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncOptions configures a single sync run. It is immutable for the lifetime
// of the run.
type SyncOptions struct {
	// OverwritePhotos allows replacing photos of directory contacts that
	// already have one.
	OverwritePhotos bool `json:"overwrite_photos"`

	// RequireConfirmation asks the consumer to approve every photo update.
	RequireConfirmation bool `json:"require_confirmation"`
}

// SyncState is the mutable per-run state owned by the sync orchestrator.
type SyncState struct {
	SyncCount    int
	SkippedCount int
	CurrentPhoto []byte
	LastSynced   *bool
}

// SyncOutcome is the terminal state of a sync run.
type SyncOutcome string

const (
	// SyncOutcomeDone means every contact was iterated.
	SyncOutcomeDone SyncOutcome = "done"
	// SyncOutcomeAborted means the run stopped on a fatal error.
	SyncOutcomeAborted SyncOutcome = "aborted"
	// SyncOutcomeDisconnected means the consumer went away mid-run.
	SyncOutcomeDisconnected SyncOutcome = "disconnected"
)

// SyncSummary describes a finished sync run. It is what the run history
// store persists.
type SyncSummary struct {
	RunID         string      `json:"run_id"`
	SessionID     string      `json:"session_id"`
	Outcome       SyncOutcome `json:"outcome"`
	SyncCount     int         `json:"sync_count"`
	SkippedCount  int         `json:"skipped_count"`
	TotalContacts int         `json:"total_contacts"`
	StartedAt     time.Time   `json:"started_at"`
	FinishedAt    time.Time   `json:"finished_at"`
	Error         string      `json:"error,omitempty"`
}

// Duration returns how long the run took.
func (s SyncSummary) Duration() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}

// SyncSession carries the per-session credentials the client factory needs to
// reach both contact sources.
type SyncSession struct {
	// ID identifies the messaging session on the messaging gateway.
	ID string
	// AccessToken is the directory OAuth bearer token.
	AccessToken string
}
