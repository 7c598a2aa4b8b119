// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import "time"

// ContactOutcome enumerates what happened to a single directory contact.
type ContactOutcome string

const (
	ContactSynced          ContactOutcome = "synced"
	ContactDenied          ContactOutcome = "denied"
	ContactFailed          ContactOutcome = "failed"
	ContactNoMatch         ContactOutcome = "no_match"
	ContactNoPhoto         ContactOutcome = "no_photo"
	ContactSkippedExisting ContactOutcome = "skipped_existing"
)

// ApprovalResult enumerates how a pending approval was resolved.
type ApprovalResult string

const (
	ApprovalApproved ApprovalResult = "approved"
	ApprovalDenied   ApprovalResult = "denied"
	ApprovalTimeout  ApprovalResult = "timeout"
)

// Recorder defines the observability hooks of a sync run.
type Recorder interface {
	IncContactOutcome(outcome ContactOutcome)
	IncRunOutcome(outcome string) // outcome: done|aborted|disconnected
	ObserveRunDuration(d time.Duration)
	ObserveApprovalWait(result ApprovalResult, d time.Duration)
}

// NoopRecorder is a Recorder that does nothing.
type NoopRecorder struct{}

func (NoopRecorder) IncContactOutcome(ContactOutcome) {}
func (NoopRecorder) IncRunOutcome(string) {}
func (NoopRecorder) ObserveRunDuration(time.Duration) {}
func (NoopRecorder) ObserveApprovalWait(ApprovalResult, time.Duration) {}
