// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrFeedbackClosed is returned by the approval gate when the feedback
	// channel goes away while a decision is pending.
	ErrFeedbackClosed = errors.New("feedback channel closed")

	// ErrApprovalPending is returned when a second approval is requested
	// while another one is still outstanding.
	ErrApprovalPending = errors.New("approval already pending")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// loadFailedMessage is the error text shown to the consumer when either
// contact set cannot be loaded.
const loadFailedMessage = "Failed to load contacts, please try again."
