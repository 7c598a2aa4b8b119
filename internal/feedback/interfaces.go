// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package feedback implements the bidirectional event stream between a sync
// run and the user interface that started it.
//
// Outbound events (progress, photo comparisons) are written with
// [Channel.Send]; inbound user decisions arrive on [Channel.Responses].
// [Channel.Done] is closed as soon as the peer disconnects or the channel is
// closed locally, which lets callers select on liveness instead of polling.
package feedback

import (
	"context"

	"github.com/MKhiriev/photosync/models"
)

// Channel is the event stream of one sync run.
type Channel interface {
	// Send writes one event to the peer.
	Send(ctx context.Context, event models.Event) error

	// Responses streams the events sent by the peer.
	Responses() <-chan models.Event

	// Done is closed once the channel is no longer usable.
	Done() <-chan struct{}

	// Close terminates the channel. It is safe to call more than once.
	Close() error
}

// IsOpen reports whether ch is set and not done yet.
func IsOpen(ch Channel) bool {
	if ch == nil {
		return false
	}

	select {
	case <-ch.Done():
		return false
	default:
		return true
	}
}
