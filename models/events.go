// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// EventType identifies the kind of message exchanged with the sync consumer
// over the feedback channel.
type EventType string

const (
	EventWhatsAppQR         EventType = "whatsapp_qr"
	EventWhatsAppConnecting EventType = "whatsapp_connecting"
	EventRedirect           EventType = "redirect"

	// EventContactCompare asks the consumer to approve or skip a photo update.
	EventContactCompare EventType = "contact_compare"
	// EventContactPhotoApply is the consumer's approval of the pending update.
	EventContactPhotoApply EventType = "contact_photo_apply"
	// EventContactPhotoSkip is the consumer's denial of the pending update.
	EventContactPhotoSkip EventType = "contact_photo_skip"
	// EventSyncProgress carries a [SyncProgress] snapshot.
	EventSyncProgress EventType = "sync_progress"
)

// Event is the envelope of every frame on the feedback channel.
type Event struct {
	Type EventType       `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// NewEvent marshals data into an [Event] of the given type.
func NewEvent(eventType EventType, data any) (Event, error) {
	if data == nil {
		return Event{Type: eventType}, nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s event data: %w", eventType, err)
	}

	return Event{Type: eventType, Data: raw}, nil
}

// ContactCompare is the payload of a contact_compare event. Photos are
// serialized as base64 strings.
type ContactCompare struct {
	Name     string `json:"name"`
	Google   []byte `json:"google"`
	WhatsApp []byte `json:"whatsapp"`
}

// SyncProgress is the payload of a sync_progress event. It is emitted after
// every processed contact and once at the end of the run.
type SyncProgress struct {
	// Progress is the completion percentage in [0, 100].
	Progress      float64 `json:"progress"`
	SyncCount     int     `json:"syncCount"`
	SkippedCount  int     `json:"skippedCount"`
	TotalContacts *int    `json:"totalContacts,omitempty"`
	// Image is the candidate photo considered for the last contact, if any.
	Image []byte `json:"image,omitempty"`
	// IsSynced is the outcome of the most recent apply/deny decision.
	IsSynced *bool  `json:"isSynced,omitempty"`
	Error    string `json:"error,omitempty"`
}
