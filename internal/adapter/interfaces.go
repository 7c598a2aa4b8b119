// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound clients photosync uses to reach the
// two contact sources of a sync run.
//
// [DirectoryAdapter] talks to the cloud contacts directory (Google People
// API) and [MessagingAdapter] talks to the messaging gateway that owns the
// messaging-app session. Both are built per session by a [ClientFactory] so
// the sync service receives its collaborators explicitly.
//
// HTTP status codes are mapped to the sentinel errors in errors.go by
// mapHTTPError so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401,
// [ErrRateLimited] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/photosync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// DirectoryAdapter is the photo-destination contacts directory.
type DirectoryAdapter interface {
	// ListContacts pages through every directory connection and returns the
	// contacts that carry at least one phone number.
	ListContacts(ctx context.Context) ([]models.DirectoryContact, error)

	// GetContact returns the current display name and photo bytes of the
	// directory contact identified by id.
	GetContact(ctx context.Context, id string) (models.DirectoryProfile, error)

	// UpdateContactPhoto replaces the photo of the directory contact.
	UpdateContactPhoto(ctx context.Context, id string, photo []byte) error
}

// MessagingAdapter is the messaging-app contact source.
type MessagingAdapter interface {
	// LoadIndex returns the phone-number-to-contact-id index of the session.
	LoadIndex(ctx context.Context) (models.MessagingIndex, error)

	// DownloadPhoto returns the profile photo of the messaging contact, or
	// nil when the contact has none.
	DownloadPhoto(ctx context.Context, contactID string) ([]byte, error)
}

// ClientFactory builds the adapters bound to one sync session.
type ClientFactory interface {
	ForSession(session models.SyncSession) (DirectoryAdapter, MessagingAdapter)
}
