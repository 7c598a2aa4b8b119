// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DirectoryContact is a contact record loaded from the photo-destination
// directory. It is built once per sync run and never mutated afterwards.
type DirectoryContact struct {
	// ID is the opaque directory identifier (a People API resource name such
	// as "people/c123").
	ID string `json:"id"`

	// Numbers holds the contact's phone numbers in directory order, digits
	// only, without the leading "+".
	Numbers []string `json:"numbers"`

	// HasPhoto is true when at least one of the contact's photos is not the
	// directory's default placeholder.
	HasPhoto bool `json:"has_photo"`
}

// DirectoryProfile is the current display state of a directory contact,
// used to build the side-by-side comparison shown during approval.
type DirectoryProfile struct {
	Name  string
	Photo []byte
}

// MessagingIndex maps a normalized phone number (digits only, no leading "+")
// to the messaging-app contact identifier.
type MessagingIndex map[string]string

// MessagingContact is a single entry of the messaging-app contact list as
// returned by the messaging gateway.
type MessagingContact struct {
	ID     string `json:"id"`
	Number string `json:"number"`
}
