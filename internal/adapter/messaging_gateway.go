// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/photosync/internal/logger"
	"github.com/MKhiriev/photosync/internal/utils"
	"github.com/MKhiriev/photosync/models"
	"github.com/go-resty/resty/v2"
)

const (
	gatewayContactsPath = "/sessions/{session}/contacts"
	gatewayPhotoPath    = "/sessions/{session}/contacts/{contact}/photo"
)

// gatewayMessagingAdapter is the messaging gateway implementation of
// [MessagingAdapter] for one messaging session.
type gatewayMessagingAdapter struct {
	client  *utils.HTTPClient
	session string

	logger *logger.Logger
}

// NewGatewayMessagingAdapter binds client to the messaging session identified
// by sessionID.
func NewGatewayMessagingAdapter(client *utils.HTTPClient, sessionID string, logger *logger.Logger) MessagingAdapter {
	return &gatewayMessagingAdapter{
		client:  client,
		session: strings.TrimSpace(sessionID),
		logger:  logger,
	}
}

// LoadIndex implements [MessagingAdapter]. Numbers are reduced to their
// digits; contacts without a usable number are left out and on a duplicate
// number the first contact wins.
func (g *gatewayMessagingAdapter) LoadIndex(ctx context.Context) (models.MessagingIndex, error) {
	resp, err := g.request(ctx).Get(gatewayContactsPath)
	if err != nil {
		return nil, fmt.Errorf("load messaging contacts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("load messaging contacts: %w", err)
	}

	var contacts []models.MessagingContact
	if err = json.Unmarshal(resp.Body(), &contacts); err != nil {
		return nil, fmt.Errorf("decode messaging contacts: %w", err)
	}

	index := make(models.MessagingIndex, len(contacts))
	for _, contact := range contacts {
		number := digitsOnly(contact.Number)
		if number == "" || contact.ID == "" {
			continue
		}
		if _, exists := index[number]; exists {
			continue
		}
		index[number] = contact.ID
	}

	g.logger.Debug().
		Int("contacts", len(contacts)).
		Int("indexed", len(index)).
		Msg("messaging index loaded")

	return index, nil
}

// DownloadPhoto implements [MessagingAdapter]. A missing photo is reported as
// nil bytes without an error.
func (g *gatewayMessagingAdapter) DownloadPhoto(ctx context.Context, contactID string) ([]byte, error) {
	resp, err := g.request(ctx).
		SetPathParam("contact", contactID).
		Get(gatewayPhotoPath)
	if err != nil {
		return nil, fmt.Errorf("download messaging photo request: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusNotFound, http.StatusNoContent:
		return nil, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("download messaging photo %s: %w", contactID, err)
	}

	if len(resp.Body()) == 0 {
		return nil, nil
	}
	return resp.Body(), nil
}

func (g *gatewayMessagingAdapter) request(ctx context.Context) *resty.Request {
	return g.client.R().
		SetContext(ctx).
		SetPathParam("session", g.session)
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
