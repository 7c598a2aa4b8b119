// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/photosync/internal/logger"
	"github.com/MKhiriev/photosync/internal/utils"
	"github.com/MKhiriev/photosync/models"
	"github.com/go-resty/resty/v2"
)

const (
	connectionsPath   = "/v1/people/me/connections"
	connectionsFields = "names,emailAddresses,phoneNumbers,photos"
	contactFields     = "names,photos"
	updatePhotoSuffix = ":updateContactPhoto"
	defaultPageSize   = 250
)

type peoplePhoto struct {
	URL     string `json:"url"`
	Default bool   `json:"default"`
}

type peopleName struct {
	DisplayName string `json:"displayName"`
}

type peoplePhoneNumber struct {
	Value         string `json:"value"`
	CanonicalForm string `json:"canonicalForm"`
}

type peoplePerson struct {
	ResourceName string              `json:"resourceName"`
	Names        []peopleName        `json:"names"`
	PhoneNumbers []peoplePhoneNumber `json:"phoneNumbers"`
	Photos       []peoplePhoto       `json:"photos"`
}

type peopleConnectionsResponse struct {
	Connections   []peoplePerson `json:"connections"`
	NextPageToken string         `json:"nextPageToken"`
}

type peopleUpdatePhotoRequest struct {
	PhotoBytes []byte `json:"photoBytes"`
}

// peopleDirectoryAdapter is the People API implementation of
// [DirectoryAdapter] for one OAuth access token.
type peopleDirectoryAdapter struct {
	client   *utils.HTTPClient
	token    string
	pageSize int

	logger *logger.Logger
}

// NewPeopleDirectoryAdapter binds client to the access token of one session.
// A non-positive pageSize falls back to 250 connections per page.
func NewPeopleDirectoryAdapter(client *utils.HTTPClient, token string, pageSize int, logger *logger.Logger) DirectoryAdapter {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &peopleDirectoryAdapter{
		client:   client,
		token:    strings.TrimSpace(token),
		pageSize: pageSize,
		logger:   logger,
	}
}

// ListContacts implements [DirectoryAdapter]. It follows nextPageToken until
// the last page, drops connections without a canonical phone number, strips
// the leading "+" of each number and marks a contact as having a photo unless
// every photo is the default placeholder.
func (p *peopleDirectoryAdapter) ListContacts(ctx context.Context) ([]models.DirectoryContact, error) {
	var contacts []models.DirectoryContact
	pageToken := ""
	pages := 0

	for {
		req := p.authedRequest(ctx).SetQueryParams(map[string]string{
			"pageSize":     strconv.Itoa(p.pageSize),
			"personFields": connectionsFields,
		})
		if pageToken != "" {
			req.SetQueryParam("pageToken", pageToken)
		}

		resp, err := req.Get(connectionsPath)
		if err != nil {
			return nil, fmt.Errorf("list connections request: %w", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return nil, fmt.Errorf("list connections: %w", err)
		}

		var page peopleConnectionsResponse
		if err = json.Unmarshal(resp.Body(), &page); err != nil {
			return nil, fmt.Errorf("decode connections page: %w", err)
		}
		pages++

		for _, person := range page.Connections {
			if contact, ok := toDirectoryContact(person); ok {
				contacts = append(contacts, contact)
			}
		}

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	p.logger.Debug().
		Int("pages", pages).
		Int("contacts", len(contacts)).
		Msg("directory contacts loaded")

	return contacts, nil
}

func toDirectoryContact(person peoplePerson) (models.DirectoryContact, bool) {
	numbers := make([]string, 0, len(person.PhoneNumbers))
	for _, number := range person.PhoneNumbers {
		if number.CanonicalForm == "" {
			continue
		}
		numbers = append(numbers, strings.TrimPrefix(number.CanonicalForm, "+"))
	}
	if len(numbers) == 0 {
		return models.DirectoryContact{}, false
	}

	return models.DirectoryContact{
		ID:       person.ResourceName,
		Numbers:  numbers,
		HasPhoto: hasCustomPhoto(person.Photos),
	}, true
}

// hasCustomPhoto reports whether at least one photo is not the default
// placeholder. A contact without any photo entry has none.
func hasCustomPhoto(photos []peoplePhoto) bool {
	for _, photo := range photos {
		if !photo.Default {
			return true
		}
	}
	return false
}

// GetContact implements [DirectoryAdapter]. The first photo URL is downloaded
// without the access token since it points at the public image host.
func (p *peopleDirectoryAdapter) GetContact(ctx context.Context, id string) (models.DirectoryProfile, error) {
	resp, err := p.authedRequest(ctx).
		SetQueryParam("personFields", contactFields).
		Get("/v1/" + id)
	if err != nil {
		return models.DirectoryProfile{}, fmt.Errorf("get contact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DirectoryProfile{}, fmt.Errorf("get contact %s: %w", id, err)
	}

	var person peoplePerson
	if err = json.Unmarshal(resp.Body(), &person); err != nil {
		return models.DirectoryProfile{}, fmt.Errorf("decode contact %s: %w", id, err)
	}

	var profile models.DirectoryProfile
	if len(person.Names) > 0 {
		profile.Name = person.Names[0].DisplayName
	}
	if len(person.Photos) == 0 || person.Photos[0].URL == "" {
		return profile, nil
	}

	photoResp, err := p.client.R().SetContext(ctx).Get(person.Photos[0].URL)
	if err != nil {
		return models.DirectoryProfile{}, fmt.Errorf("download contact photo request: %w", err)
	}
	if err = mapHTTPError(photoResp); err != nil {
		return models.DirectoryProfile{}, fmt.Errorf("download contact photo %s: %w", id, err)
	}
	profile.Photo = photoResp.Body()

	return profile, nil
}

// UpdateContactPhoto implements [DirectoryAdapter].
func (p *peopleDirectoryAdapter) UpdateContactPhoto(ctx context.Context, id string, photo []byte) error {
	if len(photo) == 0 {
		return ErrEmptyPhoto
	}

	resp, err := p.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(peopleUpdatePhotoRequest{PhotoBytes: photo}).
		Patch("/v1/" + id + updatePhotoSuffix)
	if err != nil {
		return fmt.Errorf("update contact photo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("update contact photo %s: %w", id, err)
	}

	return nil
}

func (p *peopleDirectoryAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := p.client.R().SetContext(ctx)
	if p.token != "" {
		req.SetAuthToken(p.token)
	}
	return req
}
