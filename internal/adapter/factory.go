// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"

	"github.com/MKhiriev/photosync/internal/config"
	"github.com/MKhiriev/photosync/internal/logger"
	"github.com/MKhiriev/photosync/internal/utils"
	"github.com/MKhiriev/photosync/models"
)

// httpClientFactory shares one HTTP client per upstream between sessions and
// binds it to the credentials of each session on demand.
type httpClientFactory struct {
	directory *utils.HTTPClient
	messaging *utils.HTTPClient
	pageSize  int

	logger *logger.Logger
}

// NewClientFactory builds the People API and messaging gateway clients from
// the given configuration.
func NewClientFactory(directory config.Directory, messaging config.Messaging, logger *logger.Logger) (ClientFactory, error) {
	directoryClient, err := utils.NewHTTPClient(directory.BaseURL, directory.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("directory client: %w", err)
	}

	messagingClient, err := utils.NewHTTPClient(messaging.BaseURL, messaging.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("messaging client: %w", err)
	}

	return &httpClientFactory{
		directory: directoryClient,
		messaging: messagingClient,
		pageSize:  directory.PageSize,
		logger:    logger,
	}, nil
}

// ForSession implements [ClientFactory].
func (f *httpClientFactory) ForSession(session models.SyncSession) (DirectoryAdapter, MessagingAdapter) {
	l := &logger.Logger{Logger: f.logger.With().Str("session_id", session.ID).Logger()}

	return NewPeopleDirectoryAdapter(f.directory, session.AccessToken, f.pageSize, l),
		NewGatewayMessagingAdapter(f.messaging, session.ID, l)
}
