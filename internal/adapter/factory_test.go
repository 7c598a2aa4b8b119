// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/photosync/internal/config"
	"github.com/MKhiriev/photosync/internal/logger"
	"github.com/MKhiriev/photosync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientFactory_InvalidURL(t *testing.T) {
	_, err := NewClientFactory(
		config.Directory{BaseURL: "   "},
		config.Messaging{BaseURL: "http://gateway:3000"},
		logger.Nop(),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory client")

	_, err = NewClientFactory(
		config.Directory{BaseURL: "https://people.googleapis.com"},
		config.Messaging{BaseURL: ""},
		logger.Nop(),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "messaging client")
}

func TestClientFactory_ForSession_BindsCredentials(t *testing.T) {
	var seenTokens []string
	directorySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTokens = append(seenTokens, r.Header.Get("Authorization"))
		assert.Equal(t, "10", r.URL.Query().Get("pageSize"))
		writeJSON(t, w, map[string]any{})
	}))
	defer directorySrv.Close()

	messagingSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []map[string]string{{"id": r.URL.Path, "number": "1"}})
	}))
	defer messagingSrv.Close()

	factory, err := NewClientFactory(
		config.Directory{BaseURL: directorySrv.URL, PageSize: 10, RequestTimeout: time.Second},
		config.Messaging{BaseURL: messagingSrv.URL, RequestTimeout: time.Second},
		logger.Nop(),
	)
	require.NoError(t, err)

	for _, session := range []models.SyncSession{
		{ID: "alpha", AccessToken: "token-a"},
		{ID: "beta", AccessToken: "token-b"},
	} {
		directory, messaging := factory.ForSession(session)

		_, err := directory.ListContacts(context.Background())
		require.NoError(t, err)

		index, err := messaging.LoadIndex(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/sessions/"+session.ID+"/contacts", index["1"])
	}

	// один и тот же клиент, разные токены сессий
	assert.Equal(t, []string{"Bearer token-a", "Bearer token-b"}, seenTokens)
}
