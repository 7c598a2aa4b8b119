// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/photosync/internal/logger"
	"github.com/MKhiriev/photosync/internal/utils"
	"github.com/MKhiriev/photosync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMessaging(t *testing.T, serverURL string) MessagingAdapter {
	t.Helper()
	client, err := utils.NewHTTPClient(serverURL, 5*time.Second)
	require.NoError(t, err)
	return NewGatewayMessagingAdapter(client, "session-1", logger.Nop())
}

// ── LoadIndex ───────────────────────────────────────────────────────────────

func TestLoadIndex_NormalizesNumbers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/sessions/session-1/contacts", r.URL.Path)
		writeJSON(t, w, []map[string]string{
			{"id": "5511912345678@c.us", "number": "+55 11 91234-5678"},
			{"id": "14155550100@c.us", "number": "14155550100"},
			{"id": "dup@c.us", "number": "1 (415) 555-0100"},
			{"id": "no-number@c.us", "number": ""},
			{"id": "", "number": "4915112345678"},
		})
	}))
	defer srv.Close()

	index, err := newTestMessaging(t, srv.URL).LoadIndex(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.MessagingIndex{
		"5511912345678": "5511912345678@c.us",
		"14155550100":   "14155550100@c.us",
	}, index)
}

func TestLoadIndex_GatewayUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestMessaging(t, srv.URL).LoadIndex(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

// ── DownloadPhoto ───────────────────────────────────────────────────────────

func TestDownloadPhoto_ReturnsBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sessions/session-1/contacts/5511912345678@c.us/photo", r.URL.Path)
		_, _ = w.Write([]byte("jpeg"))
	}))
	defer srv.Close()

	photo, err := newTestMessaging(t, srv.URL).DownloadPhoto(context.Background(), "5511912345678@c.us")

	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), photo)
}

func TestDownloadPhoto_AbsentPhoto(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "not found", status: http.StatusNotFound},
		{name: "no content", status: http.StatusNoContent},
		{name: "empty body", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			photo, err := newTestMessaging(t, srv.URL).DownloadPhoto(context.Background(), "c1")

			require.NoError(t, err)
			assert.Nil(t, photo)
		})
	}
}

func TestDownloadPhoto_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestMessaging(t, srv.URL).DownloadPhoto(context.Background(), "c1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── digitsOnly ──────────────────────────────────────────────────────────────

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "5511912345678", digitsOnly("+55 (11) 91234-5678"))
	assert.Equal(t, "", digitsOnly("abc"))
	assert.Equal(t, "", digitsOnly(""))
}
