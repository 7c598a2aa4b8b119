// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "semver", version: "1.2.3"},
		{name: "empty", version: ""},
		{name: "pre-release with build", version: "v2.0.0-beta+build.42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, nil)
			m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(tt.version)

			rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.version, rec.Body.String())
			// plain text, не JSON
			assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
		})
	}
}
