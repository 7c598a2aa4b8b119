// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/photosync/internal/config"
	"github.com/MKhiriev/photosync/internal/logger"
	"github.com/MKhiriev/photosync/internal/mock"
	"github.com/MKhiriev/photosync/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerMocks struct {
	runs    *mock.MockRunService
	appInfo *mock.MockAppInfoService
}

// newTestHandler собирает Handler с mock-сервисами и nop-логгером.
func newTestHandler(t *testing.T, metrics http.Handler) (*Handler, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := handlerMocks{
		runs:    mock.NewMockRunService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{AppInfoService: m.appInfo, RunService: m.runs}

	return NewHandler(services, config.Server{RequestTimeout: 5 * time.Second}, metrics, logger.Nop()), m
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// ── NewHandler ──────────────────────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	services := &service.Services{}
	metrics := http.NotFoundHandler()

	h := NewHandler(services, config.Server{RequestTimeout: time.Second}, metrics, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Equal(t, time.Second, h.requestTimeout)
	assert.NotNil(t, h.metrics)
}

// ── routes ──────────────────────────────────────────────────────────────────

func TestRoutes_MetricsServed(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("photosync_runs_total 1\n"))
	})
	h, _ := newTestHandler(t, metrics)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "photosync_runs_total")
}

func TestRoutes_MetricsDisabled(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_WrongMethodIsNotFound(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	for _, path := range []string{"/api/version/", "/api/sync/runs", "/api/sync/ws"} {
		t.Run(path, func(t *testing.T) {
			rec := serve(h, httptest.NewRequest(http.MethodPost, path, nil))
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestRoutes_UnknownPath(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/user/login", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_SetsTraceIDHeader(t *testing.T) {
	h, m := newTestHandler(t, nil)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set(traceIDHeader, "trace-42")

	rec := serve(h, req)

	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}
