// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/MKhiriev/photosync/internal/config"
	"github.com/MKhiriev/photosync/internal/logger"
	"github.com/MKhiriev/photosync/internal/metrics"
	"github.com/MKhiriev/photosync/internal/mock"
	"github.com/MKhiriev/photosync/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storages := &store.Storages{RunRepository: mock.NewMockRunRepository(ctrl)}
	cfg := config.StructuredConfig{App: config.App{Version: "1.2.3"}}

	services, err := NewServices(mock.NewMockClientFactory(ctrl), storages, cfg, metrics.NoopRecorder{}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.AppInfoService)
	assert.NotNil(t, services.RunService)
}

func TestNewServices_MissingVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storages := &store.Storages{RunRepository: mock.NewMockRunRepository(ctrl)}

	services, err := NewServices(mock.NewMockClientFactory(ctrl), storages, config.StructuredConfig{}, metrics.NoopRecorder{}, logger.Nop())

	assert.Nil(t, services)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
