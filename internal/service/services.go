// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/photosync/internal/adapter"
	"github.com/MKhiriev/photosync/internal/config"
	"github.com/MKhiriev/photosync/internal/logger"
	"github.com/MKhiriev/photosync/internal/metrics"
	"github.com/MKhiriev/photosync/internal/store"
)

type Services struct {
	AppInfoService AppInfoService
	RunService     RunService
}

func NewServices(factory adapter.ClientFactory, storages *store.Storages, cfg config.StructuredConfig, recorder metrics.Recorder, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AppInfoService: appInfo,
		RunService:     NewRunService(factory, storages.RunRepository, NewSyncSettings(cfg.Sync), recorder, logger),
	}, nil
}
