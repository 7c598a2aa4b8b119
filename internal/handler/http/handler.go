// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/photosync/internal/config"
	"github.com/MKhiriev/photosync/internal/logger"
	"github.com/MKhiriev/photosync/internal/service"
)

type Handler struct {
	services       *service.Services
	metrics        http.Handler
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. metrics may be nil, in which case
// /metrics is not served.
func NewHandler(services *service.Services, cfg config.Server, metrics http.Handler, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        metrics,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
