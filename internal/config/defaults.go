// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress      = "localhost:8080"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultDirectoryBaseURL = "https://people.googleapis.com"
	DefaultPageSize         = 250
	// DefaultUpdateInterval keeps photo uploads under the People API quota of
	// 60 per minute per user.
	DefaultUpdateInterval  = 1500 * time.Millisecond
	DefaultApprovalTimeout = 60 * time.Second
	DefaultDSN             = "photosync.db"
)

// applyDefaults fills every zero-valued field with its default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Version == "" {
		cfg.App.Version = "dev"
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Directory.BaseURL == "" {
		cfg.Directory.BaseURL = DefaultDirectoryBaseURL
	}
	if cfg.Directory.PageSize == 0 {
		cfg.Directory.PageSize = DefaultPageSize
	}
	if cfg.Directory.RequestTimeout == 0 {
		cfg.Directory.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.Messaging.RequestTimeout == 0 {
		cfg.Messaging.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.Sync.UpdateInterval == 0 {
		cfg.Sync.UpdateInterval = DefaultUpdateInterval
	}
	if cfg.Sync.ApprovalTimeout == 0 {
		cfg.Sync.ApprovalTimeout = DefaultApprovalTimeout
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
}
