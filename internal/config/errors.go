// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	ErrInvalidServerConfigs    = errors.New("invalid server configuration")
	ErrInvalidDirectoryConfigs = errors.New("invalid directory configuration")
	ErrInvalidMessagingConfigs = errors.New("invalid messaging configuration")
	ErrInvalidSyncConfigs      = errors.New("invalid sync configuration")
	ErrInvalidStorageConfigs   = errors.New("invalid storage configuration")
)
