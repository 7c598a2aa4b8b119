// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errMissingHTTPHandler is returned when the sync API router was not built.
	errMissingHTTPHandler = errors.New("server: sync API handler is not configured")
	// errMissingHTTPAddress is returned when no listen address is configured.
	errMissingHTTPAddress = errors.New("server: http address is empty")
)
