// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of photosync.
//
// It exposes the sync websocket, the run history and version endpoints and
// the Prometheus scrape endpoint. Request tracing and access logging are
// handled here before requests reach the service layer.
package http
