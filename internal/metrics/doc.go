// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes the observability hooks of sync runs.
//
// The sync service depends only on the [Recorder] interface. [NoopRecorder]
// is used when metrics are not wired (tests, tooling) and
// [PrometheusRecorder] exports the counters and histograms served on
// /metrics through [HTTPHandler].
package metrics
