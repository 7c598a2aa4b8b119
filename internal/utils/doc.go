// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared across photosync:
// JSON response writing, resty client construction and identifier
// generation.
package utils
