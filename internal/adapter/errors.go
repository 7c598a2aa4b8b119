// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors mapped from upstream HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrRateLimited         = errors.New("rate limited by upstream")
	ErrInternalServerError = errors.New("upstream internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnavailable         = errors.New("upstream unavailable")
)

// ErrEmptyPhoto is returned by UpdateContactPhoto when there is nothing to upload.
var ErrEmptyPhoto = errors.New("empty photo")
