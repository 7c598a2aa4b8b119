// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned while reading sync request parameters.
var (
	// ErrMissingAccessToken is returned when neither the "Authorization"
	// header nor the access_token query parameter carries a token.
	ErrMissingAccessToken = errors.New("missing directory access token")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrMissingSession is returned when the session query parameter is empty.
	ErrMissingSession = errors.New("missing messaging session")

	// ErrInvalidQueryParam is returned when a query parameter cannot be parsed.
	ErrInvalidQueryParam = errors.New("invalid query parameter")
)
