// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// photoRateLimiter is a token bucket of capacity 1 refilled once per interval.
// A new limiter holds one token.
type photoRateLimiter struct {
	limiter *rate.Limiter
}

// newPhotoRateLimiter returns a limiter releasing one token per interval. A
// non-positive interval disables limiting.
func newPhotoRateLimiter(interval time.Duration) *photoRateLimiter {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}

	return &photoRateLimiter{limiter: rate.NewLimiter(limit, 1)}
}

// Acquire blocks until a token is available and consumes it.
func (l *photoRateLimiter) Acquire(ctx context.Context) error {
	if err := l.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}
