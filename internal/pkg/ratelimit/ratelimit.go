package ratelimit

import (
	"context"
	"time"
)

// Limiter defines sliding-window rate limiting per key.
type Limiter interface {
	// Allow records a hit for the key and reports whether it is within limits.
	Allow(ctx context.Context, key string) (Result, error)
}

// Result describes the limiter state after a hit.
type Result struct {
	// Allowed reports whether the request may proceed.
	Allowed bool
	// Limit is the configured ceiling for the window.
	Limit int64
	// Remaining is the number of requests left in the window.
	Remaining int64
	// Reset is when the window rolls over.
	Reset time.Time
}
