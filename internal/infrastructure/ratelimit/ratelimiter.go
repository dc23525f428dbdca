package ratelimit

import (
	"context"
	"time"
)

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	// RetryAfter is set when the request was denied.
	RetryAfter time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (Result, error)
	Reset(ctx context.Context, key string) error
}
