package service

import (
	"context"
	"time"
)

// Window is the state of one fixed rate-limit window after an increment.
type Window struct {
	Count   int64
	ResetAt time.Time
}

// CounterStore is the shared counter behind the rate limiter.
type CounterStore interface {
	// Increment atomically adds one hit to key and returns the window it landed in.
	// A new window of the given length starts when the previous one has expired.
	Increment(ctx context.Context, key string, window time.Duration) (Window, error)

	// Close releases any resources held by the store
	Close() error
}
