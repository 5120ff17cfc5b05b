// Package ratelimit implements fixed-window request limiting over a shared counter store.
package ratelimit

import (
	"context"
	"time"

	"newsguard/internal/domain/service"
)

// Policy is one named fixed-window limit.
type Policy struct {
	Name    string
	Limit   int
	Window  time.Duration
	Message string
}

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfterSeconds is the wait until the window resets, rounded up to whole seconds.
func (d Decision) RetryAfterSeconds(now time.Time) int64 {
	wait := d.ResetAt.Sub(now)
	if wait <= 0 {
		return 0
	}

	return int64((wait + time.Second - 1) / time.Second)
}

// Limiter applies one policy to keys of the form "<policy>:<client>".
type Limiter struct {
	store  service.CounterStore
	policy Policy
}

func NewLimiter(store service.CounterStore, policy Policy) *Limiter {
	return &Limiter{store: store, policy: policy}
}

// Policy returns the policy the limiter enforces.
func (l *Limiter) Policy() Policy {
	return l.policy
}

// Allow counts one hit for client and reports whether it fits the policy.
// Errors come from the store; callers decide whether to fail open.
func (l *Limiter) Allow(ctx context.Context, client string) (Decision, error) {
	window, err := l.store.Increment(ctx, l.policy.Name+":"+client, l.policy.Window)
	if err != nil {
		return Decision{}, err
	}

	remaining := int64(l.policy.Limit) - window.Count
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:   window.Count <= int64(l.policy.Limit),
		Limit:     l.policy.Limit,
		Remaining: int(remaining),
		ResetAt:   window.ResetAt,
	}, nil
}
