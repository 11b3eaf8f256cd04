// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"sync"
	"time"
)

// Throttle enforces a minimum interval between consecutive requests on
// one client instance. It is a plain spacing delay keyed off the last
// request timestamp, not a token bucket. The zero value performs no
// spacing.
type Throttle struct {
	// Interval is the minimum gap between requests.
	Interval time.Duration

	mu   sync.Mutex
	last time.Time
}

// Wait blocks until at least Interval has elapsed since the previous
// Wait returned, or until the context is cancelled. It records the new
// timestamp before returning so concurrent callers space out in turn.
func (t *Throttle) Wait(ctx context.Context) error {
	if t.Interval <= 0 {
		return nil
	}

	t.mu.Lock()
	now := time.Now()
	next := t.last.Add(t.Interval)
	if next.Before(now) {
		next = now
	}
	t.last = next
	t.mu.Unlock()

	d := time.Until(next)
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Gate bounds the number of in-flight requests on one client instance.
// The default capacity of 1 keeps requests sequential.
type Gate chan struct{}

// NewGate returns a Gate with the given capacity (minimum 1).
func NewGate(n int) Gate {
	if n < 1 {
		n = 1
	}
	return make(Gate, n)
}

// Acquire claims a slot, blocking until one frees or ctx is cancelled.
func (g Gate) Acquire(ctx context.Context) error {
	select {
	case g <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees a slot claimed by Acquire.
func (g Gate) Release() { <-g }
