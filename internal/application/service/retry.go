package service

import (
	"context"
	"time"
)

// RetryPolicy is a bounded retry with a fixed delay between attempts
type RetryPolicy struct {
	// Attempts is the total attempt budget
	Attempts int
	// Delay is the pause between consecutive attempts
	Delay time.Duration
}

// Run invokes fn until it reports success or the attempt budget runs out.
// The delay is applied between attempts, never before the first or after
// the last. Returns the number of attempts made and whether fn succeeded.
// Context cancellation during a delay stops the loop early.
func (p RetryPolicy) Run(ctx context.Context, fn func(ctx context.Context) bool) (int, bool) {
	for attempt := 1; attempt <= p.Attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return attempt - 1, false
			case <-time.After(p.Delay):
			}
		}
		if fn(ctx) {
			return attempt, true
		}
	}
	return p.Attempts, false
}
