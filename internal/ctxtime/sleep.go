// Package ctxtime holds time helpers that respect context cancellation.
package ctxtime

import (
	"context"
	"time"
)

// Sleep pauses for d, or until ctx is done, in which case it returns the
// context's error. Non-positive durations return immediately.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
