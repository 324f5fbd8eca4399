package pacing

import (
	"context"
	"math/rand/v2"
	"time"
)

// Sleep blocks for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Uniform returns a duration drawn uniformly from [lo, hi].
func Uniform(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(rand.Int64N(int64(hi-lo)+1))
}

// PageDelay is the wait before listing page n: uniform in [d, 1.5d] where
// d grows by one percent of base per page.
func PageDelay(base time.Duration, page int) time.Duration {
	d := time.Duration(float64(base) * (1 + float64(page)/100))
	return Uniform(d, d+d/2)
}
