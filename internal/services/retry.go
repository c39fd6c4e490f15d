package services

import (
	"context"
	"time"
)

const (
	defaultRetryAttempts = 3
	defaultRetryBaseWait = 2 * time.Second
)

// Retry runs fn up to attempts times, doubling the wait between tries.
// The context is checked between attempts so cancellation is prompt. The
// last error is returned when all attempts fail.
func Retry(ctx context.Context, attempts int, baseWait time.Duration, fn func() error) error {
	if attempts <= 0 {
		attempts = defaultRetryAttempts
	}
	if baseWait <= 0 {
		baseWait = defaultRetryBaseWait
	}

	var lastErr error
	wait := baseWait
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
			wait *= 2
		}
		if lastErr = fn(); lastErr == nil {
			return nil
		}
	}
	return lastErr
}
