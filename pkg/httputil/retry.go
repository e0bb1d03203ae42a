package httputil

import (
	"context"
	"errors"
	"time"
)

// Defaults used by [RetryWithBackoff]. The packing engine is the only
// remote this module talks to, so a single shared policy is enough.
const (
	defaultAttempts     = 3
	defaultInitialDelay = time.Second
)

// RetryableError marks an error as transient. Engine 5xx responses and
// transport failures are wrapped with it so [Retry] attempts the call
// again; any other error aborts immediately.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry runs fn up to attempts times, doubling delay between attempts.
// Only errors wrapped in [RetryableError] are retried. A cancelled context
// wins over the backoff sleep and returns ctx.Err(); otherwise the last
// error is returned once attempts are exhausted.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}
		lastErr = err

		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return lastErr
}

// RetryWithBackoff runs fn with the package's default policy: three
// attempts starting one second apart.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Retry(ctx, defaultAttempts, defaultInitialDelay, fn)
}

func isRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}
