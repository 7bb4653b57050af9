package storage

import (
	"context"
	"time"
)

const (
	maxWriteAttempts = 3
	baseBackoff      = 100 * time.Millisecond
	maxBackoff       = 2 * time.Second
)

// withRetry executes a backend operation with bounded exponential backoff.
// Reads are attempted once; only writes and deletes go through here, since a
// failed read already degrades to the bundled default at the Read helper.
func withRetry(ctx context.Context, operation func() error) error {
	var lastErr error

	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = operation()
		if lastErr == nil {
			return nil
		}

		if attempt == maxWriteAttempts-1 {
			break
		}

		backoff := baseBackoff * (1 << attempt)
		if backoff > maxBackoff {
			backoff = maxBackoff
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return lastErr
}
