package api

import (
	"context"
	"time"
)

// backoffBase is the delay before the second attempt. Each further attempt
// doubles it: 100ms, 200ms, 400ms, ...
const backoffBase = 100 * time.Millisecond

// backoffDelay returns the delay before attempt n. Attempts are 1-indexed;
// the first attempt incurs no delay. The schedule is pure exponential with
// no jitter and no cap.
func backoffDelay(attempt int) time.Duration {
	if attempt < 2 {
		return 0
	}
	return backoffBase << (attempt - 2)
}

// waitBeforeAttempt sleeps for the backoff delay preceding attempt n,
// returning early if the context is cancelled.
func waitBeforeAttempt(ctx context.Context, attempt int) error {
	delay := backoffDelay(attempt)
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
