package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/api/googleapi"
)

// IsServerError reports whether the backend failure is the transient server
// class that is worth retrying. Anything else propagates to the caller.
func IsServerError(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code >= http.StatusInternalServerError
	}
	return false
}

// callWithRetry runs fn up to maxAttempts times, waiting with exponential
// backoff between attempts. Only transient server errors are retried; the
// wait blocks the calling goroutine but honors ctx cancellation.
func callWithRetry(ctx context.Context, agentName string, maxAttempts int, initialBackoff time.Duration, fn func(context.Context) (string, error)) (string, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	backoff := initialBackoff

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		text, err := fn(ctx)
		if err == nil {
			return text, nil
		}
		if !IsServerError(err) {
			return "", err
		}

		lastErr = err
		slog.Warn("Server error from generative backend",
			"agent", agentName, "attempt", attempt, "max_attempts", maxAttempts, "error", err)

		if attempt == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return "", fmt.Errorf("agent %q failed after %d attempts: %w", agentName, maxAttempts, lastErr)
}
