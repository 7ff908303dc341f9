package scenario

import (
	"context"
	"errors"
	"time"
)

// transientError marks a request failure the service may recover from:
// a network error or a 5xx response.
type transientError struct{ err error }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

func transient(err error) bool {
	var t *transientError
	return errors.As(err, &t)
}

// withRetry runs request up to c.Attempts times. Each transient failure is
// logged and followed by a backoff that starts at c.Delay and doubles.
// Other failures, and cancellation of ctx, end the loop at once.
func (c *Client) withRetry(ctx context.Context, endpoint string, request func() error) error {
	attempts := max(c.Attempts, 1)
	backoff := c.Delay

	for attempt := 1; ; attempt++ {
		err := request()
		if err == nil || !transient(err) {
			return err
		}
		if attempt >= attempts {
			c.logger.Warn("scenario request failed, giving up",
				"url", endpoint, "attempts", attempt, "err", err)
			return err
		}

		c.logger.Warn("scenario request failed, retrying",
			"url", endpoint, "attempt", attempt, "of", attempts, "backoff", backoff, "err", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}
