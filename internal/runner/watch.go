package runner

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ccfrost/tubeflow/internal/auth"
)

// authRetryDelay is the backoff used when a cycle cannot start because
// no usable credential exists. The operator can run `tubeflow auth` at
// any time; the loop keeps retrying rather than exiting.
const authRetryDelay = 5 * time.Minute

// Builder constructs a Runner for one cycle. Building includes the
// non-interactive authentication, so it can fail transiently.
type Builder func(ctx context.Context) (*Runner, error)

// Watch runs cycles forever at the given interval. A single cycle's
// failure never stops the loop; only context cancellation does.
func Watch(ctx context.Context, interval time.Duration, build Builder) error {
	for {
		delay := interval

		r, err := build(ctx)
		switch {
		case err == nil:
			if _, err := r.Cycle(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("cycle aborted", slog.String("error", err.Error()))
			}
		case errors.Is(err, auth.ErrAuthenticationRequired):
			logger.Warn("no usable credential; run `tubeflow auth` to fix",
				slog.Duration("retry_in", authRetryDelay))
			delay = authRetryDelay
		case errors.Is(err, context.Canceled):
			return err
		default:
			logger.Error("could not start cycle", slog.String("error", err.Error()))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}
