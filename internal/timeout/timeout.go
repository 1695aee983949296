// Package timeout bounds the latency of store round trips.
package timeout

import (
	"context"
	"errors"
	"time"

	"github.com/finvoice/dashboard-api/internal/apperr"
)

// Default is the deadline applied when the caller does not configure one.
const Default = 5 * time.Second

type outcome[T any] struct {
	value T
	err   error
}

// Within runs fn and races it against a deadline. If fn finishes first its
// result is returned as-is; if the deadline fires first the call fails with
// an apperr.TimeoutError named after op.
//
// The context handed to fn is cancelled when the deadline fires, so
// cooperative callees (pgx included) stop early. Callees that ignore the
// context keep running in the background and their result is discarded; this
// is a best-effort latency bound, not a hard cancellation guarantee, and a
// timed-out write must be treated as ambiguous in outcome.
func Within[T any](ctx context.Context, d time.Duration, op string, fn func(context.Context) (T, error)) (T, error) {
	if d <= 0 {
		d = Default
	}
	opCtx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	done := make(chan outcome[T], 1) // buffered so a losing fn never blocks
	go func() {
		v, err := fn(opCtx)
		done <- outcome[T]{value: v, err: err}
	}()

	select {
	case out := <-done:
		// A failure observed after the deadline fired is reported as a
		// timeout, whatever shape the callee returned it in.
		if out.err != nil && errors.Is(opCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			var zero T
			return zero, apperr.NewTimeout(op, d)
		}
		return out.value, out.err
	case <-opCtx.Done():
		var zero T
		if errors.Is(opCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return zero, apperr.NewTimeout(op, d)
		}
		// Parent cancellation is not a timeout; propagate it unchanged.
		return zero, ctx.Err()
	}
}
