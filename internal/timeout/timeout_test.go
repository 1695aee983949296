package timeout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finvoice/dashboard-api/internal/apperr"
)

func TestWithinReturnsResultWhenOperationBeatsDeadline(t *testing.T) {
	got, err := Within(context.Background(), 5*time.Second, "fetch thing", func(ctx context.Context) (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestWithinPropagatesOperationError(t *testing.T) {
	opErr := errors.New("boom")
	_, err := Within(context.Background(), 5*time.Second, "fetch thing", func(ctx context.Context) (int, error) {
		return 0, opErr
	})

	assert.ErrorIs(t, err, opErr)
}

func TestWithinFailsWithTimeoutWhenOperationNeverCompletes(t *testing.T) {
	deadline := 50 * time.Millisecond
	start := time.Now()

	_, err := Within(context.Background(), deadline, "fetch thing", func(ctx context.Context) (int, error) {
		// Ignores its context entirely; the guard must still give up.
		select {}
	})
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.True(t, apperr.IsTimeout(err), "expected a timeout error, got %v", err)
	assert.GreaterOrEqual(t, elapsed, deadline, "timeout fired early")
	assert.Less(t, elapsed, 2*time.Second, "timeout fired far too late")
}

func TestWithinCancelsCooperativeOperations(t *testing.T) {
	cancelled := make(chan struct{})

	_, err := Within(context.Background(), 20*time.Millisecond, "fetch thing", func(ctx context.Context) (int, error) {
		<-ctx.Done()
		close(cancelled)
		return 0, ctx.Err()
	})

	require.Error(t, err)
	assert.True(t, apperr.IsTimeout(err))

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("guarded operation never saw the cancellation signal")
	}
}

func TestWithinPropagatesParentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := Within(ctx, 5*time.Second, "fetch thing", func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})

	require.Error(t, err)
	assert.False(t, apperr.IsTimeout(err), "parent cancellation is not a timeout")
}

func TestWithinAppliesDefaultDeadline(t *testing.T) {
	got, err := Within(context.Background(), 0, "fetch thing", func(ctx context.Context) (string, error) {
		deadline, ok := ctx.Deadline()
		if !ok {
			return "", errors.New("no deadline set")
		}
		if time.Until(deadline) > Default {
			return "", errors.New("deadline exceeds default")
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
}
