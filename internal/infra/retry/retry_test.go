package retry

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy(attempts int) Policy {
	return Policy{Attempts: attempts, InitialBackoff: time.Millisecond, MaxBackoff: 4 * time.Millisecond, Multiplier: 2}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPolicy_Backoff(t *testing.T) {
	t.Parallel()

	policy := Policy{InitialBackoff: 100 * time.Millisecond, MaxBackoff: time.Second, Multiplier: 2}

	tests := []struct {
		retry int
		want  time.Duration
	}{
		{retry: 1, want: 100 * time.Millisecond},
		{retry: 2, want: 200 * time.Millisecond},
		{retry: 3, want: 400 * time.Millisecond},
		{retry: 5, want: time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, policy.Backoff(tt.retry), "retry %d", tt.retry)
	}
}

func TestDo_SucceedsAfterTransientFailures(t *testing.T) {
	t.Parallel()

	calls := 0
	err := Do(context.Background(), fastPolicy(3), discardLogger(), "put", func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("temporary")
		}

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_StopsAfterAttemptsExhausted(t *testing.T) {
	t.Parallel()

	cause := errors.New("still down")
	calls := 0
	err := Do(context.Background(), fastPolicy(3), discardLogger(), "put", func(context.Context) error {
		calls++

		return cause
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 3, calls)
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestDo_PermanentErrorIsNotRetried(t *testing.T) {
	t.Parallel()

	cause := errors.New("forbidden")
	calls := 0
	err := Do(context.Background(), fastPolicy(3), discardLogger(), "put", func(context.Context) error {
		calls++

		return Permanent(cause)
	})

	assert.Equal(t, cause, err)
	assert.Equal(t, 1, calls)
	assert.False(t, IsPermanent(err))
}

func TestDo_ContextCancelledDuringBackoff(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	policy := Policy{Attempts: 3, InitialBackoff: time.Hour, Multiplier: 2}

	calls := 0
	err := Do(ctx, policy, discardLogger(), "notify", func(context.Context) error {
		calls++
		cancel()

		return errors.New("timeout")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Contains(t, err.Error(), "interrupted")
}

func TestDo_CallerContextErrorsAreNotRetried(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Do(ctx, fastPolicy(3), discardLogger(), "put", func(ctx context.Context) error {
		calls++
		cancel()

		return errors.Wrap(ctx.Err(), "put object")
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)

	calls = 0
	err = Do(context.Background(), fastPolicy(2), discardLogger(), "put", func(context.Context) error {
		calls++

		return errors.Wrap(context.DeadlineExceeded, "client timeout")
	})

	require.Error(t, err)
	assert.Equal(t, 2, calls)
}
