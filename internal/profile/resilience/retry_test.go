package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	r := NewRetry("test", RetryConfig{MaxAttempts: 3, InitialBackoff: time.Millisecond, MaxBackoff: 2 * time.Millisecond})

	calls := 0
	err := r.Execute(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errBoom
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_StopsAtMaxAttempts(t *testing.T) {
	r := NewRetry("test", RetryConfig{MaxAttempts: 2, InitialBackoff: time.Millisecond, MaxBackoff: time.Millisecond})

	calls := 0
	err := r.Execute(context.Background(), func() error {
		calls++
		return errBoom
	})

	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 2, calls)
}

func TestRetry_NonRetryableError(t *testing.T) {
	errFatal := errors.New("fatal")
	r := NewRetry("test", RetryConfig{
		MaxAttempts:    5,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     time.Millisecond,
		ShouldRetry:    func(err error) bool { return !errors.Is(err, errFatal) },
	})

	calls := 0
	err := r.Execute(context.Background(), func() error {
		calls++
		return errFatal
	})

	require.ErrorIs(t, err, errFatal)
	assert.Equal(t, 1, calls)
}

func TestRetry_SingleAttemptWhenNotConfigured(t *testing.T) {
	r := NewRetry("test", RetryConfig{})

	calls := 0
	err := r.Execute(context.Background(), func() error {
		calls++
		return errBoom
	})

	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, calls)
}

func TestRetry_ContextCanceledDuringBackoff(t *testing.T) {
	r := NewRetry("test", RetryConfig{MaxAttempts: 5, InitialBackoff: time.Hour, MaxBackoff: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := r.Execute(ctx, func() error {
		calls++
		cancel()
		return errBoom
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrContextCanceled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, calls)
}
