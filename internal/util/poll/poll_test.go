package poll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUntil_ReadyImmediately(t *testing.T) {
	t.Parallel()
	attempts := 0

	err := Until(context.Background(), time.Millisecond, time.Second, func(_ context.Context) (bool, error) {
		attempts++
		return true, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestUntil_ReadyAfterAttempts(t *testing.T) {
	t.Parallel()
	attempts := 0
	var reported []int

	err := Until(context.Background(), time.Millisecond, time.Second, func(_ context.Context) (bool, error) {
		attempts++
		return attempts == 3, nil
	}, WithOnAttempt(func(n int) { reported = append(reported, n) }))

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, []int{1, 2}, reported)
}

func TestUntil_ConditionErrorStopsPolling(t *testing.T) {
	t.Parallel()
	attempts := 0
	boom := errors.New("describe failed")

	err := Until(context.Background(), time.Millisecond, time.Second, func(_ context.Context) (bool, error) {
		attempts++
		return false, boom
	})

	require.ErrorIs(t, err, boom)
	assert.False(t, IsTimeout(err))
	assert.Equal(t, 1, attempts)
}

func TestUntil_Timeout(t *testing.T) {
	t.Parallel()

	err := Until(context.Background(), 5*time.Millisecond, 30*time.Millisecond, func(_ context.Context) (bool, error) {
		return false, nil
	})

	require.Error(t, err)
	assert.True(t, IsTimeout(err))
	assert.Contains(t, err.Error(), "timed out waiting for readiness")
}

func TestUntil_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	attempts := 0

	err := Until(ctx, time.Millisecond, time.Second, func(_ context.Context) (bool, error) {
		attempts++
		return false, nil
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, IsTimeout(err))
	assert.Equal(t, 0, attempts)
}

func TestUntil_ContextCancelledWhileWaiting(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0

	err := Until(ctx, time.Hour, 0, func(_ context.Context) (bool, error) {
		attempts++
		cancel()
		return false, nil
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestUntil_InvalidInterval(t *testing.T) {
	t.Parallel()

	err := Until(context.Background(), 0, time.Second, func(_ context.Context) (bool, error) {
		return true, nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "interval must be positive")
}
