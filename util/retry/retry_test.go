package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTransient(t *testing.T) {
	transient := []string{
		"rate limit exceeded",
		"429 Too Many Requests",
		"request timed out",
		"connection refused",
		"service temporarily unavailable",
		"502 Bad Gateway",
		"503 Service Unavailable",
		"504 Gateway Timeout",
	}
	for _, msg := range transient {
		assert.True(t, IsTransient(errors.New(msg)), "%q should be transient", msg)
	}

	permanent := []string{
		"invalid argument",
		"not found",
		"execution reverted",
		"method not whitelisted",
	}
	for _, msg := range permanent {
		assert.False(t, IsTransient(errors.New(msg)), "%q should not be transient", msg)
	}
	assert.False(t, IsTransient(nil))
}

func TestIsTransientWalksWrappedErrors(t *testing.T) {
	err := fmt.Errorf("get block 1: %w", errors.New("429 too many requests"))
	assert.True(t, IsTransient(err))
}

func TestDoRecoversAfterTransientFailures(t *testing.T) {
	base := 20 * time.Millisecond
	e := NewExecutor(5, base)
	attempts := 0
	start := time.Now()
	err := e.Do(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("rate limited")
		}
		return nil
	})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	// two waits: base before the second attempt, 2x base before the third
	assert.GreaterOrEqual(t, elapsed, 3*base)
	assert.Less(t, elapsed, 20*base)
}

func TestDoStopsOnPermanentError(t *testing.T) {
	base := 100 * time.Millisecond
	e := NewExecutor(5, base)
	attempts := 0
	start := time.Now()
	err := e.Do(context.Background(), func() error {
		attempts++
		return errors.New("invalid argument")
	})
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	// a non-retryable failure returns without any backoff wait
	assert.Less(t, elapsed, base)
}

func TestDoExhaustionKeepsEveryAttempt(t *testing.T) {
	e := NewExecutor(2, time.Millisecond)
	attempts := 0
	err := e.Do(context.Background(), func() error {
		attempts++
		return fmt.Errorf("attempt %d: connection reset", attempts)
	})
	require.Error(t, err)
	assert.Equal(t, 3, attempts)
	// the aggregate error names each attempt with its index
	assert.Contains(t, err.Error(), "#1")
	assert.Contains(t, err.Error(), "#3")
	assert.Contains(t, err.Error(), "attempt 3: connection reset")
}

func TestTryReturnsValue(t *testing.T) {
	e := NewExecutor(3, time.Millisecond)
	attempts := 0
	result, err := Try(context.Background(), e, func() (int, error) {
		attempts++
		if attempts == 1 {
			return 0, errors.New("timeout")
		}
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 2, attempts)
}

func TestDoHonorsContextCancellation(t *testing.T) {
	e := NewExecutor(10, 50*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	err := e.Do(ctx, func() error {
		attempts++
		return errors.New("unavailable")
	})
	require.Error(t, err)
	// cancellation lands during the first backoff wait
	assert.LessOrEqual(t, attempts, 2)
}
