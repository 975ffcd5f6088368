package splunkclient

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestComputeBackoffExponentialWithJitterCap(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 10; n++ {
		d := computeBackoff(n, rng)
		require.LessOrEqual(t, d, retryCap)
		require.Greater(t, d, time.Duration(0))
	}
}

func TestComputeBackoffCapsAtTenSeconds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := computeBackoff(20, rng) // 250ms * 2^20 would be enormous
	require.Equal(t, retryCap, d)
}

func TestParseRetryAfterSeconds(t *testing.T) {
	now := time.Unix(1700000000, 0)
	require.Equal(t, 5*time.Second, parseRetryAfter("5", now))
}

func TestParseRetryAfterClampedToCeiling(t *testing.T) {
	now := time.Unix(1700000000, 0)
	require.Equal(t, retryAfterCeiling, parseRetryAfter("3600", now))
}

func TestParseRetryAfterNegativeClampedToZero(t *testing.T) {
	now := time.Unix(1700000000, 0)
	past := now.Add(-time.Hour).Format(time.RFC1123)
	require.Equal(t, time.Duration(0), parseRetryAfter(past, now))
}

func TestParseRetryAfterEmpty(t *testing.T) {
	require.Equal(t, time.Duration(0), parseRetryAfter("", time.Now()))
}

func TestWithRetryBoundedAttempts(t *testing.T) {
	attempts := 0
	sentinel := errors.New("always fails")

	err := withRetry(context.Background(), 3, nil, func(attempt int) (time.Duration, bool, error) {
		attempts++
		return 0, true, sentinel
	})

	require.ErrorIs(t, err, sentinel)
	require.Equal(t, 4, attempts, "max_retries=3 means at most 4 total attempts")
}

func TestWithRetryStopsOnNonRetryable(t *testing.T) {
	attempts := 0
	sentinel := errors.New("not retryable")

	err := withRetry(context.Background(), 3, nil, func(attempt int) (time.Duration, bool, error) {
		attempts++
		return 0, false, sentinel
	})

	require.ErrorIs(t, err, sentinel)
	require.Equal(t, 1, attempts)
}

func TestWithRetrySucceedsEventually(t *testing.T) {
	attempts := 0

	err := withRetry(context.Background(), 3, nil, func(attempt int) (time.Duration, bool, error) {
		attempts++
		if attempt < 2 {
			return 0, true, errors.New("transient")
		}
		return 0, false, nil
	})

	require.NoError(t, err)
	require.Equal(t, 3, attempts)
}

func TestWithRetryAbortsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0

	err := withRetry(ctx, 5, func(attempt int, delay time.Duration) {
		if attempt == 0 {
			cancel()
		}
	}, func(attempt int) (time.Duration, bool, error) {
		attempts++
		return 0, true, errors.New("transient")
	})

	require.Error(t, err)
	require.LessOrEqual(t, attempts, 2)
}
