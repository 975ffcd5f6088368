package splunkclient

import (
	"context"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Retry policy constants from spec §4.1b: base = 250ms, delay_n = base *
// 2^n + uniform(0, base), capped at 10s.
const (
	retryBase    = 250 * time.Millisecond
	retryCap     = 10 * time.Second
	retryAfterCeiling = 60 * time.Second
)

// computeBackoff returns the delay before retry attempt n (0-indexed: n=0
// is the delay before the first retry, i.e. after the initial attempt
// failed). It is deliberately a pure function of n so it can be unit
// tested without any clock or randomness injection beyond rng.
func computeBackoff(n int, rng *rand.Rand) time.Duration {
	exp := float64(retryBase) * math.Pow(2, float64(n))
	jitter := rng.Float64() * float64(retryBase)
	delay := time.Duration(exp + jitter)
	if delay > retryCap {
		delay = retryCap
	}
	return delay
}

// backoffPolicy adapts computeBackoff to the backoff.BackOff interface from
// github.com/cenkalti/backoff (see go.mod). withRetry drives it from its own
// loop, waiting on a real time.Timer; backoff.Retry is not used.
type backoffPolicy struct {
	attempt int
	rng     *rand.Rand
}

func newBackoffPolicy() *backoffPolicy {
	return &backoffPolicy{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (p *backoffPolicy) NextBackOff() time.Duration {
	d := computeBackoff(p.attempt, p.rng)
	p.attempt++
	return d
}

func (p *backoffPolicy) Reset() {
	p.attempt = 0
}

var _ backoff.BackOff = (*backoffPolicy)(nil)

// parseRetryAfter parses an HTTP Retry-After header (either delta-seconds
// or an HTTP-date) and clamps the result to [0, 60s] (spec §4.1b, Open
// Question: "Retry budget semantics ... clamping to 60s is proposed here").
func parseRetryAfter(header string, now time.Time) time.Duration {
	if header == "" {
		return 0
	}
	if secs, err := strconv.Atoi(header); err == nil {
		return clampRetryAfter(time.Duration(secs) * time.Second)
	}
	if t, err := http.ParseTime(header); err == nil {
		return clampRetryAfter(t.Sub(now))
	}
	return 0
}

func clampRetryAfter(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if d > retryAfterCeiling {
		return retryAfterCeiling
	}
	return d
}

// withRetry executes op up to maxRetries+1 times total (spec §8 property
// 4: "total HTTP attempts ≤ max_retries + 1"), retrying only when op
// returns a retryable error, honoring an explicit Retry-After delay when
// present, and aborting promptly on context cancellation.
func withRetry(ctx context.Context, maxRetries int, onRetry func(attempt int, delay time.Duration), op func(attempt int) (retryAfter time.Duration, retryable bool, err error)) error {
	policy := newBackoffPolicy()

	for attempt := 0; ; attempt++ {
		retryAfter, retryable, err := op(attempt)
		if err == nil {
			return nil
		}
		if !retryable || attempt >= maxRetries {
			return err
		}

		delay := policy.NextBackOff()
		if retryAfter > 0 {
			delay = retryAfter
		}
		if onRetry != nil {
			onRetry(attempt, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
