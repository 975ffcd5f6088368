package splunkclient

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func TestCircuitBreakerTripsAfterConsecutiveFailures(t *testing.T) {
	clock := clockwork.NewFakeClock()
	b := NewCircuitBreaker(clock)

	for i := 0; i < circuitFailureThreshold-1; i++ {
		require.NoError(t, b.Allow())
		b.RecordFailure()
		require.Equal(t, "closed", b.State())
	}

	require.NoError(t, b.Allow())
	b.RecordFailure()
	require.Equal(t, "open", b.State())
}

func TestCircuitBreakerRejectsWhileOpen(t *testing.T) {
	clock := clockwork.NewFakeClock()
	b := NewCircuitBreaker(clock)
	for i := 0; i < circuitFailureThreshold; i++ {
		b.RecordFailure()
	}
	require.Equal(t, "open", b.State())

	err := b.Allow()
	require.Error(t, err)
}

func TestCircuitBreakerHalfOpensAfterWindow(t *testing.T) {
	clock := clockwork.NewFakeClock()
	b := NewCircuitBreaker(clock)
	for i := 0; i < circuitFailureThreshold; i++ {
		b.RecordFailure()
	}
	require.Equal(t, "open", b.State())

	clock.Advance(circuitOpenWindow + time.Second)
	require.NoError(t, b.Allow())
	require.Equal(t, "half-open", b.State())
}

func TestCircuitBreakerClosesAfterHalfOpenSuccesses(t *testing.T) {
	clock := clockwork.NewFakeClock()
	b := NewCircuitBreaker(clock)
	for i := 0; i < circuitFailureThreshold; i++ {
		b.RecordFailure()
	}
	clock.Advance(circuitOpenWindow + time.Second)
	require.NoError(t, b.Allow())

	for i := 0; i < circuitHalfOpenSuccesses; i++ {
		b.RecordSuccess()
	}
	require.Equal(t, "closed", b.State())
}

func TestCircuitBreakerReopensOnHalfOpenFailureWithDoubledWindow(t *testing.T) {
	clock := clockwork.NewFakeClock()
	b := NewCircuitBreaker(clock)
	for i := 0; i < circuitFailureThreshold; i++ {
		b.RecordFailure()
	}
	clock.Advance(circuitOpenWindow + time.Second)
	require.NoError(t, b.Allow())
	require.Equal(t, "half-open", b.State())

	b.RecordFailure()
	require.Equal(t, "open", b.State())

	// Original window (30s) has elapsed but the doubled window (60s) has not.
	clock.Advance(circuitOpenWindow + time.Second)
	require.Error(t, b.Allow())
}

func TestRouteBreakersAreIndependentPerRoute(t *testing.T) {
	clock := clockwork.NewFakeClock()
	reg := NewRouteBreakers(clock)

	a := reg.For("/services/data/indexes")
	for i := 0; i < circuitFailureThreshold; i++ {
		a.RecordFailure()
	}
	require.Equal(t, "open", a.State())

	b := reg.For("/services/apps/local")
	require.Equal(t, "closed", b.State())
}
