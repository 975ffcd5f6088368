package splunkclient

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/fitchmultz/splunk-tui/internal/splunkerr"
)

// circuitState is the breaker's three-state machine (spec §4.1c). It is
// grounded on the teacher's style of small exported enums with a String
// method (api/types role/app enums), combined with clockwork for
// deterministic time control in tests rather than a generation counter
// scheme: the spec's explicit "Open(until=now+30s)" wording maps directly
// onto a stored deadline, which is simpler to test than a bare counter.
type circuitState int

const (
	circuitClosed circuitState = iota
	circuitOpen
	circuitHalfOpen
)

const (
	circuitFailureThreshold   = 5
	circuitOpenWindow         = 30 * time.Second
	circuitHalfOpenSuccesses  = 2
	circuitMaxOpenWindow      = 5 * time.Minute
)

// CircuitBreaker guards a single route template (spec §4.1c), shared across
// concurrent callers via an exclusive short-critical-section mutex.
type CircuitBreaker struct {
	clock clockwork.Clock

	mu                 sync.Mutex
	state              circuitState
	consecutiveFails   int
	halfOpenSuccesses  int
	openUntil          time.Time
	currentOpenWindow  time.Duration
}

// NewCircuitBreaker constructs a breaker for one route template.
func NewCircuitBreaker(clock clockwork.Clock) *CircuitBreaker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CircuitBreaker{clock: clock, currentOpenWindow: circuitOpenWindow}
}

// Allow reports whether a new request may proceed, transitioning
// Open→HalfOpen if the open window has elapsed.
func (b *CircuitBreaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case circuitOpen:
		if !b.clock.Now().Before(b.openUntil) {
			b.state = circuitHalfOpen
			b.halfOpenSuccesses = 0
			return nil
		}
		return splunkerr.Newf(splunkerr.KindCircuitOpen, "circuit breaker open until %s", b.openUntil.Format(time.RFC3339))
	default:
		return nil
	}
}

// RecordSuccess reports a successful call, resetting Closed's failure
// counter or advancing HalfOpen toward Closed.
func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case circuitHalfOpen:
		b.halfOpenSuccesses++
		if b.halfOpenSuccesses >= circuitHalfOpenSuccesses {
			b.state = circuitClosed
			b.consecutiveFails = 0
			b.currentOpenWindow = circuitOpenWindow
		}
	default:
		b.consecutiveFails = 0
	}
}

// RecordFailure reports a failed call. In Closed, it may trip the breaker
// open; in HalfOpen, any failure re-opens it with a doubled window capped
// at 5 minutes.
func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case circuitHalfOpen:
		b.trip()
	default:
		b.consecutiveFails++
		if b.consecutiveFails >= circuitFailureThreshold {
			b.currentOpenWindow = circuitOpenWindow
			b.trip()
		}
	}
}

// trip transitions into Open, doubling the open window on repeated trips
// from HalfOpen (spec §4.1c), capped at 5 minutes. Caller must hold b.mu.
func (b *CircuitBreaker) trip() {
	b.state = circuitOpen
	b.openUntil = b.clock.Now().Add(b.currentOpenWindow)
	b.currentOpenWindow *= 2
	if b.currentOpenWindow > circuitMaxOpenWindow {
		b.currentOpenWindow = circuitMaxOpenWindow
	}
}

// State reports the current state for diagnostics/tests.
func (b *CircuitBreaker) State() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch b.state {
	case circuitOpen:
		return "open"
	case circuitHalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}

// RouteBreakers keys a CircuitBreaker per normalized route template (spec
// §4.1c, §4.1d route normalization), created lazily.
type RouteBreakers struct {
	clock clockwork.Clock

	mu       sync.Mutex
	breakers map[string]*CircuitBreaker
}

// NewRouteBreakers constructs a registry of per-route breakers sharing one
// clock, so tests can advance time uniformly across all routes.
func NewRouteBreakers(clock clockwork.Clock) *RouteBreakers {
	return &RouteBreakers{clock: clock, breakers: map[string]*CircuitBreaker{}}
}

// For returns (creating if necessary) the breaker for a normalized route.
func (r *RouteBreakers) For(route string) *CircuitBreaker {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.breakers[route]
	if !ok {
		b = NewCircuitBreaker(r.clock)
		r.breakers[route] = b
	}
	return b
}
