// Package splunkerr defines the closed error taxonomy shared by the REST
// client, config/secrets subsystem, CLI, and TUI. Every error that crosses a
// package boundary is wrapped with github.com/gravitational/trace so stack
// context survives, and tagged with a Kind so higher layers can make
// exhaustive decisions (retry eligibility, CLI exit code, TUI toast) without
// string-matching error text.
package splunkerr

import (
	"errors"
	"fmt"

	"github.com/gravitational/trace"
)

// Kind enumerates the error taxonomy from the system's error-handling design.
type Kind int

const (
	// KindUnknown is never intentionally constructed; its presence on an
	// error means a call site forgot to classify it.
	KindUnknown Kind = iota
	KindInvalidURL
	KindInvalidRequest
	KindTransport
	KindTimeout
	KindTLS
	KindAuthFailed
	KindAPIError
	KindNotFound
	KindForbidden
	KindRateLimited
	KindServiceUnavailable
	KindInvalidResponse
	KindCircuitOpen
	KindCancelled
	KindKeyringError
	KindEncryptionError
)

func (k Kind) String() string {
	switch k {
	case KindInvalidURL:
		return "invalid_url"
	case KindInvalidRequest:
		return "invalid_request"
	case KindTransport:
		return "transport"
	case KindTimeout:
		return "timeout"
	case KindTLS:
		return "tls"
	case KindAuthFailed:
		return "auth_failed"
	case KindAPIError:
		return "api_error"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindRateLimited:
		return "rate_limited"
	case KindServiceUnavailable:
		return "service_unavailable"
	case KindInvalidResponse:
		return "invalid_response"
	case KindCircuitOpen:
		return "circuit_open"
	case KindCancelled:
		return "cancelled"
	case KindKeyringError:
		return "keyring_error"
	case KindEncryptionError:
		return "encryption_error"
	default:
		return "unknown"
	}
}

// Retryable reports whether a request that failed with this Kind should be
// retried by the REST client's retry loop (spec §4.1b). Non-retryable kinds
// include 401 after the single re-login attempt has already happened.
func (k Kind) Retryable() bool {
	switch k {
	case KindTransport, KindTimeout, KindRateLimited, KindServiceUnavailable:
		return true
	case KindAPIError:
		// Callers must use Error.Status to decide on 408/429/502/503/504; a bare
		// KindAPIError with no status context defaults to non-retryable.
		return false
	default:
		return false
	}
}

// ExitCode maps Kind to the CLI exit-code taxonomy (spec §4.6).
func (k Kind) ExitCode() int {
	switch k {
	case KindAuthFailed:
		return 2
	case KindTransport:
		return 3
	case KindNotFound:
		return 4
	case KindForbidden:
		return 6
	case KindRateLimited:
		return 7
	case KindServiceUnavailable:
		return 8
	case KindCancelled:
		return 130
	default:
		return 1
	}
}

// Error is a taxonomized error. It implements the trace.Error contract
// (Unwrap, so errors.As/errors.Is and trace.Unwrap all work) by embedding a
// trace-wrapped cause rather than reimplementing stack capture.
type Error struct {
	kind       Kind
	cause      error
	Status     int    // HTTP status, 0 if not applicable
	URL        string // request URL, if applicable
	RequestID  string // Splunk's X-Request-Id, if present
	RetryAfter int    // seconds, for RateLimited
}

// New wraps err with the given Kind, capturing a trace stack frame at the
// call site.
func New(kind Kind, err error) *Error {
	return &Error{kind: kind, cause: trace.Wrap(err)}
}

// Newf constructs a new Kind-tagged error from a format string, grounded the
// same way tool/tctl/common/tctl.go wraps context onto trace errors.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{kind: kind, cause: trace.Errorf(format, args...)}
}

// Wrap attaches additional context to err while preserving its Kind (or
// KindUnknown if err is not already a *Error). Mirrors the
// `with_context(|| format!(...))` pattern from the original Rust client.
func Wrap(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	if se, ok := As(err); ok {
		wrapped := *se
		wrapped.cause = trace.Wrap(se.cause, msg)
		return &wrapped
	}
	return &Error{kind: KindUnknown, cause: trace.Wrap(err, msg)}
}

func (e *Error) Error() string {
	return e.cause.Error()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the error's taxonomy tag.
func (e *Error) Kind() Kind {
	return e.kind
}

// ExitCode implements the CLI exit-code mapping for this error directly.
func (e *Error) ExitCode() int {
	return e.kind.ExitCode()
}

// Retryable reports whether the retry loop should attempt this call again
// (spec §4.1b). For KindAPIError it refines the coarse Kind.Retryable
// verdict using the captured HTTP status: 408, 429, 502, 503 and 504 are
// retryable; every other status (including 500, 501 and 505) is not.
func (e *Error) Retryable() bool {
	if e.kind == KindAPIError {
		switch e.Status {
		case 408, 429, 502, 503, 504:
			return true
		default:
			return false
		}
	}
	return e.kind.Retryable()
}

// As extracts the *Error from a generic error chain, the way CLI/TUI call
// sites turn a wrapped trace error back into taxonomy-aware handling.
func As(err error) (*Error, bool) {
	for err != nil {
		if se, ok := err.(*Error); ok {
			return se, true
		}
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			break
		}
		err = unwrapped
	}
	return nil, false
}

// KindOf is a convenience for call sites that only need the Kind and can
// tolerate KindUnknown for un-taxonomized errors.
func KindOf(err error) Kind {
	if se, ok := As(err); ok {
		return se.kind
	}
	return KindUnknown
}
