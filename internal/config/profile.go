// Package config implements the multi-profile catalog, the layered
// override chain, and the encrypted-at-rest persisted state described in
// spec §4.2. It is grounded on the Config/CheckAndSetDefaults shape used
// throughout the teacher (lib/teleterm/daemon.Config, lib/client.Config).
package config

import (
	"time"

	"github.com/gravitational/trace"

	"github.com/fitchmultz/splunk-tui/internal/secret"
)

// Default values for the override chain's first rung (spec §4.2).
const (
	DefaultTimeout           = 30 * time.Second
	DefaultMaxRetries        = 3
	DefaultSessionTTL        = 3600 * time.Second
	DefaultSessionTTLBuffer  = 60 * time.Second
	DefaultHealthInterval    = 60 * time.Second
	DefaultEarliestTime      = "-24h"
	DefaultLatestTime        = "now"
	DefaultMaxResults        = 1000
)

// AuthKind discriminates the AuthMaterial variant.
type AuthKind int

const (
	AuthUnknown AuthKind = iota
	AuthAPIToken
	AuthSessionCreds
)

// AuthMaterial is exactly one of {api_token, (username, password)}, each
// wrapped so secrets never print in the clear (spec §3 invariant).
type AuthMaterial struct {
	Kind     AuthKind
	APIToken secret.Value

	Username string
	Password secret.Value

	// Keyring, when non-nil, means the real secret (token or password) must
	// be resolved at use time from the OS keyring rather than stored inline.
	Keyring *KeyringRef
}

// KeyringRef names where in the OS keyring a secret lives.
type KeyringRef struct {
	Service string `json:"service"`
	Account string `json:"account"`
}

// Validate enforces the "exactly one of" invariant from spec §3.
func (a AuthMaterial) Validate() error {
	switch a.Kind {
	case AuthAPIToken:
		if a.APIToken.IsZero() && a.Keyring == nil {
			return trace.BadParameter("api token auth requires a token or keyring reference")
		}
	case AuthSessionCreds:
		if a.Username == "" {
			return trace.BadParameter("session auth requires a username")
		}
		if a.Password.IsZero() && a.Keyring == nil {
			return trace.BadParameter("session auth requires a password or keyring reference")
		}
	default:
		return trace.BadParameter("auth material must be api_token or username+password")
	}
	return nil
}

// Profile is a named connection record (spec §3).
type Profile struct {
	Name                string        `json:"name"`
	BaseURL             string        `json:"base_url"`
	Auth                AuthMaterial  `json:"-"`
	SkipTLSVerify       bool          `json:"skip_tls_verify"`
	Timeout             time.Duration `json:"timeout"`
	MaxRetries          int           `json:"max_retries"`
	SessionTTL          time.Duration `json:"session_ttl"`
	SessionExpiryBuffer time.Duration `json:"session_expiry_buffer"`
	HealthCheckInterval time.Duration `json:"health_check_interval"`
}

// CheckAndSetDefaults fills in zero-valued timing fields with the defaults
// from spec §4.2 step 1 and validates the auth invariant.
func (p *Profile) CheckAndSetDefaults() error {
	if p.Name == "" {
		return trace.BadParameter("profile name is required")
	}
	if p.BaseURL == "" {
		return trace.BadParameter("profile %q: base_url is required", p.Name)
	}
	if p.Timeout <= 0 {
		p.Timeout = DefaultTimeout
	}
	if p.MaxRetries <= 0 {
		p.MaxRetries = DefaultMaxRetries
	}
	if p.SessionTTL <= 0 {
		p.SessionTTL = DefaultSessionTTL
	}
	if p.SessionExpiryBuffer <= 0 {
		p.SessionExpiryBuffer = DefaultSessionTTLBuffer
	}
	if p.HealthCheckInterval <= 0 {
		p.HealthCheckInterval = DefaultHealthInterval
	}
	return trace.Wrap(p.Auth.Validate())
}

// String implements fmt.Stringer without ever emitting the raw secret,
// satisfying the secret-redaction invariant (spec §8.1) at the Profile
// level, not just the AuthMaterial level.
func (p Profile) String() string {
	authDesc := "none"
	switch p.Auth.Kind {
	case AuthAPIToken:
		authDesc = "api_token=***REDACTED***"
	case AuthSessionCreds:
		authDesc = p.Auth.Username + ":***REDACTED***"
	}
	return "Profile{" + p.Name + " " + p.BaseURL + " auth=" + authDesc + "}"
}
