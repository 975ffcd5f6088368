// Package secret wraps sensitive byte material so that it cannot be leaked
// through fmt verbs, logging, or accidental JSON encoding.
package secret

import "encoding/json"

const redacted = "***REDACTED***"

// Value holds a secret string. Its zero value is an empty secret.
//
// Value never exposes the wrapped bytes through String, GoString, or JSON
// marshaling; Reveal is the only accessor, and callers must use it
// deliberately.
type Value struct {
	raw string
}

// New wraps s as a Value.
func New(s string) Value {
	return Value{raw: s}
}

// Reveal returns the wrapped secret. This is the single explicit escape
// hatch; never call it for logging, error messages, or debug output.
func (v Value) Reveal() string {
	return v.raw
}

// IsZero reports whether the secret is empty.
func (v Value) IsZero() bool {
	return v.raw == ""
}

// String implements fmt.Stringer with the redacted form.
func (v Value) String() string {
	return redacted
}

// GoString implements fmt.GoStringer with the redacted form, so %#v also
// cannot leak the secret.
func (v Value) GoString() string {
	return redacted
}

// MarshalJSON always encodes the redacted form.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(redacted)
}

// UnmarshalJSON accepts a plain JSON string as the raw secret. Splunk-tui
// never serializes a live secret to disk in cleartext JSON (see
// internal/config/encryption), but the type must round-trip through the
// decoder used for the handful of places a raw value is read directly (test
// fixtures, env var decoding helpers).
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v.raw = s
	return nil
}
