// Package secretstore abstracts where Profile secrets actually live: either
// inline in the encrypted config file ("plain", still AES-GCM sealed) or
// delegated to the OS keyring via 99designs/keyring ("keyring"). This
// mirrors the teacher's split between file-based and agent/keyring-based
// credential storage (lib/client/identityfile, lib/client/api_keys).
package secretstore

import (
	"github.com/99designs/keyring"
	"github.com/gravitational/trace"

	"github.com/fitchmultz/splunk-tui/internal/config/encryption"
	"github.com/fitchmultz/splunk-tui/internal/secret"
)

// Store persists and retrieves a single named secret for a profile.
type Store interface {
	Put(profileName, secretName string, value secret.Value) error
	Get(profileName, secretName string) (secret.Value, error)
	Delete(profileName, secretName string) error
}

// PlainStore seals secrets with the shared master key and stores the
// resulting envelope as a plain string value, normally embedded directly in
// the persisted Profile record. Its Put/Get shapes differ from the Store
// interface because the envelope itself, not a Store side-effect, is what
// gets persisted by the caller (into PersistedState, not into a backend).
type PlainStore struct {
	MasterKey []byte
}

func (s PlainStore) Put(_, _ string, value secret.Value) (encryption.Envelope, error) {
	env, err := encryption.Seal(s.MasterKey, []byte(value.Reveal()))
	return env, trace.Wrap(err)
}

func (s PlainStore) Get(envelope encryption.Envelope) (secret.Value, error) {
	plaintext, err := encryption.Open(s.MasterKey, envelope)
	if err != nil {
		return secret.Value{}, trace.Wrap(err)
	}
	return secret.New(string(plaintext)), nil
}

// KeyringStore delegates to the OS keyring, keyed by "<profileName>/<secretName>".
type KeyringStore struct {
	Ring keyring.Keyring
}

func keyringKey(profileName, secretName string) string {
	return profileName + "/" + secretName
}

func (s KeyringStore) Put(profileName, secretName string, value secret.Value) error {
	return trace.Wrap(s.Ring.Set(keyring.Item{
		Key:   keyringKey(profileName, secretName),
		Data:  []byte(value.Reveal()),
		Label: "Splunk TUI: " + profileName + " " + secretName,
	}))
}

func (s KeyringStore) Get(profileName, secretName string) (secret.Value, error) {
	item, err := s.Ring.Get(keyringKey(profileName, secretName))
	if err != nil {
		if err == keyring.ErrKeyNotFound {
			return secret.Value{}, trace.NotFound("no secret stored for %s/%s", profileName, secretName)
		}
		return secret.Value{}, trace.Wrap(err, "reading secret from OS keyring")
	}
	return secret.New(string(item.Data)), nil
}

func (s KeyringStore) Delete(profileName, secretName string) error {
	err := s.Ring.Remove(keyringKey(profileName, secretName))
	if err != nil && err != keyring.ErrKeyNotFound {
		return trace.Wrap(err, "deleting secret from OS keyring")
	}
	return nil
}
