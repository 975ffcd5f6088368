// Package session builds a splunkclient.Client from a resolved
// config.Snapshot, resolving keyring-backed secrets as needed. Both
// internal/cli and internal/tui share this construction path so profile
// resolution and client wiring never drift between the two front ends.
package session

import (
	"github.com/gravitational/trace"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/fitchmultz/splunk-tui/internal/config"
	"github.com/fitchmultz/splunk-tui/internal/config/secretstore"
	"github.com/fitchmultz/splunk-tui/internal/secret"
	"github.com/fitchmultz/splunk-tui/internal/splunkclient"
)

// Secrets resolves a Profile's keyring-backed secret, when it has one.
// Tests substitute a fake; production wires secretstore.KeyringStore.
type Secrets interface {
	Get(profileName, secretName string) (secret.Value, error)
}

// NewClient builds a *splunkclient.Client for snap.Profile, resolving the
// auth material (inline secret or keyring reference) into a concrete
// splunkclient.AuthStrategy.
func NewClient(snap *config.Snapshot, secrets Secrets, clock clockwork.Clock, log *logrus.Entry) (*splunkclient.Client, error) {
	auth, err := resolveAuth(snap.Profile, secrets, clock)
	if err != nil {
		return nil, trace.Wrap(err)
	}

	client, err := splunkclient.New(splunkclient.Config{
		BaseURL:       snap.Profile.BaseURL,
		Auth:          auth,
		SkipTLSVerify: snap.Profile.SkipTLSVerify,
		Timeout:       snap.Profile.Timeout,
		MaxRetries:    snap.Profile.MaxRetries,
		Clock:         clock,
		Log:           log,
	})
	if err != nil {
		return nil, trace.Wrap(err)
	}
	return client, nil
}

func resolveAuth(p config.Profile, secrets Secrets, clock clockwork.Clock) (splunkclient.AuthStrategy, error) {
	switch p.Auth.Kind {
	case config.AuthAPIToken:
		token := p.Auth.APIToken
		if p.Auth.Keyring != nil {
			resolved, err := secrets.Get(p.Name, "api_token")
			if err != nil {
				return nil, trace.Wrap(err, "resolving api token from keyring for profile %q", p.Name)
			}
			token = resolved
		}
		return splunkclient.APITokenAuth{Token: token}, nil

	case config.AuthSessionCreds:
		password := p.Auth.Password
		if p.Auth.Keyring != nil {
			resolved, err := secrets.Get(p.Name, "password")
			if err != nil {
				return nil, trace.Wrap(err, "resolving password from keyring for profile %q", p.Name)
			}
			password = resolved
		}
		return &splunkclient.SessionAuth{
			BaseURL:  p.BaseURL,
			Username: p.Auth.Username,
			Password: password,
			TTL:      p.SessionTTL,
			Buffer:   p.SessionExpiryBuffer,
			Clock:    clock,
		}, nil

	default:
		return nil, trace.BadParameter("profile %q has no usable auth material", p.Name)
	}
}

// NoopSecrets is a Secrets implementation for profiles that never reference
// a keyring, so callers that know they won't need one (tests, offline
// tooling) don't have to construct a real secretstore.KeyringStore.
type NoopSecrets struct{}

func (NoopSecrets) Get(profileName, secretName string) (secret.Value, error) {
	return secret.Value{}, trace.BadParameter("no keyring configured; profile %q requires one", profileName)
}

var _ Secrets = NoopSecrets{}
var _ Secrets = secretAdapter{}

// secretAdapter adapts secretstore.KeyringStore (3-arg Get) to the 2-arg
// Secrets interface this package exposes to client construction code.
type secretAdapter struct {
	store secretstore.KeyringStore
}

func (a secretAdapter) Get(profileName, secretName string) (secret.Value, error) {
	return a.store.Get(profileName, secretName)
}

// FromKeyringStore adapts a secretstore.KeyringStore into Secrets.
func FromKeyringStore(store secretstore.KeyringStore) Secrets {
	return secretAdapter{store: store}
}
