package session

import (
	"testing"
	"time"

	"github.com/gravitational/trace"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/fitchmultz/splunk-tui/internal/config"
	"github.com/fitchmultz/splunk-tui/internal/secret"
	"github.com/fitchmultz/splunk-tui/internal/splunkclient"
)

type fakeSecrets map[string]secret.Value

func (f fakeSecrets) Get(profileName, secretName string) (secret.Value, error) {
	v, ok := f[profileName+"/"+secretName]
	if !ok {
		return secret.Value{}, trace.NotFound("no secret stored for %s/%s", profileName, secretName)
	}
	return v, nil
}

func TestNewClientWithInlineAPIToken(t *testing.T) {
	snap := &config.Snapshot{Profile: config.Profile{
		Name:       "prod",
		BaseURL:    "https://splunk.example.com:8089",
		Auth:       config.AuthMaterial{Kind: config.AuthAPIToken, APIToken: secret.New("tok")},
		Timeout:    30 * time.Second,
		MaxRetries: 3,
	}}

	client, err := NewClient(snap, NoopSecrets{}, clockwork.NewFakeClock(), nil)
	require.NoError(t, err)
	require.NotNil(t, client)
}

func TestNewClientResolvesAPITokenFromKeyring(t *testing.T) {
	snap := &config.Snapshot{Profile: config.Profile{
		Name:    "prod",
		BaseURL: "https://splunk.example.com:8089",
		Auth: config.AuthMaterial{
			Kind:    config.AuthAPIToken,
			Keyring: &config.KeyringRef{Service: "splunk-tui", Account: "prod"},
		},
		Timeout:    30 * time.Second,
		MaxRetries: 3,
	}}

	secrets := fakeSecrets{"prod/api_token": secret.New("from-keyring")}
	client, err := NewClient(snap, secrets, clockwork.NewFakeClock(), nil)
	require.NoError(t, err)
	require.NotNil(t, client)
}

func TestNewClientSessionAuthBuildsSessionStrategy(t *testing.T) {
	snap := &config.Snapshot{Profile: config.Profile{
		Name:    "prod",
		BaseURL: "https://splunk.example.com:8089",
		Auth: config.AuthMaterial{
			Kind:     config.AuthSessionCreds,
			Username: "admin",
			Password: secret.New("changeme"),
		},
		Timeout:             30 * time.Second,
		MaxRetries:          3,
		SessionTTL:          time.Hour,
		SessionExpiryBuffer: time.Minute,
	}}

	client, err := NewClient(snap, NoopSecrets{}, clockwork.NewFakeClock(), nil)
	require.NoError(t, err)
	require.NotNil(t, client)
}

func TestNewClientUnknownAuthKindFails(t *testing.T) {
	snap := &config.Snapshot{Profile: config.Profile{
		Name:    "prod",
		BaseURL: "https://splunk.example.com:8089",
	}}

	_, err := NewClient(snap, NoopSecrets{}, clockwork.NewFakeClock(), nil)
	require.Error(t, err)
}

func TestNoopSecretsAlwaysFails(t *testing.T) {
	_, err := NoopSecrets{}.Get("prod", "api_token")
	require.Error(t, err)
}

var _ splunkclient.AuthStrategy = (*splunkclient.SessionAuth)(nil)
