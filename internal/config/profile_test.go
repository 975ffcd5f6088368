package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitchmultz/splunk-tui/internal/secret"
)

func TestAuthMaterialValidate(t *testing.T) {
	cases := []struct {
		name    string
		auth    AuthMaterial
		wantErr bool
	}{
		{
			name:    "api token ok",
			auth:    AuthMaterial{Kind: AuthAPIToken, APIToken: secret.New("tok")},
			wantErr: false,
		},
		{
			name:    "api token via keyring ok",
			auth:    AuthMaterial{Kind: AuthAPIToken, Keyring: &KeyringRef{Service: "s", Account: "a"}},
			wantErr: false,
		},
		{
			name:    "api token missing both",
			auth:    AuthMaterial{Kind: AuthAPIToken},
			wantErr: true,
		},
		{
			name:    "session creds ok",
			auth:    AuthMaterial{Kind: AuthSessionCreds, Username: "bob", Password: secret.New("pw")},
			wantErr: false,
		},
		{
			name:    "session creds missing username",
			auth:    AuthMaterial{Kind: AuthSessionCreds, Password: secret.New("pw")},
			wantErr: true,
		},
		{
			name:    "unknown kind",
			auth:    AuthMaterial{},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.auth.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestProfileCheckAndSetDefaults(t *testing.T) {
	p := &Profile{
		Name:    "prod",
		BaseURL: "https://splunk.example.com:8089",
		Auth:    AuthMaterial{Kind: AuthAPIToken, APIToken: secret.New("tok")},
	}
	require.NoError(t, p.CheckAndSetDefaults())
	require.Equal(t, DefaultTimeout, p.Timeout)
	require.Equal(t, DefaultMaxRetries, p.MaxRetries)
	require.Equal(t, DefaultSessionTTL, p.SessionTTL)
}

func TestProfileCheckAndSetDefaultsRequiresName(t *testing.T) {
	p := &Profile{BaseURL: "https://x"}
	require.Error(t, p.CheckAndSetDefaults())
}

func TestProfileStringNeverLeaksSecret(t *testing.T) {
	p := Profile{
		Name:    "prod",
		BaseURL: "https://splunk.example.com:8089",
		Auth:    AuthMaterial{Kind: AuthSessionCreds, Username: "bob", Password: secret.New("hunter2")},
	}
	require.NotContains(t, p.String(), "hunter2")
	require.Contains(t, p.String(), "REDACTED")
}
