package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fitchmultz/splunk-tui/internal/secret"
)

func TestResolvePicksDefaultProfileWhenNameOmitted(t *testing.T) {
	state := DefaultState()
	state.UpsertProfile(&Profile{
		Name:    "prod",
		BaseURL: "https://prod:8089",
		Auth:    AuthMaterial{Kind: AuthAPIToken, APIToken: secret.New("tok")},
	})

	snap, err := Resolve(state, "", Overrides{})
	require.NoError(t, err)
	require.Equal(t, "prod", snap.Profile.Name)
}

func TestResolveUnknownProfileFails(t *testing.T) {
	state := DefaultState()
	_, err := Resolve(state, "missing", Overrides{})
	require.Error(t, err)
}

func TestResolveNoProfilesFails(t *testing.T) {
	state := DefaultState()
	_, err := Resolve(state, "", Overrides{})
	require.Error(t, err)
}

func TestResolveFlagOverridesWinOverEverything(t *testing.T) {
	state := DefaultState()
	state.SearchDefaults.MaxResults = 1000
	state.UpsertProfile(&Profile{
		Name:    "prod",
		BaseURL: "https://prod:8089",
		Auth:    AuthMaterial{Kind: AuthAPIToken, APIToken: secret.New("tok")},
	})

	newMax := 50
	newTimeout := 5 * time.Second
	snap, err := Resolve(state, "prod", Overrides{
		Flags: FlagOverrides{
			MaxResults: &newMax,
			Timeout:    &newTimeout,
		},
	})
	require.NoError(t, err)
	require.Equal(t, 50, snap.MaxResults)
	require.Equal(t, 5*time.Second, snap.Profile.Timeout)
}

func TestResolveEnvOverridesBaseURL(t *testing.T) {
	state := DefaultState()
	state.UpsertProfile(&Profile{
		Name:    "prod",
		BaseURL: "https://prod:8089",
		Auth:    AuthMaterial{Kind: AuthAPIToken, APIToken: secret.New("tok")},
	})

	snap, err := Resolve(state, "prod", Overrides{
		Env: EnvOverrides{BaseURL: "https://overridden:8089"},
	})
	require.NoError(t, err)
	require.Equal(t, "https://overridden:8089", snap.Profile.BaseURL)
}
