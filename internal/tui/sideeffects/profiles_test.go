package sideeffects

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitchmultz/splunk-tui/internal/splunkclient"
	"github.com/fitchmultz/splunk-tui/internal/tui/action"
)

func fakeBuilder(client *splunkclient.Client, baseURL string, err error) ClientBuilder {
	return func(ctx context.Context, profileName string) (*splunkclient.Client, string, error) {
		return client, baseURL, err
	}
}

func TestSwitchProfileReportsBaseURLOnSuccess(t *testing.T) {
	msgs := runBatch(t, SwitchProfile(context.Background(), fakeBuilder(nil, "https://prod.example.com", nil), "prod"))
	require.Equal(t, action.Loading{Busy: true}, msgs[0])

	switched, ok := msgs[1].(action.ProfileSwitched)
	require.True(t, ok)
	require.NoError(t, switched.Err)
	require.Equal(t, "prod", switched.Profile)
	require.Equal(t, "https://prod.example.com", switched.BaseURL)
}

func TestSwitchProfileReportsBuildError(t *testing.T) {
	boom := errors.New("bad keyring")
	msgs := runBatch(t, SwitchProfile(context.Background(), fakeBuilder(nil, "", boom), "prod"))
	switched, ok := msgs[1].(action.ProfileSwitched)
	require.True(t, ok)
	require.Equal(t, boom, switched.Err)
}
