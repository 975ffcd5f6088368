package sideeffects

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/fitchmultz/splunk-tui/internal/config"
	"github.com/fitchmultz/splunk-tui/internal/session"
	"github.com/fitchmultz/splunk-tui/internal/splunkclient"
	"github.com/fitchmultz/splunk-tui/internal/tui/action"
)

// ClientBuilder resolves a named profile to a usable client, the same
// ClientFactory shape internal/aggregate uses, so the multi-instance screen
// and single-profile switching share one construction path.
type ClientBuilder func(ctx context.Context, profileName string) (*splunkclient.Client, string, error)

// NewClientBuilder adapts session.NewClient into a ClientBuilder bound to
// a PersistedState, for wiring into both SwitchProfile and the
// multi-instance aggregator.
func NewClientBuilder(state *config.PersistedState, secrets session.Secrets, clock clockwork.Clock) ClientBuilder {
	return func(ctx context.Context, profileName string) (*splunkclient.Client, string, error) {
		snap, err := config.Resolve(state, profileName, config.Overrides{})
		if err != nil {
			return nil, "", err
		}
		client, err := session.NewClient(snap, secrets, clock, nil)
		if err != nil {
			return nil, "", err
		}
		return client, snap.Profile.BaseURL, nil
	}
}

// SwitchProfile rebuilds the client for the newly selected profile. On
// success the caller (program.go) swaps its active *splunkclient.Client and
// the reducer clears every cached screen via ClearAllData so stale data
// from the old profile never leaks into the new one's view.
func SwitchProfile(ctx context.Context, build ClientBuilder, profileName string) tea.Cmd {
	return tea.Batch(LoadingCmd(), func() tea.Msg {
		_, baseURL, err := build(ctx, profileName)
		if err != nil {
			return action.ProfileSwitched{Profile: profileName, Err: err}
		}
		return action.ProfileSwitched{Profile: profileName, BaseURL: baseURL}
	})
}
