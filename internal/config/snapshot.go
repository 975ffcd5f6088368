package config

import (
	"time"

	"github.com/gravitational/trace"
)

// Snapshot is the fully-resolved configuration for one invocation, produced
// by layering defaults, persisted state, the active profile, environment
// variables, and CLI flags on top of each other in that order (spec §4.2).
// It is the value code downstream of config actually consumes; nothing
// downstream re-reads the override chain.
type Snapshot struct {
	Profile Profile

	EarliestTime string
	LatestTime   string
	MaxResults   int

	InternalLogIndex      string
	InternalLogSourcetype string

	AutoRefresh    bool
	SortColumn     string
	SortDescending bool
	Theme          string
}

// Overrides carries the env-var and CLI-flag layers of the chain; both are
// optional so callers that only have one of the two (e.g. a library caller
// with no flags) can still call Resolve.
type Overrides struct {
	Env   EnvOverrides
	Flags FlagOverrides
}

// FlagOverrides mirrors the subset of CLI flags that can override a
// resolved Snapshot field (spec §4.2 step 5, highest precedence).
type FlagOverrides struct {
	ProfileName  *string
	BaseURL      *string
	EarliestTime *string
	LatestTime   *string
	MaxResults   *int
	Timeout      *time.Duration
	MaxRetries   *int
	SkipTLS      *bool
}

// Resolve builds a Snapshot for profileName (or the persisted default
// profile if profileName is empty) by layering state.SearchDefaults,
// the named Profile, env overrides, and flag overrides in increasing
// precedence order.
func Resolve(state *PersistedState, profileName string, overrides Overrides) (*Snapshot, error) {
	name := profileName
	if name == "" {
		if overrides.Env.ProfileName != "" {
			name = overrides.Env.ProfileName
		} else {
			names := state.ProfileNames()
			if len(names) == 0 {
				return nil, trace.BadParameter("no profiles configured; run 'config add-profile' first")
			}
			name = names[0]
		}
	}
	if overrides.Flags.ProfileName != nil && *overrides.Flags.ProfileName != "" {
		name = *overrides.Flags.ProfileName
	}

	profile, ok := state.Profiles[name]
	if !ok {
		return nil, trace.NotFound("profile %q not found", name)
	}
	resolved := *profile

	snap := &Snapshot{
		Profile:               resolved,
		EarliestTime:          state.SearchDefaults.EarliestTime,
		LatestTime:            state.SearchDefaults.LatestTime,
		MaxResults:            state.SearchDefaults.MaxResults,
		InternalLogIndex:      state.InternalLogDefaults.Index,
		InternalLogSourcetype: state.InternalLogDefaults.Sourcetype,
		AutoRefresh:           state.AutoRefresh,
		SortColumn:            state.SortColumn,
		SortDescending:        state.SortDescending,
		Theme:                 state.Theme,
	}

	applyEnvOverrides(snap, overrides.Env)
	applyFlagOverrides(snap, overrides.Flags)

	if err := snap.Profile.CheckAndSetDefaults(); err != nil {
		return nil, trace.Wrap(err, "resolving profile %q", name)
	}
	return snap, nil
}

func applyEnvOverrides(snap *Snapshot, env EnvOverrides) {
	if env.BaseURL != "" {
		snap.Profile.BaseURL = env.BaseURL
	}
	if !env.APIToken.IsZero() {
		snap.Profile.Auth = AuthMaterial{Kind: AuthAPIToken, APIToken: env.APIToken}
	}
	if env.Username != "" && !env.Password.IsZero() {
		snap.Profile.Auth = AuthMaterial{Kind: AuthSessionCreds, Username: env.Username, Password: env.Password}
	}
	if env.SkipTLSVerify != nil {
		snap.Profile.SkipTLSVerify = *env.SkipTLSVerify
	}
	if env.Timeout > 0 {
		snap.Profile.Timeout = env.Timeout
	}
	if env.EarliestTime != "" {
		snap.EarliestTime = env.EarliestTime
	}
	if env.LatestTime != "" {
		snap.LatestTime = env.LatestTime
	}
	if env.MaxResults != nil {
		snap.MaxResults = *env.MaxResults
	}
}

func applyFlagOverrides(snap *Snapshot, flags FlagOverrides) {
	if flags.BaseURL != nil {
		snap.Profile.BaseURL = *flags.BaseURL
	}
	if flags.EarliestTime != nil {
		snap.EarliestTime = *flags.EarliestTime
	}
	if flags.LatestTime != nil {
		snap.LatestTime = *flags.LatestTime
	}
	if flags.MaxResults != nil {
		snap.MaxResults = *flags.MaxResults
	}
	if flags.Timeout != nil {
		snap.Profile.Timeout = *flags.Timeout
	}
	if flags.MaxRetries != nil {
		snap.Profile.MaxRetries = *flags.MaxRetries
	}
	if flags.SkipTLS != nil {
		snap.Profile.SkipTLSVerify = *flags.SkipTLS
	}
}
