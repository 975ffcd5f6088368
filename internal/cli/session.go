package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/99designs/keyring"
	"github.com/jonboulle/clockwork"

	"github.com/fitchmultz/splunk-tui/internal/config"
	"github.com/fitchmultz/splunk-tui/internal/config/masterkey"
	"github.com/fitchmultz/splunk-tui/internal/config/secretstore"
	"github.com/fitchmultz/splunk-tui/internal/logging"
	"github.com/fitchmultz/splunk-tui/internal/secret"
	"github.com/fitchmultz/splunk-tui/internal/session"
	"github.com/fitchmultz/splunk-tui/internal/splunkclient"
)

// GlobalFlags holds the flags shared by every subcommand (spec.md §4.6).
type GlobalFlags struct {
	BaseURL     string
	Username    string
	Password    string
	APIToken    string
	SkipVerify  bool
	ProfileName string
	Output      string
	OutputFile  string
	ConfigPath  string
	LogDir      string
	Debug       bool
}

// Session lazily resolves the persisted state, the active Snapshot, and
// the REST client for the selected profile, so every command shares one
// construction path instead of repeating the load/resolve/build dance.
type Session struct {
	Flags *GlobalFlags
	Clock clockwork.Clock

	state *config.PersistedState
	ring  keyring.Keyring
}

// NewSession constructs a Session bound to flags. Nothing touches disk or
// the OS keyring until State or Client is called.
func NewSession(flags *GlobalFlags) *Session {
	return &Session{Flags: flags, Clock: clockwork.NewRealClock()}
}

func (s *Session) configPath() string {
	if s.Flags.ConfigPath != "" {
		return s.Flags.ConfigPath
	}
	if v, ok := os.LookupEnv(config.EnvConfigPath); ok && v != "" {
		return v
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "splunk-tui", "config.json")
}

// State loads (and caches) the persisted profile catalog.
func (s *Session) State() (*config.PersistedState, error) {
	if s.state != nil {
		return s.state, nil
	}
	store := config.NewStore(s.configPath(), s.Clock, logging.For("config"))
	state, err := store.Load()
	if err != nil {
		return nil, err
	}
	s.state = state
	return state, nil
}

// keyring lazily opens the OS keyring backend, only when a profile
// actually references one, since opening it may prompt interactively.
func (s *Session) keyring() (keyring.Keyring, error) {
	if s.ring != nil {
		return s.ring, nil
	}
	ring, err := masterkey.OpenKeyring()
	if err != nil {
		return nil, err
	}
	s.ring = ring
	return ring, nil
}

// overrides folds the global connection flags into the env tier of the
// override chain: --base-url/--username/--password/--api-token/
// --skip-verify sit at the same precedence env vars already occupy, ahead
// of the persisted profile and below nothing higher (there is no separate
// "CLI flag" auth tier in config.FlagOverrides, since the original design
// only models auth material living in the persisted Profile or keyring).
func (s *Session) overrides() config.Overrides {
	env, _ := config.LoadEnvOverrides(nil)
	if s.Flags.BaseURL != "" {
		env.BaseURL = s.Flags.BaseURL
	}
	if s.Flags.Username != "" {
		env.Username = s.Flags.Username
	}
	if s.Flags.Password != "" {
		env.Password = secret.New(s.Flags.Password)
	}
	if s.Flags.APIToken != "" {
		env.APIToken = secret.New(s.Flags.APIToken)
	}
	if s.Flags.SkipVerify {
		skip := true
		env.SkipTLSVerify = &skip
	}

	var flagOverrides config.FlagOverrides
	if s.Flags.ProfileName != "" {
		flagOverrides.ProfileName = &s.Flags.ProfileName
	}
	return config.Overrides{Env: env, Flags: flagOverrides}
}

// Snapshot resolves the active Snapshot without building a client, for
// commands (doctor, config show) that need profile details but not a live
// connection.
func (s *Session) Snapshot() (*config.Snapshot, error) {
	state, err := s.State()
	if err != nil {
		return nil, err
	}
	return config.Resolve(state, s.Flags.ProfileName, s.overrides())
}

// Client resolves the Snapshot and builds the REST client for it,
// resolving keyring-backed secrets on demand.
func (s *Session) Client(ctx context.Context) (*splunkclient.Client, *config.Snapshot, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, nil, err
	}

	var secrets session.Secrets = session.NoopSecrets{}
	if snap.Profile.Auth.Keyring != nil {
		ring, err := s.keyring()
		if err != nil {
			return nil, nil, err
		}
		secrets = session.FromKeyringStore(secretstore.KeyringStore{Ring: ring})
	}

	client, err := session.NewClient(snap, secrets, s.Clock, logging.For("splunkclient"))
	if err != nil {
		return nil, nil, err
	}
	return client, snap, nil
}

// ClientBuilder adapts the Session into the shape internal/aggregate and
// internal/tui/sideeffects both want: a named-profile-to-client factory,
// for the list-all command to share with the TUI's multi-instance screen.
func (s *Session) ClientBuilder() func(context.Context, string) (*splunkclient.Client, string, error) {
	return func(ctx context.Context, profileName string) (*splunkclient.Client, string, error) {
		scoped := *s
		scoped.Flags = &GlobalFlags{}
		*scoped.Flags = *s.Flags
		scoped.Flags.ProfileName = profileName
		scoped.state = s.state
		client, snap, err := scoped.Client(ctx)
		if err != nil {
			return nil, "", err
		}
		return client, snap.Profile.BaseURL, nil
	}
}
