// Command splunk-tui is the interactive terminal client for a Splunk
// Enterprise REST API.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/fitchmultz/splunk-tui/internal/config"
	"github.com/fitchmultz/splunk-tui/internal/config/masterkey"
	"github.com/fitchmultz/splunk-tui/internal/config/secretstore"
	"github.com/fitchmultz/splunk-tui/internal/logging"
	"github.com/fitchmultz/splunk-tui/internal/session"
	"github.com/fitchmultz/splunk-tui/internal/splunkclient"
	"github.com/fitchmultz/splunk-tui/internal/tui"
	"github.com/fitchmultz/splunk-tui/internal/tui/keymap"
	"github.com/fitchmultz/splunk-tui/internal/tui/sideeffects"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := logging.Init(logging.ForTUI, logrus.WarnLevel, ""); err != nil {
		return err
	}

	clock := clockwork.NewRealClock()
	store := config.NewStore(configPath(), clock, logging.For("config"))
	state, err := store.Load()
	if err != nil {
		return err
	}

	env, err := config.LoadEnvOverrides(nil)
	if err != nil {
		return err
	}
	overrides := config.Overrides{Env: env}

	builder := func(ctx context.Context, profileName string) (*splunkclient.Client, string, error) {
		snap, err := config.Resolve(state, profileName, overrides)
		if err != nil {
			return nil, "", err
		}
		secrets := secretsForSnapshot(snap)
		client, err := session.NewClient(snap, secrets, clock, logging.For("splunkclient"))
		if err != nil {
			return nil, "", err
		}
		return client, snap.Profile.BaseURL, nil
	}

	startSnap, err := config.Resolve(state, "", overrides)
	if err != nil {
		return err
	}
	startClient, startBaseURL, err := builder(context.Background(), startSnap.Profile.Name)
	if err != nil {
		return err
	}

	catalog := state.ProfileNames()
	app := tui.NewApp(startSnap.Profile.Name, startBaseURL, catalog, keymap.Default())
	catalogSet := make(map[string]bool, len(catalog))
	for _, name := range catalog {
		catalogSet[name] = true
	}

	program := tui.NewProgram(app, startClient, sideeffects.ClientBuilder(builder), catalogSet)

	teaProgram := tea.NewProgram(program, tea.WithAltScreen())
	program.BindSender(teaProgram)

	_, err = teaProgram.Run()
	return err
}

func configPath() string {
	if v, ok := os.LookupEnv(config.EnvConfigPath); ok && v != "" {
		return v
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "splunk-tui", "config.json")
}

func secretsForSnapshot(snap *config.Snapshot) session.Secrets {
	if snap.Profile.Auth.Keyring == nil {
		return session.NoopSecrets{}
	}
	ring, err := masterkey.OpenKeyring()
	if err != nil {
		return session.NoopSecrets{}
	}
	return session.FromKeyringStore(secretstore.KeyringStore{Ring: ring})
}
