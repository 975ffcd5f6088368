package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/gravitational/kingpin"
	"github.com/gravitational/trace"

	"github.com/fitchmultz/splunk-tui/internal/config"
	"github.com/fitchmultz/splunk-tui/internal/secret"
)

// configCommand groups `config add-profile|list-profiles|remove-profile|
// set-default`, the only path to bootstrap a named profile config.Resolve
// can then layer overrides on top of (config.Resolve returns NotFound for
// any profile name not already present in persisted state).
type configCommand struct {
	addProfile, listProfiles, removeProfile, setDefault *kingpin.CmdClause

	name       string
	baseURL    string
	username   string
	password   string
	apiToken   string
	skipVerify bool
}

func newConfigCommand() Command { return &configCommand{} }

func (c *configCommand) Initialize(app *kingpin.Application) {
	group := app.Command("config", "Manage persisted connection profiles")

	c.addProfile = group.Command("add-profile", "Create or replace a named profile")
	c.addProfile.Arg("name", "profile name").Required().StringVar(&c.name)
	c.addProfile.Flag("base-url", "Splunk management base URL").Required().StringVar(&c.baseURL)
	c.addProfile.Flag("username", "session-auth username").StringVar(&c.username)
	c.addProfile.Flag("password", "session-auth password").StringVar(&c.password)
	c.addProfile.Flag("api-token", "API token").StringVar(&c.apiToken)
	c.addProfile.Flag("skip-verify", "skip TLS certificate verification").BoolVar(&c.skipVerify)

	c.listProfiles = group.Command("list-profiles", "List persisted profile names").Default()

	c.removeProfile = group.Command("remove-profile", "Delete a persisted profile")
	c.removeProfile.Arg("name", "profile name").Required().StringVar(&c.name)

	c.setDefault = group.Command("set-default", "Mark a profile as the default")
	c.setDefault.Arg("name", "profile name").Required().StringVar(&c.name)
}

func (c *configCommand) TryRun(ctx context.Context, selected string, sess *Session, stdout, stderr io.Writer) (bool, error) {
	switch selected {
	case c.addProfile.FullCommand():
		return true, c.runAddProfile(sess, stdout)
	case c.listProfiles.FullCommand():
		return true, c.runListProfiles(sess, stdout)
	case c.removeProfile.FullCommand():
		return true, c.runRemoveProfile(sess, stdout)
	case c.setDefault.FullCommand():
		return true, c.runSetDefault(sess, stdout)
	default:
		return false, nil
	}
}

func (c *configCommand) runAddProfile(sess *Session, stdout io.Writer) error {
	state, err := sess.State()
	if err != nil {
		return err
	}

	profile := &config.Profile{
		Name:          c.name,
		BaseURL:       c.baseURL,
		SkipTLSVerify: c.skipVerify,
	}
	switch {
	case c.apiToken != "":
		profile.Auth = config.AuthMaterial{Kind: config.AuthAPIToken, APIToken: secret.New(c.apiToken)}
	case c.username != "":
		profile.Auth = config.AuthMaterial{Kind: config.AuthSessionCreds, Username: c.username, Password: secret.New(c.password)}
	default:
		return trace.BadParameter("add-profile requires either --api-token or --username/--password")
	}
	if err := profile.CheckAndSetDefaults(); err != nil {
		return err
	}

	state.UpsertProfile(profile)
	if err := c.save(sess, state); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "saved profile %q\n", c.name)
	return nil
}

func (c *configCommand) runListProfiles(sess *Session, stdout io.Writer) error {
	state, err := sess.State()
	if err != nil {
		return err
	}
	for _, name := range state.ProfileNames() {
		p := state.Profiles[name]
		fmt.Fprintf(stdout, "%s\t%s\n", name, p.BaseURL)
	}
	return nil
}

func (c *configCommand) runRemoveProfile(sess *Session, stdout io.Writer) error {
	state, err := sess.State()
	if err != nil {
		return err
	}
	state.DeleteProfile(c.name)
	if err := c.save(sess, state); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "removed profile %q\n", c.name)
	return nil
}

func (c *configCommand) runSetDefault(sess *Session, stdout io.Writer) error {
	state, err := sess.State()
	if err != nil {
		return err
	}
	if _, ok := state.Profiles[c.name]; !ok {
		return trace.NotFound("profile %q not found", c.name)
	}
	state.PromoteProfile(c.name)
	if err := c.save(sess, state); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%q is now the default profile\n", c.name)
	return nil
}

func (c *configCommand) save(sess *Session, state *config.PersistedState) error {
	store := config.NewStore(sess.configPath(), sess.Clock, nil)
	return store.Save(state)
}
