package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/gravitational/kingpin"
)

// completeCommand is a hidden subcommand the dynamic completion scripts
// shell out to (completions.go's --dynamic mode): it prints one candidate
// per line for a given field, so the shell's own completion machinery never
// has to parse JSON or talk to Splunk directly.
type completeCommand struct {
	cmd   *kingpin.CmdClause
	field string
}

func newCompleteCommand() Command { return &completeCommand{} }

func (c *completeCommand) Initialize(app *kingpin.Application) {
	c.cmd = app.Command("complete", "Print shell-completion candidates for a field").Hidden()
	c.cmd.Arg("field", "profiles, indexes, saved-searches, jobs, or apps").Required().EnumVar(&c.field,
		"profiles", "indexes", "saved-searches", "jobs", "apps")
}

func (c *completeCommand) TryRun(ctx context.Context, selected string, sess *Session, stdout, stderr io.Writer) (bool, error) {
	if c.cmd == nil || selected != c.cmd.FullCommand() {
		return false, nil
	}

	names, err := c.candidates(ctx, sess)
	if err != nil {
		// Completion must never surface an error to the user's shell;
		// an empty candidate list is the correct degraded behavior.
		return true, nil
	}
	for _, name := range names {
		fmt.Fprintln(stdout, name)
	}
	return true, nil
}

// candidates answers offline where it can (profiles, from persisted
// state) and only builds a client for resource-backed fields.
func (c *completeCommand) candidates(ctx context.Context, sess *Session) ([]string, error) {
	if c.field == "profiles" {
		state, err := sess.State()
		if err != nil {
			return nil, err
		}
		return state.ProfileNames(), nil
	}

	client, _, err := sess.Client(ctx)
	if err != nil {
		return nil, err
	}

	switch c.field {
	case "indexes":
		items, err := client.ListIndexes(ctx)
		if err != nil {
			return nil, err
		}
		names := make([]string, len(items))
		for i, item := range items {
			names[i] = item.Name
		}
		return names, nil
	case "saved-searches":
		items, err := client.ListSavedSearches(ctx)
		if err != nil {
			return nil, err
		}
		names := make([]string, len(items))
		for i, item := range items {
			names[i] = item.Name
		}
		return names, nil
	case "jobs":
		items, err := client.ListSearchJobs(ctx)
		if err != nil {
			return nil, err
		}
		names := make([]string, len(items))
		for i, item := range items {
			names[i] = item.Name
		}
		return names, nil
	case "apps":
		items, err := client.ListApps(ctx)
		if err != nil {
			return nil, err
		}
		names := make([]string, len(items))
		for i, item := range items {
			names[i] = item.Name
		}
		return names, nil
	default:
		return nil, nil
	}
}
