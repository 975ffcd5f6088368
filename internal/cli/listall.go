package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gravitational/kingpin"

	"github.com/fitchmultz/splunk-tui/internal/aggregate"
)

// listAllCommand fans a set of resources out across a set of profiles,
// reusing internal/aggregate.Run and the same ClientBuilder shape the
// TUI's multi-instance screen wires (spec.md §4.4).
type listAllCommand struct {
	cmd *kingpin.CmdClause

	resources   string
	profiles    string
	allProfiles bool
}

func newListAllCommand() Command { return &listAllCommand{} }

func (c *listAllCommand) Initialize(app *kingpin.Application) {
	c.cmd = app.Command("list-all", "Fan resource fetches out across multiple profiles")
	c.cmd.Flag("resources", "comma-separated resource kinds (indexes, users, apps, jobs)").Required().StringVar(&c.resources)
	c.cmd.Flag("profiles", "comma-separated profile names").StringVar(&c.profiles)
	c.cmd.Flag("all-profiles", "run against every configured profile").BoolVar(&c.allProfiles)
}

func (c *listAllCommand) TryRun(ctx context.Context, selected string, sess *Session, stdout, stderr io.Writer) (bool, error) {
	if c.cmd == nil || selected != c.cmd.FullCommand() {
		return false, nil
	}

	state, err := sess.State()
	if err != nil {
		return true, err
	}
	catalog := map[string]bool{}
	for _, name := range state.ProfileNames() {
		catalog[name] = true
	}

	profiles := strings.Split(c.profiles, ",")
	if c.allProfiles || len(aggregate.NormalizeProfiles(profiles)) == 0 {
		profiles = state.ProfileNames()
	}

	report, err := aggregate.Run(ctx, aggregate.Config{
		Resources: strings.Split(c.resources, ","),
		Profiles:  profiles,
		Catalog:   catalog,
		NewClient: aggregate.ClientFactory(sess.ClientBuilder()),
	})
	if err != nil {
		return true, err
	}

	out, err := NewOutput(sess.Flags.Output, sess.Flags.OutputFile, stdout)
	if err != nil {
		return true, err
	}
	defer out.Close()

	if out.Format == "json" || out.Format == "ndjson" {
		return true, writeReportJSON(out, report)
	}
	return true, writeReportTable(out.Writer, report)
}

func writeReportJSON(out *Output, report *aggregate.Report) error {
	if out.Format == "ndjson" {
		for _, p := range report.Profiles {
			if err := writeReportJSONLine(out, p); err != nil {
				return err
			}
		}
		return nil
	}
	return writeReportJSONLine(out, report)
}

func writeReportJSONLine(out *Output, v any) error {
	enc := json.NewEncoder(out.Writer)
	if out.Format != "ndjson" {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func writeReportTable(w io.Writer, report *aggregate.Report) error {
	fmt.Fprintf(w, "run completed at %s\n", report.GeneratedAt)
	for _, p := range report.Profiles {
		if p.Err != "" {
			fmt.Fprintf(w, "%s: error: %s\n", p.Profile, p.Err)
			continue
		}
		fmt.Fprintf(w, "%s (%s)\n", p.Profile, p.BaseURL)
		for _, s := range p.Summaries {
			if s.Err != "" {
				fmt.Fprintf(w, "  %s: error: %s\n", s.Kind, s.Err)
				continue
			}
			fmt.Fprintf(w, "  %s: %d %s\n", s.Kind, s.Count, s.Detail)
		}
	}
	return nil
}

