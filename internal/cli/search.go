package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/gravitational/kingpin"

	"github.com/fitchmultz/splunk-tui/internal/splunkclient"
)

// searchCommand dispatches one SPL search, polls to completion reporting
// progress to stderr, then renders the result rows (spec.md §4.5 search
// semantics, shared client-side polling loop with the TUI's
// sideeffects.ExecuteSearch).
type searchCommand struct {
	cmd *kingpin.CmdClause

	query        string
	earliestTime string
	latestTime   string
	maxResults   int
}

func newSearchCommand() Command { return &searchCommand{} }

func (c *searchCommand) Initialize(app *kingpin.Application) {
	c.cmd = app.Command("search", "Run an SPL search and print its results")
	c.cmd.Arg("query", "SPL search query").Required().StringVar(&c.query)
	c.cmd.Flag("earliest", "earliest time boundary, e.g. -24h").StringVar(&c.earliestTime)
	c.cmd.Flag("latest", "latest time boundary, e.g. now").StringVar(&c.latestTime)
	c.cmd.Flag("count", "maximum result rows").Default("100").IntVar(&c.maxResults)
}

func (c *searchCommand) TryRun(ctx context.Context, selected string, sess *Session, stdout, stderr io.Writer) (bool, error) {
	if c.cmd == nil || selected != c.cmd.FullCommand() {
		return false, nil
	}
	client, _, err := sess.Client(ctx)
	if err != nil {
		return true, err
	}

	status, err := client.SearchWithProgress(ctx, splunkclient.SearchParams{
		Query:        c.query,
		EarliestTime: c.earliestTime,
		LatestTime:   c.latestTime,
		MaxResults:   c.maxResults,
	}, func(fraction float64) {
		fmt.Fprintf(stderr, "\rsearching... %.0f%%", fraction*100)
	})
	fmt.Fprintln(stderr)
	if err != nil {
		return true, err
	}
	if status.IsFailed {
		return true, fmt.Errorf("search job %s failed", status.Name)
	}

	rows, err := client.GetSearchJobResults(ctx, status.Name, c.maxResults, 0)
	if err != nil {
		return true, err
	}

	out, err := NewOutput(sess.Flags.Output, sess.Flags.OutputFile, stdout)
	if err != nil {
		return true, err
	}
	defer out.Close()
	return true, writeSearchResults(out, rows)
}

// writeSearchResults renders search result rows. These are dynamically
// keyed field maps (Splunk's search API never fixes a column set across
// queries), so they can't implement format.ResourceDisplay the way every
// named resource type does; json and ndjson are encoded directly with
// encoding/json, which handles map[string]string natively, and every other
// format (table, csv, xml) falls back to a tabwriter-aligned grid.
func writeSearchResults(out *Output, rows []map[string]string) error {
	switch out.Format {
	case "json":
		enc := json.NewEncoder(out.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "ndjson":
		enc := json.NewEncoder(out.Writer)
		for _, row := range rows {
			if err := enc.Encode(row); err != nil {
				return err
			}
		}
		return nil
	default:
		return writeSearchResultsTable(out.Writer, rows)
	}
}

func writeSearchResultsTable(w io.Writer, rows []map[string]string) error {
	if len(rows) == 0 {
		fmt.Fprintln(w, "no results")
		return nil
	}

	fields := map[string]bool{}
	for _, row := range rows {
		for k := range row {
			fields[k] = true
		}
	}
	columns := make([]string, 0, len(fields))
	for k := range fields {
		columns = append(columns, k)
	}
	sort.Strings(columns)

	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	for i, col := range columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, col)
	}
	fmt.Fprintln(tw)
	for _, row := range rows {
		for i, col := range columns {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, row[col])
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
