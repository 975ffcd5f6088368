package sideeffects

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitchmultz/splunk-tui/internal/aggregate"
	"github.com/fitchmultz/splunk-tui/internal/tui/action"
)

// RunMultiInstance fans a resource fetch out across every requested
// profile via internal/aggregate.Run, then flattens the resulting Report
// into a single summary string for the Multi-Instance screen. Rendering
// happens here rather than in the screen itself so the screen stays a
// plain string-displaying view, matching every other resource screen.
func RunMultiInstance(ctx context.Context, build ClientBuilder, catalog map[string]bool, resources, profiles []string) tea.Cmd {
	return tea.Batch(LoadingCmd(), func() tea.Msg {
		report, err := aggregate.Run(ctx, aggregate.Config{
			Resources: resources,
			Profiles:  profiles,
			Catalog:   catalog,
			NewClient: aggregate.ClientFactory(build),
		})
		if err != nil {
			return action.MultiInstanceComplete{Err: err}
		}
		return action.MultiInstanceComplete{Summary: renderReport(report)}
	})
}

func renderReport(report *aggregate.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "aggregated at %s\n", report.GeneratedAt)
	for _, p := range report.Profiles {
		if p.Err != "" {
			fmt.Fprintf(&b, "%s (%s): error: %s\n", p.Profile, p.BaseURL, p.Err)
			continue
		}
		fmt.Fprintf(&b, "%s (%s):\n", p.Profile, p.BaseURL)
		for _, s := range p.Summaries {
			if s.Err != "" {
				fmt.Fprintf(&b, "  %s: error: %s\n", s.Kind, s.Err)
				continue
			}
			fmt.Fprintf(&b, "  %s: %d", s.Kind, s.Count)
			if s.Detail != "" {
				fmt.Fprintf(&b, " (%s)", s.Detail)
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
