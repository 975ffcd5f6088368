// Package export implements the TUI's export popup: pick a format, confirm
// a filename, write the current screen's data to disk (spec.md §4.5).
package export

import (
	"fmt"
	"os"

	"github.com/fitchmultz/splunk-tui/internal/format"
)

// Target identifies which screen's cached data an export popup is writing.
// The set mirrors the resource-bearing screens; it is intentionally not
// every screen, since some (Settings, Help) have nothing to export.
type Target int

const (
	TargetSearch Target = iota
	TargetJobs
	TargetIndexes
	TargetApps
	TargetUsers
	TargetRoles
	TargetSavedSearches
	TargetMacros
	TargetForwarders
	TargetInputs
	TargetLookups
	TargetSearchPeers
	TargetFiredAlerts
	TargetAuditEvents
	TargetInternalLogs
	TargetConfigs
	TargetLicenseUsage
)

var targetNames = map[Target]string{
	TargetSearch:         "search",
	TargetJobs:           "jobs",
	TargetIndexes:        "indexes",
	TargetApps:           "apps",
	TargetUsers:          "users",
	TargetRoles:          "roles",
	TargetSavedSearches:  "saved_searches",
	TargetMacros:         "macros",
	TargetForwarders:     "forwarders",
	TargetInputs:         "inputs",
	TargetLookups:        "lookups",
	TargetSearchPeers:    "search_peers",
	TargetFiredAlerts:    "fired_alerts",
	TargetAuditEvents:    "audit",
	TargetInternalLogs:   "internal_logs",
	TargetConfigs:        "configs",
	TargetLicenseUsage:   "license_usage",
}

func (t Target) String() string {
	if name, ok := targetNames[t]; ok {
		return name
	}
	return "export"
}

// State is the export popup's in-progress selection.
type State struct {
	Target Target
	Format format.Format
}

// SeededFilename returns the default filename the popup pre-fills:
// "<target>.<ext>".
func (s State) SeededFilename() string {
	return fmt.Sprintf("%s.%s", s.Target, s.Format.Extension())
}

// ToggleFormat cycles between the two export popup formats, JSON and CSV.
// The popup deliberately doesn't offer NDJSON/Table/XML; those are CLI
// concerns (streaming, terminal width, document export), not a quick
// "save what's on screen" action.
func (s *State) ToggleFormat() {
	if s.Format == format.JSON {
		s.Format = format.CSV
	} else {
		s.Format = format.JSON
	}
}

// Write renders data with the selected format and writes it to path.
func Write(path string, s State, data format.ResourceDisplay) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch s.Format {
	case format.CSV:
		return format.WriteCSV(f, data, true)
	default:
		return format.WriteJSON(f, data)
	}
}
