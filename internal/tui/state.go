// Package tui implements the splunk-tui interactive dashboard: a
// charmbracelet/bubbletea program whose Update function is a pure reducer
// over internal/tui/action.Action values, grounded on the teacher's
// Elm-style `lib/teleterm` Electron/gRPC event loop generalized to a
// terminal UI (spec.md §4.5).
package tui

import (
	"time"

	"github.com/fitchmultz/splunk-tui/internal/config"
	"github.com/fitchmultz/splunk-tui/internal/models"
	"github.com/fitchmultz/splunk-tui/internal/tui/action"
	"github.com/fitchmultz/splunk-tui/internal/tui/export"
	"github.com/fitchmultz/splunk-tui/internal/tui/keymap"
	"github.com/fitchmultz/splunk-tui/internal/tui/onboarding"
)

// Toast is one queued notification banner.
type Toast struct {
	Level   action.ToastLevel
	Message string
	Expires time.Time
}

// Pagination tracks a list screen's current offset/total for the footer
// and for deciding whether a LoadMsg is a refresh (offset 0) or a page
// append.
type Pagination struct {
	Offset int
	Total  *int
}

// resourceCache holds one screen's cached resource list plus its error and
// loading state, generalized across the ~17 list-backed screens instead of
// duplicating these three fields per screen.
type resourceCache[T any] struct {
	Items      T
	Err        string
	Loading    bool
	Pagination Pagination
}

// App is the whole of the TUI's state; Update never mutates anything
// outside of a field on this struct, and View never mutates App at all.
type App struct {
	Screen     action.Screen
	Popup      action.Popup
	Width      int
	Height     int
	Quitting   bool
	Loading    bool
	Progress   float64
	Toasts     []Toast
	Keymap     keymap.Map
	Onboarding onboarding.State
	Export     export.State

	Profile  string
	BaseURL  string
	Catalog  []string
	Snapshot *config.Snapshot

	Search   SearchState
	Jobs     resourceCache[[]*models.SearchJobStatus]
	Indexes  resourceCache[[]*models.Index]
	Apps     resourceCache[[]*models.App]
	Users    resourceCache[[]*models.User]
	Roles    resourceCache[[]*models.Role]
	Saved    resourceCache[[]*models.SavedSearch]
	Macros   resourceCache[[]*models.Macro]
	Forward  resourceCache[[]*models.Forwarder]
	Inputs   resourceCache[[]*models.Input]
	Lookups  resourceCache[[]*models.LookupTable]
	Peers    resourceCache[[]*models.SearchPeer]
	Alerts   resourceCache[[]*models.FiredAlert]
	Audit    resourceCache[[]*models.AuditEvent]
	Logs     resourceCache[[]*models.LogEntry]
	Configs  resourceCache[[]*models.ConfigFile]
	License  resourceCache[[]*models.LicenseUsage]

	Health  resourceCache[*models.HealthCheckOutput]
	Cluster resourceCache[*models.ClusterStatus]
	Kvstore resourceCache[*models.KvStoreStatus]

	JobInspect resourceCache[*models.SearchJobStatus]

	MultiInstance MultiInstanceState
}

// SearchState is the Search screen's in-progress query and result cache.
type SearchState struct {
	Query        string
	EarliestTime string
	LatestTime   string
	SID          string
	Running      bool
	Progress     float64
	Rows         []map[string]string
	Err          string
	Pagination   Pagination
}

// MultiInstanceState tracks the Multi-Instance screen's last aggregation
// run (internal/aggregate.Report), kept separate from the single-profile
// resource caches since it spans every configured profile at once.
type MultiInstanceState struct {
	Resources []string
	Profiles  []string
	Running   bool
	Err       string
	Summary   string
}

// NewApp builds the initial state before any data has loaded.
func NewApp(profile, baseURL string, catalog []string, km keymap.Map) App {
	return App{
		Screen:  action.ScreenOverview,
		Popup:   action.PopupNone,
		Profile: profile,
		BaseURL: baseURL,
		Catalog: catalog,
		Keymap:  km,
	}
}
