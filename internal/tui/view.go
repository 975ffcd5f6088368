package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fitchmultz/splunk-tui/internal/format"
	"github.com/fitchmultz/splunk-tui/internal/tui/action"
)

var (
	statusBarStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	helpBarStyle   = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	errStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Render is the TUI's View function, a pure function of App to a string;
// it performs no I/O and mutates nothing, matching Update's own purity.
// Every resource screen renders through the same data-driven path (App's
// cached *models.X slice wrapped as the matching internal/format list
// type, handed to format.WriteTable), so adding a 25th resource screen
// never requires a new rendering file, only a new case here and a new
// format.XList wrapper.
func Render(app App) string {
	var b strings.Builder
	b.WriteString(statusBarStyle.Render(fmt.Sprintf("%s | %s", app.Profile, app.Screen)))
	if app.Loading {
		b.WriteString(statusBarStyle.Render(" loading..."))
	}
	b.WriteByte('\n')

	b.WriteString(renderScreen(app))
	b.WriteByte('\n')

	for _, t := range app.Toasts {
		b.WriteString(renderToast(t))
		b.WriteByte('\n')
	}

	if app.Popup != action.PopupNone {
		b.WriteString(renderPopup(app))
		b.WriteByte('\n')
	}

	b.WriteString(helpBarStyle.Render(helpLine(app)))
	return b.String()
}

func renderToast(t Toast) string {
	switch t.Level {
	case action.ToastError:
		return errStyle.Render("✗ " + t.Message)
	case action.ToastSuccess:
		return successStyle.Render("✓ " + t.Message)
	case action.ToastWarning:
		return warnStyle.Render("! " + t.Message)
	default:
		return t.Message
	}
}

func renderScreen(app App) string {
	switch app.Screen {
	case action.ScreenSearch:
		return renderSearch(app)
	case action.ScreenJobInspect:
		return renderJobInspect(app)
	case action.ScreenSettings:
		return renderSettings(app)
	case action.ScreenMultiInstance:
		return renderMultiInstance(app)
	case action.ScreenOverview:
		return renderOverview(app)
	}

	if data, errMsg, loading := screenData(app); data != nil || errMsg != "" {
		return renderResourceTable(data, errMsg, loading)
	}
	return "no data loaded yet"
}

// screenData resolves the current screen's cached data into a
// format.ResourceDisplay, or nil if the screen isn't a resource table.
func screenData(app App) (format.ResourceDisplay, string, bool) {
	switch app.Screen {
	case action.ScreenJobs:
		return format.SearchJobList(app.Jobs.Items), app.Jobs.Err, app.Jobs.Loading
	case action.ScreenIndexes:
		return format.IndexList(app.Indexes.Items), app.Indexes.Err, app.Indexes.Loading
	case action.ScreenApps:
		return format.AppList(app.Apps.Items), app.Apps.Err, app.Apps.Loading
	case action.ScreenUsers:
		return format.UserList(app.Users.Items), app.Users.Err, app.Users.Loading
	case action.ScreenRoles:
		return format.RoleList(app.Roles.Items), app.Roles.Err, app.Roles.Loading
	case action.ScreenSavedSearches:
		return format.SavedSearchList(app.Saved.Items), app.Saved.Err, app.Saved.Loading
	case action.ScreenMacros:
		return format.MacroList(app.Macros.Items), app.Macros.Err, app.Macros.Loading
	case action.ScreenForwarders:
		return format.ForwarderList(app.Forward.Items), app.Forward.Err, app.Forward.Loading
	case action.ScreenInputs:
		return format.InputList(app.Inputs.Items), app.Inputs.Err, app.Inputs.Loading
	case action.ScreenLookups:
		return format.LookupTableList(app.Lookups.Items), app.Lookups.Err, app.Lookups.Loading
	case action.ScreenSearchPeers:
		return format.SearchPeerList(app.Peers.Items), app.Peers.Err, app.Peers.Loading
	case action.ScreenFiredAlerts:
		return format.FiredAlertList(app.Alerts.Items), app.Alerts.Err, app.Alerts.Loading
	case action.ScreenAudit:
		return format.AuditEventList(app.Audit.Items), app.Audit.Err, app.Audit.Loading
	case action.ScreenInternalLogs:
		return format.LogEntryList(app.Logs.Items), app.Logs.Err, app.Logs.Loading
	case action.ScreenConfigs:
		return format.ConfigFileList(app.Configs.Items), app.Configs.Err, app.Configs.Loading
	case action.ScreenLicense:
		return format.LicenseUsageList(app.License.Items), app.License.Err, app.License.Loading
	case action.ScreenHealth:
		return healthList(app), app.Health.Err, app.Health.Loading
	case action.ScreenCluster:
		return clusterList(app), app.Cluster.Err, app.Cluster.Loading
	case action.ScreenKvstore:
		return kvstoreList(app), app.Kvstore.Err, app.Kvstore.Loading
	default:
		return nil, "", false
	}
}

func healthList(app App) format.ResourceDisplay {
	if app.Health.Items == nil {
		return nil
	}
	return format.HealthCheckList{app.Health.Items}
}

func clusterList(app App) format.ResourceDisplay {
	if app.Cluster.Items == nil {
		return nil
	}
	return format.ClusterStatusList{app.Cluster.Items}
}

func kvstoreList(app App) format.ResourceDisplay {
	if app.Kvstore.Items == nil {
		return nil
	}
	return format.KvStoreStatusList{app.Kvstore.Items}
}

func renderResourceTable(data format.ResourceDisplay, errMsg string, loading bool) string {
	if errMsg != "" {
		return errStyle.Render(errMsg)
	}
	if loading && (data == nil || data.Len() == 0) {
		return "loading..."
	}
	if data == nil || data.Len() == 0 {
		return "no results"
	}
	var buf bytes.Buffer
	_ = format.WriteTable(&buf, data, false, 100, true)
	return buf.String()
}

func renderSearch(app App) string {
	var b strings.Builder
	fmt.Fprintf(&b, "query: %s\n", app.Search.Query)
	if app.Search.Running {
		fmt.Fprintf(&b, "running... %.0f%%\n", app.Search.Progress*100)
		return b.String()
	}
	if app.Search.Err != "" {
		b.WriteString(errStyle.Render(app.Search.Err))
		return b.String()
	}
	fmt.Fprintf(&b, "%d rows\n", len(app.Search.Rows))
	return b.String()
}

func renderJobInspect(app App) string {
	if app.JobInspect.Err != "" {
		return errStyle.Render(app.JobInspect.Err)
	}
	if app.JobInspect.Items == nil {
		return "no job selected"
	}
	j := app.JobInspect.Items
	return fmt.Sprintf("sid: %s\nstate: %s\ndone: %v\nresults: %d", j.Name, j.DispatchState, j.IsDone, j.ResultCount)
}

func renderSettings(app App) string {
	return fmt.Sprintf("profile: %s\nbase url: %s", app.Profile, app.BaseURL)
}

func renderMultiInstance(app App) string {
	if app.MultiInstance.Running {
		return "aggregating..."
	}
	if app.MultiInstance.Err != "" {
		return errStyle.Render(app.MultiInstance.Err)
	}
	if app.MultiInstance.Summary == "" {
		return "no run yet"
	}
	return app.MultiInstance.Summary
}

func renderOverview(app App) string {
	var b strings.Builder
	b.WriteString("overview\n")
	if app.Health.Items != nil {
		fmt.Fprintf(&b, "health: %s\n", app.Health.Items.Health)
	}
	for _, step := range app.Onboarding.Pending() {
		fmt.Fprintf(&b, "hint: %s\n", step)
	}
	return b.String()
}

func helpLine(app App) string {
	return "tab: next screen  shift+tab: prev  r: refresh  e: export  ?: help  q: quit"
}
