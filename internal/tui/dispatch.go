package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitchmultz/splunk-tui/internal/splunkclient"
	"github.com/fitchmultz/splunk-tui/internal/tui/action"
	"github.com/fitchmultz/splunk-tui/internal/tui/sideeffects"
)

// listLoaders maps a list-backed screen to the Cmd that (re)loads it.
// Keyed by Screen rather than resource name since a screen's Navigate is
// the trigger for an initial load; resourceReloaders below is keyed by
// resource name instead, since that's what OperationComplete carries.
var listLoaders = map[action.Screen]func(context.Context, *splunkclient.Client, int) tea.Cmd{
	action.ScreenJobs:          sideeffects.LoadJobs,
	action.ScreenIndexes:       sideeffects.LoadIndexes,
	action.ScreenApps:         sideeffects.LoadApps,
	action.ScreenUsers:         sideeffects.LoadUsers,
	action.ScreenRoles:         sideeffects.LoadRoles,
	action.ScreenSavedSearches: sideeffects.LoadSavedSearches,
	action.ScreenMacros:        sideeffects.LoadMacros,
	action.ScreenForwarders:    sideeffects.LoadForwarders,
	action.ScreenInputs:        sideeffects.LoadInputs,
	action.ScreenLookups:       sideeffects.LoadLookups,
	action.ScreenSearchPeers:   sideeffects.LoadSearchPeers,
	action.ScreenFiredAlerts:   sideeffects.LoadFiredAlerts,
	action.ScreenAudit:         sideeffects.LoadAuditEvents,
	action.ScreenInternalLogs:  sideeffects.LoadInternalLogs,
	action.ScreenConfigs:       sideeffects.LoadConfigFiles,
	action.ScreenLicense:       sideeffects.LoadLicenseUsage,
}

// singleLoaders maps a single-object screen to its load Cmd.
var singleLoaders = map[action.Screen]func(context.Context, *splunkclient.Client) tea.Cmd{
	action.ScreenHealth:  sideeffects.LoadHealth,
	action.ScreenCluster: sideeffects.LoadCluster,
	action.ScreenKvstore: sideeffects.LoadKvstore,
}

// resourceReloaders maps an OperationComplete.Resource name to the Cmd
// that refreshes the screen it belongs to, so a mutation's success
// triggers a reload the same way original_source's side-effect modules
// always re-list after a successful create/modify/delete/cancel.
var resourceReloaders = map[string]func(context.Context, *splunkclient.Client, int) tea.Cmd{
	"jobs":    sideeffects.LoadJobs,
	"indexes": sideeffects.LoadIndexes,
	"users":   sideeffects.LoadUsers,
	"apps":    sideeffects.LoadApps,
}

// loadCmdForNavigate returns the Cmd to run after navigating to screen, if
// it's a type dispatch.go knows how to load. It reloads on every Navigate,
// whether or not the screen's cache already holds data, which is what the
// refresh key relies on. JobInspect, Search, Settings, MultiInstance, and Overview are
// deliberately absent: each needs a parameter (a SID, a query, nothing at
// all) that a bare Navigate doesn't carry.
func loadCmdForNavigate(ctx context.Context, client *splunkclient.Client, screen action.Screen) tea.Cmd {
	if load, ok := listLoaders[screen]; ok {
		return load(ctx, client, 0)
	}
	if load, ok := singleLoaders[screen]; ok {
		return load(ctx, client)
	}
	return nil
}

// reloadCmdForResource returns the Cmd to run after an OperationComplete
// for resource, or nil if that resource has no known screen to refresh.
func reloadCmdForResource(ctx context.Context, client *splunkclient.Client, resource string) tea.Cmd {
	if load, ok := resourceReloaders[resource]; ok {
		return load(ctx, client, 0)
	}
	return nil
}
