package tui

import (
	"time"

	"github.com/fitchmultz/splunk-tui/internal/tui/action"
)

// Update is the TUI's sole state-mutating function: every action.Action
// that reaches it is applied exactly once, and it never performs I/O
// itself — that belongs to internal/tui/sideeffects, which Program (in
// program.go) wires up as bubbletea Cmds. Unhandled action types are ignored rather than
// panicking, since a production build should degrade gracefully rather
// than crash on a message from a future/older version of itself.
func Update(app App, a action.Action) App {
	switch msg := a.(type) {

	case action.Navigate:
		app.Screen = msg.To
		app.Popup = action.PopupNone
		return app

	case action.PopupOpen:
		app.Popup = msg.Popup
		return app

	case action.PopupClose:
		app.Popup = action.PopupNone
		return app

	case action.Notify:
		ttl := msg.TTL
		if ttl <= 0 {
			ttl = 4 * time.Second
		}
		app.Toasts = append(app.Toasts, Toast{Level: msg.Level, Message: msg.Message, Expires: time.Now().Add(ttl)})
		return app

	case action.Loading:
		app.Loading = msg.Busy
		return app

	case action.Progress:
		app.Progress = msg.Fraction
		app.Search.Progress = msg.Fraction
		return app

	case action.Quit:
		app.Quitting = true
		return app

	case action.Cancel:
		app.Loading = false
		app.Search.Running = false
		return app

	case action.ClearAllData:
		return clearAllData(app)

	case action.Resized:
		app.Width, app.Height = msg.Width, msg.Height
		return app

	case action.OnboardingMilestone:
		app.Onboarding.Record(msg.Step)
		return app

	case action.ProfileSwitch:
		app.Loading = true
		return app

	case action.ProfileSwitched:
		app.Loading = false
		if msg.Err != nil {
			app.Toasts = append(app.Toasts, errorToast(msg.Err.Error()))
			return app
		}
		app.Profile = msg.Profile
		app.BaseURL = msg.BaseURL
		app.Popup = action.PopupNone
		return app

	case action.ExportWrite:
		app.Loading = true
		return app

	case action.ExportComplete:
		app.Loading = false
		if msg.Err != nil {
			app.Toasts = append(app.Toasts, errorToast("export failed: "+msg.Err.Error()))
			return app
		}
		app.Popup = action.PopupNone
		app.Toasts = append(app.Toasts, successToast("exported to "+msg.Path))
		return app

	case action.OperationComplete:
		app.Loading = false
		app.Toasts = append(app.Toasts, successToast(msg.Message))
		return app

	case action.OperationFailed:
		app.Loading = false
		app.Toasts = append(app.Toasts, errorToast(msg.Message))
		return app

	// Search screen.
	case action.SearchExecute:
		app.Search.Query = msg.Query
		app.Search.EarliestTime = msg.EarliestTime
		app.Search.LatestTime = msg.LatestTime
		app.Search.Running = true
		app.Search.Err = ""
		app.Search.Rows = nil
		return app

	case action.SearchJobCreated:
		if msg.Err != nil {
			app.Search.Running = false
			app.Search.Err = msg.Err.Error()
			return app
		}
		app.Search.SID = msg.SID
		return app

	case action.SearchResultsLoaded:
		app.Search.Running = false
		if msg.Err != nil {
			app.Search.Err = msg.Err.Error()
			return app
		}
		app.Search.Err = ""
		if msg.Offset == 0 {
			app.Search.Rows = msg.Rows
		} else {
			app.Search.Rows = append(app.Search.Rows, msg.Rows...)
		}
		app.Search.Pagination.Offset = msg.Offset
		return app

	case action.SearchCanceled:
		app.Search.Running = false
		if msg.Err != nil {
			app.Toasts = append(app.Toasts, errorToast("cancel failed: "+msg.Err.Error()))
		}
		return app

	case action.MultiInstanceRun:
		app.MultiInstance.Resources = msg.Resources
		app.MultiInstance.Profiles = msg.Profiles
		app.MultiInstance.Running = true
		app.MultiInstance.Err = ""
		return app

	case action.MultiInstanceComplete:
		app.MultiInstance.Running = false
		if msg.Err != nil {
			app.MultiInstance.Err = msg.Err.Error()
			return app
		}
		app.MultiInstance.Summary = msg.Summary
		return app

	default:
		return applyLoad(app, a)
	}
}

// applyLoad handles every LoadMsg[T]/LoadedMsg[T] instantiation; split out
// from Update's main switch so that switch stays readable and this one can
// be skimmed as "the data-loading cases" on its own.
func applyLoad(app App, a action.Action) App {
	switch msg := a.(type) {
	case action.LoadJobs:
		app.Jobs.Loading = true
		return app
	case action.JobsLoaded:
		applyList(&app.Jobs, msg)
		return app

	case action.LoadIndexes:
		app.Indexes.Loading = true
		return app
	case action.IndexesLoaded:
		applyList(&app.Indexes, msg)
		return app

	case action.LoadApps:
		app.Apps.Loading = true
		return app
	case action.AppsLoaded:
		applyList(&app.Apps, msg)
		return app

	case action.LoadUsers:
		app.Users.Loading = true
		return app
	case action.UsersLoaded:
		applyList(&app.Users, msg)
		return app

	case action.LoadRoles:
		app.Roles.Loading = true
		return app
	case action.RolesLoaded:
		applyList(&app.Roles, msg)
		return app

	case action.LoadSavedSearches:
		app.Saved.Loading = true
		return app
	case action.SavedSearchesLoaded:
		applyList(&app.Saved, msg)
		return app

	case action.LoadMacros:
		app.Macros.Loading = true
		return app
	case action.MacrosLoaded:
		applyList(&app.Macros, msg)
		return app

	case action.LoadForwarders:
		app.Forward.Loading = true
		return app
	case action.ForwardersLoaded:
		applyList(&app.Forward, msg)
		return app

	case action.LoadInputs:
		app.Inputs.Loading = true
		return app
	case action.InputsLoaded:
		applyList(&app.Inputs, msg)
		return app

	case action.LoadLookupTables:
		app.Lookups.Loading = true
		return app
	case action.LookupTablesLoaded:
		applyList(&app.Lookups, msg)
		return app

	case action.LoadSearchPeers:
		app.Peers.Loading = true
		return app
	case action.SearchPeersLoaded:
		applyList(&app.Peers, msg)
		return app

	case action.LoadFiredAlerts:
		app.Alerts.Loading = true
		return app
	case action.FiredAlertsLoaded:
		applyList(&app.Alerts, msg)
		return app

	case action.LoadAuditEvents:
		app.Audit.Loading = true
		return app
	case action.AuditEventsLoaded:
		applyList(&app.Audit, msg)
		return app

	case action.LoadInternalLogs:
		app.Logs.Loading = true
		return app
	case action.InternalLogsLoaded:
		applyList(&app.Logs, msg)
		return app

	case action.LoadConfigFiles:
		app.Configs.Loading = true
		return app
	case action.ConfigFilesLoaded:
		applyList(&app.Configs, msg)
		return app

	case action.LoadLicenseUsage:
		app.License.Loading = true
		return app
	case action.LicenseUsageLoaded:
		applyList(&app.License, msg)
		return app

	case action.LoadHealth:
		app.Health.Loading = true
		return app
	case action.HealthLoaded:
		applySingle(&app.Health, msg)
		return app

	case action.LoadCluster:
		app.Cluster.Loading = true
		return app
	case action.ClusterLoaded:
		applySingle(&app.Cluster, msg)
		return app

	case action.LoadKvstore:
		app.Kvstore.Loading = true
		return app
	case action.KvstoreLoaded:
		applySingle(&app.Kvstore, msg)
		return app

	case action.LoadJobDetail:
		app.JobInspect.Loading = true
		return app
	case action.JobDetailLoaded:
		applySingle(&app.JobInspect, msg)
		return app

	default:
		return app
	}
}

func applyList[T any](cache *resourceCache[[]T], msg action.LoadedMsg[[]T]) {
	cache.Loading = false
	if msg.Err != nil {
		cache.Err = msg.Err.Error()
		return
	}
	cache.Err = ""
	if msg.Offset == 0 {
		cache.Items = msg.Items
	} else {
		cache.Items = append(cache.Items, msg.Items...)
	}
	cache.Pagination.Offset = msg.Offset
}

func applySingle[T any](cache *resourceCache[T], msg action.LoadedMsg[T]) {
	cache.Loading = false
	if msg.Err != nil {
		cache.Err = msg.Err.Error()
		return
	}
	cache.Err = ""
	cache.Items = msg.Items
}

func clearAllData(app App) App {
	profile, baseURL, catalog, km := app.Profile, app.BaseURL, app.Catalog, app.Keymap
	screen, width, height := app.Screen, app.Width, app.Height
	app = NewApp(profile, baseURL, catalog, km)
	app.Screen = screen
	app.Width, app.Height = width, height
	return app
}

func errorToast(message string) Toast {
	return Toast{Level: action.ToastError, Message: message, Expires: time.Now().Add(6 * time.Second)}
}

func successToast(message string) Toast {
	return Toast{Level: action.ToastSuccess, Message: message, Expires: time.Now().Add(4 * time.Second)}
}
