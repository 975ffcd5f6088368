// Package action defines the closed set of messages that flow through the
// TUI's update loop. Every user keystroke, timer tick, and completed network
// call is translated into one of these types before it reaches the reducer;
// nothing else is allowed to mutate application state.
package action

// Screen enumerates every view the TUI can display. The set is closed:
// navigation always resolves to one of these, never an arbitrary string.
type Screen int

const (
	ScreenSearch Screen = iota
	ScreenJobs
	ScreenIndexes
	ScreenCluster
	ScreenHealth
	ScreenKvstore
	ScreenLicense
	ScreenSavedSearches
	ScreenMacros
	ScreenInternalLogs
	ScreenApps
	ScreenUsers
	ScreenRoles
	ScreenSearchPeers
	ScreenInputs
	ScreenConfigs
	ScreenSettings
	ScreenOverview
	ScreenMultiInstance
	ScreenFiredAlerts
	ScreenForwarders
	ScreenLookups
	ScreenAudit
	ScreenJobInspect
)

// screenNames backs String(); every Screen value must have an entry.
var screenNames = map[Screen]string{
	ScreenSearch:        "Search",
	ScreenJobs:          "Jobs",
	ScreenIndexes:       "Indexes",
	ScreenCluster:       "Cluster",
	ScreenHealth:        "Health",
	ScreenKvstore:       "Kvstore",
	ScreenLicense:       "License",
	ScreenSavedSearches: "Saved Searches",
	ScreenMacros:        "Macros",
	ScreenInternalLogs:  "Internal Logs",
	ScreenApps:          "Apps",
	ScreenUsers:         "Users",
	ScreenRoles:         "Roles",
	ScreenSearchPeers:   "Search Peers",
	ScreenInputs:        "Inputs",
	ScreenConfigs:       "Configs",
	ScreenSettings:      "Settings",
	ScreenOverview:      "Overview",
	ScreenMultiInstance: "Multi-Instance",
	ScreenFiredAlerts:   "Fired Alerts",
	ScreenForwarders:    "Forwarders",
	ScreenLookups:       "Lookups",
	ScreenAudit:         "Audit",
	ScreenJobInspect:    "Job Inspect",
}

func (s Screen) String() string {
	if name, ok := screenNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Screens is the ordered cycle used by next_screen/prev_screen navigation.
// JobInspect is reached only by drilling into a job, never by cycling, so it
// is excluded.
var Screens = []Screen{
	ScreenOverview,
	ScreenSearch,
	ScreenJobs,
	ScreenIndexes,
	ScreenCluster,
	ScreenHealth,
	ScreenKvstore,
	ScreenLicense,
	ScreenSavedSearches,
	ScreenMacros,
	ScreenInternalLogs,
	ScreenApps,
	ScreenUsers,
	ScreenRoles,
	ScreenSearchPeers,
	ScreenInputs,
	ScreenConfigs,
	ScreenSettings,
	ScreenMultiInstance,
	ScreenFiredAlerts,
	ScreenForwarders,
	ScreenLookups,
	ScreenAudit,
}

// NextScreen returns the screen following cur in the cycle, wrapping around.
func NextScreen(cur Screen) Screen {
	return offsetScreen(cur, 1)
}

// PrevScreen returns the screen preceding cur in the cycle, wrapping around.
func PrevScreen(cur Screen) Screen {
	return offsetScreen(cur, -1)
}

func offsetScreen(cur Screen, delta int) Screen {
	idx := 0
	for i, s := range Screens {
		if s == cur {
			idx = i
			break
		}
	}
	n := len(Screens)
	idx = ((idx+delta)%n + n) % n
	return Screens[idx]
}

// Popup enumerates the closed set of overlays the TUI can stack on top of a
// screen. At most one is ever open at a time (spec popup stack depth 1).
type Popup int

const (
	PopupNone Popup = iota
	PopupHelp
	PopupConfirmCancel
	PopupConfirmDelete
	PopupCreate
	PopupModify
	PopupDelete
	PopupIndexDetails
	PopupExportSearch
	PopupErrorDetails
	PopupProfileSelector
	PopupInstallApp
	PopupUndoHistory
)
