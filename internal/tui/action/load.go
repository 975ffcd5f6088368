package action

import "github.com/fitchmultz/splunk-tui/internal/models"

// LoadMsg requests screen T's resource list be (re)fetched. Offset > 0
// means "append a page" rather than "replace"; screens reset Offset to 0
// on refresh.
type LoadMsg[T any] struct {
	Count  int
	Offset int
}

func (LoadMsg[T]) isAction() {}

// LoadedMsg reports the outcome of a LoadMsg. Each distinct instantiation
// of T is, at compile time, a wholly distinct Go type, which is what lets
// Update's type switch dispatch on "which resource finished loading"
// without a parallel hand-written struct per resource kind.
type LoadedMsg[T any] struct {
	Items  T
	Offset int
	Err    error
}

func (LoadedMsg[T]) isAction() {}

// The resource-kind instantiations. Each pair names the closed set of data-
// loading actions the reducer accepts, one per screen that owns a fetched
// list.
type (
	LoadJobs          = LoadMsg[[]*models.SearchJobStatus]
	JobsLoaded        = LoadedMsg[[]*models.SearchJobStatus]
	LoadIndexes       = LoadMsg[[]*models.Index]
	IndexesLoaded     = LoadedMsg[[]*models.Index]
	LoadApps          = LoadMsg[[]*models.App]
	AppsLoaded        = LoadedMsg[[]*models.App]
	LoadUsers         = LoadMsg[[]*models.User]
	UsersLoaded       = LoadedMsg[[]*models.User]
	LoadRoles         = LoadMsg[[]*models.Role]
	RolesLoaded       = LoadedMsg[[]*models.Role]
	LoadSavedSearches = LoadMsg[[]*models.SavedSearch]
	SavedSearchesLoaded = LoadedMsg[[]*models.SavedSearch]
	LoadMacros        = LoadMsg[[]*models.Macro]
	MacrosLoaded      = LoadedMsg[[]*models.Macro]
	LoadForwarders    = LoadMsg[[]*models.Forwarder]
	ForwardersLoaded  = LoadedMsg[[]*models.Forwarder]
	LoadInputs        = LoadMsg[[]*models.Input]
	InputsLoaded      = LoadedMsg[[]*models.Input]
	LoadLookupTables  = LoadMsg[[]*models.LookupTable]
	LookupTablesLoaded = LoadedMsg[[]*models.LookupTable]
	LoadSearchPeers   = LoadMsg[[]*models.SearchPeer]
	SearchPeersLoaded = LoadedMsg[[]*models.SearchPeer]
	LoadFiredAlerts   = LoadMsg[[]*models.FiredAlert]
	FiredAlertsLoaded = LoadedMsg[[]*models.FiredAlert]
	LoadAuditEvents   = LoadMsg[[]*models.AuditEvent]
	AuditEventsLoaded = LoadedMsg[[]*models.AuditEvent]
	LoadInternalLogs  = LoadMsg[[]*models.LogEntry]
	InternalLogsLoaded = LoadedMsg[[]*models.LogEntry]
	LoadConfigFiles   = LoadMsg[[]*models.ConfigFile]
	ConfigFilesLoaded = LoadedMsg[[]*models.ConfigFile]
	LoadLicenseUsage  = LoadMsg[[]*models.LicenseUsage]
	LicenseUsageLoaded = LoadedMsg[[]*models.LicenseUsage]
)

// Single-item loads for screens backed by one object rather than a list.
type (
	LoadHealth      = LoadMsg[*models.HealthCheckOutput]
	HealthLoaded    = LoadedMsg[*models.HealthCheckOutput]
	LoadCluster     = LoadMsg[*models.ClusterStatus]
	ClusterLoaded   = LoadedMsg[*models.ClusterStatus]
	LoadKvstore     = LoadMsg[*models.KvStoreStatus]
	KvstoreLoaded   = LoadedMsg[*models.KvStoreStatus]
	LoadJobDetail   = LoadMsg[*models.SearchJobStatus]
	JobDetailLoaded = LoadedMsg[*models.SearchJobStatus]
)
