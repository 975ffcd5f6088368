package models

// Index is a Splunk index (services/data/indexes).
type Index struct {
	Name             string  `json:"name"`
	TotalEventCount  int64   `json:"totalEventCount"`
	CurrentDBSizeMB  int64   `json:"currentDBSizeMB"`
	MaxTotalDataSize int64   `json:"maxTotalDataSizeMB"`
	MinTime          *string `json:"minTime,omitempty"`
	MaxTime          *string `json:"maxTime,omitempty"`
	Disabled         bool    `json:"disabled"`
	FrozenTimePeriodSecs int `json:"frozenTimePeriodInSecs,omitempty"`
	HomePath         string  `json:"homePath,omitempty"`
	ColdPath         string  `json:"coldPath,omitempty"`
	ThawedPath       string  `json:"thawedPath,omitempty"`
}

func (i *Index) SetName(name string) { i.Name = name }

// SearchJobStatus is a Splunk search job (services/search/jobs/{sid}).
type SearchJobStatus struct {
	Name          string  `json:"name"` // the SID
	DispatchState string  `json:"dispatchState"`
	IsDone        bool    `json:"isDone"`
	IsFailed      bool    `json:"isFailed"`
	DoneProgress  float64 `json:"doneProgress"`
	EventCount    int64   `json:"eventCount"`
	ResultCount   int64   `json:"resultCount"`
	RunDuration   float64 `json:"runDuration"`
	SearchQuery   string  `json:"search"`
	EarliestTime  *string `json:"earliestTime,omitempty"`
	LatestTime    *string `json:"latestTime,omitempty"`
	Owner         string  `json:"eventSorting,omitempty"`
	TTL           int     `json:"ttl,omitempty"`
}

func (s *SearchJobStatus) SetName(name string) { s.Name = name }

// SavedSearch is a stored SPL query (services/saved/searches).
type SavedSearch struct {
	Name          string  `json:"name"`
	Search        string  `json:"search"`
	Description   *string `json:"description,omitempty"`
	IsScheduled   bool    `json:"is_scheduled"`
	CronSchedule  *string `json:"cron_schedule,omitempty"`
	EarliestTime  *string `json:"dispatch.earliest_time,omitempty"`
	LatestTime    *string `json:"dispatch.latest_time,omitempty"`
	IsVisible     bool    `json:"is_visible"`
	AlertType     *string `json:"alert_type,omitempty"`
	NextScheduled *string `json:"next_scheduled_time,omitempty"`
}

func (s *SavedSearch) SetName(name string) { s.Name = name }

// FiredAlert is a triggered saved-search alert instance.
type FiredAlert struct {
	Name       string  `json:"name"`
	SavedName  string  `json:"savedsearch_name"`
	TriggerAt  string  `json:"trigger_time"`
	Severity   int     `json:"severity"`
	Expiration *string `json:"expiration_time,omitempty"`
}

func (f *FiredAlert) SetName(name string) { f.Name = name }

// Macro is a reusable SPL snippet (services/data/macros).
type Macro struct {
	Name       string  `json:"name"`
	Definition string  `json:"definition"`
	Args       *string `json:"args,omitempty"`
	Validation *string `json:"validation,omitempty"`
	IsDisabled bool    `json:"disabled"`
}

func (m *Macro) SetName(name string) { m.Name = name }
