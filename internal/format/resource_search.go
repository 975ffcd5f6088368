package format

import "github.com/fitchmultz/splunk-tui/internal/models"

// SearchJobList adapts search job statuses (the `jobs` resource).
type SearchJobList []*models.SearchJobStatus

func (l SearchJobList) Len() int { return len(l) }

func (l SearchJobList) Headers(detailed bool) []string {
	if detailed {
		return []string{"SID", "State", "Done", "Failed", "Progress", "Events", "Results", "Duration (s)", "Search", "Earliest", "Latest"}
	}
	return []string{"SID", "State", "Done", "Progress", "Results"}
}

func (l SearchJobList) HeadersCSV() []string {
	return []string{"sid", "dispatch_state", "is_done", "is_failed", "done_progress", "event_count", "result_count", "run_duration", "search", "earliest_time", "latest_time"}
}

func (l SearchJobList) HeadersTable() []string { return l.Headers(false) }

func (l SearchJobList) RowData(detailed bool) [][]string {
	rows := make([][]string, 0, len(l))
	for _, j := range l {
		if detailed {
			rows = append(rows, []string{
				j.Name, j.DispatchState, boolStr(j.IsDone), boolStr(j.IsFailed),
				floatStr(j.DoneProgress), int64Str(j.EventCount), int64Str(j.ResultCount),
				floatStr(j.RunDuration), j.SearchQuery, deref(j.EarliestTime), deref(j.LatestTime),
			})
			continue
		}
		rows = append(rows, []string{j.Name, j.DispatchState, boolStr(j.IsDone), floatStr(j.DoneProgress), int64Str(j.ResultCount)})
	}
	return rows
}

func (l SearchJobList) XMLElementName() string { return "job" }

func (l SearchJobList) XMLFields() [][]XMLField {
	out := make([][]XMLField, 0, len(l))
	for _, j := range l {
		out = append(out, []XMLField{
			xmlField("sid", j.Name),
			xmlField("dispatch_state", j.DispatchState),
			xmlField("is_done", boolStr(j.IsDone)),
			xmlField("is_failed", boolStr(j.IsFailed)),
			xmlField("done_progress", floatStr(j.DoneProgress)),
			xmlField("event_count", int64Str(j.EventCount)),
			xmlField("result_count", int64Str(j.ResultCount)),
			xmlField("run_duration", floatStr(j.RunDuration)),
			xmlField("search", j.SearchQuery),
			xmlFieldPtr("earliest_time", j.EarliestTime),
			xmlFieldPtr("latest_time", j.LatestTime),
		})
	}
	return out
}

var _ ResourceDisplay = SearchJobList{}

// SavedSearchList adapts the `saved-searches` resource.
type SavedSearchList []*models.SavedSearch

func (l SavedSearchList) Len() int { return len(l) }

func (l SavedSearchList) Headers(detailed bool) []string {
	if detailed {
		return []string{"Name", "Search", "Scheduled", "Cron", "Visible", "Alert Type", "Next Run"}
	}
	return []string{"Name", "Scheduled", "Next Run"}
}

func (l SavedSearchList) HeadersCSV() []string {
	return []string{"name", "search", "is_scheduled", "cron_schedule", "is_visible", "alert_type", "next_scheduled_time"}
}

func (l SavedSearchList) HeadersTable() []string { return l.Headers(false) }

func (l SavedSearchList) RowData(detailed bool) [][]string {
	rows := make([][]string, 0, len(l))
	for _, s := range l {
		if detailed {
			rows = append(rows, []string{
				s.Name, s.Search, boolStr(s.IsScheduled), deref(s.CronSchedule),
				boolStr(s.IsVisible), deref(s.AlertType), deref(s.NextScheduled),
			})
			continue
		}
		rows = append(rows, []string{s.Name, boolStr(s.IsScheduled), deref(s.NextScheduled)})
	}
	return rows
}

func (l SavedSearchList) XMLElementName() string { return "saved_search" }

func (l SavedSearchList) XMLFields() [][]XMLField {
	out := make([][]XMLField, 0, len(l))
	for _, s := range l {
		out = append(out, []XMLField{
			xmlField("name", s.Name),
			xmlField("search", s.Search),
			xmlField("is_scheduled", boolStr(s.IsScheduled)),
			xmlFieldPtr("cron_schedule", s.CronSchedule),
			xmlField("is_visible", boolStr(s.IsVisible)),
			xmlFieldPtr("alert_type", s.AlertType),
			xmlFieldPtr("next_scheduled_time", s.NextScheduled),
		})
	}
	return out
}

var _ ResourceDisplay = SavedSearchList{}

// FiredAlertList adapts the `fired-alerts` resource.
type FiredAlertList []*models.FiredAlert

func (l FiredAlertList) Len() int { return len(l) }

func (l FiredAlertList) Headers(bool) []string {
	return []string{"Name", "Saved Search", "Triggered", "Severity", "Expires"}
}

func (l FiredAlertList) HeadersCSV() []string {
	return []string{"name", "savedsearch_name", "trigger_time", "severity", "expiration_time"}
}

func (l FiredAlertList) HeadersTable() []string { return l.Headers(false) }

func (l FiredAlertList) RowData(bool) [][]string {
	rows := make([][]string, 0, len(l))
	for _, a := range l {
		rows = append(rows, []string{a.Name, a.SavedName, a.TriggerAt, intStr(a.Severity), deref(a.Expiration)})
	}
	return rows
}

func (l FiredAlertList) XMLElementName() string { return "fired_alert" }

func (l FiredAlertList) XMLFields() [][]XMLField {
	out := make([][]XMLField, 0, len(l))
	for _, a := range l {
		out = append(out, []XMLField{
			xmlField("name", a.Name),
			xmlField("savedsearch_name", a.SavedName),
			xmlField("trigger_time", a.TriggerAt),
			xmlField("severity", intStr(a.Severity)),
			xmlFieldPtr("expiration_time", a.Expiration),
		})
	}
	return out
}

var _ ResourceDisplay = FiredAlertList{}

// MacroList adapts the `macros` resource.
type MacroList []*models.Macro

func (l MacroList) Len() int { return len(l) }

func (l MacroList) Headers(detailed bool) []string {
	if detailed {
		return []string{"Name", "Definition", "Args", "Validation", "Disabled"}
	}
	return []string{"Name", "Definition", "Disabled"}
}

func (l MacroList) HeadersCSV() []string {
	return []string{"name", "definition", "args", "validation", "disabled"}
}

func (l MacroList) HeadersTable() []string { return l.Headers(false) }

func (l MacroList) RowData(detailed bool) [][]string {
	rows := make([][]string, 0, len(l))
	for _, m := range l {
		if detailed {
			rows = append(rows, []string{m.Name, m.Definition, deref(m.Args), deref(m.Validation), boolStr(m.IsDisabled)})
			continue
		}
		rows = append(rows, []string{m.Name, m.Definition, boolStr(m.IsDisabled)})
	}
	return rows
}

func (l MacroList) XMLElementName() string { return "macro" }

func (l MacroList) XMLFields() [][]XMLField {
	out := make([][]XMLField, 0, len(l))
	for _, m := range l {
		out = append(out, []XMLField{
			xmlField("name", m.Name),
			xmlField("definition", m.Definition),
			xmlFieldPtr("args", m.Args),
			xmlFieldPtr("validation", m.Validation),
			xmlField("disabled", boolStr(m.IsDisabled)),
		})
	}
	return out
}

var _ ResourceDisplay = MacroList{}
