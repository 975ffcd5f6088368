package format

import "github.com/fitchmultz/splunk-tui/internal/models"

// IndexList adapts a slice of indexes to ResourceDisplay, grounded on
// original_source/crates/cli/src/formatters/resource_impls/apps.rs's
// per-resource-file layout.
type IndexList []*models.Index

func (l IndexList) Len() int { return len(l) }

func (l IndexList) Headers(detailed bool) []string {
	if detailed {
		return []string{"Name", "Events", "Size (MB)", "Max Size (MB)", "Disabled", "Frozen (s)", "Home Path", "Cold Path", "Thawed Path", "Min Time", "Max Time"}
	}
	return []string{"Name", "Events", "Size (MB)", "Disabled"}
}

func (l IndexList) HeadersCSV() []string {
	return []string{"name", "total_event_count", "current_db_size_mb", "max_total_data_size_mb", "disabled", "frozen_time_period_secs", "home_path", "cold_path", "thawed_path", "min_time", "max_time"}
}

func (l IndexList) HeadersTable() []string { return l.Headers(false) }

func (l IndexList) RowData(detailed bool) [][]string {
	rows := make([][]string, 0, len(l))
	for _, idx := range l {
		if detailed {
			rows = append(rows, []string{
				idx.Name,
				int64Str(idx.TotalEventCount),
				int64Str(idx.CurrentDBSizeMB),
				int64Str(idx.MaxTotalDataSize),
				boolStr(idx.Disabled),
				intStr(idx.FrozenTimePeriodSecs),
				idx.HomePath,
				idx.ColdPath,
				idx.ThawedPath,
				deref(idx.MinTime),
				deref(idx.MaxTime),
			})
			continue
		}
		rows = append(rows, []string{
			idx.Name,
			int64Str(idx.TotalEventCount),
			int64Str(idx.CurrentDBSizeMB),
			boolStr(idx.Disabled),
		})
	}
	return rows
}

func (l IndexList) XMLElementName() string { return "index" }

func (l IndexList) XMLFields() [][]XMLField {
	out := make([][]XMLField, 0, len(l))
	for _, idx := range l {
		out = append(out, []XMLField{
			xmlField("name", idx.Name),
			xmlField("total_event_count", int64Str(idx.TotalEventCount)),
			xmlField("current_db_size_mb", int64Str(idx.CurrentDBSizeMB)),
			xmlField("max_total_data_size_mb", int64Str(idx.MaxTotalDataSize)),
			xmlField("disabled", boolStr(idx.Disabled)),
			xmlField("home_path", idx.HomePath),
			xmlField("cold_path", idx.ColdPath),
			xmlField("thawed_path", idx.ThawedPath),
			xmlFieldPtr("min_time", idx.MinTime),
			xmlFieldPtr("max_time", idx.MaxTime),
		})
	}
	return out
}

var _ ResourceDisplay = IndexList{}
