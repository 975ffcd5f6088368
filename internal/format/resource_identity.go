package format

import "github.com/fitchmultz/splunk-tui/internal/models"

// UserList adapts the `users` resource.
type UserList []*models.User

func (l UserList) Len() int { return len(l) }

func (l UserList) Headers(detailed bool) []string {
	if detailed {
		return []string{"Name", "Real Name", "Email", "Roles", "Type", "Default App", "Locked", "Last Login"}
	}
	return []string{"Name", "Roles", "Locked"}
}

func (l UserList) HeadersCSV() []string {
	return []string{"name", "realname", "email", "roles", "type", "default_app", "locked_out", "last_successful_login"}
}

func (l UserList) HeadersTable() []string { return l.Headers(false) }

func (l UserList) RowData(detailed bool) [][]string {
	rows := make([][]string, 0, len(l))
	for _, u := range l {
		if detailed {
			rows = append(rows, []string{
				u.Name, deref(u.RealName), deref(u.Email), joinCSVList(u.Roles),
				u.Type, deref(u.DefaultApp), boolStr(u.Locked), deref(u.LastLoginISO),
			})
			continue
		}
		rows = append(rows, []string{u.Name, joinCSVList(u.Roles), boolStr(u.Locked)})
	}
	return rows
}

func (l UserList) XMLElementName() string { return "user" }

func (l UserList) XMLFields() [][]XMLField {
	out := make([][]XMLField, 0, len(l))
	for _, u := range l {
		out = append(out, []XMLField{
			xmlField("name", u.Name),
			xmlFieldPtr("realname", u.RealName),
			xmlFieldPtr("email", u.Email),
			xmlField("roles", joinCSVList(u.Roles)),
			xmlField("type", u.Type),
			xmlFieldPtr("default_app", u.DefaultApp),
			xmlField("locked_out", boolStr(u.Locked)),
			xmlFieldPtr("last_successful_login", u.LastLoginISO),
		})
	}
	return out
}

var _ ResourceDisplay = UserList{}

// RoleList adapts the `roles` resource.
type RoleList []*models.Role

func (l RoleList) Len() int { return len(l) }

func (l RoleList) Headers(detailed bool) []string {
	if detailed {
		return []string{"Name", "Capabilities", "Imported Roles", "Search Indexes", "Default Indexes", "Search Jobs Quota", "Disk Quota (MB)"}
	}
	return []string{"Name", "Capabilities"}
}

func (l RoleList) HeadersCSV() []string {
	return []string{"name", "capabilities", "imported_roles", "srch_indexes_allowed", "srch_indexes_default", "srch_jobs_quota", "srch_disk_quota"}
}

func (l RoleList) HeadersTable() []string { return l.Headers(false) }

func (l RoleList) RowData(detailed bool) [][]string {
	rows := make([][]string, 0, len(l))
	for _, r := range l {
		if detailed {
			rows = append(rows, []string{
				r.Name, joinCSVList(r.Capabilities), joinCSVList(r.ImportedRoles),
				joinCSVList(r.SrchIndexesAllowed), joinCSVList(r.SrchIndexesDefault),
				intStr(r.SrchJobsQuota), intStr(r.SrchDiskQuotaMB),
			})
			continue
		}
		rows = append(rows, []string{r.Name, joinCSVList(r.Capabilities)})
	}
	return rows
}

func (l RoleList) XMLElementName() string { return "role" }

func (l RoleList) XMLFields() [][]XMLField {
	out := make([][]XMLField, 0, len(l))
	for _, r := range l {
		out = append(out, []XMLField{
			xmlField("name", r.Name),
			xmlField("capabilities", joinCSVList(r.Capabilities)),
			xmlField("imported_roles", joinCSVList(r.ImportedRoles)),
			xmlField("srch_indexes_allowed", joinCSVList(r.SrchIndexesAllowed)),
			xmlField("srch_indexes_default", joinCSVList(r.SrchIndexesDefault)),
			xmlField("srch_jobs_quota", intStr(r.SrchJobsQuota)),
			xmlField("srch_disk_quota", intStr(r.SrchDiskQuotaMB)),
		})
	}
	return out
}

var _ ResourceDisplay = RoleList{}

// AuditEventList adapts the `audit` resource.
type AuditEventList []*models.AuditEvent

func (l AuditEventList) Len() int { return len(l) }

func (l AuditEventList) Headers(bool) []string {
	return []string{"Time", "Action", "User", "Info", "Object ID"}
}

func (l AuditEventList) HeadersCSV() []string {
	return []string{"time", "action", "user", "info", "obj_id"}
}

func (l AuditEventList) HeadersTable() []string { return l.Headers(false) }

func (l AuditEventList) RowData(bool) [][]string {
	rows := make([][]string, 0, len(l))
	for _, e := range l {
		rows = append(rows, []string{e.Timestamp, e.Action, e.User, e.Info, deref(e.ObjectID)})
	}
	return rows
}

func (l AuditEventList) XMLElementName() string { return "audit_event" }

func (l AuditEventList) XMLFields() [][]XMLField {
	out := make([][]XMLField, 0, len(l))
	for _, e := range l {
		out = append(out, []XMLField{
			xmlField("time", e.Timestamp),
			xmlField("action", e.Action),
			xmlField("user", e.User),
			xmlField("info", e.Info),
			xmlFieldPtr("obj_id", e.ObjectID),
		})
	}
	return out
}

var _ ResourceDisplay = AuditEventList{}

// LogEntryList adapts the `internal-logs` screen's result rows.
type LogEntryList []*models.LogEntry

func (l LogEntryList) Len() int { return len(l) }

func (l LogEntryList) Headers(bool) []string {
	return []string{"Time", "Index Time", "Level", "Component", "Message"}
}

func (l LogEntryList) HeadersCSV() []string {
	return []string{"time", "index_time", "level", "component", "message"}
}

func (l LogEntryList) HeadersTable() []string { return l.Headers(false) }

func (l LogEntryList) RowData(bool) [][]string {
	rows := make([][]string, 0, len(l))
	for _, e := range l {
		rows = append(rows, []string{e.Time, e.IndexTime, e.Level, e.Component, e.Message})
	}
	return rows
}

func (l LogEntryList) XMLElementName() string { return "log_entry" }

func (l LogEntryList) XMLFields() [][]XMLField {
	out := make([][]XMLField, 0, len(l))
	for _, e := range l {
		out = append(out, []XMLField{
			xmlField("time", e.Time),
			xmlField("index_time", e.IndexTime),
			xmlField("level", e.Level),
			xmlField("component", e.Component),
			xmlField("message", e.Message),
		})
	}
	return out
}

var _ ResourceDisplay = LogEntryList{}
