package models

// User is a Splunk user (services/authentication/users).
type User struct {
	Name         string   `json:"name"`
	RealName     *string  `json:"realname,omitempty"`
	Email        *string  `json:"email,omitempty"`
	Roles        []string `json:"roles"`
	Type         string   `json:"type"`
	DefaultApp   *string  `json:"defaultApp,omitempty"`
	Locked       bool     `json:"locked-out"`
	LastLoginISO *string  `json:"last_successful_login,omitempty"`
}

func (u *User) SetName(name string) { u.Name = name }

// Role is a Splunk role (services/authorization/roles).
type Role struct {
	Name                string   `json:"name"`
	Capabilities        []string `json:"capabilities"`
	ImportedRoles       []string `json:"imported_roles,omitempty"`
	SrchIndexesAllowed  []string `json:"srchIndexesAllowed,omitempty"`
	SrchIndexesDefault  []string `json:"srchIndexesDefault,omitempty"`
	SrchJobsQuota       int      `json:"srchJobsQuota,omitempty"`
	SrchDiskQuotaMB     int      `json:"srchDiskQuota,omitempty"`
	RtSrchJobsQuota     int      `json:"rtSrchJobsQuota,omitempty"`
	CumulativeRtQuota   int      `json:"cumulativeRTSrchJobsQuota,omitempty"`
	CumulativeQuota     int      `json:"cumulativeSrchJobsQuota,omitempty"`
}

func (r *Role) SetName(name string) { r.Name = name }

// AuditEvent is a record from the internal audit index, surfaced via the
// `audit` subcommand/screen.
type AuditEvent struct {
	Name      string  `json:"name"`
	Timestamp string  `json:"_time"`
	Action    string  `json:"action"`
	User      string  `json:"user"`
	Info      string  `json:"info"`
	ObjectID  *string `json:"obj_id,omitempty"`
}

func (a *AuditEvent) SetName(name string) { a.Name = name }

// LogEntry is one row from a search over the _internal index, surfaced via
// the `internal-logs` screen.
type LogEntry struct {
	Name      string
	Time      string
	IndexTime string
	Level     string
	Component string
	Message   string
}

func (l *LogEntry) SetName(name string) { l.Name = name }
