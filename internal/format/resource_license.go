package format

import "github.com/fitchmultz/splunk-tui/internal/models"

// LicenseUsageList adapts the `license` resource's usage view.
type LicenseUsageList []*models.LicenseUsage

func (l LicenseUsageList) Len() int { return len(l) }

func (l LicenseUsageList) Headers(detailed bool) []string {
	if detailed {
		return []string{"Name", "Pool", "Slaves Usage", "Quota (bytes)", "Used (bytes)"}
	}
	return []string{"Name", "Pool", "Used (bytes)", "Quota (bytes)"}
}

func (l LicenseUsageList) HeadersCSV() []string {
	return []string{"name", "pool_id", "slaves_usage", "quota", "used_bytes"}
}

func (l LicenseUsageList) HeadersTable() []string { return l.Headers(false) }

func (l LicenseUsageList) RowData(detailed bool) [][]string {
	rows := make([][]string, 0, len(l))
	for _, u := range l {
		if detailed {
			rows = append(rows, []string{u.Name, u.PoolID, u.SlavesUsage, int64Str(u.QuotaBytes), int64Str(u.UsedBytes)})
			continue
		}
		rows = append(rows, []string{u.Name, u.PoolID, int64Str(u.UsedBytes), int64Str(u.QuotaBytes)})
	}
	return rows
}

func (l LicenseUsageList) XMLElementName() string { return "license_usage" }

func (l LicenseUsageList) XMLFields() [][]XMLField {
	out := make([][]XMLField, 0, len(l))
	for _, u := range l {
		out = append(out, []XMLField{
			xmlField("name", u.Name),
			xmlField("pool_id", u.PoolID),
			xmlField("slaves_usage", u.SlavesUsage),
			xmlField("quota", int64Str(u.QuotaBytes)),
			xmlField("used_bytes", int64Str(u.UsedBytes)),
		})
	}
	return out
}

var _ ResourceDisplay = LicenseUsageList{}

// LicensePoolList adapts the `license` resource's pools view.
type LicensePoolList []*models.LicensePool

func (l LicensePoolList) Len() int { return len(l) }

func (l LicensePoolList) Headers(detailed bool) []string {
	if detailed {
		return []string{"Name", "Stack", "Quota (bytes)", "Used (bytes)", "Description"}
	}
	return []string{"Name", "Stack", "Used (bytes)"}
}

func (l LicensePoolList) HeadersCSV() []string {
	return []string{"name", "stack_id", "quota", "used_bytes", "description"}
}

func (l LicensePoolList) HeadersTable() []string { return l.Headers(false) }

func (l LicensePoolList) RowData(detailed bool) [][]string {
	rows := make([][]string, 0, len(l))
	for _, p := range l {
		if detailed {
			rows = append(rows, []string{p.Name, p.StackID, int64Str(p.QuotaBytes), int64Str(p.UsedBytes), deref(p.Description)})
			continue
		}
		rows = append(rows, []string{p.Name, p.StackID, int64Str(p.UsedBytes)})
	}
	return rows
}

func (l LicensePoolList) XMLElementName() string { return "license_pool" }

func (l LicensePoolList) XMLFields() [][]XMLField {
	out := make([][]XMLField, 0, len(l))
	for _, p := range l {
		out = append(out, []XMLField{
			xmlField("name", p.Name),
			xmlField("stack_id", p.StackID),
			xmlField("quota", int64Str(p.QuotaBytes)),
			xmlField("used_bytes", int64Str(p.UsedBytes)),
			xmlFieldPtr("description", p.Description),
		})
	}
	return out
}

var _ ResourceDisplay = LicensePoolList{}

// LicenseStackList adapts the `license` resource's stacks view.
type LicenseStackList []*models.LicenseStack

func (l LicenseStackList) Len() int { return len(l) }

func (l LicenseStackList) Headers(bool) []string { return []string{"Name", "Type", "Quota (bytes)"} }

func (l LicenseStackList) HeadersCSV() []string { return []string{"name", "type", "quota"} }

func (l LicenseStackList) HeadersTable() []string { return l.Headers(false) }

func (l LicenseStackList) RowData(bool) [][]string {
	rows := make([][]string, 0, len(l))
	for _, s := range l {
		rows = append(rows, []string{s.Name, s.Type, int64Str(s.QuotaBytes)})
	}
	return rows
}

func (l LicenseStackList) XMLElementName() string { return "license_stack" }

func (l LicenseStackList) XMLFields() [][]XMLField {
	out := make([][]XMLField, 0, len(l))
	for _, s := range l {
		out = append(out, []XMLField{
			xmlField("name", s.Name),
			xmlField("type", s.Type),
			xmlField("quota", int64Str(s.QuotaBytes)),
		})
	}
	return out
}

var _ ResourceDisplay = LicenseStackList{}

// KvStoreStatusList adapts the `kvstore` resource (typically a singleton
// slice, but the interface stays uniform with every other resource kind).
type KvStoreStatusList []*models.KvStoreStatus

func (l KvStoreStatusList) Len() int { return len(l) }

func (l KvStoreStatusList) Headers(bool) []string {
	return []string{"Status", "Replication State", "Replica Set Size", "Backend", "Port"}
}

func (l KvStoreStatusList) HeadersCSV() []string {
	return []string{"current", "replicationState", "replicaSetSize", "backend", "port"}
}

func (l KvStoreStatusList) HeadersTable() []string { return l.Headers(false) }

func (l KvStoreStatusList) RowData(bool) [][]string {
	rows := make([][]string, 0, len(l))
	for _, k := range l {
		rows = append(rows, []string{k.Status, k.ReplicationState, intStr(k.ReplicaSetSize), k.Backend, intStr(k.Port)})
	}
	return rows
}

func (l KvStoreStatusList) XMLElementName() string { return "kvstore_status" }

func (l KvStoreStatusList) XMLFields() [][]XMLField {
	out := make([][]XMLField, 0, len(l))
	for _, k := range l {
		out = append(out, []XMLField{
			xmlField("current", k.Status),
			xmlField("replicationState", k.ReplicationState),
			xmlField("replicaSetSize", intStr(k.ReplicaSetSize)),
			xmlField("backend", k.Backend),
			xmlField("port", intStr(k.Port)),
		})
	}
	return out
}

var _ ResourceDisplay = KvStoreStatusList{}

// HealthCheckList adapts the `health` resource.
type HealthCheckList []*models.HealthCheckOutput

func (l HealthCheckList) Len() int { return len(l) }

func (l HealthCheckList) Headers(bool) []string { return []string{"Name", "Health", "Features"} }

func (l HealthCheckList) HeadersCSV() []string { return []string{"name", "health", "feature_count"} }

func (l HealthCheckList) HeadersTable() []string { return l.Headers(false) }

func (l HealthCheckList) RowData(bool) [][]string {
	rows := make([][]string, 0, len(l))
	for _, h := range l {
		rows = append(rows, []string{h.Name, h.Health, intStr(len(h.Features))})
	}
	return rows
}

func (l HealthCheckList) XMLElementName() string { return "health" }

func (l HealthCheckList) XMLFields() [][]XMLField {
	out := make([][]XMLField, 0, len(l))
	for _, h := range l {
		out = append(out, []XMLField{
			xmlField("name", h.Name),
			xmlField("health", h.Health),
			xmlField("feature_count", intStr(len(h.Features))),
		})
	}
	return out
}

var _ ResourceDisplay = HealthCheckList{}
