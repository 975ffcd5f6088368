package format

import "github.com/fitchmultz/splunk-tui/internal/models"

// ClusterStatusList adapts the `cluster` resource.
type ClusterStatusList []*models.ClusterStatus

func (l ClusterStatusList) Len() int { return len(l) }

func (l ClusterStatusList) Headers(detailed bool) []string {
	if detailed {
		return []string{"Name", "Label", "Mode", "Rolling Restart", "Service Ready", "Replication Factor", "Search Factor"}
	}
	return []string{"Name", "Mode", "Service Ready"}
}

func (l ClusterStatusList) HeadersCSV() []string {
	return []string{"name", "label", "mode", "rolling_restart_flag", "service_ready_flag", "replication_factor", "search_factor"}
}

func (l ClusterStatusList) HeadersTable() []string { return l.Headers(false) }

func (l ClusterStatusList) RowData(detailed bool) [][]string {
	rows := make([][]string, 0, len(l))
	for _, c := range l {
		if detailed {
			rows = append(rows, []string{
				c.Name, deref(c.Label), c.Mode, boolStr(c.RollingRestart), boolStr(c.ServiceReady),
				intStr(c.ReplicationFactor), intStr(c.SearchFactor),
			})
			continue
		}
		rows = append(rows, []string{c.Name, c.Mode, boolStr(c.ServiceReady)})
	}
	return rows
}

func (l ClusterStatusList) XMLElementName() string { return "cluster_status" }

func (l ClusterStatusList) XMLFields() [][]XMLField {
	out := make([][]XMLField, 0, len(l))
	for _, c := range l {
		out = append(out, []XMLField{
			xmlField("name", c.Name),
			xmlFieldPtr("label", c.Label),
			xmlField("mode", c.Mode),
			xmlField("rolling_restart_flag", boolStr(c.RollingRestart)),
			xmlField("service_ready_flag", boolStr(c.ServiceReady)),
			xmlField("replication_factor", intStr(c.ReplicationFactor)),
			xmlField("search_factor", intStr(c.SearchFactor)),
		})
	}
	return out
}

var _ ResourceDisplay = ClusterStatusList{}
