package models

// LicenseUsage is a slice of license consumption (services/licenser/usage).
type LicenseUsage struct {
	Name        string `json:"name"`
	PoolID      string `json:"pool_id,omitempty"`
	SlavesUsage string `json:"slaves_usage,omitempty"`
	QuotaBytes  int64  `json:"quota,omitempty"`
	UsedBytes   int64  `json:"used_bytes"`
}

func (l *LicenseUsage) SetName(name string) { l.Name = name }

// LicensePool is a Splunk license pool (services/licenser/pools).
type LicensePool struct {
	Name        string  `json:"name"`
	StackID     string  `json:"stack_id"`
	QuotaBytes  int64   `json:"quota"`
	UsedBytes   int64   `json:"used_bytes"`
	Description *string `json:"description,omitempty"`
}

func (l *LicensePool) SetName(name string) { l.Name = name }

// LicenseStack describes a license stack (services/licenser/stacks).
type LicenseStack struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	QuotaBytes int64  `json:"quota"`
}

func (l *LicenseStack) SetName(name string) { l.Name = name }

// KvStoreStatus is the result of services/kvstore/status.
type KvStoreStatus struct {
	Name             string `json:"name"`
	Status           string `json:"current,omitempty"`
	ReplicationState string `json:"replicationState,omitempty"`
	ReplicaSetSize   int    `json:"replicaSetSize,omitempty"`
	Backend          string `json:"backend,omitempty"`
	Port             int    `json:"port,omitempty"`
}

func (k *KvStoreStatus) SetName(name string) { k.Name = name }

// HecEvent is a single event submitted to the HTTP Event Collector.
type HecEvent struct {
	Time       *float64       `json:"time,omitempty"`
	Host       string         `json:"host,omitempty"`
	Source     string         `json:"source,omitempty"`
	SourceType string         `json:"sourcetype,omitempty"`
	Index      string         `json:"index,omitempty"`
	Event      any            `json:"event"`
	Fields     map[string]any `json:"fields,omitempty"`
}

// HecResponse is the HEC acknowledgement envelope.
type HecResponse struct {
	Text    string `json:"text"`
	Code    int    `json:"code"`
	AckID   *int64 `json:"ackId,omitempty"`
}

// HealthCheckOutput is the decoded result of services/server/health/splunkd
// probes, flattened for display.
type HealthCheckOutput struct {
	Name     string              `json:"name"`
	Health   string              `json:"health"`
	Features map[string]FeatureHealth `json:"features,omitempty"`
}

func (h *HealthCheckOutput) SetName(name string) { h.Name = name }

// FeatureHealth is one entry under HealthCheckOutput.Features.
type FeatureHealth struct {
	Health  string `json:"health"`
	Reason  string `json:"reason,omitempty"`
}

// ClusterStatus is the decoded result of services/cluster/config/status,
// covering both indexer-clustering ("manager"/"peer") and search-head-
// clustering ("captain"/"member") roles under one flattened shape.
type ClusterStatus struct {
	Name           string `json:"name"`
	Label          *string `json:"label,omitempty"`
	Mode           string  `json:"mode,omitempty"`
	RollingRestart bool    `json:"rolling_restart_flag,omitempty"`
	ServiceReady   bool    `json:"service_ready_flag,omitempty"`
	ReplicationFactor int  `json:"replication_factor,omitempty"`
	SearchFactor   int     `json:"search_factor,omitempty"`
}

func (c *ClusterStatus) SetName(name string) { c.Name = name }
