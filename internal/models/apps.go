package models

// App is an installed Splunk app (services/apps/local).
type App struct {
	Name        string  `json:"name"`
	Label       *string `json:"label,omitempty"`
	Version     *string `json:"version,omitempty"`
	Author      *string `json:"author,omitempty"`
	Description *string `json:"description,omitempty"`
	Disabled    bool    `json:"disabled"`
	Visible     bool    `json:"visible"`
	Configured  bool    `json:"configured"`
	UpdateCheck bool    `json:"check_for_updates"`
}

func (a *App) SetName(name string) { a.Name = name }

// Forwarder is a universal/heavy forwarder registered with this instance
// (services/deployment or services/search/distributed/peers, depending on
// deployment topology).
type Forwarder struct {
	Name         string  `json:"name"`
	GUID         *string `json:"guid,omitempty"`
	Connected    bool    `json:"connected"`
	Label        *string `json:"label,omitempty"`
	LastPhoneHome *string `json:"lastPhoneHomeTime,omitempty"`
	Build        *string `json:"build,omitempty"`
	Version      *string `json:"version,omitempty"`
}

func (f *Forwarder) SetName(name string) { f.Name = name }

// Input is a data input definition (services/data/inputs/*).
type Input struct {
	Name     string  `json:"name"`
	Kind     string  `json:"kind"`
	Disabled bool    `json:"disabled"`
	Index    *string `json:"index,omitempty"`
	Sourcetype *string `json:"sourcetype,omitempty"`
	Host     *string `json:"host,omitempty"`
}

func (i *Input) SetName(name string) { i.Name = name }

// LookupTable describes a CSV/KV lookup definition
// (services/data/lookup-table-files).
type LookupTable struct {
	Name      string `json:"name"`
	Filename  string `json:"filename"`
	SizeBytes int64  `json:"size,omitempty"`
	EAI_ACL   *ACL   `json:"eai:acl,omitempty"`
}

func (l *LookupTable) SetName(name string) { l.Name = name }

// ACL is Splunk's entry access-control block, included verbatim on several
// resource kinds.
type ACL struct {
	Owner     string `json:"owner,omitempty"`
	App       string `json:"app,omitempty"`
	Sharing   string `json:"sharing,omitempty"`
	CanWrite  bool   `json:"can_write,omitempty"`
}

// SearchPeer is a member of a distributed-search topology
// (services/search/distributed/peers).
type SearchPeer struct {
	Name       string `json:"name"`
	PeerName   string `json:"peerName,omitempty"`
	Status     string `json:"status"`
	Healthy    bool   `json:"is_https"`
	Version    string `json:"version,omitempty"`
	ReplicationStatus *string `json:"replicationStatus,omitempty"`
}

func (s *SearchPeer) SetName(name string) { s.Name = name }
