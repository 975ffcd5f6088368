package models

// ConfigStanza is one [stanza] section of a Splunk .conf file.
type ConfigStanza struct {
	Name     string            `json:"name"`
	Settings map[string]string `json:"settings"`
}

func (c *ConfigStanza) SetName(name string) { c.Name = name }

// ConfigFile aggregates all stanzas discovered for one .conf file name, as
// produced by ListAllConfigStanzas (spec §4.1i). Err is non-nil when this
// particular file's fetch failed; the aggregate as a whole still succeeds.
type ConfigFile struct {
	FileName string         `json:"file_name"`
	Stanzas  []ConfigStanza `json:"stanzas"`
	Err      string         `json:"error,omitempty"`
}

// ConfigFileWhitelist is the curated set of .conf files the aggregator
// iterates (spec §4.1i). Order is preserved in output.
var ConfigFileWhitelist = []string{
	"props",
	"transforms",
	"inputs",
	"outputs",
	"server",
	"indexes",
	"savedsearches",
	"authentication",
	"authorize",
	"distsearch",
	"limits",
	"web",
}
