package format

import (
	"sort"
	"strings"

	"github.com/fitchmultz/splunk-tui/internal/models"
)

// ConfigStanzaList adapts one .conf file's stanzas (the `configs` resource
// when a single file is selected).
type ConfigStanzaList []models.ConfigStanza

func (l ConfigStanzaList) Len() int { return len(l) }

func (l ConfigStanzaList) Headers(bool) []string { return []string{"Stanza", "Settings"} }

func (l ConfigStanzaList) HeadersCSV() []string { return []string{"name", "settings"} }

func (l ConfigStanzaList) HeadersTable() []string { return l.Headers(false) }

func (l ConfigStanzaList) RowData(bool) [][]string {
	rows := make([][]string, 0, len(l))
	for _, s := range l {
		rows = append(rows, []string{s.Name, formatSettings(s.Settings)})
	}
	return rows
}

func (l ConfigStanzaList) XMLElementName() string { return "stanza" }

func (l ConfigStanzaList) XMLFields() [][]XMLField {
	out := make([][]XMLField, 0, len(l))
	for _, s := range l {
		out = append(out, []XMLField{
			xmlField("name", s.Name),
			xmlField("settings", formatSettings(s.Settings)),
		})
	}
	return out
}

var _ ResourceDisplay = ConfigStanzaList{}

// ConfigFileList adapts the `list-all` config aggregation (spec.md §4.1i):
// every whitelisted .conf file, each with its own stanzas or fetch error.
type ConfigFileList []*models.ConfigFile

func (l ConfigFileList) Len() int { return len(l) }

func (l ConfigFileList) Headers(bool) []string { return []string{"File", "Stanzas", "Error"} }

func (l ConfigFileList) HeadersCSV() []string {
	return []string{"file_name", "stanza_count", "error"}
}

func (l ConfigFileList) HeadersTable() []string { return l.Headers(false) }

func (l ConfigFileList) RowData(bool) [][]string {
	rows := make([][]string, 0, len(l))
	for _, f := range l {
		rows = append(rows, []string{f.FileName, intStr(len(f.Stanzas)), f.Err})
	}
	return rows
}

func (l ConfigFileList) XMLElementName() string { return "config_file" }

func (l ConfigFileList) XMLFields() [][]XMLField {
	out := make([][]XMLField, 0, len(l))
	for _, f := range l {
		out = append(out, []XMLField{
			xmlField("file_name", f.FileName),
			xmlField("stanza_count", intStr(len(f.Stanzas))),
			xmlField("error", f.Err),
		})
	}
	return out
}

var _ ResourceDisplay = ConfigFileList{}

func formatSettings(settings map[string]string) string {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+settings[k])
	}
	return strings.Join(parts, ";")
}
