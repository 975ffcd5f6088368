package format

import "github.com/fitchmultz/splunk-tui/internal/models"

// AppList adapts the `apps` resource.
type AppList []*models.App

func (l AppList) Len() int { return len(l) }

func (l AppList) Headers(detailed bool) []string {
	if detailed {
		return []string{"Name", "Label", "Version", "Author", "Description", "Disabled", "Visible", "Configured", "Check for Updates"}
	}
	return []string{"Name", "Label", "Version", "Disabled"}
}

func (l AppList) HeadersCSV() []string {
	return []string{"name", "label", "version", "author", "description", "disabled", "visible", "configured", "check_for_updates"}
}

func (l AppList) HeadersTable() []string { return l.Headers(false) }

func (l AppList) RowData(detailed bool) [][]string {
	rows := make([][]string, 0, len(l))
	for _, a := range l {
		if detailed {
			rows = append(rows, []string{
				a.Name, deref(a.Label), deref(a.Version), deref(a.Author), deref(a.Description),
				boolStr(a.Disabled), boolStr(a.Visible), boolStr(a.Configured), boolStr(a.UpdateCheck),
			})
			continue
		}
		rows = append(rows, []string{a.Name, deref(a.Label), deref(a.Version), boolStr(a.Disabled)})
	}
	return rows
}

func (l AppList) XMLElementName() string { return "app" }

func (l AppList) XMLFields() [][]XMLField {
	out := make([][]XMLField, 0, len(l))
	for _, a := range l {
		out = append(out, []XMLField{
			xmlField("name", a.Name),
			xmlFieldPtr("label", a.Label),
			xmlFieldPtr("version", a.Version),
			xmlFieldPtr("author", a.Author),
			xmlFieldPtr("description", a.Description),
			xmlField("disabled", boolStr(a.Disabled)),
			xmlField("visible", boolStr(a.Visible)),
			xmlField("configured", boolStr(a.Configured)),
			xmlField("check_for_updates", boolStr(a.UpdateCheck)),
		})
	}
	return out
}

var _ ResourceDisplay = AppList{}

// ForwarderList adapts the `forwarders` resource.
type ForwarderList []*models.Forwarder

func (l ForwarderList) Len() int { return len(l) }

func (l ForwarderList) Headers(detailed bool) []string {
	if detailed {
		return []string{"Name", "GUID", "Connected", "Label", "Last Phone Home", "Build", "Version"}
	}
	return []string{"Name", "Connected", "Version"}
}

func (l ForwarderList) HeadersCSV() []string {
	return []string{"name", "guid", "connected", "label", "last_phone_home_time", "build", "version"}
}

func (l ForwarderList) HeadersTable() []string { return l.Headers(false) }

func (l ForwarderList) RowData(detailed bool) [][]string {
	rows := make([][]string, 0, len(l))
	for _, f := range l {
		if detailed {
			rows = append(rows, []string{
				f.Name, deref(f.GUID), boolStr(f.Connected), deref(f.Label),
				deref(f.LastPhoneHome), deref(f.Build), deref(f.Version),
			})
			continue
		}
		rows = append(rows, []string{f.Name, boolStr(f.Connected), deref(f.Version)})
	}
	return rows
}

func (l ForwarderList) XMLElementName() string { return "forwarder" }

func (l ForwarderList) XMLFields() [][]XMLField {
	out := make([][]XMLField, 0, len(l))
	for _, f := range l {
		out = append(out, []XMLField{
			xmlField("name", f.Name),
			xmlFieldPtr("guid", f.GUID),
			xmlField("connected", boolStr(f.Connected)),
			xmlFieldPtr("label", f.Label),
			xmlFieldPtr("last_phone_home_time", f.LastPhoneHome),
			xmlFieldPtr("build", f.Build),
			xmlFieldPtr("version", f.Version),
		})
	}
	return out
}

var _ ResourceDisplay = ForwarderList{}

// InputList adapts the `inputs` resource.
type InputList []*models.Input

func (l InputList) Len() int { return len(l) }

func (l InputList) Headers(detailed bool) []string {
	if detailed {
		return []string{"Name", "Kind", "Disabled", "Index", "Sourcetype", "Host"}
	}
	return []string{"Name", "Kind", "Disabled"}
}

func (l InputList) HeadersCSV() []string {
	return []string{"name", "kind", "disabled", "index", "sourcetype", "host"}
}

func (l InputList) HeadersTable() []string { return l.Headers(false) }

func (l InputList) RowData(detailed bool) [][]string {
	rows := make([][]string, 0, len(l))
	for _, i := range l {
		if detailed {
			rows = append(rows, []string{i.Name, i.Kind, boolStr(i.Disabled), deref(i.Index), deref(i.Sourcetype), deref(i.Host)})
			continue
		}
		rows = append(rows, []string{i.Name, i.Kind, boolStr(i.Disabled)})
	}
	return rows
}

func (l InputList) XMLElementName() string { return "input" }

func (l InputList) XMLFields() [][]XMLField {
	out := make([][]XMLField, 0, len(l))
	for _, i := range l {
		out = append(out, []XMLField{
			xmlField("name", i.Name),
			xmlField("kind", i.Kind),
			xmlField("disabled", boolStr(i.Disabled)),
			xmlFieldPtr("index", i.Index),
			xmlFieldPtr("sourcetype", i.Sourcetype),
			xmlFieldPtr("host", i.Host),
		})
	}
	return out
}

var _ ResourceDisplay = InputList{}

// LookupTableList adapts the `lookups` resource.
type LookupTableList []*models.LookupTable

func (l LookupTableList) Len() int { return len(l) }

func (l LookupTableList) Headers(bool) []string {
	return []string{"Name", "Filename", "Size (bytes)"}
}

func (l LookupTableList) HeadersCSV() []string {
	return []string{"name", "filename", "size"}
}

func (l LookupTableList) HeadersTable() []string { return l.Headers(false) }

func (l LookupTableList) RowData(bool) [][]string {
	rows := make([][]string, 0, len(l))
	for _, lt := range l {
		rows = append(rows, []string{lt.Name, lt.Filename, int64Str(lt.SizeBytes)})
	}
	return rows
}

func (l LookupTableList) XMLElementName() string { return "lookup_table" }

func (l LookupTableList) XMLFields() [][]XMLField {
	out := make([][]XMLField, 0, len(l))
	for _, lt := range l {
		out = append(out, []XMLField{
			xmlField("name", lt.Name),
			xmlField("filename", lt.Filename),
			xmlField("size", int64Str(lt.SizeBytes)),
		})
	}
	return out
}

var _ ResourceDisplay = LookupTableList{}

// SearchPeerList adapts the `search-peers` resource.
type SearchPeerList []*models.SearchPeer

func (l SearchPeerList) Len() int { return len(l) }

func (l SearchPeerList) Headers(detailed bool) []string {
	if detailed {
		return []string{"Name", "Peer Name", "Status", "HTTPS", "Version", "Replication Status"}
	}
	return []string{"Name", "Status", "Version"}
}

func (l SearchPeerList) HeadersCSV() []string {
	return []string{"name", "peer_name", "status", "is_https", "version", "replication_status"}
}

func (l SearchPeerList) HeadersTable() []string { return l.Headers(false) }

func (l SearchPeerList) RowData(detailed bool) [][]string {
	rows := make([][]string, 0, len(l))
	for _, p := range l {
		if detailed {
			rows = append(rows, []string{p.Name, p.PeerName, p.Status, boolStr(p.Healthy), p.Version, deref(p.ReplicationStatus)})
			continue
		}
		rows = append(rows, []string{p.Name, p.Status, p.Version})
	}
	return rows
}

func (l SearchPeerList) XMLElementName() string { return "search_peer" }

func (l SearchPeerList) XMLFields() [][]XMLField {
	out := make([][]XMLField, 0, len(l))
	for _, p := range l {
		out = append(out, []XMLField{
			xmlField("name", p.Name),
			xmlField("peer_name", p.PeerName),
			xmlField("status", p.Status),
			xmlField("is_https", boolStr(p.Healthy)),
			xmlField("version", p.Version),
			xmlFieldPtr("replication_status", p.ReplicationStatus),
		})
	}
	return out
}

var _ ResourceDisplay = SearchPeerList{}
