package format

import (
	"strings"

	"github.com/gravitational/trace"
)

// Format is a closed set of output encodings selectable via CLI flag or
// TUI export popup (spec.md §4.3).
type Format int

const (
	JSON Format = iota
	NDJSON
	CSV
	Table
	XML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case NDJSON:
		return "ndjson"
	case CSV:
		return "csv"
	case Table:
		return "table"
	case XML:
		return "xml"
	default:
		return "unknown"
	}
}

// Extension returns the file extension used to seed an export filename.
func (f Format) Extension() string {
	switch f {
	case JSON:
		return "json"
	case NDJSON:
		return "ndjson"
	case CSV:
		return "csv"
	case Table:
		return "txt"
	case XML:
		return "xml"
	default:
		return "txt"
	}
}

// Parse resolves a case-insensitive format name to a Format, accepting
// "jsonl" as a synonym for ndjson. Unknown names fail with a message
// listing the valid options.
func Parse(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, nil
	case "ndjson", "jsonl":
		return NDJSON, nil
	case "csv":
		return CSV, nil
	case "table":
		return Table, nil
	case "xml":
		return XML, nil
	default:
		return 0, trace.BadParameter("unknown format %q: valid options are json, ndjson, csv, table, xml", name)
	}
}
