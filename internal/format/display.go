// Package format renders typed resource slices into the five output
// formats the CLI and TUI export offer (spec.md §4.3): JSON, NDJSON, CSV,
// Table, and XML.
package format

// XMLField is one attribute or child element emitted for a resource by the
// XML formatter. Value is nil when the server omitted the field, matching
// the JSON encoder's omitempty convention.
type XMLField struct {
	Name  string
	Value *string
}

// ResourceDisplay is implemented once per model slice type (e.g. a named
// []*models.Index) so the CSV, Table, and XML formatters can render any
// resource kind without per-resource special-casing. JSON and NDJSON
// instead rely on the underlying type's own encoding/json tags.
type ResourceDisplay interface {
	// Headers returns the column names for the given detail level.
	// detailed=false is the terse summary view; detailed=true includes
	// every field the resource carries.
	Headers(detailed bool) []string
	// HeadersCSV returns the CSV header row, independent of detail level
	// (CSV always emits every column to keep downstream parsing stable).
	HeadersCSV() []string
	// HeadersTable returns the Table header row, which may differ in
	// casing/abbreviation from HeadersCSV for terminal readability.
	HeadersTable() []string
	// RowData returns one row of string cells per item in the underlying
	// slice, each row in header order.
	RowData(detailed bool) [][]string
	// Len reports how many items the underlying slice holds.
	Len() int
	// XMLElementName names the per-item XML element, e.g. "index".
	XMLElementName() string
	// XMLFields returns the fields to emit as child elements, one slice
	// per item in the underlying slice.
	XMLFields() [][]XMLField
}
