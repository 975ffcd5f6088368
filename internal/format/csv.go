package format

import (
	"encoding/csv"
	"io"

	"github.com/gravitational/trace"
)

// WriteCSV renders d through Go's encoding/csv. No third-party CSV writer
// appears anywhere in the surrounding stack, so the standard library is
// used directly here rather than introducing a dependency for a single
// thin wrapper around comma-escaping.
//
// isFirst controls header emission for a streaming tail (spec.md §4.3):
// the header row is written only on the first non-empty batch.
func WriteCSV(w io.Writer, d ResourceDisplay, isFirst bool) error {
	if d.Len() == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	if isFirst {
		if err := cw.Write(d.HeadersCSV()); err != nil {
			return trace.Wrap(err)
		}
	}
	for _, row := range d.RowData(true) {
		if err := cw.Write(row); err != nil {
			return trace.Wrap(err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return trace.Wrap(err)
	}
	return nil
}
