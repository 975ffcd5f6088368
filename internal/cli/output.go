package cli

import (
	"io"
	"os"

	"github.com/gravitational/trace"

	"github.com/fitchmultz/splunk-tui/internal/format"
)

// Output resolves where rendered results go and in which shape, shared by
// every resource command (spec.md §4.3, §4.6 --output/--output-file).
type Output struct {
	Format string // "table" (default), "json", "ndjson", "csv", "xml"
	Writer io.Writer
	closer io.Closer
}

// NewOutput opens outputFile (if set) and defaults formatFlag to "table".
func NewOutput(formatFlag, outputFile string, stdout io.Writer) (*Output, error) {
	w := stdout
	var closer io.Closer
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return nil, trace.Wrap(err, "creating output file %q", outputFile)
		}
		w, closer = f, f
	}
	if formatFlag == "" {
		formatFlag = "table"
	}
	return &Output{Format: formatFlag, Writer: w, closer: closer}, nil
}

// Close releases the output file, if one was opened. A no-op for stdout.
func (o *Output) Close() error {
	if o.closer == nil {
		return nil
	}
	return o.closer.Close()
}

// RenderList writes items, a freshly fetched resource slice, in the
// selected format. wrap adapts items into the format.ResourceDisplay the
// non-JSON renderers need; JSON/NDJSON bypass ResourceDisplay entirely and
// encode items directly through their own encoding/json tags.
func RenderList[T any](out *Output, items []T, wrap func([]T) format.ResourceDisplay, xmlRoot string) error {
	switch out.Format {
	case "json":
		return format.WriteJSON(out.Writer, items)
	case "ndjson":
		return format.WriteNDJSON(out.Writer, items)
	case "csv":
		return format.WriteCSV(out.Writer, wrap(items), true)
	case "xml":
		return format.WriteXML(out.Writer, wrap(items), xmlRoot, true, true)
	default:
		d := wrap(items)
		if err := format.WriteTable(out.Writer, d, false, format.TerminalWidth(), true); err != nil {
			return err
		}
		total := d.Len()
		return format.WritePaginationFooter(out.Writer, min1(total), total, &total)
	}
}

// RenderOne writes a single resource (health, cluster status, kvstore
// status) in the selected format.
func RenderOne[T any](out *Output, item T, wrap func(T) format.ResourceDisplay, xmlRoot string) error {
	switch out.Format {
	case "json":
		return format.WriteJSON(out.Writer, item)
	case "ndjson":
		return format.WriteNDJSON(out.Writer, []T{item})
	case "csv":
		return format.WriteCSV(out.Writer, wrap(item), true)
	case "xml":
		return format.WriteXML(out.Writer, wrap(item), xmlRoot, true, true)
	default:
		return format.WriteTable(out.Writer, wrap(item), false, format.TerminalWidth(), true)
	}
}

func min1(total int) int {
	if total == 0 {
		return 0
	}
	return 1
}

// paginate slices items to the requested offset/count window. count <= 0
// means "no limit".
func paginate[T any](items []T, offset, count int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset > len(items) {
		return items[:0]
	}
	items = items[offset:]
	if count > 0 && count < len(items) {
		items = items[:count]
	}
	return items
}
