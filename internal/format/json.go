package format

import (
	"encoding/json"
	"io"

	"github.com/gravitational/trace"
)

// WriteJSON pretty-prints items as a single JSON array. items must be a
// slice value (e.g. []*models.Index); it is encoded with its own
// encoding/json tags rather than through ResourceDisplay.
func WriteJSON(w io.Writer, items any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return trace.Wrap(err)
	}
	return nil
}
