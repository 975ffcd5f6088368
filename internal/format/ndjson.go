package format

import (
	"encoding/json"
	"io"

	"github.com/gravitational/trace"
)

// WriteNDJSON writes one compact JSON object per line with no enclosing
// array. A streaming tail ignores is_first here: NDJSON framing is
// identical whether this batch is the first or a continuation (spec.md
// §4.3, "JSON streaming ignores the flag").
func WriteNDJSON[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return trace.Wrap(err)
		}
	}
	return nil
}
