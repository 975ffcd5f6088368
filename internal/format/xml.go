package format

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/gravitational/trace"
)

// WriteXML renders d as a typed element tree under rootElement, one child
// element named d.XMLElementName() per item, one grandchild element per
// XMLField. Values are escaped through encoding/xml so special characters
// never corrupt the document.
//
// isFirst/isLast bracket a streaming tail (spec.md §4.3): isFirst emits
// the declaration and the opening root tag, isLast emits the closing root
// tag. A non-streaming caller passes true for both.
func WriteXML(w io.Writer, d ResourceDisplay, rootElement string, isFirst, isLast bool) error {
	if isFirst {
		if _, err := io.WriteString(w, xml.Header); err != nil {
			return trace.Wrap(err)
		}
		if _, err := fmt.Fprintf(w, "<%s>\n", rootElement); err != nil {
			return trace.Wrap(err)
		}
	}

	elem := d.XMLElementName()
	for _, fields := range d.XMLFields() {
		if _, err := fmt.Fprintf(w, "  <%s>\n", elem); err != nil {
			return trace.Wrap(err)
		}
		for _, f := range fields {
			if f.Value == nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "    <%s>", f.Name); err != nil {
				return trace.Wrap(err)
			}
			if err := xml.EscapeText(w, []byte(*f.Value)); err != nil {
				return trace.Wrap(err)
			}
			if _, err := fmt.Fprintf(w, "</%s>\n", f.Name); err != nil {
				return trace.Wrap(err)
			}
		}
		if _, err := fmt.Fprintf(w, "  </%s>\n", elem); err != nil {
			return trace.Wrap(err)
		}
	}

	if isLast {
		if _, err := fmt.Fprintf(w, "</%s>\n", rootElement); err != nil {
			return trace.Wrap(err)
		}
	}
	return nil
}
