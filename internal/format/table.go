package format

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true)
	tableFooterStyle = lipgloss.NewStyle().Faint(true)
)

const (
	minColumnWidth = 4
	columnGutter   = 2
)

// TerminalWidth returns the current stdout width, falling back to 80 when
// stdout isn't a terminal (piped output, redirected file).
func TerminalWidth() int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return 80
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// WriteTable renders d as a column-aligned table truncated to width, with
// a bold header row. isFirst controls header emission for a streaming
// tail, matching WriteCSV (spec.md §4.3).
func WriteTable(w io.Writer, d ResourceDisplay, detailed bool, width int, isFirst bool) error {
	if d.Len() == 0 {
		return nil
	}

	headers := d.HeadersTable()
	rows := d.RowData(detailed)
	widths := columnWidths(headers, rows, width)

	if isFirst {
		if err := writeTableRow(w, headers, widths, tableHeaderStyle); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := writeTableRow(w, row, widths, lipgloss.NewStyle()); err != nil {
			return err
		}
	}
	return nil
}

// WritePaginationFooter emits the "Showing X-Y of Z" (or "Showing X-Y"
// when the total is unknown) line. Table mode only (spec.md §4.3);
// machine-readable formats must never call this.
func WritePaginationFooter(w io.Writer, start, end int, total *int) error {
	var line string
	if total != nil {
		line = fmt.Sprintf("Showing %d-%d of %d", start, end, *total)
	} else {
		line = fmt.Sprintf("Showing %d-%d", start, end)
	}
	_, err := fmt.Fprintln(w, tableFooterStyle.Render(line))
	return err
}

func columnWidths(headers []string, rows [][]string, totalWidth int) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}
			if l := len(cell); l > widths[i] {
				widths[i] = l
			}
		}
	}

	budget := totalWidth - columnGutter*(len(widths)-1)
	if budget <= 0 {
		return widths
	}
	sum := 0
	for _, wd := range widths {
		sum += wd
	}
	if sum <= budget {
		return widths
	}

	// Shrink proportionally until the row fits, never below minColumnWidth.
	for sum > budget {
		shrunkAny := false
		for i := range widths {
			if widths[i] > minColumnWidth {
				widths[i]--
				sum--
				shrunkAny = true
				if sum <= budget {
					break
				}
			}
		}
		if !shrunkAny {
			break
		}
	}
	return widths
}

func writeTableRow(w io.Writer, cells []string, widths []int, style lipgloss.Style) error {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		width := minColumnWidth
		if i < len(widths) {
			width = widths[i]
		}
		parts[i] = style.Render(padOrTruncate(cell, width))
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, strings.Repeat(" ", columnGutter)))
	return err
}

func padOrTruncate(s string, width int) string {
	if len(s) > width {
		if width <= 1 {
			return s[:width]
		}
		return s[:width-1] + "…"
	}
	return s + strings.Repeat(" ", width-len(s))
}
