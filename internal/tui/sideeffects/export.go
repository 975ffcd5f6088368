package sideeffects

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fitchmultz/splunk-tui/internal/format"
	"github.com/fitchmultz/splunk-tui/internal/tui/action"
	"github.com/fitchmultz/splunk-tui/internal/tui/export"
)

// WriteExport wraps export.Write as a Cmd, reporting the outcome as
// ExportComplete rather than returning the error directly so the popup can
// close itself and surface a toast through the normal reducer path.
func WriteExport(path string, state export.State, data format.ResourceDisplay) tea.Cmd {
	return func() tea.Msg {
		err := export.Write(path, state, data)
		return action.ExportComplete{Path: path, Err: err}
	}
}
