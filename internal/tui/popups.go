package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fitchmultz/splunk-tui/internal/tui/action"
)

var popupBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

// renderPopup renders whatever popup is currently open over the active
// screen. Each popup gets its own render function rather than its own
// file: the set is small, every popup is a handful of lines, and keeping
// them together makes the depth-1 stack invariant (exactly one popup ever
// rendered) easy to see in one place.
func renderPopup(app App) string {
	var body string
	switch app.Popup {
	case action.PopupHelp:
		body = renderHelpPopup(app)
	case action.PopupConfirmCancel:
		body = "cancel this job? (y/n)"
	case action.PopupConfirmDelete:
		body = "delete this item? this cannot be undone. (y/n)"
	case action.PopupCreate:
		body = "create new " + app.Screen.String()
	case action.PopupModify:
		body = "modify " + app.Screen.String()
	case action.PopupDelete:
		body = "delete " + app.Screen.String()
	case action.PopupIndexDetails:
		body = renderIndexDetailsPopup(app)
	case action.PopupExportSearch:
		body = renderExportPopup(app)
	case action.PopupErrorDetails:
		body = renderErrorDetailsPopup(app)
	case action.PopupProfileSelector:
		body = renderProfileSelectorPopup(app)
	case action.PopupInstallApp:
		body = "install app: enter a path on the server"
	case action.PopupUndoHistory:
		body = "undo history is not available for this session"
	default:
		return ""
	}
	return popupBoxStyle.Render(body)
}

func renderHelpPopup(app App) string {
	var b strings.Builder
	b.WriteString("keybindings\n")
	b.WriteString(helpLine(app))
	return b.String()
}

func renderIndexDetailsPopup(app App) string {
	if app.Indexes.Items == nil {
		return "no index selected"
	}
	return fmt.Sprintf("%d indexes loaded; select one to see detail", len(app.Indexes.Items))
}

func renderExportPopup(app App) string {
	return fmt.Sprintf("export %s as %s to %s", app.Export.Target, app.Export.Format, app.Export.SeededFilename())
}

func renderErrorDetailsPopup(app App) string {
	if len(app.Toasts) == 0 {
		return "no error to show"
	}
	return app.Toasts[len(app.Toasts)-1].Message
}

func renderProfileSelectorPopup(app App) string {
	var b strings.Builder
	b.WriteString("select a profile:\n")
	for _, name := range app.Catalog {
		prefix := "  "
		if name == app.Profile {
			prefix = "> "
		}
		b.WriteString(prefix + name + "\n")
	}
	return b.String()
}
