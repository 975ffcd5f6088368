// Package keymap adapts the config layer's flat key=>action map into
// charmbracelet/bubbles key.Binding values the TUI's Update function
// matches input against.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/fitchmultz/splunk-tui/internal/config"
)

// Map is the resolved set of bindings for one running TUI session, built
// once at startup from config.DefaultKeybindings merged with the active
// profile's overrides.
type Map struct {
	Quit           key.Binding
	Help           key.Binding
	Refresh        key.Binding
	Search         key.Binding
	NextScreen     key.Binding
	PrevScreen     key.Binding
	Select         key.Binding
	Back           key.Binding
	Up             key.Binding
	Down           key.Binding
	Export         key.Binding
	ToggleSort     key.Binding
	CommandPalette key.Binding
}

// Build resolves bindings into a Map. It assumes bindings is already the
// result of config.Keybindings.Merge, i.e. every action name is known.
func Build(bindings config.Keybindings) Map {
	return Map{
		Quit:           bind(bindings, "quit", "quit"),
		Help:           bind(bindings, "help", "help"),
		Refresh:        bind(bindings, "refresh", "refresh"),
		Search:         bind(bindings, "search", "search"),
		NextScreen:     bind(bindings, "next_screen", "next screen"),
		PrevScreen:     bind(bindings, "prev_screen", "prev screen"),
		Select:         bind(bindings, "select", "select"),
		Back:           bind(bindings, "back", "back"),
		Up:             bind(bindings, "up", "up"),
		Down:           bind(bindings, "down", "down"),
		Export:         bind(bindings, "export", "export"),
		ToggleSort:     bind(bindings, "toggle_sort", "sort"),
		CommandPalette: bind(bindings, "command_palette", "command palette"),
	}
}

func bind(bindings config.Keybindings, action, help string) key.Binding {
	k, ok := bindings[action]
	if !ok || k == "" {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(key.WithKeys(k), key.WithHelp(k, help))
}

// Default builds a Map from the built-in defaults with no overrides, used
// before a profile's configuration has loaded.
func Default() Map {
	return Build(config.DefaultKeybindings())
}
