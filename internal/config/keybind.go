package config

import "github.com/gravitational/trace"

// Keybindings maps a logical action name to the key string a user has
// bound it to, overriding the TUI's built-in defaults (spec §5).
type Keybindings map[string]string

// DefaultKeybindings are the built-in bindings before any override is
// applied.
func DefaultKeybindings() Keybindings {
	return Keybindings{
		"quit":           "q",
		"help":           "?",
		"refresh":        "r",
		"search":         "/",
		"next_screen":    "tab",
		"prev_screen":    "shift+tab",
		"select":         "enter",
		"back":           "esc",
		"up":             "up",
		"down":           "down",
		"export":         "e",
		"toggle_sort":    "s",
		"command_palette": "ctrl+p",
	}
}

// knownActions is the closed set of overridable logical actions; an
// override naming anything else is rejected rather than silently ignored.
var knownActions = func() map[string]bool {
	actions := map[string]bool{}
	for action := range DefaultKeybindings() {
		actions[action] = true
	}
	return actions
}()

// Merge overlays overrides on top of defaults, rejecting unknown action
// names.
func (k Keybindings) Merge(overrides map[string]string) (Keybindings, error) {
	merged := Keybindings{}
	for action, key := range k {
		merged[action] = key
	}
	for action, key := range overrides {
		if !knownActions[action] {
			return nil, trace.BadParameter("unknown keybinding action %q", action)
		}
		if key == "" {
			return nil, trace.BadParameter("keybinding %q must not be empty", action)
		}
		merged[action] = key
	}
	return merged, nil
}
