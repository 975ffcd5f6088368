package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeybindingsMergeOverridesKnownAction(t *testing.T) {
	merged, err := DefaultKeybindings().Merge(map[string]string{"quit": "ctrl+c"})
	require.NoError(t, err)
	require.Equal(t, "ctrl+c", merged["quit"])
	require.Equal(t, "?", merged["help"], "unrelated bindings are untouched")
}

func TestKeybindingsMergeRejectsUnknownAction(t *testing.T) {
	_, err := DefaultKeybindings().Merge(map[string]string{"teleport": "x"})
	require.Error(t, err)
}

func TestKeybindingsMergeRejectsEmptyKey(t *testing.T) {
	_, err := DefaultKeybindings().Merge(map[string]string{"quit": ""})
	require.Error(t, err)
}
