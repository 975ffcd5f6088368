package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderCompletionScript(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell", "elvish"} {
		script, err := renderCompletionScript(shell, false, "30s")
		require.NoError(t, err)
		require.Contains(t, script, "splunk-cli")
	}
}

func TestRenderCompletionScriptDynamic(t *testing.T) {
	script, err := renderCompletionScript("bash", true, "1m")
	require.NoError(t, err)
	require.Contains(t, script, "splunk-cli complete profiles")
	require.Contains(t, script, "completion-cache-ttl=1m")
}

func TestRenderCompletionScriptUnsupportedShell(t *testing.T) {
	_, err := renderCompletionScript("csh", false, "30s")
	require.Error(t, err)
}
