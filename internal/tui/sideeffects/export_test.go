package sideeffects

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitchmultz/splunk-tui/internal/format"
	"github.com/fitchmultz/splunk-tui/internal/tui/action"
	"github.com/fitchmultz/splunk-tui/internal/tui/export"
)

func TestWriteExportReportsCompleteOnSuccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "indexes.json")
	data := format.IndexList{{Name: "main"}}

	msg := WriteExport(path, export.State{Target: export.TargetIndexes, Format: format.JSON}, data)()
	complete, ok := msg.(action.ExportComplete)
	require.True(t, ok)
	require.NoError(t, complete.Err)
	require.Equal(t, path, complete.Path)
}

func TestWriteExportReportsErrorOnBadPath(t *testing.T) {
	data := format.IndexList{{Name: "main"}}
	msg := WriteExport(filepath.Join(t.TempDir(), "missing-dir", "indexes.json"), export.State{Target: export.TargetIndexes, Format: format.JSON}, data)()
	complete, ok := msg.(action.ExportComplete)
	require.True(t, ok)
	require.Error(t, complete.Err)
}
