package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitchmultz/splunk-tui/internal/format"
	"github.com/fitchmultz/splunk-tui/internal/models"
)

func TestPaginate(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}

	require.Equal(t, []int{0, 1, 2, 3, 4}, paginate(items, 0, 0))
	require.Equal(t, []int{2, 3, 4}, paginate(items, 2, 0))
	require.Equal(t, []int{2, 3}, paginate(items, 2, 2))
	require.Equal(t, []int{0, 1, 2, 3, 4}, paginate(items, -1, 0))
	require.Empty(t, paginate(items, 10, 0))
}

func TestNewOutputDefaultsToTable(t *testing.T) {
	var buf bytes.Buffer
	out, err := NewOutput("", "", &buf)
	require.NoError(t, err)
	require.Equal(t, "table", out.Format)
	require.NoError(t, out.Close())
}

func TestNewOutputWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	var buf bytes.Buffer
	out, err := NewOutput("json", path, &buf)
	require.NoError(t, err)
	require.NoError(t, RenderList(out, []*models.Index{{Name: "main"}}, func(items []*models.Index) format.ResourceDisplay { return format.IndexList(items) }, "index"))
	require.NoError(t, out.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Empty(t, buf.String())

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	require.Equal(t, "main", decoded[0]["name"])
}

func TestRenderListJSONAndTable(t *testing.T) {
	items := []*models.Index{{Name: "main"}, {Name: "history"}}
	wrap := func(items []*models.Index) format.ResourceDisplay { return format.IndexList(items) }

	var jsonBuf bytes.Buffer
	jsonOut := &Output{Format: "json", Writer: &jsonBuf}
	require.NoError(t, RenderList(jsonOut, items, wrap, "index"))
	require.Contains(t, jsonBuf.String(), "main")
	require.Contains(t, jsonBuf.String(), "history")

	var tableBuf bytes.Buffer
	tableOut := &Output{Format: "table", Writer: &tableBuf}
	require.NoError(t, RenderList(tableOut, items, wrap, "index"))
	require.Contains(t, tableBuf.String(), "main")
}
