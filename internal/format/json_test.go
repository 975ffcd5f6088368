package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitchmultz/splunk-tui/internal/models"
)

func TestWriteJSONProducesArray(t *testing.T) {
	var buf bytes.Buffer
	indexes := []*models.Index{{Name: "main"}, {Name: "_internal"}}
	require.NoError(t, WriteJSON(&buf, indexes))

	var decoded []models.Index
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	require.Equal(t, "main", decoded[0].Name)
}

func TestWriteNDJSONOneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	indexes := []*models.Index{{Name: "main"}, {Name: "_internal"}}
	require.NoError(t, WriteNDJSON(&buf, indexes))

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 2)
	for _, line := range lines {
		var decoded models.Index
		require.NoError(t, json.Unmarshal(line, &decoded))
	}
}

func TestWriteNDJSONEmptyProducesNoLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteNDJSON(&buf, []*models.Index{}))
	require.Empty(t, buf.Bytes())
}
