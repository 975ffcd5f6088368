package format

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleIndexes() IndexList {
	return IndexList{
		{Name: "main", TotalEventCount: 100, CurrentDBSizeMB: 5, Disabled: false},
		{Name: "_internal", TotalEventCount: 0, CurrentDBSizeMB: 1, Disabled: true},
	}
}

func TestWriteCSVEmitsHeaderOnFirstBatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleIndexes(), true))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"name", "total_event_count", "current_db_size_mb", "max_total_data_size_mb", "disabled", "frozen_time_period_secs", "home_path", "cold_path", "thawed_path", "min_time", "max_time"}, rows[0])
	require.Len(t, rows, 3)
}

func TestWriteCSVSkipsHeaderOnContinuationBatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleIndexes(), false))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "main", rows[0][0])
}

func TestWriteCSVEmptyBatchProducesNoOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, IndexList{}, true))
	require.Empty(t, buf.Bytes())
}

func TestWriteCSVNullsAreEmpty(t *testing.T) {
	var buf bytes.Buffer
	list := IndexList{{Name: "main", MinTime: nil, MaxTime: nil}}
	require.NoError(t, WriteCSV(&buf, list, true))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	last := rows[1]
	require.Equal(t, "", last[len(last)-2])
	require.Equal(t, "", last[len(last)-1])
}
