package format

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteTableEmitsHeaderOnFirstBatchOnly(t *testing.T) {
	var first, cont bytes.Buffer
	require.NoError(t, WriteTable(&first, sampleIndexes(), false, 120, true))
	require.NoError(t, WriteTable(&cont, sampleIndexes(), false, 120, false))

	require.Contains(t, first.String(), "Name")
	require.NotContains(t, cont.String(), "Name")
}

func TestWriteTableEmptyProducesNoOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, IndexList{}, false, 120, true))
	require.Empty(t, buf.Bytes())
}

func TestWriteTableTruncatesToWidth(t *testing.T) {
	var buf bytes.Buffer
	list := IndexList{{Name: "an-extremely-long-index-name-that-should-be-truncated"}}
	require.NoError(t, WriteTable(&buf, list, false, 20, true))

	for _, line := range bytes.Split(buf.Bytes(), []byte("\n")) {
		require.LessOrEqual(t, len(line), 40, "line %q exceeds a sane bound for width=20", line)
	}
}

func TestWritePaginationFooterWithKnownTotal(t *testing.T) {
	var buf bytes.Buffer
	total := 50
	require.NoError(t, WritePaginationFooter(&buf, 1, 10, &total))
	require.Contains(t, buf.String(), "Showing 1-10 of 50")
}

func TestWritePaginationFooterWithUnknownTotal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePaginationFooter(&buf, 1, 10, nil))
	require.Contains(t, buf.String(), "Showing 1-10")
	require.NotContains(t, buf.String(), "of")
}

func TestTerminalWidthFallsBackWhenNotATerminal(t *testing.T) {
	require.Equal(t, 80, TerminalWidth())
}
