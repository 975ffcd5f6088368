package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCaseInsensitive(t *testing.T) {
	cases := map[string]Format{
		"json":   JSON,
		"JSON":   JSON,
		"ndjson": NDJSON,
		"jsonl":  NDJSON,
		"NDJSON": NDJSON,
		"csv":    CSV,
		"CSV":    CSV,
		"table":  Table,
		"xml":    XML,
		" xml ":  XML,
	}
	for input, want := range cases {
		got, err := Parse(input)
		require.NoError(t, err, input)
		require.Equal(t, want, got, input)
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	_, err := Parse("yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "json")
}

func TestFormatStringRoundTrip(t *testing.T) {
	for _, f := range []Format{JSON, NDJSON, CSV, Table, XML} {
		parsed, err := Parse(f.String())
		require.NoError(t, err)
		require.Equal(t, f, parsed)
	}
}

func TestExtensionPerFormat(t *testing.T) {
	require.Equal(t, "json", JSON.Extension())
	require.Equal(t, "ndjson", NDJSON.Extension())
	require.Equal(t, "csv", CSV.Extension())
	require.Equal(t, "xml", XML.Extension())
	require.Equal(t, "txt", Table.Extension())
}
