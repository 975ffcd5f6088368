package splunkclient

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodePathSegmentEscapesSlash(t *testing.T) {
	encoded := EncodePathSegment("a/b")
	require.Contains(t, encoded, "%2F")
	require.NotContains(t, encoded, "a/b")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []string{
		"simple",
		"a/b",
		"has space",
		`quote"tick'`,
		"<angle>",
		"back`tick",
		"{brace}",
		"pipe|backslash\\caret^tilde~percent%",
		"question?hash#plus+comma,semicolon;bracket[]",
		"\x01\x1f control",
	}
	for _, s := range cases {
		encoded := EncodePathSegment(s)
		decoded, err := DecodePathSegment(encoded)
		require.NoError(t, err)
		require.Equal(t, s, decoded)
	}
}

func TestEncodePathSegmentNeverEmitsBareSlash(t *testing.T) {
	for _, s := range []string{"a/b/c", "/leading", "trailing/"} {
		encoded := EncodePathSegment(s)
		require.False(t, strings.Contains(encoded, "/"), "encoded form %q must not contain a bare slash", encoded)
	}
}

func TestDecodePathSegmentRejectsMalformedEscape(t *testing.T) {
	_, err := DecodePathSegment("%2")
	require.Error(t, err)
	_, err = DecodePathSegment("%zz")
	require.Error(t, err)
}
