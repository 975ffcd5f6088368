package secret_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitchmultz/splunk-tui/internal/secret"
)

func TestValueNeverLeaksRawForm(t *testing.T) {
	v := secret.New("super-sensitive-token")

	forms := []string{
		v.String(),
		fmt.Sprintf("%v", v),
		fmt.Sprintf("%s", v),
		fmt.Sprintf("%#v", v),
	}
	encoded, err := json.Marshal(v)
	require.NoError(t, err)
	forms = append(forms, string(encoded))

	for _, f := range forms {
		require.NotContains(t, f, "super-sensitive-token")
		require.True(t, strings.Contains(f, "REDACTED"))
	}

	require.Equal(t, "super-sensitive-token", v.Reveal())
}

func TestValueZero(t *testing.T) {
	var v secret.Value
	require.True(t, v.IsZero())
	require.Equal(t, "***REDACTED***", v.String())
}

func TestValueRoundTripJSON(t *testing.T) {
	type holder struct {
		Token secret.Value `json:"token"`
	}
	var h holder
	require.NoError(t, json.Unmarshal([]byte(`{"token":"abc123"}`), &h))
	require.Equal(t, "abc123", h.Token.Reveal())

	out, err := json.Marshal(h)
	require.NoError(t, err)
	require.JSONEq(t, `{"token":"***REDACTED***"}`, string(out))
}
