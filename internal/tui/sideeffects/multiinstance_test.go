package sideeffects

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitchmultz/splunk-tui/internal/tui/action"
)

func TestRunMultiInstanceRejectsUnknownResource(t *testing.T) {
	build := fakeBuilder(nil, "https://a.example.com", nil)
	msgs := runBatch(t, RunMultiInstance(context.Background(), build, map[string]bool{"prod": true}, []string{"bogus"}, []string{"prod"}))
	complete, ok := msgs[1].(action.MultiInstanceComplete)
	require.True(t, ok)
	require.Error(t, complete.Err)
}

func TestRunMultiInstanceSummarizesEachProfile(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.Contains(r.URL.Path, "indexes") {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"entry": []map[string]any{{"name": "main", "content": map[string]any{}}},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"entry": []map[string]any{}})
	})
	build := fakeBuilder(c, "https://a.example.com", nil)

	msgs := runBatch(t, RunMultiInstance(context.Background(), build, map[string]bool{"prod": true}, []string{"indexes"}, []string{"prod"}))
	complete, ok := msgs[1].(action.MultiInstanceComplete)
	require.True(t, ok)
	require.NoError(t, complete.Err)
	require.Contains(t, complete.Summary, "prod")
	require.Contains(t, complete.Summary, "indexes: 1")
}
