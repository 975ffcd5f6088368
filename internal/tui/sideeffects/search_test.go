package sideeffects

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitchmultz/splunk-tui/internal/tui/action"
)

func TestExecuteSearchReturnsResultsAfterJobCompletes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/results"):
			_ = json.NewEncoder(w).Encode(map[string]any{
				"results": []map[string]string{{"host": "web1"}},
			})
		case strings.Contains(r.URL.Path, "/jobs/"):
			_ = json.NewEncoder(w).Encode(map[string]any{
				"entry": []map[string]any{{"name": "sid-1", "content": map[string]any{"isDone": true}}},
			})
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{"sid": "sid-1"})
		}
	})

	msgs := runBatch(t, ExecuteSearch(context.Background(), c, nil, "search *", "", "", 100))
	require.Equal(t, action.Loading{Busy: true}, msgs[0])

	loaded, ok := msgs[1].(action.SearchResultsLoaded)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	require.Len(t, loaded.Rows, 1)
	require.Equal(t, "web1", loaded.Rows[0]["host"])
}

func TestExecuteSearchReportsFailedJobAsError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.Contains(r.URL.Path, "/jobs/") && r.Method == http.MethodGet {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"entry": []map[string]any{{"name": "sid-1", "content": map[string]any{"isDone": true, "isFailed": true}}},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"sid": "sid-1"})
	})

	msgs := runBatch(t, ExecuteSearch(context.Background(), c, nil, "search *", "", "", 100))
	loaded, ok := msgs[1].(action.SearchResultsLoaded)
	require.True(t, ok)
	require.Error(t, loaded.Err)
}

func TestCancelSearchReportsOutcome(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	msg := CancelSearch(context.Background(), c, "sid-1")()
	canceled, ok := msg.(action.SearchCanceled)
	require.True(t, ok)
	require.Equal(t, "sid-1", canceled.SID)
	require.NoError(t, canceled.Err)
}
