package splunkclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/fitchmultz/splunk-tui/internal/secret"
	"github.com/fitchmultz/splunk-tui/internal/splunkerr"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := New(Config{
		BaseURL: server.URL,
		Auth:    APITokenAuth{Token: secret.New("test-token")},
		Clock:   clockwork.NewFakeClock(),
	})
	require.NoError(t, err)
	return c, server
}

func TestListIndexesMergesEntryName(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"entry": []map[string]any{
				{"name": "main", "content": map[string]any{"disabled": false, "totalEventCount": 42}},
				{"name": "_internal", "content": map[string]any{"disabled": true}},
			},
		})
	})

	indexes, err := c.ListIndexes(context.Background())
	require.NoError(t, err)
	require.Len(t, indexes, 2)
	require.Equal(t, "main", indexes[0].Name)
	require.Equal(t, int64(42), indexes[0].TotalEventCount)
	require.Equal(t, "_internal", indexes[1].Name)
	require.True(t, indexes[1].Disabled)
}

func TestGetIndexNotFoundOnEmptyEnvelope(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"entry": []map[string]any{}})
	})

	_, err := c.GetIndex(context.Background(), "missing")
	require.Error(t, err)
	se, ok := splunkerr.As(err)
	require.True(t, ok)
	require.Equal(t, splunkerr.KindNotFound, se.Kind())
}

func TestNonRetryable4xxMakesExactlyOneRequest(t *testing.T) {
	var requests int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := c.ListIndexes(context.Background())
	require.Error(t, err)
	require.EqualValues(t, 1, atomic.LoadInt32(&requests))
}

func TestRetryableStatusRetriedUpToMaxRetriesPlusOne(t *testing.T) {
	var requests int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.ListIndexes(context.Background())
	require.Error(t, err)
	require.EqualValues(t, 4, atomic.LoadInt32(&requests), "default max_retries=3 means 4 total attempts")
}

func TestDeleteUserPercentEncodesSlash(t *testing.T) {
	var seenPath string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seenPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusOK)
	})

	err := c.DeleteUser(context.Background(), "a/b")
	require.NoError(t, err)
	require.Contains(t, seenPath, "/services/authentication/users/a%2Fb")
	require.NotContains(t, seenPath, "/services/authentication/users/a/b")
}

func Test401TriggersSingleReauthRetry(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"entry": []map[string]any{}})
	})

	_, err := c.ListIndexes(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestPersistent401SurfacesAuthFailed(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.ListIndexes(context.Background())
	require.Error(t, err)
	se, ok := splunkerr.As(err)
	require.True(t, ok)
	require.Equal(t, splunkerr.KindAuthFailed, se.Kind())
}

// TestNonRetryableErrorsDoNotTripBreaker covers the scenario in spec §4.1c:
// a route that legitimately 404s (e.g. probing for a user that doesn't
// exist) must not trip its breaker open, since KindNotFound isn't
// retryable. Five consecutive 404s on the same route would trip a breaker
// that recorded every failure unconditionally; this asserts the sixth call
// still reaches the server instead of failing fast on an open circuit.
func TestNonRetryableErrorsDoNotTripBreaker(t *testing.T) {
	var requests int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"entry": []map[string]any{}})
	})

	for i := 0; i < circuitFailureThreshold+1; i++ {
		_, err := c.GetIndex(context.Background(), "missing")
		require.Error(t, err)
		se, ok := splunkerr.As(err)
		require.True(t, ok)
		require.Equal(t, splunkerr.KindNotFound, se.Kind())
	}

	require.EqualValues(t, circuitFailureThreshold+1, atomic.LoadInt32(&requests),
		"every call must reach the server; a tripped breaker would fail fast without a request")
}
