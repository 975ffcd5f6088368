package splunkclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/fitchmultz/splunk-tui/internal/secret"
)

func TestAPITokenAuthHeaderIsBearer(t *testing.T) {
	a := APITokenAuth{Token: secret.New("abc123")}
	header, err := a.Header(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer abc123", header)
}

func TestAPITokenAuthRejectsEmptyToken(t *testing.T) {
	a := APITokenAuth{}
	_, err := a.Header(context.Background())
	require.Error(t, err)
}

func TestSessionAuthParsesJSONSessionKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sessionKey":"json-key-1"}`))
	}))
	t.Cleanup(server.Close)

	clock := clockwork.NewFakeClock()
	a := &SessionAuth{
		BaseURL:  server.URL,
		Username: "admin",
		Password: secret.New("changeme"),
		TTL:      time.Hour,
		Buffer:   time.Minute,
		HTTP:     server.Client(),
		Clock:    clock,
	}

	header, err := a.Header(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer json-key-1", header)
}

func TestSessionAuthParsesXMLSessionKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(`<response><sessionKey>xml-key-1</sessionKey></response>`))
	}))
	t.Cleanup(server.Close)

	clock := clockwork.NewFakeClock()
	a := &SessionAuth{
		BaseURL:  server.URL,
		Username: "admin",
		Password: secret.New("changeme"),
		TTL:      time.Hour,
		Buffer:   time.Minute,
		HTTP:     server.Client(),
		Clock:    clock,
	}

	header, err := a.Header(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer xml-key-1", header)
}

func TestSessionAuthProactivelyRefreshesWithinBuffer(t *testing.T) {
	var logins int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&logins, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sessionKey":"key-` + string(rune('0'+n)) + `"}`))
	}))
	t.Cleanup(server.Close)

	clock := clockwork.NewFakeClock()
	a := &SessionAuth{
		BaseURL:  server.URL,
		Username: "admin",
		Password: secret.New("changeme"),
		TTL:      10 * time.Minute,
		Buffer:   time.Minute,
		HTTP:     server.Client(),
		Clock:    clock,
	}

	_, err := a.Header(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, atomic.LoadInt32(&logins))

	// Still well within TTL: no relogin.
	clock.Advance(time.Minute)
	_, err = a.Header(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, atomic.LoadInt32(&logins))

	// Past TTL-Buffer: proactive relogin fires even without a 401.
	clock.Advance(9 * time.Minute)
	_, err = a.Header(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 2, atomic.LoadInt32(&logins))
}

func TestSessionAuthInvalidateForcesRelogin(t *testing.T) {
	var logins int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&logins, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sessionKey":"some-key"}`))
	}))
	t.Cleanup(server.Close)

	clock := clockwork.NewFakeClock()
	a := &SessionAuth{
		BaseURL:  server.URL,
		Username: "admin",
		Password: secret.New("changeme"),
		TTL:      time.Hour,
		Buffer:   time.Minute,
		HTTP:     server.Client(),
		Clock:    clock,
	}

	_, err := a.Header(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, atomic.LoadInt32(&logins))

	a.Invalidate()
	_, err = a.Header(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 2, atomic.LoadInt32(&logins))
}

func TestSessionAuthLoginFailureSurfacesAuthFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	a := &SessionAuth{
		BaseURL:  server.URL,
		Username: "admin",
		Password: secret.New("wrong"),
		TTL:      time.Hour,
		Buffer:   time.Minute,
		HTTP:     server.Client(),
		Clock:    clockwork.NewFakeClock(),
	}

	_, err := a.Header(context.Background())
	require.Error(t, err)
}
