package aggregate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gravitational/trace"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/fitchmultz/splunk-tui/internal/secret"
	"github.com/fitchmultz/splunk-tui/internal/splunkclient"
)

func newFakeProfileServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func healthyHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case strings.Contains(r.URL.Path, "health"):
		_, _ = w.Write([]byte(`{"entry":[{"name":"health","content":{"health":"green"}}]}`))
	case strings.Contains(r.URL.Path, "indexes"):
		_, _ = w.Write([]byte(`{"entry":[{"name":"main","content":{}}]}`))
	default:
		_, _ = w.Write([]byte(`{"entry":[]}`))
	}
}

func factoryFor(server *httptest.Server) ClientFactory {
	return func(ctx context.Context, profileName string) (*splunkclient.Client, string, error) {
		c, err := splunkclient.New(splunkclient.Config{
			BaseURL: server.URL,
			Auth:    splunkclient.APITokenAuth{Token: secret.New("tok")},
			Clock:   clockwork.NewFakeClock(),
		})
		return c, server.URL, err
	}
}

func TestRunRejectsUnknownResource(t *testing.T) {
	_, err := Run(context.Background(), Config{
		Resources: []string{"bogus"},
		Profiles:  []string{"prod"},
		Catalog:   map[string]bool{"prod": true},
		NewClient: factoryFor(newFakeProfileServer(t, healthyHandler)),
	})
	require.Error(t, err)
}

func TestRunRejectsUnknownProfile(t *testing.T) {
	_, err := Run(context.Background(), Config{
		Resources: []string{"health"},
		Profiles:  []string{"nope"},
		Catalog:   map[string]bool{"prod": true},
		NewClient: factoryFor(newFakeProfileServer(t, healthyHandler)),
	})
	require.Error(t, err)
}

func TestRunFetchesEachResourceAndStampsReport(t *testing.T) {
	server := newFakeProfileServer(t, healthyHandler)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	report, err := Run(context.Background(), Config{
		Resources: []string{"health", "indexes"},
		Profiles:  []string{"prod"},
		Catalog:   map[string]bool{"prod": true},
		NewClient: factoryFor(server),
		Now:       func() time.Time { return fixed },
	})
	require.NoError(t, err)
	require.Equal(t, "2026-01-02T03:04:05Z", report.GeneratedAt)
	require.Len(t, report.Profiles, 1)

	p := report.Profiles[0]
	require.Equal(t, "prod", p.Profile)
	require.Empty(t, p.Err)
	require.Len(t, p.Summaries, 2)

	byKind := map[string]ResourceSummary{}
	for _, s := range p.Summaries {
		byKind[s.Kind] = s
	}
	require.Equal(t, "green", byKind["health"].Detail)
	require.Equal(t, 1, byKind["indexes"].Count)
}

func TestRunIsolatesClientBuildFailurePerProfile(t *testing.T) {
	buildErr := trace.BadParameter("no credentials configured for profile")

	report, err := Run(context.Background(), Config{
		Resources: []string{"health"},
		Profiles:  []string{"broken"},
		Catalog:   map[string]bool{"broken": true},
		NewClient: func(ctx context.Context, profileName string) (*splunkclient.Client, string, error) {
			return nil, "", buildErr
		},
	})
	require.NoError(t, err)
	require.Len(t, report.Profiles, 1)
	require.NotEmpty(t, report.Profiles[0].Err)
	require.Empty(t, report.Profiles[0].Summaries)
}

func TestRunIsolatesPerResourceFailure(t *testing.T) {
	server := newFakeProfileServer(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "health") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		healthyHandler(w, r)
	})

	report, err := Run(context.Background(), Config{
		Resources: []string{"health", "indexes"},
		Profiles:  []string{"prod"},
		Catalog:   map[string]bool{"prod": true},
		NewClient: factoryFor(server),
	})
	require.NoError(t, err)
	require.Len(t, report.Profiles, 1)

	byKind := map[string]ResourceSummary{}
	for _, s := range report.Profiles[0].Summaries {
		byKind[s.Kind] = s
	}
	require.NotEmpty(t, byKind["health"].Err)
	require.Empty(t, byKind["indexes"].Err)
	require.Equal(t, 1, byKind["indexes"].Count)
}

func TestRunFetchesMultipleProfilesConcurrently(t *testing.T) {
	serverA := newFakeProfileServer(t, healthyHandler)
	serverB := newFakeProfileServer(t, healthyHandler)

	report, err := Run(context.Background(), Config{
		Resources: []string{"health"},
		Profiles:  []string{"a", "b"},
		Catalog:   map[string]bool{"a": true, "b": true},
		NewClient: func(ctx context.Context, profileName string) (*splunkclient.Client, string, error) {
			server := serverA
			if profileName == "b" {
				server = serverB
			}
			return factoryFor(server)(ctx, profileName)
		},
	})
	require.NoError(t, err)
	require.Len(t, report.Profiles, 2)
}
