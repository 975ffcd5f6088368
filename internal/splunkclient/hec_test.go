package splunkclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitchmultz/splunk-tui/internal/models"
	"github.com/fitchmultz/splunk-tui/internal/secret"
)

func newTestHecClient(t *testing.T, handler http.HandlerFunc) (*HecClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewHecClient(HecConfig{
		URL:   server.URL,
		Token: secret.New("hec-token"),
	})
	require.NoError(t, err)
	return c, server
}

func TestHecAuthHeaderUsesSplunkSchemeNotBearer(t *testing.T) {
	var seenAuth string
	c, _ := newTestHecClient(t, func(w http.ResponseWriter, r *http.Request) {
		seenAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"Success","code":0}`))
	})

	_, err := c.SendEvent(context.Background(), models.HecEvent{Event: "hello"})
	require.NoError(t, err)
	require.Equal(t, "Splunk hec-token", seenAuth)
	require.NotContains(t, seenAuth, "Bearer")
}

func TestHecSendBatchSendsJSONArrayFraming(t *testing.T) {
	var bodyStr string
	c, _ := newTestHecClient(t, func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 4096)
		n, _ := r.Body.Read(buf)
		bodyStr = string(buf[:n])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"Success","code":0}`))
	})

	_, err := c.SendBatch(context.Background(), []models.HecEvent{{Event: "a"}, {Event: "b"}}, false)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(bodyStr, "["), "expected a JSON array, got %q", bodyStr)
	require.NotContains(t, bodyStr, "}\n{")
}

func TestHecSendBatchSendsNDJSONFraming(t *testing.T) {
	var bodyStr string
	c, _ := newTestHecClient(t, func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 4096)
		n, _ := r.Body.Read(buf)
		bodyStr = string(buf[:n])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"Success","code":0}`))
	})

	_, err := c.SendBatch(context.Background(), []models.HecEvent{{Event: "a"}, {Event: "b"}}, true)
	require.NoError(t, err)
	require.Contains(t, bodyStr, "\n")
}

func TestHecHealthCheckFailsOnNon2xx(t *testing.T) {
	c, _ := newTestHecClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	err := c.HealthCheck(context.Background())
	require.Error(t, err)
}

func TestHecAckStatusParsesAckMap(t *testing.T) {
	c, _ := newTestHecClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"acks":{"1":true,"2":false}}`))
	})

	acks, err := c.AckStatus(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	require.True(t, acks[1])
	require.False(t, acks[2])
}
