package splunkclient

import (
	"context"
	"net/http"

	"github.com/fitchmultz/splunk-tui/internal/models"
)

// ListIndexes returns all indexes known to the instance.
func (c *Client) ListIndexes(ctx context.Context) ([]*models.Index, error) {
	return doEnvelopeList(ctx, c, callOptions{
		route:    "/services/data/indexes",
		method:   http.MethodGet,
		segments: []string{"services", "data", "indexes"},
	}, func() *models.Index { return &models.Index{} })
}

// GetIndex fetches a single index by name.
func (c *Client) GetIndex(ctx context.Context, name string) (*models.Index, error) {
	return doEnvelopeSingle(ctx, c, callOptions{
		route:    "/services/data/indexes/{name}",
		method:   http.MethodGet,
		segments: []string{"services", "data", "indexes", name},
	}, func() *models.Index { return &models.Index{} })
}

// ListApps returns all locally installed apps.
func (c *Client) ListApps(ctx context.Context) ([]*models.App, error) {
	return doEnvelopeList(ctx, c, callOptions{
		route:    "/services/apps/local",
		method:   http.MethodGet,
		segments: []string{"services", "apps", "local"},
	}, func() *models.App { return &models.App{} })
}

// ListInputs returns all configured data inputs of the given kind (e.g.
// "monitor", "tcp", "udp", "script").
func (c *Client) ListInputs(ctx context.Context, kind string) ([]*models.Input, error) {
	return doEnvelopeList(ctx, c, callOptions{
		route:    "/services/data/inputs/{kind}",
		method:   http.MethodGet,
		segments: []string{"services", "data", "inputs", kind},
	}, func() *models.Input { return &models.Input{} })
}

// ListLookupTables returns CSV/KV lookup table definitions.
func (c *Client) ListLookupTables(ctx context.Context) ([]*models.LookupTable, error) {
	return doEnvelopeList(ctx, c, callOptions{
		route:    "/services/data/lookup-table-files",
		method:   http.MethodGet,
		segments: []string{"services", "data", "lookup-table-files"},
	}, func() *models.LookupTable { return &models.LookupTable{} })
}

// ListForwarders returns registered forwarders.
func (c *Client) ListForwarders(ctx context.Context) ([]*models.Forwarder, error) {
	return doEnvelopeList(ctx, c, callOptions{
		route:    "/services/deployment/server/clients",
		method:   http.MethodGet,
		segments: []string{"services", "deployment", "server", "clients"},
	}, func() *models.Forwarder { return &models.Forwarder{} })
}

// ListSearchPeers returns distributed-search peer members.
func (c *Client) ListSearchPeers(ctx context.Context) ([]*models.SearchPeer, error) {
	return doEnvelopeList(ctx, c, callOptions{
		route:    "/services/search/distributed/peers",
		method:   http.MethodGet,
		segments: []string{"services", "search", "distributed", "peers"},
	}, func() *models.SearchPeer { return &models.SearchPeer{} })
}
