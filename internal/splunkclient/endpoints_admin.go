package splunkclient

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/fitchmultz/splunk-tui/internal/models"
	"github.com/fitchmultz/splunk-tui/internal/splunkerr"
)

// ListLicenseUsage returns per-pool license consumption.
func (c *Client) ListLicenseUsage(ctx context.Context) ([]*models.LicenseUsage, error) {
	return doEnvelopeList(ctx, c, callOptions{
		route:    "/services/licenser/usage",
		method:   http.MethodGet,
		segments: []string{"services", "licenser", "usage"},
	}, func() *models.LicenseUsage { return &models.LicenseUsage{} })
}

// ListLicensePools returns configured license pools.
func (c *Client) ListLicensePools(ctx context.Context) ([]*models.LicensePool, error) {
	return doEnvelopeList(ctx, c, callOptions{
		route:    "/services/licenser/pools",
		method:   http.MethodGet,
		segments: []string{"services", "licenser", "pools"},
	}, func() *models.LicensePool { return &models.LicensePool{} })
}

// ListLicenseStacks returns license stacks.
func (c *Client) ListLicenseStacks(ctx context.Context) ([]*models.LicenseStack, error) {
	return doEnvelopeList(ctx, c, callOptions{
		route:    "/services/licenser/stacks",
		method:   http.MethodGet,
		segments: []string{"services", "licenser", "stacks"},
	}, func() *models.LicenseStack { return &models.LicenseStack{} })
}

// GetKvStoreStatus fetches the KV store cluster/replication status.
func (c *Client) GetKvStoreStatus(ctx context.Context) (*models.KvStoreStatus, error) {
	return doEnvelopeSingle(ctx, c, callOptions{
		route:    "/services/kvstore/status",
		method:   http.MethodGet,
		segments: []string{"services", "kvstore", "status"},
	}, func() *models.KvStoreStatus { return &models.KvStoreStatus{} })
}

// GetHealth fetches the top-level splunkd health check output.
func (c *Client) GetHealth(ctx context.Context) (*models.HealthCheckOutput, error) {
	return doEnvelopeSingle(ctx, c, callOptions{
		route:    "/services/server/health/splunkd",
		method:   http.MethodGet,
		segments: []string{"services", "server", "health", "splunkd"},
	}, func() *models.HealthCheckOutput { return &models.HealthCheckOutput{} })
}

// GetClusterStatus fetches the local node's clustering status. Splunk
// reports this under the same path regardless of whether the node is
// participating in indexer or search-head clustering.
func (c *Client) GetClusterStatus(ctx context.Context) (*models.ClusterStatus, error) {
	return doEnvelopeSingle(ctx, c, callOptions{
		route:    "/services/cluster/config/status",
		method:   http.MethodGet,
		segments: []string{"services", "cluster", "config", "status"},
	}, func() *models.ClusterStatus { return &models.ClusterStatus{} })
}

// ListAllConfigStanzas iterates models.ConfigFileWhitelist and fetches each
// file's stanzas concurrently, isolating per-file failure into ConfigFile.Err
// rather than aborting the whole aggregation (spec §4.1i).
func (c *Client) ListAllConfigStanzas(ctx context.Context) ([]*models.ConfigFile, error) {
	files := models.ConfigFileWhitelist
	results := make([]*models.ConfigFile, len(files))

	var wg sync.WaitGroup
	for i, fileName := range files {
		wg.Add(1)
		go func(i int, fileName string) {
			defer wg.Done()
			stanzas, err := c.listConfigFileStanzas(ctx, fileName)
			cf := &models.ConfigFile{FileName: fileName, Stanzas: stanzas}
			if err != nil {
				cf.Err = err.Error()
			}
			results[i] = cf
		}(i, fileName)
	}
	wg.Wait()

	return results, nil
}

func (c *Client) listConfigFileStanzas(ctx context.Context, fileName string) ([]models.ConfigStanza, error) {
	body, err := c.restCall(ctx, callOptions{
		route:    "/services/configs/conf-{file}",
		method:   http.MethodGet,
		segments: []string{"services", "configs", "conf-" + fileName},
	})
	if err != nil {
		return nil, err
	}

	var envelope restEnvelope
	if unmarshalErr := json.Unmarshal(body, &envelope); unmarshalErr != nil {
		return nil, splunkerr.New(splunkerr.KindInvalidResponse, unmarshalErr)
	}

	stanzas := make([]models.ConfigStanza, 0, len(envelope.Entry))
	for _, entry := range envelope.Entry {
		var settings map[string]string
		if len(entry.Content) > 0 {
			if err := json.Unmarshal(entry.Content, &settings); err != nil {
				return nil, splunkerr.New(splunkerr.KindInvalidResponse, err)
			}
		}
		stanzas = append(stanzas, models.ConfigStanza{Name: entry.Name, Settings: settings})
	}
	return stanzas, nil
}
