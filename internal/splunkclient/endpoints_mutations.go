package splunkclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gravitational/trace"

	"github.com/fitchmultz/splunk-tui/internal/models"
	"github.com/fitchmultz/splunk-tui/internal/splunkerr"
)

// CreateIndex creates a new index. params are passed through verbatim as
// Splunk's /services/data/indexes POST body (e.g. "maxTotalDataSizeMB",
// "frozenTimePeriodInSecs").
func (c *Client) CreateIndex(ctx context.Context, name string, params map[string]string) (*models.Index, error) {
	if name == "" {
		return nil, trace.Wrap(splunkerr.Newf(splunkerr.KindInvalidRequest, "index name must not be empty"))
	}
	form := formValues(params)
	form.Set("name", name)

	return doEnvelopeSingle(ctx, c, callOptions{
		route:    "/services/data/indexes",
		method:   http.MethodPost,
		segments: []string{"services", "data", "indexes"},
		body:     form,
	}, func() *models.Index { return &models.Index{} })
}

// ModifyIndex updates an existing index's settings.
func (c *Client) ModifyIndex(ctx context.Context, name string, params map[string]string) (*models.Index, error) {
	return doEnvelopeSingle(ctx, c, callOptions{
		route:    "/services/data/indexes/{name}",
		method:   http.MethodPost,
		segments: []string{"services", "data", "indexes", name},
		body:     formValues(params),
	}, func() *models.Index { return &models.Index{} })
}

// DeleteIndex removes an index.
func (c *Client) DeleteIndex(ctx context.Context, name string) error {
	_, err := c.restCall(ctx, callOptions{
		route:    "/services/data/indexes/{name}",
		method:   http.MethodDelete,
		segments: []string{"services", "data", "indexes", name},
	})
	return trace.Wrap(err)
}

// CancelSearchJob asks the server to cancel an in-progress job.
func (c *Client) CancelSearchJob(ctx context.Context, sid string) error {
	_, err := c.restCall(ctx, callOptions{
		route:    "/services/search/jobs/{sid}/control",
		method:   http.MethodPost,
		segments: []string{"services", "search", "jobs", sid, "control"},
		body:     url.Values{"action": {"cancel"}},
	})
	return trace.Wrap(err)
}

// DeleteSearchJob removes a job's artifacts immediately rather than waiting
// for its TTL to expire.
func (c *Client) DeleteSearchJob(ctx context.Context, sid string) error {
	_, err := c.restCall(ctx, callOptions{
		route:    "/services/search/jobs/{sid}",
		method:   http.MethodDelete,
		segments: []string{"services", "search", "jobs", sid},
	})
	return trace.Wrap(err)
}

// CreateUser creates a new Splunk user account.
func (c *Client) CreateUser(ctx context.Context, name, password string, roles []string) (*models.User, error) {
	form := url.Values{"name": {name}, "password": {password}}
	for _, role := range roles {
		form.Add("roles", role)
	}
	return doEnvelopeSingle(ctx, c, callOptions{
		route:    "/services/authentication/users",
		method:   http.MethodPost,
		segments: []string{"services", "authentication", "users"},
		body:     form,
	}, func() *models.User { return &models.User{} })
}

// InstallApp installs an app from a local .spl/.tar.gz path already present
// on the Splunk server's filesystem.
func (c *Client) InstallApp(ctx context.Context, path string, force bool) (*models.App, error) {
	form := url.Values{"filename": {"1"}, "name": {path}}
	if force {
		form.Set("update", "1")
	}
	return doEnvelopeSingle(ctx, c, callOptions{
		route:    "/services/apps/local",
		method:   http.MethodPost,
		segments: []string{"services", "apps", "local"},
		body:     form,
	}, func() *models.App { return &models.App{} })
}

func formValues(params map[string]string) url.Values {
	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}
	return form
}
