package splunkclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gravitational/trace"

	"github.com/fitchmultz/splunk-tui/internal/models"
)

// ListUsers returns all users.
func (c *Client) ListUsers(ctx context.Context) ([]*models.User, error) {
	return doEnvelopeList(ctx, c, callOptions{
		route:    "/services/authentication/users",
		method:   http.MethodGet,
		segments: []string{"services", "authentication", "users"},
	}, func() *models.User { return &models.User{} })
}

// DeleteUser removes a user by name. The name is percent-encoded as a
// single path segment (spec §4.1e, §8 scenario 6), so a name containing a
// slash cannot escape the users collection path.
func (c *Client) DeleteUser(ctx context.Context, name string) error {
	_, err := c.restCall(ctx, callOptions{
		route:    "/services/authentication/users/{name}",
		method:   http.MethodDelete,
		segments: []string{"services", "authentication", "users", name},
	})
	return trace.Wrap(err)
}

// ListRoles returns all roles.
func (c *Client) ListRoles(ctx context.Context) ([]*models.Role, error) {
	return doEnvelopeList(ctx, c, callOptions{
		route:    "/services/authorization/roles",
		method:   http.MethodGet,
		segments: []string{"services", "authorization", "roles"},
	}, func() *models.Role { return &models.Role{} })
}

// ListAuditEvents returns recent audit-trail events, bounded by count.
func (c *Client) ListAuditEvents(ctx context.Context, count int) ([]*models.AuditEvent, error) {
	query := url.Values{}
	if count > 0 {
		query.Set("count", strconv.Itoa(count))
	}
	return doEnvelopeList(ctx, c, callOptions{
		route:    "/services/data/audit",
		method:   http.MethodGet,
		segments: []string{"services", "data", "audit"},
		query:    query,
	}, func() *models.AuditEvent { return &models.AuditEvent{} })
}
