package aggregate

import (
	"context"
	"fmt"

	"github.com/fitchmultz/splunk-tui/internal/splunkclient"
)

// resourceFetcher fetches one resource kind's summary from an already-
// built client. It never returns a partial ResourceSummary on error; the
// caller wraps the error into ResourceSummary.Err instead (spec.md §4.4
// step 5).
type resourceFetcher func(ctx context.Context, c *splunkclient.Client) (count int, detail string, err error)

var fetchers = map[string]resourceFetcher{
	"health": func(ctx context.Context, c *splunkclient.Client) (int, string, error) {
		h, err := c.GetHealth(ctx)
		if err != nil {
			return 0, "", err
		}
		return 1, h.Health, nil
	},
	"jobs": func(ctx context.Context, c *splunkclient.Client) (int, string, error) {
		jobs, err := c.ListSearchJobs(ctx)
		if err != nil {
			return 0, "", err
		}
		return len(jobs), "", nil
	},
	"indexes": func(ctx context.Context, c *splunkclient.Client) (int, string, error) {
		items, err := c.ListIndexes(ctx)
		if err != nil {
			return 0, "", err
		}
		return len(items), "", nil
	},
	"apps": func(ctx context.Context, c *splunkclient.Client) (int, string, error) {
		items, err := c.ListApps(ctx)
		if err != nil {
			return 0, "", err
		}
		return len(items), "", nil
	},
	"users": func(ctx context.Context, c *splunkclient.Client) (int, string, error) {
		items, err := c.ListUsers(ctx)
		if err != nil {
			return 0, "", err
		}
		return len(items), "", nil
	},
	"cluster": func(ctx context.Context, c *splunkclient.Client) (int, string, error) {
		status, err := c.GetClusterStatus(ctx)
		if err != nil {
			return 0, "", err
		}
		return 1, status.Mode, nil
	},
	"kvstore": func(ctx context.Context, c *splunkclient.Client) (int, string, error) {
		status, err := c.GetKvStoreStatus(ctx)
		if err != nil {
			return 0, "", err
		}
		return 1, status.Status, nil
	},
	"license": func(ctx context.Context, c *splunkclient.Client) (int, string, error) {
		items, err := c.ListLicenseUsage(ctx)
		if err != nil {
			return 0, "", err
		}
		return len(items), "", nil
	},
	"saved-searches": func(ctx context.Context, c *splunkclient.Client) (int, string, error) {
		items, err := c.ListSavedSearches(ctx)
		if err != nil {
			return 0, "", err
		}
		return len(items), "", nil
	},
	"search-peers": func(ctx context.Context, c *splunkclient.Client) (int, string, error) {
		items, err := c.ListSearchPeers(ctx)
		if err != nil {
			return 0, "", err
		}
		return len(items), "", nil
	},
	"fired-alerts": func(ctx context.Context, c *splunkclient.Client) (int, string, error) {
		items, err := c.ListAllFiredAlerts(ctx)
		if err != nil {
			return 0, "", err
		}
		return len(items), "", nil
	},
	"forwarders": func(ctx context.Context, c *splunkclient.Client) (int, string, error) {
		items, err := c.ListForwarders(ctx)
		if err != nil {
			return 0, "", err
		}
		return len(items), "", nil
	},
	"overview": fetchOverview,
}

// fetchOverview is not backed by a single REST endpoint: it combines a
// quick health check with index/app/user counts into one dashboard-style
// summary. Each sub-fetch runs against the same already-timeout-bounded
// ctx; a sub-fetch failure is folded into the detail string rather than
// aborting the whole overview, since any one of these four calls failing
// shouldn't hide the other three.
func fetchOverview(ctx context.Context, c *splunkclient.Client) (int, string, error) {
	health := "unknown"
	if h, err := c.GetHealth(ctx); err == nil {
		health = h.Health
	}
	indexCount := 0
	if items, err := c.ListIndexes(ctx); err == nil {
		indexCount = len(items)
	}
	appCount := 0
	if items, err := c.ListApps(ctx); err == nil {
		appCount = len(items)
	}
	userCount := 0
	if items, err := c.ListUsers(ctx); err == nil {
		userCount = len(items)
	}
	detail := fmt.Sprintf("health=%s indexes=%d apps=%d users=%d", health, indexCount, appCount, userCount)
	return 1, detail, nil
}
