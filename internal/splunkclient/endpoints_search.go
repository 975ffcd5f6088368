package splunkclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gravitational/trace"

	"github.com/fitchmultz/splunk-tui/internal/models"
	"github.com/fitchmultz/splunk-tui/internal/splunkerr"
)

// SearchParams configures a SPL search job dispatch.
type SearchParams struct {
	Query        string
	EarliestTime string
	LatestTime   string
	MaxResults   int
}

// CreateSearchJob dispatches a new search job and returns its SID.
func (c *Client) CreateSearchJob(ctx context.Context, p SearchParams) (string, error) {
	if p.Query == "" {
		return "", trace.Wrap(splunkerr.Newf(splunkerr.KindInvalidRequest, "search query must not be empty"))
	}
	form := url.Values{"search": {p.Query}}
	if p.EarliestTime != "" {
		form.Set("earliest_time", p.EarliestTime)
	}
	if p.LatestTime != "" {
		form.Set("latest_time", p.LatestTime)
	}
	if p.MaxResults > 0 {
		form.Set("max_count", strconv.Itoa(p.MaxResults))
	}

	body, err := c.restCall(ctx, callOptions{
		route:    "/services/search/jobs",
		method:   http.MethodPost,
		segments: []string{"services", "search", "jobs"},
		body:     form,
	})
	if err != nil {
		return "", trace.Wrap(err)
	}

	var parsed struct {
		SID string `json:"sid"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.SID == "" {
		return "", splunkerr.Newf(splunkerr.KindInvalidResponse, "search job dispatch response did not contain a sid")
	}
	return parsed.SID, nil
}

// GetSearchJobStatus fetches the current status of a dispatched job.
func (c *Client) GetSearchJobStatus(ctx context.Context, sid string) (*models.SearchJobStatus, error) {
	return doEnvelopeSingle(ctx, c, callOptions{
		route:    "/services/search/jobs/{sid}",
		method:   http.MethodGet,
		segments: []string{"services", "search", "jobs", sid},
	}, func() *models.SearchJobStatus { return &models.SearchJobStatus{} })
}

// ProgressFunc receives a completion fraction in [0,1] during
// SearchWithProgress's polling loop (spec §4.1g).
type ProgressFunc func(fraction float64)

// SearchWithProgress dispatches a job and polls until completion, invoking
// progress with an adaptive interval (start 250ms, double on unchanged
// progress, capped at 2s), returning the final status. It aborts promptly
// (spec says < 100ms) when ctx is canceled.
func (c *Client) SearchWithProgress(ctx context.Context, p SearchParams, progress ProgressFunc) (*models.SearchJobStatus, error) {
	sid, err := c.CreateSearchJob(ctx, p)
	if err != nil {
		return nil, trace.Wrap(err)
	}

	interval := 250 * time.Millisecond
	const maxInterval = 2 * time.Second
	var lastProgress float64 = -1

	for {
		select {
		case <-ctx.Done():
			return nil, splunkerr.New(splunkerr.KindCancelled, ctx.Err())
		default:
		}

		status, err := c.GetSearchJobStatus(ctx, sid)
		if err != nil {
			return nil, trace.Wrap(err)
		}
		if progress != nil {
			progress(status.DoneProgress)
		}
		if status.IsDone || status.IsFailed {
			return status, nil
		}

		if status.DoneProgress == lastProgress {
			interval *= 2
			if interval > maxInterval {
				interval = maxInterval
			}
		} else {
			interval = 250 * time.Millisecond
		}
		lastProgress = status.DoneProgress

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, splunkerr.New(splunkerr.KindCancelled, ctx.Err())
		case <-timer.C:
		}
	}
}

// ListSearchJobs returns the currently dispatched search jobs (the `jobs`
// resource), as opposed to GetSearchJobStatus which fetches exactly one
// job by SID.
func (c *Client) ListSearchJobs(ctx context.Context) ([]*models.SearchJobStatus, error) {
	return doEnvelopeList(ctx, c, callOptions{
		route:    "/services/search/jobs",
		method:   http.MethodGet,
		segments: []string{"services", "search", "jobs"},
	}, func() *models.SearchJobStatus { return &models.SearchJobStatus{} })
}

// ListSavedSearches returns all saved searches.
func (c *Client) ListSavedSearches(ctx context.Context) ([]*models.SavedSearch, error) {
	return doEnvelopeList(ctx, c, callOptions{
		route:    "/services/saved/searches",
		method:   http.MethodGet,
		segments: []string{"services", "saved", "searches"},
	}, func() *models.SavedSearch { return &models.SavedSearch{} })
}

// ListAllFiredAlerts returns every fired-alert instance across all saved
// searches, used by the multi-profile aggregator's `fired-alerts` resource
// where no single saved search is selected.
func (c *Client) ListAllFiredAlerts(ctx context.Context) ([]*models.FiredAlert, error) {
	return doEnvelopeList(ctx, c, callOptions{
		route:    "/services/alerts/fired_alerts",
		method:   http.MethodGet,
		segments: []string{"services", "alerts", "fired_alerts"},
	}, func() *models.FiredAlert { return &models.FiredAlert{} })
}

// ListFiredAlerts returns fired-alert instances for a saved search.
func (c *Client) ListFiredAlerts(ctx context.Context, savedSearchName string) ([]*models.FiredAlert, error) {
	return doEnvelopeList(ctx, c, callOptions{
		route:    "/services/alerts/fired_alerts/{name}",
		method:   http.MethodGet,
		segments: []string{"services", "alerts", "fired_alerts", savedSearchName},
	}, func() *models.FiredAlert { return &models.FiredAlert{} })
}

// ListMacros returns all saved SPL macros.
func (c *Client) ListMacros(ctx context.Context) ([]*models.Macro, error) {
	return doEnvelopeList(ctx, c, callOptions{
		route:    "/services/data/macros",
		method:   http.MethodGet,
		segments: []string{"services", "data", "macros"},
	}, func() *models.Macro { return &models.Macro{} })
}

// GetSearchJobResults fetches a page of a completed job's result rows as
// loosely-typed field maps, used both for rendering search results and for
// the internal-logs screen, which is itself backed by a search.
func (c *Client) GetSearchJobResults(ctx context.Context, sid string, count, offset int) ([]map[string]string, error) {
	query := url.Values{}
	if count > 0 {
		query.Set("count", strconv.Itoa(count))
	}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}

	body, err := c.restCall(ctx, callOptions{
		route:    "/services/search/jobs/{sid}/results",
		method:   http.MethodGet,
		segments: []string{"services", "search", "jobs", sid, "results"},
		query:    query,
	})
	if err != nil {
		return nil, trace.Wrap(err)
	}

	var parsed struct {
		Results []map[string]string `json:"results"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, splunkerr.Newf(splunkerr.KindInvalidResponse, "search results response was not valid JSON")
	}
	return parsed.Results, nil
}

// ListInternalLogs runs a canned search over the _internal index and
// returns its results as structured log entries (the `internal-logs`
// screen). It blocks until the job completes or ctx is canceled.
func (c *Client) ListInternalLogs(ctx context.Context, count int) ([]*models.LogEntry, error) {
	if count <= 0 {
		count = 100
	}
	status, err := c.SearchWithProgress(ctx, SearchParams{
		Query:      `search index=_internal | head ` + strconv.Itoa(count) + ` | fields _time, _indextime, log_level, component, message`,
		MaxResults: count,
	}, nil)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	if status.IsFailed {
		return nil, splunkerr.Newf(splunkerr.KindAPIError, "internal logs search failed")
	}

	rows, err := c.GetSearchJobResults(ctx, status.Name, count, 0)
	if err != nil {
		return nil, trace.Wrap(err)
	}

	entries := make([]*models.LogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, &models.LogEntry{
			Time:      row["_time"],
			IndexTime: row["_indextime"],
			Level:     row["log_level"],
			Component: row["component"],
			Message:   row["message"],
		})
	}
	return entries, nil
}
