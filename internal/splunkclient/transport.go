package splunkclient

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gravitational/trace"

	"github.com/fitchmultz/splunk-tui/internal/models"
	"github.com/fitchmultz/splunk-tui/internal/splunkerr"
)

// buildURL joins baseURL with percent-encoded path segments and a query
// string using net/url rather than manual concatenation (spec §4.1e: "Base
// URL joining uses a URL parser; manual string concatenation is forbidden
// for path segments").
func buildURL(baseURL string, segments []string, query url.Values) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", splunkerr.New(splunkerr.KindInvalidURL, err)
	}
	encoded := make([]string, 0, len(segments))
	for _, seg := range segments {
		encoded = append(encoded, EncodePathSegment(seg))
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.Join(encoded, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

// outputModeJSON ensures every management-API call asks for JSON rather
// than Splunk's default Atom XML, so callers can use encoding/json
// uniformly (session login is the one endpoint that can't honor this
// before authentication on some Splunk versions, handled separately in
// auth.go).
func outputModeJSON(q url.Values) url.Values {
	if q == nil {
		q = url.Values{}
	}
	q.Set("output_mode", "json")
	return q
}

// restEnvelope is the generic {entry:[{name, content}]} wrapper (spec
// §4.1f), decoded once and then flattened per-resource via
// models.MergeName.
type restEnvelope struct {
	Entry []struct {
		Name    string          `json:"name"`
		Content json.RawMessage `json:"content"`
	} `json:"entry"`
}

// callOptions configures one logical REST call.
type callOptions struct {
	route    string // route template, e.g. "/services/data/indexes/{name}"
	method   string
	segments []string
	query    url.Values
	body     any // marshaled as a form (POST) or omitted (GET/DELETE)
}

// doEnvelopeList executes callOptions and decodes the {entry:[...]}
// envelope into a slice of PT, merging each entry's name into the decoded
// content via models.MergeName per spec §4.1f. PT is constrained to *T
// implementing models.Named so every resource model shares the same merge
// path instead of each caller repeating it.
func doEnvelopeList[T any, PT interface {
	*T
	models.Named
}](ctx context.Context, c *Client, opts callOptions, newT func() PT) ([]PT, error) {
	body, err := c.restCall(ctx, opts)
	if err != nil {
		return nil, trace.Wrap(err)
	}

	var envelope restEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, splunkerr.New(splunkerr.KindInvalidResponse, err)
	}

	out := make([]PT, 0, len(envelope.Entry))
	for _, entry := range envelope.Entry {
		item := newT()
		if len(entry.Content) > 0 {
			if err := models.MergeName(entry.Name, entry.Content, item); err != nil {
				return nil, splunkerr.New(splunkerr.KindInvalidResponse, err)
			}
		} else {
			item.SetName(entry.Name)
		}
		out = append(out, item)
	}
	return out, nil
}

// doEnvelopeSingle executes callOptions expecting exactly one entry,
// returning NotFound if the envelope is empty (spec §4.1f: "Single-resource
// GETs return the first entry or NotFound").
func doEnvelopeSingle[T any, PT interface {
	*T
	models.Named
}](ctx context.Context, c *Client, opts callOptions, newT func() PT) (PT, error) {
	items, err := doEnvelopeList[T, PT](ctx, c, opts, newT)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	if len(items) == 0 {
		return nil, splunkerr.Newf(splunkerr.KindNotFound, "resource not found at %s", opts.route)
	}
	return items[0], nil
}

// restCall performs one logical REST call end-to-end: resolve auth header,
// issue the HTTP request, classify the response, and on a single 401
// invalidate the cached auth and retry exactly once before surfacing
// AuthFailed (spec §4.1a). The surrounding retry/circuit/metrics machinery
// in client.go's execute wraps this as the per-attempt thunk.
func (c *Client) restCall(ctx context.Context, opts callOptions) ([]byte, error) {
	opts.query = outputModeJSON(opts.query)

	spec := requestSpec{
		route:  opts.route,
		method: opts.method,
		do: func(ctx context.Context) (int, time.Duration, []byte, error) {
			return c.attemptWithReauth(ctx, opts)
		},
	}
	return c.execute(ctx, spec)
}

// attemptWithReauth issues the HTTP call, retrying exactly once after
// invalidating cached auth if the first attempt returns 401 (spec §4.1a).
// This retry is outside the max_retries budget since it is a distinct
// failure mode (stale session), not transient server unavailability.
func (c *Client) attemptWithReauth(ctx context.Context, opts callOptions) (int, time.Duration, []byte, error) {
	status, retryAfter, body, err := c.attemptOnce(ctx, opts)
	if err == nil {
		return status, retryAfter, body, nil
	}
	se, ok := splunkerr.As(err)
	if !ok || se.Kind() != splunkerr.KindAuthFailed || status != http.StatusUnauthorized {
		return status, retryAfter, body, err
	}

	c.cfg.Auth.Invalidate()
	return c.attemptOnce(ctx, opts)
}

func (c *Client) attemptOnce(ctx context.Context, opts callOptions) (int, time.Duration, []byte, error) {
	endpoint, err := buildURL(c.cfg.BaseURL, opts.segments, opts.query)
	if err != nil {
		return 0, 0, nil, err
	}

	var bodyReader io.Reader
	contentType := ""
	if opts.body != nil {
		if form, ok := opts.body.(url.Values); ok {
			bodyReader = strings.NewReader(form.Encode())
			contentType = "application/x-www-form-urlencoded"
		} else {
			encoded, mErr := json.Marshal(opts.body)
			if mErr != nil {
				return 0, 0, nil, splunkerr.New(splunkerr.KindInvalidRequest, mErr)
			}
			bodyReader = bytes.NewReader(encoded)
			contentType = "application/json"
		}
	}

	req, err := http.NewRequestWithContext(ctx, opts.method, endpoint, bodyReader)
	if err != nil {
		return 0, 0, nil, splunkerr.New(splunkerr.KindInvalidRequest, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	authHeader, err := c.authHeader(ctx)
	if err != nil {
		return 0, 0, nil, err
	}
	req.Header.Set("Authorization", authHeader)

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, 0, nil, splunkerr.New(splunkerr.KindCancelled, ctx.Err())
		}
		return 0, 0, nil, splunkerr.New(splunkerr.KindTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, 0, nil, splunkerr.New(splunkerr.KindInvalidResponse, err)
	}

	return classifyResponse(resp, body)
}

// classifyResponse maps an HTTP status code to the error taxonomy (spec
// §7), returning a nil error for 2xx.
func classifyResponse(resp *http.Response, body []byte) (int, time.Duration, []byte, error) {
	status := resp.StatusCode
	requestID := resp.Header.Get("X-Request-Id")
	reqURL := resp.Request.URL.String()

	if status/100 == 2 {
		return status, 0, body, nil
	}

	switch status {
	case http.StatusUnauthorized:
		err := splunkerr.Newf(splunkerr.KindAuthFailed, "unauthorized (status %d)", status)
		err.Status, err.URL, err.RequestID = status, reqURL, requestID
		return status, 0, body, err
	case http.StatusForbidden:
		err := splunkerr.Newf(splunkerr.KindForbidden, "forbidden (status %d)", status)
		err.Status, err.URL, err.RequestID = status, reqURL, requestID
		return status, 0, body, err
	case http.StatusNotFound:
		err := splunkerr.Newf(splunkerr.KindNotFound, "not found (status %d)", status)
		err.Status, err.URL, err.RequestID = status, reqURL, requestID
		return status, 0, body, err
	case http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"), time.Now())
		err := splunkerr.Newf(splunkerr.KindRateLimited, "rate limited (status %d)", status)
		err.Status, err.URL, err.RequestID = status, reqURL, requestID
		err.RetryAfter = int(retryAfter.Seconds())
		return status, retryAfter, body, err
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		err := splunkerr.Newf(splunkerr.KindServiceUnavailable, "service unavailable (status %d)", status)
		err.Status, err.URL, err.RequestID = status, reqURL, requestID
		return status, 0, body, err
	default:
		err := splunkerr.Newf(splunkerr.KindAPIError, "api error (status %d)", status)
		err.Status, err.URL, err.RequestID = status, reqURL, requestID
		return status, 0, body, err
	}
}

// parseErrorMessages extracts Splunk's {messages:[{type,text}]} error body
// shape, used by callers that want to surface Splunk's own message text in
// verbose CLI output (spec §7 "structured detail").
func parseErrorMessages(body []byte) []string {
	var parsed struct {
		Messages []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil
	}
	out := make([]string, 0, len(parsed.Messages))
	for _, m := range parsed.Messages {
		out = append(out, m.Type+": "+m.Text)
	}
	return out
}

// decodeXMLFallback is used only by doctor/health probes that may receive
// Atom XML from very old Splunk versions ignoring output_mode=json.
func decodeXMLFallback(body []byte, out any) error {
	if err := xml.Unmarshal(body, out); err != nil {
		return splunkerr.New(splunkerr.KindInvalidResponse, err)
	}
	return nil
}
