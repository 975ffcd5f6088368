package splunkclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gravitational/trace"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/fitchmultz/splunk-tui/internal/logging"
	"github.com/fitchmultz/splunk-tui/internal/models"
	"github.com/fitchmultz/splunk-tui/internal/secret"
	"github.com/fitchmultz/splunk-tui/internal/splunkerr"
)

// HecConfig configures a HecClient. HEC is a distinct endpoint (spec
// §4.1h): a separate URL (usually port 8088) and a separate auth scheme
// ("Splunk <token>", never "Bearer <token>").
type HecConfig struct {
	URL        string
	Token      secret.Value
	HTTPClient *http.Client
	Clock      clockwork.Clock
	Collector  Collector
	Log        *logrus.Entry
}

func (c *HecConfig) checkAndSetDefaults() error {
	if c.URL == "" {
		return trace.BadParameter("hec config: url is required")
	}
	if c.Token.IsZero() {
		return trace.BadParameter("hec config: token is required")
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	if c.Clock == nil {
		c.Clock = clockwork.NewRealClock()
	}
	if c.Collector == nil {
		c.Collector = NoopCollector{}
	}
	if c.Log == nil {
		c.Log = logging.For("splunkclient.hec")
	}
	return nil
}

// HecClient talks to the HTTP Event Collector endpoint, independent of the
// management-API Client since it uses a different port and auth scheme.
type HecClient struct {
	cfg HecConfig
}

// NewHecClient constructs a HecClient from cfg.
func NewHecClient(cfg HecConfig) (*HecClient, error) {
	if err := cfg.checkAndSetDefaults(); err != nil {
		return nil, trace.Wrap(err)
	}
	return &HecClient{cfg: cfg}, nil
}

func (c *HecClient) authHeader() string {
	return "Splunk " + c.cfg.Token.Reveal()
}

// SendEvent submits a single event.
func (c *HecClient) SendEvent(ctx context.Context, event models.HecEvent) (*models.HecResponse, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, splunkerr.New(splunkerr.KindInvalidRequest, err)
	}
	return c.post(ctx, "/services/collector/event", body)
}

// SendBatch submits multiple events as a single HEC call. asNDJSON selects
// newline-delimited JSON objects (HEC's native batch framing); otherwise
// the batch is framed as a single JSON array.
func (c *HecClient) SendBatch(ctx context.Context, events []models.HecEvent, asNDJSON bool) (*models.HecResponse, error) {
	if asNDJSON {
		var buf bytes.Buffer
		for _, event := range events {
			encoded, err := json.Marshal(event)
			if err != nil {
				return nil, splunkerr.New(splunkerr.KindInvalidRequest, err)
			}
			buf.Write(encoded)
			buf.WriteByte('\n')
		}
		return c.post(ctx, "/services/collector/event", buf.Bytes())
	}

	body, err := json.Marshal(events)
	if err != nil {
		return nil, splunkerr.New(splunkerr.KindInvalidRequest, err)
	}
	return c.post(ctx, "/services/collector/event", body)
}

// HealthCheck probes the HEC health endpoint.
func (c *HecClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(c.cfg.URL, "/")+"/services/collector/health", nil)
	if err != nil {
		return splunkerr.New(splunkerr.KindInvalidRequest, err)
	}
	req.Header.Set("Authorization", c.authHeader())

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return splunkerr.New(splunkerr.KindTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return splunkerr.Newf(splunkerr.KindAPIError, "hec health check failed with status %d", resp.StatusCode)
	}
	return nil
}

// AckStatus polls acknowledgement status for a set of ack IDs returned by a
// prior indexer-acknowledgement-enabled submission.
func (c *HecClient) AckStatus(ctx context.Context, ackIDs []int64) (map[int64]bool, error) {
	reqBody, err := json.Marshal(struct {
		Acks []int64 `json:"acks"`
	}{Acks: ackIDs})
	if err != nil {
		return nil, splunkerr.New(splunkerr.KindInvalidRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(c.cfg.URL, "/")+"/services/collector/ack", bytes.NewReader(reqBody))
	if err != nil {
		return nil, splunkerr.New(splunkerr.KindInvalidRequest, err)
	}
	req.Header.Set("Authorization", c.authHeader())
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, splunkerr.New(splunkerr.KindTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, splunkerr.New(splunkerr.KindInvalidResponse, err)
	}
	if resp.StatusCode/100 != 2 {
		return nil, splunkerr.Newf(splunkerr.KindAPIError, "hec ack status failed with status %d", resp.StatusCode)
	}

	var parsed struct {
		Acks map[string]bool `json:"acks"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, splunkerr.New(splunkerr.KindInvalidResponse, err)
	}

	out := make(map[int64]bool, len(parsed.Acks))
	for key, acked := range parsed.Acks {
		id, convErr := strconv.ParseInt(key, 10, 64)
		if convErr != nil {
			continue
		}
		out[id] = acked
	}
	return out, nil
}

func (c *HecClient) post(ctx context.Context, path string, body []byte) (*models.HecResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(c.cfg.URL, "/")+path, bytes.NewReader(body))
	if err != nil {
		return nil, splunkerr.New(splunkerr.KindInvalidRequest, err)
	}
	req.Header.Set("Authorization", c.authHeader())
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, splunkerr.New(splunkerr.KindTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, splunkerr.New(splunkerr.KindInvalidResponse, err)
	}

	var hecResp models.HecResponse
	if err := json.Unmarshal(respBody, &hecResp); err != nil {
		return nil, splunkerr.New(splunkerr.KindInvalidResponse, err)
	}
	if resp.StatusCode/100 != 2 {
		return &hecResp, splunkerr.Newf(splunkerr.KindAPIError, "hec submission failed with status %d: %s", resp.StatusCode, hecResp.Text)
	}
	return &hecResp, nil
}
