package grafana

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/weaveworks/common/http/client"
	"github.com/weaveworks/common/instrument"
)

var clientRequestCollector = instrument.NewHistogramCollectorFromOpts(prometheus.HistogramOpts{
	Namespace: "booking",
	Subsystem: "grafana_client",
	Name:      "request_duration_seconds",
	Help:      "Response time of Grafana API requests.",
	Buckets:   prometheus.DefBuckets,
})

func init() {
	clientRequestCollector.Register()
}

// Config holds where and how to reach the Grafana API.
type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// Client pushes dashboards to a Grafana instance.
type Client struct {
	cl  client.Requester
	cfg Config
}

// NewClient creates a Grafana API client.
func NewClient(cfg Config) *Client {
	return &Client{
		cl:  client.NewTimedClient(&http.Client{Timeout: cfg.Timeout}, clientRequestCollector),
		cfg: cfg,
	}
}

// ImportResponse is what the import API reports back.
type ImportResponse struct {
	UID         string `json:"uid,omitempty"`
	Slug        string `json:"slug,omitempty"`
	DashboardID int    `json:"dashboardId,omitempty"`
	Imported    bool   `json:"imported,omitempty"`
	ImportedURL string `json:"importedUrl,omitempty"`
}

// ImportDashboard uploads the envelope through the dashboard import
// API, overwriting any dashboard with the same uid.
func (c *Client) ImportDashboard(ctx context.Context, req UploadRequest) (*ImportResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	r, err := http.NewRequest("POST", c.cfg.URL+"/api/dashboards/import", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	r.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		r.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	ctx = context.WithValue(ctx, client.OperationNameContextKey, "ImportDashboard")
	resp, err := c.cl.Do(r.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var dest ImportResponse
	// Read the body even on error status since it may contain further
	// information.
	err = json.NewDecoder(resp.Body).Decode(&dest)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("import failed: %v", resp.Status)
	}
	if err != nil {
		return nil, err
	}
	return &dest, nil
}
