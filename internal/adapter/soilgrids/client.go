// Package soilgrids implements the soil provider against the ISRIC SoilGrids
// properties API.
package soilgrids

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/couchcryptid/rainharvest-service/internal/observability"
)

// Client implements domain.SoilProvider using the SoilGrids v2.0 API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates a SoilGrids client. The timeout bounds the whole
// request; there are no retries.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger,
		metrics: metrics,
	}
}

// ClayContent fetches the raw clay properties object at 15-30cm depth for the
// given coordinates. The upstream payload shape is passed through untouched;
// an absent clay section yields an empty JSON object.
func (c *Client) ClayContent(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	params := url.Values{
		"lon":      {formatCoord(lon)},
		"lat":      {formatCoord(lat)},
		"property": {"clay"},
		"depth":    {"15-30cm"},
	}
	fullURL := c.baseURL + "/soilgrids/v2.0/properties/query?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ProviderDuration.WithLabelValues("soil").Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.ProviderRequests.WithLabelValues("soil", "error").Inc()
		return nil, fmt.Errorf("soil request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.metrics.ProviderRequests.WithLabelValues("soil", "error").Inc()
		return nil, fmt.Errorf("soilgrids API error: status %d: %s", resp.StatusCode, body)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.metrics.ProviderRequests.WithLabelValues("soil", "error").Inc()
		return nil, fmt.Errorf("decode response: %w", err)
	}

	c.metrics.ProviderRequests.WithLabelValues("soil", "success").Inc()

	clay := payload.Properties["clay"]
	if clay == nil {
		clay = json.RawMessage(`{}`)
	}
	return clay, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SoilGrids API response envelope. Only the clay section is extracted; its
// internal layout is upstream-defined and passed through raw.
type response struct {
	Properties map[string]json.RawMessage `json:"properties"`
}
