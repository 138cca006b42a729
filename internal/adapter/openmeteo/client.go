// Package openmeteo implements the forecast provider against the Open-Meteo
// forecast API.
package openmeteo

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

// Client implements domain.ForecastProvider using the Open-Meteo API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates an Open-Meteo client. The timeout bounds the whole
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

// DailyPrecipitation fetches the daily precipitation sums (mm) for the
// forecast window at the given coordinates. Days without data come back nil.
func (c *Client) DailyPrecipitation(ctx context.Context, lat, lon float64) ([]*float64, error) {
	params := url.Values{
		"latitude":  {formatCoord(lat)},
		"longitude": {formatCoord(lon)},
		"daily":     {"precipitation_sum"},
		"timezone":  {"auto"},
	}
	fullURL := c.baseURL + "/v1/forecast?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ProviderDuration.WithLabelValues("forecast").Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.ProviderRequests.WithLabelValues("forecast", "error").Inc()
		return nil, fmt.Errorf("forecast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.metrics.ProviderRequests.WithLabelValues("forecast", "error").Inc()
		return nil, fmt.Errorf("open-meteo API error: status %d: %s", resp.StatusCode, body)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.metrics.ProviderRequests.WithLabelValues("forecast", "error").Inc()
		return nil, fmt.Errorf("decode response: %w", err)
	}

	c.metrics.ProviderRequests.WithLabelValues("forecast", "success").Inc()

	sums := payload.Daily.PrecipitationSum
	if sums == nil {
		sums = []*float64{}
	}
	return sums, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Open-Meteo API response types.

type response struct {
	Daily daily `json:"daily"`
}

type daily struct {
	PrecipitationSum []*float64 `json:"precipitation_sum"`
}
