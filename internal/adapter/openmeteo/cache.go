package openmeteo

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/rainharvest-service/internal/cache"
	"github.com/couchcryptid/rainharvest-service/internal/domain"
	"github.com/couchcryptid/rainharvest-service/internal/observability"
)

// CachedClient wraps a forecast provider with a TTL'd in-memory cache keyed
// by rounded coordinates.
type CachedClient struct {
	inner   domain.ForecastProvider
	cache   *cache.Cache[[]*float64]
	metrics *observability.Metrics
}

// NewCachedClient creates a cache decorator around a forecast provider.
func NewCachedClient(inner domain.ForecastProvider, maxEntries int, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *CachedClient {
	return &CachedClient{
		inner:   inner,
		cache:   cache.New[[]*float64](maxEntries, ttl, clock),
		metrics: metrics,
	}
}

func (c *CachedClient) DailyPrecipitation(ctx context.Context, lat, lon float64) ([]*float64, error) {
	key := coordKey(lat, lon)
	if sums, ok := c.cache.Get(key); ok {
		c.metrics.ProviderCache.WithLabelValues("forecast", "hit").Inc()
		return sums, nil
	}
	c.metrics.ProviderCache.WithLabelValues("forecast", "miss").Inc()

	sums, err := c.inner.DailyPrecipitation(ctx, lat, lon)
	if err != nil {
		return nil, err
	}
	// Only cache non-empty windows so a transient empty response is retried.
	if len(sums) > 0 {
		c.cache.Put(key, sums)
	}
	return sums, nil
}

// coordKey rounds to ~11m so nearby lookups share an entry.
func coordKey(lat, lon float64) string {
	return fmt.Sprintf("%.4f,%.4f", lat, lon)
}
