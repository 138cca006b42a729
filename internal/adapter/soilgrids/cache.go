package soilgrids

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/rainharvest-service/internal/cache"
	"github.com/couchcryptid/rainharvest-service/internal/domain"
	"github.com/couchcryptid/rainharvest-service/internal/observability"
)

// CachedClient wraps a soil provider with a TTL'd in-memory cache keyed by
// rounded coordinates. Soil properties change on geological timescales, so
// even a long TTL is conservative.
type CachedClient struct {
	inner   domain.SoilProvider
	cache   *cache.Cache[json.RawMessage]
	metrics *observability.Metrics
}

// NewCachedClient creates a cache decorator around a soil provider.
func NewCachedClient(inner domain.SoilProvider, maxEntries int, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *CachedClient {
	return &CachedClient{
		inner:   inner,
		cache:   cache.New[json.RawMessage](maxEntries, ttl, clock),
		metrics: metrics,
	}
}

func (c *CachedClient) ClayContent(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	key := fmt.Sprintf("%.4f,%.4f", lat, lon)
	if clay, ok := c.cache.Get(key); ok {
		c.metrics.ProviderCache.WithLabelValues("soil", "hit").Inc()
		return clay, nil
	}
	c.metrics.ProviderCache.WithLabelValues("soil", "miss").Inc()

	clay, err := c.inner.ClayContent(ctx, lat, lon)
	if err != nil {
		return nil, err
	}
	// Only cache substantive payloads; an empty object means the upstream
	// had nothing for the point and may fill in later.
	if len(clay) > 2 {
		c.cache.Put(key, clay)
	}
	return clay, nil
}
