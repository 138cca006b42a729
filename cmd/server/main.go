// Command server runs the rainwater harvesting backend.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	httpadapter "github.com/couchcryptid/rainharvest-service/internal/adapter/http"
	"github.com/couchcryptid/rainharvest-service/internal/adapter/openmeteo"
	"github.com/couchcryptid/rainharvest-service/internal/adapter/soilgrids"
	"github.com/couchcryptid/rainharvest-service/internal/config"
	"github.com/couchcryptid/rainharvest-service/internal/domain"
	"github.com/couchcryptid/rainharvest-service/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	metrics := observability.NewMetrics()

	var forecast domain.ForecastProvider = openmeteo.NewClient(
		cfg.Providers.ForecastBaseURL, cfg.Providers.Timeout, logger, metrics)
	var soil domain.SoilProvider = soilgrids.NewClient(
		cfg.Providers.SoilBaseURL, cfg.Providers.Timeout, logger, metrics)

	// Response caching is opt-in via PROVIDER_CACHE_TTL.
	if cfg.Providers.CacheTTL > 0 {
		clock := clockwork.NewRealClock()
		forecast = openmeteo.NewCachedClient(forecast, cfg.Providers.CacheSize, cfg.Providers.CacheTTL, clock, metrics)
		soil = soilgrids.NewCachedClient(soil, cfg.Providers.CacheSize, cfg.Providers.CacheTTL, clock, metrics)
		logger.Info("provider caching enabled", "ttl", cfg.Providers.CacheTTL, "size", cfg.Providers.CacheSize)
	} else {
		logger.Info("provider caching disabled")
	}

	srv := httpadapter.NewServer(cfg.Server.Addr, domain.NewEstimator(), forecast, soil, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
