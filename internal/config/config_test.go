package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "https://api.open-meteo.com", cfg.Providers.ForecastBaseURL)
	assert.Equal(t, "https://rest.isric.org", cfg.Providers.SoilBaseURL)
	assert.Equal(t, 10*time.Second, cfg.Providers.Timeout)
	assert.Equal(t, time.Duration(0), cfg.Providers.CacheTTL)
	assert.Equal(t, 256, cfg.Providers.CacheSize)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("FORECAST_BASE_URL", "http://forecast.local")
	t.Setenv("SOIL_BASE_URL", "http://soil.local")
	t.Setenv("PROVIDER_TIMEOUT", "3s")
	t.Setenv("PROVIDER_CACHE_TTL", "10m")
	t.Setenv("PROVIDER_CACHE_SIZE", "64")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "http://forecast.local", cfg.Providers.ForecastBaseURL)
	assert.Equal(t, "http://soil.local", cfg.Providers.SoilBaseURL)
	assert.Equal(t, 3*time.Second, cfg.Providers.Timeout)
	assert.Equal(t, 10*time.Minute, cfg.Providers.CacheTTL)
	assert.Equal(t, 64, cfg.Providers.CacheSize)
}

func TestLoad_UnknownEnvIgnored(t *testing.T) {
	t.Setenv("SOME_UNRELATED_VAR", "value")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_InvalidProviderTimeout(t *testing.T) {
	t.Setenv("PROVIDER_TIMEOUT", "-1s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PROVIDER_TIMEOUT")
}

func TestLoad_MalformedDuration(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_EmptyBaseURL(t *testing.T) {
	t.Setenv("FORECAST_BASE_URL", "")

	// An empty value overrides the default and fails validation.
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FORECAST_BASE_URL")
}
