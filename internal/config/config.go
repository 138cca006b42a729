package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config holds all service settings.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Providers ProvidersConfig `koanf:"providers"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Addr            string        `koanf:"addr"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // json or text
}

// ProvidersConfig controls the upstream forecast and soil clients.
// A CacheTTL of zero disables response caching.
type ProvidersConfig struct {
	ForecastBaseURL string        `koanf:"forecast_base_url"`
	SoilBaseURL     string        `koanf:"soil_base_url"`
	Timeout         time.Duration `koanf:"timeout"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
	CacheSize       int           `koanf:"cache_size"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Providers: ProvidersConfig{
			ForecastBaseURL: "https://api.open-meteo.com",
			SoilBaseURL:     "https://rest.isric.org",
			Timeout:         10 * time.Second,
			CacheTTL:        0,
			CacheSize:       256,
		},
	}
}

// envKeys maps environment variables to config paths. Variables not listed
// here are ignored.
var envKeys = map[string]string{
	"HTTP_ADDR":           "server.addr",
	"SHUTDOWN_TIMEOUT":    "server.shutdown_timeout",
	"LOG_LEVEL":           "log.level",
	"LOG_FORMAT":          "log.format",
	"FORECAST_BASE_URL":   "providers.forecast_base_url",
	"SOIL_BASE_URL":       "providers.soil_base_url",
	"PROVIDER_TIMEOUT":    "providers.timeout",
	"PROVIDER_CACHE_TTL":  "providers.cache_ttl",
	"PROVIDER_CACHE_SIZE": "providers.cache_size",
}

// Load builds the configuration from struct defaults overridden by
// environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	envProvider := env.Provider("", ".", func(key string) string {
		return envKeys[key]
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Addr == "" {
		return errors.New("HTTP_ADDR must not be empty")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	if c.Providers.ForecastBaseURL == "" {
		return errors.New("FORECAST_BASE_URL must not be empty")
	}
	if c.Providers.SoilBaseURL == "" {
		return errors.New("SOIL_BASE_URL must not be empty")
	}
	if c.Providers.Timeout <= 0 {
		return errors.New("PROVIDER_TIMEOUT must be positive")
	}
	if c.Providers.CacheTTL < 0 {
		return errors.New("PROVIDER_CACHE_TTL must not be negative")
	}
	if c.Providers.CacheSize <= 0 {
		return errors.New("PROVIDER_CACHE_SIZE must be positive")
	}
	return nil
}
