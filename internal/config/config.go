// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values from defaultConfig()
//  2. Config File: optional YAML file (CONFIG_PATH, config.yaml, ...)
//  3. .env File: loaded into the process environment when present
//  4. Environment Variables: override any setting
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Connector ConnectorConfig `koanf:"connector"`
	Analytics AnalyticsConfig `koanf:"analytics"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Sentry    SentryConfig    `koanf:"sentry"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST (default: 0.0.0.0)
//   - HTTP_PORT (default: 8000)
//   - HTTP_TIMEOUT (default: 30s)
//   - SHUTDOWN_TIMEOUT (default: 10s)
//   - ENVIRONMENT: development, staging, production (default: development)
type ServerConfig struct {
	Port            int           `koanf:"port" validate:"gte=1,lte=65535"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	Environment     string        `koanf:"environment" validate:"oneof=development staging production"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ConnectorConfig configures the upstream music catalog client.
//
// Environment Variables:
//   - JIOSAAVN_URL: base URL of the catalog API (default: http://localhost:5100)
//   - JIOSAAVN_SEARCH_PATH: search endpoint path (default: /search/songs)
//   - JIOSAAVN_TIMEOUT: per-request timeout (default: 10s)
//   - JIOSAAVN_RATE_LIMIT: requests per second towards upstream (default: 5)
//   - JIOSAAVN_RATE_BURST: limiter burst (default: 5)
//   - JIOSAAVN_MAX_RETRIES: retries after HTTP 429 (default: 3)
//   - JIOSAAVN_RETRY_DELAY: base backoff delay (default: 500ms)
//   - JIOSAAVN_PROBE_TIMEOUT: reachability probe timeout (default: 5s)
//   - JIOSAAVN_MONITOR_INTERVAL: interval between background probes, 0 disables (default: 30s)
//   - TRENDING_SEEDS: "query|genre|language;..." list of trending seed queries
type ConnectorConfig struct {
	BaseURL         string        `koanf:"base_url" validate:"required"`
	SearchPath      string        `koanf:"search_path" validate:"required,startswith=/"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	RateLimitRPS    float64       `koanf:"rate_limit_rps" validate:"gt=0"`
	RateLimitBurst  int           `koanf:"rate_limit_burst" validate:"gte=1"`
	MaxRetries      int           `koanf:"max_retries" validate:"gte=0,lte=10"`
	RetryBaseDelay  time.Duration `koanf:"retry_base_delay" validate:"gte=0"`
	ProbeTimeout    time.Duration `koanf:"probe_timeout" validate:"gt=0"`
	MonitorInterval time.Duration `koanf:"monitor_interval" validate:"gte=0"`
	TrendingSeeds   []SeedConfig  `koanf:"trending_seeds"`
}

// SeedConfig is one search query used to assemble the trending batch.
// Tracks found by the query are tagged with Genre, and with Language when the
// upstream record carries none.
type SeedConfig struct {
	Query    string `koanf:"query"`
	Genre    string `koanf:"genre"`
	Language string `koanf:"language"`
}

// DefaultTrendingSeeds returns the built-in trending seed queries.
func DefaultTrendingSeeds() []SeedConfig {
	return []SeedConfig{
		{Query: "bollywood hits", Genre: "bollywood", Language: "hindi"},
		{Query: "trending now", Genre: "trending"},
		{Query: "punjabi hits", Genre: "punjabi", Language: "punjabi"},
		{Query: "telugu hits", Genre: "south_indian", Language: "telugu"},
		{Query: "tamil hits", Genre: "south_indian", Language: "tamil"},
	}
}

// AnalyticsConfig holds request limits.
//
// Environment Variables:
//   - TRENDING_DEFAULT_LIMIT (default: 25)
//   - SEARCH_DEFAULT_LIMIT (default: 20)
//   - ANALYTICS_LIMIT: batch size for /analytics (default: 50)
//   - MAX_LIMIT: upper bound accepted for ?limit (default: 100)
type AnalyticsConfig struct {
	TrendingDefaultLimit int `koanf:"trending_default_limit" validate:"gte=1"`
	SearchDefaultLimit   int `koanf:"search_default_limit" validate:"gte=1"`
	AnalyticsLimit       int `koanf:"analytics_limit" validate:"gte=1"`
	MaxLimit             int `koanf:"max_limit" validate:"gte=1,lte=1000"`
}

// SecurityConfig holds CORS and rate limiting settings.
//
// Environment Variables:
//   - CORS_ORIGINS: comma-separated allowed origins
//   - RATE_LIMIT_REQUESTS (default: 100)
//   - RATE_LIMIT_WINDOW (default: 1m)
//   - DISABLE_RATE_LIMIT (default: false)
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"gte=1,lte=100000"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// SentryConfig configures error reporting. Reporting is disabled when DSN is empty.
//
// Environment Variables:
//   - SENTRY_DSN
//   - SENTRY_ENVIRONMENT (default: server environment)
//   - SENTRY_SAMPLE_RATE (default: 1.0)
//   - SENTRY_TRACES_SAMPLE_RATE (default: 0.1)
type SentryConfig struct {
	DSN              string  `koanf:"dsn"`
	Environment      string  `koanf:"environment"`
	SampleRate       float64 `koanf:"sample_rate" validate:"gte=0,lte=1"`
	TracesSampleRate float64 `koanf:"traces_sample_rate" validate:"gte=0,lte=1"`
}

// Load reads configuration from defaults, config file and environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
