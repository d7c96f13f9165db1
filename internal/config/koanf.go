// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/musictrends/config.yaml",
	"/etc/musictrends/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotenvPathEnvVar overrides the location of the optional .env file.
const DotenvPathEnvVar = "DOTENV_PATH"

const seedsPath = "connector.trending_seeds"

// defaultConfig returns a Config struct with all default values.
// Trending seeds are applied after unmarshaling, see applySeedDefaults.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8000,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Connector: ConnectorConfig{
			BaseURL:         "http://localhost:5100",
			SearchPath:      "/search/songs",
			Timeout:         10 * time.Second,
			RateLimitRPS:    5,
			RateLimitBurst:  5,
			MaxRetries:      3,
			RetryBaseDelay:  500 * time.Millisecond,
			ProbeTimeout:    5 * time.Second,
			MonitorInterval: 30 * time.Second,
		},
		Analytics: AnalyticsConfig{
			TrendingDefaultLimit: 25,
			SearchDefaultLimit:   20,
			AnalyticsLimit:       50,
			MaxLimit:             100,
		},
		Security: SecurityConfig{
			CORSOrigins: []string{
				"http://localhost:3000",
				"http://127.0.0.1:3000",
				"http://localhost:3001",
				"http://localhost:8080",
			},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Sentry: SentryConfig{
			SampleRate:       1.0,
			TracesSampleRate: 0.1,
		},
	}
}

// LoadWithKoanf loads configuration in layers:
//  1. struct defaults
//  2. optional YAML config file
//  3. optional .env file, merged into the process environment
//  4. environment variables (highest priority)
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: .env never overrides variables already set in the environment
	if err := loadDotenv(); err != nil {
		return nil, err
	}

	// Layer 4: Environment variables
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}
	if err := processSeedField(k); err != nil {
		return nil, fmt.Errorf("failed to process trending seeds: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.applySeedDefaults()
	if cfg.Sentry.Environment == "" {
		cfg.Sentry.Environment = cfg.Server.Environment
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) applySeedDefaults() {
	if len(c.Connector.TrendingSeeds) == 0 {
		c.Connector.TrendingSeeds = DefaultTrendingSeeds()
	}
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

func loadDotenv() error {
	path := os.Getenv(DotenvPathEnvVar)
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated environment strings to slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// processSeedField expands TRENDING_SEEDS ("query|genre|language;...") into
// the list shape the YAML file uses.
func processSeedField(k *koanf.Koanf) error {
	strVal, ok := k.Get(seedsPath).(string)
	if !ok {
		return nil
	}

	seeds, err := ParseSeeds(strVal)
	if err != nil {
		return err
	}
	list := make([]interface{}, len(seeds))
	for i, s := range seeds {
		list[i] = map[string]interface{}{
			"query":    s.Query,
			"genre":    s.Genre,
			"language": s.Language,
		}
	}
	return k.Set(seedsPath, list)
}

// ParseSeeds parses the compact seed list format "query|genre|language;...".
// Genre and language are optional.
func ParseSeeds(s string) ([]SeedConfig, error) {
	var seeds []SeedConfig
	for _, entry := range strings.Split(s, ";") {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		parts := strings.Split(entry, "|")
		if len(parts) > 3 {
			return nil, fmt.Errorf("invalid seed %q: expected query|genre|language", entry)
		}
		seed := SeedConfig{Query: strings.TrimSpace(parts[0])}
		if seed.Query == "" {
			return nil, fmt.Errorf("invalid seed %q: query is empty", entry)
		}
		if len(parts) > 1 {
			seed.Genre = strings.ToLower(strings.TrimSpace(parts[1]))
		}
		if len(parts) > 2 {
			seed.Language = strings.ToLower(strings.TrimSpace(parts[2]))
		}
		seeds = append(seeds, seed)
	}
	return seeds, nil
}

// envTransformFunc maps environment variable names to koanf paths.
// Unmapped keys are skipped.
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	envMappings := map[string]string{
		// Server
		"http_port":        "server.port",
		"port":             "server.port",
		"http_host":        "server.host",
		"http_timeout":     "server.timeout",
		"shutdown_timeout": "server.shutdown_timeout",
		"environment":      "server.environment",

		// Upstream catalog
		"jiosaavn_url":              "connector.base_url",
		"jiosaavn_api_url":          "connector.base_url",
		"jiosaavn_search_path":      "connector.search_path",
		"jiosaavn_timeout":          "connector.timeout",
		"jiosaavn_rate_limit":       "connector.rate_limit_rps",
		"jiosaavn_rate_burst":       "connector.rate_limit_burst",
		"jiosaavn_max_retries":      "connector.max_retries",
		"jiosaavn_retry_delay":      "connector.retry_base_delay",
		"jiosaavn_probe_timeout":    "connector.probe_timeout",
		"jiosaavn_monitor_interval": "connector.monitor_interval",
		"trending_seeds":            seedsPath,

		// Limits
		"trending_default_limit": "analytics.trending_default_limit",
		"search_default_limit":   "analytics.search_default_limit",
		"analytics_limit":        "analytics.analytics_limit",
		"max_limit":              "analytics.max_limit",

		// Security
		"cors_origins":        "security.cors_origins",
		"rate_limit_requests": "security.rate_limit_reqs",
		"rate_limit_window":   "security.rate_limit_window",
		"disable_rate_limit":  "security.rate_limit_disabled",

		// Logging
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",

		// Sentry
		"sentry_dsn":                "sentry.dsn",
		"sentry_environment":        "sentry.environment",
		"sentry_sample_rate":        "sentry.sample_rate",
		"sentry_traces_sample_rate": "sentry.traces_sample_rate",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return ""
}
