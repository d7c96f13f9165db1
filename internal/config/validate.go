// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tomtom215/musictrends/internal/validation"
)

// Validate checks struct tags first, then cross-field rules.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}

	if err := validateHTTPURL(c.Connector.BaseURL, "connector.base_url"); err != nil {
		return err
	}
	if err := c.Analytics.validateLimits(); err != nil {
		return err
	}
	for i, seed := range c.Connector.TrendingSeeds {
		if strings.TrimSpace(seed.Query) == "" {
			return fmt.Errorf("connector.trending_seeds[%d]: query is required", i)
		}
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			continue
		}
		if err := validateHTTPURL(origin, "security.cors_origins"); err != nil {
			return err
		}
	}
	return nil
}

func (a AnalyticsConfig) validateLimits() error {
	for name, v := range map[string]int{
		"analytics.trending_default_limit": a.TrendingDefaultLimit,
		"analytics.search_default_limit":   a.SearchDefaultLimit,
		"analytics.analytics_limit":        a.AnalyticsLimit,
	} {
		if v > a.MaxLimit {
			return fmt.Errorf("%s (%d) exceeds analytics.max_limit (%d)", name, v, a.MaxLimit)
		}
	}
	return nil
}

// validateHTTPURL validates that a URL is a well-formed http(s) base URL.
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}

	// Allow trailing slash but no other paths
	if parsedURL.Path != "" && parsedURL.Path != "/" {
		return fmt.Errorf("%s should be base URL only, remove path: %s", fieldName, parsedURL.Path)
	}

	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}

	return nil
}
