// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package connector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/musictrends/internal/config"
	"github.com/tomtom215/musictrends/internal/errreport"
	"github.com/tomtom215/musictrends/internal/logging"
	"github.com/tomtom215/musictrends/internal/metrics"
	"github.com/tomtom215/musictrends/internal/models"
)

const (
	// maxErrorBodySize is the maximum size of error response bodies to read.
	maxErrorBodySize = 64 * 1024

	opSearch   = "search"
	opTrending = "trending"
	opProbe    = "probe"
)

// Client is the JioSaavn HTTP client. It is safe for concurrent use.
type Client struct {
	baseURL        string
	searchPath     string
	client         *http.Client
	limiter        *rate.Limiter
	maxRetries     int
	retryBaseDelay time.Duration
	seeds          []Seed
}

// NewClient creates a catalog client from configuration.
func NewClient(cfg *config.ConnectorConfig) *Client {
	seeds := SeedsFromConfig(cfg.TrendingSeeds)
	if len(seeds) == 0 {
		seeds = SeedsFromConfig(config.DefaultTrendingSeeds())
	}

	burst := cfg.RateLimitBurst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		searchPath: cfg.SearchPath,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter:        rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), burst),
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: cfg.RetryBaseDelay,
		seeds:          seeds,
	}
}

// readBodyForError reads a limited amount of the response body for error messages.
func readBodyForError(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return "(failed to read response body)"
	}
	if len(body) == maxErrorBodySize {
		return string(body) + "\n... (truncated)"
	}
	return string(body)
}

// searchEnvelope covers both the v4 ({"success":true}) and legacy
// ({"status":"SUCCESS"}) response wrappers.
type searchEnvelope struct {
	Status  string `json:"status"`
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Results []map[string]interface{} `json:"results"`
	} `json:"data"`
}

func (e *searchEnvelope) ok() bool {
	if e.Success != nil {
		return *e.Success
	}
	return strings.EqualFold(e.Status, "success")
}

// doRequestWithRateLimit performs a GET with client-side rate limiting and
// retries HTTP 429 responses with exponential backoff.
func (c *Client) doRequestWithRateLimit(ctx context.Context, operation, reqURL string) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %s request failed: %w", ErrUnavailable, operation, err)
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		_ = resp.Body.Close()

		if attempt == c.maxRetries {
			return nil, &StatusError{
				Operation:  operation,
				StatusCode: http.StatusTooManyRequests,
				Body:       fmt.Sprintf("rate limit exceeded after %d retries", c.maxRetries),
			}
		}

		delay := c.retryBaseDelay * time.Duration(1<<uint(attempt))
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds >= 0 {
				delay = time.Duration(seconds) * time.Second
			}
		}

		metrics.ConnectorRetries.WithLabelValues(operation).Inc()
		logging.Ctx(ctx).Debug().
			Str("operation", operation).
			Int("attempt", attempt+1).
			Dur("delay", delay).
			Msg("Catalog rate limited, backing off")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// searchResults runs one search request and returns the unparsed results.
func (c *Client) searchResults(ctx context.Context, operation, query string, limit int) ([]map[string]interface{}, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", "1")
	params.Set("limit", strconv.Itoa(limit))
	reqURL := c.baseURL + c.searchPath + "?" + params.Encode()

	resp, err := c.doRequestWithRateLimit(ctx, operation, reqURL)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Body:       readBodyForError(resp.Body),
		}
	}

	var envelope searchEnvelope
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s response: %w", ErrUpstream, operation, err)
	}
	if !envelope.ok() {
		return nil, fmt.Errorf("%w: %s response not successful: %s", ErrUpstream, operation, envelope.Message)
	}
	return envelope.Data.Results, nil
}

// Search returns at most limit parsed tracks matching query.
func (c *Client) Search(ctx context.Context, query string, limit int) (tracks []models.RawTrack, err error) {
	ctx, finish := errreport.StartSpan(ctx, "connector.search", query)
	start := time.Now()
	defer func() {
		metrics.RecordConnectorRequest(opSearch, time.Since(start), err)
		finish(err)
	}()

	results, err := c.searchResults(ctx, opSearch, query, limit)
	if err != nil {
		return nil, err
	}

	tracks = make([]models.RawTrack, 0, len(results))
	dropped := 0
	for _, item := range results {
		if len(tracks) == limit {
			break
		}
		raw, ok := c.Parse(item)
		if !ok {
			dropped++
			continue
		}
		tracks = append(tracks, raw)
	}
	recordDropped(opSearch, dropped)
	return tracks, nil
}

// FetchTrending assembles a trending batch from the configured seed queries.
// Seeds are queried in order, results are de-duplicated by id and the batch
// is truncated to limit. A seed the catalog answers unusably is skipped and
// an error is returned only when every seed fails. An unavailable catalog
// ends the loop at once.
func (c *Client) FetchTrending(ctx context.Context, limit int) (tracks []models.RawTrack, err error) {
	ctx, finish := errreport.StartSpan(ctx, "connector.trending", fmt.Sprintf("limit=%d", limit))
	start := time.Now()
	defer func() {
		metrics.RecordConnectorRequest(opTrending, time.Since(start), err)
		finish(err)
	}()

	perSeed := (limit + len(c.seeds) - 1) / len(c.seeds)
	seen := make(map[string]struct{}, limit)
	tracks = make([]models.RawTrack, 0, limit)

	var lastErr error
	succeeded, dropped := 0, 0
	for _, seed := range c.seeds {
		if len(tracks) >= limit {
			break
		}

		results, err := c.searchResults(ctx, opTrending, seed.Query, perSeed)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if errors.Is(err, ErrUnavailable) {
				return nil, fmt.Errorf("trending seed %q: %w", seed.Query, err)
			}
			lastErr = err
			logging.Ctx(ctx).Warn().Err(err).Str("seed", seed.Query).Msg("Trending seed query failed")
			continue
		}
		succeeded++

		for _, item := range results {
			raw, ok := parseTrack(item)
			if !ok {
				dropped++
				continue
			}
			id := models.CoerceString(raw[models.FieldTrackID])
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			tracks = append(tracks, applySeed(raw, seed))
			if len(tracks) == limit {
				break
			}
		}
	}

	recordDropped(opTrending, dropped)

	if succeeded == 0 && lastErr != nil {
		return nil, fmt.Errorf("all %d trending seed queries failed: %w", len(c.seeds), lastErr)
	}
	return tracks, nil
}

// IsReachable probes the catalog root. Any status below 500 counts as reachable.
func (c *Client) IsReachable(ctx context.Context) bool {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", http.NoBody)
	if err != nil {
		return false
	}

	resp, err := c.client.Do(req)
	if err == nil {
		_ = resp.Body.Close()
		if resp.StatusCode >= http.StatusInternalServerError {
			err = &StatusError{Operation: opProbe, StatusCode: resp.StatusCode}
		}
	}
	metrics.RecordConnectorRequest(opProbe, time.Since(start), err)
	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("base_url", c.baseURL).Msg("Catalog probe failed")
		return false
	}
	return true
}

// Parse maps one catalog search result onto the canonical raw shape.
func (c *Client) Parse(raw map[string]interface{}) (models.RawTrack, bool) {
	track, ok := parseTrack(raw)
	if !ok {
		return nil, false
	}
	return applySeed(track, Seed{}), true
}

func recordDropped(operation string, n int) {
	if n > 0 {
		metrics.TracksDropped.WithLabelValues(operation).Add(float64(n))
	}
}
