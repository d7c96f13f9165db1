// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

/*
Package connector fetches raw track records from a JioSaavn-compatible catalog API.

The package is layered:

  - Client talks HTTP to the catalog: rate limited, 429-aware, and parses
    catalog results into the canonical models.RawTrack shape.
  - Breaker wraps any Source with a sony/gobreaker circuit breaker so a failing
    upstream is rejected fast instead of tying up request goroutines.
  - Handle owns the lifecycle (not_initialized, ready, closed) and is what
    request handlers receive. Handlers never see a nil or half-built Source.

Errors are classified with sentinels so callers can map them to HTTP statuses:

	switch {
	case errors.Is(err, connector.ErrNotReady), errors.Is(err, connector.ErrUnavailable):
	    // 503
	case errors.Is(err, connector.ErrUpstream):
	    // 502
	}
*/
package connector

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/tomtom215/musictrends/internal/config"
	"github.com/tomtom215/musictrends/internal/models"
)

// Source is a catalog of raw track records.
type Source interface {
	// FetchTrending returns at most limit currently trending records.
	FetchTrending(ctx context.Context, limit int) ([]models.RawTrack, error)

	// Search returns at most limit records matching query.
	Search(ctx context.Context, query string, limit int) ([]models.RawTrack, error)

	// IsReachable reports whether the upstream answers at all.
	IsReachable(ctx context.Context) bool

	// Parse maps one upstream result onto the canonical raw shape.
	// It returns false when the result has no id.
	Parse(raw map[string]interface{}) (models.RawTrack, bool)
}

var (
	// ErrNotReady is returned when the connector has not been initialized or was closed.
	ErrNotReady = errors.New("connector not ready")

	// ErrUnavailable marks transport failures, 5xx/429 responses and an open circuit.
	ErrUnavailable = errors.New("catalog service unavailable")

	// ErrUpstream marks responses the catalog answered but that could not be used.
	ErrUpstream = errors.New("catalog service returned an invalid response")
)

// StatusError is a non-200 upstream response.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: catalog returned HTTP %d: %s", e.Operation, e.StatusCode, e.Body)
}

// Unwrap classifies the status as ErrUnavailable or ErrUpstream.
func (e *StatusError) Unwrap() error {
	if e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests {
		return ErrUnavailable
	}
	return ErrUpstream
}

// Seed is one search query contributing to the trending batch. Genre
// overrides the inferred genre of every track it finds; Language fills in
// tracks that carry none.
type Seed struct {
	Query    string
	Genre    string
	Language string
}

// SeedsFromConfig converts configured seeds.
func SeedsFromConfig(cfg []config.SeedConfig) []Seed {
	seeds := make([]Seed, 0, len(cfg))
	for _, s := range cfg {
		seeds = append(seeds, Seed{Query: s.Query, Genre: s.Genre, Language: s.Language})
	}
	return seeds
}
