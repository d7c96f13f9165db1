// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

/*
Package models defines the data structures shared across Musictrends.

Key Components:

  - Track: the canonical, normalized music track record
  - RawTrack: the loosely typed mapping produced by the upstream connector
  - Normalize / NormalizeBatch: the boundary that turns RawTrack values into
    Track values, dropping records without a track ID
  - TrendingResponse, AnalyticsResponse, SearchResponse: the JSON shapes
    returned by the HTTP API
  - HealthResponse, ServiceInfo, TestResponse: operational documents

Normalization Rules:

  - Missing or unparseable numeric fields become 0; negative values clamp to 0
  - language and genre are trimmed and lower-cased so percentage comparisons
    can use exact string equality
  - Optional URLs (image_url, preview_url) are nil when absent or blank
  - Normalize is idempotent: Normalize(t.ToRaw()) returns t unchanged

Thread Safety:

All types are plain values. A Track batch is built once per request and is
never mutated afterwards, so it may be shared freely between goroutines.
*/
package models
