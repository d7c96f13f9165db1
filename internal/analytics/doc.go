// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

/*
Package analytics computes trend statistics over a batch of normalized tracks
and assembles them into the API response shapes.

The package has two layers:

  - Engine (engine.go): pure functions over []models.Track. TotalPlays,
    AveragePopularity, MedianPopularity, UniqueArtistCount, Distribution,
    Argmax, PercentageMatching and CompletenessCounts.
  - Assembler (assembler.go): composes engine outputs into
    models.TrendingResponse, models.AnalyticsResponse and
    models.SearchResponse.

Every function is total over an empty batch except the averages and the
trending/analytics assemblers, which return ErrEmptyBatch. Request handlers
check for an empty batch first and answer with "not found" instead.

Rounding:

All rounding is half away from zero (math.Round). Percentages are 0-100
values rounded to one decimal place. A batch of four tracks with one
bollywood track yields 25.0.

Thread Safety:

Nothing in this package holds mutable state. An Assembler may be shared
across goroutines.
*/
package analytics
