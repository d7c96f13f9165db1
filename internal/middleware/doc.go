// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

/*
Package middleware provides HTTP middleware components for the API router.

Key Components:

  - RequestID: UUID-based request tracking, propagated to the logging context
  - RequestLogger: one structured zerolog line per request
  - PrometheusMetrics: request count, latency and in-flight gauge by route pattern

All middleware uses the func(http.Handler) http.Handler shape and is meant to
be installed with chi's r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.PrometheusMetrics)

PrometheusMetrics and RequestLogger read the chi route pattern after the
handler returns, so they must be installed on a chi router (not wrapped around it)
for the pattern to be known.
*/
package middleware
