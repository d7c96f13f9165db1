// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package api

// Request parameter structs validated with go-playground/validator.
// The `query` tag names the parameter in validation messages.
//
// The upper limit bound comes from configuration (analytics.max_limit) and is
// checked separately in checkMaxLimit.

// TrendingRequest represents the validated query parameters for /trending.
type TrendingRequest struct {
	Limit int `query:"limit" validate:"min=1"`
}

// SearchRequest represents the validated query parameters for /search.
type SearchRequest struct {
	Query string `query:"query" validate:"notblank,max=200"`
	Limit int    `query:"limit" validate:"min=1"`
}
