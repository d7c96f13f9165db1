// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/tomtom215/musictrends/internal/logging"
	"github.com/tomtom215/musictrends/internal/models"
)

// Trending godoc
//
//	@Summary		Trending tracks with analytics
//	@Description	Returns the current trending batch with overview statistics, distributions, top performers and market insights
//	@Tags			Music
//	@Produce		json
//	@Param			limit	query		int	false	"Number of tracks (1-100)"	default(25)
//	@Success		200		{object}	models.TrendingResponse
//	@Failure		400		{object}	ErrorResponse	"Invalid limit"
//	@Failure		404		{object}	ErrorResponse	"No trending tracks"
//	@Failure		500		{object}	ErrorResponse	"Aggregation failure"
//	@Failure		503		{object}	ErrorResponse	"Music catalog unavailable"
//	@Router			/trending [get]
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	limit, apiErr := getIntParam(r, "limit", h.limits.TrendingDefaultLimit)
	if apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}
	req := TrendingRequest{Limit: limit}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}
	if apiErr := checkMaxLimit(req.Limit, h.limits.MaxLimit); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	batch, ok := h.fetchTrending(w, r, "trending", req.Limit)
	if !ok {
		return
	}

	resp, err := assemble("trending", len(batch), func() (*models.TrendingResponse, error) {
		return h.assembler.Trending(batch, req.Limit)
	})
	if err != nil {
		respondInternalError(w, r, "trending", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Int("limit", req.Limit).
		Int("tracks", len(batch)).
		Msg("Served trending tracks")
	respondJSON(w, http.StatusOK, resp)
}

// Analytics godoc
//
//	@Summary		Comprehensive market analytics
//	@Description	Analyzes a fixed-size trending batch: market overview, content distribution, performance metrics, market insights and data quality
//	@Tags			Music
//	@Produce		json
//	@Success		200	{object}	models.AnalyticsResponse
//	@Failure		404	{object}	ErrorResponse	"No tracks to analyze"
//	@Failure		500	{object}	ErrorResponse	"Aggregation failure"
//	@Failure		503	{object}	ErrorResponse	"Music catalog unavailable"
//	@Router			/analytics [get]
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	limit := h.limits.AnalyticsLimit

	batch, ok := h.fetchTrending(w, r, "analytics", limit)
	if !ok {
		return
	}

	resp, err := assemble("analytics", len(batch), func() (*models.AnalyticsResponse, error) {
		return h.assembler.Analytics(batch, limit)
	})
	if err != nil {
		respondInternalError(w, r, "analytics", err)
		return
	}

	logging.Ctx(r.Context()).Info().Int("tracks", len(batch)).Msg("Served market analytics")
	respondJSON(w, http.StatusOK, resp)
}

// Search godoc
//
//	@Summary		Search tracks
//	@Description	Searches the music catalog and returns matching tracks with search insights. An empty result is a successful response without analytics.
//	@Tags			Music
//	@Produce		json
//	@Param			query	query		string	true	"Search query"
//	@Param			limit	query		int		false	"Number of results (1-100)"	default(20)
//	@Success		200		{object}	models.SearchResponse
//	@Failure		400		{object}	ErrorResponse	"Blank query or invalid limit"
//	@Failure		500		{object}	ErrorResponse	"Aggregation failure"
//	@Failure		502		{object}	ErrorResponse	"Invalid upstream response"
//	@Failure		503		{object}	ErrorResponse	"Music catalog unavailable"
//	@Router			/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	// Readiness is reported before any parameter problem.
	src, err := h.handle.Source()
	if err != nil {
		respondSourceError(w, r, "search", err)
		return
	}

	limit, apiErr := getIntParam(r, "limit", h.limits.SearchDefaultLimit)
	if apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}
	req := SearchRequest{
		Query: strings.TrimSpace(r.URL.Query().Get("query")),
		Limit: limit,
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}
	if apiErr := checkMaxLimit(req.Limit, h.limits.MaxLimit); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.upstreamTimeout)
	defer cancel()

	raws, err := src.Search(ctx, req.Query, req.Limit)
	if err != nil {
		respondSourceError(w, r, "search", err)
		return
	}
	batch := truncate(models.NormalizeBatch(raws), req.Limit)

	resp, err := assemble("search", len(batch), func() (*models.SearchResponse, error) {
		return h.assembler.Search(req.Query, batch, req.Limit)
	})
	if err != nil {
		respondInternalError(w, r, "search", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("query", sanitizeLogValue(req.Query)).
		Int("results", len(batch)).
		Msg("Served search results")
	respondJSON(w, http.StatusOK, resp)
}

// fetchTrending obtains and normalizes a trending batch. It writes the error
// response itself and reports false when the request is finished.
func (h *Handler) fetchTrending(w http.ResponseWriter, r *http.Request, operation string, limit int) ([]models.Track, bool) {
	src, err := h.handle.Source()
	if err != nil {
		respondSourceError(w, r, operation, err)
		return nil, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.upstreamTimeout)
	defer cancel()

	raws, err := src.FetchTrending(ctx, limit)
	if err != nil {
		respondSourceError(w, r, operation, err)
		return nil, false
	}

	batch := truncate(models.NormalizeBatch(raws), limit)
	if len(batch) == 0 {
		logging.Ctx(r.Context()).Warn().Str("operation", operation).Msg("Trending batch is empty")
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "No trending tracks found", nil)
		return nil, false
	}
	return batch, true
}

func truncate(batch []models.Track, limit int) []models.Track {
	if limit > 0 && len(batch) > limit {
		return batch[:limit]
	}
	return batch
}
