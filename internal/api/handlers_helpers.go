// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/musictrends/internal/connector"
	"github.com/tomtom215/musictrends/internal/errreport"
	"github.com/tomtom215/musictrends/internal/logging"
	"github.com/tomtom215/musictrends/internal/metrics"
	"github.com/tomtom215/musictrends/internal/validation"
)

// errAggregationPanic wraps a panic recovered while assembling a response.
var errAggregationPanic = errors.New("panic during aggregation")

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// getIntParam extracts an integer query parameter with a default value.
// A present but non-integer value is a validation error.
func getIntParam(r *http.Request, key string, defaultValue int) (int, *APIError) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, &APIError{
			Code:    ErrCodeValidation,
			Message: fmt.Sprintf("%s must be an integer", key),
			Details: map[string]interface{}{"field": key, "value": value},
		}
	}
	return intValue, nil
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes.
func validateRequest(v interface{}) *APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// checkMaxLimit enforces the configured upper bound for ?limit.
func checkMaxLimit(limit, maxLimit int) *APIError {
	if limit <= maxLimit {
		return nil
	}
	return &APIError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("limit must be at most %d", maxLimit),
		Details: map[string]interface{}{"field": "limit", "tag": "max", "value": limit},
	}
}

func respondAPIError(w http.ResponseWriter, r *http.Request, status int, apiErr *APIError) {
	respondError(w, r, status, apiErr.Code, apiErr.Message, apiErr.Details)
}

// respondSourceError maps connector errors to HTTP responses.
func respondSourceError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	ctx := r.Context()
	switch {
	case errors.Is(err, connector.ErrNotReady):
		logging.Ctx(ctx).Warn().Err(err).Str("operation", operation).Msg("Connector not ready")
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			"Music catalog connector not initialized", nil)

	case errors.Is(err, connector.ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		logging.Ctx(ctx).Warn().Err(err).Str("operation", operation).Msg("Music catalog unavailable")
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			"Music catalog service unavailable", nil)

	default:
		logging.CtxErr(ctx, err).Str("operation", operation).Msg("Music catalog request failed")
		errreport.Capture(ctx, err, map[string]string{"operation": operation, "kind": "upstream"})
		respondError(w, r, http.StatusBadGateway, ErrCodeExternalServiceFail,
			"Music catalog returned an invalid response", nil)
	}
}

// respondInternalError logs, reports and answers 500 for aggregation failures.
func respondInternalError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	ctx := r.Context()
	logging.CtxErr(ctx, err).Str("operation", operation).Msg("Failed to assemble response")
	errreport.Capture(ctx, err, map[string]string{"operation": operation, "kind": "aggregation"})
	respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError,
		fmt.Sprintf("Failed to compute %s analytics", operation), nil)
}

// assemble runs fn, converting a panic into an error, and records
// aggregation metrics.
func assemble[T any](response string, batchSize int, fn func() (T, error)) (result T, err error) {
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			var zero T
			result = zero
			err = fmt.Errorf("%w: %v", errAggregationPanic, rec)
		}
		metrics.RecordAggregation(response, batchSize, time.Since(start), err)
	}()
	return fn()
}
