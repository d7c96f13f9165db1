// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package connector

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/musictrends/internal/logging"
	"github.com/tomtom215/musictrends/internal/metrics"
	"github.com/tomtom215/musictrends/internal/models"
)

// DefaultBreakerName labels breaker metrics for the catalog connector.
const DefaultBreakerName = "jiosaavn-api"

// Breaker wraps a Source with the circuit breaker pattern so an unavailable
// or slow catalog fails fast.
//
// Circuit breaker configuration:
//   - Max 3 concurrent requests in half-open state
//   - 1 minute measurement window
//   - 2 minute timeout before attempting recovery
//   - Opens after 60% failure rate with minimum 10 requests
//
// Requests that end because the caller's context was cancelled or ran out of
// time are excluded from the counts: they say nothing about upstream health.
// Timeouts of the upstream client itself still count.
type Breaker struct {
	source Source
	cb     *gobreaker.CircuitBreaker[[]models.RawTrack]
	name   string
}

// NewBreaker wraps source. name labels the breaker metrics.
func NewBreaker(name string, source Source) *Breaker {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]models.RawTrack](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6

			if shouldTrip {
				logging.Warn().
					Str("breaker", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		IsExcluded: func(err error) bool {
			var done *callerDoneError
			return errors.Is(err, context.Canceled) || errors.As(err, &done)
		},
	})

	return &Breaker{source: source, cb: cb, name: name}
}

// callerDoneError marks a failure that happened after the caller's context
// ended. It unwraps to the original error.
type callerDoneError struct {
	err error
}

func (e *callerDoneError) Error() string { return e.err.Error() }

func (e *callerDoneError) Unwrap() error { return e.err }

// guard runs fn and tags its error when ctx has already ended.
func guard(ctx context.Context, fn func() ([]models.RawTrack, error)) func() ([]models.RawTrack, error) {
	return func() ([]models.RawTrack, error) {
		tracks, err := fn()
		if err != nil && ctx.Err() != nil {
			return nil, &callerDoneError{err: err}
		}
		return tracks, err
	}
}

// execute runs fn through the breaker. Rejections surface as ErrUnavailable.
func (b *Breaker) execute(fn func() ([]models.RawTrack, error)) ([]models.RawTrack, error) {
	result, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			logging.Warn().Err(err).Str("breaker", b.name).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}

		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		counts := b.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(counts.ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return result, nil
}

// State returns the current breaker state as "closed", "half-open" or "open".
func (b *Breaker) State() string {
	return stateToString(b.cb.State())
}

// FetchTrending retrieves the trending batch with circuit breaker protection.
func (b *Breaker) FetchTrending(ctx context.Context, limit int) ([]models.RawTrack, error) {
	return b.execute(guard(ctx, func() ([]models.RawTrack, error) {
		return b.source.FetchTrending(ctx, limit)
	}))
}

// Search runs a catalog search with circuit breaker protection.
func (b *Breaker) Search(ctx context.Context, query string, limit int) ([]models.RawTrack, error) {
	return b.execute(guard(ctx, func() ([]models.RawTrack, error) {
		return b.source.Search(ctx, query, limit)
	}))
}

// IsReachable probes the catalog through the breaker. An open circuit is unreachable.
func (b *Breaker) IsReachable(ctx context.Context) bool {
	_, err := b.execute(guard(ctx, func() ([]models.RawTrack, error) {
		if !b.source.IsReachable(ctx) {
			return nil, ErrUnavailable
		}
		return nil, nil
	}))
	return err == nil
}

// Parse is pure and bypasses the breaker.
func (b *Breaker) Parse(raw map[string]interface{}) (models.RawTrack, bool) {
	return b.source.Parse(raw)
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
