// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

// Package errreport forwards unexpected errors and upstream call spans to Sentry.
//
// All functions are safe to call when reporting is disabled (no DSN): captures
// are dropped and spans are still created but never sent.
package errreport

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
)

// Config configures the Sentry client.
type Config struct {
	DSN              string
	Environment      string
	Release          string
	SampleRate       float64
	TracesSampleRate float64
}

var enabled atomic.Bool

// Init initializes the global Sentry client. It is a no-op when DSN is empty.
func Init(cfg Config) error {
	if cfg.DSN == "" {
		enabled.Store(false)
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		SampleRate:       cfg.SampleRate,
		EnableTracing:    cfg.TracesSampleRate > 0,
		TracesSampleRate: cfg.TracesSampleRate,
	})
	if err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	enabled.Store(true)
	return nil
}

// Enabled reports whether a DSN was configured.
func Enabled() bool {
	return enabled.Load()
}

// Capture reports err with the given tags. The hub attached to ctx is used
// when present.
func Capture(ctx context.Context, err error, tags map[string]string) {
	if err == nil || !Enabled() {
		return
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub().Clone()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		hub.CaptureException(err)
	})
}

// StartSpan starts a tracing span named op. The returned finish function
// sets the span status from err and must be called exactly once.
func StartSpan(ctx context.Context, op, description string) (context.Context, func(err error)) {
	span := sentry.StartSpan(ctx, op, sentry.WithDescription(description))
	return span.Context(), func(err error) {
		if err != nil {
			span.Status = sentry.SpanStatusInternalError
		} else {
			span.Status = sentry.SpanStatusOK
		}
		span.Finish()
	}
}

// Flush waits up to timeout for buffered events to be sent.
func Flush(timeout time.Duration) bool {
	if !Enabled() {
		return true
	}
	return sentry.Flush(timeout)
}
