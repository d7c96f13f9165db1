// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package api

import (
	"time"

	"github.com/tomtom215/musictrends/internal/analytics"
	"github.com/tomtom215/musictrends/internal/config"
	"github.com/tomtom215/musictrends/internal/connector"
)

// DefaultVersion is reported when no build version is injected.
const DefaultVersion = "2.1.1"

// defaultUpstreamTimeout applies when no server timeout is configured.
const defaultUpstreamTimeout = 25 * time.Second

// Handler handles HTTP requests for the API.
//
// The connector is reached only through the Handle, so requests observe a
// single readiness state and never a half-initialized client.
type Handler struct {
	handle          *connector.Handle
	assembler       *analytics.Assembler
	limits          config.AnalyticsConfig
	probeTimeout    time.Duration
	upstreamTimeout time.Duration
	version         string
	startTime       time.Time
}

// NewHandler creates a new API handler.
func NewHandler(handle *connector.Handle, assembler *analytics.Assembler, cfg *config.Config, version string) *Handler {
	if version == "" {
		version = DefaultVersion
	}
	return &Handler{
		handle:          handle,
		assembler:       assembler,
		limits:          cfg.Analytics,
		probeTimeout:    cfg.Connector.ProbeTimeout,
		upstreamTimeout: upstreamBudget(cfg.Server.Timeout),
		version:         version,
		startTime:       time.Now(),
	}
}

// upstreamBudget bounds catalog calls to four fifths of the server's write
// timeout so the error response still reaches the client.
func upstreamBudget(serverTimeout time.Duration) time.Duration {
	if serverTimeout <= 0 {
		return defaultUpstreamTimeout
	}
	return serverTimeout - serverTimeout/5
}
