// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/musictrends/internal/connector"
	"github.com/tomtom215/musictrends/internal/logging"
	"github.com/tomtom215/musictrends/internal/metrics"
)

// ConnectorMonitor periodically probes the upstream catalog through the
// connector handle. It publishes the result as the connector_reachable gauge
// and logs reachability transitions.
type ConnectorMonitor struct {
	handle   *connector.Handle
	interval time.Duration
	timeout  time.Duration
	name     string
	logger   zerolog.Logger

	// last is only touched from Serve's goroutine.
	last *bool
}

// NewConnectorMonitor creates a monitor probing every interval, each probe
// bounded by timeout. A non-positive interval disables monitoring.
func NewConnectorMonitor(handle *connector.Handle, interval, timeout time.Duration) *ConnectorMonitor {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ConnectorMonitor{
		handle:   handle,
		interval: interval,
		timeout:  timeout,
		name:     "connector-monitor",
		logger:   logging.WithComponent("connector-monitor"),
	}
}

// Serve implements suture.Service.
func (m *ConnectorMonitor) Serve(ctx context.Context) error {
	if m.interval <= 0 {
		m.logger.Debug().Msg("Connector monitoring disabled")
		return suture.ErrDoNotRestart
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

// probe runs one reachability check and reports the result.
func (m *ConnectorMonitor) probe(ctx context.Context) bool {
	reachable := false
	if src, err := m.handle.Source(); err == nil {
		probeCtx, cancel := context.WithTimeout(ctx, m.timeout)
		reachable = src.IsReachable(probeCtx)
		cancel()
	}
	if ctx.Err() != nil {
		return reachable
	}

	metrics.SetConnectorReachable(reachable)
	if m.last == nil || *m.last != reachable {
		if reachable {
			m.logger.Info().Str("state", m.handle.State().String()).Msg("Music catalog reachable")
		} else {
			m.logger.Warn().Str("state", m.handle.State().String()).Msg("Music catalog unreachable")
		}
	}
	m.last = &reachable
	return reachable
}

// String implements fmt.Stringer for suture log messages.
func (m *ConnectorMonitor) String() string {
	return m.name
}
