// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/musictrends/internal/connector"
	"github.com/tomtom215/musictrends/internal/errreport"
	"github.com/tomtom215/musictrends/internal/metrics"
	"github.com/tomtom215/musictrends/internal/models"
)

const dataSourceName = "JioSaavn Indian Music API"

// Upstream connection status values reported by /health.
const (
	connectionConnected    = "connected"
	connectionDisconnected = "disconnected"
)

// probe reports the upstream connection status and whether the connector is
// ready and reachable.
func (h *Handler) probe(ctx context.Context) (string, bool) {
	src, err := h.handle.Source()
	if err != nil {
		return h.handle.State().String(), false
	}

	ctx, cancel := context.WithTimeout(ctx, h.probeTimeout)
	defer cancel()
	if src.IsReachable(ctx) {
		return connectionConnected, true
	}
	return connectionDisconnected, false
}

func (h *Handler) connectorStatus() string {
	switch h.handle.State() {
	case connector.StateReady:
		return "loaded"
	default:
		return h.handle.State().String()
	}
}

// Health godoc
//
//	@Summary		Health check
//	@Description	Reports service status and upstream reachability. Always answers 200; status is "healthy" or "degraded".
//	@Tags			Core
//	@Produce		json
//	@Success		200	{object}	models.HealthResponse
//	@Router			/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	connStatus, connected := h.probe(r.Context())

	status := "healthy"
	if !connected {
		status = "degraded"
	}

	reporting := "disabled"
	if errreport.Enabled() {
		reporting = "enabled"
	}

	metrics.UpdateUptime(h.startTime)
	respondJSON(w, http.StatusOK, &models.HealthResponse{
		Status:         status,
		APIStatus:      "healthy",
		Connector:      connStatus,
		DataSource:     dataSourceName,
		ConnectionTest: connected,
		Timestamp:      time.Now(),
		Uptime:         time.Since(h.startTime).Seconds(),
		Version:        h.version,
		Services: map[string]string{
			"api":                "running",
			"jiosaavn_connector": h.connectorStatus(),
			"jiosaavn_api":       connStatus,
			"error_reporting":    reporting,
		},
	})
}

// HealthLive godoc
//
//	@Summary		Liveness probe
//	@Description	Answers 200 while the process is serving requests
//	@Tags			Core
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Router			/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "alive",
		"timestamp": time.Now(),
	})
}

// HealthReady godoc
//
//	@Summary		Readiness probe
//	@Description	Answers 200 when the connector is initialized and the music catalog is reachable
//	@Tags			Core
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Failure		503	{object}	ErrorResponse
//	@Router			/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	connStatus, ok := h.probe(r.Context())
	if !ok {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			"Service not ready", map[string]string{"jiosaavn_api": connStatus})
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":       "ready",
		"jiosaavn_api": connStatus,
		"timestamp":    time.Now(),
	})
}

// Root godoc
//
//	@Summary		Service information
//	@Description	Lists the service features and endpoints
//	@Tags			Core
//	@Produce		json
//	@Success		200	{object}	models.ServiceInfo
//	@Router			/ [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.ServiceInfo{
		Message:    "Global Music Trend API - JioSaavn Integration",
		Status:     "operational",
		Version:    h.version,
		DataSource: dataSourceName,
		Features: []string{
			"Real-time trending Indian music",
			"Bollywood and regional content analytics",
			"Multi-language music insights",
			"Genre and language distribution analysis",
			"Artist popularity metrics",
		},
		Endpoints: map[string]string{
			"health":    "/health",
			"trending":  "/trending?limit=25",
			"analytics": "/analytics",
			"search":    "/search?query=arijit&limit=20",
			"metrics":   "/metrics",
			"docs":      "/swagger/index.html",
		},
		Timestamp: time.Now(),
	})
}

// Test godoc
//
//	@Summary		Connectivity test
//	@Description	Simple operational document reporting whether the connector is loaded
//	@Tags			Core
//	@Produce		json
//	@Success		200	{object}	models.TestResponse
//	@Router			/test [get]
func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	loaded := "not loaded"
	if h.handle.State() == connector.StateReady {
		loaded = "loaded"
	}
	respondJSON(w, http.StatusOK, &models.TestResponse{
		Message:    "Test endpoint working perfectly!",
		Status:     "success",
		Connector:  loaded,
		APIVersion: h.version,
		Timestamp:  time.Now(),
		TestPassed: true,
	})
}
