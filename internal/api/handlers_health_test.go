// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package api

import (
	"net/http"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/musictrends/internal/models"
)

func TestHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		src        *fakeSource
		status     string
		connection string
		connector  string
		connected  bool
	}{
		{"reachable", &fakeSource{reachable: true}, "healthy", "connected", "loaded", true},
		{"unreachable", &fakeSource{reachable: false}, "degraded", "disconnected", "loaded", false},
		{"not initialized", nil, "degraded", "not_initialized", "not_initialized", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var h *Handler
			if tt.src == nil {
				h = newTestHandler(t, nil)
			} else {
				h = newTestHandler(t, tt.src)
			}

			w := serve(h.Health, "/health")
			if w.Code != http.StatusOK {
				t.Fatalf("Expected status 200, got %d", w.Code)
			}

			var resp models.HealthResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode: %v", err)
			}
			if resp.Status != tt.status {
				t.Errorf("Expected status %q, got %q", tt.status, resp.Status)
			}
			if resp.Connector != tt.connection {
				t.Errorf("Expected jiosaavn_api %q, got %q", tt.connection, resp.Connector)
			}
			if resp.ConnectionTest != tt.connected {
				t.Errorf("Expected connection_test %v, got %v", tt.connected, resp.ConnectionTest)
			}
			if resp.Services["jiosaavn_connector"] != tt.connector {
				t.Errorf("Expected connector service %q, got %q", tt.connector, resp.Services["jiosaavn_connector"])
			}
			if resp.Version != "test" {
				t.Errorf("Expected version test, got %q", resp.Version)
			}
		})
	}
}

func TestHealth_ClosedConnector(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, &fakeSource{reachable: true})
	h.handle.Close()

	w := serve(h.Health, "/health")
	var resp models.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if resp.Status != "degraded" || resp.Connector != "closed" {
		t.Errorf("Expected degraded/closed, got %s/%s", resp.Status, resp.Connector)
	}
}

func TestHealthLive(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	w := serve(h.HealthLive, "/health/live")
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    *fakeSource
		status int
	}{
		{"ready", &fakeSource{reachable: true}, http.StatusOK},
		{"unreachable", &fakeSource{reachable: false}, http.StatusServiceUnavailable},
		{"not initialized", nil, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var h *Handler
			if tt.src == nil {
				h = newTestHandler(t, nil)
			} else {
				h = newTestHandler(t, tt.src)
			}

			w := serve(h.HealthReady, "/health/ready")
			if w.Code != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, w.Code)
			}
			if tt.status != http.StatusOK {
				if resp := decodeError(t, w); resp.Error.Code != ErrCodeServiceUnavailable {
					t.Errorf("Expected code %s, got %s", ErrCodeServiceUnavailable, resp.Error.Code)
				}
			}
		})
	}
}

func TestRoot(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	w := serve(h.Root, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp models.ServiceInfo
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if resp.Status != "operational" {
		t.Errorf("Expected status operational, got %q", resp.Status)
	}
	for _, key := range []string{"health", "trending", "analytics", "search"} {
		if _, ok := resp.Endpoints[key]; !ok {
			t.Errorf("Expected endpoint %q to be listed", key)
		}
	}
	if len(resp.Features) == 0 {
		t.Error("Expected features to be listed")
	}
}

func TestTestEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		src       *fakeSource
		connector string
	}{
		{"loaded", &fakeSource{}, "loaded"},
		{"not loaded", nil, "not loaded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var h *Handler
			if tt.src == nil {
				h = newTestHandler(t, nil)
			} else {
				h = newTestHandler(t, tt.src)
			}

			w := serve(h.Test, "/test")
			var resp models.TestResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode: %v", err)
			}
			if !resp.TestPassed {
				t.Error("Expected test_passed=true")
			}
			if resp.Connector != tt.connector {
				t.Errorf("Expected connector %q, got %q", tt.connector, resp.Connector)
			}
		})
	}
}

func TestNewHandler_DefaultVersion(t *testing.T) {
	t.Parallel()

	h := NewHandler(nil, nil, testConfig(), "")
	if h.version != DefaultVersion {
		t.Errorf("Expected version %s, got %s", DefaultVersion, h.version)
	}
}
