// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/musictrends/internal/config"
	"github.com/tomtom215/musictrends/internal/connector"
	"github.com/tomtom215/musictrends/internal/logging"
	"github.com/tomtom215/musictrends/internal/models"
	"github.com/tomtom215/musictrends/internal/supervisor"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            0,
			Timeout:         5 * time.Second,
			ShutdownTimeout: time.Second,
			Environment:     "development",
		},
		Connector: config.ConnectorConfig{
			BaseURL:        baseURL,
			SearchPath:     "/search/songs",
			Timeout:        2 * time.Second,
			RateLimitRPS:   100,
			RateLimitBurst: 100,
			MaxRetries:     0,
			ProbeTimeout:   time.Second,
			TrendingSeeds: []config.SeedConfig{
				{Query: "bollywood hits", Genre: "bollywood", Language: "hindi"},
			},
		},
		Analytics: config.AnalyticsConfig{
			TrendingDefaultLimit: 25,
			SearchDefaultLimit:   20,
			AnalyticsLimit:       50,
			MaxLimit:             100,
		},
		Security: config.SecurityConfig{
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
	}
}

// fakeCatalog serves a single-track search result for every query.
func fakeCatalog(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"SUCCESS","data":{"results":[
			{"id":"abc","name":"Kesariya","primaryArtists":"Arijit Singh","language":"hindi","playCount":"1000","duration":"240"}
		]}}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestInitConnector_Ready(t *testing.T) {
	catalog := fakeCatalog(t)

	handle := initConnector(context.Background(), testConfig(catalog.URL))
	defer handle.Close()

	if handle.State() != connector.StateReady {
		t.Errorf("Expected ready handle, got %s", handle.State())
	}
}

func TestInitConnector_UnreachableStillReady(t *testing.T) {
	catalog := fakeCatalog(t)
	url := catalog.URL
	catalog.Close()

	handle := initConnector(context.Background(), testConfig(url))
	defer handle.Close()

	if handle.State() != connector.StateReady {
		t.Errorf("Expected unreachable upstream to be non-fatal, got %s", handle.State())
	}
}

func TestNewHTTPServer_EndToEnd(t *testing.T) {
	catalog := fakeCatalog(t)
	cfg := testConfig(catalog.URL)

	handle := initConnector(context.Background(), cfg)
	defer handle.Close()

	server := newHTTPServer(cfg, handle)
	if server.Addr != "127.0.0.1:0" {
		t.Errorf("Expected addr 127.0.0.1:0, got %s", server.Addr)
	}

	ts := httptest.NewServer(server.Handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/trending?limit=5")
	if err != nil {
		t.Fatalf("GET trending: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var body models.TrendingResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if len(body.Tracks) != 1 || body.Tracks[0].Genre != "bollywood" {
		t.Errorf("Expected one bollywood track, got %+v", body.Tracks)
	}
	if body.Tracks[0].Popularity != 30 {
		t.Errorf("Expected popularity 30 for 1000 plays, got %d", body.Tracks[0].Popularity)
	}
}

func TestNewHTTPServer_HangingCatalog(t *testing.T) {
	release := make(chan struct{})
	catalog := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			w.WriteHeader(http.StatusOK)
			return
		}
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer catalog.Close()
	defer close(release)

	cfg := testConfig(catalog.URL)
	cfg.Server.Timeout = time.Second
	cfg.Connector.Timeout = 5 * time.Second
	cfg.Connector.TrendingSeeds = append(cfg.Connector.TrendingSeeds,
		config.SeedConfig{Query: "trending now"},
		config.SeedConfig{Query: "punjabi hits"},
	)

	handle := initConnector(context.Background(), cfg)
	defer handle.Close()

	server := newHTTPServer(cfg, handle)
	ts := httptest.NewUnstartedServer(server.Handler)
	ts.Config.ReadTimeout = server.ReadTimeout
	ts.Config.WriteTimeout = server.WriteTimeout
	ts.Start()
	defer ts.Close()

	for _, path := range []string{"/trending", "/search?query=kesariya"} {
		start := time.Now()
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s: expected an HTTP response, got %v", path, err)
		}

		var body struct {
			Success bool   `json:"success"`
			Detail  string `json:"detail"`
		}
		decodeErr := json.NewDecoder(resp.Body).Decode(&body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("GET %s: expected status 503, got %d", path, resp.StatusCode)
		}
		if decodeErr != nil || body.Success || body.Detail == "" {
			t.Errorf("GET %s: expected an error message, got %+v (%v)", path, body, decodeErr)
		}
		if elapsed := time.Since(start); elapsed >= cfg.Server.Timeout {
			t.Errorf("GET %s: expected a response within the write timeout, took %v", path, elapsed)
		}
	}
}

func TestSwaggerDocRegistered(t *testing.T) {
	catalog := fakeCatalog(t)
	cfg := testConfig(catalog.URL)
	handle := initConnector(context.Background(), cfg)
	defer handle.Close()

	ts := httptest.NewServer(newHTTPServer(cfg, handle).Handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/swagger/doc.json")
	if err != nil {
		t.Fatalf("GET doc.json: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var doc map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("Failed to decode swagger doc: %v", err)
	}
	paths, _ := doc["paths"].(map[string]interface{})
	for _, p := range []string{"/trending", "/analytics", "/search", "/health"} {
		if _, ok := paths[p]; !ok {
			t.Errorf("Expected path %s in swagger doc", p)
		}
	}
}

func TestRunTree_StopsOnCancel(t *testing.T) {
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{ShutdownTimeout: time.Second})
	if err != nil {
		t.Fatalf("NewSupervisorTree: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := runTree(ctx, tree); err != nil {
		t.Errorf("Expected clean stop, got %v", err)
	}
}
