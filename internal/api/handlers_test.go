// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/musictrends/internal/analytics"
	"github.com/tomtom215/musictrends/internal/config"
	"github.com/tomtom215/musictrends/internal/connector"
	"github.com/tomtom215/musictrends/internal/models"
)

// fakeSource is an in-memory connector.Source.
type fakeSource struct {
	mu        sync.Mutex
	tracks    []models.RawTrack
	err       error
	reachable bool
	lastLimit int
	lastQuery string
}

func (f *fakeSource) FetchTrending(_ context.Context, limit int) ([]models.RawTrack, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastLimit = limit
	return f.tracks, f.err
}

func (f *fakeSource) Search(_ context.Context, query string, limit int) ([]models.RawTrack, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastQuery = query
	f.lastLimit = limit
	return f.tracks, f.err
}

func (f *fakeSource) IsReachable(context.Context) bool {
	return f.reachable
}

func (f *fakeSource) Parse(raw map[string]interface{}) (models.RawTrack, bool) {
	return models.RawTrack(raw), true
}

func testTracks() []models.RawTrack {
	return []models.RawTrack{
		{"track_id": "1", "track_name": "Kesariya", "artist": "Arijit Singh, Pritam", "language": "Hindi", "genre": "Bollywood", "label": "Sony Music", "play_count": 100, "popularity": 80, "duration_ms": 240000},
		{"track_id": "2", "track_name": "Naatu Naatu", "artist": "Pritam", "language": "telugu", "genre": "south_indian", "play_count": 50, "popularity": 95, "duration_ms": 200000},
		{"track_id": "3", "track_name": "Brown Munde", "artist": "AP Dhillon", "language": "punjabi", "genre": "punjabi", "play_count": 200, "popularity": 95, "duration_ms": 180000},
		{"track_name": "no id, dropped"},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Connector: config.ConnectorConfig{ProbeTimeout: time.Second},
		Analytics: config.AnalyticsConfig{
			TrendingDefaultLimit: 25,
			SearchDefaultLimit:   20,
			AnalyticsLimit:       50,
			MaxLimit:             100,
		},
		Security: config.SecurityConfig{
			CORSOrigins:     []string{"http://localhost:3000"},
			RateLimitReqs:   1000,
			RateLimitWindow: time.Minute,
		},
	}
}

// newTestHandler returns a handler whose connector is ready with src.
// A nil src leaves the connector not initialized.
func newTestHandler(t *testing.T, src connector.Source) *Handler {
	t.Helper()
	handle := connector.NewHandle()
	if src != nil {
		if err := handle.Ready(src); err != nil {
			t.Fatalf("Ready: %v", err)
		}
	}
	return NewHandler(handle, analytics.NewAssembler("test"), testConfig(), "test")
}

func serve(h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error body %q: %v", w.Body.String(), err)
	}
	if resp.Success {
		t.Error("Expected success=false in error body")
	}
	if resp.Error == nil {
		t.Fatal("Expected error object in body")
	}
	if resp.Detail != resp.Error.Message {
		t.Errorf("Expected detail to mirror message %q, got %q", resp.Error.Message, resp.Detail)
	}
	return resp
}

func TestTrending_Success(t *testing.T) {
	t.Parallel()

	src := &fakeSource{tracks: testTracks(), reachable: true}
	h := newTestHandler(t, src)

	w := serve(h.Trending, "/trending?limit=10")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.TrendingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if !resp.Success {
		t.Error("Expected success=true")
	}
	if src.lastLimit != 10 {
		t.Errorf("Expected upstream limit 10, got %d", src.lastLimit)
	}
	if resp.Metadata.TotalTracks != 3 {
		t.Errorf("Expected 3 tracks after dropping the id-less record, got %d", resp.Metadata.TotalTracks)
	}
	if resp.Metadata.DataSource != models.DataSourceTrending {
		t.Errorf("Expected data source %q, got %q", models.DataSourceTrending, resp.Metadata.DataSource)
	}
	if resp.Analytics.Overview.TotalPlays != 350 {
		t.Errorf("Expected total plays 350, got %d", resp.Analytics.Overview.TotalPlays)
	}
	if resp.Analytics.Overview.UniqueArtists != 3 {
		t.Errorf("Expected 3 unique artists, got %d", resp.Analytics.Overview.UniqueArtists)
	}
	if got := resp.Analytics.TopPerformers.HighestPopularity.Name; got != "Naatu Naatu" {
		t.Errorf("Expected first maximum to win, got %q", got)
	}
	if got := resp.Analytics.Distributions.ByGenre["bollywood"]; got != 1 {
		t.Errorf("Expected lower-cased genre bollywood=1, got %d", got)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Expected JSON content type, got %q", ct)
	}
}

func TestTrending_DefaultLimit(t *testing.T) {
	t.Parallel()

	src := &fakeSource{tracks: testTracks()}
	h := newTestHandler(t, src)

	w := serve(h.Trending, "/trending")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if src.lastLimit != 25 {
		t.Errorf("Expected default limit 25, got %d", src.lastLimit)
	}
}

func TestTrending_TruncatesToLimit(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, &fakeSource{tracks: testTracks()})

	w := serve(h.Trending, "/trending?limit=2")
	var resp models.TrendingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if len(resp.Tracks) != 2 {
		t.Errorf("Expected 2 tracks, got %d", len(resp.Tracks))
	}
}

func TestTrending_InvalidLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  string
		message string
	}{
		{"not an integer", "/trending?limit=abc", "limit must be an integer"},
		{"zero", "/trending?limit=0", "limit must be at least 1"},
		{"negative", "/trending?limit=-5", "limit must be at least 1"},
		{"above maximum", "/trending?limit=101", "limit must be at most 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := &fakeSource{tracks: testTracks()}
			h := newTestHandler(t, src)

			w := serve(h.Trending, tt.target)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", w.Code)
			}
			resp := decodeError(t, w)
			if resp.Error.Code != ErrCodeValidation {
				t.Errorf("Expected code %s, got %s", ErrCodeValidation, resp.Error.Code)
			}
			if resp.Error.Message != tt.message {
				t.Errorf("Expected message %q, got %q", tt.message, resp.Error.Message)
			}
			if src.lastLimit != 0 {
				t.Error("Expected upstream not to be called")
			}
		})
	}
}

func TestDataEndpoints_ErrorMapping(t *testing.T) {
	t.Parallel()

	statusErr := &connector.StatusError{Operation: "search", StatusCode: http.StatusBadRequest}

	tests := []struct {
		name   string
		src    *fakeSource
		status int
		code   string
	}{
		{"not initialized", nil, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"unavailable", &fakeSource{err: connector.ErrUnavailable}, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"wrapped unavailable", &fakeSource{err: errors.Join(errors.New("dial"), connector.ErrUnavailable)}, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"deadline", &fakeSource{err: context.DeadlineExceeded}, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"bad upstream status", &fakeSource{err: statusErr}, http.StatusBadGateway, ErrCodeExternalServiceFail},
		{"decode failure", &fakeSource{err: connector.ErrUpstream}, http.StatusBadGateway, ErrCodeExternalServiceFail},
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

			endpoints := map[string]http.HandlerFunc{
				"/trending":            h.Trending,
				"/analytics":           h.Analytics,
				"/search?query=arijit": h.Search,
			}
			for target, fn := range endpoints {
				w := serve(fn, target)
				if w.Code != tt.status {
					t.Errorf("%s: expected status %d, got %d", target, tt.status, w.Code)
					continue
				}
				if resp := decodeError(t, w); resp.Error.Code != tt.code {
					t.Errorf("%s: expected code %s, got %s", target, tt.code, resp.Error.Code)
				}
			}
		})
	}
}

func TestTrending_EmptyBatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tracks []models.RawTrack
	}{
		{"no tracks", nil},
		{"only invalid tracks", []models.RawTrack{{"track_name": "missing id"}, {"track_id": ""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newTestHandler(t, &fakeSource{tracks: tt.tracks})
			for _, fn := range []http.HandlerFunc{h.Trending, h.Analytics} {
				w := serve(fn, "/trending")
				if w.Code != http.StatusNotFound {
					t.Errorf("Expected status 404, got %d", w.Code)
					continue
				}
				if resp := decodeError(t, w); resp.Error.Code != ErrCodeNotFound {
					t.Errorf("Expected code %s, got %s", ErrCodeNotFound, resp.Error.Code)
				}
			}
		})
	}
}

func TestAnalytics_Success(t *testing.T) {
	t.Parallel()

	src := &fakeSource{tracks: testTracks()}
	h := newTestHandler(t, src)

	w := serve(h.Analytics, "/analytics?limit=3")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if src.lastLimit != 50 {
		t.Errorf("Expected fixed analytics limit 50, got %d", src.lastLimit)
	}

	var resp models.AnalyticsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if resp.MarketOverview.TotalTracksAnalyzed != 3 {
		t.Errorf("Expected 3 tracks analyzed, got %d", resp.MarketOverview.TotalTracksAnalyzed)
	}
	if resp.PerformanceMetrics.TopPerformers.MostPlayed.Track != "Brown Munde" {
		t.Errorf("Expected most played Brown Munde, got %q", resp.PerformanceMetrics.TopPerformers.MostPlayed.Track)
	}
	if resp.PerformanceMetrics.Averages.AvgPopularity != 90.0 {
		t.Errorf("Expected average popularity 90.0, got %v", resp.PerformanceMetrics.Averages.AvgPopularity)
	}
	if resp.DataSource != models.DataSourceAnalytics {
		t.Errorf("Expected data source %q, got %q", models.DataSourceAnalytics, resp.DataSource)
	}
}

func TestSearch_Success(t *testing.T) {
	t.Parallel()

	src := &fakeSource{tracks: testTracks()}
	h := newTestHandler(t, src)

	w := serve(h.Search, "/search?query=+arijit+&limit=5")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if src.lastQuery != "arijit" {
		t.Errorf("Expected trimmed query arijit, got %q", src.lastQuery)
	}
	if src.lastLimit != 5 {
		t.Errorf("Expected limit 5, got %d", src.lastLimit)
	}

	var resp models.SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if resp.Metadata.Total != 3 {
		t.Errorf("Expected 3 results, got %d", resp.Metadata.Total)
	}
	if resp.Analytics == nil {
		t.Fatal("Expected analytics block")
	}
	if resp.Analytics.SearchInsights.UniqueArtists != 3 {
		t.Errorf("Expected 3 unique artists, got %d", resp.Analytics.SearchInsights.UniqueArtists)
	}
}

func TestSearch_NoResults(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, &fakeSource{})

	w := serve(h.Search, "/search?query=zzzqqq")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if body["success"] != true {
		t.Errorf("Expected success=true, got %v", body["success"])
	}
	if body["message"] != models.NoResultsMessage {
		t.Errorf("Expected message %q, got %v", models.NoResultsMessage, body["message"])
	}
	if _, ok := body["analytics"]; ok {
		t.Error("Expected no analytics key for empty results")
	}
	tracks, ok := body["tracks"].([]interface{})
	if !ok || len(tracks) != 0 {
		t.Errorf("Expected empty tracks array, got %v", body["tracks"])
	}
}

func TestSearch_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  string
		message string
	}{
		{"missing query", "/search", "query parameter is required"},
		{"blank query", "/search?query=%20%20", "query parameter is required"},
		{"query too long", "/search?query=" + strings.Repeat("a", 201), "query must be at most 200 characters"},
		{"invalid limit", "/search?query=x&limit=ten", "limit must be an integer"},
		{"limit above maximum", "/search?query=x&limit=500", "limit must be at most 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newTestHandler(t, &fakeSource{tracks: testTracks()})
			w := serve(h.Search, tt.target)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", w.Code)
			}
			if resp := decodeError(t, w); resp.Error.Message != tt.message {
				t.Errorf("Expected message %q, got %q", tt.message, resp.Error.Message)
			}
		})
	}
}

func TestSearch_NotReadyBeforeValidation(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)
	w := serve(h.Search, "/search?query=%20&limit=ten")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected status 503, got %d", w.Code)
	}
	if resp := decodeError(t, w); resp.Error.Code != ErrCodeServiceUnavailable {
		t.Errorf("Expected code %s, got %s", ErrCodeServiceUnavailable, resp.Error.Code)
	}
}

// stallingSource blocks every fetch until the caller's context ends.
type stallingSource struct {
	fakeSource
}

func (s *stallingSource) FetchTrending(ctx context.Context, _ int) ([]models.RawTrack, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (s *stallingSource) Search(ctx context.Context, _ string, _ int) ([]models.RawTrack, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestDataEndpoints_UpstreamDeadline(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, &stallingSource{})
	h.upstreamTimeout = 50 * time.Millisecond

	for target, fn := range map[string]http.HandlerFunc{
		"/trending":            h.Trending,
		"/analytics":           h.Analytics,
		"/search?query=arijit": h.Search,
	} {
		start := time.Now()
		w := serve(fn, target)
		if elapsed := time.Since(start); elapsed > time.Second {
			t.Errorf("%s: expected the upstream budget to end the call, took %v", target, elapsed)
		}
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("%s: expected status 503, got %d", target, w.Code)
			continue
		}
		if resp := decodeError(t, w); resp.Error.Message == "" {
			t.Errorf("%s: expected a message", target)
		}
	}
}

func TestUpstreamBudget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		server time.Duration
		want   time.Duration
	}{
		{30 * time.Second, 24 * time.Second},
		{time.Second, 800 * time.Millisecond},
		{0, defaultUpstreamTimeout},
	}
	for _, tt := range tests {
		if got := upstreamBudget(tt.server); got != tt.want {
			t.Errorf("upstreamBudget(%v) = %v, want %v", tt.server, got, tt.want)
		}
	}

	cfg := testConfig()
	cfg.Server.Timeout = 10 * time.Second
	h := NewHandler(connector.NewHandle(), analytics.NewAssembler("test"), cfg, "test")
	if h.upstreamTimeout != 8*time.Second {
		t.Errorf("Expected 8s upstream budget, got %v", h.upstreamTimeout)
	}
}

func TestAssemble_RecoversPanic(t *testing.T) {
	t.Parallel()

	result, err := assemble("test", 1, func() (*models.TrendingResponse, error) {
		panic("boom")
	})
	if !errors.Is(err, errAggregationPanic) {
		t.Errorf("Expected panic error, got %v", err)
	}
	if result != nil {
		t.Error("Expected nil result after panic")
	}
}

func TestAssemble_PassesThroughError(t *testing.T) {
	t.Parallel()

	_, err := assemble("test", 0, func() (*models.TrendingResponse, error) {
		return nil, analytics.ErrEmptyBatch
	})
	if !errors.Is(err, analytics.ErrEmptyBatch) {
		t.Errorf("Expected ErrEmptyBatch, got %v", err)
	}
}

func TestRespondInternalError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/analytics", nil)
	w := httptest.NewRecorder()
	respondInternalError(w, req, "analytics", errors.New("division by zero"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}
	resp := decodeError(t, w)
	if resp.Error.Code != ErrCodeInternalError {
		t.Errorf("Expected code %s, got %s", ErrCodeInternalError, resp.Error.Code)
	}
	if strings.Contains(w.Body.String(), "division by zero") {
		t.Error("Expected internal error detail not to leak into the response")
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	if got := sanitizeLogValue("a\nb\x7f"); got != `a\x0ab\x7f` {
		t.Errorf("Expected control characters escaped, got %q", got)
	}
}
