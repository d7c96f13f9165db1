// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/trending", "200"))

	RecordAPIRequest("GET", "/trending", "200", 25*time.Millisecond)
	RecordAPIRequest("GET", "/trending", "200", 30*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/trending", "200"))
	if after-before != 2 {
		t.Errorf("Expected counter to increase by 2, got %v", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("Expected %v active requests, got %v", before+1, got)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("Expected %v active requests, got %v", before, got)
	}
}

func TestRecordConnectorRequest(t *testing.T) {
	okBefore := testutil.ToFloat64(ConnectorRequestsTotal.WithLabelValues("search", "success"))
	errBefore := testutil.ToFloat64(ConnectorRequestsTotal.WithLabelValues("search", "error"))

	RecordConnectorRequest("search", 100*time.Millisecond, nil)
	RecordConnectorRequest("search", 200*time.Millisecond, errors.New("boom"))

	if got := testutil.ToFloat64(ConnectorRequestsTotal.WithLabelValues("search", "success")); got != okBefore+1 {
		t.Errorf("Expected success count %v, got %v", okBefore+1, got)
	}
	if got := testutil.ToFloat64(ConnectorRequestsTotal.WithLabelValues("search", "error")); got != errBefore+1 {
		t.Errorf("Expected error count %v, got %v", errBefore+1, got)
	}
}

func TestSetConnectorReady(t *testing.T) {
	SetConnectorReady(true)
	if got := testutil.ToFloat64(ConnectorReady); got != 1 {
		t.Errorf("Expected 1, got %v", got)
	}
	SetConnectorReady(false)
	if got := testutil.ToFloat64(ConnectorReady); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}
}

func TestRecordAggregation(t *testing.T) {
	errBefore := testutil.ToFloat64(AggregationErrors.WithLabelValues("analytics"))

	RecordAggregation("analytics", 50, time.Millisecond, nil)
	RecordAggregation("analytics", 0, time.Millisecond, errors.New("bad batch"))

	if got := testutil.ToFloat64(AggregationErrors.WithLabelValues("analytics")); got != errBefore+1 {
		t.Errorf("Expected %v errors, got %v", errBefore+1, got)
	}

	observer, err := TracksAggregated.GetMetricWithLabelValues("analytics")
	if err != nil {
		t.Fatalf("GetMetricWithLabelValues: %v", err)
	}
	var m dto.Metric
	if err := observer.(prometheus.Histogram).Write(&m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if m.GetHistogram().GetSampleCount() < 1 {
		t.Errorf("Expected at least one batch size sample, got %d", m.GetHistogram().GetSampleCount())
	}
}

func TestSetAppInfoAndUptime(t *testing.T) {
	SetAppInfo("test")
	UpdateUptime(time.Now().Add(-time.Minute))

	if got := testutil.ToFloat64(AppUptime); got < 59 {
		t.Errorf("Expected uptime of about 60s, got %v", got)
	}
}

func TestConcurrentMetricRecording(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			RecordAPIRequest("GET", "/search", "200", time.Millisecond)
			RecordConnectorRequest("trending", time.Millisecond, nil)
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()
}

func TestMetricGathering(t *testing.T) {
	RecordAPIRequest("GET", "/health", "200", time.Millisecond)

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Fatalf("GatherAndLint: %v", err)
	}
	for _, p := range problems {
		if p.Metric == "musictrends_api_requests_total" {
			t.Errorf("lint problem: %s: %s", p.Metric, p.Text)
		}
	}
}
