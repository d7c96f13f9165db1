// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package errreport

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestInitWithoutDSN(t *testing.T) {
	if err := Init(Config{}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if Enabled() {
		t.Error("Expected reporting to be disabled without a DSN")
	}

	// Disabled reporting must never block or panic.
	Capture(context.Background(), errors.New("boom"), map[string]string{"operation": "search"})
	Capture(context.Background(), nil, nil)
	if !Flush(time.Millisecond) {
		t.Error("Expected Flush to succeed when disabled")
	}
}

func TestInitInvalidDSN(t *testing.T) {
	if err := Init(Config{DSN: "not a dsn"}); err == nil {
		t.Error("Expected error for invalid DSN")
	}
	if Enabled() {
		t.Error("Expected reporting to stay disabled after a failed init")
	}
}

func TestStartSpan(t *testing.T) {
	ctx, finish := StartSpan(context.Background(), "connector.search", "arijit")
	if ctx == nil {
		t.Fatal("Expected a span context")
	}
	finish(nil)

	_, finish = StartSpan(ctx, "connector.search", "failing")
	finish(errors.New("upstream down"))
}
