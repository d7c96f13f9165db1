// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package connector

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestHandleLifecycle(t *testing.T) {
	h := NewHandle()

	if h.State() != StateNotInitialized {
		t.Errorf("Expected not_initialized, got %s", h.State())
	}
	if _, err := h.Source(); !errors.Is(err, ErrNotReady) {
		t.Errorf("Expected ErrNotReady, got %v", err)
	}

	src := &fakeSource{}
	if err := h.Ready(src); err != nil {
		t.Fatalf("Ready: %v", err)
	}
	got, err := h.Source()
	if err != nil || got != src {
		t.Errorf("Expected installed source, got %v, %v", got, err)
	}
	if h.State().String() != "ready" {
		t.Errorf("Expected ready, got %s", h.State())
	}

	h.Close()
	h.Close()
	if h.State() != StateClosed {
		t.Errorf("Expected closed, got %s", h.State())
	}
	if _, err := h.Source(); !errors.Is(err, ErrNotReady) {
		t.Errorf("Expected ErrNotReady after close, got %v", err)
	}
	if err := h.Ready(src); !errors.Is(err, ErrNotReady) {
		t.Errorf("Expected Ready to fail after close, got %v", err)
	}
}

func TestHandleFail(t *testing.T) {
	h := NewHandle()
	cause := errors.New("dns failure")
	h.Fail(cause)

	_, err := h.Source()
	if !errors.Is(err, ErrNotReady) || !errors.Is(err, cause) {
		t.Errorf("Expected ErrNotReady wrapping cause, got %v", err)
	}
	if !strings.Contains(err.Error(), "not_initialized") {
		t.Errorf("Expected state in message, got %q", err.Error())
	}
	if h.Err() != cause {
		t.Errorf("Expected Err to return cause, got %v", h.Err())
	}

	if err := h.Ready(nil); err == nil {
		t.Error("Expected error for nil source")
	}
}

func TestHandleConcurrentAccess(t *testing.T) {
	h := NewHandle()
	src := &fakeSource{}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = h.Ready(src)
		}()
		go func() {
			defer wg.Done()
			_, _ = h.Source()
			_ = h.State()
		}()
	}
	wg.Wait()

	if h.State() != StateReady {
		t.Errorf("Expected ready, got %s", h.State())
	}
}
