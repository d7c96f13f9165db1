// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package connector

import (
	"fmt"
	"sync"

	"github.com/tomtom215/musictrends/internal/metrics"
)

// State is the lifecycle state of a Handle.
type State int

const (
	StateNotInitialized State = iota
	StateReady
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateNotInitialized:
		return "not_initialized"
	case StateReady:
		return "ready"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Handle holds the process's connector and its readiness. Handlers call
// Source on every request; there is no other way to reach the connector.
type Handle struct {
	mu     sync.RWMutex
	state  State
	source Source
	err    error
}

// NewHandle returns a handle in the not_initialized state.
func NewHandle() *Handle {
	metrics.SetConnectorReady(false)
	return &Handle{state: StateNotInitialized}
}

// Ready installs src and marks the handle ready. It fails once closed.
func (h *Handle) Ready(src Source) error {
	if src == nil {
		return fmt.Errorf("connector: nil source")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state == StateClosed {
		return fmt.Errorf("%w: handle is closed", ErrNotReady)
	}
	h.source = src
	h.state = StateReady
	h.err = nil
	metrics.SetConnectorReady(true)
	return nil
}

// Fail records an initialization error. The handle stays not ready.
func (h *Handle) Fail(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state == StateClosed {
		return
	}
	h.source = nil
	h.state = StateNotInitialized
	h.err = err
	metrics.SetConnectorReady(false)
}

// Source returns the connector, or ErrNotReady unless the handle is ready.
func (h *Handle) Source() (Source, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.state != StateReady {
		if h.err != nil {
			return nil, fmt.Errorf("%w (%s): %w", ErrNotReady, h.state, h.err)
		}
		return nil, fmt.Errorf("%w (%s)", ErrNotReady, h.state)
	}
	return h.source, nil
}

// State returns the current lifecycle state.
func (h *Handle) State() State {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

// Err returns the last initialization error, if any.
func (h *Handle) Err() error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.err
}

// Close releases the connector. Close is idempotent.
func (h *Handle) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.source = nil
	h.state = StateClosed
	metrics.SetConnectorReady(false)
}
