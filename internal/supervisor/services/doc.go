// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

// Package services adapts long-running components to suture.Service:
// HTTPServerService for the API server and ConnectorMonitor for periodic
// upstream reachability probes.
package services
