// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

/*
Package api provides the HTTP surface of the music trends service.

Endpoints (also mounted under /api/v1):

	GET /               service information
	GET /health         status summary with catalog reachability (always 200)
	GET /health/live    liveness
	GET /health/ready   readiness (503 until the connector is ready and reachable)
	GET /trending       trending tracks with analytics (?limit=1..100, default 25)
	GET /analytics      market analytics over a fixed 50-track batch
	GET /search         track search (?query=..., ?limit=1..100, default 20)
	GET /test           operational check
	GET /metrics        Prometheus exposition
	GET /swagger/*      OpenAPI UI

Handlers reach the catalog only through a connector.Handle. Errors are mapped
to status codes in one place (respondSourceError):

	connector.ErrNotReady, connector.ErrUnavailable   503 SERVICE_UNAVAILABLE
	connector.ErrUpstream                             502 EXTERNAL_SERVICE_FAILED
	empty trending/analytics batch                    404 NOT_FOUND
	invalid parameters                                400 VALIDATION_ERROR
	aggregation failure or panic                      500 INTERNAL_ERROR

Error bodies share one shape:

	{"success":false,"error":{"code":"...","message":"...","request_id":"..."},"detail":"..."}
*/
package api
