// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

/*
Package metrics provides the Prometheus instrumentation for Musictrends.

Metrics are registered on the default registry through promauto and exposed
at /metrics:

	curl http://localhost:8000/metrics

# Available Metrics

HTTP:
  - musictrends_api_requests_total{method, endpoint, status_code}
  - musictrends_api_request_duration_seconds{method, endpoint}
  - musictrends_api_active_requests
  - musictrends_api_rate_limit_hits_total{endpoint}

Connector:
  - musictrends_connector_requests_total{operation, outcome}
  - musictrends_connector_request_duration_seconds{operation}
  - musictrends_connector_retries_total{operation}
  - musictrends_connector_ready (1 when the connector handle is ready)

Circuit breaker:
  - musictrends_circuit_breaker_state{name} (0=closed, 1=half-open, 2=open)
  - musictrends_circuit_breaker_requests_total{name, result}
  - musictrends_circuit_breaker_consecutive_failures{name}
  - musictrends_circuit_breaker_state_transitions_total{name, from_state, to_state}

Aggregation:
  - musictrends_tracks_aggregated{response} (batch size histogram)
  - musictrends_tracks_dropped_total{operation} (records without track_id)
  - musictrends_aggregation_duration_seconds{response}
  - musictrends_aggregation_errors_total{response}

Process:
  - musictrends_app_info{version, go_version}
  - musictrends_app_uptime_seconds
*/
package metrics
