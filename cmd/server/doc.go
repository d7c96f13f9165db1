// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

/*
Package main is the entry point for the Musictrends server.

Musictrends serves read-only music analytics computed on demand from the
JioSaavn catalog: trending tracks, market analytics and search insights.

# Application Architecture

	RootSupervisor ("musictrends")
	├── ConnectorSupervisor ("connector-layer")
	│   └── ConnectorMonitor
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Startup order:

 1. Configuration: Koanf v2 (defaults, config.yaml, .env, environment)
 2. Logging: zerolog
 3. Error reporting: Sentry, when SENTRY_DSN is set
 4. Connector: HTTP client, circuit breaker, startup probe, ready handle
 5. Supervisor tree and HTTP server

An unreachable catalog at startup is a warning: the service starts, /health
reports "degraded" and data endpoints answer 503 until it recovers.

# Configuration

	HTTP_PORT=8000
	JIOSAAVN_URL=http://localhost:5100
	TRENDING_SEEDS="bollywood hits|bollywood|hindi;punjabi hits|punjabi|punjabi"
	CORS_ORIGINS=http://localhost:3000
	LOG_LEVEL=info
	LOG_FORMAT=json
	SENTRY_DSN=

# Signal Handling

SIGINT and SIGTERM stop the supervisor tree. The HTTP server drains
in-flight requests within SHUTDOWN_TIMEOUT, then the connector handle is
closed and pending error reports are flushed.
*/
package main
