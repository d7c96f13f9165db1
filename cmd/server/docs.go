// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

// @title Global Music Trend API
// @version 2.1.1
// @description Trend and genre popularity analytics over the JioSaavn Indian music catalog.
// @description
// @description ## Endpoints
// @description
// @description - **/trending**: trending batch with overview, distributions, top performers and market insights
// @description - **/analytics**: comprehensive market analysis over a fixed batch of 50 tracks
// @description - **/search**: catalog search with search insights
// @description
// @description Every route is served at the root and under `/api/v1`.
// @description
// @description ## Rate Limiting
// @description
// @description Data endpoints are limited per client IP (default 100 requests per minute).
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {"code": "SERVICE_UNAVAILABLE", "message": "...", "request_id": "..."},
// @description   "detail": "..."
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/musictrends/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Service information and health checks
//
// @tag.name Music
// @tag.description Trending, analytics and search endpoints backed by the music catalog
package main
