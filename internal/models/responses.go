// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package models

import "time"

// Data source markers carried in response metadata.
const (
	DataSourceTrending  = "jiosaavn_api"
	DataSourceAnalytics = "jiosaavn_comprehensive_analysis"
	DataSourceSearch    = "jiosaavn_search"

	// NoResultsMessage marks an empty search result.
	NoResultsMessage = "No results found"
)

// Distributions maps category values to their frequency.
type Distributions struct {
	ByLanguage map[string]int `json:"by_language"`
	ByGenre    map[string]int `json:"by_genre"`
}

// TrendingResponse is returned by GET /trending.
type TrendingResponse struct {
	Success   bool              `json:"success"`
	Tracks    []Track           `json:"tracks"`
	Metadata  TrendingMetadata  `json:"metadata"`
	Analytics TrendingAnalytics `json:"analytics"`
}

// TrendingMetadata describes the request that produced a trending response.
type TrendingMetadata struct {
	TotalTracks int       `json:"total_tracks"`
	Limit       int       `json:"limit"`
	Timestamp   time.Time `json:"timestamp"`
	DataSource  string    `json:"data_source"`
	APIVersion  string    `json:"api_version"`
}

// TrendingAnalytics is the analytics block attached to a trending response.
type TrendingAnalytics struct {
	Overview       TrendingOverview       `json:"overview"`
	Distributions  Distributions          `json:"distributions"`
	TopPerformers  TrendingTopPerformers  `json:"top_performers"`
	MarketInsights TrendingMarketInsights `json:"market_insights"`
}

// TrendingOverview holds batch totals. AvgPopularity has one decimal place.
type TrendingOverview struct {
	TotalPlays       int64   `json:"total_plays"`
	AvgPopularity    float64 `json:"avg_popularity"`
	UniqueArtists    int     `json:"unique_artists"`
	LanguagesCovered int     `json:"languages_covered"`
	GenresCovered    int     `json:"genres_covered"`
}

// TrendingTopPerformers names the leading tracks of a trending batch.
type TrendingTopPerformers struct {
	HighestPopularity PopularityPerformer `json:"highest_popularity"`
	MostPlayed        PlaysPerformer      `json:"most_played"`
}

// PopularityPerformer is the most popular track in a trending batch.
type PopularityPerformer struct {
	Name       string `json:"name"`
	Artist     string `json:"artist"`
	Popularity int    `json:"popularity"`
	Language   string `json:"language"`
}

// PlaysPerformer is the most played track in a trending batch.
type PlaysPerformer struct {
	Name   string `json:"name"`
	Artist string `json:"artist"`
	Plays  int64  `json:"plays"`
	Genre  string `json:"genre"`
}

// TrendingMarketInsights percentages are 0-100 with one decimal place.
// RegionalDiversity is the number of distinct languages.
type TrendingMarketInsights struct {
	BollywoodPercentage    float64 `json:"bollywood_percentage"`
	HindiContentPercentage float64 `json:"hindi_content_percentage"`
	RegionalDiversity      int     `json:"regional_diversity"`
}

// AnalyticsResponse is returned by GET /analytics.
type AnalyticsResponse struct {
	Success             bool                    `json:"success"`
	MarketOverview      MarketOverview          `json:"market_overview"`
	ContentDistribution ContentDistribution     `json:"content_distribution"`
	PerformanceMetrics  PerformanceMetrics      `json:"performance_metrics"`
	MarketInsights      AnalyticsMarketInsights `json:"market_insights"`
	QualityMetrics      QualityMetrics          `json:"quality_metrics"`
	Metadata            AnalyticsMetadata       `json:"metadata"`
	Timestamp           time.Time               `json:"timestamp"`
	DataSource          string                  `json:"data_source"`
}

// MarketOverview summarizes the analyzed batch. AvgPopularityScore has two
// decimal places.
type MarketOverview struct {
	TotalTracksAnalyzed int       `json:"total_tracks_analyzed"`
	UniqueArtists       int       `json:"unique_artists"`
	TotalPlays          int64     `json:"total_plays"`
	AvgPopularityScore  float64   `json:"avg_popularity_score"`
	DataFreshness       time.Time `json:"data_freshness"`
	AnalysisVersion     string    `json:"analysis_version"`
}

// ContentDistribution counts tracks per category. ByLabel holds only the
// five most frequent labels.
type ContentDistribution struct {
	ByLanguage map[string]int `json:"by_language"`
	ByGenre    map[string]int `json:"by_genre"`
	ByLabel    map[string]int `json:"by_label"`
}

// PerformanceMetrics groups top performers and batch averages.
type PerformanceMetrics struct {
	TopPerformers AnalyticsTopPerformers `json:"top_performers"`
	Averages      Averages               `json:"averages"`
}

// AnalyticsTopPerformers names the leading tracks of an analytics batch.
type AnalyticsTopPerformers struct {
	HighestPopularity ScoredPerformer `json:"highest_popularity"`
	MostPlayed        PlayedPerformer `json:"most_played"`
}

// ScoredPerformer is the most popular track in an analytics batch.
type ScoredPerformer struct {
	Track    string `json:"track"`
	Artist   string `json:"artist"`
	Score    int    `json:"score"`
	Language string `json:"language"`
}

// PlayedPerformer is the most played track in an analytics batch.
type PlayedPerformer struct {
	Track  string `json:"track"`
	Artist string `json:"artist"`
	Plays  int64  `json:"plays"`
	Genre  string `json:"genre"`
}

// Averages holds per-track means. Popularity values have two decimals;
// AvgPlays and AvgDurationSeconds are truncated toward zero.
type Averages struct {
	AvgPopularity      float64 `json:"avg_popularity"`
	AvgPlays           int64   `json:"avg_plays"`
	AvgDurationSeconds int64   `json:"avg_duration_seconds"`
	MedianPopularity   float64 `json:"median_popularity"`
}

// AnalyticsMarketInsights percentages are 0-100 with one decimal place.
// RegionalDiversityScore is the number of distinct languages.
type AnalyticsMarketInsights struct {
	BollywoodDominancePercentage float64 `json:"bollywood_dominance_percentage"`
	HindiContentPercentage       float64 `json:"hindi_content_percentage"`
	TrendingContentPercentage    float64 `json:"trending_content_percentage"`
	RegionalDiversityScore       int     `json:"regional_diversity_score"`
	SouthIndianRepresentation    float64 `json:"south_indian_representation"`
}

// QualityMetrics reports how complete the upstream records were.
type QualityMetrics struct {
	DataCompleteness DataCompleteness `json:"data_completeness"`
}

// DataCompleteness counts tracks carrying each optional field.
type DataCompleteness struct {
	TracksWithPlayCounts int `json:"tracks_with_play_counts"`
	TracksWithImages     int `json:"tracks_with_images"`
	TracksWithPreview    int `json:"tracks_with_preview"`
}

// AnalyticsMetadata describes the request that produced an analytics response.
type AnalyticsMetadata struct {
	TotalTracks int       `json:"total_tracks"`
	Limit       int       `json:"limit"`
	Timestamp   time.Time `json:"timestamp"`
}

// SearchResponse is returned by GET /search. Analytics is omitted and
// Message is set when no tracks matched.
type SearchResponse struct {
	Success   bool             `json:"success"`
	Tracks    []Track          `json:"tracks"`
	Metadata  SearchMetadata   `json:"metadata"`
	Analytics *SearchAnalytics `json:"analytics,omitempty"`
	Message   string           `json:"message,omitempty"`
}

// SearchMetadata describes a search request. Message mirrors the top-level
// message of an empty result.
type SearchMetadata struct {
	Total         int       `json:"total"`
	Query         string    `json:"query"`
	Limit         int       `json:"limit"`
	Timestamp     time.Time `json:"timestamp"`
	DataSource    string    `json:"data_source"`
	SearchVersion string    `json:"search_version"`
	Message       string    `json:"message,omitempty"`
}

// SearchAnalytics is attached to non-empty search results.
type SearchAnalytics struct {
	SearchInsights   SearchInsights `json:"search_insights"`
	ContentBreakdown Distributions  `json:"content_breakdown"`
}

// SearchInsights summarizes the matched tracks. AvgPopularity has two
// decimal places.
type SearchInsights struct {
	ResultsFound  int     `json:"results_found"`
	UniqueArtists int     `json:"unique_artists"`
	AvgPopularity float64 `json:"avg_popularity"`
	TotalPlays    int64   `json:"total_plays"`
}

// HealthResponse is returned by GET /health. It always has HTTP status 200;
// Status is "healthy" or "degraded".
type HealthResponse struct {
	Status         string            `json:"status"`
	APIStatus      string            `json:"api_status"`
	Connector      string            `json:"jiosaavn_api"`
	DataSource     string            `json:"data_source"`
	ConnectionTest bool              `json:"connection_test"`
	Timestamp      time.Time         `json:"timestamp"`
	Uptime         float64           `json:"uptime_seconds"`
	Version        string            `json:"version"`
	Services       map[string]string `json:"services"`
}

// ServiceInfo is returned by GET /.
type ServiceInfo struct {
	Message    string            `json:"message"`
	Status     string            `json:"status"`
	Version    string            `json:"version"`
	DataSource string            `json:"data_source"`
	Features   []string          `json:"features"`
	Endpoints  map[string]string `json:"endpoints"`
	Timestamp  time.Time         `json:"timestamp"`
}

// TestResponse is returned by GET /test.
type TestResponse struct {
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	Connector  string    `json:"jiosaavn_connector"`
	APIVersion string    `json:"api_version"`
	Timestamp  time.Time `json:"timestamp"`
	TestPassed bool      `json:"test_passed"`
}
