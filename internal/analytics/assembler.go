// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package analytics

import (
	"fmt"
	"time"

	"github.com/tomtom215/musictrends/internal/models"
)

// TopLabels is the number of labels kept in the analytics label distribution.
const TopLabels = 5

// Assembler builds API responses from a track batch.
type Assembler struct {
	version string
	now     func() time.Time
}

// NewAssembler creates an Assembler stamping responses with version.
func NewAssembler(version string) *Assembler {
	return &Assembler{version: version, now: time.Now}
}

// WithClock returns a copy of the Assembler using now for timestamps.
func (a *Assembler) WithClock(now func() time.Time) *Assembler {
	return &Assembler{version: a.version, now: now}
}

// Trending assembles the trending response. The batch must not be empty.
func (a *Assembler) Trending(batch []models.Track, limit int) (*models.TrendingResponse, error) {
	avg, err := AveragePopularity(batch)
	if err != nil {
		return nil, fmt.Errorf("trending: %w", err)
	}
	top, _ := Argmax(batch, MetricPopularity)
	played, _ := Argmax(batch, MetricPlayCount)
	languages := Distribution(batch, FieldLanguage)
	genres := Distribution(batch, FieldGenre)

	return &models.TrendingResponse{
		Success: true,
		Tracks:  batch,
		Metadata: models.TrendingMetadata{
			TotalTracks: len(batch),
			Limit:       limit,
			Timestamp:   a.now(),
			DataSource:  models.DataSourceTrending,
			APIVersion:  a.version,
		},
		Analytics: models.TrendingAnalytics{
			Overview: models.TrendingOverview{
				TotalPlays:       TotalPlays(batch),
				AvgPopularity:    Round(avg, 1),
				UniqueArtists:    UniqueArtistCount(batch),
				LanguagesCovered: languages.Len(),
				GenresCovered:    genres.Len(),
			},
			Distributions: models.Distributions{
				ByLanguage: languages.Map(),
				ByGenre:    genres.Map(),
			},
			TopPerformers: models.TrendingTopPerformers{
				HighestPopularity: models.PopularityPerformer{
					Name:       top.TrackName,
					Artist:     top.Artist,
					Popularity: top.Popularity,
					Language:   top.Language,
				},
				MostPlayed: models.PlaysPerformer{
					Name:   played.TrackName,
					Artist: played.Artist,
					Plays:  played.PlayCount,
					Genre:  played.Genre,
				},
			},
			MarketInsights: models.TrendingMarketInsights{
				BollywoodPercentage:    PercentageMatching(batch, FieldGenre, GenreBollywood),
				HindiContentPercentage: PercentageMatching(batch, FieldLanguage, LanguageHindi),
				RegionalDiversity:      languages.Len(),
			},
		},
	}, nil
}

// Analytics assembles the comprehensive analytics response. The batch must
// not be empty.
func (a *Assembler) Analytics(batch []models.Track, limit int) (*models.AnalyticsResponse, error) {
	avgPop, err := AveragePopularity(batch)
	if err != nil {
		return nil, fmt.Errorf("analytics: %w", err)
	}
	avgPlays, err := AveragePlays(batch)
	if err != nil {
		return nil, fmt.Errorf("analytics: %w", err)
	}
	avgDuration, err := AverageDurationMS(batch)
	if err != nil {
		return nil, fmt.Errorf("analytics: %w", err)
	}
	median, err := MedianPopularity(batch)
	if err != nil {
		return nil, fmt.Errorf("analytics: %w", err)
	}

	top, _ := Argmax(batch, MetricPopularity)
	played, _ := Argmax(batch, MetricPlayCount)
	languages := Distribution(batch, FieldLanguage)
	completeness := CompletenessCounts(batch)
	now := a.now()

	return &models.AnalyticsResponse{
		Success: true,
		MarketOverview: models.MarketOverview{
			TotalTracksAnalyzed: len(batch),
			UniqueArtists:       UniqueArtistCount(batch),
			TotalPlays:          TotalPlays(batch),
			AvgPopularityScore:  Round(avgPop, 2),
			DataFreshness:       now,
			AnalysisVersion:     a.version,
		},
		ContentDistribution: models.ContentDistribution{
			ByLanguage: languages.Map(),
			ByGenre:    Distribution(batch, FieldGenre).Map(),
			ByLabel:    Distribution(batch, FieldLabel).Top(TopLabels).Map(),
		},
		PerformanceMetrics: models.PerformanceMetrics{
			TopPerformers: models.AnalyticsTopPerformers{
				HighestPopularity: models.ScoredPerformer{
					Track:    top.TrackName,
					Artist:   top.Artist,
					Score:    top.Popularity,
					Language: top.Language,
				},
				MostPlayed: models.PlayedPerformer{
					Track:  played.TrackName,
					Artist: played.Artist,
					Plays:  played.PlayCount,
					Genre:  played.Genre,
				},
			},
			Averages: models.Averages{
				AvgPopularity:      Round(avgPop, 2),
				AvgPlays:           int64(avgPlays),
				AvgDurationSeconds: int64(avgDuration / 1000),
				MedianPopularity:   Round(median, 2),
			},
		},
		MarketInsights: models.AnalyticsMarketInsights{
			BollywoodDominancePercentage: PercentageMatching(batch, FieldGenre, GenreBollywood),
			HindiContentPercentage:       PercentageMatching(batch, FieldLanguage, LanguageHindi),
			TrendingContentPercentage:    PercentageMatching(batch, FieldGenre, GenreTrending),
			RegionalDiversityScore:       languages.Len(),
			SouthIndianRepresentation:    PercentageMatching(batch, FieldGenre, GenreSouthIndian),
		},
		QualityMetrics: models.QualityMetrics{
			DataCompleteness: models.DataCompleteness{
				TracksWithPlayCounts: completeness.WithPlayCounts,
				TracksWithImages:     completeness.WithImages,
				TracksWithPreview:    completeness.WithPreview,
			},
		},
		Metadata: models.AnalyticsMetadata{
			TotalTracks: len(batch),
			Limit:       limit,
			Timestamp:   now,
		},
		Timestamp:  now,
		DataSource: models.DataSourceAnalytics,
	}, nil
}

// Search assembles the search response. An empty batch is a valid result:
// the analytics block is omitted and the no-results message is set.
func (a *Assembler) Search(query string, batch []models.Track, limit int) (*models.SearchResponse, error) {
	if batch == nil {
		batch = []models.Track{}
	}

	resp := &models.SearchResponse{
		Success: true,
		Tracks:  batch,
		Metadata: models.SearchMetadata{
			Total:         len(batch),
			Query:         query,
			Limit:         limit,
			Timestamp:     a.now(),
			DataSource:    models.DataSourceSearch,
			SearchVersion: a.version,
		},
	}

	if len(batch) == 0 {
		resp.Message = models.NoResultsMessage
		resp.Metadata.Message = models.NoResultsMessage
		return resp, nil
	}

	avg, err := AveragePopularity(batch)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	resp.Analytics = &models.SearchAnalytics{
		SearchInsights: models.SearchInsights{
			ResultsFound:  len(batch),
			UniqueArtists: UniqueArtistCount(batch),
			AvgPopularity: Round(avg, 2),
			TotalPlays:    TotalPlays(batch),
		},
		ContentBreakdown: models.Distributions{
			ByLanguage: Distribution(batch, FieldLanguage).Map(),
			ByGenre:    Distribution(batch, FieldGenre).Map(),
		},
	}
	return resp, nil
}
