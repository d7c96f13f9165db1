// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package analytics

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tomtom215/musictrends/internal/models"
)

// ErrEmptyBatch is returned by operations that are undefined on an empty batch.
var ErrEmptyBatch = errors.New("analytics: empty track batch")

// Category values referenced by the market insight percentages.
const (
	GenreBollywood   = "bollywood"
	GenreTrending    = "trending"
	GenreSouthIndian = "south_indian"
	LanguageHindi    = "hindi"
)

// Field selects a categorical track attribute.
type Field int

const (
	FieldLanguage Field = iota
	FieldGenre
	FieldLabel
)

// String returns the JSON name of the field.
func (f Field) String() string {
	switch f {
	case FieldLanguage:
		return models.FieldLanguage
	case FieldGenre:
		return models.FieldGenre
	case FieldLabel:
		return models.FieldLabel
	default:
		return "unknown"
	}
}

func (f Field) value(t *models.Track) string {
	switch f {
	case FieldLanguage:
		return t.Language
	case FieldGenre:
		return t.Genre
	case FieldLabel:
		return t.Label
	default:
		return ""
	}
}

// Metric selects a numeric track attribute for ranking.
type Metric int

const (
	MetricPopularity Metric = iota
	MetricPlayCount
)

func (m Metric) value(t *models.Track) int64 {
	if m == MetricPlayCount {
		return t.PlayCount
	}
	return int64(t.Popularity)
}

// TotalPlays returns the sum of play counts.
func TotalPlays(batch []models.Track) int64 {
	var total int64
	for i := range batch {
		total += batch[i].PlayCount
	}
	return total
}

// AveragePopularity returns the arithmetic mean popularity, unrounded.
func AveragePopularity(batch []models.Track) (float64, error) {
	return mean(batch, MetricPopularity)
}

// AveragePlays returns the arithmetic mean play count, unrounded.
func AveragePlays(batch []models.Track) (float64, error) {
	return mean(batch, MetricPlayCount)
}

// AverageDurationMS returns the arithmetic mean duration in milliseconds.
func AverageDurationMS(batch []models.Track) (float64, error) {
	if len(batch) == 0 {
		return 0, ErrEmptyBatch
	}
	var sum float64
	for i := range batch {
		sum += float64(batch[i].DurationMS)
	}
	return sum / float64(len(batch)), nil
}

func mean(batch []models.Track, m Metric) (float64, error) {
	if len(batch) == 0 {
		return 0, ErrEmptyBatch
	}
	var sum float64
	for i := range batch {
		sum += float64(m.value(&batch[i]))
	}
	return sum / float64(len(batch)), nil
}

// MedianPopularity returns the median popularity. Even-sized batches average
// the two middle values.
func MedianPopularity(batch []models.Track) (float64, error) {
	if len(batch) == 0 {
		return 0, ErrEmptyBatch
	}
	values := make([]int, len(batch))
	for i := range batch {
		values[i] = batch[i].Popularity
	}
	sort.Ints(values)

	mid := len(values) / 2
	if len(values)%2 == 1 {
		return float64(values[mid]), nil
	}
	return (float64(values[mid-1]) + float64(values[mid])) / 2, nil
}

// SplitArtists splits a display string of co-artists on commas, trimming each
// name and dropping empty fragments.
func SplitArtists(artist string) []string {
	parts := strings.Split(artist, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// UniqueArtistCount returns the number of distinct artist names across the
// batch. Names are compared exactly after trimming.
func UniqueArtistCount(batch []models.Track) int {
	seen := make(map[string]struct{})
	for i := range batch {
		for _, name := range SplitArtists(batch[i].Artist) {
			seen[name] = struct{}{}
		}
	}
	return len(seen)
}

// CategoryCount is one entry of a Counts distribution.
type CategoryCount struct {
	Category string
	Count    int
}

// Counts is a frequency distribution that remembers first-occurrence order.
type Counts struct {
	entries []CategoryCount
	index   map[string]int
}

// Distribution counts the values of field across the batch. Every record is
// counted once, so the counts sum to len(batch).
func Distribution(batch []models.Track, field Field) Counts {
	c := Counts{index: make(map[string]int)}
	for i := range batch {
		c.add(field.value(&batch[i]))
	}
	return c
}

func (c *Counts) add(category string) {
	if pos, ok := c.index[category]; ok {
		c.entries[pos].Count++
		return
	}
	c.index[category] = len(c.entries)
	c.entries = append(c.entries, CategoryCount{Category: category, Count: 1})
}

// Len returns the number of distinct categories.
func (c Counts) Len() int {
	return len(c.entries)
}

// Get returns the count for category.
func (c Counts) Get(category string) int {
	if pos, ok := c.index[category]; ok {
		return c.entries[pos].Count
	}
	return 0
}

// Total returns the sum of all counts.
func (c Counts) Total() int {
	total := 0
	for _, e := range c.entries {
		total += e.Count
	}
	return total
}

// Entries returns the categories in first-occurrence order.
func (c Counts) Entries() []CategoryCount {
	out := make([]CategoryCount, len(c.entries))
	copy(out, c.entries)
	return out
}

// Top returns the n most frequent categories, count descending. Equal counts
// keep first-occurrence order.
func (c Counts) Top(n int) Counts {
	sorted := c.Entries()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}

	top := Counts{entries: sorted, index: make(map[string]int, len(sorted))}
	for i, e := range sorted {
		top.index[e.Category] = i
	}
	return top
}

// Map returns the distribution as a category to count map. Never nil.
func (c Counts) Map() map[string]int {
	m := make(map[string]int, len(c.entries))
	for _, e := range c.entries {
		m[e.Category] = e.Count
	}
	return m
}

// Argmax returns the track with the largest metric value. Ties go to the
// earliest track in batch order. It returns false for an empty batch.
func Argmax(batch []models.Track, metric Metric) (models.Track, bool) {
	if len(batch) == 0 {
		return models.Track{}, false
	}
	best := 0
	for i := 1; i < len(batch); i++ {
		if metric.value(&batch[i]) > metric.value(&batch[best]) {
			best = i
		}
	}
	return batch[best], true
}

// PercentageMatching returns the share of tracks whose field equals value,
// as a 0-100 value rounded to one decimal place. An empty batch yields 0.
func PercentageMatching(batch []models.Track, field Field, value string) float64 {
	if len(batch) == 0 {
		return 0
	}
	matches := 0
	for i := range batch {
		if field.value(&batch[i]) == value {
			matches++
		}
	}
	return Round(100*float64(matches)/float64(len(batch)), 1)
}

// Completeness counts tracks passing simple data-quality predicates.
type Completeness struct {
	WithPlayCounts int
	WithImages     int
	WithPreview    int
}

// CompletenessCounts counts tracks with a positive play count, an image URL
// and a preview URL.
func CompletenessCounts(batch []models.Track) Completeness {
	var c Completeness
	for i := range batch {
		if batch[i].PlayCount > 0 {
			c.WithPlayCounts++
		}
		if batch[i].ImageURL != nil {
			c.WithImages++
		}
		if batch[i].PreviewURL != nil {
			c.WithPreview++
		}
	}
	return c
}

// Round rounds x to the given number of decimal places, half away from zero.
// Ties are decided on the shortest decimal form of x, so 1.025 rounds to 1.03
// even though its binary value lies just below.
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	f, _ := decimal.NewFromFloat(x).Round(int32(places)).Float64()
	return f
}
