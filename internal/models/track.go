// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package models

import (
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Canonical raw field names. Connectors emit RawTrack values keyed by these.
const (
	FieldTrackID    = "track_id"
	FieldTrackName  = "track_name"
	FieldArtist     = "artist"
	FieldAlbum      = "album"
	FieldLanguage   = "language"
	FieldGenre      = "genre"
	FieldLabel      = "label"
	FieldYear       = "year"
	FieldPlayCount  = "play_count"
	FieldPopularity = "popularity"
	FieldDurationMS = "duration_ms"
	FieldImageURL   = "image_url"
	FieldPreviewURL = "preview_url"
	FieldURL        = "url"
	FieldHasLyrics  = "has_lyrics"
	FieldSource     = "source"
)

// RawTrack is a loosely typed track mapping as produced by a connector.
type RawTrack map[string]interface{}

// Track is one normalized music track.
type Track struct {
	TrackID    string  `json:"track_id"`
	TrackName  string  `json:"track_name"`
	Artist     string  `json:"artist"` // display string, may list co-artists separated by commas
	Album      string  `json:"album"`
	Language   string  `json:"language"` // lower-cased
	Genre      string  `json:"genre"`    // lower-cased
	Label      string  `json:"label"`
	Year       string  `json:"year"`
	PlayCount  int64   `json:"play_count"`
	Popularity int     `json:"popularity"` // conventionally 0-100
	DurationMS int64   `json:"duration_ms"`
	ImageURL   *string `json:"image_url"`
	PreviewURL *string `json:"preview_url"`
	URL        string  `json:"url"`
	HasLyrics  bool    `json:"has_lyrics"`
	Source     string  `json:"source"`
}

// Normalize converts a raw connector record into a Track. It returns false
// when the record has no usable track_id and must be dropped.
func Normalize(raw RawTrack) (Track, bool) {
	if raw == nil {
		return Track{}, false
	}

	id := strings.TrimSpace(asString(raw[FieldTrackID]))
	if id == "" {
		return Track{}, false
	}

	return Track{
		TrackID:    id,
		TrackName:  strings.TrimSpace(asString(raw[FieldTrackName])),
		Artist:     strings.TrimSpace(asString(raw[FieldArtist])),
		Album:      strings.TrimSpace(asString(raw[FieldAlbum])),
		Language:   normalizeCategory(raw[FieldLanguage]),
		Genre:      normalizeCategory(raw[FieldGenre]),
		Label:      strings.TrimSpace(asString(raw[FieldLabel])),
		Year:       strings.TrimSpace(asString(raw[FieldYear])),
		PlayCount:  asNonNegativeInt(raw[FieldPlayCount]),
		Popularity: int(asNonNegativeInt(raw[FieldPopularity])),
		DurationMS: asNonNegativeInt(raw[FieldDurationMS]),
		ImageURL:   asOptionalString(raw[FieldImageURL]),
		PreviewURL: asOptionalString(raw[FieldPreviewURL]),
		URL:        strings.TrimSpace(asString(raw[FieldURL])),
		HasLyrics:  asBool(raw[FieldHasLyrics]),
		Source:     strings.TrimSpace(asString(raw[FieldSource])),
	}, true
}

// NormalizeBatch normalizes raws in order, dropping invalid records.
// The result is never nil.
func NormalizeBatch(raws []RawTrack) []Track {
	tracks := make([]Track, 0, len(raws))
	for _, raw := range raws {
		if t, ok := Normalize(raw); ok {
			tracks = append(tracks, t)
		}
	}
	return tracks
}

// ToRaw returns the canonical raw mapping for t.
func (t Track) ToRaw() RawTrack {
	raw := RawTrack{
		FieldTrackID:    t.TrackID,
		FieldTrackName:  t.TrackName,
		FieldArtist:     t.Artist,
		FieldAlbum:      t.Album,
		FieldLanguage:   t.Language,
		FieldGenre:      t.Genre,
		FieldLabel:      t.Label,
		FieldYear:       t.Year,
		FieldPlayCount:  t.PlayCount,
		FieldPopularity: t.Popularity,
		FieldDurationMS: t.DurationMS,
		FieldImageURL:   nil,
		FieldPreviewURL: nil,
		FieldURL:        t.URL,
		FieldHasLyrics:  t.HasLyrics,
		FieldSource:     t.Source,
	}
	if t.ImageURL != nil {
		raw[FieldImageURL] = *t.ImageURL
	}
	if t.PreviewURL != nil {
		raw[FieldPreviewURL] = *t.PreviewURL
	}
	return raw
}

// CoerceCount applies the play-count coercion rules of Normalize to a single value.
func CoerceCount(v interface{}) int64 {
	return asNonNegativeInt(v)
}

// CoerceString converts scalar JSON values to their string form. Other types yield "".
func CoerceString(v interface{}) string {
	return asString(v)
}

func normalizeCategory(v interface{}) string {
	return strings.ToLower(strings.TrimSpace(asString(v)))
}

func asString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case *string:
		if val == nil {
			return ""
		}
		return *val
	case json.Number:
		return val.String()
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return ""
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

func asOptionalString(v interface{}) *string {
	s := strings.TrimSpace(asString(v))
	if s == "" {
		return nil
	}
	return &s
}

// asNonNegativeInt coerces JSON numbers, Go integers and decimal strings
// (including thousands separators) to int64. Anything else is 0.
func asNonNegativeInt(v interface{}) int64 {
	var n int64
	switch val := v.(type) {
	case int:
		n = int64(val)
	case int32:
		n = int64(val)
	case int64:
		n = val
	case uint:
		n = clampUint(uint64(val))
	case uint32:
		n = int64(val)
	case uint64:
		n = clampUint(val)
	case float32:
		n = floatToInt(float64(val))
	case float64:
		n = floatToInt(val)
	case json.Number:
		n = parseIntString(val.String())
	case string:
		n = parseIntString(val)
	}
	if n < 0 {
		return 0
	}
	return n
}

func clampUint(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}

func floatToInt(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(f)
}

func parseIntString(s string) int64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return floatToInt(f)
	}
	return 0
}

func asBool(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		return err == nil && b
	default:
		return false
	}
}
