// Musictrends - Music Trend and Genre Popularity Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/musictrends

package connector

import (
	"html"
	"math"
	"strings"

	"github.com/tomtom215/musictrends/internal/models"
)

// SourceName is stamped on every parsed record.
const SourceName = "jiosaavn"

// Genres inferred from a track's language when no seed tag applies.
const (
	GenreBollywood   = "bollywood"
	GenreSouthIndian = "south_indian"
	GenrePunjabi     = "punjabi"
	GenreRegional    = "regional"
)

// InferGenre maps a language to the catalog's coarse genre buckets.
func InferGenre(language string) string {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "hindi":
		return GenreBollywood
	case "tamil", "telugu", "kannada", "malayalam":
		return GenreSouthIndian
	case "punjabi":
		return GenrePunjabi
	default:
		return GenreRegional
	}
}

// PopularityFromPlays derives a 0-100 score from a play count on a log scale:
// 10 plays score 10, a million plays score 60, 10^10 plays and above score 100.
func PopularityFromPlays(plays int64) int {
	if plays <= 0 {
		return 0
	}
	score := math.Round(10 * math.Log10(float64(plays)+1))
	if score > 100 {
		return 100
	}
	return int(score)
}

// parseTrack maps the fields shared by the v4, v3 and legacy result shapes.
// Genre is left unset; applySeed fills it.
func parseTrack(item map[string]interface{}) (models.RawTrack, bool) {
	if item == nil {
		return nil, false
	}
	id := strings.TrimSpace(models.CoerceString(item["id"]))
	if id == "" {
		return nil, false
	}

	plays := models.CoerceCount(first(item, "playCount", "play_count"))

	raw := models.RawTrack{
		models.FieldTrackID:    id,
		models.FieldTrackName:  unescaped(first(item, "name", "title", "song")),
		models.FieldArtist:     parseArtist(item),
		models.FieldAlbum:      parseAlbum(item["album"]),
		models.FieldLanguage:   strings.ToLower(strings.TrimSpace(models.CoerceString(item["language"]))),
		models.FieldLabel:      unescaped(item["label"]),
		models.FieldYear:       models.CoerceString(item["year"]),
		models.FieldPlayCount:  plays,
		models.FieldPopularity: PopularityFromPlays(plays),
		models.FieldDurationMS: models.CoerceCount(item["duration"]) * 1000,
		models.FieldImageURL:   optional(parseImage(item["image"])),
		models.FieldPreviewURL: optional(parsePreview(item)),
		models.FieldURL:        models.CoerceString(first(item, "url", "perma_url")),
		models.FieldHasLyrics:  parseBool(first(item, "hasLyrics", "has_lyrics")),
		models.FieldSource:     SourceName,
	}
	return raw, true
}

// applySeed tags raw with the seed genre and fallback language, then infers
// the genre from the language when it is still unset.
func applySeed(raw models.RawTrack, seed Seed) models.RawTrack {
	language := models.CoerceString(raw[models.FieldLanguage])
	if language == "" && seed.Language != "" {
		language = seed.Language
		raw[models.FieldLanguage] = language
	}

	genre := seed.Genre
	if genre == "" {
		genre = InferGenre(language)
	}
	raw[models.FieldGenre] = genre
	return raw
}

// first returns the first non-nil value among keys.
func first(item map[string]interface{}, keys ...string) interface{} {
	for _, k := range keys {
		if v, ok := item[k]; ok && v != nil {
			if s, isString := v.(string); isString && s == "" {
				continue
			}
			return v
		}
	}
	return nil
}

func unescaped(v interface{}) string {
	return strings.TrimSpace(html.UnescapeString(models.CoerceString(v)))
}

func optional(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// parseArtist handles "primaryArtists" strings (v3), the artists.primary
// list (v4) and "singers"/"primary_artists" (legacy).
func parseArtist(item map[string]interface{}) string {
	if s := unescaped(first(item, "primaryArtists", "primary_artists")); s != "" {
		return s
	}

	if artists, ok := item["artists"].(map[string]interface{}); ok {
		if primary, ok := artists["primary"].([]interface{}); ok {
			names := make([]string, 0, len(primary))
			for _, p := range primary {
				if entry, ok := p.(map[string]interface{}); ok {
					if name := unescaped(entry["name"]); name != "" {
						names = append(names, name)
					}
				}
			}
			if len(names) > 0 {
				return strings.Join(names, ", ")
			}
		}
	}

	return unescaped(item["singers"])
}

func parseAlbum(v interface{}) string {
	if album, ok := v.(map[string]interface{}); ok {
		return unescaped(album["name"])
	}
	return unescaped(v)
}

// parseImage picks the last (highest quality) entry of an image list.
func parseImage(v interface{}) string {
	switch img := v.(type) {
	case string:
		return strings.TrimSpace(img)
	case []interface{}:
		for i := len(img) - 1; i >= 0; i-- {
			if u := linkOf(img[i]); u != "" {
				return u
			}
		}
	}
	return ""
}

// parsePreview picks the first (lowest quality) download URL, falling back
// to the legacy preview fields.
func parsePreview(item map[string]interface{}) string {
	if downloads, ok := item["downloadUrl"].([]interface{}); ok {
		for _, d := range downloads {
			if u := linkOf(d); u != "" {
				return u
			}
		}
	}
	return strings.TrimSpace(models.CoerceString(first(item, "media_preview_url", "previewUrl", "vlink")))
}

// linkOf reads a {"quality": ..., "url"|"link": ...} entry.
func linkOf(v interface{}) string {
	switch entry := v.(type) {
	case map[string]interface{}:
		return strings.TrimSpace(models.CoerceString(first(entry, "url", "link")))
	case string:
		return strings.TrimSpace(entry)
	}
	return ""
}

func parseBool(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(strings.TrimSpace(b), "true")
	}
	return false
}
