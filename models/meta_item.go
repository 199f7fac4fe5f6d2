// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// PosterShape is the aspect of the poster image an addon advertises.
// Unknown shapes decode to [PosterShapeUnspecified].
type PosterShape string

const (
	PosterShapePoster      PosterShape = "poster"
	PosterShapeSquare      PosterShape = "square"
	PosterShapeLandscape   PosterShape = "landscape"
	PosterShapeUnspecified PosterShape = ""
)

// UnmarshalJSON accepts any string and maps values outside the known set to
// [PosterShapeUnspecified].
func (p *PosterShape) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	switch shape := PosterShape(s); shape {
	case PosterShapePoster, PosterShapeSquare, PosterShapeLandscape:
		*p = shape
	default:
		*p = PosterShapeUnspecified
	}
	return nil
}

// IsUnspecified reports whether no known shape was given.
func (p PosterShape) IsUnspecified() bool {
	return p == PosterShapeUnspecified
}

// Name returns the shape used for rendering; unspecified renders as poster.
func (p PosterShape) Name() string {
	if p.IsUnspecified() {
		return string(PosterShapePoster)
	}
	return string(p)
}

// Stream is the minimal stream description attached to metas as a trailer.
type Stream struct {
	URL         string `json:"url,omitempty"`
	YtID        string `json:"ytId,omitempty"`
	InfoHash    string `json:"infoHash,omitempty"`
	FileIdx     *int   `json:"fileIdx,omitempty"`
	ExternalURL string `json:"externalUrl,omitempty"`
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
}

// MetaPreview is a catalog entry.
type MetaPreview struct {
	ID          string      `json:"id"`
	TypeName    string      `json:"type"`
	Name        string      `json:"name"`
	Poster      *string     `json:"poster"`
	Logo        *string     `json:"logo"`
	Description *string     `json:"description"`
	ReleaseInfo *string     `json:"releaseInfo"`
	Runtime     *string     `json:"runtime"`
	Released    *time.Time  `json:"released"`
	Genres      []string    `json:"genres"`
	Directors   []string    `json:"directors"`
	PosterShape PosterShape `json:"posterShape,omitempty"`
	Trailer     *Stream     `json:"trailer"`
}

// UnmarshalJSON decodes a preview, accepting "director" as an alias of
// "directors" and treating an invalid directors value as empty.
func (m *MetaPreview) UnmarshalJSON(b []byte) error {
	type plain MetaPreview
	aux := struct {
		*plain
		Directors json.RawMessage `json:"directors"`
		Director  json.RawMessage `json:"director"`
	}{plain: (*plain)(m)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	m.Directors = lenientStrings(aux.Directors, aux.Director)
	if m.Genres == nil {
		m.Genres = []string{}
	}
	return nil
}

// MetaItem is the detailed description of a single title.
type MetaItem struct {
	ID           string      `json:"id"`
	TypeName     string      `json:"type"`
	Name         string      `json:"name"`
	Poster       *string     `json:"poster"`
	Background   *string     `json:"background"`
	Logo         *string     `json:"logo"`
	Popularity   *float64    `json:"popularity"`
	Description  *string     `json:"description"`
	ReleaseInfo  *string     `json:"releaseInfo"`
	Runtime      *string     `json:"runtime"`
	Released     *time.Time  `json:"released"`
	Genres       []string    `json:"genres"`
	Directors    []string    `json:"directors"`
	Writers      []string    `json:"writers"`
	Cast         []string    `json:"cast"`
	IMDBRating   *string     `json:"imdbRating"`
	IMDBID       *string     `json:"imdb_id"`
	PosterShape  PosterShape `json:"posterShape,omitempty"`
	Videos       []Video     `json:"videos"`
	FeaturedVid  *string     `json:"featuredVid"`
	ExternalURLs [][2]string `json:"externalUrls"`
	Trailer      *Stream     `json:"trailer"`
}

// UnmarshalJSON decodes a meta item, accepting the singular "director" and
// "writer" aliases and defaulting missing lists to empty ones.
func (m *MetaItem) UnmarshalJSON(b []byte) error {
	type plain MetaItem
	aux := struct {
		*plain
		Directors json.RawMessage `json:"directors"`
		Director  json.RawMessage `json:"director"`
		Writers   []string        `json:"writers"`
		Writer    []string        `json:"writer"`
	}{plain: (*plain)(m)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	m.Directors = lenientStrings(aux.Directors, aux.Director)
	m.Writers = aux.Writers
	if m.Writers == nil {
		m.Writers = aux.Writer
	}
	if m.Writers == nil {
		m.Writers = []string{}
	}
	if m.Genres == nil {
		m.Genres = []string{}
	}
	if m.Cast == nil {
		m.Cast = []string{}
	}
	if m.Videos == nil {
		m.Videos = []Video{}
	}
	if m.ExternalURLs == nil {
		m.ExternalURLs = [][2]string{}
	}
	return nil
}

// SeriesInfo places a video inside a series. Season and episode always come
// together.
type SeriesInfo struct {
	Season  uint32 `json:"season"`
	Episode uint32 `json:"episode"`
}

// Video is a single playable entry of a meta item (a movie or an episode).
type Video struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Released   time.Time   `json:"released"`
	Overview   *string     `json:"overview,omitempty"`
	Thumbnail  *string     `json:"thumbnail,omitempty"`
	Streams    []Stream    `json:"streams"`
	SeriesInfo *SeriesInfo `json:"-"`
	Trailer    *Stream     `json:"trailer,omitempty"`
}

// UnmarshalJSON decodes a video, accepting "name" for "title" and picking up
// the flattened season/episode pair.
func (v *Video) UnmarshalJSON(b []byte) error {
	type plain Video
	aux := struct {
		*plain
		Name    *string `json:"name"`
		Season  *uint32 `json:"season"`
		Episode *uint32 `json:"episode"`
	}{plain: (*plain)(v)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	if v.Title == "" && aux.Name != nil {
		v.Title = *aux.Name
	}
	if aux.Season != nil && aux.Episode != nil {
		v.SeriesInfo = &SeriesInfo{Season: *aux.Season, Episode: *aux.Episode}
	}
	if v.Streams == nil {
		v.Streams = []Stream{}
	}
	return nil
}

// MarshalJSON flattens SeriesInfo into the video object.
func (v Video) MarshalJSON() ([]byte, error) {
	type plain Video
	aux := struct {
		plain
		Season  *uint32 `json:"season,omitempty"`
		Episode *uint32 `json:"episode,omitempty"`
	}{plain: plain(v)}

	if v.SeriesInfo != nil {
		aux.Season = &v.SeriesInfo.Season
		aux.Episode = &v.SeriesInfo.Episode
	}
	return json.Marshal(aux)
}

// lenientStrings decodes the first non-empty raw value as a list of strings.
// Null or malformed input yields an empty list instead of an error.
func lenientStrings(raws ...json.RawMessage) []string {
	for _, raw := range raws {
		if len(raw) == 0 {
			continue
		}
		var out []string
		if err := json.Unmarshal(raw, &out); err == nil && out != nil {
			return out
		}
		return []string{}
	}
	return []string{}
}
