package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Source identifies where an artist entry comes from.
type Source string

const (
	// SourceGroupie marks entries from the Groupie Tracker API. It is the
	// default when the backend omits the field.
	SourceGroupie Source = "groupie"

	// SourceSpotify marks entries proxied from Spotify.
	SourceSpotify Source = "spotify"
)

// ParseSource normalizes a raw source value. Unknown and empty values map to
// SourceGroupie.
func ParseSource(raw string) Source {
	if strings.EqualFold(strings.TrimSpace(raw), string(SourceSpotify)) {
		return SourceSpotify
	}
	return SourceGroupie
}

// ArtistID is an artist identifier as sent by the backend.
//
// Groupie Tracker ids are integers while Spotify ids are opaque strings, so
// the value is stored as text and decoded from either JSON form.
type ArtistID string

// UnmarshalJSON accepts a JSON number or a JSON string.
func (id *ArtistID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ArtistID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("artist id: %w", err)
	}
	*id = ArtistID(n.String())
	return nil
}

// Int returns the numeric value of the id, if it has one.
func (id ArtistID) Int() (int, bool) {
	s := strings.TrimSpace(string(id))
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

// Matches reports whether two ids designate the same artist.
//
// Numeric ids are compared by value; anything else is compared verbatim.
func (id ArtistID) Matches(other ArtistID) bool {
	a, okA := id.Int()
	b, okB := other.Int()
	if okA && okB {
		return a == b
	}
	return strings.TrimSpace(string(id)) == strings.TrimSpace(string(other))
}

// String implements fmt.Stringer.
func (id ArtistID) String() string {
	return string(id)
}

// Artist represents one roster entry.
//
// Groupie entries carry CreationDate, FirstAlbum and Members. Spotify entries
// carry Followers, Popularity and Genres. Fields that the backend omits stay
// at their zero value and view builders substitute fallback text.
type Artist struct {
	// ID is the artist identifier (numeric for Groupie, opaque for Spotify).
	ID ArtistID `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Image is the picture URL, empty when none is available.
	Image string `json:"image_url,omitempty"`

	// CreationDate is the formation year as text ("1973").
	CreationDate string `json:"creationDate,omitempty"`

	// FirstAlbum is the first album date as sent ("14-12-1973").
	FirstAlbum string `json:"firstAlbum,omitempty"`

	// Members lists band members in backend order.
	Members []string `json:"members,omitempty"`

	// Source is the origin of the entry.
	Source Source `json:"source"`

	// Followers is the Spotify follower count.
	Followers int `json:"followers,omitempty"`

	// Popularity is the Spotify popularity score (0-100).
	Popularity int `json:"popularity,omitempty"`

	// Genres lists Spotify genres in backend order.
	Genres []string `json:"genres,omitempty"`
}

// IsSpotify reports whether the entry is Spotify-sourced.
func (a Artist) IsSpotify() bool {
	return a.Source == SourceSpotify
}

// SearchHit is one result of the legacy /search endpoint.
type SearchHit struct {
	ID    ArtistID `json:"id"`
	Name  string   `json:"name"`
	Image string   `json:"image"`
}
