package view

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/handiism/groupie-tracker/internal/model"
)

// SpotifyHeader is the hero block of the Spotify artist page.
type SpotifyHeader struct {
	Name       string   `json:"name"`
	Image      string   `json:"image,omitempty"`
	Initial    string   `json:"initial,omitempty"`
	Badge      Badge    `json:"badge"`
	Followers  string   `json:"followers"`
	Popularity string   `json:"popularity"`
	Genres     []string `json:"genres"`
	Link       string   `json:"link"`
	LinkLabel  string   `json:"linkLabel"`
}

// SpotifyURL returns the open.spotify.com page of an artist.
func SpotifyURL(id model.ArtistID) string {
	return SpotifyArtistBaseURL + url.PathEscape(id.String())
}

// NewSpotifyHeader builds the header of a Spotify artist.
func NewSpotifyHeader(a model.Artist, f *Formatter) SpotifyHeader {
	h := SpotifyHeader{
		Name:      a.Name,
		Image:     a.Image,
		Badge:     Badge{Label: BadgeSpotify, Class: "badge-spotify"},
		Followers: SpotifyArtistLabel,
		Genres:    head(a.Genres, maxHeroGenres),
		Link:      SpotifyURL(a.ID),
		LinkLabel: OpenOnSpotify,
	}
	if a.Image == "" {
		h.Initial = Initial(a.Name)
	}
	if a.Followers > 0 {
		h.Followers = fmt.Sprintf("%s abonnés", f.Count(a.Followers))
	}
	if a.Popularity > 0 {
		h.Popularity = fmt.Sprintf("Popularité %d", a.Popularity)
	}
	if len(h.Genres) == 0 {
		h.Genres = []string{NoGenreHero}
	}
	return h
}

// StatCard is one labelled figure.
type StatCard struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Helper string `json:"helper"`
}

// SpotifyStats builds the followers, popularity and genres cards.
func SpotifyStats(a model.Artist, f *Formatter) []StatCard {
	followers := StatNotAvailable
	if a.Followers > 0 {
		followers = f.Count(a.Followers)
	}
	popularity := StatNotAvailable
	if a.Popularity > 0 {
		popularity = strconv.Itoa(a.Popularity)
	}
	genres := NoGenreStat
	if len(a.Genres) > 0 {
		genres = strings.Join(head(a.Genres, maxStatGenres), " • ")
	}

	return []StatCard{
		{Label: "Abonnés", Value: followers, Helper: "Nombre d'abonnés en direct depuis Spotify"},
		{Label: "Popularité", Value: popularity, Helper: "Popularité Spotify (0-100)"},
		{Label: "Genres", Value: genres, Helper: "Genres principaux détectés par Spotify"},
	}
}

// SpotifyGenres lists every genre, or an empty list with its message.
func SpotifyGenres(a model.Artist) List[string] {
	return Ready(head(a.Genres, len(a.Genres)), NoGenreAvailable)
}
