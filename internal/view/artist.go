package view

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/handiism/groupie-tracker/internal/groupie"
	"github.com/handiism/groupie-tracker/internal/model"
)

const (
	maxCardTags   = 3
	maxHeroGenres = 4
	maxStatGenres = 2
)

// Badge is a labelled source marker.
type Badge struct {
	Label string `json:"label"`
	Class string `json:"class"`
}

// ArtistCard is the home-page card of one artist.
type ArtistCard struct {
	ID      model.ArtistID `json:"id"`
	Name    string         `json:"name"`
	Image   string         `json:"image,omitempty"`
	Initial string         `json:"initial,omitempty"` // placeholder when Image is empty
	Badge   Badge          `json:"badge"`
	Meta    string         `json:"meta"`
	Left    string         `json:"left"`
	Right   string         `json:"right"`
	Tags    []string       `json:"tags"`
	Button  string         `json:"button"`
	Target  string         `json:"target"`
	Spotify bool           `json:"spotify"`
}

// ArtistTarget returns the detail page path for an artist.
func ArtistTarget(a model.Artist) string {
	id := url.QueryEscape(a.ID.String())
	if a.IsSpotify() {
		return "/artist-spotify?id=" + id
	}
	return "/artist?id=" + id
}

// Initial returns the upper-cased first letter of name, or "?".
func Initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}

// NewArtistCard builds the card view of an artist.
func NewArtistCard(a model.Artist) ArtistCard {
	card := ArtistCard{
		ID:      a.ID,
		Name:    a.Name,
		Image:   a.Image,
		Target:  ArtistTarget(a),
		Spotify: a.IsSpotify(),
	}
	if a.Image == "" {
		card.Initial = Initial(a.Name)
	}

	if a.IsSpotify() {
		card.Badge = Badge{Label: BadgeSpotify, Class: "badge-spotify"}
		card.Meta = BadgeSpotify
		if a.Popularity > 0 {
			card.Meta = fmt.Sprintf("Pop. %d", a.Popularity)
			card.Right = fmt.Sprintf("Popularité %d", a.Popularity)
		}
		card.Left = SpotifyArtistLabel
		if len(a.Genres) > 0 {
			card.Left = a.Genres[0]
			card.Tags = head(a.Genres, maxCardTags)
		} else {
			card.Tags = []string{OnSpotifyTag}
		}
		card.Button = ViewOnSpotify
		return card
	}

	card.Badge = Badge{Label: BadgeGroupie, Class: "badge-groupie"}
	card.Meta = a.CreationDate
	card.Left = fmt.Sprintf("%d membres", len(a.Members))
	card.Right = a.CreationDate
	if year, ok := groupie.AlbumYear(a.FirstAlbum); ok {
		card.Right = strconv.Itoa(year)
	}
	card.Tags = head(a.Members, maxCardTags)
	if extra := len(a.Members) - maxCardTags; extra > 0 {
		card.Tags = append(card.Tags, fmt.Sprintf("+%d", extra))
	}
	card.Button = ViewDetails
	return card
}

// ArtistCards builds cards in input order.
func ArtistCards(artists []model.Artist) []ArtistCard {
	cards := make([]ArtistCard, 0, len(artists))
	for _, a := range artists {
		cards = append(cards, NewArtistCard(a))
	}
	return cards
}

// ArtistHeader is the hero block of the artist detail page.
type ArtistHeader struct {
	Name       string `json:"name"`
	Image      string `json:"image,omitempty"`
	Formed     string `json:"formed"`
	FirstAlbum string `json:"firstAlbum"`
	Members    string `json:"members"`
	Back       string `json:"back"`
	BackTarget string `json:"backTarget"`
}

// NewArtistHeader builds the header of a Groupie artist.
func NewArtistHeader(a model.Artist) ArtistHeader {
	album := "Premier album : " + NotAvailable
	if year, ok := groupie.AlbumYear(a.FirstAlbum); ok {
		album = fmt.Sprintf("Premier album : %d", year)
	}

	return ArtistHeader{
		Name:       a.Name,
		Image:      a.Image,
		Formed:     strings.TrimSpace("Formé en " + a.CreationDate),
		FirstAlbum: album,
		Members:    fmt.Sprintf("%d membres", len(a.Members)),
		Back:       BackToArtists,
		BackTarget: "/",
	}
}

// MemberCard is one band member tile.
type MemberCard struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// MemberCards builds member tiles in input order. The avatar is the first
// character of the name as written.
func MemberCards(members []string) []MemberCard {
	cards := make([]MemberCard, 0, len(members))
	for _, m := range members {
		avatar := ""
		if r, size := utf8.DecodeRuneInString(m); size > 0 {
			avatar = string(r)
		}
		cards = append(cards, MemberCard{Name: m, Avatar: avatar})
	}
	return cards
}

func head(s []string, n int) []string {
	if len(s) > n {
		s = s[:n]
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
