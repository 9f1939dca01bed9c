package page

import (
	"context"
	"fmt"
	"strings"

	"github.com/handiism/groupie-tracker/internal/groupie"
	"github.com/handiism/groupie-tracker/internal/logger"
	"github.com/handiism/groupie-tracker/internal/model"
	"github.com/handiism/groupie-tracker/internal/view"
)

// ConcertMode selects how the artist page shows concerts.
type ConcertMode int

const (
	ModeList ConcertMode = iota
	ModeTimeline
)

// String implements fmt.Stringer.
func (m ConcertMode) String() string {
	if m == ModeTimeline {
		return "timeline"
	}
	return "list"
}

// ArtistView is the render state of the artist detail page.
type ArtistView struct {
	Artist   model.Artist       `json:"-"`
	Header   view.ArtistHeader  `json:"header"`
	Members  []view.MemberCard  `json:"members"`
	Concerts []model.Concert    `json:"concerts"`
	List     []view.ConcertItem `json:"list"`
	Timeline []view.ConcertItem `json:"timeline"`
	Mode     ConcertMode        `json:"-"`
}

// Toggle switches between list and timeline.
func (v *ArtistView) Toggle() {
	if v.Mode == ModeList {
		v.Mode = ModeTimeline
	} else {
		v.Mode = ModeList
	}
}

// Visible returns the concert rows of the current mode.
func (v *ArtistView) Visible() []view.ConcertItem {
	if v.Mode == ModeTimeline {
		return v.Timeline
	}
	return v.List
}

// ArtistPage is the Groupie artist detail page.
type ArtistPage struct {
	backend Backend
	format  *view.Formatter
	log     *logger.Logger
}

// NewArtistPage creates the artist page controller.
func NewArtistPage(backend Backend, format *view.Formatter, log *logger.Logger) *ArtistPage {
	return &ArtistPage{backend: backend, format: format, log: log}
}

// Load builds the page for the id query parameter.
//
// Artists and relations are fetched concurrently. A missing id or an
// unknown artist yields a NotFound redirect; any fetch failure yields a
// Failure redirect.
func (p *ArtistPage) Load(ctx context.Context, idParam string) (ArtistView, error) {
	id := model.ArtistID(strings.TrimSpace(idParam))
	if id == "" {
		return ArtistView{}, p.redirect(NotFound(errMissingID))
	}

	artists, relations, err := p.backend.ArtistsAndRelations(ctx)
	if err != nil {
		return ArtistView{}, p.redirect(Failure(err))
	}

	artist, ok := groupie.FindArtist(id, artists)
	if !ok {
		return ArtistView{}, p.redirect(NotFound(fmt.Errorf("artist %q: %w", id, groupie.ErrNotFound)))
	}

	concerts := groupie.BuildConcerts(id, relations)
	return ArtistView{
		Artist:   artist,
		Header:   view.NewArtistHeader(artist),
		Members:  view.MemberCards(artist.Members),
		Concerts: concerts,
		List:     view.ConcertList(concerts, p.format),
		Timeline: view.ConcertTimeline(concerts, p.format),
		Mode:     ModeList,
	}, nil
}

func (p *ArtistPage) redirect(r *Redirect) *Redirect {
	p.log.Warn("artist page redirect", logger.Fields{
		"target": r.Target,
		"cause":  fmt.Sprint(r.Cause),
	})
	return r
}

// SpotifyView is the render state of the Spotify artist page.
type SpotifyView struct {
	Artist model.Artist       `json:"-"`
	Header view.SpotifyHeader `json:"header"`
	Stats  []view.StatCard    `json:"stats"`
	Genres view.List[string]  `json:"genres"`
	Link   string             `json:"link"`
}

// SpotifyPage is the Spotify artist detail page.
type SpotifyPage struct {
	backend Backend
	format  *view.Formatter
	log     *logger.Logger
}

// NewSpotifyPage creates the Spotify page controller.
func NewSpotifyPage(backend Backend, format *view.Formatter, log *logger.Logger) *SpotifyPage {
	return &SpotifyPage{backend: backend, format: format, log: log}
}

// Load builds the page for the id query parameter. A missing id or a 404
// from the backend yields a NotFound redirect.
func (p *SpotifyPage) Load(ctx context.Context, idParam string) (SpotifyView, error) {
	id := model.ArtistID(strings.TrimSpace(idParam))
	if id == "" {
		return SpotifyView{}, p.redirect(NotFound(errMissingID))
	}

	artist, err := p.backend.SpotifyArtist(ctx, id)
	if err != nil {
		if Resolve(err) == NotFoundPath {
			return SpotifyView{}, p.redirect(NotFound(err))
		}
		return SpotifyView{}, p.redirect(Failure(err))
	}

	return SpotifyView{
		Artist: artist,
		Header: view.NewSpotifyHeader(artist, p.format),
		Stats:  view.SpotifyStats(artist, p.format),
		Genres: view.SpotifyGenres(artist),
		Link:   view.SpotifyURL(artist.ID),
	}, nil
}

func (p *SpotifyPage) redirect(r *Redirect) *Redirect {
	p.log.Warn("spotify page redirect", logger.Fields{
		"target": r.Target,
		"cause":  fmt.Sprint(r.Cause),
	})
	return r
}
