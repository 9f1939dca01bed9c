package groupie

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/handiism/groupie-tracker/internal/groupie/dto"
	"github.com/handiism/groupie-tracker/internal/http"
	"github.com/handiism/groupie-tracker/internal/logger"
	"github.com/handiism/groupie-tracker/internal/model"
)

// ErrNotFound is returned when an entity is absent, either because the
// backend answered 404 or because a lookup in a fetched collection failed.
var ErrNotFound = errors.New("not found")

// Backend endpoints.
const (
	PathArtists       = "/api/artists"
	PathRelation      = "/api/relation"
	PathEvents        = "/api/events"
	PathLocations     = "/api/locations"
	PathSpotifyArtist = "/api/spotify/artist"
	PathSearch        = "/search"
)

// ArtistQuery parameterizes /api/artists. The zero value lists everything.
type ArtistQuery struct {
	// Name is the search term.
	Name string

	// Source is "all", "groupie" or "spotify"; empty omits the parameter.
	Source string

	// Limit caps Spotify results; zero omits the parameter.
	Limit int
}

// Values encodes the query string.
func (q ArtistQuery) Values() url.Values {
	v := url.Values{}
	if name := strings.TrimSpace(q.Name); name != "" {
		v.Set("name", name)
	}
	if q.Source != "" {
		v.Set("source", q.Source)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

// Client fetches and normalizes Groupie Tracker resources.
//
// Example usage:
//
//	client := groupie.NewClient(httpClient, log)
//	artists, relations, err := client.ArtistsAndRelations(ctx)
//	if err != nil {
//	    return err
//	}
//	concerts := groupie.BuildConcerts("1", relations)
type Client struct {
	http *http.Client
	log  *logger.Logger
}

// NewClient creates a client on top of an HTTP client.
func NewClient(httpClient *http.Client, log *logger.Logger) *Client {
	return &Client{
		http: httpClient,
		log:  log,
	}
}

// Artists lists artists, optionally filtered by the backend.
func (c *Client) Artists(ctx context.Context, q ArtistQuery) ([]model.Artist, error) {
	raw, err := http.FetchList[dto.JSONArtist](ctx, c.http, PathArtists, q.Values())
	if err != nil {
		return nil, fmt.Errorf("fetch artists: %w", err)
	}
	return dto.ToArtists(raw), nil
}

// Relations lists every artist's dates by location.
func (c *Client) Relations(ctx context.Context) ([]model.Relation, error) {
	raw, err := http.FetchList[dto.JSONRelation](ctx, c.http, PathRelation, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch relations: %w", err)
	}
	return dto.ToRelations(raw), nil
}

// Events lists pre-joined concerts.
func (c *Client) Events(ctx context.Context) ([]model.Event, error) {
	events, err := http.FetchList[model.Event](ctx, c.http, PathEvents, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	return events, nil
}

// Locations lists artist/location pairs.
func (c *Client) Locations(ctx context.Context) ([]model.Location, error) {
	locations, err := http.FetchList[model.Location](ctx, c.http, PathLocations, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch locations: %w", err)
	}
	return locations, nil
}

// SpotifyArtist fetches one Spotify artist. A 404 is reported as
// ErrNotFound.
func (c *Client) SpotifyArtist(ctx context.Context, id model.ArtistID) (model.Artist, error) {
	var raw dto.JSONArtist
	err := c.http.GetJSON(ctx, PathSpotifyArtist, url.Values{"id": {id.String()}}, &raw)
	if err != nil {
		if http.IsNotFound(err) {
			return model.Artist{}, fmt.Errorf("spotify artist %q: %w", id, ErrNotFound)
		}
		return model.Artist{}, fmt.Errorf("fetch spotify artist %q: %w", id, err)
	}

	artist := raw.ToArtist()
	artist.Source = model.SourceSpotify
	if artist.ID == "" {
		artist.ID = id
	}
	return artist, nil
}

// Search queries the legacy /search endpoint.
func (c *Client) Search(ctx context.Context, q string) ([]model.SearchHit, error) {
	hits, err := http.FetchList[model.SearchHit](ctx, c.http, PathSearch, url.Values{"q": {strings.TrimSpace(q)}})
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", q, err)
	}
	return hits, nil
}

// ArtistsAndRelations fetches both collections concurrently. The first
// failure cancels the other request and fails the whole call.
func (c *Client) ArtistsAndRelations(ctx context.Context) ([]model.Artist, []model.Relation, error) {
	var (
		artists   []model.Artist
		relations []model.Relation
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		artists, err = c.Artists(ctx, ArtistQuery{})
		return err
	})
	g.Go(func() error {
		var err error
		relations, err = c.Relations(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		c.log.Error("joint fetch failed", logger.Fields{
			"resources": "artists+relations",
		}, err)
		return nil, nil, err
	}
	return artists, relations, nil
}
