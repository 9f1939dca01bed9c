package groupie

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/handiism/groupie-tracker/internal/apitest"
	httpclient "github.com/handiism/groupie-tracker/internal/http"
	"github.com/handiism/groupie-tracker/internal/model"
)

func newTestClient(t *testing.T, strict bool) (*Client, *apitest.Server) {
	t.Helper()
	srv := apitest.New(t, apitest.DefaultFixtures())
	hc := httpclient.NewClient(httpclient.Options{BaseURL: srv.URL, StrictShapes: strict})
	return NewClient(hc, nil), srv
}

func TestClient_Artists(t *testing.T) {
	client, srv := newTestClient(t, false)
	ctx := context.Background()

	all, err := client.Artists(ctx, ArtistQuery{})
	if err != nil {
		t.Fatalf("Artists() error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Artists() returned %d artists, want 2 Groupie entries", len(all))
	}

	found, err := client.Artists(ctx, ArtistQuery{Name: "daft", Source: "all", Limit: 8})
	if err != nil {
		t.Fatalf("Artists(daft) error: %v", err)
	}
	if len(found) != 1 || !found[0].IsSpotify() {
		t.Fatalf("Artists(daft) = %+v, want one Spotify artist", found)
	}

	q := srv.LastQuery(PathArtists)
	if q.Get("name") != "daft" || q.Get("source") != "all" || q.Get("limit") != "8" {
		t.Errorf("query = %v", q)
	}
}

func TestClient_Relations_AllShapes(t *testing.T) {
	shapes := []struct {
		name  string
		shape apitest.RelationShape
		want  int
	}{
		{"array", apitest.RelationArray, 2},
		{"index", apitest.RelationIndex, 2},
		{"single", apitest.RelationSingle, 1},
		{"unknown", apitest.RelationUnknown, 0},
	}

	for _, tt := range shapes {
		t.Run(tt.name, func(t *testing.T) {
			client, srv := newTestClient(t, false)
			srv.SetRelationShape(tt.shape)

			rels, err := client.Relations(context.Background())
			if err != nil {
				t.Fatalf("Relations() error: %v", err)
			}
			if len(rels) != tt.want {
				t.Fatalf("Relations() returned %d, want %d", len(rels), tt.want)
			}
			if tt.want > 0 {
				slugs := rels[0].Slugs()
				if slugs[0] != "paris-france" || slugs[1] != "london-uk" {
					t.Errorf("slug order = %v, want document order", slugs)
				}
			}
		})
	}
}

func TestClient_Relations_StrictUnknownShape(t *testing.T) {
	client, srv := newTestClient(t, true)
	srv.SetRelationShape(apitest.RelationUnknown)

	if _, err := client.Relations(context.Background()); err == nil {
		t.Fatal("Relations() error = nil, want malformed response error")
	}
}

func TestClient_SpotifyArtist(t *testing.T) {
	client, _ := newTestClient(t, false)
	ctx := context.Background()

	artist, err := client.SpotifyArtist(ctx, apitest.SpotifyID)
	if err != nil {
		t.Fatalf("SpotifyArtist() error: %v", err)
	}
	if artist.Name != "Daft Punk" || artist.Followers != 9876543 || !artist.IsSpotify() {
		t.Errorf("SpotifyArtist() = %+v", artist)
	}

	_, err = client.SpotifyArtist(ctx, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("SpotifyArtist(missing) error = %v, want ErrNotFound", err)
	}
}

func TestClient_SpotifyArtist_ServerError(t *testing.T) {
	client, srv := newTestClient(t, false)
	srv.Fail(PathSpotifyArtist, http.StatusInternalServerError)

	_, err := client.SpotifyArtist(context.Background(), apitest.SpotifyID)
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want a generic error", err)
	}
	var httpErr *httpclient.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != http.StatusInternalServerError {
		t.Errorf("error = %v, want HTTP 500", err)
	}
}

func TestClient_EventsLocationsSearch(t *testing.T) {
	client, _ := newTestClient(t, false)
	ctx := context.Background()

	events, err := client.Events(ctx)
	if err != nil || len(events) != 4 {
		t.Fatalf("Events() = %d, %v", len(events), err)
	}
	locations, err := client.Locations(ctx)
	if err != nil || len(locations) != 4 {
		t.Fatalf("Locations() = %d, %v", len(locations), err)
	}
	hits, err := client.Search(ctx, "queen")
	if err != nil || len(hits) != 1 || hits[0].ID != model.ArtistID("1") {
		t.Fatalf("Search(queen) = %+v, %v", hits, err)
	}
}

func TestClient_ArtistsAndRelations(t *testing.T) {
	client, srv := newTestClient(t, false)

	artists, relations, err := client.ArtistsAndRelations(context.Background())
	if err != nil {
		t.Fatalf("ArtistsAndRelations() error: %v", err)
	}
	if len(artists) != 2 || len(relations) != 2 {
		t.Errorf("got %d artists and %d relations", len(artists), len(relations))
	}
	if srv.Hits(PathArtists) != 1 || srv.Hits(PathRelation) != 1 {
		t.Errorf("hits = %d/%d, want one request each", srv.Hits(PathArtists), srv.Hits(PathRelation))
	}
}

func TestClient_ArtistsAndRelations_FailFast(t *testing.T) {
	client, srv := newTestClient(t, false)
	srv.Fail(PathRelation, http.StatusBadGateway)

	artists, relations, err := client.ArtistsAndRelations(context.Background())
	if err == nil {
		t.Fatal("error = nil, want failure")
	}
	if artists != nil || relations != nil {
		t.Errorf("partial results returned: %v %v", artists, relations)
	}
}
