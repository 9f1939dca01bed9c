package page

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/handiism/groupie-tracker/internal/apitest"
	"github.com/handiism/groupie-tracker/internal/filter"
	"github.com/handiism/groupie-tracker/internal/groupie"
	httpclient "github.com/handiism/groupie-tracker/internal/http"
	"github.com/handiism/groupie-tracker/internal/view"
)

func newBackend(t *testing.T) (*groupie.Client, *apitest.Server) {
	t.Helper()
	srv := apitest.New(t, apitest.DefaultFixtures())
	hc := httpclient.NewClient(httpclient.Options{BaseURL: srv.URL})
	return groupie.NewClient(hc, nil), srv
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"not found redirect", NotFound(errMissingID), NotFoundPath},
		{"failure redirect", Failure(errors.New("boom")), ErrorPath},
		{"wrapped not found", fmt.Errorf("load: %w", groupie.ErrNotFound), NotFoundPath},
		{"http 404", &httpclient.HTTPError{Status: http.StatusNotFound, URL: "/x"}, NotFoundPath},
		{"http 500", &httpclient.HTTPError{Status: http.StatusInternalServerError, URL: "/x"}, ErrorPath},
		{"other", errors.New("network down"), ErrorPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.err); got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArtistPage_Load(t *testing.T) {
	backend, _ := newBackend(t)
	p := NewArtistPage(backend, view.NewFormatter("en_US"), nil)

	v, err := p.Load(context.Background(), "1")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if v.Header.Name != "Queen" {
		t.Errorf("Header.Name = %q, want Queen", v.Header.Name)
	}
	if len(v.Members) != 5 {
		t.Errorf("Members = %d, want 5", len(v.Members))
	}
	if len(v.Concerts) != 2 {
		t.Fatalf("Concerts = %d, want 2", len(v.Concerts))
	}
	if v.Concerts[0].Location != "Paris" || v.Concerts[0].Date != "2024-05-01" {
		t.Errorf("first concert = %+v, want Paris on 2024-05-01", v.Concerts[0])
	}
	if v.Concerts[1].Location != "London" || v.Concerts[1].Date != "2024-06-15" {
		t.Errorf("second concert = %+v, want London on 2024-06-15", v.Concerts[1])
	}

	if v.Mode != ModeList || len(v.Visible()) != len(v.List) {
		t.Errorf("initial mode = %v, want list", v.Mode)
	}
	v.Toggle()
	if v.Mode != ModeTimeline {
		t.Errorf("mode after toggle = %v, want timeline", v.Mode)
	}
	v.Toggle()
	if v.Mode != ModeList {
		t.Errorf("mode after second toggle = %v, want list", v.Mode)
	}
}

func TestArtistPage_Redirects(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		fail   string
		target string
	}{
		{"missing id", "", "", NotFoundPath},
		{"blank id", "   ", "", NotFoundPath},
		{"unknown id", "99", "", NotFoundPath},
		{"artists down", "1", groupie.PathArtists, ErrorPath},
		{"relations down", "1", groupie.PathRelation, ErrorPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, srv := newBackend(t)
			if tt.fail != "" {
				srv.Fail(tt.fail, http.StatusInternalServerError)
			}

			_, err := NewArtistPage(backend, view.NewFormatter("fr_FR"), nil).Load(context.Background(), tt.id)
			var r *Redirect
			if !errors.As(err, &r) {
				t.Fatalf("Load() error = %v, want *Redirect", err)
			}
			if r.Target != tt.target {
				t.Errorf("Target = %q, want %q", r.Target, tt.target)
			}
		})
	}
}

func TestArtistPage_MissingIDSkipsFetch(t *testing.T) {
	backend, srv := newBackend(t)
	_, _ = NewArtistPage(backend, view.NewFormatter("fr_FR"), nil).Load(context.Background(), "")
	if srv.Hits(groupie.PathArtists) != 0 || srv.Hits(groupie.PathRelation) != 0 {
		t.Error("Load() with no id should not fetch")
	}
}

func TestSpotifyPage_Load(t *testing.T) {
	backend, _ := newBackend(t)
	p := NewSpotifyPage(backend, view.NewFormatter("en_US"), nil)

	v, err := p.Load(context.Background(), apitest.SpotifyID)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if v.Header.Name != "Daft Punk" {
		t.Errorf("Header.Name = %q", v.Header.Name)
	}
	if v.Link != view.SpotifyArtistBaseURL+apitest.SpotifyID {
		t.Errorf("Link = %q", v.Link)
	}
	if v.Genres.State != view.StateReady || v.Genres.Len() != 5 {
		t.Errorf("Genres = %+v, want 5 ready entries", v.Genres)
	}
	if len(v.Stats) == 0 {
		t.Error("Stats is empty")
	}
}

func TestSpotifyPage_Redirects(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		status int
		target string
	}{
		{"missing id", "", 0, NotFoundPath},
		{"unknown id", "nope", 0, NotFoundPath},
		{"server error", apitest.SpotifyID, http.StatusBadGateway, ErrorPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, srv := newBackend(t)
			if tt.status != 0 {
				srv.Fail(groupie.PathSpotifyArtist, tt.status)
			}

			_, err := NewSpotifyPage(backend, view.NewFormatter("fr_FR"), nil).Load(context.Background(), tt.id)
			if got := Resolve(err); got != tt.target {
				t.Errorf("Resolve(Load()) = %q, want %q (err %v)", got, tt.target, err)
			}
		})
	}
}

func TestHome_LoadAndSearch(t *testing.T) {
	backend, srv := newBackend(t)
	home := NewHome(backend, HomeOptions{Limit: 8})
	ctx := context.Background()

	if got := home.View().Cards.State; got != view.StateLoading {
		t.Errorf("initial state = %v, want loading", got)
	}

	v := home.Load(ctx)
	if v.Cards.State != view.StateReady || v.Count != 2 {
		t.Fatalf("Load() = %+v, want 2 ready cards", v)
	}

	v = home.Search(ctx, "queen")
	if v.Count != 1 || v.Cards.Items[0].Name != "Queen" {
		t.Errorf("Search(queen) = %+v", v)
	}
	if q := srv.LastQuery(groupie.PathArtists); q.Get("name") != "queen" || q.Get("limit") != "8" {
		t.Errorf("query = %v", q)
	}

	v = home.Search(ctx, "zzz")
	if v.Count != 0 || v.Error != view.NoSearchResult {
		t.Errorf("Search(zzz) = %+v, want %q", v, view.NoSearchResult)
	}
}

func TestHome_SpotifyNeedsTerm(t *testing.T) {
	backend, srv := newBackend(t)
	home := NewHome(backend, HomeOptions{})
	ctx := context.Background()
	home.Load(ctx)
	before := srv.Hits(groupie.PathArtists)

	v := home.SetSource(ctx, SourceSpotify, "  ")
	if v.Error != view.SpotifyNeedsTerm {
		t.Errorf("Error = %q, want %q", v.Error, view.SpotifyNeedsTerm)
	}
	if srv.Hits(groupie.PathArtists) != before {
		t.Error("empty Spotify search should not fetch")
	}

	v = home.SetSource(ctx, SourceSpotify, "daft")
	if v.Source != SourceSpotify || v.Count != 1 || !v.Cards.Items[0].Spotify {
		t.Errorf("SetSource(spotify, daft) = %+v", v)
	}
}

func TestHome_Failures(t *testing.T) {
	backend, srv := newBackend(t)
	srv.Fail(groupie.PathArtists, http.StatusInternalServerError)
	home := NewHome(backend, HomeOptions{})
	ctx := context.Background()

	v := home.Load(ctx)
	if v.Cards.State != view.StateFailed || v.Error != view.ArtistsLoadFailed {
		t.Errorf("Load() = %+v, want failed state", v)
	}

	v = home.Search(ctx, "queen")
	if v.Error != view.ArtistsSearchFailed {
		t.Errorf("Search() error = %q, want %q", v.Error, view.ArtistsSearchFailed)
	}

	v = home.SetSource(ctx, SourceSpotify, "daft")
	if v.Error != view.SpotifyUnavailable {
		t.Errorf("Spotify search error = %q, want %q", v.Error, view.SpotifyUnavailable)
	}
}

func TestHome_UnknownSourceFallsBackToAll(t *testing.T) {
	backend, _ := newBackend(t)
	home := NewHome(backend, HomeOptions{Source: "deezer"})
	if got := home.View().Source; got != SourceAll {
		t.Errorf("Source = %q, want %q", got, SourceAll)
	}
}

func TestDatesPage_FiltersWithoutRefetch(t *testing.T) {
	backend, srv := newBackend(t)
	p := NewDatesPage(backend, view.NewFormatter("en_US"), nil)

	v, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if v.Items.Len() != 4 || v.Total != 4 {
		t.Fatalf("Load() items = %d total = %d, want 4/4", v.Items.Len(), v.Total)
	}
	if len(v.Options.Years) != 3 || len(v.Options.Countries) != 4 {
		t.Errorf("Options = %+v", v.Options)
	}

	v = p.Apply(filter.EventCriteria{Year: 2024})
	if v.Items.Len() != 2 {
		t.Errorf("Year 2024 = %d items, want 2", v.Items.Len())
	}

	v = p.Apply(filter.EventCriteria{Year: 2024, Country: "uk"})
	if v.Items.Len() != 1 {
		t.Errorf("Year 2024 + uk = %d items, want 1", v.Items.Len())
	}

	v = p.Apply(filter.EventCriteria{Query: "nobody"})
	if v.Items.State != view.StateEmpty || v.Items.Message != view.NoEventMatch {
		t.Errorf("no match = %+v", v.Items)
	}

	if hits := srv.Hits(groupie.PathEvents); hits != 1 {
		t.Errorf("events fetched %d times, want 1", hits)
	}
}

func TestDatesPage_LoadFailure(t *testing.T) {
	backend, srv := newBackend(t)
	srv.Fail(groupie.PathEvents, http.StatusInternalServerError)
	p := NewDatesPage(backend, view.NewFormatter("fr_FR"), nil)

	v, err := p.Load(context.Background())
	if err == nil {
		t.Fatal("Load() expected error")
	}
	if v.Items.State != view.StateFailed || v.Items.Message != view.EventsLoadFailed {
		t.Errorf("Items = %+v, want failed state", v.Items)
	}
	if got := p.Apply(filter.EventCriteria{Year: 2024}); got.Items.State != view.StateFailed {
		t.Errorf("Apply() after failure state = %v", got.Items.State)
	}
}

func TestLocationsPage(t *testing.T) {
	backend, srv := newBackend(t)
	p := NewLocationsPage(backend, nil)

	v, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if v.Cards.Len() != 4 {
		t.Errorf("Load() = %d cards, want 4", v.Cards.Len())
	}
	if len(v.Options.Artists) != 2 {
		t.Errorf("artist options = %v", v.Options.Artists)
	}

	v = p.Apply(filter.LocationCriteria{Artist: "pink"})
	if v.Cards.Len() != 2 {
		t.Errorf("Artist pink = %d cards, want 2", v.Cards.Len())
	}
	v = p.Apply(filter.LocationCriteria{Artist: "pink", City: "berl"})
	if v.Cards.Len() != 1 || v.Cards.Items[0].Title != "Berlin, Germany" {
		t.Errorf("pink + berl = %+v", v.Cards.Items)
	}

	if hits := srv.Hits(groupie.PathLocations); hits != 1 {
		t.Errorf("locations fetched %d times, want 1", hits)
	}
}

func TestLocationsPage_LoadFailure(t *testing.T) {
	backend, srv := newBackend(t)
	srv.Fail(groupie.PathLocations, http.StatusServiceUnavailable)

	v, err := NewLocationsPage(backend, nil).Load(context.Background())
	if err == nil || v.Cards.Message != view.LocationsLoadFailed {
		t.Errorf("Load() = %+v, %v", v.Cards, err)
	}
}

func TestRelationsPage(t *testing.T) {
	backend, srv := newBackend(t)
	p := NewRelationsPage(backend, nil)

	v, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if v.Items.Len() != 2 || len(v.Artists) != 2 {
		t.Fatalf("Load() = %d relations, %d artists", v.Items.Len(), len(v.Artists))
	}
	if v.Items.Items[0].Title != "Queen" {
		t.Errorf("first relation title = %q, want Queen", v.Items.Items[0].Title)
	}

	v = p.Apply(filter.RelationCriteria{ArtistID: "2"})
	if v.Items.Len() != 1 || v.Items.Items[0].Title != "Pink Floyd" {
		t.Errorf("ArtistID 2 = %+v", v.Items.Items)
	}

	v = p.Apply(filter.RelationCriteria{Location: "london"})
	if v.Items.Len() != 1 {
		t.Errorf("Location london = %d, want 1", v.Items.Len())
	}

	if srv.Hits(groupie.PathRelation) != 1 || srv.Hits(groupie.PathArtists) != 1 {
		t.Error("filters should not refetch")
	}
}

func TestRelationsPage_LoadFailure(t *testing.T) {
	backend, srv := newBackend(t)
	srv.Fail(groupie.PathRelation, http.StatusInternalServerError)

	v, err := NewRelationsPage(backend, nil).Load(context.Background())
	if err == nil || v.Items.State != view.StateFailed || v.Items.Message != view.RelationsLoadFailed {
		t.Errorf("Load() = %+v, %v", v.Items, err)
	}
}

func TestLegacySearch_DebouncesInput(t *testing.T) {
	backend, srv := newBackend(t)
	updates := make(chan view.List[view.SearchCard], 4)
	s := NewLegacySearch(context.Background(), backend, 50*time.Millisecond, nil, func(l view.List[view.SearchCard]) {
		updates <- l
	})
	defer s.Close()

	s.Input("q")
	s.Input("qu")
	s.Input("que")

	select {
	case got := <-updates:
		if got.Len() != 1 || got.Items[0].Name != "Queen" {
			t.Errorf("results = %+v, want Queen", got.Items)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no search result delivered")
	}

	if hits := srv.Hits(groupie.PathSearch); hits != 1 {
		t.Errorf("search requests = %d, want 1", hits)
	}
	if q := srv.LastQuery(groupie.PathSearch).Get("q"); q != "que" {
		t.Errorf("q = %q, want que", q)
	}
	if s.Results().Len() != 1 {
		t.Errorf("Results() = %+v", s.Results())
	}
}

func TestLegacySearch_SubmitBypassesWindow(t *testing.T) {
	backend, srv := newBackend(t)
	s := NewLegacySearch(context.Background(), backend, time.Hour, nil, nil)
	defer s.Close()

	s.Input("pink")
	s.Submit("pink")

	if s.Results().State != view.StateReady || s.Results().Items[0].Name != "Pink Floyd" {
		t.Errorf("Results() = %+v", s.Results())
	}
	if hits := srv.Hits(groupie.PathSearch); hits != 1 {
		t.Errorf("search requests = %d, want 1", hits)
	}
}
