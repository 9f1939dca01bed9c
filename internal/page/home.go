package page

import (
	"context"
	"strings"
	"sync"

	"github.com/handiism/groupie-tracker/internal/filter"
	"github.com/handiism/groupie-tracker/internal/groupie"
	"github.com/handiism/groupie-tracker/internal/logger"
	"github.com/handiism/groupie-tracker/internal/model"
	"github.com/handiism/groupie-tracker/internal/view"
)

// Source switch values of the home page.
const (
	SourceAll     = "all"
	SourceGroupie = "groupie"
	SourceSpotify = "spotify"
)

// HomeView is the render state of the home page.
type HomeView struct {
	Source string                     `json:"source"`
	Term   string                     `json:"term"`
	Count  int                        `json:"count"`
	Cards  view.List[view.ArtistCard] `json:"cards"`
	Error  string                     `json:"error,omitempty"`
}

// HomeOptions configures a Home controller.
type HomeOptions struct {
	// Source is the initial source switch value. Empty means all.
	Source string

	// Limit is sent as the limit parameter of every search.
	Limit int

	Logger *logger.Logger
}

// Home is the artist roster and search page.
//
// The last non-empty result set is cached; when a search returns nothing
// the cache is filtered client-side by name instead.
type Home struct {
	backend Backend
	limit   int
	log     *logger.Logger

	mu     sync.Mutex
	source string
	cache  []model.Artist
	state  HomeView
}

// NewHome creates the home page controller.
func NewHome(backend Backend, opts HomeOptions) *Home {
	source := normalizeSource(opts.Source)
	limit := opts.Limit
	if limit <= 0 {
		limit = 8
	}
	return &Home{
		backend: backend,
		limit:   limit,
		log:     opts.Logger,
		source:  source,
		state: HomeView{
			Source: source,
			Cards:  view.Loading[view.ArtistCard](),
		},
	}
}

// Load fetches the initial roster.
func (h *Home) Load(ctx context.Context) HomeView {
	h.mu.Lock()
	defer h.mu.Unlock()

	artists, err := h.fetch(ctx, "")
	if err != nil {
		h.log.Error("home load failed", logger.Fields{"source": h.source}, err)
		h.state = HomeView{
			Source: h.source,
			Cards:  view.Failed[view.ArtistCard](view.ArtistsLoadFailed),
			Error:  view.ArtistsLoadFailed,
		}
		return h.state
	}

	h.cache = artists
	h.state = HomeView{
		Source: h.source,
		Count:  len(artists),
		Cards:  view.Ready(view.ArtistCards(artists), view.NoSearchResult),
	}
	return h.state
}

// Search runs a backend search for term.
func (h *Home) Search(ctx context.Context, term string) HomeView {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.search(ctx, term)
}

// SetSource switches the source and re-runs the search for term.
func (h *Home) SetSource(ctx context.Context, source, term string) HomeView {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.source = normalizeSource(source)
	h.state.Source = h.source
	h.state.Error = ""
	return h.search(ctx, term)
}

// View returns the current render state.
func (h *Home) View() HomeView {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

func (h *Home) search(ctx context.Context, term string) HomeView {
	term = strings.TrimSpace(term)
	h.state.Term = term
	h.state.Error = ""

	if term == "" && h.source == SourceSpotify {
		h.state.Error = view.SpotifyNeedsTerm
		return h.state
	}

	searched, err := h.fetch(ctx, term)
	if err != nil {
		message := view.ArtistsSearchFailed
		if h.source == SourceSpotify {
			message = view.SpotifyUnavailable
		}
		h.log.Error("home search failed", logger.Fields{"source": h.source, "term": term}, err)
		h.state.Error = message
		return h.state
	}

	if len(searched) > 0 || term == "" {
		h.cache = searched
	}
	results := searched
	if len(searched) == 0 {
		results = filter.Artists(h.cache, filter.ArtistCriteria{Name: term})
	}

	h.state.Count = len(results)
	h.state.Cards = view.Ready(view.ArtistCards(results), view.NoSearchResult)
	if len(results) == 0 {
		h.state.Error = view.NoSearchResult
	}
	return h.state
}

func (h *Home) fetch(ctx context.Context, term string) ([]model.Artist, error) {
	return h.backend.Artists(ctx, groupie.ArtistQuery{
		Name:   term,
		Source: h.source,
		Limit:  h.limit,
	})
}

func normalizeSource(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case SourceGroupie:
		return SourceGroupie
	case SourceSpotify:
		return SourceSpotify
	default:
		return SourceAll
	}
}
