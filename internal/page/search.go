package page

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/handiism/groupie-tracker/internal/debounce"
	"github.com/handiism/groupie-tracker/internal/logger"
	"github.com/handiism/groupie-tracker/internal/view"
)

// LegacySearch is the inline search-as-you-type box backed by /search.
//
// Keystrokes are debounced; a submit bypasses the window. Each request
// takes a sequence token and its response is applied only if no newer
// request was issued meanwhile.
type LegacySearch struct {
	ctx      context.Context
	backend  Backend
	log      *logger.Logger
	onUpdate func(view.List[view.SearchCard])

	debouncer *debounce.Debouncer[string]
	seq       debounce.Sequencer

	mu      sync.Mutex
	results view.List[view.SearchCard]
}

// NewLegacySearch creates the controller. onUpdate, if set, receives every
// applied result list. Requests use ctx.
func NewLegacySearch(ctx context.Context, backend Backend, window time.Duration, log *logger.Logger, onUpdate func(view.List[view.SearchCard])) *LegacySearch {
	s := &LegacySearch{
		ctx:      ctx,
		backend:  backend,
		log:      log,
		onUpdate: onUpdate,
		results:  view.Loading[view.SearchCard](),
	}
	s.debouncer = debounce.New(window, s.run)
	return s
}

// Input records a keystroke; the search runs once typing pauses.
func (s *LegacySearch) Input(q string) {
	s.debouncer.Trigger(q)
}

// Submit searches for q immediately.
func (s *LegacySearch) Submit(q string) {
	s.debouncer.Flush(q)
}

// Close drops any pending search.
func (s *LegacySearch) Close() {
	s.debouncer.Stop()
}

// Results returns the last applied result list.
func (s *LegacySearch) Results() view.List[view.SearchCard] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

func (s *LegacySearch) run(q string) {
	q = strings.TrimSpace(q)
	token := s.seq.Next()

	hits, err := s.backend.Search(s.ctx, q)
	if !s.seq.IsLatest(token) {
		s.log.Debug("stale search response dropped", logger.Fields{"q": q})
		return
	}
	if err != nil {
		s.log.Error("search failed", logger.Fields{"q": q}, err)
		return
	}

	cards := view.SearchCards(hits)
	s.mu.Lock()
	s.results = cards
	s.mu.Unlock()

	if s.onUpdate != nil {
		s.onUpdate(cards)
	}
}
