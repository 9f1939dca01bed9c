package page

import (
	"context"
	"sync"

	"github.com/handiism/groupie-tracker/internal/filter"
	"github.com/handiism/groupie-tracker/internal/groupie"
	"github.com/handiism/groupie-tracker/internal/logger"
	"github.com/handiism/groupie-tracker/internal/model"
	"github.com/handiism/groupie-tracker/internal/view"
)

// DatesView is the render state of the concert-date timeline.
type DatesView struct {
	Options  filter.EventOptions       `json:"options"`
	Criteria filter.EventCriteria      `json:"criteria"`
	Items    view.List[view.EventItem] `json:"items"`
	Total    int                       `json:"total"`
}

// DatesPage lists /api/events with year, country and text filters.
type DatesPage struct {
	backend Backend
	format  *view.Formatter
	log     *logger.Logger

	mu    sync.Mutex
	all   []model.Event
	state DatesView
}

// NewDatesPage creates the dates page controller.
func NewDatesPage(backend Backend, format *view.Formatter, log *logger.Logger) *DatesPage {
	return &DatesPage{
		backend: backend,
		format:  format,
		log:     log,
		state:   DatesView{Items: view.Loading[view.EventItem]()},
	}
}

// Load fetches the events and renders them unfiltered. On failure the view
// is in the failed state and the error is returned.
func (p *DatesPage) Load(ctx context.Context) (DatesView, error) {
	events, err := p.backend.Events(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.log.Error("dates load failed", nil, err)
		p.state = DatesView{Items: view.Failed[view.EventItem](view.EventsLoadFailed)}
		return p.state, err
	}

	p.all = events
	p.state = DatesView{Options: filter.EventPickers(events)}
	return p.apply(filter.EventCriteria{}), nil
}

// Apply re-filters the cached events without fetching.
func (p *DatesPage) Apply(c filter.EventCriteria) DatesView {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.Items.State == view.StateLoading || p.state.Items.State == view.StateFailed {
		return p.state
	}
	return p.apply(c)
}

func (p *DatesPage) apply(c filter.EventCriteria) DatesView {
	matched := filter.Events(p.all, c)
	p.state.Criteria = c
	p.state.Total = len(p.all)
	p.state.Items = view.Ready(view.EventItems(matched, p.format), view.NoEventMatch)
	return p.state
}

// LocationsView is the render state of the locations page.
type LocationsView struct {
	Options  filter.LocationOptions       `json:"options"`
	Criteria filter.LocationCriteria      `json:"criteria"`
	Cards    view.List[view.LocationCard] `json:"cards"`
	Total    int                          `json:"total"`
}

// LocationsPage lists /api/locations with country, artist and city filters.
type LocationsPage struct {
	backend Backend
	log     *logger.Logger

	mu    sync.Mutex
	all   []model.Location
	state LocationsView
}

// NewLocationsPage creates the locations page controller.
func NewLocationsPage(backend Backend, log *logger.Logger) *LocationsPage {
	return &LocationsPage{
		backend: backend,
		log:     log,
		state:   LocationsView{Cards: view.Loading[view.LocationCard]()},
	}
}

// Load fetches the locations and renders them unfiltered.
func (p *LocationsPage) Load(ctx context.Context) (LocationsView, error) {
	locations, err := p.backend.Locations(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.log.Error("locations load failed", nil, err)
		p.state = LocationsView{Cards: view.Failed[view.LocationCard](view.LocationsLoadFailed)}
		return p.state, err
	}

	p.all = locations
	p.state = LocationsView{Options: filter.LocationPickers(locations)}
	return p.apply(filter.LocationCriteria{}), nil
}

// Apply re-filters the cached locations without fetching.
func (p *LocationsPage) Apply(c filter.LocationCriteria) LocationsView {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.Cards.State == view.StateLoading || p.state.Cards.State == view.StateFailed {
		return p.state
	}
	return p.apply(c)
}

func (p *LocationsPage) apply(c filter.LocationCriteria) LocationsView {
	matched := filter.Locations(p.all, c)
	p.state.Criteria = c
	p.state.Total = len(p.all)
	p.state.Cards = view.Ready(view.LocationCards(matched), view.NoLocationMatch)
	return p.state
}

// ArtistOption is one entry of the relations page artist picker.
type ArtistOption struct {
	ID   model.ArtistID `json:"id"`
	Name string         `json:"name"`
}

// RelationsView is the render state of the relations explorer.
type RelationsView struct {
	Artists  []ArtistOption               `json:"artists"`
	Criteria filter.RelationCriteria      `json:"criteria"`
	Items    view.List[view.RelationView] `json:"items"`
	Total    int                          `json:"total"`
}

// RelationsPage joins artists and relations into an accordion.
type RelationsPage struct {
	backend Backend
	log     *logger.Logger

	mu        sync.Mutex
	relations []model.Relation
	names     map[model.ArtistID]string
	state     RelationsView
}

// NewRelationsPage creates the relations page controller.
func NewRelationsPage(backend Backend, log *logger.Logger) *RelationsPage {
	return &RelationsPage{
		backend: backend,
		log:     log,
		state:   RelationsView{Items: view.Loading[view.RelationView]()},
	}
}

// Load fetches artists and relations concurrently and renders every
// relation.
func (p *RelationsPage) Load(ctx context.Context) (RelationsView, error) {
	artists, relations, err := p.backend.ArtistsAndRelations(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.log.Error("relations load failed", nil, err)
		p.state = RelationsView{Items: view.Failed[view.RelationView](view.RelationsLoadFailed)}
		return p.state, err
	}

	options := make([]ArtistOption, 0, len(artists))
	for _, a := range artists {
		options = append(options, ArtistOption{ID: a.ID, Name: a.Name})
	}

	p.relations = relations
	p.names = groupie.ArtistNames(artists)
	p.state = RelationsView{Artists: options}
	return p.apply(filter.RelationCriteria{}), nil
}

// Apply re-filters the cached relations without fetching.
func (p *RelationsPage) Apply(c filter.RelationCriteria) RelationsView {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.Items.State == view.StateLoading || p.state.Items.State == view.StateFailed {
		return p.state
	}
	return p.apply(c)
}

func (p *RelationsPage) apply(c filter.RelationCriteria) RelationsView {
	matched := filter.Relations(p.relations, c)
	p.state.Criteria = c
	p.state.Total = len(p.relations)
	p.state.Items = view.Ready(view.RelationViews(matched, p.names), view.NoRelationMatch)
	return p.state
}
