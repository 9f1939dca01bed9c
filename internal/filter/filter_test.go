package filter

import (
	"reflect"
	"testing"

	"github.com/handiism/groupie-tracker/internal/apitest"
	"github.com/handiism/groupie-tracker/internal/model"
)

func TestEvents(t *testing.T) {
	events := apitest.DefaultFixtures().Events

	tests := []struct {
		name     string
		criteria EventCriteria
		want     []string // cities
	}{
		{name: "no criteria", criteria: EventCriteria{}, want: []string{"Paris", "London", "Berlin", "New York"}},
		{name: "year", criteria: EventCriteria{Year: 2024}, want: []string{"Paris", "London"}},
		{name: "country substring", criteria: EventCriteria{Country: "ger"}, want: []string{"Berlin"}},
		{name: "query on artist", criteria: EventCriteria{Query: "PINK"}, want: []string{"Berlin", "New York"}},
		{name: "query on city", criteria: EventCriteria{Query: "lond"}, want: []string{"London"}},
		{name: "query spans artist and city", criteria: EventCriteria{Query: "floyd new"}, want: []string{"New York"}},
		{name: "combined", criteria: EventCriteria{Year: 2024, Country: "uk", Query: "queen"}, want: []string{"London"}},
		{name: "no match", criteria: EventCriteria{Year: 1999}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cities(Events(events, tt.criteria))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Events() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvents_InvalidDateExcludedByYear(t *testing.T) {
	events := []model.Event{{City: "A", Date: "garbage"}, {City: "B", Date: "2020-01-01"}}
	if got := cities(Events(events, EventCriteria{Year: 2020})); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("Events() = %v", got)
	}
	if got := cities(Events(events, EventCriteria{})); len(got) != 2 {
		t.Errorf("Events() without year = %v, want both", got)
	}
}

func TestEvents_IdempotentAndComposable(t *testing.T) {
	events := apitest.DefaultFixtures().Events
	criteria := []EventCriteria{
		{Year: 2024},
		{Country: "u"},
		{Query: "queen"},
		{Year: 2023, Country: "usa", Query: "pink"},
	}

	for _, c := range criteria {
		once := Events(events, c)
		twice := Events(once, c)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("%+v not idempotent: %v vs %v", c, once, twice)
		}

		// Combined criteria equal the intersection of each field alone.
		seq := Events(Events(Events(events, EventCriteria{Year: c.Year}), EventCriteria{Country: c.Country}), EventCriteria{Query: c.Query})
		if !reflect.DeepEqual(once, seq) {
			t.Errorf("%+v combined = %v, sequential = %v", c, once, seq)
		}
	}
}

func TestEvents_DoesNotMutate(t *testing.T) {
	events := apitest.DefaultFixtures().Events
	before := append([]model.Event(nil), events...)
	_ = Events(events, EventCriteria{Year: 2024})
	if !reflect.DeepEqual(events, before) {
		t.Error("Events() modified its input")
	}
}

func TestLocations(t *testing.T) {
	locations := apitest.DefaultFixtures().Locations

	tests := []struct {
		name     string
		criteria LocationCriteria
		want     int
	}{
		{"no criteria", LocationCriteria{}, 4},
		{"country", LocationCriteria{Country: "FRANCE"}, 1},
		{"artist", LocationCriteria{Artist: "pink"}, 2},
		{"city", LocationCriteria{City: "  york "}, 1},
		{"combined", LocationCriteria{Artist: "queen", Country: "uk"}, 1},
		{"combined no match", LocationCriteria{Artist: "queen", Country: "usa"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Locations(locations, tt.criteria)
			if len(got) != tt.want {
				t.Errorf("Locations() returned %d, want %d", len(got), tt.want)
			}
			if again := Locations(got, tt.criteria); !reflect.DeepEqual(again, got) {
				t.Errorf("Locations() not idempotent")
			}
		})
	}
}

func TestRelations(t *testing.T) {
	relations := apitest.DefaultFixtures().Relations

	tests := []struct {
		name     string
		criteria RelationCriteria
		want     []model.ArtistID
	}{
		{"no criteria", RelationCriteria{}, []model.ArtistID{"1", "2"}},
		{"artist id", RelationCriteria{ArtistID: "2"}, []model.ArtistID{"2"}},
		{"artist id loose", RelationCriteria{ArtistID: "01"}, []model.ArtistID{"1"}},
		{"location city", RelationCriteria{Location: "new york"}, []model.ArtistID{"2"}},
		{"location country", RelationCriteria{Location: "FRANCE"}, []model.ArtistID{"1"}},
		{"city and country", RelationCriteria{Location: "london uk"}, []model.ArtistID{"1"}},
		{"combined no match", RelationCriteria{ArtistID: "1", Location: "berlin"}, []model.ArtistID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Relations(relations, tt.criteria)
			ids := make([]model.ArtistID, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			if !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("Relations() = %v, want %v", ids, tt.want)
			}
		})
	}
}

func TestArtists(t *testing.T) {
	artists := apitest.DefaultFixtures().Artists
	got := Artists(artists, ArtistCriteria{Name: "FLOYD"})
	if len(got) != 1 || got[0].Name != "Pink Floyd" {
		t.Errorf("Artists() = %+v", got)
	}
	if got := Artists(artists, ArtistCriteria{}); len(got) != len(artists) {
		t.Errorf("empty criteria kept %d of %d", len(got), len(artists))
	}
}

func TestPickers(t *testing.T) {
	fx := apitest.DefaultFixtures()
	events := append(fx.Events, model.Event{Country: "france", Date: "not a date"})

	opts := EventPickers(events)
	if !reflect.DeepEqual(opts.Years, []int{2022, 2023, 2024}) {
		t.Errorf("Years = %v", opts.Years)
	}
	if !reflect.DeepEqual(opts.Countries, []string{"France", "france", "Germany", "UK", "USA"}) {
		t.Errorf("Countries = %v", opts.Countries)
	}

	locOpts := LocationPickers(fx.Locations)
	if !reflect.DeepEqual(locOpts.Artists, []string{"Pink Floyd", "Queen"}) {
		t.Errorf("Artists = %v", locOpts.Artists)
	}
	if !reflect.DeepEqual(locOpts.Countries, []string{"France", "Germany", "UK", "USA"}) {
		t.Errorf("Countries = %v", locOpts.Countries)
	}
}

func cities(events []model.Event) []string {
	out := make([]string, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.City)
	}
	return out
}
