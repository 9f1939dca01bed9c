// Package filter applies composable, order-preserving filters to cached
// collections.
//
// Every Apply function is pure: it never modifies its input, keeps the
// relative order of the source collection, and returns the same result
// when applied twice. Zero-valued criteria fields are ignored, so combining
// fields is the intersection of each field applied alone.
package filter

import (
	"sort"
	"strings"

	"github.com/handiism/groupie-tracker/internal/groupie"
	"github.com/handiism/groupie-tracker/internal/model"
)

// EventCriteria filters /api/events entries.
type EventCriteria struct {
	// Year keeps events whose parsed date falls in that year. Zero disables.
	Year int

	// Country is a case-insensitive substring of the country.
	Country string

	// Query is a case-insensitive substring of "artistName city".
	Query string
}

// Match reports whether ev passes every set criterion.
func (c EventCriteria) Match(ev model.Event) bool {
	if c.Year != 0 {
		t, ok := groupie.ParseFlexibleDate(ev.Date)
		if !ok || t.Year() != c.Year {
			return false
		}
	}
	if !contains(ev.Country, c.Country) {
		return false
	}
	return contains(ev.ArtistName+" "+ev.City, c.Query)
}

// Events returns the events matching c.
func Events(all []model.Event, c EventCriteria) []model.Event {
	return keep(all, c.Match)
}

// LocationCriteria filters /api/locations entries.
type LocationCriteria struct {
	Country string
	Artist  string
	City    string
}

// Match reports whether loc passes every set criterion.
func (c LocationCriteria) Match(loc model.Location) bool {
	return contains(loc.Country, c.Country) &&
		contains(loc.ArtistName, c.Artist) &&
		contains(loc.City, c.City)
}

// Locations returns the locations matching c.
func Locations(all []model.Location, c LocationCriteria) []model.Location {
	return keep(all, c.Match)
}

// RelationCriteria filters relations.
type RelationCriteria struct {
	// ArtistID keeps only that artist's relation. Empty disables.
	ArtistID model.ArtistID

	// Location is a case-insensitive substring of "city country" of any
	// decoded slug.
	Location string
}

// Match reports whether rel passes every set criterion.
func (c RelationCriteria) Match(rel model.Relation) bool {
	if c.ArtistID != "" && !rel.ID.Matches(c.ArtistID) {
		return false
	}
	if strings.TrimSpace(c.Location) == "" {
		return true
	}
	for slug := range rel.DatesLocations {
		name := groupie.DecodeSlug(slug)
		if contains(name.City+" "+name.Country, c.Location) {
			return true
		}
	}
	return false
}

// Relations returns the relations matching c.
func Relations(all []model.Relation, c RelationCriteria) []model.Relation {
	return keep(all, c.Match)
}

// ArtistCriteria filters artists client-side.
type ArtistCriteria struct {
	// Name is a case-insensitive substring of the artist name.
	Name string
}

// Match reports whether a passes every set criterion.
func (c ArtistCriteria) Match(a model.Artist) bool {
	return contains(a.Name, c.Name)
}

// Artists returns the artists matching c.
func Artists(all []model.Artist, c ArtistCriteria) []model.Artist {
	return keep(all, c.Match)
}

// EventOptions lists the values offered by the dates page pickers.
type EventOptions struct {
	Years     []int    `json:"years"`
	Countries []string `json:"countries"`
}

// EventPickers collects sorted distinct years and countries. Events whose
// date does not parse contribute no year.
func EventPickers(events []model.Event) EventOptions {
	years := make(map[int]struct{})
	countries := make(map[string]struct{})
	for _, ev := range events {
		if t, ok := groupie.ParseFlexibleDate(ev.Date); ok {
			years[t.Year()] = struct{}{}
		}
		if ev.Country != "" {
			countries[ev.Country] = struct{}{}
		}
	}

	opts := EventOptions{
		Years:     make([]int, 0, len(years)),
		Countries: sortedKeys(countries),
	}
	for y := range years {
		opts.Years = append(opts.Years, y)
	}
	sort.Ints(opts.Years)
	return opts
}

// LocationOptions lists the values offered by the locations page pickers.
type LocationOptions struct {
	Countries []string `json:"countries"`
	Artists   []string `json:"artists"`
}

// LocationPickers collects sorted distinct countries and artist names.
func LocationPickers(locations []model.Location) LocationOptions {
	countries := make(map[string]struct{})
	artists := make(map[string]struct{})
	for _, loc := range locations {
		if loc.Country != "" {
			countries[loc.Country] = struct{}{}
		}
		if loc.ArtistName != "" {
			artists[loc.ArtistName] = struct{}{}
		}
	}
	return LocationOptions{
		Countries: sortedKeys(countries),
		Artists:   sortedKeys(artists),
	}
}

func keep[T any](all []T, match func(T) bool) []T {
	out := make([]T, 0, len(all))
	for _, v := range all {
		if match(v) {
			out = append(out, v)
		}
	}
	return out
}

// contains is a case-insensitive substring test; an empty needle matches.
func contains(haystack, needle string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), needle)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i]), strings.ToLower(out[j])
		if a == b {
			return out[i] < out[j]
		}
		return a < b
	})
	return out
}
