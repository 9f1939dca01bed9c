package model

import "time"

// Relation maps an artist's tour locations to performance dates.
//
// DatesLocations is keyed by location slug. Go maps are unordered, so the
// order in which slugs appeared in the JSON document is kept in Order and
// exposed through Slugs.
type Relation struct {
	// ID is the artist identifier this relation belongs to.
	ID ArtistID `json:"id"`

	// DatesLocations maps a slug like "paris-france" to raw date strings.
	DatesLocations map[string][]string `json:"datesLocations"`

	// Order lists slugs in document order.
	Order []string `json:"-"`
}

// Slugs returns location slugs in document order.
//
// Slugs missing from Order (for relations built by hand) are appended in
// the order they are found in the map after the ordered ones.
func (r Relation) Slugs() []string {
	out := make([]string, 0, len(r.DatesLocations))
	seen := make(map[string]struct{}, len(r.DatesLocations))
	for _, slug := range r.Order {
		if _, ok := r.DatesLocations[slug]; !ok {
			continue
		}
		if _, dup := seen[slug]; dup {
			continue
		}
		seen[slug] = struct{}{}
		out = append(out, slug)
	}
	for slug := range r.DatesLocations {
		if _, ok := seen[slug]; !ok {
			out = append(out, slug)
		}
	}
	return out
}

// DateCount returns the number of dates across every location.
func (r Relation) DateCount() int {
	n := 0
	for _, dates := range r.DatesLocations {
		n += len(dates)
	}
	return n
}

// LocationName is a decoded location slug.
type LocationName struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// Concert is one performance derived from an artist's relation.
type Concert struct {
	// Location is the decoded city.
	Location string `json:"location"`

	// Country is the decoded country.
	Country string `json:"country"`

	// Date is the UTC calendar date as YYYY-MM-DD; empty when Valid is false.
	Date string `json:"date"`

	// Time is the parsed date at UTC midnight; zero when Valid is false.
	Time time.Time `json:"-"`

	// Valid is false when the source date string could not be parsed.
	Valid bool `json:"valid"`
}

// Event is a pre-joined concert served by /api/events.
type Event struct {
	ArtistID   ArtistID `json:"artistId"`
	ArtistName string   `json:"artistName"`
	City       string   `json:"city"`
	Country    string   `json:"country"`
	Date       string   `json:"date"`
}

// Location is one artist/location pair served by /api/locations.
type Location struct {
	City       string   `json:"city"`
	Country    string   `json:"country"`
	ArtistName string   `json:"artistName"`
	ArtistID   ArtistID `json:"artistId"`
	EventCount int      `json:"eventCount"`
	Raw        string   `json:"raw,omitempty"`
}
