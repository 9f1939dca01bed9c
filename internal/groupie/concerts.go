package groupie

import (
	"sort"
	"time"

	"github.com/handiism/groupie-tracker/internal/model"
)

// BuildConcerts flattens an artist's relation into concerts sorted by date.
//
// Slugs are visited in document order and each is decoded once. Dates that
// do not parse are kept with Valid set to false and sort as the Unix epoch.
// The sort is stable, so ties keep slug then date order. A missing relation
// yields an empty slice.
func BuildConcerts(artistID model.ArtistID, relations []model.Relation) []model.Concert {
	rel, ok := FindRelation(artistID, relations)
	if !ok || len(rel.DatesLocations) == 0 {
		return []model.Concert{}
	}

	concerts := make([]model.Concert, 0, rel.DateCount())
	for _, slug := range rel.Slugs() {
		name := DecodeSlug(slug)
		for _, raw := range rel.DatesLocations[slug] {
			c := model.Concert{
				Location: name.City,
				Country:  name.Country,
			}
			if t, ok := ParseFlexibleDate(raw); ok {
				c.Time = t
				c.Date = FormatISODate(t)
				c.Valid = true
			}
			concerts = append(concerts, c)
		}
	}

	sort.SliceStable(concerts, func(i, j int) bool {
		return sortKey(concerts[i]).Before(sortKey(concerts[j]))
	})
	return concerts
}

func sortKey(c model.Concert) time.Time {
	if !c.Valid {
		return time.Unix(0, 0).UTC()
	}
	return c.Time
}
