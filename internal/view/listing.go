package view

import (
	"fmt"
	"net/url"

	"github.com/handiism/groupie-tracker/internal/groupie"
	"github.com/handiism/groupie-tracker/internal/model"
)

// EventItem is one entry of the dates timeline.
type EventItem struct {
	Heading string `json:"heading"`
	Artist  string `json:"artist"`
	Date    string `json:"date"`
	ISO     string `json:"iso"`
}

// NewEventItem builds a timeline entry with a long date label.
func NewEventItem(ev model.Event, f *Formatter) EventItem {
	return EventItem{
		Heading: fmt.Sprintf("%s - %s", ev.City, ev.Country),
		Artist:  ev.ArtistName,
		Date:    f.DateLabel(ev.Date, true),
		ISO:     ev.Date,
	}
}

// EventItems builds entries in input order.
func EventItems(events []model.Event, f *Formatter) []EventItem {
	items := make([]EventItem, 0, len(events))
	for _, ev := range events {
		items = append(items, NewEventItem(ev, f))
	}
	return items
}

// LocationCard is one card of the locations page.
type LocationCard struct {
	Title    string         `json:"title"`
	Artist   string         `json:"artist"`
	Concerts string         `json:"concerts"`
	Badge    string         `json:"badge"`
	ArtistID model.ArtistID `json:"artistId"`
}

// NewLocationCard builds a location card.
func NewLocationCard(loc model.Location) LocationCard {
	artist := loc.ArtistName
	if artist == "" {
		artist = UnknownArtist
	}
	return LocationCard{
		Title:    fmt.Sprintf("%s, %s", loc.City, loc.Country),
		Artist:   artist,
		Concerts: fmt.Sprintf("%d concerts", loc.EventCount),
		Badge:    fmt.Sprintf("Artiste #%s", loc.ArtistID),
		ArtistID: loc.ArtistID,
	}
}

// LocationCards builds cards in input order.
func LocationCards(locations []model.Location) []LocationCard {
	cards := make([]LocationCard, 0, len(locations))
	for _, loc := range locations {
		cards = append(cards, NewLocationCard(loc))
	}
	return cards
}

// RelationEntry is one location of a relation accordion.
type RelationEntry struct {
	Slug    string   `json:"slug"`
	City    string   `json:"city"`
	Country string   `json:"country"`
	Title   string   `json:"title"`
	Dates   []string `json:"dates"`
}

// RelationView is one accordion item of the relations page.
type RelationView struct {
	ID        model.ArtistID  `json:"id"`
	Eyebrow   string          `json:"eyebrow"`
	Title     string          `json:"title"`
	Locations string          `json:"locations"`
	Dates     string          `json:"dates"`
	Expanded  bool            `json:"expanded"`
	Entries   []RelationEntry `json:"entries"`
}

// RelationViews builds accordion items in input order. Titles come from
// names (see groupie.ArtistNames); the first item is expanded.
func RelationViews(relations []model.Relation, names map[model.ArtistID]string) []RelationView {
	views := make([]RelationView, 0, len(relations))
	for i, rel := range relations {
		title, ok := groupie.NameFor(names, rel.ID)
		if !ok || title == "" {
			title = fmt.Sprintf("Artist #%s", rel.ID)
		}

		entries := make([]RelationEntry, 0, len(rel.DatesLocations))
		total := 0
		for _, slug := range rel.Slugs() {
			name := groupie.DecodeSlug(slug)
			dates := rel.DatesLocations[slug]
			total += len(dates)
			entries = append(entries, RelationEntry{
				Slug:    slug,
				City:    name.City,
				Country: name.Country,
				Title:   fmt.Sprintf("%s, %s", name.City, name.Country),
				Dates:   append([]string{}, dates...),
			})
		}

		views = append(views, RelationView{
			ID:        rel.ID,
			Eyebrow:   fmt.Sprintf("Artiste #%s", rel.ID),
			Title:     title,
			Locations: fmt.Sprintf("%d lieux", len(entries)),
			Dates:     fmt.Sprintf("%d dates", total),
			Expanded:  i == 0,
			Entries:   entries,
		})
	}
	return views
}

// SearchCard is one result of the legacy inline search.
type SearchCard struct {
	Name   string `json:"name"`
	Image  string `json:"image"`
	Target string `json:"target"`
}

// SearchCards builds legacy search cards, or an empty list with its
// message.
func SearchCards(hits []model.SearchHit) List[SearchCard] {
	cards := make([]SearchCard, 0, len(hits))
	for _, h := range hits {
		cards = append(cards, SearchCard{
			Name:   h.Name,
			Image:  h.Image,
			Target: "/artist?id=" + url.QueryEscape(h.ID.String()),
		})
	}
	return Ready(cards, NoArtistFound)
}
