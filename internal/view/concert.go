package view

import "github.com/handiism/groupie-tracker/internal/model"

// ConcertItem is one row of the concert list or timeline.
type ConcertItem struct {
	Location string `json:"location"`
	Country  string `json:"country"`
	Date     string `json:"date"` // display label
	ISO      string `json:"iso,omitempty"`
}

// ConcertList builds list rows with short date labels.
func ConcertList(concerts []model.Concert, f *Formatter) []ConcertItem {
	return concertItems(concerts, f, false)
}

// ConcertTimeline builds timeline entries with long date labels.
func ConcertTimeline(concerts []model.Concert, f *Formatter) []ConcertItem {
	return concertItems(concerts, f, true)
}

func concertItems(concerts []model.Concert, f *Formatter, long bool) []ConcertItem {
	items := make([]ConcertItem, 0, len(concerts))
	for _, c := range concerts {
		item := ConcertItem{
			Location: c.Location,
			Country:  c.Country,
			Date:     NotAvailable,
			ISO:      c.Date,
		}
		if c.Valid {
			if long {
				item.Date = f.LongDate(c.Time)
			} else {
				item.Date = f.ShortDate(c.Time)
			}
		}
		items = append(items, item)
	}
	return items
}
