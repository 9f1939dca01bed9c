// Package view turns normalized entities into render-ready view models.
//
// Every builder is a pure function of its inputs: which fields appear,
// which fallback text replaces a missing value, which badge a source gets
// and how long lists are truncated. Render targets (the terminal browser
// and the command-line tool) only lay these values out.
//
//	f := view.NewFormatter("fr_FR")
//	card := view.NewArtistCard(artist)
//	timeline := view.ConcertTimeline(concerts, f)
//
// Lists that can be empty are wrapped in List, whose State separates
// loading, ready, empty and failed.
package view
