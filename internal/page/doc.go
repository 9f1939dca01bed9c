// Package page orchestrates each page: fetch, normalize, build view models.
//
// Every controller owns the collections it fetched for one page view.
// Filters re-run against that cache and never fetch again; a new page view
// means a new controller.
//
// # Pages
//
//   - Home: artist roster, source switch (all, groupie, spotify) and search
//   - ArtistPage: Groupie artist detail with concert list and timeline
//   - SpotifyPage: Spotify artist detail with stats and genres
//   - DatesPage, LocationsPage, RelationsPage: filterable listings
//   - LegacySearch: debounced inline search against /search
//
// # Error Pages
//
// Fatal outcomes are returned as *Redirect. Resolve maps any page error to
// its navigation target:
//
//	v, err := page.NewArtistPage(backend, f, log).Load(ctx, id)
//	if target := page.Resolve(err); target != "" {
//	    navigate(target) // "/404" or "/500"
//	}
package page
