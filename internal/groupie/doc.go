// Package groupie fetches Groupie Tracker resources and normalizes them.
//
// The package handles two main concerns:
//
//  1. Fetching artists, relations, events, locations, Spotify artists and
//     legacy search hits from the backend
//  2. Normalizing raw values: flexible dates, location slugs and per-artist
//     concert lists
//
// # Fetching
//
//	client := groupie.NewClient(httpClient, log)
//	artists, relations, err := client.ArtistsAndRelations(ctx)
//
// ArtistsAndRelations issues both requests concurrently and fails as a
// whole if either does.
//
// # Normalizing
//
//	t, ok := groupie.ParseFlexibleDate("01-05-2024") // 2024-05-01 UTC
//	name := groupie.DecodeSlug("new_york-united_states")
//	concerts := groupie.BuildConcerts("1", relations)
//
// # Backend Data Format
//
// Dates come as YYYY-MM-DD, *YYYY-MM-DD (approximate) or DD-MM-YYYY.
// Locations are slugs such as "new_york-united_states" where the last
// hyphen-delimited token is the country.
package groupie
