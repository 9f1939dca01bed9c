// Package model defines the core data structures used throughout
// the groupie-tracker client.
//
// Every value in this package is transient: page controllers build them
// from backend JSON on load and drop them on navigation.
//
// # Artist
//
// Artist is the unified roster entry returned by /api/artists. It covers
// both Groupie Tracker entries and Spotify-sourced entries:
//
//	if artist.IsSpotify() {
//	    fmt.Println(artist.Followers, artist.Genres)
//	}
//
// # Identifiers
//
// ArtistID accepts JSON numbers and strings. Matches compares numerically
// whenever both sides are numeric, so "7" matches 7:
//
//	model.ArtistID("7").Matches(model.ArtistID("07")) // true
//
// # Relation and Concert
//
// Relation maps location slugs ("new_york-usa") to concert dates. Concert is
// derived by the groupie package by joining an artist with its relation.
//
// # Event and Location
//
// Event and Location are pre-joined server-side and consumed read-only.
package model
