package apitest

import "github.com/handiism/groupie-tracker/internal/model"

// SpotifyID is the id of the Spotify artist in DefaultFixtures.
const SpotifyID = "4tZwfgrHOc3mvqYlEYSvVi"

// DefaultFixtures returns a small roster: two Groupie artists with
// relations, one Spotify artist, and matching events and locations.
func DefaultFixtures() Fixtures {
	return Fixtures{
		Artists: []model.Artist{
			{
				ID:           "1",
				Name:         "Queen",
				Image:        "https://groupietrackers.herokuapp.com/api/images/queen.jpeg",
				CreationDate: "1970",
				FirstAlbum:   "14-12-1973",
				Members:      []string{"Freddie Mercury", "Brian May", "John Daecon", "Roger Meddows-Taylor", "Mike Grose"},
				Source:       model.SourceGroupie,
			},
			{
				ID:           "2",
				Name:         "Pink Floyd",
				CreationDate: "1965",
				FirstAlbum:   "05-08-1967",
				Members:      []string{"Syd Barrett", "Roger Waters"},
				Source:       model.SourceGroupie,
			},
			{
				ID:         SpotifyID,
				Name:       "Daft Punk",
				Image:      "https://i.scdn.co/image/daftpunk",
				Source:     model.SourceSpotify,
				Followers:  9876543,
				Popularity: 78,
				Genres:     []string{"electro", "filter house", "french house", "house", "disco"},
			},
		},
		Relations: []model.Relation{
			{
				ID: "1",
				DatesLocations: map[string][]string{
					"paris-france": {"01-05-2024"},
					"london-uk":    {"2024-06-15"},
				},
				Order: []string{"paris-france", "london-uk"},
			},
			{
				ID: "2",
				DatesLocations: map[string][]string{
					"new_york-usa":   {"*2023-03-10", "2023-03-11"},
					"berlin-germany": {"20-01-2022"},
				},
				Order: []string{"new_york-usa", "berlin-germany"},
			},
		},
		Events: []model.Event{
			{ArtistID: "1", ArtistName: "Queen", City: "Paris", Country: "France", Date: "2024-05-01"},
			{ArtistID: "1", ArtistName: "Queen", City: "London", Country: "UK", Date: "2024-06-15"},
			{ArtistID: "2", ArtistName: "Pink Floyd", City: "Berlin", Country: "Germany", Date: "2022-01-20"},
			{ArtistID: "2", ArtistName: "Pink Floyd", City: "New York", Country: "USA", Date: "2023-03-10"},
		},
		Locations: []model.Location{
			{City: "Paris", Country: "France", ArtistName: "Queen", ArtistID: "1", EventCount: 1, Raw: "paris-france"},
			{City: "London", Country: "UK", ArtistName: "Queen", ArtistID: "1", EventCount: 1, Raw: "london-uk"},
			{City: "New York", Country: "USA", ArtistName: "Pink Floyd", ArtistID: "2", EventCount: 2, Raw: "new_york-usa"},
			{City: "Berlin", Country: "Germany", ArtistName: "Pink Floyd", ArtistID: "2", EventCount: 1, Raw: "berlin-germany"},
		},
	}
}
