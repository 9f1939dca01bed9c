package groupie

import (
	"strconv"

	"github.com/handiism/groupie-tracker/internal/model"
)

// FindArtist returns the artist whose id matches id.
func FindArtist(id model.ArtistID, artists []model.Artist) (model.Artist, bool) {
	for _, a := range artists {
		if a.ID.Matches(id) {
			return a, true
		}
	}
	return model.Artist{}, false
}

// FindRelation returns the relation belonging to artistID.
func FindRelation(artistID model.ArtistID, relations []model.Relation) (model.Relation, bool) {
	for _, rel := range relations {
		if rel.ID.Matches(artistID) {
			return rel, true
		}
	}
	return model.Relation{}, false
}

// ArtistNames indexes artist names by id for relation headers.
func ArtistNames(artists []model.Artist) map[model.ArtistID]string {
	names := make(map[model.ArtistID]string, len(artists))
	for _, a := range artists {
		key := a.ID
		if n, ok := a.ID.Int(); ok {
			key = model.ArtistID(strconv.Itoa(n))
		}
		names[key] = a.Name
	}
	return names
}

// NameFor looks up an artist name in an index built by ArtistNames.
func NameFor(names map[model.ArtistID]string, id model.ArtistID) (string, bool) {
	key := id
	if n, ok := id.Int(); ok {
		key = model.ArtistID(strconv.Itoa(n))
	}
	name, ok := names[key]
	return name, ok
}
