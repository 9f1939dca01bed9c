package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/handiism/groupie-tracker/internal/model"
)

// FlexString is a JSON scalar kept as text.
//
// The backend sends creationDate as an integer (1973) while other sources
// send a string; zero and null become the empty string.
type FlexString string

// UnmarshalJSON accepts a string, a number or null.
func (fs *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*fs = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*fs = FlexString(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if f, err := n.Float64(); err == nil && f == 0 {
		*fs = ""
		return nil
	}
	*fs = FlexString(n.String())
	return nil
}

// JSONArtist is the wire form of an /api/artists or /api/spotify/artist
// entry.
type JSONArtist struct {
	ID           model.ArtistID `json:"id"`
	Name         string         `json:"name"`
	Image        string         `json:"image"`
	ImageURL     string         `json:"image_url"`
	CreationDate FlexString     `json:"creationDate"`
	FirstAlbum   string         `json:"firstAlbum"`
	Members      []string       `json:"members"`
	Source       string         `json:"source"`
	Followers    int            `json:"followers"`
	Popularity   int            `json:"popularity"`
	Genres       []string       `json:"genres"`
}

// ToArtist converts JSONArtist to a model.Artist.
func (ja *JSONArtist) ToArtist() model.Artist {
	image := ja.ImageURL
	if image == "" {
		image = ja.Image
	}

	return model.Artist{
		ID:           ja.ID,
		Name:         ja.Name,
		Image:        image,
		CreationDate: string(ja.CreationDate),
		FirstAlbum:   ja.FirstAlbum,
		Members:      ja.Members,
		Source:       model.ParseSource(ja.Source),
		Followers:    ja.Followers,
		Popularity:   ja.Popularity,
		Genres:       ja.Genres,
	}
}

// ToArtists converts a decoded slice.
func ToArtists(in []JSONArtist) []model.Artist {
	out := make([]model.Artist, 0, len(in))
	for i := range in {
		out = append(out, in[i].ToArtist())
	}
	return out
}
