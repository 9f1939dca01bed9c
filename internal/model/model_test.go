package model

import (
	"encoding/json"
	"testing"
)

func TestArtistID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input string
		want  ArtistID
	}{
		{`7`, "7"},
		{`"7"`, "7"},
		{`" 12 "`, "12"},
		{`"3WrFJ7ztbogyGnTHbHJFl2"`, "3WrFJ7ztbogyGnTHbHJFl2"},
		{`null`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got ArtistID
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestArtistID_Matches(t *testing.T) {
	tests := []struct {
		a, b ArtistID
		want bool
	}{
		{"7", "7", true},
		{"7", "07", true},
		{"7", "7.0", true},
		{"7", "8", false},
		{"abc", "abc", true},
		{"abc", "ABC", false},
		{"", "0", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.a)+"_"+string(tt.b), func(t *testing.T) {
			if got := tt.a.Matches(tt.b); got != tt.want {
				t.Errorf("%q.Matches(%q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestParseSource(t *testing.T) {
	tests := []struct {
		input string
		want  Source
	}{
		{"spotify", SourceSpotify},
		{"Spotify", SourceSpotify},
		{"groupie", SourceGroupie},
		{"", SourceGroupie},
		{"other", SourceGroupie},
	}

	for _, tt := range tests {
		if got := ParseSource(tt.input); got != tt.want {
			t.Errorf("ParseSource(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRelation_Slugs(t *testing.T) {
	rel := Relation{
		ID: "1",
		DatesLocations: map[string][]string{
			"paris-france":   {"01-05-2024"},
			"london-uk":      {"2024-06-15", "2024-06-16"},
			"berlin-germany": {},
		},
		Order: []string{"london-uk", "paris-france", "london-uk", "missing-slug"},
	}

	slugs := rel.Slugs()
	if len(slugs) != 3 {
		t.Fatalf("Slugs() returned %d entries, want 3: %v", len(slugs), slugs)
	}
	if slugs[0] != "london-uk" || slugs[1] != "paris-france" || slugs[2] != "berlin-germany" {
		t.Errorf("Slugs() = %v, want [london-uk paris-france berlin-germany]", slugs)
	}
	if got := rel.DateCount(); got != 3 {
		t.Errorf("DateCount() = %d, want 3", got)
	}
}
