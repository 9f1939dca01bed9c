package groupie

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/handiism/groupie-tracker/internal/model"
)

// DecodeSlug splits a location slug into a display city and country.
//
// The last hyphen-delimited token is the country; the rest, re-joined with
// hyphens, is the city. A slug without a hyphen has an empty city.
//
//	DecodeSlug("new_york-united_states") // {City: "New York", Country: "United States"}
func DecodeSlug(slug string) model.LocationName {
	parts := strings.Split(slug, "-")
	country := parts[len(parts)-1]
	city := strings.Join(parts[:len(parts)-1], "-")

	return model.LocationName{
		City:    titleWords(city),
		Country: titleWords(country),
	}
}

// titleWords replaces underscores with spaces and upper-cases the first
// letter of every space-delimited word, leaving the rest untouched.
func titleWords(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
