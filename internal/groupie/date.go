package groupie

import (
	"strings"
	"time"
)

// isoLayout accepts one or two digit months and days.
const isoLayout = "2006-1-2"

// ParseFlexibleDate parses a backend date string.
//
// Two shapes are accepted: YYYY-MM-DD, optionally prefixed with "*" for an
// approximate date, and DD-MM-YYYY. The shape is chosen by the length of
// the first hyphen-delimited segment. The result is UTC midnight; ok is
// false for anything that does not parse, including strings with missing
// segments.
func ParseFlexibleDate(raw string) (time.Time, bool) {
	cleaned := strings.TrimPrefix(strings.TrimSpace(raw), "*")
	parts := strings.Split(cleaned, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	iso := cleaned
	if len(parts[0]) != 4 {
		iso = parts[2] + "-" + parts[1] + "-" + parts[0]
	}

	t, err := time.ParseInLocation(isoLayout, iso, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatISODate formats a parsed date as YYYY-MM-DD in UTC.
func FormatISODate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// AlbumYear returns the year of a first-album date string.
func AlbumYear(raw string) (int, bool) {
	t, ok := ParseFlexibleDate(raw)
	if !ok {
		return 0, false
	}
	return t.Year(), true
}
