// Package calendar renders an artist's concerts as an iCalendar file.
package calendar

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ioutils "github.com/handiism/groupie-tracker/internal/io"
	"github.com/handiism/groupie-tracker/internal/model"
)

const (
	prodID    = "-//Groupie Tracker//groupie//FR"
	uidDomain = "groupie-tracker"
)

// GenerateICS renders one all-day VEVENT per concert. Concerts without a
// valid date are skipped. stamp is written as DTSTAMP.
func GenerateICS(artist model.Artist, concerts []model.Concert, stamp time.Time) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:" + prodID + "\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	ics.WriteString(fmt.Sprintf("X-WR-CALNAME:%s\r\n", escapeICS(artist.Name)))

	for i, c := range concerts {
		if !c.Valid {
			continue
		}
		ics.WriteString("BEGIN:VEVENT\r\n")
		ics.WriteString(fmt.Sprintf("UID:%s-%d-%s@%s\r\n", artist.ID, i, c.Time.Format("20060102"), uidDomain))
		ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(stamp)))

		// All-day event: DTEND is exclusive.
		ics.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", c.Time.Format("20060102")))
		ics.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", c.Time.AddDate(0, 0, 1).Format("20060102")))

		ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(summary(artist, c))))
		ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(location(c))))
		ics.WriteString("STATUS:CONFIRMED\r\n")
		ics.WriteString("TRANSP:TRANSPARENT\r\n")
		ics.WriteString("END:VEVENT\r\n")
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

// FileName returns the export file name for artist.
func FileName(artist model.Artist) string {
	name := ioutils.SanitizeFileName(artist.Name)
	if name == "" {
		name = "artist-" + ioutils.SanitizeFileName(artist.ID.String())
	}
	return name + ".ics"
}

// Export writes the calendar of artist into dir and returns the file path.
func Export(ctx context.Context, dir string, artist model.Artist, concerts []model.Concert, stamp time.Time) (string, error) {
	if err := ioutils.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(dir, FileName(artist))
	if err := ioutils.WriteFile(ctx, path, []byte(GenerateICS(artist, concerts, stamp))); err != nil {
		return "", fmt.Errorf("write calendar: %w", err)
	}
	return path, nil
}

func summary(artist model.Artist, c model.Concert) string {
	return fmt.Sprintf("%s - %s", artist.Name, c.Location)
}

func location(c model.Concert) string {
	if c.Country == "" {
		return c.Location
	}
	return fmt.Sprintf("%s, %s", c.Location, c.Country)
}

// formatICSTime formats t as an iCalendar UTC datetime.
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes TEXT values per RFC 5545.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
