package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/lctime"

	"github.com/handiism/groupie-tracker/internal/groupie"
)

// DefaultLocale is used when none is configured.
const DefaultLocale = "fr_FR"

// Formatter renders dates and counts for one locale.
//
// Month names come from lctime. Day-first ordering is used unless the
// locale is English ("May 1, 2024").
type Formatter struct {
	locale     string
	localizer  lctime.Localizer
	monthFirst bool
	groupSep   string
}

// NewFormatter creates a formatter for locale ("fr_FR", "en_US").
// Unknown locales fall back to en_US.
func NewFormatter(locale string) *Formatter {
	if locale == "" {
		locale = DefaultLocale
	}
	l, err := lctime.NewLocalizer(locale)
	if err != nil {
		locale = "en_US"
		l, _ = lctime.NewLocalizer(locale)
	}

	f := &Formatter{
		locale:     locale,
		localizer:  l,
		monthFirst: strings.HasPrefix(locale, "en"),
		groupSep:   ",",
	}
	if strings.HasPrefix(locale, "fr") {
		f.groupSep = " "
	}
	return f
}

// Locale returns the effective locale.
func (f *Formatter) Locale() string {
	return f.locale
}

// ShortDate renders "1 mai 2024" or "May 1, 2024".
func (f *Formatter) ShortDate(t time.Time) string {
	return f.date(t, "%b")
}

// LongDate renders "1 juin 2024" or "June 1, 2024".
func (f *Formatter) LongDate(t time.Time) string {
	return f.date(t, "%B")
}

func (f *Formatter) date(t time.Time, monthVerb string) string {
	month := f.localizer.Strftime(monthVerb, t)
	if f.monthFirst {
		return fmt.Sprintf("%s %d, %d", month, t.Day(), t.Year())
	}
	return fmt.Sprintf("%d %s %d", t.Day(), month, t.Year())
}

// DateLabel parses a raw backend date and renders it, or "n/a".
func (f *Formatter) DateLabel(raw string, long bool) string {
	t, ok := groupie.ParseFlexibleDate(raw)
	if !ok {
		return NotAvailable
	}
	if long {
		return f.LongDate(t)
	}
	return f.ShortDate(t)
}

// Count renders n with thousands separators ("9 876 543").
func (f *Formatter) Count(n int) string {
	s := humanize.Comma(int64(n))
	if f.groupSep != "," {
		s = strings.ReplaceAll(s, ",", f.groupSep)
	}
	return s
}
