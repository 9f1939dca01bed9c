package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/groupie-tracker/internal/page"
	"github.com/handiism/groupie-tracker/internal/view"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1DB954"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

type exportResult struct {
	Artist   string `json:"artist"`
	Path     string `json:"path"`
	Concerts int    `json:"concerts"`
}

// render writes v as JSON, or calls text with a printer for text output.
func (a *app) render(v interface{}, text func(p *printer)) error {
	if a.format == FormatJSON {
		return writeJSON(a.out, v)
	}
	p := &printer{w: a.out}
	text(p)
	return p.err
}

// writeJSON outputs v as indented JSON
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// printer renders view models as styled text. The first write error is
// kept and later writes are skipped.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) title(s string) {
	p.line("%s", titleStyle.Render(s))
}

func (p *printer) heading(s string) {
	p.line("")
	p.line("%s", headingStyle.Render(s))
}

func (p *printer) muted(s string) {
	p.line("%s", mutedStyle.Render(s))
}

// empty prints the message of a list that has nothing to show. It reports
// whether it printed anything.
func empty[T any](p *printer, l view.List[T]) bool {
	switch l.State {
	case view.StateFailed:
		p.line("%s", errorStyle.Render(l.Message))
		return true
	case view.StateEmpty:
		p.muted(l.Message)
		return true
	}
	return false
}

func (p *printer) home(v page.HomeView) {
	p.title(fmt.Sprintf("Artistes (%d) · %s", v.Count, v.Source))
	switch {
	case v.Cards.State == view.StateFailed:
		p.line("%s", errorStyle.Render(v.Cards.Message))
		return
	case v.Error != "":
		p.muted(v.Error)
	}
	for _, c := range v.Cards.Items {
		p.line("%s  %s", headingStyle.Render(c.Name), badgeStyle.Render(c.Badge.Label))
		p.muted(fmt.Sprintf("  %s · %s · %s", c.Meta, c.Left, c.Right))
		if len(c.Tags) > 0 {
			p.muted("  " + strings.Join(c.Tags, ", "))
		}
		p.muted("  " + c.Target)
	}
}

func (p *printer) artist(v page.ArtistView) {
	h := v.Header
	p.title(h.Name)
	p.muted(fmt.Sprintf("%s · %s · %s", h.Formed, h.FirstAlbum, h.Members))

	p.heading("Membres")
	for _, m := range v.Members {
		p.line("  [%s] %s", m.Avatar, m.Name)
	}

	p.heading(fmt.Sprintf("Concerts (%s)", v.Mode))
	rows := v.Visible()
	if len(rows) == 0 {
		p.muted("  " + view.NoConcert)
		return
	}
	for _, c := range rows {
		if v.Mode == page.ModeTimeline {
			p.line("  %s", headingStyle.Render(c.Date))
			p.line("    %s, %s", c.Location, c.Country)
			continue
		}
		p.line("  %-12s %s, %s", c.Date, c.Location, c.Country)
	}
}

func (p *printer) spotify(v page.SpotifyView) {
	h := v.Header
	p.line("%s  %s", titleStyle.Render(h.Name), badgeStyle.Render(h.Badge.Label))
	p.muted(strings.TrimSpace(h.Followers + " · " + h.Popularity))

	p.heading("Statistiques")
	for _, s := range v.Stats {
		p.line("  %-12s %s", s.Label, s.Value)
	}

	p.heading("Genres")
	if !empty(p, v.Genres) {
		p.line("  %s", strings.Join(v.Genres.Items, ", "))
	}

	p.line("")
	p.line("%s: %s", h.LinkLabel, v.Link)
}

func (p *printer) dates(v page.DatesView) {
	p.title(fmt.Sprintf("Dates (%d/%d)", v.Items.Len(), v.Total))
	if empty(p, v.Items) {
		return
	}
	for _, it := range v.Items.Items {
		p.line("  %-24s %s", it.Date, headingStyle.Render(it.Heading))
		p.muted("  " + strings.Repeat(" ", 24) + " " + it.Artist)
	}
}

func (p *printer) locations(v page.LocationsView) {
	p.title(fmt.Sprintf("Lieux (%d/%d)", v.Cards.Len(), v.Total))
	if empty(p, v.Cards) {
		return
	}
	for _, c := range v.Cards.Items {
		p.line("  %s", headingStyle.Render(c.Title))
		p.muted(fmt.Sprintf("    %s · %s · %s", c.Artist, c.Concerts, c.Badge))
	}
}

func (p *printer) relations(v page.RelationsView) {
	p.title(fmt.Sprintf("Relations (%d/%d)", v.Items.Len(), v.Total))
	if empty(p, v.Items) {
		return
	}
	for _, r := range v.Items.Items {
		p.heading(r.Title)
		p.muted(fmt.Sprintf("  %s · %s · %s", r.Eyebrow, r.Locations, r.Dates))
		for _, e := range r.Entries {
			p.line("  %s: %s", e.Title, strings.Join(e.Dates, ", "))
		}
	}
}

func (p *printer) search(v view.List[view.SearchCard]) {
	if empty(p, v) {
		return
	}
	for _, c := range v.Items {
		p.line("%s  %s", headingStyle.Render(c.Name), mutedStyle.Render(c.Target))
	}
}

func (p *printer) export(r exportResult) {
	p.line("%s %s", titleStyle.Render(r.Artist), mutedStyle.Render(fmt.Sprintf("(%d concerts)", r.Concerts)))
	p.line("%s", r.Path)
}
