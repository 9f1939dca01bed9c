package tui

import (
	"fmt"
	"strings"

	"github.com/handiism/groupie-tracker/internal/page"
	"github.com/handiism/groupie-tracker/internal/view"
)

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("Groupie Tracker"))
	b.WriteString("\n")
	if m.isTab() {
		b.WriteString(m.viewTabs())
		b.WriteString("\n\n")
	}

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render("Chargement..."))
		b.WriteString("\n\n")
	}

	switch m.screen {
	case ScreenArtists:
		b.WriteString(m.viewArtists())
	case ScreenDates:
		b.WriteString(m.viewDates())
	case ScreenLocations:
		b.WriteString(m.viewLocations())
	case ScreenRelations:
		b.WriteString(m.viewRelations())
	case ScreenArtist:
		b.WriteString(m.viewArtist())
	case ScreenSpotify:
		b.WriteString(m.viewSpotify())
	case ScreenError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func (m Model) viewTabs() string {
	labels := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.screen == m.screen {
			labels = append(labels, activeTabStyle.Render(t.label))
		} else {
			labels = append(labels, tabStyle.Render(t.label))
		}
	}
	return strings.Join(labels, " ")
}

func (m Model) viewFilter() string {
	if m.input.Focused() {
		return m.input.View() + "\n\n"
	}
	if term := m.terms[m.screen]; term != "" {
		return dimStyle.Render("Filtre : "+term) + "\n\n"
	}
	return ""
}

// viewList renders rows with the cursor marker, or the state message of l.
func viewList[T any](m Model, l view.List[T], row func(T) string) string {
	var b strings.Builder
	switch l.State {
	case view.StateLoading:
		b.WriteString(m.spinner.View() + " " + dimStyle.Render("Chargement...") + "\n")
		return b.String()
	case view.StateFailed:
		return errorStyle.Render(l.Message) + "\n"
	case view.StateEmpty:
		return dimStyle.Render(l.Message) + "\n"
	}

	cursor := m.cursor[m.screen]
	for i, item := range l.Items {
		line := row(item)
		if i == cursor {
			b.WriteString(selectedStyle.Render("› " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewArtists() string {
	var b strings.Builder
	v := m.homeView

	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Source : %s · %d artistes", v.Source, v.Count)))
	b.WriteString("\n")
	b.WriteString(m.viewFilter())
	if v.Error != "" && v.Cards.State != view.StateFailed {
		b.WriteString(dimStyle.Render(v.Error))
		b.WriteString("\n")
	}
	b.WriteString(viewList(m, v.Cards, func(c view.ArtistCard) string {
		badge := dimStyle.Render(c.Badge.Label)
		if c.Spotify {
			badge = spotifyStyle.Render(c.Badge.Label)
		}
		return fmt.Sprintf("%s  %s  %s", c.Name, badge, dimStyle.Render(c.Meta))
	}))
	return b.String()
}

func (m Model) viewDates() string {
	v := m.datesView
	return m.viewFilter() + viewList(m, v.Items, func(it view.EventItem) string {
		return fmt.Sprintf("%-24s %s  %s", it.Date, it.Heading, dimStyle.Render(it.Artist))
	})
}

func (m Model) viewLocations() string {
	v := m.locationsView
	return m.viewFilter() + viewList(m, v.Cards, func(c view.LocationCard) string {
		return fmt.Sprintf("%s  %s", c.Title, dimStyle.Render(c.Artist+" · "+c.Concerts))
	})
}

func (m Model) viewRelations() string {
	v := m.relationsView
	cursor := m.cursor[ScreenRelations]
	return m.viewFilter() + viewList(m, v.Items, func(r view.RelationView) string {
		line := fmt.Sprintf("%s  %s", r.Title, dimStyle.Render(r.Locations+" · "+r.Dates))
		if cursor >= len(v.Items.Items) || v.Items.Items[cursor].ID != r.ID {
			return line
		}
		var b strings.Builder
		b.WriteString(line)
		for _, e := range r.Entries {
			b.WriteString(fmt.Sprintf("\n    %s: %s", e.Title, strings.Join(e.Dates, ", ")))
		}
		return b.String()
	})
}

func (m Model) viewArtist() string {
	var b strings.Builder
	v := m.artistView
	h := v.Header

	b.WriteString(subtitleStyle.Render(h.Name))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s · %s · %s", h.Formed, h.FirstAlbum, h.Members)))
	b.WriteString("\n\n")

	names := make([]string, 0, len(v.Members))
	for _, mem := range v.Members {
		names = append(names, fmt.Sprintf("[%s] %s", mem.Avatar, mem.Name))
	}
	b.WriteString(strings.Join(names, "  "))
	b.WriteString("\n\n")

	mode := "Liste"
	if v.Mode == page.ModeTimeline {
		mode = "Chronologie"
	}
	b.WriteString(subtitleStyle.Render("Concerts · " + mode))
	b.WriteString("\n")

	rows := v.Visible()
	if len(rows) == 0 {
		b.WriteString(dimStyle.Render(view.NoConcert))
		b.WriteString("\n")
		return b.String()
	}
	for _, c := range rows {
		if v.Mode == page.ModeTimeline {
			b.WriteString(fmt.Sprintf("  ● %s\n    %s, %s\n", c.Date, c.Location, c.Country))
			continue
		}
		b.WriteString(fmt.Sprintf("  %-12s %s, %s\n", c.Date, c.Location, c.Country))
	}
	return b.String()
}

func (m Model) viewSpotify() string {
	var b strings.Builder
	v := m.spotifyView
	h := v.Header

	b.WriteString(spotifyStyle.Render(h.Name + "  " + h.Badge.Label))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(strings.TrimSpace(h.Followers + " · " + h.Popularity)))
	b.WriteString("\n")
	if pop := v.Artist.Popularity; pop > 0 {
		b.WriteString(m.gauge.ViewAs(float64(pop) / 100))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	stats := make([]string, 0, len(v.Stats))
	for _, s := range v.Stats {
		stats = append(stats, fmt.Sprintf("%s\n%s", dimStyle.Render(s.Label), s.Value))
	}
	b.WriteString(boxStyle.Render(strings.Join(stats, "\n\n")))
	b.WriteString("\n\n")

	if v.Genres.State == view.StateEmpty {
		b.WriteString(dimStyle.Render(v.Genres.Message))
	} else {
		b.WriteString(strings.Join(v.Genres.Items, " • "))
	}
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(h.LinkLabel + " : " + v.Link))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	title := "Erreur serveur"
	if m.redirect == page.NotFoundPath {
		title = "Page introuvable"
	}
	b.WriteString(errorStyle.Render(fmt.Sprintf("%s (%s)", title, m.redirect)))
	b.WriteString("\n\n")
	if m.redirectErr != nil {
		b.WriteString(dimStyle.Render("  " + m.redirectErr.Error()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) helpText() string {
	if m.input.Focused() {
		return "enter: valider • esc: fermer"
	}
	switch m.screen {
	case ScreenArtists:
		return "tab: onglet • /: rechercher • s: source • ↑/↓: choisir • enter: ouvrir • q: quitter"
	case ScreenDates:
		return "tab: onglet • /: filtrer • ↑/↓: défiler • q: quitter"
	case ScreenLocations, ScreenRelations:
		return "tab: onglet • /: filtrer • ↑/↓: choisir • enter: artiste • q: quitter"
	case ScreenArtist:
		return "l: liste • t: chronologie • esc: retour • q: quitter"
	case ScreenSpotify, ScreenError:
		return "esc: retour • q: quitter"
	}
	return ""
}
