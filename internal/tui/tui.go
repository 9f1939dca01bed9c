// Package tui provides a Bubble Tea terminal browser for Groupie Tracker.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/groupie-tracker/internal/debounce"
	"github.com/handiism/groupie-tracker/internal/filter"
	"github.com/handiism/groupie-tracker/internal/logger"
	"github.com/handiism/groupie-tracker/internal/model"
	"github.com/handiism/groupie-tracker/internal/page"
	"github.com/handiism/groupie-tracker/internal/view"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	spotifyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1DB954"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1A1A2E")).
			Background(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC")).
			Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// Screen is the page currently shown.
type Screen int

const (
	ScreenArtists Screen = iota
	ScreenDates
	ScreenLocations
	ScreenRelations
	ScreenArtist
	ScreenSpotify
	ScreenError
)

var tabs = []struct {
	screen Screen
	label  string
}{
	{ScreenArtists, "Artistes"},
	{ScreenDates, "Dates"},
	{ScreenLocations, "Lieux"},
	{ScreenRelations, "Relations"},
}

var sources = []string{page.SourceAll, page.SourceGroupie, page.SourceSpotify}

// Options configures a Model.
type Options struct {
	Backend   page.Backend
	Formatter *view.Formatter
	Logger    *logger.Logger
	Debounce  time.Duration
	Source    string
	Limit     int
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	screen   Screen
	previous Screen
	input    textinput.Model
	spinner  spinner.Model
	gauge    progress.Model

	ctx    context.Context
	cancel context.CancelFunc
	log    *logger.Logger
	window time.Duration
	seq    *debounce.Sequencer

	home      *page.Home
	artists   *page.ArtistPage
	spotify   *page.SpotifyPage
	dates     *page.DatesPage
	locations *page.LocationsPage
	relations *page.RelationsPage

	homeView      page.HomeView
	datesView     page.DatesView
	locationsView page.LocationsView
	relationsView page.RelationsView
	artistView    page.ArtistView
	spotifyView   page.SpotifyView

	// Per-tab filter text and cursor.
	terms  map[Screen]string
	cursor map[Screen]int

	loading     bool
	redirect    string
	redirectErr error

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Rechercher un artiste"
	ti.CharLimit = 100
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	gauge := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	gauge.Width = 30

	window := opts.Debounce
	if window <= 0 {
		window = debounce.DefaultWindow
	}

	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		screen:    ScreenArtists,
		input:     ti,
		spinner:   sp,
		gauge:     gauge,
		ctx:       ctx,
		cancel:    cancel,
		log:       opts.Logger,
		window:    window,
		seq:       &debounce.Sequencer{},
		home:      page.NewHome(opts.Backend, page.HomeOptions{Source: opts.Source, Limit: opts.Limit, Logger: opts.Logger}),
		artists:   page.NewArtistPage(opts.Backend, opts.Formatter, opts.Logger),
		spotify:   page.NewSpotifyPage(opts.Backend, opts.Formatter, opts.Logger),
		dates:     page.NewDatesPage(opts.Backend, opts.Formatter, opts.Logger),
		locations: page.NewLocationsPage(opts.Backend, opts.Logger),
		relations: page.NewRelationsPage(opts.Backend, opts.Logger),
		terms:     make(map[Screen]string),
		cursor:    make(map[Screen]int),
	}
	m.homeView = m.home.View()
	m.datesView = page.DatesView{Items: view.Loading[view.EventItem]()}
	m.locationsView = page.LocationsView{Cards: view.Loading[view.LocationCard]()}
	m.relationsView = page.RelationsView{Items: view.Loading[view.RelationView]()}
	return m
}

// Init loads every tab concurrently.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadHome(m.seq.Next()),
		m.loadDates(),
		m.loadLocations(),
		m.loadRelations(),
	)
}

// Message types
type (
	// homeMsg carries a home page result. Token orders the responses.
	homeMsg struct {
		Token uint64
		View  page.HomeView
	}

	// searchTickMsg fires when the search quiet window elapses.
	searchTickMsg struct {
		Token uint64
		Term  string
	}

	datesMsg struct {
		View page.DatesView
		Err  error
	}

	locationsMsg struct {
		View page.LocationsView
		Err  error
	}

	relationsMsg struct {
		View page.RelationsView
		Err  error
	}

	artistMsg struct {
		View page.ArtistView
		Err  error
	}

	spotifyMsg struct {
		View page.SpotifyView
		Err  error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			return m, tea.Quit
		}
		if m.input.Focused() {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case searchTickMsg:
		if !m.seq.IsLatest(msg.Token) {
			return m, nil
		}
		return m, m.search(msg.Token, msg.Term)

	case homeMsg:
		if !m.seq.IsLatest(msg.Token) {
			m.log.Debug("stale home result dropped", logger.Fields{"token": msg.Token})
			return m, nil
		}
		m.homeView = msg.View
		m.cursor[ScreenArtists] = 0

	case datesMsg:
		m.datesView = msg.View
		if msg.Err == nil {
			m.datesView = m.dates.Apply(filter.EventCriteria{Query: m.terms[ScreenDates]})
		}

	case locationsMsg:
		m.locationsView = msg.View
		if msg.Err == nil {
			m.locationsView = m.locations.Apply(filter.LocationCriteria{City: m.terms[ScreenLocations]})
		}

	case relationsMsg:
		m.relationsView = msg.View
		if msg.Err == nil {
			m.relationsView = m.relations.Apply(filter.RelationCriteria{Location: m.terms[ScreenRelations]})
		}

	case artistMsg:
		m.loading = false
		if msg.Err != nil {
			m.showRedirect(msg.Err)
			break
		}
		m.artistView = msg.View
		m.screen = ScreenArtist

	case spotifyMsg:
		m.loading = false
		if msg.Err != nil {
			m.showRedirect(msg.Err)
			break
		}
		m.spotifyView = msg.View
		m.screen = ScreenSpotify
	}

	return m, tea.Batch(cmds...)
}

// updateInput handles keys while the filter input has focus.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.input.Blur()
		if msg.String() == "enter" && m.screen == ScreenArtists {
			// Submit bypasses the quiet window.
			return m, m.search(m.seq.Next(), m.input.Value())
		}
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	term := m.input.Value()
	if term == before {
		return m, cmd
	}

	m.terms[m.screen] = term
	m.cursor[m.screen] = 0
	switch m.screen {
	case ScreenArtists:
		token := m.seq.Next()
		return m, tea.Batch(cmd, tea.Tick(m.window, func(time.Time) tea.Msg {
			return searchTickMsg{Token: token, Term: term}
		}))
	case ScreenDates:
		m.datesView = m.dates.Apply(filter.EventCriteria{Query: term})
	case ScreenLocations:
		m.locationsView = m.locations.Apply(filter.LocationCriteria{City: term})
	case ScreenRelations:
		m.relationsView = m.relations.Apply(filter.RelationCriteria{Location: term})
	}
	return m, cmd
}

// updateKeys handles navigation keys.
func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.cancel()
		return m, tea.Quit

	case "esc":
		if m.isTab() {
			return m, nil
		}
		m.screen = m.previous
		m.redirect = ""
		m.redirectErr = nil
		return m, nil

	case "tab", "right":
		if m.isTab() {
			m.switchTab(1)
		}

	case "shift+tab", "left":
		if m.isTab() {
			m.switchTab(-1)
		}

	case "/":
		if m.isTab() {
			m.input.SetValue(m.terms[m.screen])
			m.input.CursorEnd()
			return m, m.input.Focus()
		}

	case "s":
		if m.screen == ScreenArtists {
			next := sources[0]
			for i, s := range sources {
				if s == m.homeView.Source {
					next = sources[(i+1)%len(sources)]
				}
			}
			return m, m.setSource(m.seq.Next(), next, m.terms[ScreenArtists])
		}

	case "up":
		if m.cursor[m.screen] > 0 {
			m.cursor[m.screen]--
		}

	case "down":
		if m.cursor[m.screen] < m.rows()-1 {
			m.cursor[m.screen]++
		}

	case "l":
		if m.screen == ScreenArtist {
			if m.artistView.Mode != page.ModeList {
				m.artistView.Toggle()
			}
		}

	case "t":
		if m.screen == ScreenArtist {
			if m.artistView.Mode != page.ModeTimeline {
				m.artistView.Toggle()
			}
		}

	case "enter":
		return m.open()
	}

	return m, nil
}

func (m *Model) switchTab(delta int) {
	idx := 0
	for i, t := range tabs {
		if t.screen == m.screen {
			idx = i
		}
	}
	idx = (idx + delta + len(tabs)) % len(tabs)
	m.screen = tabs[idx].screen
}

func (m Model) isTab() bool {
	return m.screen <= ScreenRelations
}

// rows returns the number of selectable rows on the current screen.
func (m Model) rows() int {
	switch m.screen {
	case ScreenArtists:
		return m.homeView.Cards.Len()
	case ScreenDates:
		return m.datesView.Items.Len()
	case ScreenLocations:
		return m.locationsView.Cards.Len()
	case ScreenRelations:
		return m.relationsView.Items.Len()
	}
	return 0
}

// open loads the detail page of the selected row.
func (m Model) open() (tea.Model, tea.Cmd) {
	i := m.cursor[m.screen]
	switch m.screen {
	case ScreenArtists:
		if i >= m.homeView.Cards.Len() {
			return m, nil
		}
		card := m.homeView.Cards.Items[i]
		m.previous = m.screen
		m.loading = true
		if card.Spotify {
			return m, tea.Batch(m.spinner.Tick, m.loadSpotify(card.ID))
		}
		return m, tea.Batch(m.spinner.Tick, m.loadArtist(card.ID))

	case ScreenLocations:
		if i >= m.locationsView.Cards.Len() {
			return m, nil
		}
		m.previous = m.screen
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadArtist(m.locationsView.Cards.Items[i].ArtistID))

	case ScreenRelations:
		if i >= m.relationsView.Items.Len() {
			return m, nil
		}
		m.previous = m.screen
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadArtist(m.relationsView.Items.Items[i].ID))
	}
	return m, nil
}

func (m *Model) showRedirect(err error) {
	m.redirect = page.Resolve(err)
	m.redirectErr = err
	m.screen = ScreenError
}

func (m Model) loadHome(token uint64) tea.Cmd {
	home, ctx := m.home, m.ctx
	return func() tea.Msg {
		return homeMsg{Token: token, View: home.Load(ctx)}
	}
}

func (m Model) search(token uint64, term string) tea.Cmd {
	home, ctx := m.home, m.ctx
	return func() tea.Msg {
		return homeMsg{Token: token, View: home.Search(ctx, term)}
	}
}

func (m Model) setSource(token uint64, source, term string) tea.Cmd {
	home, ctx := m.home, m.ctx
	return func() tea.Msg {
		return homeMsg{Token: token, View: home.SetSource(ctx, source, term)}
	}
}

func (m Model) loadDates() tea.Cmd {
	p, ctx := m.dates, m.ctx
	return func() tea.Msg {
		v, err := p.Load(ctx)
		return datesMsg{View: v, Err: err}
	}
}

func (m Model) loadLocations() tea.Cmd {
	p, ctx := m.locations, m.ctx
	return func() tea.Msg {
		v, err := p.Load(ctx)
		return locationsMsg{View: v, Err: err}
	}
}

func (m Model) loadRelations() tea.Cmd {
	p, ctx := m.relations, m.ctx
	return func() tea.Msg {
		v, err := p.Load(ctx)
		return relationsMsg{View: v, Err: err}
	}
}

func (m Model) loadArtist(id model.ArtistID) tea.Cmd {
	p, ctx := m.artists, m.ctx
	return func() tea.Msg {
		v, err := p.Load(ctx, id.String())
		return artistMsg{View: v, Err: err}
	}
}

func (m Model) loadSpotify(id model.ArtistID) tea.Cmd {
	p, ctx := m.spotify, m.ctx
	return func() tea.Msg {
		v, err := p.Load(ctx, id.String())
		return spotifyMsg{View: v, Err: err}
	}
}

// Run starts the TUI application.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
