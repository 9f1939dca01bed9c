package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/handiism/groupie-tracker/internal/calendar"
	"github.com/handiism/groupie-tracker/internal/filter"
	"github.com/handiism/groupie-tracker/internal/model"
	"github.com/handiism/groupie-tracker/internal/page"
	"github.com/handiism/groupie-tracker/internal/view"
)

func (a *app) artistsCmd() *cobra.Command {
	var (
		name   string
		source string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "artists",
		Short: "List or search artists (home page)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("source") {
				source = a.settings.DefaultSource
			}
			if !cmd.Flags().Changed("limit") {
				limit = a.settings.SearchLimit
			}

			home := page.NewHome(a.backend, page.HomeOptions{
				Source: source,
				Limit:  limit,
				Logger: a.log,
			})

			var v page.HomeView
			if name == "" && home.View().Source != page.SourceSpotify {
				v = home.Load(cmd.Context())
			} else {
				v = home.Search(cmd.Context(), name)
			}

			if err := a.render(v, func(p *printer) { p.home(v) }); err != nil {
				return err
			}
			if v.Cards.State == view.StateFailed {
				return errors.New(v.Error)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Search term")
	cmd.Flags().StringVar(&source, "source", "", "Source: all, groupie or spotify (default from config)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of Spotify results (default from config)")
	return cmd
}

func (a *app) artistCmd() *cobra.Command {
	var timeline bool

	cmd := &cobra.Command{
		Use:   "artist <id>",
		Short: "Show a Groupie artist with its concerts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := page.NewArtistPage(a.backend, a.dates, a.log).Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if timeline {
				v.Toggle()
			}
			return a.render(v, func(p *printer) { p.artist(v) })
		},
	}

	cmd.Flags().BoolVar(&timeline, "timeline", false, "Show concerts as a timeline")
	return cmd
}

func (a *app) spotifyArtistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spotify-artist <id>",
		Short: "Show a Spotify artist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := page.NewSpotifyPage(a.backend, a.dates, a.log).Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.render(v, func(p *printer) { p.spotify(v) })
		},
	}
}

func (a *app) datesCmd() *cobra.Command {
	var c filter.EventCriteria

	cmd := &cobra.Command{
		Use:   "dates",
		Short: "List concert dates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := page.NewDatesPage(a.backend, a.dates, a.log)
			v, err := p.Load(cmd.Context())
			if err == nil {
				v = p.Apply(c)
			}
			if rerr := a.render(v, func(pr *printer) { pr.dates(v) }); rerr != nil {
				return rerr
			}
			return err
		},
	}

	cmd.Flags().IntVar(&c.Year, "year", 0, "Keep concerts of this year")
	cmd.Flags().StringVar(&c.Country, "country", "", "Keep concerts in this country")
	cmd.Flags().StringVar(&c.Query, "search", "", "Match artist or city")
	return cmd
}

func (a *app) locationsCmd() *cobra.Command {
	var c filter.LocationCriteria

	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List concert locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := page.NewLocationsPage(a.backend, a.log)
			v, err := p.Load(cmd.Context())
			if err == nil {
				v = p.Apply(c)
			}
			if rerr := a.render(v, func(pr *printer) { pr.locations(v) }); rerr != nil {
				return rerr
			}
			return err
		},
	}

	cmd.Flags().StringVar(&c.Country, "country", "", "Keep locations in this country")
	cmd.Flags().StringVar(&c.Artist, "artist", "", "Keep locations of this artist")
	cmd.Flags().StringVar(&c.City, "city", "", "Keep locations in this city")
	return cmd
}

func (a *app) relationsCmd() *cobra.Command {
	var (
		artist   string
		location string
	)

	cmd := &cobra.Command{
		Use:   "relations",
		Short: "Explore artist, location and date relations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := page.NewRelationsPage(a.backend, a.log)
			v, err := p.Load(cmd.Context())
			if err == nil {
				v = p.Apply(filter.RelationCriteria{
					ArtistID: model.ArtistID(artist),
					Location: location,
				})
			}
			if rerr := a.render(v, func(pr *printer) { pr.relations(v) }); rerr != nil {
				return rerr
			}
			return err
		},
	}

	cmd.Flags().StringVar(&artist, "artist", "", "Keep the relation of this artist id")
	cmd.Flags().StringVar(&location, "location", "", "Keep relations visiting this location")
	return cmd
}

func (a *app) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Run the legacy inline search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := page.NewLegacySearch(cmd.Context(), a.backend, a.settings.SearchDebounce(), a.log, nil)
			defer s.Close()

			s.Submit(args[0])
			v := s.Results()
			if v.State == view.StateLoading {
				return fmt.Errorf("search %q failed", args[0])
			}
			return a.render(v, func(p *printer) { p.search(v) })
		},
	}
}

func (a *app) exportICSCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export-ics <id>",
		Short: "Export an artist's concerts as an iCalendar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := page.NewArtistPage(a.backend, a.dates, a.log).Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			path, err := calendar.Export(cmd.Context(), out, v.Artist, v.Concerts, time.Now())
			if err != nil {
				return err
			}

			result := exportResult{Artist: v.Artist.Name, Path: path, Concerts: len(v.Concerts)}
			return a.render(result, func(p *printer) { p.export(result) })
		},
	}

	cmd.Flags().StringVar(&out, "out", ".", "Output directory")
	return cmd
}
