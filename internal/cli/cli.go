package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/handiism/groupie-tracker/internal/config"
	"github.com/handiism/groupie-tracker/internal/groupie"
	httpclient "github.com/handiism/groupie-tracker/internal/http"
	"github.com/handiism/groupie-tracker/internal/logger"
	"github.com/handiism/groupie-tracker/internal/page"
	"github.com/handiism/groupie-tracker/internal/view"
)

const (
	ExitSuccess  = 0
	ExitError    = 1
	ExitNotFound = 2
)

// app carries the state shared by every subcommand. It is filled in by the
// root command's PersistentPreRunE.
type app struct {
	out    io.Writer
	errOut io.Writer

	flagConfig  string
	flagAPI     string
	flagFormat  string
	flagVerbose bool

	settings *config.Settings
	format   OutputFormat
	log      *logger.Logger
	backend  *groupie.Client
	dates    *view.Formatter
	logFile  *os.File
}

// NewRootCmd creates the root command writing pages to out and diagnostics
// to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	cmd := &cobra.Command{
		Use:   "groupie",
		Short: "Browse Groupie Tracker artists, concerts and locations",
		Long: `A terminal client for the Groupie Tracker backend.
Each subcommand renders one page of the site as text or JSON.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().StringVar(&a.flagConfig, "config", "", "Path to a JSON settings file")
	cmd.PersistentFlags().StringVar(&a.flagAPI, "api", "", "Backend base URL (overrides config and "+config.EnvAPIBaseURL+")")
	cmd.PersistentFlags().StringVar(&a.flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&a.flagVerbose, "verbose", false, "Log debug output to stderr")

	cmd.AddCommand(
		a.artistsCmd(),
		a.artistCmd(),
		a.spotifyArtistCmd(),
		a.datesCmd(),
		a.locationsCmd(),
		a.relationsCmd(),
		a.searchCmd(),
		a.exportICSCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(a.flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", a.flagFormat)
	}
	a.format = format

	settings, err := config.Load(a.flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if a.flagAPI != "" {
		settings.APIBaseURL = strings.TrimRight(a.flagAPI, "/")
	}
	a.settings = settings

	level := logger.ParseLevel(settings.LogLevel)
	if a.flagVerbose {
		level = logger.LevelDebug
	}
	var logOut io.Writer = a.errOut
	if settings.LogFile != "" && !a.flagVerbose {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		a.logFile = f
		logOut = f
	}
	a.log = logger.New(level, logOut)

	hc := httpclient.NewClient(httpclient.Options{
		BaseURL:      settings.APIBaseURL,
		UserAgent:    settings.UserAgent,
		Timeout:      settings.RequestTimeout(),
		StrictShapes: settings.StrictShapes,
		Logger:       a.log,
	})
	a.backend = groupie.NewClient(hc, a.log)
	a.dates = view.NewFormatter(settings.Locale)

	a.log.Debug("cli configured", logger.Fields{
		"command": cmd.Name(),
		"api":     settings.APIBaseURL,
		"locale":  a.dates.Locale(),
	})
	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) error {
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}

// ExitCode maps a command error to the process exit code. Redirects to the
// not-found page exit with ExitNotFound.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var r *page.Redirect
	if errors.As(err, &r) && r.Target == page.NotFoundPath {
		return ExitNotFound
	}
	return ExitError
}

// Execute runs the CLI and exits the process.
func Execute() {
	err := NewRootCmd(os.Stdout, os.Stderr).Execute()
	if err != nil {
		var r *page.Redirect
		if errors.As(err, &r) {
			fmt.Fprintf(os.Stderr, "%s %s\n", r.Target, r.Cause)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	os.Exit(ExitCode(err))
}
