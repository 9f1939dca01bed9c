package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/groupie-tracker/internal/config"
	"github.com/handiism/groupie-tracker/internal/groupie"
	httpclient "github.com/handiism/groupie-tracker/internal/http"
	"github.com/handiism/groupie-tracker/internal/logger"
	"github.com/handiism/groupie-tracker/internal/tui"
	"github.com/handiism/groupie-tracker/internal/view"
)

func main() {
	var (
		configFlag = flag.String("config", "", "Path to config file")
		apiFlag    = flag.String("api", "", "Backend base URL (overrides config)")
	)
	flag.Parse()

	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *apiFlag != "" {
		settings.APIBaseURL = *apiFlag
	}

	// The alternate screen owns stdout, so logs only go to a file.
	log := logger.Nop()
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log = logger.New(logger.ParseLevel(settings.LogLevel), f)
	}

	hc := httpclient.NewClient(httpclient.Options{
		BaseURL:      settings.APIBaseURL,
		UserAgent:    settings.UserAgent,
		Timeout:      settings.RequestTimeout(),
		StrictShapes: settings.StrictShapes,
		Logger:       log,
	})

	err = tui.Run(tui.Options{
		Backend:   groupie.NewClient(hc, log),
		Formatter: view.NewFormatter(settings.Locale),
		Logger:    log,
		Debounce:  settings.SearchDebounce(),
		Source:    settings.DefaultSource,
		Limit:     settings.SearchLimit,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
