package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAPIBaseURL is the backend serving /api/* and /search.
const DefaultAPIBaseURL = "http://localhost:8080"

// Environment variables that override file values.
const (
	EnvAPIBaseURL = "GROUPIE_API"
	EnvLocale     = "GROUPIE_LOCALE"
	EnvLogLevel   = "GROUPIE_LOG_LEVEL"
	EnvLogFile    = "GROUPIE_LOG_FILE"
	EnvStrict     = "GROUPIE_STRICT"
)

// Settings holds all configuration options.
type Settings struct {
	// Backend settings
	APIBaseURL            string `json:"api_base_url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	UserAgent             string `json:"user_agent"`

	// StrictShapes turns unknown collection shapes into decode errors
	// instead of empty collections.
	StrictShapes bool `json:"strict_shapes"`

	// Search settings
	SearchDebounceMillis int    `json:"search_debounce_ms"`
	SearchLimit          int    `json:"search_limit"`
	DefaultSource        string `json:"default_source"` // all, groupie, spotify

	// Display settings
	Locale string `json:"locale"`

	// Logging
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		APIBaseURL:            DefaultAPIBaseURL,
		RequestTimeoutSeconds: 10,
		UserAgent:             "GroupieTracker",
		StrictShapes:          false,

		SearchDebounceMillis: 250,
		SearchLimit:          8,
		DefaultSource:        "all",

		Locale: "fr_FR",

		LogLevel: "info",
		LogFile:  "",
	}
}

// Load reads settings from a JSON file and applies environment overrides.
//
// A missing file, or an empty path, yields the defaults. A .env file in the
// working directory is loaded first when present; variables already set in
// the process environment win over it.
func Load(path string) (*Settings, error) {
	_ = godotenv.Load()

	settings := DefaultSettings()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, settings); err != nil {
				return nil, err
			}
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	settings.ApplyEnv()
	settings.normalize()
	return settings, nil
}

// ApplyEnv overrides fields from GROUPIE_* environment variables.
func (s *Settings) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvAPIBaseURL)); v != "" {
		s.APIBaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLocale)); v != "" {
		s.Locale = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		s.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		s.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvStrict)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.StrictShapes = b
		}
	}
}

// normalize repairs out-of-range values so callers never see them.
func (s *Settings) normalize() {
	defaults := DefaultSettings()
	s.APIBaseURL = strings.TrimRight(strings.TrimSpace(s.APIBaseURL), "/")
	if s.APIBaseURL == "" {
		s.APIBaseURL = defaults.APIBaseURL
	}
	if s.RequestTimeoutSeconds <= 0 {
		s.RequestTimeoutSeconds = defaults.RequestTimeoutSeconds
	}
	if s.SearchDebounceMillis < 0 {
		s.SearchDebounceMillis = defaults.SearchDebounceMillis
	}
	if s.SearchLimit <= 0 || s.SearchLimit > 20 {
		s.SearchLimit = defaults.SearchLimit
	}
	switch strings.ToLower(strings.TrimSpace(s.DefaultSource)) {
	case "groupie", "spotify", "all":
		s.DefaultSource = strings.ToLower(strings.TrimSpace(s.DefaultSource))
	default:
		s.DefaultSource = defaults.DefaultSource
	}
	if s.UserAgent == "" {
		s.UserAgent = defaults.UserAgent
	}
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// RequestTimeout returns the per-request HTTP timeout.
func (s *Settings) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

// SearchDebounce returns the quiet window for search-as-you-type.
func (s *Settings) SearchDebounce() time.Duration {
	return time.Duration(s.SearchDebounceMillis) * time.Millisecond
}
