// Package config provides configuration management for the groupie-tracker
// client.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Overrides from GROUPIE_* environment variables and an optional .env
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Backend at http://localhost:8080
//	// 250ms search debounce, 8 results per Spotify search
//	// French date labels (fr_FR)
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // malformed file; a missing file yields defaults
//	}
//
// # Environment
//
//	GROUPIE_API=http://backend:8080   # api_base_url
//	GROUPIE_LOCALE=en_US              # locale
//	GROUPIE_LOG_LEVEL=debug           # log_level
//	GROUPIE_LOG_FILE=/tmp/groupie.log # log_file
//	GROUPIE_STRICT=true               # strict_shapes
//
// # Saving Settings
//
//	settings.Locale = "en_US"
//	err := settings.Save("/path/to/config.json")
package config
