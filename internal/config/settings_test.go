package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "")
	t.Setenv(EnvLocale, "")
	t.Setenv(EnvStrict, "")

	settings, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	defaults := DefaultSettings()
	if settings.APIBaseURL != defaults.APIBaseURL {
		t.Errorf("APIBaseURL = %q, want %q", settings.APIBaseURL, defaults.APIBaseURL)
	}
	if settings.SearchDebounce() != 250*time.Millisecond {
		t.Errorf("SearchDebounce() = %v, want 250ms", settings.SearchDebounce())
	}
	if settings.RequestTimeout() != 10*time.Second {
		t.Errorf("RequestTimeout() = %v, want 10s", settings.RequestTimeout())
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "")
	t.Setenv(EnvLocale, "")
	t.Setenv(EnvStrict, "")

	path := filepath.Join(t.TempDir(), "nested", "config.json")
	settings := DefaultSettings()
	settings.APIBaseURL = "http://backend:9000/"
	settings.Locale = "en_US"
	settings.SearchLimit = 5

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.APIBaseURL != "http://backend:9000" {
		t.Errorf("APIBaseURL = %q, want trailing slash trimmed", loaded.APIBaseURL)
	}
	if loaded.Locale != "en_US" {
		t.Errorf("Locale = %q, want en_US", loaded.Locale)
	}
	if loaded.SearchLimit != 5 {
		t.Errorf("SearchLimit = %d, want 5", loaded.SearchLimit)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "http://env:1234")
	t.Setenv(EnvLocale, "de_DE")
	t.Setenv(EnvStrict, "true")

	settings, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if settings.APIBaseURL != "http://env:1234" {
		t.Errorf("APIBaseURL = %q", settings.APIBaseURL)
	}
	if settings.Locale != "de_DE" {
		t.Errorf("Locale = %q", settings.Locale)
	}
	if !settings.StrictShapes {
		t.Error("StrictShapes = false, want true")
	}
}

func TestLoad_Normalizes(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "")
	t.Setenv(EnvLocale, "")
	t.Setenv(EnvStrict, "")

	path := filepath.Join(t.TempDir(), "config.json")
	raw := `{"request_timeout_seconds": -3, "search_limit": 99, "default_source": "SPOTIFY", "search_debounce_ms": -1}`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if settings.RequestTimeoutSeconds != 10 {
		t.Errorf("RequestTimeoutSeconds = %d, want 10", settings.RequestTimeoutSeconds)
	}
	if settings.SearchLimit != 8 {
		t.Errorf("SearchLimit = %d, want 8", settings.SearchLimit)
	}
	if settings.DefaultSource != "spotify" {
		t.Errorf("DefaultSource = %q, want spotify", settings.DefaultSource)
	}
	if settings.SearchDebounceMillis != 250 {
		t.Errorf("SearchDebounceMillis = %d, want 250", settings.SearchDebounceMillis)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil, want decode error")
	}
}
