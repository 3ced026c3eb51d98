package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	want := &Config{
		Language:        "en-US",
		Country:         "US",
		UseLocalization: false,
		BaseDomain:      "www.imdb.com",
		GraphQLEndpoint: "https://api.graphql.imdb.com/",
		TimeoutSeconds:  30,
		LogLevel:        "info",
	}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("DefaultConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigPath(t *testing.T) {
	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error = %v, want nil", err)
	}

	if !filepath.IsAbs(path) {
		t.Errorf("ConfigPath() = %v, want absolute path", path)
	}
	if filepath.Base(filepath.Dir(path)) != ".imdbkit" {
		t.Errorf("ConfigPath() = %v, want path containing .imdbkit directory", path)
	}
	if filepath.Base(path) != "config.json" {
		t.Errorf("ConfigPath() = %v, want path ending with config.json", path)
	}
}

func TestLoadFrom_NonExistentFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v, want nil", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("LoadFrom() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFrom_PartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"language": "de-DE", "country": "DE", "use_localization": true}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	want := DefaultConfig()
	want.Language = "de-DE"
	want.Country = "DE"
	want.UseLocalization = true
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("LoadFrom() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("LoadFrom() error = nil, want parse error")
	}
}

func TestLoadFrom_InvalidDomain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"base_domain": "https://www.imdb.com/"}`), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("LoadFrom() error = nil, want validation error")
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.UseLocalization = true
	cfg.Language = "fr-FR"
	cfg.Country = "FR"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("Load() after Save() mismatch (-want +got):\n%s", diff)
	}
}

func TestLocale(t *testing.T) {
	tests := map[string]struct {
		cfg         Config
		wantLang    string
		wantCountry string
	}{
		"disabled ignores configured locale": {
			cfg:         Config{Language: "de-DE", Country: "DE"},
			wantLang:    "en-US",
			wantCountry: "US",
		},
		"enabled uses configured locale": {
			cfg:         Config{Language: "de-DE", Country: "DE", UseLocalization: true},
			wantLang:    "de-DE",
			wantCountry: "DE",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			lang, country := tc.cfg.Locale()
			if lang != tc.wantLang || country != tc.wantCountry {
				t.Errorf("Locale() = (%q, %q), want (%q, %q)", lang, country, tc.wantLang, tc.wantCountry)
			}
		})
	}
}

func TestBaseURLAndTimeout(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.BaseURL(); got != "https://www.imdb.com" {
		t.Errorf("BaseURL() = %q", got)
	}
	if got := cfg.Timeout(); got != 30*time.Second {
		t.Errorf("Timeout() = %v", got)
	}
	cfg.TimeoutSeconds = 5
	if got := cfg.Timeout(); got != 5*time.Second {
		t.Errorf("Timeout() = %v", got)
	}
}
