package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const (
	// DefaultLanguage and DefaultCountry describe the canonical US-English data
	// returned when localization is disabled.
	DefaultLanguage = "en-US"
	DefaultCountry  = "US"

	DefaultBaseDomain      = "www.imdb.com"
	DefaultGraphQLEndpoint = "https://api.graphql.imdb.com/"
	DefaultTimeoutSeconds  = 30
	DefaultLogLevel        = "info"
)

// Config holds the settings shared by the query client and the HTML loader.
// Components keep a pointer to it and never mutate it.
type Config struct {
	Language        string `json:"language"`
	Country         string `json:"country"`
	UseLocalization bool   `json:"use_localization"`
	BaseDomain      string `json:"base_domain"`
	GraphQLEndpoint string `json:"graphql_endpoint"`
	TimeoutSeconds  int    `json:"timeout_seconds"`
	LogLevel        string `json:"log_level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Language:        DefaultLanguage,
		Country:         DefaultCountry,
		UseLocalization: false,
		BaseDomain:      DefaultBaseDomain,
		GraphQLEndpoint: DefaultGraphQLEndpoint,
		TimeoutSeconds:  DefaultTimeoutSeconds,
		LogLevel:        DefaultLogLevel,
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".imdbkit", "config.json"), nil
}

// Load reads the configuration from the default location on disk
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration at path. A missing file yields the
// defaults; missing fields are filled from the defaults.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) fillDefaults() {
	defaults := DefaultConfig()
	if cfg.Language == "" {
		cfg.Language = defaults.Language
	}
	if cfg.Country == "" {
		cfg.Country = defaults.Country
	}
	if cfg.BaseDomain == "" {
		cfg.BaseDomain = defaults.BaseDomain
	}
	if cfg.GraphQLEndpoint == "" {
		cfg.GraphQLEndpoint = defaults.GraphQLEndpoint
	}
	if cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
}

// Validate reports the first invalid field.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.BaseDomain) == "" {
		return fmt.Errorf("base_domain is required")
	}
	if strings.Contains(cfg.BaseDomain, "/") {
		return fmt.Errorf("base_domain must be a bare host, got %q", cfg.BaseDomain)
	}
	if !strings.HasPrefix(cfg.GraphQLEndpoint, "http://") && !strings.HasPrefix(cfg.GraphQLEndpoint, "https://") {
		return fmt.Errorf("graphql_endpoint must be an http(s) URL, got %q", cfg.GraphQLEndpoint)
	}
	if cfg.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must not be negative")
	}
	if cfg.UseLocalization && (cfg.Language == "" || cfg.Country == "") {
		return fmt.Errorf("use_localization requires language and country")
	}
	return nil
}

// Save writes the configuration to the default location on disk
func (cfg *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// BaseURL returns the scheme and host of the scraped site.
func (cfg *Config) BaseURL() string {
	return "https://" + strings.TrimRight(cfg.BaseDomain, "/")
}

// Timeout returns the per-request transport timeout.
func (cfg *Config) Timeout() time.Duration {
	if cfg.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(cfg.TimeoutSeconds) * time.Second
}

// Locale returns the language and country that requests should carry. Without
// localization the canonical US-English pair is returned.
func (cfg *Config) Locale() (language, country string) {
	if !cfg.UseLocalization {
		return DefaultLanguage, DefaultCountry
	}
	return cfg.Language, cfg.Country
}
