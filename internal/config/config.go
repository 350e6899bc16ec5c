// Package config loads the builder's static configuration: where the sheet
// lives, where the document goes, and how the run should behave.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// DefaultPath is where the builder looks for its config when no --config
// flag is given.
const DefaultPath = "masterlist.toml"

// PlaceholderURL ships in the sample config; leaving it in place is a
// startup error.
const PlaceholderURL = "YOUR_GOOGLE_SHEET_CSV_URL_HERE"

// Environment overrides, applied after the config file.
const (
	EnvSheetURL = "MASTERLIST_SHEET_URL"
	EnvOutput   = "MASTERLIST_OUTPUT"
)

// Config holds every setting of a build run.
type Config struct {
	// SheetURL is the published CSV export URL, or a local CSV path.
	SheetURL string `toml:"sheet_csv_url"`

	// OutputPath is where the generated document is written.
	OutputPath string `toml:"output_path"`

	// FetchTimeoutSeconds bounds the single sheet fetch attempt.
	FetchTimeoutSeconds int `toml:"fetch_timeout_seconds"`

	// LogLevel is the minimum log level: debug, info, warn or error.
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in configuration values.
func Default() Config {
	return Config{
		OutputPath:          "audios.json",
		FetchTimeoutSeconds: 30,
		LogLevel:            "info",
	}
}

// Load reads the config file (the default path may be absent; an explicit
// path must exist), applies environment overrides, and normalizes defaults.
// Validation is separate so command-line overrides can land in between.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// No config file is fine; flags or env must supply the URL.
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	if v := os.Getenv(EnvSheetURL); v != "" {
		cfg.SheetURL = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		cfg.OutputPath = v
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	c.SheetURL = strings.TrimSpace(c.SheetURL)
	c.OutputPath = strings.TrimSpace(c.OutputPath)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.OutputPath == "" {
		c.OutputPath = Default().OutputPath
	}
	if c.FetchTimeoutSeconds <= 0 {
		c.FetchTimeoutSeconds = Default().FetchTimeoutSeconds
	}
	if c.LogLevel == "" {
		c.LogLevel = Default().LogLevel
	}
}

// Validate ensures the configuration is usable. The sheet URL is the one
// setting with no sane default.
func (c Config) Validate() error {
	if c.SheetURL == "" || c.SheetURL == PlaceholderURL {
		return fmt.Errorf("sheet_csv_url is not set: edit %s (create one with 'masterlist config init') or set %s", DefaultPath, EnvSheetURL)
	}
	return nil
}

// FetchTimeout returns the fetch bound as a duration.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// CreateSample writes the embedded sample config to path. Refuses to
// clobber an existing file.
func CreateSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config %s already exists", path)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
