// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config loads repodeck settings from the TOML config file, an
// optional .env file and REPODECK_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"github.com/janderssonse/repodeck/internal/display"
	"github.com/janderssonse/repodeck/internal/domain"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Defaults.
const (
	DefaultEndpoint = "https://portfolio-repositories-backend.onrender.com/repositories"
	DefaultExcluded = "SoaresCRF"
	DefaultTimeout  = "30s"
	DefaultLocale   = "en-US"
)

// Environment variables that override the file.
const (
	EnvEndpoint = "REPODECK_ENDPOINT"
	EnvExcluded = "REPODECK_EXCLUDED"
	EnvTimeout  = "REPODECK_TIMEOUT"
	EnvLocale   = "REPODECK_LOCALE"
)

// Config holds the user settings.
type Config struct {
	Endpoint           string            `toml:"endpoint"`
	ExcludedRepository string            `toml:"excluded_repository"`
	Timeout            string            `toml:"timeout"`
	Locale             string            `toml:"locale"`
	AboutFile          string            `toml:"about_file,omitempty"`
	Colors             map[string]string `toml:"colors,omitempty"`
	Icons              map[string]string `toml:"icons,omitempty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Endpoint:           DefaultEndpoint,
		ExcludedRepository: DefaultExcluded,
		Timeout:            DefaultTimeout,
		Locale:             DefaultLocale,
	}
}

// Load reads the config file at path, loads ./.env when present and applies
// environment overrides. A missing config file is not an error.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: failed to read .env: %w", domain.ErrInvalidConfig, err)
	}

	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with a custom environment lookup for testing.
// It does not read .env.
func LoadWithEnv(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: failed to parse %s: %w", domain.ErrInvalidConfig, path, err)
		}
	}

	overrides := map[string]*string{
		EnvEndpoint: &cfg.Endpoint,
		EnvExcluded: &cfg.ExcludedRepository,
		EnvTimeout:  &cfg.Timeout,
		EnvLocale:   &cfg.Locale,
	}

	for key, field := range overrides {
		if value, ok := lookup(key); ok && value != "" {
			*field = value
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the endpoint, timeout and color overrides.
func (c Config) Validate() error {
	endpoint, err := url.Parse(c.Endpoint)
	if err != nil || (endpoint.Scheme != "http" && endpoint.Scheme != "https") || endpoint.Host == "" {
		return fmt.Errorf("%w: endpoint %q must be an http(s) URL", domain.ErrInvalidConfig, c.Endpoint)
	}

	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}

	if _, err := c.Palette(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	return nil
}

// TimeoutDuration parses Timeout. It must be positive.
func (c Config) TimeoutDuration() (time.Duration, error) {
	timeout, err := time.ParseDuration(c.Timeout)
	if err != nil || timeout <= 0 {
		return 0, fmt.Errorf("%w: timeout %q must be a positive duration such as 30s", domain.ErrInvalidConfig, c.Timeout)
	}

	return timeout, nil
}

// Palette builds the display palette with the configured overrides.
func (c Config) Palette() (display.Palette, error) {
	return display.NewPalette(c.Colors, c.Icons)
}

// Marshal encodes the config as TOML.
func (c Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	return data, nil
}
