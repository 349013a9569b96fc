// Package config loads statement tool settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Output formats accepted in STATEMENT_FORMAT.
const (
	FormatPlain  = "plain"
	FormatMarkup = "markup"
	FormatBoth   = "both"
)

// ErrInvalidFormat is returned for an unknown STATEMENT_FORMAT value.
var ErrInvalidFormat = errors.New("invalid statement format")

// Config holds the statement tool configuration.
type Config struct {
	LogLevel        string
	Format          string
	SheetPath       string
	MetricsTextfile string
}

// Load reads configuration from environment variables and an optional .env
// file in the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}

	cfg := &Config{
		LogLevel:        valueOrDefault(k.String("LOG_LEVEL"), "info"),
		Format:          valueOrDefault(k.String("STATEMENT_FORMAT"), FormatPlain),
		SheetPath:       strings.TrimSpace(k.String("RENTAL_SHEET")),
		MetricsTextfile: strings.TrimSpace(k.String("METRICS_TEXTFILE")),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that can be wrong independently of the sheet.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Format {
	case FormatPlain, FormatMarkup, FormatBoth:
		return nil
	default:
		return fmt.Errorf("%w: %q (want plain, markup or both)", ErrInvalidFormat, c.Format)
	}
}

// Formats expands Format into the statement format names to render.
func (c *Config) Formats() []string {
	if c.Format == FormatBoth {
		return []string{FormatPlain, FormatMarkup}
	}
	return []string{c.Format}
}

func valueOrDefault(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}
