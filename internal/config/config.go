// Package config loads the pathfinder CLI settings from a TOML file.
//
//	color = "auto"      # auto | on | off
//	marker = "*"
//	log_level = "warn"  # debug | info | warn | error
//	strict = false      # reject duplicate S or E cells
//
//	[bench]
//	runs = 20
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

// FileName is the config file looked up in the working directory when no
// explicit path is given.
const FileName = "pathfinder.toml"

// Sentinel errors for invalid settings.
var (
	ErrBadColor    = errors.New("config: color must be auto, on or off")
	ErrBadMarker   = errors.New("config: marker must be a single character")
	ErrBadLogLevel = errors.New("config: unknown log level")
	ErrBadRuns     = errors.New("config: bench.runs must be positive")
)

// Config holds every CLI setting.
type Config struct {
	Color    string `toml:"color"`
	Marker   string `toml:"marker"`
	LogLevel string `toml:"log_level"`
	Strict   bool   `toml:"strict"`
	Bench    Bench  `toml:"bench"`
}

// Bench configures the timing harness.
type Bench struct {
	Runs int `toml:"runs"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Color:    "auto",
		Marker:   "*",
		LogLevel: "warn",
		Bench:    Bench{Runs: 20},
	}
}

// Load reads path over the defaults. An empty path tries FileName in the
// working directory and silently falls back to the defaults when it does
// not exist; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = FileName
	}
	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	switch c.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("%w: %q", ErrBadColor, c.Color)
	}
	if utf8.RuneCountInString(c.Marker) != 1 {
		return fmt.Errorf("%w: %q", ErrBadMarker, c.Marker)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Bench.Runs <= 0 {
		return fmt.Errorf("%w: %d", ErrBadRuns, c.Bench.Runs)
	}

	return nil
}

// MarkerRune returns the first rune of Marker.
func (c Config) MarkerRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Marker)

	return r
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadLogLevel, c.LogLevel)
	}

	return lvl, nil
}
