// Package config holds the settings shared by the cartesian command line
// tools. Values are layered: struct defaults, then an optional YAML file, then
// CARTESIAN_* environment variables. Command line flags are applied last by
// the commands themselves.
//
// SPDX-License-Identifier: MIT
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CARTESIAN_"

// ErrInvalid is returned (wrapped) by Validate.
var ErrInvalid = errors.New("config: invalid value")

// Config controls output and evaluation settings.
type Config struct {
	// Digits is the number of significant digits printed; -1 prints the
	// shortest representation that round-trips.
	Digits int `yaml:"digits" env:"DIGITS" envDefault:"-1"`
	// Width selects the scalar width, 32 or 64 bits.
	Width int `yaml:"width" env:"WIDTH" envDefault:"64"`
	// Workers bounds concurrent goroutines; 0 means GOMAXPROCS.
	Workers  int    `yaml:"workers" env:"WORKERS" envDefault:"0"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" envDefault:"info"`
	// MaxIterations bounds the tetration fixed-point and Koenigs iterations.
	MaxIterations int `yaml:"max_iterations" env:"MAX_ITERATIONS" envDefault:"2000"`
}

// Default returns the configuration described by the envDefault tags.
func Default() Config {
	var cfg Config
	// An empty environment leaves only the tag defaults.
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		panic(fmt.Sprintf("config: bad default tag: %v", err))
	}
	return cfg
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// ParseEnv overlays CARTESIAN_* variables onto target. Fields whose variable
// is unset keep their current value.
func ParseEnv(target *Config) error {
	opts := env.Options{
		Prefix: EnvPrefix,
		// Unknown tag name: no defaults on the overlay pass.
		DefaultValueTagName: "envOverlayDefault",
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.Width != 32 && c.Width != 64:
		return fmt.Errorf("%w: width %d (want 32 or 64)", ErrInvalid, c.Width)
	case c.Digits < -1:
		return fmt.Errorf("%w: digits %d", ErrInvalid, c.Digits)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	case c.MaxIterations < 1:
		return fmt.Errorf("%w: max_iterations %d", ErrInvalid, c.MaxIterations)
	}
	return nil
}
