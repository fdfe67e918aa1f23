// SPDX-License-Identifier: MIT

// Package config loads the stoic CLI configuration from a TOML file.
// The file is optional; absent keys keep their defaults and command-line
// flags override whatever the file says.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/stoic/balance"
	"github.com/katalvlaran/stoic/matrix"
)

// ColorMode selects when styled output is emitted.
const (
	ColorAuto   = "auto"   // color only when stdout is a terminal
	ColorAlways = "always" // color even when piped
	ColorNever  = "never"  // plain text
)

const (
	dirName  = ".stoic"
	fileName = "config.toml"
)

// ErrInvalid indicates a config value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config mirrors config.toml.
type Config struct {
	Strict        bool   `toml:"strict"`
	MultiSolution string `toml:"multi_solution"`
	Pivoting      string `toml:"pivoting"`
	Color         string `toml:"color"`
	Verbose       bool   `toml:"verbose"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Strict:        balance.DefaultStrict,
		MultiSolution: balance.DefaultMultiSolution.String(),
		Pivoting:      matrix.DefaultPivoting.String(),
		Color:         ColorAuto,
	}
}

// DefaultPath returns ~/.stoic/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, dirName, fileName), nil
}

// Load reads path over the defaults and validates the result.
// A missing file yields an error matching os.ErrNotExist; callers decide
// whether that is fatal.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err = dec.Decode(&cfg); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

// Validate checks every enumerated field.
func (c Config) Validate() error {
	if _, ok := balance.ParseMultiSolution(c.MultiSolution); !ok {
		return fmt.Errorf("%w: multi_solution %q (want reject or combine)", ErrInvalid, c.MultiSolution)
	}
	if _, ok := matrix.ParsePivoting(c.Pivoting); !ok {
		return fmt.Errorf("%w: pivoting %q (want max-abs or first)", ErrInvalid, c.Pivoting)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color %q (want auto, always or never)", ErrInvalid, c.Color)
	}

	return nil
}

// BalanceOptions translates the file settings into balance options.
// Call Validate first; unknown names fall back to the defaults.
func (c Config) BalanceOptions() []balance.Option {
	multi, _ := balance.ParseMultiSolution(c.MultiSolution)
	pivot, _ := matrix.ParsePivoting(c.Pivoting)

	return []balance.Option{
		balance.WithStrict(c.Strict),
		balance.WithMultiSolution(multi),
		balance.WithPivoting(pivot),
	}
}

// Encode renders cfg as TOML.
func (c Config) Encode() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
