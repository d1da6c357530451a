// Package config loads Pig game settings from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Defaults for a standard game of Pig.
const (
	DefaultWinThreshold = 100
	DefaultBustValue    = 1
	DefaultDieSides     = 6
	DefaultTimeLimit    = 60 * time.Second
	DefaultHoldAt       = 25
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the immutable configuration for a match.
type Config struct {
	WinThreshold int
	BustValue    int
	DieSides     int
	TimeLimit    time.Duration
	HoldAt       int
}

// file mirrors the HCL layout; every attribute is optional.
type file struct {
	Game     *gameBlock     `hcl:"game,block"`
	Computer *computerBlock `hcl:"computer,block"`
}

type gameBlock struct {
	WinThreshold *int    `hcl:"win_threshold,optional"`
	BustValue    *int    `hcl:"bust_value,optional"`
	DieSides     *int    `hcl:"die_sides,optional"`
	TimeLimit    *string `hcl:"time_limit,optional"`
}

type computerBlock struct {
	HoldAt *int `hcl:"hold_at,optional"`
}

// Default returns the standard rules: first to 100, a 1 busts, one minute
// for timed games, computers hold at 25.
func Default() Config {
	return Config{
		WinThreshold: DefaultWinThreshold,
		BustValue:    DefaultBustValue,
		DieSides:     DefaultDieSides,
		TimeLimit:    DefaultTimeLimit,
		HoldAt:       DefaultHoldAt,
	}
}

// Load reads filename. A missing file yields Default().
func Load(filename string) (Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source, applies defaults for anything omitted and validates the result.
func Parse(src []byte, filename string) (Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(f.Body, nil, &raw)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if g := raw.Game; g != nil {
		if g.WinThreshold != nil {
			cfg.WinThreshold = *g.WinThreshold
		}
		if g.BustValue != nil {
			cfg.BustValue = *g.BustValue
		}
		if g.DieSides != nil {
			cfg.DieSides = *g.DieSides
		}
		if g.TimeLimit != nil {
			d, err := time.ParseDuration(*g.TimeLimit)
			if err != nil {
				return Config{}, fmt.Errorf("%w: time_limit %q: %v", ErrInvalidConfig, *g.TimeLimit, err)
			}
			cfg.TimeLimit = d
		}
	}
	if c := raw.Computer; c != nil && c.HoldAt != nil {
		cfg.HoldAt = *c.HoldAt
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the rules describe a playable game.
func (c Config) Validate() error {
	if c.WinThreshold < 1 {
		return fmt.Errorf("%w: win_threshold must be positive, got %d", ErrInvalidConfig, c.WinThreshold)
	}
	if c.DieSides < 2 {
		return fmt.Errorf("%w: die_sides must be at least 2, got %d", ErrInvalidConfig, c.DieSides)
	}
	if c.BustValue < 1 || c.BustValue > c.DieSides {
		return fmt.Errorf("%w: bust_value must be between 1 and %d, got %d", ErrInvalidConfig, c.DieSides, c.BustValue)
	}
	if c.TimeLimit <= 0 {
		return fmt.Errorf("%w: time_limit must be positive, got %s", ErrInvalidConfig, c.TimeLimit)
	}
	if c.HoldAt < 1 {
		return fmt.Errorf("%w: hold_at must be positive, got %d", ErrInvalidConfig, c.HoldAt)
	}
	return nil
}
