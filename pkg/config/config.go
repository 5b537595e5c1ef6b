// Package config loads simulation and render settings from TOML files.
//
// A config file has two optional tables. Keys that are absent keep their
// [Default] values:
//
//	[simulation]
//	stiffness = 400.0
//	repulsion = 400.0
//	damping = 0.5
//	gravity = 0.4
//	dimensions = 2
//	seed = 42
//	time_step = 0.03
//	max_steps = 10000
//	energy_threshold = 0.01
//	padding = 0.07
//
//	[render]
//	scale = 20.0
//	format = "svg"
//	directed_arrows = true
//
// A seed of zero means "random".
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	ErrInvalidStiffness  = errors.New("stiffness must be non-negative")
	ErrInvalidRepulsion  = errors.New("repulsion must be non-negative")
	ErrInvalidDamping    = errors.New("damping must be in [0, 1]")
	ErrInvalidGravity    = errors.New("gravity must be non-negative")
	ErrInvalidDimensions = errors.New("dimensions must be 2 or 3")
	ErrInvalidTimeStep   = errors.New("time_step must be positive")
	ErrInvalidMaxSteps   = errors.New("max_steps must be positive")
	ErrInvalidThreshold  = errors.New("energy_threshold must be positive")
	ErrInvalidPadding    = errors.New("padding must be non-negative")
	ErrInvalidScale      = errors.New("scale must be positive")
	ErrInvalidFormat     = errors.New("format must be svg or dot")
	ErrUnknownKey        = errors.New("unknown config key")
)

// Render formats.
const (
	FormatSVG = "svg"
	FormatDOT = "dot"
)

// Formats lists the supported render formats.
var Formats = []string{FormatSVG, FormatDOT}

// Simulation holds the engine parameters and the settle loop limits.
type Simulation struct {
	Stiffness       float64 `toml:"stiffness"`
	Repulsion       float64 `toml:"repulsion"`
	Damping         float64 `toml:"damping"`
	Gravity         float64 `toml:"gravity"`
	Dimensions      int     `toml:"dimensions"`
	Seed            uint64  `toml:"seed"`
	TimeStep        float64 `toml:"time_step"`
	MaxSteps        int     `toml:"max_steps"`
	EnergyThreshold float64 `toml:"energy_threshold"`
	Padding         float64 `toml:"padding"`
}

// Render holds the node-link output settings.
type Render struct {
	// Scale converts layout units to Graphviz points.
	Scale          float64 `toml:"scale"`
	Format         string  `toml:"format"`
	DirectedArrows bool    `toml:"directed_arrows"`
}

// Config is the full file.
type Config struct {
	Simulation Simulation `toml:"simulation"`
	Render     Render     `toml:"render"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Simulation: Simulation{
			Stiffness:       400,
			Repulsion:       400,
			Damping:         0.5,
			Gravity:         0.4,
			Dimensions:      2,
			TimeStep:        0.03,
			MaxSteps:        10000,
			EnergyThreshold: 0.01,
			Padding:         0.07,
		},
		Render: Render{
			Scale:          20,
			Format:         FormatSVG,
			DirectedArrows: true,
		},
	}
}

// Load reads path over Default and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(data)
}

// Parse decodes TOML data over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field and returns the first violation.
func (c Config) Validate() error {
	s := c.Simulation
	switch {
	case s.Stiffness < 0:
		return ErrInvalidStiffness
	case s.Repulsion < 0:
		return ErrInvalidRepulsion
	case s.Damping < 0 || s.Damping > 1:
		return ErrInvalidDamping
	case s.Gravity < 0:
		return ErrInvalidGravity
	case s.Dimensions != 2 && s.Dimensions != 3:
		return ErrInvalidDimensions
	case s.TimeStep <= 0:
		return ErrInvalidTimeStep
	case s.MaxSteps <= 0:
		return ErrInvalidMaxSteps
	case s.EnergyThreshold <= 0:
		return ErrInvalidThreshold
	case s.Padding < 0:
		return ErrInvalidPadding
	}

	r := c.Render
	switch {
	case r.Scale <= 0:
		return ErrInvalidScale
	case !slices.Contains(Formats, r.Format):
		return ErrInvalidFormat
	}
	return nil
}
