// Package pipeline runs a force layout to rest and turns the result into
// files.
//
// This package implements the load → settle → render flow shared by the
// layout, render and watch commands, so every entry point drives the engine
// the same way.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Settle: Build a 2D or 3D engine over a graph and call Calculate until
//     the kinetic energy drops below a threshold or a step limit is hit
//  2. Render: Write the settled layout as JSON, DOT or SVG
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.FromConfig(cfg.Simulation)
//	result, err := runner.Settle(ctx, g, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	layout := result.Layout(g)
//	svg, err := pipeline.Render(ctx, layout, config.FormatSVG, nodelink.Options{})
package pipeline

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/forcelayout/pkg/config"
	"github.com/matzehuels/forcelayout/pkg/force"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultLogEvery is the number of steps between progress log lines,
// OnSimulationStep hook calls and Options.OnStep callbacks.
const DefaultLogEvery = 100

// =============================================================================
// Options - Settle Configuration
// =============================================================================

// Options contains all parameters of a settle run.
// Zero values of Dimensions, TimeStep, MaxSteps, EnergyThreshold and
// LogEvery are replaced with defaults; the physics parameters are used as
// given, so zero disables the corresponding force.
type Options struct {
	Dimensions int     `json:"dimensions"`
	Stiffness  float64 `json:"stiffness"`
	Repulsion  float64 `json:"repulsion"`
	Damping    float64 `json:"damping"`
	Gravity    float64 `json:"gravity"`
	Padding    float64 `json:"padding"`
	// Seed makes initial placement reproducible. Zero picks a random seed.
	Seed uint64 `json:"seed,omitempty"`

	TimeStep        float64 `json:"time_step"`
	MaxSteps        int     `json:"max_steps"`
	EnergyThreshold float64 `json:"energy_threshold"`
	LogEvery        int     `json:"log_every,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
	// OnStep, when set, is called every LogEvery steps with the step count
	// and the energy after it.
	OnStep func(step int, energy float64) `json:"-"`
}

// FromConfig builds settle options from the simulation section of a config
// file.
func FromConfig(s config.Simulation) Options {
	return Options{
		Dimensions:      s.Dimensions,
		Stiffness:       s.Stiffness,
		Repulsion:       s.Repulsion,
		Damping:         s.Damping,
		Gravity:         s.Gravity,
		Padding:         s.Padding,
		Seed:            s.Seed,
		TimeStep:        s.TimeStep,
		MaxSteps:        s.MaxSteps,
		EnergyThreshold: s.EnergyThreshold,
	}
}

// DefaultOptions returns FromConfig(config.Default().Simulation).
func DefaultOptions() Options {
	return FromConfig(config.Default().Simulation)
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults fills zero-valued loop settings and checks the rest.
func (o *Options) ValidateAndSetDefaults() error {
	def := config.Default().Simulation
	if o.Dimensions == 0 {
		o.Dimensions = def.Dimensions
	}
	if o.TimeStep == 0 {
		o.TimeStep = def.TimeStep
	}
	if o.MaxSteps == 0 {
		o.MaxSteps = def.MaxSteps
	}
	if o.EnergyThreshold == 0 {
		o.EnergyThreshold = def.EnergyThreshold
	}
	if o.LogEvery <= 0 {
		o.LogEvery = DefaultLogEvery
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}

	switch {
	case o.Dimensions != 2 && o.Dimensions != 3:
		return fmt.Errorf("dimensions must be 2 or 3, got %d", o.Dimensions)
	case o.Damping < 0 || o.Damping > 1:
		return fmt.Errorf("damping must be in [0, 1], got %v", o.Damping)
	case o.TimeStep < 0:
		return fmt.Errorf("time step must be positive, got %v", o.TimeStep)
	case o.MaxSteps < 0:
		return fmt.Errorf("max steps must be positive, got %d", o.MaxSteps)
	case o.EnergyThreshold < 0:
		return fmt.Errorf("energy threshold must be positive, got %v", o.EnergyThreshold)
	}
	return nil
}

// EngineOptions returns the force options matching o, for callers that drive
// an engine themselves instead of settling it.
func (o *Options) EngineOptions() []force.Option {
	engineOpts := []force.Option{
		force.WithGravity(o.Gravity),
		force.WithMinEnergyThreshold(o.EnergyThreshold),
		force.WithPadding(o.Padding),
	}
	if o.Seed != 0 {
		engineOpts = append(engineOpts, force.WithSeed(o.Seed))
	}
	return engineOpts
}
