package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
}

func TestParsePartial(t *testing.T) {
	cfg, err := Parse([]byte(`
[simulation]
damping = 0.25
dimensions = 3
seed = 42

[render]
format = "dot"
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	def := Default()
	if cfg.Simulation.Damping != 0.25 {
		t.Errorf("Damping = %v, want 0.25", cfg.Simulation.Damping)
	}
	if cfg.Simulation.Dimensions != 3 {
		t.Errorf("Dimensions = %v, want 3", cfg.Simulation.Dimensions)
	}
	if cfg.Simulation.Seed != 42 {
		t.Errorf("Seed = %v, want 42", cfg.Simulation.Seed)
	}
	if cfg.Simulation.Stiffness != def.Simulation.Stiffness {
		t.Errorf("Stiffness = %v, want default %v", cfg.Simulation.Stiffness, def.Simulation.Stiffness)
	}
	if cfg.Render.Format != FormatDOT {
		t.Errorf("Format = %q, want %q", cfg.Render.Format, FormatDOT)
	}
	if cfg.Render.DirectedArrows != def.Render.DirectedArrows {
		t.Errorf("DirectedArrows = %v, want default", cfg.Render.DirectedArrows)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"negative stiffness", "[simulation]\nstiffness = -1.0", ErrInvalidStiffness},
		{"negative repulsion", "[simulation]\nrepulsion = -1.0", ErrInvalidRepulsion},
		{"damping above one", "[simulation]\ndamping = 1.5", ErrInvalidDamping},
		{"negative gravity", "[simulation]\ngravity = -0.1", ErrInvalidGravity},
		{"four dimensions", "[simulation]\ndimensions = 4", ErrInvalidDimensions},
		{"zero time step", "[simulation]\ntime_step = 0.0", ErrInvalidTimeStep},
		{"zero max steps", "[simulation]\nmax_steps = 0", ErrInvalidMaxSteps},
		{"zero threshold", "[simulation]\nenergy_threshold = 0.0", ErrInvalidThreshold},
		{"negative padding", "[simulation]\npadding = -0.5", ErrInvalidPadding},
		{"zero scale", "[render]\nscale = 0.0", ErrInvalidScale},
		{"png format", "[render]\nformat = \"png\"", ErrInvalidFormat},
		{"unknown key", "[simulation]\nstifness = 1.0", ErrUnknownKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("[simulation\n")); err == nil {
		t.Error("Parse() of malformed TOML should fail")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.toml")
	if err := os.WriteFile(path, []byte("[simulation]\nrepulsion = 10.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulation.Repulsion != 10 {
		t.Errorf("Repulsion = %v, want 10", cfg.Simulation.Repulsion)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}
