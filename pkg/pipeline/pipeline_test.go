package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/matzehuels/forcelayout/pkg/config"
	"github.com/matzehuels/forcelayout/pkg/graph"
	"github.com/matzehuels/forcelayout/pkg/render/nodelink"
)

func TestValidateAndSetDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}

	def := config.Default().Simulation
	if opts.Dimensions != def.Dimensions {
		t.Errorf("Dimensions = %d, want %d", opts.Dimensions, def.Dimensions)
	}
	if opts.TimeStep != def.TimeStep {
		t.Errorf("TimeStep = %v, want %v", opts.TimeStep, def.TimeStep)
	}
	if opts.MaxSteps != def.MaxSteps {
		t.Errorf("MaxSteps = %d, want %d", opts.MaxSteps, def.MaxSteps)
	}
	if opts.LogEvery != DefaultLogEvery {
		t.Errorf("LogEvery = %d, want %d", opts.LogEvery, DefaultLogEvery)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"four dimensions", Options{Dimensions: 4}},
		{"damping above one", Options{Damping: 2}},
		{"negative damping", Options{Damping: -0.1}},
		{"negative time step", Options{TimeStep: -1}},
		{"negative max steps", Options{MaxSteps: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateAndSetDefaults(); err == nil {
				t.Error("ValidateAndSetDefaults() should fail")
			}
		})
	}
}

func pair(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	a := g.CreateNode(graph.NodeData{Label: "a", Position: &graph.Point{X: -10}})
	b := g.CreateNode(graph.NodeData{Label: "b", Position: &graph.Point{X: 10}})
	if _, err := g.CreateDirectedEdge(a, b, graph.EdgeData{Length: 5}); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestSettleConverges(t *testing.T) {
	opts := DefaultOptions()
	opts.Stiffness, opts.Repulsion, opts.Gravity = 1, 0, 0
	opts.TimeStep = 0.05
	opts.Seed = 9

	res, err := NewRunner(nil).Settle(context.Background(), pair(t), opts)
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if !res.Converged {
		t.Errorf("Converged = false after %d steps, energy %v", res.Steps, res.Energy)
	}
	if res.Energy >= opts.EnergyThreshold {
		t.Errorf("Energy = %v, want below %v", res.Energy, opts.EnergyThreshold)
	}
	if res.ID == "" {
		t.Error("ID should be set")
	}
	if res.Dimensions != 2 {
		t.Errorf("Dimensions = %d, want 2", res.Dimensions)
	}
	if len(res.Positions) != 2 {
		t.Errorf("Positions has %d entries, want 2", len(res.Positions))
	}
	for id, p := range res.Positions {
		if p.X < res.Min.X || p.X > res.Max.X || p.Y < res.Min.Y || p.Y > res.Max.Y {
			t.Errorf("node %s at %+v outside box [%+v, %+v]", id, p, res.Min, res.Max)
		}
	}
}

func TestSettleReportsSampledSteps(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxSteps = 10
	opts.LogEvery = 4
	opts.EnergyThreshold = 1e-300

	var steps []int
	opts.OnStep = func(step int, energy float64) {
		if energy < 0 {
			t.Errorf("step %d: energy %v below zero", step, energy)
		}
		steps = append(steps, step)
	}
	if _, err := NewRunner(nil).Settle(context.Background(), pair(t), opts); err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if len(steps) != 2 || steps[0] != 4 || steps[1] != 8 {
		t.Errorf("OnStep steps = %v, want [4 8]", steps)
	}
}

func TestSettleStepLimitIsNotAnError(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxSteps = 3

	res, err := NewRunner(nil).Settle(context.Background(), pair(t), opts)
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if res.Converged {
		t.Error("Converged = true after 3 steps from a stretched spring")
	}
	if res.Steps != 3 {
		t.Errorf("Steps = %d, want 3", res.Steps)
	}
}

func TestSettleThreeDimensions(t *testing.T) {
	opts := DefaultOptions()
	opts.Dimensions = 3
	opts.MaxSteps = 10
	opts.Seed = 1

	res, err := NewRunner(nil).Settle(context.Background(), pair(t), opts)
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if res.Dimensions != 3 {
		t.Errorf("Dimensions = %d, want 3", res.Dimensions)
	}
}

func TestSettleCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(nil).Settle(ctx, pair(t), DefaultOptions())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Settle() error = %v, want context.Canceled", err)
	}
}

func TestResultLayout(t *testing.T) {
	g := pair(t)
	opts := DefaultOptions()
	opts.MaxSteps = 1

	res, err := NewRunner(nil).Settle(context.Background(), g, opts)
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}

	l := res.Layout(g)
	if l.RunID != res.ID || l.Steps != 1 || l.Generator == "" {
		t.Errorf("layout header = %+v", l)
	}
	if len(l.Nodes) != 2 || l.Nodes[0].ID != "0" || l.Nodes[0].Label != "a" {
		t.Errorf("layout nodes = %+v", l.Nodes)
	}
	if len(l.Edges) != 1 || !l.Edges[0].Directed {
		t.Errorf("layout edges = %+v", l.Edges)
	}
}

func TestRenderDOT(t *testing.T) {
	g := pair(t)
	opts := DefaultOptions()
	opts.MaxSteps = 1
	res, err := NewRunner(nil).Settle(context.Background(), g, opts)
	if err != nil {
		t.Fatal(err)
	}

	out, err := Render(context.Background(), res.Layout(g), config.FormatDOT, RenderOptions(config.Default().Render))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), `"0" -> "1";`) {
		t.Errorf("DOT missing directed edge:\n%s", out)
	}

	if _, err := Render(context.Background(), res.Layout(g), "png", nodelink.Options{}); err == nil {
		t.Error("Render(png) should fail")
	}
}

func TestEngineOptions(t *testing.T) {
	tests := []struct {
		name string
		seed uint64
		want int
	}{
		{"random seed", 0, 3},
		{"fixed seed", 5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Seed = tt.seed
			if got := len(opts.EngineOptions()); got != tt.want {
				t.Errorf("len(EngineOptions()) = %d, want %d", got, tt.want)
			}
		})
	}
}
