package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/forcelayout/pkg/buildinfo"
	"github.com/matzehuels/forcelayout/pkg/force"
	"github.com/matzehuels/forcelayout/pkg/graph"
	fio "github.com/matzehuels/forcelayout/pkg/io"
	"github.com/matzehuels/forcelayout/pkg/observability"
	"github.com/matzehuels/forcelayout/pkg/vector"
)

// Runner settles graphs.
//
// The Runner is stateless except for the logger. Multiple goroutines can use
// the same Runner on different graphs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Result describes a finished settle run.
type Result struct {
	// ID identifies the run in logs, hooks and layout files.
	ID         string
	Dimensions int
	Steps      int
	Energy     float64
	// Converged is false when MaxSteps ran out first. That is not an error.
	Converged bool
	Duration  time.Duration

	// Positions maps node IDs to final positions. Z is zero in 2D.
	Positions map[string]graph.Point
	// Min and Max are the padded bounding box corners.
	Min, Max graph.Point
}

// Settle builds an engine over g and steps it until the total energy drops
// below opts.EnergyThreshold or opts.MaxSteps steps have run. ctx is checked
// between steps; cancellation returns ctx.Err() wrapped. opts.Logger, when
// set, takes precedence over the runner's logger.
//
// Settle mutates g only through collision pinning.
func (r *Runner) Settle(ctx context.Context, g *graph.Graph, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.logger()
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	id := uuid.New().String()
	hooks := observability.Simulation()
	hooks.OnSimulationStart(ctx, id, opts.Dimensions, g.NodeCount(), g.EdgeCount())
	opts.Logger.Info("settling layout",
		"run", id[:8],
		"dimensions", opts.Dimensions,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount())

	engineOpts := opts.EngineOptions()
	start := time.Now()
	var (
		res *Result
		err error
	)
	if opts.Dimensions == 3 {
		res, err = settle(ctx, force.New3D(g, opts.Stiffness, opts.Repulsion, opts.Damping, engineOpts...), id, opts)
	} else {
		res, err = settle(ctx, force.New2D(g, opts.Stiffness, opts.Repulsion, opts.Damping, engineOpts...), id, opts)
	}
	duration := time.Since(start)

	if err != nil {
		hooks.OnSimulationComplete(ctx, id, 0, 0, false, duration, err)
		return nil, err
	}
	res.Duration = duration
	hooks.OnSimulationComplete(ctx, id, res.Steps, res.Energy, res.Converged, duration, nil)

	if res.Converged {
		opts.Logger.Info("layout settled",
			"steps", res.Steps,
			"energy", res.Energy,
			"duration", duration)
	} else {
		opts.Logger.Warn("step limit reached before convergence",
			"steps", res.Steps,
			"energy", res.Energy,
			"threshold", opts.EnergyThreshold)
	}
	return res, nil
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.Default()
	}
	return r.Logger
}

func settle[V vector.Vector[V]](ctx context.Context, e *force.Engine[V], id string, opts Options) (*Result, error) {
	hooks := observability.Simulation()
	steps := 0
	energy := e.TotalEnergy()
	converged := false

	for steps < opts.MaxSteps {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("settle interrupted after %d steps: %w", steps, err)
		}
		e.Calculate(opts.TimeStep)
		steps++
		energy = e.TotalEnergy()

		if steps%opts.LogEvery == 0 {
			opts.Logger.Debug("step", "step", steps, "energy", energy)
			hooks.OnSimulationStep(ctx, id, steps, energy)
			if opts.OnStep != nil {
				opts.OnStep(steps, energy)
			}
		}
		if energy < opts.EnergyThreshold {
			converged = true
			break
		}
	}

	space := e.Space()
	positions := make(map[string]graph.Point, e.Graph().NodeCount())
	e.EachNode(func(n *graph.Node, p *force.Particle[V]) {
		positions[n.ID] = space.ToPoint(p.Position)
	})
	box := e.BoundingBox()

	return &Result{
		ID:         id,
		Dimensions: space.Dimensions(),
		Steps:      steps,
		Energy:     energy,
		Converged:  converged,
		Positions:  positions,
		Min:        space.ToPoint(box.BottomLeftFront),
		Max:        space.ToPoint(box.TopRightBack),
	}, nil
}

// Layout converts the result into file form, listing nodes and edges of g in
// insertion order. Nodes without a recorded position are skipped.
func (r *Result) Layout(g *graph.Graph) *fio.Layout {
	l := &fio.Layout{
		Generator:  buildinfo.Generator(),
		RunID:      r.ID,
		Dimensions: r.Dimensions,
		Steps:      r.Steps,
		Energy:     r.Energy,
		Converged:  r.Converged,
		Box:        fio.Box{Min: toFilePoint(r.Min), Max: toFilePoint(r.Max)},
	}
	for _, n := range g.Nodes() {
		p, ok := r.Positions[n.ID]
		if !ok {
			continue
		}
		l.Nodes = append(l.Nodes, fio.PlacedNode{
			ID:       n.ID,
			Label:    n.Data.Label,
			Position: toFilePoint(p),
			Pinned:   n.Pinned,
		})
	}
	for _, e := range g.Edges() {
		l.Edges = append(l.Edges, fio.PlacedEdge{
			Source:   e.Source.ID,
			Target:   e.Target.ID,
			Directed: e.Directed,
		})
	}
	return l
}

func toFilePoint(p graph.Point) fio.Point {
	return fio.Point{X: p.X, Y: p.Y, Z: p.Z}
}
