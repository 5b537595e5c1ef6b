package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/forcelayout/pkg/buildinfo"
	"github.com/matzehuels/forcelayout/pkg/config"
	ferrors "github.com/matzehuels/forcelayout/pkg/errors"
	"github.com/matzehuels/forcelayout/pkg/graph"
	fio "github.com/matzehuels/forcelayout/pkg/io"
	"github.com/matzehuels/forcelayout/pkg/observability"
	"github.com/matzehuels/forcelayout/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and completion scripts.
const appName = "forcelayout"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Forcelayout arranges graphs with a force-directed simulation",
		Long:         `Forcelayout settles node-link graphs with springs, repulsion and damping, then writes the positions as a layout file, a Graphviz DOT file or an SVG.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// simFlags holds the simulation flags shared by layout, render and watch.
// A flag only overrides the config file when it was set on the command line.
type simFlags struct {
	configPath string
	dimensions int
	stiffness  float64
	repulsion  float64
	damping    float64
	gravity    float64
	seed       uint64
	maxSteps   int
	threshold  float64
	timeStep   float64
}

// register binds the flags to cmd. Commands that only work in the plane leave
// out --dimensions.
func (f *simFlags) register(cmd *cobra.Command, withDimensions bool) {
	def := config.Default().Simulation

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "TOML config file ([simulation] and [render] tables)")
	if withDimensions {
		cmd.Flags().IntVarP(&f.dimensions, "dimensions", "d", def.Dimensions, "layout dimensions: 2 or 3")
	}
	cmd.Flags().Float64Var(&f.stiffness, "stiffness", def.Stiffness, "spring stiffness")
	cmd.Flags().Float64Var(&f.repulsion, "repulsion", def.Repulsion, "repulsion constant between node pairs")
	cmd.Flags().Float64Var(&f.damping, "damping", def.Damping, "velocity damping in [0, 1]")
	cmd.Flags().Float64Var(&f.gravity, "gravity", def.Gravity, "attraction toward the origin")
	cmd.Flags().Uint64Var(&f.seed, "seed", def.Seed, "seed for initial placement (0 picks one at random)")
	cmd.Flags().IntVar(&f.maxSteps, "max-steps", def.MaxSteps, "step limit before giving up on convergence")
	cmd.Flags().Float64Var(&f.threshold, "threshold", def.EnergyThreshold, "kinetic energy below which the layout is settled")
	cmd.Flags().Float64Var(&f.timeStep, "dt", def.TimeStep, "time step per simulation step")

	registerSimCompletions(cmd)
}

// resolve loads the config file, if any, and applies the flags that were set.
func (f *simFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	s := &cfg.Simulation
	if flags.Changed("dimensions") {
		s.Dimensions = f.dimensions
	}
	if flags.Changed("stiffness") {
		s.Stiffness = f.stiffness
	}
	if flags.Changed("repulsion") {
		s.Repulsion = f.repulsion
	}
	if flags.Changed("damping") {
		s.Damping = f.damping
	}
	if flags.Changed("gravity") {
		s.Gravity = f.gravity
	}
	if flags.Changed("seed") {
		s.Seed = f.seed
	}
	if flags.Changed("max-steps") {
		s.MaxSteps = f.maxSteps
	}
	if flags.Changed("threshold") {
		s.EnergyThreshold = f.threshold
	}
	if flags.Changed("dt") {
		s.TimeStep = f.timeStep
	}

	if err := cfg.Validate(); err != nil {
		return cfg, ferrors.Wrap(ferrors.ErrCodeInvalidConfig, err, "invalid settings")
	}
	return cfg, nil
}

// loadConfig returns the defaults when path is empty.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	if _, err := ferrors.ValidateExtension(path, "toml"); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, ferrors.Wrap(ferrors.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	return cfg, nil
}

// loadGraph reads a graph file and reports it to the graph hooks.
func loadGraph(ctx context.Context, path string) (*graph.Graph, error) {
	if _, err := ferrors.ValidateExtension(path, "json"); err != nil {
		return nil, err
	}

	prog := newProgress(loggerFromContext(ctx))
	g, err := fio.ImportGraph(path)
	if err != nil {
		observability.Graph().OnGraphLoad(ctx, path, 0, 0, prog.elapsed(), err)
		return nil, err
	}
	observability.Graph().OnGraphLoad(ctx, path, g.NodeCount(), g.EdgeCount(), prog.elapsed(), nil)

	prog.done("loaded graph", "path", path, "nodes", g.NodeCount(), "edges", g.EdgeCount())
	return g, nil
}
