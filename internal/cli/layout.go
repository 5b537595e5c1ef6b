package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	ferrors "github.com/matzehuels/forcelayout/pkg/errors"
	fio "github.com/matzehuels/forcelayout/pkg/io"
	"github.com/matzehuels/forcelayout/pkg/observability"
	"github.com/matzehuels/forcelayout/pkg/pipeline"
)

// layoutOpts holds the command-line flags for the layout command.
type layoutOpts struct {
	output   string // output file (default: <input>.layout.json)
	initPath string // earlier layout whose positions seed this run
	strict   bool   // fail when the step limit is hit before convergence
	sim      simFlags
}

// layoutCommand creates the layout command for settling a graph file.
func (c *CLI) layoutCommand() *cobra.Command {
	var opts layoutOpts

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Settle a graph and write node positions",
		Long: `Settle a graph and write node positions.

The layout command loads a graph.json file, runs the force simulation until
the kinetic energy drops below the threshold or the step limit is reached, and
writes a layout.json file with one position per node and the padded bounding
box.

Settings come from --config (TOML) and are overridden by any flag given on the
command line. Use --init to continue from an earlier layout.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeGraphFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVar(&opts.initPath, "init", "", "layout.json whose positions seed the simulation")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit with an error when the layout does not converge")
	opts.sim.register(cmd, true)
	markFileFlag(cmd, "output", "json")
	markFileFlag(cmd, "init", "json")

	return cmd
}

// runLayout loads the graph, settles it, and writes the layout file.
func (c *CLI) runLayout(cmd *cobra.Command, input string, opts *layoutOpts) error {
	ctx := cmd.Context()

	cfg, err := opts.sim.resolve(cmd)
	if err != nil {
		return err
	}

	g, err := loadGraph(ctx, input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	if opts.initPath != "" {
		prev, err := fio.ImportLayout(opts.initPath)
		if err != nil {
			return fmt.Errorf("load initial layout %s: %w", opts.initPath, err)
		}
		n := fio.ApplyLayout(g, prev)
		loggerFromContext(ctx).Debug("seeded positions", "from", opts.initPath, "nodes", n)
	}

	base := fmt.Sprintf("Settling %d nodes in %dD...", g.NodeCount(), cfg.Simulation.Dimensions)
	spinner := newSpinnerWithContext(ctx, base)
	spinner.Start()

	simOpts := pipeline.FromConfig(cfg.Simulation)
	simOpts.OnStep = spinner.settleProgress(base)
	res, err := c.newRunner().Settle(ctx, g, simOpts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("settle: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = layoutPath(input)
	}
	if err := writeLayout(ctx, res.Layout(g), outputPath); err != nil {
		return err
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(g.NodeCount(), g.EdgeCount(), res)
	printDetail("run %s", res.ID)
	if !res.Converged {
		printWarning("Energy still above %g, raise --max-steps or continue with --init %s", cfg.Simulation.EnergyThreshold, outputPath)
		if opts.strict {
			return &ferrors.NotConvergedError{
				Steps:     res.Steps,
				Energy:    res.Energy,
				Threshold: cfg.Simulation.EnergyThreshold,
			}
		}
	}
	printNewline()
	printNextStep("Render", appName+" render "+input)

	return nil
}

// layoutPath derives the default layout output path from a graph path.
func layoutPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
}

// writeLayout exports l and reports the write to the graph hooks.
func writeLayout(ctx context.Context, l *fio.Layout, path string) error {
	err := fio.ExportLayout(l, path)
	observability.Graph().OnLayoutWrite(ctx, path, len(l.Nodes), err)
	if err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return nil
}
