package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/forcelayout/pkg/config"
	ferrors "github.com/matzehuels/forcelayout/pkg/errors"
	"github.com/matzehuels/forcelayout/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string  // output file; its extension picks the format
	scale    float64 // layout units to Graphviz points
	noArrows bool    // draw directed edges without arrowheads
	sim      simFlags
}

// renderCommand creates the render command for drawing a settled graph.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [graph.json]",
		Short: "Settle a graph in 2D and draw it as SVG or DOT",
		Long: `Settle a graph in 2D and draw it as SVG or DOT.

The graph is settled exactly as with 'layout' and the positions are pinned in
a DOT file. With an .svg output the DOT file is drawn by the Graphviz neato
engine; with a .dot output the DOT source is written as is.

Without -o the format comes from the [render] table of --config (svg by
default) and the output is written next to the input.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeGraphFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}

	def := config.Default().Render
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, .svg or .dot (default: <input>.<format>)")
	cmd.Flags().Float64Var(&opts.scale, "scale", def.Scale, "multiplier from layout units to drawing units")
	cmd.Flags().BoolVar(&opts.noArrows, "no-arrows", false, "draw directed edges without arrowheads")
	opts.sim.register(cmd, false)
	markFileFlag(cmd, "output", config.Formats...)

	return cmd
}

// runRender settles the graph in the plane and writes the drawing.
func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()

	cfg, err := opts.sim.resolve(cmd)
	if err != nil {
		return err
	}
	cfg.Simulation.Dimensions = 2
	if cmd.Flags().Changed("scale") {
		cfg.Render.Scale = opts.scale
	}
	if opts.noArrows {
		cfg.Render.DirectedArrows = false
	}
	if err := cfg.Validate(); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeInvalidConfig, err, "invalid settings")
	}

	outputPath, format, err := renderTarget(input, opts.output, cfg.Render.Format)
	if err != nil {
		return err
	}

	g, err := loadGraph(ctx, input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	base := fmt.Sprintf("Settling %d nodes...", g.NodeCount())
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

	data, err := pipeline.Render(ctx, res.Layout(g), format, pipeline.RenderOptions(cfg.Render))
	if err != nil {
		return ferrors.Wrap(ferrors.ErrCodeRenderFailed, err, "render %s", outputPath)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Rendered %s", strings.ToUpper(format))
	printFile(outputPath)
	printStats(g.NodeCount(), g.EdgeCount(), res)
	if !res.Converged {
		printWarning("Step limit reached, the drawing may not be at rest")
	}

	return nil
}

// renderTarget picks the output path and format. An explicit output decides
// the format by its extension; otherwise the configured format is used and the
// file is written next to the input.
func renderTarget(input, output, format string) (string, string, error) {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format, format, nil
	}
	ext, err := ferrors.ValidateExtension(output, config.Formats...)
	if err != nil {
		return "", "", err
	}
	return output, ext, nil
}
