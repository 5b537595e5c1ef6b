package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/forcelayout/pkg/config"
	fio "github.com/matzehuels/forcelayout/pkg/io"
	"github.com/matzehuels/forcelayout/pkg/render/nodelink"
)

// Render generates a node-link artifact for a settled layout in the given
// format: config.FormatDOT returns the DOT source, config.FormatSVG renders
// it through Graphviz.
func Render(ctx context.Context, l *fio.Layout, format string, opts nodelink.Options) ([]byte, error) {
	dot := nodelink.ToDOT(l, opts)

	switch format {
	case config.FormatDOT:
		return []byte(dot), nil
	case config.FormatSVG:
		svg, err := nodelink.RenderSVG(ctx, dot)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		return svg, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// RenderOptions builds node-link options from the render section of a config
// file.
func RenderOptions(r config.Render) nodelink.Options {
	return nodelink.Options{
		Scale:          r.Scale,
		DirectedArrows: r.DirectedArrows,
	}
}
