// Package render groups the output renderers for settled layouts.
//
// # Overview
//
// Renderers take an [io.Layout] produced by the pipeline and turn it into a
// drawing. Positions are never recomputed here; the force engine decides
// where nodes go and a renderer only draws them.
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage writes Graphviz DOT with pinned node positions
// and renders it to SVG through the neato engine.
//
//	dot := nodelink.ToDOT(layout, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The watch command draws layouts on a terminal canvas instead; see
// internal/cli.
//
// [io.Layout]: github.com/matzehuels/forcelayout/pkg/io.Layout
// [nodelink]: github.com/matzehuels/forcelayout/pkg/render/nodelink
package render
