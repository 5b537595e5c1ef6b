// Package nodelink renders computed layouts as node-link diagrams.
//
// # Overview
//
// This package turns an [io.Layout] into Graphviz DOT where every node carries
// a pinned pos attribute, then renders it with the neato engine. Graphviz
// does not move the nodes; it only draws boxes, labels and edge splines at the
// positions the force engine computed.
//
// # Usage
//
//	dot := nodelink.ToDOT(layout, nodelink.Options{Scale: 20, DirectedArrows: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Coordinates
//
// Layout units are multiplied by [Options.Scale] and written as points
// (inputscale=72). Only X and Y are used; 3D layouts are projected onto the
// XY plane.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. No external Graphviz install is needed.
package nodelink
