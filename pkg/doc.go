// Package pkg provides the libraries behind forcelayout, a force-directed
// graph layout engine.
//
// # Overview
//
// Nodes behave like charged particles that repel each other, edges behave
// like springs, and a damped simulation moves the particles until the system
// comes to rest. The result is a 2D or 3D position for every node. The pkg
// directory is organized into three areas:
//
//  1. Engine - vectors, graph and force simulation
//  2. Files - graph, layout and config file formats
//  3. Orchestration - settle-to-convergence runner and renderers
//
// # Architecture
//
// The typical data flow:
//
//	graph.json
//	     ↓
//	[io] ImportGraph (nodes, edges, masses, pins)
//	     ↓
//	[pipeline] Runner.Settle → [force] Engine.Calculate per step
//	     ↓
//	[io] Layout (positions + bounding box)
//	     ↓
//	layout.json / DOT / SVG
//
// # Quick Start
//
// Settle a small graph directly with the engine:
//
//	g := graph.New()
//	a := g.CreateNodeLabeled("a")
//	b := g.CreateNodeLabeled("b")
//	g.CreateEdge(a, b, graph.EdgeData{Length: 2})
//
//	e := force.New2D(g, 400, 400, 0.5)
//	for !e.Converged() {
//	    e.Calculate(0.03)
//	}
//	e.EachNode(func(n *graph.Node, p *force.Particle[vector.Vec2]) {
//	    fmt.Println(n.Label(), p.Position)
//	})
//
// # Main Packages
//
// ## Engine
//
// [vector] - Vec2 and Vec3 backed by gonum's r2 and r3, plus axis-aligned
// bounding boxes.
//
// [graph] - Mutable graph with per-graph id counters, an adjacency index,
// listeners, filtering and merging.
//
// [force] - The simulation: particles, springs, Coulomb repulsion, Hooke
// attraction, gravity, damping and collision pinning.
//
// ## Files
//
// [io] - JSON graph and layout files.
//
// [config] - TOML simulation and render settings.
//
// ## Orchestration
//
// [pipeline] - Settles a graph to rest with logging, hooks and cancellation,
// then converts the result to a layout or a drawing.
//
// [render/nodelink] - DOT export with pinned positions and SVG rendering via
// Graphviz.
//
// ## Support
//
// [errors] - Coded errors and input validation.
//
// [observability] - Hooks for simulation, graph file and render events.
//
// [buildinfo] - Version information injected at build time.
package pkg
