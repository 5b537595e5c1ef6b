// Package force implements a force-directed layout engine.
//
// # Overview
//
// An [Engine] attaches physical state to a [graph.Graph]: one [Particle] per
// node and one [Spring] per edge. Each call to [Engine.Calculate] advances the
// simulation by one time step in five fixed phases:
//
//  1. Coulomb repulsion between every unordered pair of nodes
//  2. Hooke attraction along every edge
//  3. Attraction of every free node toward the origin
//  4. Velocity integration with damping
//  5. Position integration, pinning nodes whose boxes collide
//
// Every force of a step is accumulated before any velocity changes, and a step
// always runs all five phases. The pairwise phases are O(n²) in node count.
//
// # Usage
//
//	g := graph.New()
//	a := g.CreateNodeLabeled("a")
//	b := g.CreateNodeLabeled("b")
//	g.CreateEdge(a, b, graph.EdgeData{})
//
//	e := force.New2D(g, 400, 400, 0.5)
//	for e.TotalEnergy() > 0.01 {
//	    e.Calculate(0.03)
//	}
//	e.EachNode(func(n *graph.Node, p *force.Particle[vector.Vec2]) {
//	    fmt.Println(n.Label(), p.Position)
//	})
//
// # Pinning
//
// A pinned node receives no forces and never moves. When exactly one side of a
// pair or spring is pinned, the free side takes the whole force instead of
// half of it. During position integration, a node whose collision box
// overlaps another node's box is pinned, together with that other node, and
// stays pinned for the rest of the engine's life even if it is later moved
// apart. Nodes with a zero [graph.Size] never collide.
//
// # Parallel Edges
//
// Several edges between the same two nodes, in either direction, do not add
// up: only the first edge whose spring is resolved carries stiffness, and the
// others resolve to a zero-length, zero-stiffness spring over the same
// particles.
//
// # Caches
//
// Particles and springs are created lazily and stored in dense slices keyed
// by [graph.Node.Index] and [graph.Edge.Index]. Removing a node from the graph
// does not drop its particle; re-adding a node with the same ID finds its old
// position. [Engine.Clear] drops both caches and empties the graph.
//
// # Dimensions
//
// The engine is generic over the vector type. [New2D] and [New3D] bind it to
// [vector.Vec2] and [vector.Vec3] through [Space2D] and [Space3D].
//
// Engine is not safe for concurrent use.
package force
