// Package graph provides the mutable node/edge graph that the force-directed
// layout engine simulates.
//
// # Overview
//
// A [Graph] owns its nodes and edges. Nodes and edges are identified by string
// IDs that the graph assigns from per-instance counters ("0", "1", ...) when
// they are created with [Graph.CreateNode] and [Graph.CreateEdge]. Each node and
// edge also receives a dense integer index ([Node.Index], [Edge.Index]) that the
// simulation uses to key its particle and spring arenas. An index is tied to an
// ID for the lifetime of the graph: removing a node and adding it back with the
// same ID restores the same index.
//
//	g := graph.New()
//	a := g.CreateNodeLabeled("a")
//	b := g.CreateNodeLabeled("b")
//	e, err := g.CreateEdge(a, b, graph.EdgeData{Length: 50})
//
// # Adjacency
//
// Edges are indexed by (source ID, target ID). [Graph.EdgesBetween] returns the
// edges of one ordered pair, or nil when there are none. Empty buckets are
// pruned eagerly, so a nil result always means "no edges". Parallel edges
// (same ordered pair) and anti-parallel edges (reversed pair) are both allowed;
// the layout engine makes sure they do not multiply spring forces.
//
// # Listeners
//
// Every structural mutation notifies registered [Listener] values
// synchronously, before the mutating call returns. [Graph.RemoveNode]
// notifies twice: once after its incident edges are detached and once after
// the node itself is gone.
//
// # Concurrency
//
// Graph is not safe for concurrent use. The layout engine assumes a single
// calling goroutine.
package graph
