package graph

import (
	"errors"
	"maps"
	"slices"
	"strconv"
)

var (
	// ErrUnknownSourceNode is returned by [Graph.CreateEdge] when the source
	// node is nil or not part of the graph.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.CreateEdge] when the target
	// node is nil or not part of the graph.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Graph holds nodes, edges and the (source, target) adjacency index.
//
// The zero value is not usable - use New to create a graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	nodes     []*Node
	edges     []*Edge
	nodeSet   map[string]*Node
	edgeSet   map[string]*Edge
	adjacency map[string]map[string][]*Edge // source ID -> target ID -> edges

	nextNodeID int
	nextEdgeID int

	// Arena indices survive removal so a re-added ID gets its old slot back.
	nodeIndex map[string]int
	edgeIndex map[string]int

	listeners []Listener
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodeSet:   make(map[string]*Node),
		edgeSet:   make(map[string]*Edge),
		adjacency: make(map[string]map[string][]*Edge),
		nodeIndex: make(map[string]int),
		edgeIndex: make(map[string]int),
	}
}

// =============================================================================
// Mutation
// =============================================================================

// AddNode inserts n, or updates the node already registered under n.ID.
//
// On update the stored node takes over n's data and pinned flag and keeps its
// position in the insertion order, so edges holding the stored pointer stay
// valid. The canonical node is returned. Listeners are always notified.
func (g *Graph) AddNode(n *Node) *Node {
	stored := g.addNode(n)
	g.notify()
	return stored
}

func (g *Graph) addNode(n *Node) *Node {
	if existing, ok := g.nodeSet[n.ID]; ok {
		if existing != n {
			existing.Data = n.Data
			existing.Pinned = n.Pinned
		}
		return existing
	}
	idx, ok := g.nodeIndex[n.ID]
	if !ok {
		idx = len(g.nodeIndex)
		g.nodeIndex[n.ID] = idx
	}
	n.index = idx
	n.owner = g
	g.nodeSet[n.ID] = n
	g.nodes = append(g.nodes, n)
	return n
}

// AddEdge inserts e if no edge with the same ID exists and registers it under
// its (source, target) bucket. Listeners are always notified.
func (g *Graph) AddEdge(e *Edge) *Edge {
	stored := g.addEdge(e)
	g.notify()
	return stored
}

func (g *Graph) addEdge(e *Edge) *Edge {
	if existing, ok := g.edgeSet[e.ID]; ok {
		return existing
	}
	idx, ok := g.edgeIndex[e.ID]
	if !ok {
		idx = len(g.edgeIndex)
		g.edgeIndex[e.ID] = idx
	}
	e.index = idx
	e.owner = g
	g.edgeSet[e.ID] = e
	g.edges = append(g.edges, e)

	src, tgt := endpointID(e.Source), endpointID(e.Target)
	targets, ok := g.adjacency[src]
	if !ok {
		targets = make(map[string][]*Edge)
		g.adjacency[src] = targets
	}
	targets[tgt] = append(targets[tgt], e)
	return e
}

// CreateNode creates a node with the next free ID from the graph's counter.
// A non-positive mass is replaced with DefaultMass.
func (g *Graph) CreateNode(data NodeData) *Node {
	n := g.newNode(data)
	g.notify()
	return n
}

// CreateNodeLabeled creates a node carrying only a label.
func (g *Graph) CreateNodeLabeled(label string) *Node {
	return g.CreateNode(NodeData{Label: label})
}

func (g *Graph) newNode(data NodeData) *Node {
	if data.Mass <= 0 {
		data.Mass = DefaultMass
	}
	id := g.nextID(&g.nextNodeID, func(id string) bool { _, ok := g.nodeSet[id]; return ok })
	return g.addNode(NewNode(id, data))
}

// CreateEdge creates an undirected edge with the next free ID from the
// graph's edge counter. It returns a nil edge and ErrUnknownSourceNode or
// ErrUnknownTargetNode if an endpoint does not belong to the graph.
func (g *Graph) CreateEdge(source, target *Node, data EdgeData) (*Edge, error) {
	e, err := g.newEdge(source, target, data)
	if err != nil {
		return nil, err
	}
	g.notify()
	return e, nil
}

// CreateDirectedEdge is CreateEdge with the Directed flag set.
func (g *Graph) CreateDirectedEdge(source, target *Node, data EdgeData) (*Edge, error) {
	e, err := g.newEdge(source, target, data)
	if err != nil {
		return nil, err
	}
	e.Directed = true
	g.notify()
	return e, nil
}

func (g *Graph) newEdge(source, target *Node, data EdgeData) (*Edge, error) {
	if !g.Contains(source) {
		return nil, ErrUnknownSourceNode
	}
	if !g.Contains(target) {
		return nil, ErrUnknownTargetNode
	}
	id := g.nextID(&g.nextEdgeID, func(id string) bool { _, ok := g.edgeSet[id]; return ok })
	return g.addEdge(NewEdge(id, source, target, data)), nil
}

// nextID advances counter past IDs already taken by AddNode/AddEdge callers.
func (g *Graph) nextID(counter *int, taken func(string) bool) string {
	for {
		id := strconv.Itoa(*counter)
		*counter++
		if !taken(id) {
			return id
		}
	}
}

// RemoveNode removes n and every edge touching it. Listeners are notified
// once for the detached edges and once for the node removal.
func (g *Graph) RemoveNode(n *Node) {
	delete(g.nodeSet, n.ID)
	g.nodes = slices.DeleteFunc(g.nodes, func(x *Node) bool { return x.ID == n.ID })
	g.DetachNode(n)
	g.notify()
}

// DetachNode removes every edge touching n but keeps the node.
func (g *Graph) DetachNode(n *Node) {
	for _, e := range slices.Clone(g.edges) {
		if e.Touches(n) {
			g.removeEdge(e)
		}
	}
	g.notify()
}

// RemoveEdge removes e from the edge list and the adjacency index, pruning
// the bucket and source entry when they become empty.
func (g *Graph) RemoveEdge(e *Edge) {
	g.removeEdge(e)
	g.notify()
}

func (g *Graph) removeEdge(e *Edge) {
	stored, ok := g.edgeSet[e.ID]
	if !ok {
		return
	}
	delete(g.edgeSet, e.ID)
	g.edges = slices.DeleteFunc(g.edges, func(x *Edge) bool { return x.ID == e.ID })

	src, tgt := endpointID(stored.Source), endpointID(stored.Target)
	targets, ok := g.adjacency[src]
	if !ok {
		return
	}
	bucket := slices.DeleteFunc(targets[tgt], func(x *Edge) bool { return x.ID == e.ID })
	if len(bucket) == 0 {
		delete(targets, tgt)
	} else {
		targets[tgt] = bucket
	}
	if len(targets) == 0 {
		delete(g.adjacency, src)
	}
}

// Clear removes all nodes and edges. ID counters, arena indices and
// listeners are kept. Listeners are notified once.
func (g *Graph) Clear() {
	g.nodes = nil
	g.edges = nil
	g.nodeSet = make(map[string]*Node)
	g.edgeSet = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string][]*Edge)
	g.notify()
}

// =============================================================================
// Queries
// =============================================================================

// Node returns the node with the given ID and true, or nil and false.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodeSet[id]
	return n, ok
}

// Edge returns the edge with the given ID and true, or nil and false.
func (g *Graph) Edge(id string) (*Edge, bool) {
	e, ok := g.edgeSet[id]
	return e, ok
}

// Contains reports whether n is the node registered under n.ID.
func (g *Graph) Contains(n *Node) bool {
	if n == nil {
		return false
	}
	stored, ok := g.nodeSet[n.ID]
	return ok && stored == n
}

// Owns reports whether n was added to this graph at some point. Unlike
// Contains it stays true after n is removed.
func (g *Graph) Owns(n *Node) bool { return n != nil && n.owner == g && n.index >= 0 }

// OwnsEdge is Owns for edges.
func (g *Graph) OwnsEdge(e *Edge) bool { return e != nil && e.owner == g && e.index >= 0 }

// Nodes returns the nodes in insertion order. The slice is a copy; the
// nodes are shared with the graph.
func (g *Graph) Nodes() []*Node { return slices.Clone(g.nodes) }

// Edges returns the edges in insertion order. The slice is a copy; the
// edges are shared with the graph.
func (g *Graph) Edges() []*Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// EdgesBetween returns the edges from a to b, or nil if there are none.
// Edges from b to a are not included.
func (g *Graph) EdgesBetween(a, b *Node) []*Edge {
	if a == nil || b == nil {
		return nil
	}
	bucket := g.adjacency[a.ID][b.ID]
	if len(bucket) == 0 {
		return nil
	}
	return slices.Clone(bucket)
}

// NodeEdges returns every edge touching n: outgoing buckets first, then
// incoming buckets, each visited in sorted ID order. A self-loop appears in
// both passes.
func (g *Graph) NodeEdges(n *Node) []*Edge {
	var out []*Edge
	if targets, ok := g.adjacency[n.ID]; ok {
		for _, tgt := range slices.Sorted(maps.Keys(targets)) {
			out = append(out, targets[tgt]...)
		}
	}
	for _, src := range slices.Sorted(maps.Keys(g.adjacency)) {
		out = append(out, g.adjacency[src][n.ID]...)
	}
	return out
}

func endpointID(n *Node) string {
	if n == nil {
		return ""
	}
	return n.ID
}
