package graph

// Defaults applied by the graph when data leaves them unset.
const (
	// DefaultMass is the mass given to nodes created with a non-positive mass.
	DefaultMass = 1.0

	// DefaultEdgeLength is the spring rest length used when EdgeData.Length is zero.
	DefaultEdgeLength = 1.0
)

// Point is an initial position. Two-dimensional layouts ignore Z.
type Point struct {
	X, Y, Z float64
}

// Size is the extent of a node's shape, used for collision boxes.
// A zero extent on any axis disables collisions for that node.
type Size struct {
	Width, Height, Depth float64
}

// NodeData is the payload a collaborator attaches to a node.
type NodeData struct {
	Label string
	// Mass scales the node's response to forces. It is read on every force
	// application, so changing it takes effect immediately.
	Mass float64
	// Position, when set, is used instead of a random initial placement.
	Position *Point
	Size     Size
	// Pinned is copied to Node.Pinned when the node is created.
	Pinned bool
	// OrigID is the node's ID in the graph it was merged or imported from.
	OrigID string
}

// EdgeData is the payload a collaborator attaches to an edge.
type EdgeData struct {
	Label string
	// Length is the spring rest length. Zero selects DefaultEdgeLength.
	Length float64
}

// RestLength returns Length, or DefaultEdgeLength when Length is unset.
func (d EdgeData) RestLength() float64 {
	if d.Length == 0 {
		return DefaultEdgeLength
	}
	return d.Length
}

// Node is a graph vertex.
//
// Pinned excludes the node from force application and movement. The layout
// engine may also set it when the node collides with another one.
type Node struct {
	ID     string
	Data   NodeData
	Pinned bool

	index int
	owner *Graph
}

// NewNode returns a detached node. It has no index until it is added to a
// graph with Graph.AddNode.
func NewNode(id string, data NodeData) *Node {
	return &Node{ID: id, Data: data, Pinned: data.Pinned, index: -1}
}

// Index returns the node's dense arena index, or -1 if the node was never
// added to a graph.
func (n *Node) Index() int { return n.index }

// Label returns the data label, falling back to the ID.
func (n *Node) Label() string {
	if n.Data.Label != "" {
		return n.Data.Label
	}
	return n.ID
}

// Edge connects Source to Target. Order matters for spring direction and for
// adjacency lookups; Directed is cosmetic and does not affect forces.
type Edge struct {
	ID       string
	Source   *Node
	Target   *Node
	Directed bool
	Data     EdgeData

	index int
	owner *Graph
}

// NewEdge returns a detached edge. It has no index until it is added to a
// graph with Graph.AddEdge.
func NewEdge(id string, source, target *Node, data EdgeData) *Edge {
	return &Edge{ID: id, Source: source, Target: target, Data: data, index: -1}
}

// Index returns the edge's dense arena index, or -1 if the edge was never
// added to a graph.
func (e *Edge) Index() int { return e.index }

// Touches reports whether n is either endpoint of e.
func (e *Edge) Touches(n *Node) bool {
	return (e.Source != nil && e.Source.ID == n.ID) || (e.Target != nil && e.Target.ID == n.ID)
}
