package graph

// Merge copies every node and edge of other into g under fresh IDs.
//
// Each copied node records the ID it had in other as Data.OrigID, and edges
// are re-attached by looking their endpoints up through that back-reference.
// other is not modified. Listeners are notified once.
func (g *Graph) Merge(other *Graph) {
	byOrig := make(map[string]*Node, len(other.nodes))
	for _, on := range other.nodes {
		data := on.Data
		data.OrigID = on.ID
		if on.Data.Position != nil {
			p := *on.Data.Position
			data.Position = &p
		}
		n := g.newNode(data)
		n.Pinned = on.Pinned
		byOrig[n.Data.OrigID] = n
	}

	for _, oe := range other.edges {
		src, okS := byOrig[endpointID(oe.Source)]
		tgt, okT := byOrig[endpointID(oe.Target)]
		if !okS || !okT {
			continue
		}
		e, err := g.newEdge(src, tgt, oe.Data)
		if err != nil {
			continue
		}
		e.Directed = oe.Directed
	}

	g.notify()
}

// FilterNodes removes every node for which keep returns false, together with
// its edges. The nodes to drop are collected before any removal happens.
func (g *Graph) FilterNodes(keep func(*Node) bool) {
	var drop []*Node
	for _, n := range g.nodes {
		if !keep(n) {
			drop = append(drop, n)
		}
	}
	for _, n := range drop {
		g.RemoveNode(n)
	}
}

// FilterEdges removes every edge for which keep returns false.
// The edges to drop are collected before any removal happens.
func (g *Graph) FilterEdges(keep func(*Edge) bool) {
	var drop []*Edge
	for _, e := range g.edges {
		if !keep(e) {
			drop = append(drop, e)
		}
	}
	for _, e := range drop {
		g.RemoveEdge(e)
	}
}
