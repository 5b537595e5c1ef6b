package graph

import "testing"

func TestMergeRemapsIDs(t *testing.T) {
	g1 := New()
	g1.CreateNodeLabeled("existing")

	g2 := New()
	x := g2.CreateNode(NodeData{Label: "x", Position: &Point{X: 1, Y: 2}})
	y := g2.CreateNodeLabeled("y")
	y.Pinned = true
	g2.CreateDirectedEdge(x, y, EdgeData{Label: "xy", Length: 7})

	l := &countingListener{}
	g1.AddListener(l)
	g1.Merge(g2)

	if g1.NodeCount() != 3 {
		t.Fatalf("NodeCount() = %d, want 3", g1.NodeCount())
	}
	if g1.EdgeCount() != 1 {
		t.Fatalf("EdgeCount() = %d, want 1", g1.EdgeCount())
	}
	if l.calls != 1 {
		t.Errorf("listener calls = %d, want 1", l.calls)
	}

	e := g1.Edges()[0]
	if e.Source.ID != "1" || e.Target.ID != "2" {
		t.Errorf("merged edge = %s -> %s, want 1 -> 2", e.Source.ID, e.Target.ID)
	}
	if e.Source.Data.OrigID != x.ID || e.Target.Data.OrigID != y.ID {
		t.Errorf("OrigIDs = %q, %q, want %q, %q",
			e.Source.Data.OrigID, e.Target.Data.OrigID, x.ID, y.ID)
	}
	if !g1.Contains(e.Source) || !g1.Contains(e.Target) {
		t.Error("merged edge endpoints are not g1's nodes")
	}
	if !e.Directed || e.Data.Length != 7 || e.Data.Label != "xy" {
		t.Errorf("edge data not preserved: %+v", e)
	}
	if !e.Target.Pinned {
		t.Error("pinned flag not copied")
	}

	// Positions are copied, not shared.
	e.Source.Data.Position.X = 100
	if x.Data.Position.X != 1 {
		t.Error("merge shares Position pointer with the source graph")
	}
	if g2.NodeCount() != 2 || g2.EdgeCount() != 1 {
		t.Error("merge modified the source graph")
	}
}

func TestFilterNodes(t *testing.T) {
	g := New()
	var nodes []*Node
	for _, label := range []string{"keep", "drop", "keep", "drop", "drop"} {
		nodes = append(nodes, g.CreateNodeLabeled(label))
	}
	g.CreateEdge(nodes[0], nodes[1], EdgeData{})
	g.CreateEdge(nodes[0], nodes[2], EdgeData{})

	g.FilterNodes(func(n *Node) bool { return n.Data.Label == "keep" })

	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	for _, n := range g.Nodes() {
		if n.Data.Label != "keep" {
			t.Errorf("node %s with label %q survived", n.ID, n.Data.Label)
		}
	}
}

func TestFilterEdges(t *testing.T) {
	g := New()
	a, b := g.CreateNodeLabeled("a"), g.CreateNodeLabeled("b")
	for i := 0; i < 4; i++ {
		g.CreateEdge(a, b, EdgeData{Length: float64(i)})
	}

	g.FilterEdges(func(e *Edge) bool { return e.Data.Length >= 2 })

	got := g.EdgesBetween(a, b)
	if len(got) != 2 {
		t.Fatalf("EdgesBetween has %d edges, want 2", len(got))
	}
	for _, e := range got {
		if e.Data.Length < 2 {
			t.Errorf("edge with length %v survived", e.Data.Length)
		}
	}
}
