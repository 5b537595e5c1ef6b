package graph

import (
	"errors"
	"testing"
)

type countingListener struct{ calls int }

func (l *countingListener) GraphChanged() { l.calls++ }

func TestCreateNodeAssignsSequentialIDs(t *testing.T) {
	g := New()
	a := g.CreateNodeLabeled("a")
	b := g.CreateNode(NodeData{Label: "b", Mass: 3})

	if a.ID != "0" || b.ID != "1" {
		t.Errorf("IDs = %q, %q, want \"0\", \"1\"", a.ID, b.ID)
	}
	if a.Index() != 0 || b.Index() != 1 {
		t.Errorf("indices = %d, %d, want 0, 1", a.Index(), b.Index())
	}
	if a.Data.Mass != DefaultMass {
		t.Errorf("default mass = %v, want %v", a.Data.Mass, DefaultMass)
	}
	if b.Data.Mass != 3 {
		t.Errorf("mass = %v, want 3", b.Data.Mass)
	}
}

func TestCountersArePerGraph(t *testing.T) {
	g1, g2 := New(), New()
	g1.CreateNodeLabeled("x")
	g1.CreateNodeLabeled("y")
	if n := g2.CreateNodeLabeled("z"); n.ID != "0" {
		t.Errorf("second graph started at %q, want \"0\"", n.ID)
	}
}

func TestCreateNodeSkipsTakenIDs(t *testing.T) {
	g := New()
	g.AddNode(NewNode("0", NodeData{Label: "manual"}))
	n := g.CreateNodeLabeled("auto")
	if n.ID != "1" {
		t.Errorf("ID = %q, want \"1\"", n.ID)
	}
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
}

func TestAddNodeUpsert(t *testing.T) {
	g := New()
	l := &countingListener{}
	g.AddListener(l)

	first := g.AddNode(NewNode("n", NodeData{Label: "old"}))
	second := g.AddNode(NewNode("n", NodeData{Label: "new", Pinned: true}))

	if g.NodeCount() != 1 {
		t.Fatalf("NodeCount() = %d, want 1", g.NodeCount())
	}
	if second != first {
		t.Error("upsert returned a different pointer than the stored node")
	}
	if first.Data.Label != "new" || !first.Pinned {
		t.Errorf("stored node not updated: %+v", first)
	}
	if l.calls != 2 {
		t.Errorf("listener calls = %d, want 2", l.calls)
	}
}

func TestCreateEdgeUnknownEndpoint(t *testing.T) {
	g := New()
	a := g.CreateNodeLabeled("a")
	stranger := NewNode("99", NodeData{})

	tests := []struct {
		name    string
		src     *Node
		tgt     *Node
		wantErr error
	}{
		{"UnknownSource", stranger, a, ErrUnknownSourceNode},
		{"UnknownTarget", a, stranger, ErrUnknownTargetNode},
		{"NilSource", nil, a, ErrUnknownSourceNode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := g.CreateEdge(tt.src, tt.tgt, EdgeData{})
			if e != nil {
				t.Errorf("edge = %v, want nil", e)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
}

func TestAddEdgeIgnoresDuplicateID(t *testing.T) {
	g := New()
	a, b := g.CreateNodeLabeled("a"), g.CreateNodeLabeled("b")
	e := g.AddEdge(NewEdge("e", a, b, EdgeData{}))
	g.AddEdge(NewEdge("e", a, b, EdgeData{}))

	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if got := g.EdgesBetween(a, b); len(got) != 1 || got[0] != e {
		t.Errorf("EdgesBetween = %v, want [e]", got)
	}
}

func TestEdgesBetween(t *testing.T) {
	g := New()
	a, b, c := g.CreateNodeLabeled("a"), g.CreateNodeLabeled("b"), g.CreateNodeLabeled("c")
	e1, _ := g.CreateEdge(a, b, EdgeData{})
	e2, _ := g.CreateEdge(a, b, EdgeData{})
	g.CreateEdge(b, a, EdgeData{})

	got := g.EdgesBetween(a, b)
	if len(got) != 2 || got[0] != e1 || got[1] != e2 {
		t.Errorf("EdgesBetween(a, b) = %v, want [e1 e2]", got)
	}
	if got := g.EdgesBetween(b, a); len(got) != 1 {
		t.Errorf("EdgesBetween(b, a) has %d edges, want 1", len(got))
	}
	if got := g.EdgesBetween(a, c); got != nil {
		t.Errorf("EdgesBetween(a, c) = %v, want nil", got)
	}
}

func TestNodeEdges(t *testing.T) {
	g := New()
	a, b, c := g.CreateNodeLabeled("a"), g.CreateNodeLabeled("b"), g.CreateNodeLabeled("c")
	ab, _ := g.CreateEdge(a, b, EdgeData{})
	ca, _ := g.CreateEdge(c, a, EdgeData{})
	g.CreateEdge(b, c, EdgeData{})

	got := g.NodeEdges(a)
	if len(got) != 2 || got[0] != ab || got[1] != ca {
		t.Errorf("NodeEdges(a) = %v, want [ab ca]", got)
	}

	loop, _ := g.CreateEdge(a, a, EdgeData{})
	count := 0
	for _, e := range g.NodeEdges(a) {
		if e == loop {
			count++
		}
	}
	if count != 2 {
		t.Errorf("self-loop listed %d times, want 2", count)
	}
}

func TestRemoveEdgePrunesBuckets(t *testing.T) {
	g := New()
	a, b := g.CreateNodeLabeled("a"), g.CreateNodeLabeled("b")
	e1, _ := g.CreateEdge(a, b, EdgeData{})
	e2, _ := g.CreateEdge(a, b, EdgeData{})

	g.RemoveEdge(e1)
	if got := g.EdgesBetween(a, b); len(got) != 1 || got[0] != e2 {
		t.Fatalf("EdgesBetween after first removal = %v", got)
	}

	g.RemoveEdge(e2)
	if _, ok := g.adjacency[a.ID]; ok {
		t.Error("source entry not pruned after last edge removed")
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
}

func TestRemoveNodeCascades(t *testing.T) {
	g := New()
	a, b, c := g.CreateNodeLabeled("a"), g.CreateNodeLabeled("b"), g.CreateNodeLabeled("c")
	g.CreateEdge(a, b, EdgeData{})
	g.CreateEdge(c, a, EdgeData{})
	bc, _ := g.CreateEdge(b, c, EdgeData{})

	l := &countingListener{}
	g.AddListener(l)
	g.RemoveNode(a)

	if l.calls != 2 {
		t.Errorf("listener calls = %d, want 2 (detach + remove)", l.calls)
	}
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
	if got := g.Edges(); len(got) != 1 || got[0] != bc {
		t.Errorf("Edges() = %v, want [bc]", got)
	}
	if g.EdgesBetween(a, b) != nil || g.EdgesBetween(c, a) != nil {
		t.Error("adjacency buckets for removed node still present")
	}
	if _, ok := g.adjacency[a.ID]; ok {
		t.Error("source entry for removed node still present")
	}
	if g.Contains(a) {
		t.Error("Contains(a) = true after removal")
	}
	if !g.Owns(a) {
		t.Error("Owns(a) = false after removal, want true")
	}
}

func TestReaddedNodeKeepsIndex(t *testing.T) {
	g := New()
	g.CreateNodeLabeled("a")
	b := g.CreateNodeLabeled("b")
	idx := b.Index()

	g.RemoveNode(b)
	back := g.AddNode(NewNode(b.ID, b.Data))
	if back.Index() != idx {
		t.Errorf("index = %d, want %d", back.Index(), idx)
	}
}

func TestClear(t *testing.T) {
	g := New()
	a, b := g.CreateNodeLabeled("a"), g.CreateNodeLabeled("b")
	g.CreateEdge(a, b, EdgeData{})
	l := &countingListener{}
	g.AddListener(l)

	g.Clear()

	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("counts = %d/%d, want 0/0", g.NodeCount(), g.EdgeCount())
	}
	if l.calls != 1 {
		t.Errorf("listener calls = %d, want 1", l.calls)
	}
	if n := g.CreateNodeLabeled("c"); n.ID != "2" {
		t.Errorf("ID after Clear = %q, want \"2\"", n.ID)
	}
}

func TestListenerFunc(t *testing.T) {
	g := New()
	calls := 0
	g.AddListener(ListenerFunc(func() { calls++ }))
	a := g.CreateNodeLabeled("a")
	b := g.CreateNodeLabeled("b")
	g.CreateEdge(a, b, EdgeData{})
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestEdgeDataRestLength(t *testing.T) {
	if got := (EdgeData{}).RestLength(); got != DefaultEdgeLength {
		t.Errorf("RestLength() = %v, want %v", got, DefaultEdgeLength)
	}
	if got := (EdgeData{Length: 50}).RestLength(); got != 50 {
		t.Errorf("RestLength() = %v, want 50", got)
	}
}
