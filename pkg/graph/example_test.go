package graph_test

import (
	"fmt"

	"github.com/matzehuels/forcelayout/pkg/graph"
)

func ExampleGraph_basic() {
	g := graph.New()
	a := g.CreateNodeLabeled("api")
	b := g.CreateNodeLabeled("db")
	_, _ = g.CreateEdge(a, b, graph.EdgeData{Length: 50})

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("IDs:", a.ID, b.ID)
	// Output:
	// Nodes: 2
	// Edges: 1
	// IDs: 0 1
}

func ExampleGraph_RemoveNode() {
	g := graph.New()
	hub := g.CreateNodeLabeled("hub")
	for _, label := range []string{"x", "y"} {
		_, _ = g.CreateEdge(hub, g.CreateNodeLabeled(label), graph.EdgeData{})
	}

	notifications := 0
	g.AddListener(graph.ListenerFunc(func() { notifications++ }))
	g.RemoveNode(hub)

	fmt.Println("Edges left:", g.EdgeCount())
	fmt.Println("Notifications:", notifications)
	// Output:
	// Edges left: 0
	// Notifications: 2
}

func ExampleGraph_Merge() {
	base := graph.New()
	base.CreateNodeLabeled("root")

	other := graph.New()
	x := other.CreateNodeLabeled("x")
	y := other.CreateNodeLabeled("y")
	_, _ = other.CreateEdge(x, y, graph.EdgeData{})

	base.Merge(other)
	e := base.Edges()[0]
	fmt.Printf("%s -> %s (was %s -> %s)\n", e.Source.ID, e.Target.ID, e.Source.Data.OrigID, e.Target.Data.OrigID)
	// Output:
	// 1 -> 2 (was 0 -> 1)
}
