package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/forcelayout/pkg/graph"
)

type graphFile struct {
	Nodes []nodeJSON `json:"nodes"`
	Edges []edgeJSON `json:"edges"`
}

type nodeJSON struct {
	ID       string    `json:"id"`
	Label    string    `json:"label,omitempty"`
	Mass     *float64  `json:"mass,omitempty"`
	Position *Point    `json:"position,omitempty"`
	Size     *sizeJSON `json:"size,omitempty"`
	Pinned   bool      `json:"pinned,omitempty"`
}

type edgeJSON struct {
	ID       string  `json:"id,omitempty"`
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Directed bool    `json:"directed,omitempty"`
	Label    string  `json:"label,omitempty"`
	Length   float64 `json:"length,omitempty"`
}

type sizeJSON struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth,omitempty"`
}

// WriteGraph encodes g as JSON and writes it to w.
// Default mass and empty sizes are omitted, so the output can be re-imported
// with [ReadGraph] and yields an equivalent graph.
func WriteGraph(g *graph.Graph, w io.Writer) error {
	out := graphFile{
		Nodes: make([]nodeJSON, 0, g.NodeCount()),
		Edges: make([]edgeJSON, 0, g.EdgeCount()),
	}

	for _, n := range g.Nodes() {
		nd := nodeJSON{ID: n.ID, Label: n.Data.Label, Pinned: n.Pinned}
		if n.Data.Mass != graph.DefaultMass && n.Data.Mass > 0 {
			mass := n.Data.Mass
			nd.Mass = &mass
		}
		if p := n.Data.Position; p != nil {
			nd.Position = &Point{X: p.X, Y: p.Y, Z: p.Z}
		}
		if s := n.Data.Size; s != (graph.Size{}) {
			nd.Size = &sizeJSON{Width: s.Width, Height: s.Height, Depth: s.Depth}
		}
		out.Nodes = append(out.Nodes, nd)
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, edgeJSON{
			ID:       e.ID,
			Source:   e.Source.ID,
			Target:   e.Target.ID,
			Directed: e.Directed,
			Label:    e.Data.Label,
			Length:   e.Data.Length,
		})
	}

	return encode(w, out)
}

// ExportGraph writes g to a JSON file at path.
// This is a convenience wrapper around [WriteGraph] for file-based output.
func ExportGraph(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(g, f)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
