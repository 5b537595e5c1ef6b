package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	ferrors "github.com/matzehuels/forcelayout/pkg/errors"
	"github.com/matzehuels/forcelayout/pkg/graph"
)

// Layout is the result of a settle run in file form.
type Layout struct {
	Generator  string       `json:"generator,omitempty"`
	RunID      string       `json:"run_id"`
	Dimensions int          `json:"dimensions"`
	Steps      int          `json:"steps"`
	Energy     float64      `json:"energy"`
	Converged  bool         `json:"converged"`
	Box        Box          `json:"bounding_box"`
	Nodes      []PlacedNode `json:"nodes"`
	Edges      []PlacedEdge `json:"edges,omitempty"`
}

// Point is a position in file form. Z is omitted for planar layouts.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// PlacedNode is a node with its final position.
type PlacedNode struct {
	ID       string `json:"id"`
	Label    string `json:"label,omitempty"`
	Position Point  `json:"position"`
	Pinned   bool   `json:"pinned,omitempty"`
}

// PlacedEdge is an edge between two placed nodes.
type PlacedEdge struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	Directed bool   `json:"directed,omitempty"`
}

// WriteLayout encodes l as indented JSON and writes it to w.
func WriteLayout(l *Layout, w io.Writer) error {
	return encode(w, l)
}

// ExportLayout writes l to a JSON file at path.
func ExportLayout(l *Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteLayout(l, f)
}

// ReadLayout decodes a layout written by [WriteLayout].
func ReadLayout(r io.Reader) (*Layout, error) {
	var l Layout
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "decode layout")
	}
	return &l, nil
}

// ImportLayout reads a layout file at path.
func ImportLayout(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ferrors.Wrap(ferrors.ErrCodeFileNotFound, err, "layout file %s", path)
		}
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadLayout(f)
}

// ApplyLayout sets the initial position of every node of g that appears in
// l. Pinned flags are left alone. It returns the number of nodes updated.
//
// Positions only affect particles created afterwards, so apply a layout
// before handing the graph to an engine.
func ApplyLayout(g *graph.Graph, l *Layout) int {
	updated := 0
	for _, placed := range l.Nodes {
		n, ok := g.Node(placed.ID)
		if !ok {
			continue
		}
		p := placed.Position
		n.Data.Position = &graph.Point{X: p.X, Y: p.Y, Z: p.Z}
		updated++
	}
	return updated
}
