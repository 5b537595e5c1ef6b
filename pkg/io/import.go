package io

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"

	ferrors "github.com/matzehuels/forcelayout/pkg/errors"
	"github.com/matzehuels/forcelayout/pkg/graph"
)

// ReadGraph decodes a JSON graph from r.
//
// Node IDs from the file become the graph's node IDs. Edges without an id
// get one from the graph's counter. ReadGraph returns an INVALID_GRAPH error
// if:
//   - The JSON is malformed
//   - A node or edge id is empty, duplicated, or contains control characters
//   - An edge references an unknown node id
//   - A mass is not positive, or a length or size is negative
//
// ReadGraph does not close r.
func ReadGraph(r io.Reader) (*graph.Graph, error) {
	var data graphFile
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidGraph, err, "decode graph")
	}

	g := graph.New()
	for i, n := range data.Nodes {
		if err := ferrors.ValidateID(n.ID); err != nil {
			return nil, ferrors.Wrap(ferrors.ErrCodeInvalidGraph, err, "node %d", i)
		}
		if _, dup := g.Node(n.ID); dup {
			return nil, ferrors.New(ferrors.ErrCodeInvalidGraph, "node %d: duplicate id %q", i, n.ID)
		}
		nd, err := n.data()
		if err != nil {
			return nil, ferrors.Wrap(ferrors.ErrCodeInvalidGraph, err, "node %q", n.ID)
		}
		g.AddNode(graph.NewNode(n.ID, nd))
	}

	for i, e := range data.Edges {
		src, ok := g.Node(e.Source)
		if !ok {
			return nil, ferrors.New(ferrors.ErrCodeInvalidGraph, "edge %d: unknown source %q", i, e.Source)
		}
		tgt, ok := g.Node(e.Target)
		if !ok {
			return nil, ferrors.New(ferrors.ErrCodeInvalidGraph, "edge %d: unknown target %q", i, e.Target)
		}
		if e.Length < 0 {
			return nil, ferrors.New(ferrors.ErrCodeInvalidGraph, "edge %d: invalid length %v", i, e.Length)
		}
		ed := graph.EdgeData{Label: e.Label, Length: e.Length}

		if e.ID == "" {
			create := g.CreateEdge
			if e.Directed {
				create = g.CreateDirectedEdge
			}
			if _, err := create(src, tgt, ed); err != nil {
				return nil, ferrors.Wrap(ferrors.ErrCodeInternal, err, "edge %d", i)
			}
			continue
		}
		if err := ferrors.ValidateID(e.ID); err != nil {
			return nil, ferrors.Wrap(ferrors.ErrCodeInvalidGraph, err, "edge %d", i)
		}
		if _, dup := g.Edge(e.ID); dup {
			return nil, ferrors.New(ferrors.ErrCodeInvalidGraph, "edge %d: duplicate id %q", i, e.ID)
		}
		edge := graph.NewEdge(e.ID, src, tgt, ed)
		edge.Directed = e.Directed
		g.AddEdge(edge)
	}

	return g, nil
}

// ImportGraph reads a JSON graph file at path.
// A missing file yields a FILE_NOT_FOUND error; decoding errors are the same
// as [ReadGraph].
func ImportGraph(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ferrors.Wrap(ferrors.ErrCodeFileNotFound, err, "graph file %s", path)
		}
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadGraph(f)
}

func (n nodeJSON) data() (graph.NodeData, error) {
	nd := graph.NodeData{
		Label:  n.Label,
		Mass:   graph.DefaultMass,
		Pinned: n.Pinned,
	}
	if n.Mass != nil {
		if *n.Mass <= 0 {
			return nd, ferrors.New(ferrors.ErrCodeInvalidGraph, "mass must be positive, got %v", *n.Mass)
		}
		nd.Mass = *n.Mass
	}
	if n.Position != nil {
		p := *n.Position
		nd.Position = &graph.Point{X: p.X, Y: p.Y, Z: p.Z}
	}
	if n.Size != nil {
		s := *n.Size
		if s.Width < 0 || s.Height < 0 || s.Depth < 0 {
			return nd, ferrors.New(ferrors.ErrCodeInvalidGraph, "size must be non-negative")
		}
		nd.Size = graph.Size{Width: s.Width, Height: s.Height, Depth: s.Depth}
	}
	return nd, nil
}
