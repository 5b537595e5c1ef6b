// Package io provides JSON import and export for layout graphs and computed
// layouts.
//
// # Overview
//
// A graph file describes the nodes and edges to lay out, plus the optional
// physical properties the engine reads: mass, size, initial position and
// pinning. A layout file records where every node ended up after a settle
// run. Both are plain JSON so other tools can produce and consume them.
//
// # Graph Format
//
//	{
//	  "nodes": [
//	    {"id": "api", "label": "API gateway", "mass": 2},
//	    {"id": "db", "pinned": true, "position": {"x": 0, "y": 0}},
//	    {"id": "cache", "size": {"width": 4, "height": 2}}
//	  ],
//	  "edges": [
//	    {"source": "api", "target": "db", "length": 3},
//	    {"source": "api", "target": "cache", "directed": true}
//	  ]
//	}
//
// Node fields:
//   - id (required): unique string identifier, kept as the graph node ID
//   - label: display label, defaults to the id
//   - mass: positive mass, defaults to 1
//   - position: initial {x, y, z}; random when absent
//   - size: {width, height, depth} collision box; zero disables collisions
//   - pinned: fixed in place from the start
//
// Edge fields:
//   - source, target (required): node ids
//   - id: optional edge id; assigned by the graph when absent
//   - directed: cosmetic arrow flag
//   - label: display label
//   - length: spring rest length, defaults to 1
//
// # Import
//
// Use [ImportGraph] to read a graph from a file path, or [ReadGraph] to read
// from any io.Reader. Both return coded errors from pkg/errors:
// INVALID_GRAPH for duplicate ids, unknown endpoints or bad values,
// FILE_NOT_FOUND when the file does not exist.
//
// # Export
//
// [WriteGraph] and [ExportGraph] write a graph back in the same format,
// including current positions when the caller filled them in. [WriteLayout]
// and [ExportLayout] write a [Layout]; [ReadLayout] and [ImportLayout] read
// it back, and [ApplyLayout] copies its positions into a graph so a previous
// run can seed the next one.
package io
