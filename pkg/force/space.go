package force

import (
	"math/rand/v2"

	"github.com/matzehuels/forcelayout/pkg/graph"
	"github.com/matzehuels/forcelayout/pkg/vector"
)

// DefaultPadding is the fraction of the spanned extent added to each side of
// Engine.BoundingBox, in every dimensionality.
const DefaultPadding = 0.07

// minExtent is the half-width of the smallest box BoundingBox reports.
const minExtent = 2.0

// Space supplies what the generic engine needs to know about a dimensionality.
type Space[V vector.Vector[V]] interface {
	Zero() V
	// Random returns a jittered initial placement.
	Random(r *rand.Rand) V
	FromPoint(p graph.Point) V
	ToPoint(v V) graph.Point
	// HalfExtent returns half of s along every axis of the space.
	HalfExtent(s graph.Size) V
	// Bounds returns the corners of the smallest box BoundingBox reports.
	Bounds() (lo, hi V)
	Dimensions() int
}

// Space2D binds the engine to vector.Vec2.
type Space2D struct{}

func (Space2D) Zero() vector.Vec2                   { return vector.Zero2() }
func (Space2D) Random(r *rand.Rand) vector.Vec2     { return vector.Random2(r) }
func (Space2D) FromPoint(p graph.Point) vector.Vec2 { return vector.Vec2{X: p.X, Y: p.Y} }
func (Space2D) ToPoint(v vector.Vec2) graph.Point   { return graph.Point{X: v.X, Y: v.Y} }
func (Space2D) Dimensions() int                     { return 2 }

func (Space2D) HalfExtent(s graph.Size) vector.Vec2 {
	return vector.Vec2{X: s.Width / 2, Y: s.Height / 2}
}

func (Space2D) Bounds() (vector.Vec2, vector.Vec2) {
	return vector.Identity2().Scale(-minExtent), vector.Identity2().Scale(minExtent)
}

// Space3D binds the engine to vector.Vec3.
type Space3D struct{}

func (Space3D) Zero() vector.Vec3                 { return vector.Zero3() }
func (Space3D) Random(r *rand.Rand) vector.Vec3   { return vector.Random3(r) }
func (Space3D) ToPoint(v vector.Vec3) graph.Point { return graph.Point{X: v.X, Y: v.Y, Z: v.Z} }
func (Space3D) Dimensions() int                   { return 3 }

func (Space3D) FromPoint(p graph.Point) vector.Vec3 {
	return vector.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

func (Space3D) HalfExtent(s graph.Size) vector.Vec3 {
	return vector.Vec3{X: s.Width / 2, Y: s.Height / 2, Z: s.Depth / 2}
}

func (Space3D) Bounds() (vector.Vec3, vector.Vec3) {
	return vector.Identity3().Scale(-minExtent), vector.Identity3().Scale(minExtent)
}

// Engine2D is the planar engine.
type Engine2D = Engine[vector.Vec2]

// Engine3D is the spatial engine.
type Engine3D = Engine[vector.Vec3]

// New2D creates a planar engine over g.
func New2D(g *graph.Graph, stiffness, repulsion, damping float64, opts ...Option) *Engine2D {
	return New[vector.Vec2](g, Space2D{}, stiffness, repulsion, damping, opts...)
}

// New3D creates a spatial engine over g.
func New3D(g *graph.Graph, stiffness, repulsion, damping float64, opts ...Option) *Engine3D {
	return New[vector.Vec3](g, Space3D{}, stiffness, repulsion, damping, opts...)
}
