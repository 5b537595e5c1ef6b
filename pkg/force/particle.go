package force

import (
	"github.com/matzehuels/forcelayout/pkg/graph"
	"github.com/matzehuels/forcelayout/pkg/vector"
)

// Particle is the physical state of one node.
type Particle[V vector.Vector[V]] struct {
	Position     V
	Velocity     V
	Acceleration V

	node  *graph.Node
	space Space[V]
}

// Node returns the node this particle belongs to.
func (p *Particle[V]) Node() *graph.Node { return p.node }

// Mass returns the node's current mass. It is never cached.
func (p *Particle[V]) Mass() float64 { return p.node.Data.Mass }

// ApplyForce adds f/mass to the acceleration. Velocity and position are left
// alone until the engine integrates. A zero mass makes the force vanish.
func (p *Particle[V]) ApplyForce(f V) {
	p.Acceleration = p.Acceleration.Add(f.Div(p.Mass()))
}

// Box returns the collision box: the position plus or minus half the node's
// size on every axis.
func (p *Particle[V]) Box() vector.BoundingBox[V] {
	half := p.space.HalfExtent(p.node.Data.Size)
	return vector.BoundingBox[V]{
		BottomLeftFront: p.Position.Sub(half),
		TopRightBack:    p.Position.Add(half),
	}
}

// Speed returns the magnitude of the velocity.
func (p *Particle[V]) Speed() float64 { return p.Velocity.Magnitude() }

// Spring connects two particles with a rest length and a stiffness.
type Spring[V vector.Vector[V]] struct {
	Point1    *Particle[V]
	Point2    *Particle[V]
	Length    float64
	Stiffness float64

	edge *graph.Edge
}
