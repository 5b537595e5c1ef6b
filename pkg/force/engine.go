package force

import (
	"math"
	"math/rand/v2"

	"github.com/matzehuels/forcelayout/pkg/graph"
	"github.com/matzehuels/forcelayout/pkg/vector"
)

const (
	// DefaultGravity scales the pull toward the origin relative to stiffness.
	DefaultGravity = 0.4

	// DefaultMinEnergyThreshold is the energy below which Converged reports true.
	DefaultMinEnergyThreshold = 0.01

	// distanceEpsilon keeps the repulsion finite for coincident nodes.
	distanceEpsilon = 0.1

	// maxNudgeAttempts bounds the search for a non-zero random direction.
	maxNudgeAttempts = 8
)

// Option configures an Engine.
type Option func(*options)

type options struct {
	gravity   float64
	threshold float64
	padding   float64
	seed      uint64
	seeded    bool
}

// WithGravity sets the center-attraction factor. Zero disables it.
func WithGravity(g float64) Option {
	return func(o *options) { o.gravity = g }
}

// WithMinEnergyThreshold sets the energy below which Converged reports true.
func WithMinEnergyThreshold(t float64) Option {
	return func(o *options) { o.threshold = t }
}

// WithPadding sets the BoundingBox padding fraction.
func WithPadding(p float64) Option {
	return func(o *options) { o.padding = p }
}

// WithSeed makes random placement and coincidence nudges reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed, o.seeded = seed, true }
}

// Engine is a force-directed simulation over a graph.
//
// Stiffness, Repulsion and Damping may be changed between steps. Springs keep
// the stiffness they were created with until Clear.
type Engine[V vector.Vector[V]] struct {
	Stiffness float64
	Repulsion float64
	// Damping multiplies every velocity once per step; values in (0, 1)
	// bleed energy out of the system.
	Damping float64
	// Gravity scales the pull toward the origin (force = -position * Stiffness * Gravity).
	Gravity float64
	// MinEnergyThreshold is the energy below which Converged reports true.
	MinEnergyThreshold float64
	// Padding is the fraction of the extent BoundingBox adds to each side.
	Padding float64

	graph *graph.Graph
	space Space[V]
	rng   *rand.Rand

	particles []*Particle[V] // by graph.Node.Index
	springs   []*Spring[V]   // by graph.Edge.Index
}

// New creates an engine over g for the given space.
// Most callers use New2D or New3D instead.
func New[V vector.Vector[V]](g *graph.Graph, space Space[V], stiffness, repulsion, damping float64, opts ...Option) *Engine[V] {
	o := options{
		gravity:   DefaultGravity,
		threshold: DefaultMinEnergyThreshold,
		padding:   DefaultPadding,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = rand.Uint64()
	}
	return &Engine[V]{
		Stiffness:          stiffness,
		Repulsion:          repulsion,
		Damping:            damping,
		Gravity:            o.gravity,
		MinEnergyThreshold: o.threshold,
		Padding:            o.padding,
		graph:              g,
		space:              space,
		rng:                rand.New(rand.NewPCG(o.seed, o.seed^0x9e3779b97f4a7c15)),
	}
}

// Graph returns the graph the engine simulates.
func (e *Engine[V]) Graph() *graph.Graph { return e.graph }

// Space returns the dimensionality binding of the engine.
func (e *Engine[V]) Space() Space[V] { return e.space }

// =============================================================================
// Particle and Spring Lookup
// =============================================================================

// Particle returns the particle of n, creating it on first access at the
// node's configured position or at a random one. It returns nil if n was
// never added to the engine's graph.
//
// A node removed and added again under the same ID takes over the cached
// particle, keeping its position and velocity but reading mass, size and pin
// state from the new node.
func (e *Engine[V]) Particle(n *graph.Node) *Particle[V] {
	if !e.graph.Owns(n) {
		return nil
	}
	idx := n.Index()
	if idx < len(e.particles) && e.particles[idx] != nil {
		p := e.particles[idx]
		p.node = n
		return p
	}

	pos := e.space.Random(e.rng)
	if n.Data.Position != nil {
		pos = e.space.FromPoint(*n.Data.Position)
	}
	p := &Particle[V]{
		Position:     pos,
		Velocity:     e.space.Zero(),
		Acceleration: e.space.Zero(),
		node:         n,
		space:        e.space,
	}
	if idx >= len(e.particles) {
		e.particles = append(e.particles, make([]*Particle[V], idx+1-len(e.particles))...)
	}
	e.particles[idx] = p
	return p
}

// Spring returns the spring of edge, creating it on first access.
//
// If another edge between the same two nodes, in either direction, already
// has a spring, the result is a zero-length, zero-stiffness spring over the
// same particles. Such duplicates are not cached, so removing the first edge
// lets the next one take over. An edge removed and added again under the same
// ID gets a fresh spring. Spring returns nil if the edge or either endpoint is
// unknown to the engine's graph.
func (e *Engine[V]) Spring(edge *graph.Edge) *Spring[V] {
	if !e.graph.OwnsEdge(edge) {
		return nil
	}
	p1, p2 := e.Particle(edge.Source), e.Particle(edge.Target)
	if p1 == nil || p2 == nil {
		return nil
	}

	idx := edge.Index()
	if idx < len(e.springs) && e.springs[idx] != nil {
		if s := e.springs[idx]; s.edge == edge {
			return s
		}
		e.springs[idx] = nil
	}

	if existing := e.existingSpring(edge.Source, edge.Target); existing != nil {
		return &Spring[V]{Point1: existing.Point1, Point2: existing.Point2}
	}

	s := &Spring[V]{
		Point1:    p1,
		Point2:    p2,
		Length:    edge.Data.RestLength(),
		Stiffness: e.Stiffness,
		edge:      edge,
	}
	if idx >= len(e.springs) {
		e.springs = append(e.springs, make([]*Spring[V], idx+1-len(e.springs))...)
	}
	e.springs[idx] = s
	return s
}

func (e *Engine[V]) existingSpring(a, b *graph.Node) *Spring[V] {
	for _, pair := range [2][2]*graph.Node{{a, b}, {b, a}} {
		for _, other := range e.graph.EdgesBetween(pair[0], pair[1]) {
			if idx := other.Index(); idx < len(e.springs) && e.springs[idx] != nil && e.springs[idx].edge == other {
				return e.springs[idx]
			}
		}
	}
	return nil
}

// =============================================================================
// Simulation Step
// =============================================================================

// Calculate runs one simulation step of dt seconds: repulsion, springs,
// center attraction, velocity, then position with collision pinning.
func (e *Engine[V]) Calculate(dt float64) {
	nodes := e.graph.Nodes()
	e.applyCoulombsLaw(nodes)
	e.applyHookesLaw()
	e.attractToCenter(nodes)
	e.updateVelocity(nodes, dt)
	e.updatePosition(nodes, dt)
}

func (e *Engine[V]) applyCoulombsLaw(nodes []*graph.Node) {
	for i, n1 := range nodes {
		p1 := e.Particle(n1)
		for _, n2 := range nodes[i+1:] {
			if n1.Pinned && n2.Pinned {
				continue
			}
			p2 := e.Particle(n2)

			delta := p1.Position.Sub(p2.Position)
			distance := delta.Magnitude() + distanceEpsilon
			direction := delta.Normalize()
			if direction == e.space.Zero() {
				direction = e.nudge()
			}
			// Pushes p1 away from p2.
			f := direction.Scale(e.Repulsion / distance)

			switch {
			case n1.Pinned:
				p2.ApplyForce(f.Scale(-1))
			case n2.Pinned:
				p1.ApplyForce(f)
			default:
				p1.ApplyForce(f.Scale(0.5))
				p2.ApplyForce(f.Scale(-0.5))
			}
		}
	}
}

// nudge picks a random unit direction for exactly coincident particles.
func (e *Engine[V]) nudge() V {
	zero := e.space.Zero()
	for range maxNudgeAttempts {
		if d := e.space.Random(e.rng).Normalize(); d != zero {
			return d
		}
	}
	return zero
}

func (e *Engine[V]) applyHookesLaw() {
	for _, edge := range e.graph.Edges() {
		s := e.Spring(edge)
		if s == nil {
			continue
		}
		pinned1, pinned2 := s.Point1.node.Pinned, s.Point2.node.Pinned
		if pinned1 && pinned2 {
			continue
		}

		d := s.Point2.Position.Sub(s.Point1.Position)
		displacement := s.Length - d.Magnitude()
		// Pushes p2 away from p1 when compressed, pulls it in when stretched.
		f := d.Normalize().Scale(s.Stiffness * displacement)

		switch {
		case pinned1:
			s.Point2.ApplyForce(f)
		case pinned2:
			s.Point1.ApplyForce(f.Scale(-1))
		default:
			s.Point1.ApplyForce(f.Scale(-0.5))
			s.Point2.ApplyForce(f.Scale(0.5))
		}
	}
}

func (e *Engine[V]) attractToCenter(nodes []*graph.Node) {
	for _, n := range nodes {
		if n.Pinned {
			continue
		}
		p := e.Particle(n)
		p.ApplyForce(p.Position.Scale(-e.Stiffness * e.Gravity))
	}
}

func (e *Engine[V]) updateVelocity(nodes []*graph.Node, dt float64) {
	zero := e.space.Zero()
	for _, n := range nodes {
		p := e.Particle(n)
		if !n.Pinned {
			p.Velocity = p.Velocity.Add(p.Acceleration.Scale(dt)).Scale(e.Damping)
		}
		p.Acceleration = zero
	}
}

// updatePosition checks every free node against every other node. An
// overlapping pair pins both nodes; each non-overlapping pair advances the
// free node by v*dt, so a node moves once per other node it clears.
func (e *Engine[V]) updatePosition(nodes []*graph.Node, dt float64) {
	for i, n := range nodes {
		if n.Pinned {
			continue
		}
		p := e.Particle(n)

		for j, other := range nodes {
			if i == j {
				continue
			}
			q := e.Particle(other)
			if p.Box().Intersects(q.Box()) {
				e.pin(n, p)
				e.pin(other, q)
				continue
			}
			p.Position = p.Position.Add(p.Velocity.Scale(dt))
		}
	}
}

// pin fixes n for the rest of the engine's life. Nodes that were already
// pinned keep their velocity.
func (e *Engine[V]) pin(n *graph.Node, p *Particle[V]) {
	if n.Pinned {
		return
	}
	n.Pinned = true
	p.Velocity = e.space.Zero()
}

// =============================================================================
// Introspection
// =============================================================================

// TotalEnergy returns the kinetic energy of all nodes, sum(0.5 * m * |v|²).
// It is never negative.
func (e *Engine[V]) TotalEnergy() float64 {
	var energy float64
	e.EachNode(func(_ *graph.Node, p *Particle[V]) {
		speed := p.Speed()
		energy += 0.5 * math.Abs(p.Mass()) * speed * speed
	})
	return energy
}

// Converged reports whether TotalEnergy is below MinEnergyThreshold.
func (e *Engine[V]) Converged() bool {
	return e.TotalEnergy() < e.MinEnergyThreshold
}

// EachNode calls fn for every node in insertion order with its particle.
func (e *Engine[V]) EachNode(fn func(*graph.Node, *Particle[V])) {
	for _, n := range e.graph.Nodes() {
		fn(n, e.Particle(n))
	}
}

// EachEdge calls fn for every edge in insertion order with its spring.
// Edges whose spring cannot be resolved are skipped.
func (e *Engine[V]) EachEdge(fn func(*graph.Edge, *Spring[V])) {
	for _, edge := range e.graph.Edges() {
		if s := e.Spring(edge); s != nil {
			fn(edge, s)
		}
	}
}

// Nearest returns the node whose particle is closest to pos, with the particle
// and the distance. It returns nil values and +Inf for an empty graph.
func (e *Engine[V]) Nearest(pos V) (*graph.Node, *Particle[V], float64) {
	var (
		best     *graph.Node
		bestP    *Particle[V]
		bestDist = math.Inf(1)
	)
	e.EachNode(func(n *graph.Node, p *Particle[V]) {
		if d := p.Position.Sub(pos).Magnitude(); d < bestDist {
			best, bestP, bestDist = n, p, d
		}
	})
	return best, bestP, bestDist
}

// BoundingBox returns the box spanned by all particle positions, never
// smaller than [-2, 2] on any axis, padded by Padding on every side.
func (e *Engine[V]) BoundingBox() vector.BoundingBox[V] {
	lo, hi := e.space.Bounds()
	box := vector.BoundingBox[V]{BottomLeftFront: lo, TopRightBack: hi}
	e.EachNode(func(_ *graph.Node, p *Particle[V]) {
		box = box.Extend(p.Position)
	})
	return box.Pad(e.Padding)
}

// Clear drops all particles and springs and empties the graph.
func (e *Engine[V]) Clear() {
	e.particles = nil
	e.springs = nil
	e.graph.Clear()
}
