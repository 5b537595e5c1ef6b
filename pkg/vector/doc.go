// Package vector provides the immutable 2D and 3D vectors and axis-aligned
// bounding boxes used by the force-directed layout engine.
//
// # Value Semantics
//
// Every operation returns a new value; nothing is mutated in place. A
// particle update therefore always reads like an assignment:
//
//	p.Position = p.Position.Add(p.Velocity.Scale(dt))
//
// # Degenerate Geometry
//
// Division by zero does not produce Inf or NaN. [Vec2.Div] and [Vec3.Div]
// return the zero vector when the divisor is zero, and Normalize inherits that
// rule for zero-length vectors. Callers that need a direction for a
// zero-length displacement must pick one themselves.
//
// # Dimensionality
//
// [Vec2] and [Vec3] are thin wrappers over gonum's spatial/r2 and spatial/r3
// vectors. Code that must work for both (the simulation engine, [BoundingBox])
// is generic over the [Vector] constraint.
package vector
