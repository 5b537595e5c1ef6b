package vector

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec2 is a point or displacement in the plane.
type Vec2 r2.Vec

// Zero2 returns the origin.
func Zero2() Vec2 { return Vec2{} }

// Identity2 returns the vector with every component set to one.
func Identity2() Vec2 { return Vec2{X: 1, Y: 1} }

// Random2 returns a vector with each component uniform in
// [-RandomSpread, RandomSpread]. A nil r uses the global source.
func Random2(r *rand.Rand) Vec2 {
	return Vec2{X: jitter(r), Y: jitter(r)}
}

// Add returns the component-wise sum v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2(r2.Add(r2.Vec(v), r2.Vec(o))) }

// Sub returns the component-wise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2(r2.Sub(r2.Vec(v), r2.Vec(o))) }

// Scale returns v multiplied by f.
func (v Vec2) Scale(f float64) Vec2 { return Vec2(r2.Scale(f, r2.Vec(v))) }

// Div divides by f, returning the zero vector when f is zero.
func (v Vec2) Div(f float64) Vec2 {
	if f == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / f, Y: v.Y / f}
}

// Magnitude returns the Euclidean length of v.
func (v Vec2) Magnitude() float64 { return r2.Norm(r2.Vec(v)) }

// Normalize returns v scaled to unit length, or the zero vector.
func (v Vec2) Normalize() Vec2 { return v.Div(v.Magnitude()) }

// Min returns the component-wise minimum of v and o.
func (v Vec2) Min(o Vec2) Vec2 { return Vec2{X: math.Min(v.X, o.X), Y: math.Min(v.Y, o.Y)} }

// Max returns the component-wise maximum of v and o.
func (v Vec2) Max(o Vec2) Vec2 { return Vec2{X: math.Max(v.X, o.X), Y: math.Max(v.Y, o.Y)} }

// Less reports whether v is strictly below o on every axis.
func (v Vec2) Less(o Vec2) bool { return v.X < o.X && v.Y < o.Y }

// IsFinite reports whether no component is NaN or infinite.
func (v Vec2) IsFinite() bool { return finite(v.X) && finite(v.Y) }

// String formats v as a parenthesized tuple.
func (v Vec2) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }
