package vector

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a point or displacement in space.
type Vec3 r3.Vec

// Zero3 returns the origin.
func Zero3() Vec3 { return Vec3{} }

// Identity3 returns the vector with every component set to one.
func Identity3() Vec3 { return Vec3{X: 1, Y: 1, Z: 1} }

// Random3 returns a vector with each component uniform in
// [-RandomSpread, RandomSpread]. A nil r uses the global source.
func Random3(r *rand.Rand) Vec3 {
	return Vec3{X: jitter(r), Y: jitter(r), Z: jitter(r)}
}

// Add returns the component-wise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3(r3.Add(r3.Vec(v), r3.Vec(o))) }

// Sub returns the component-wise difference v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3(r3.Sub(r3.Vec(v), r3.Vec(o))) }

// Scale returns v multiplied by f.
func (v Vec3) Scale(f float64) Vec3 { return Vec3(r3.Scale(f, r3.Vec(v))) }

// Div divides by f, returning the zero vector when f is zero.
func (v Vec3) Div(f float64) Vec3 {
	if f == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / f, Y: v.Y / f, Z: v.Z / f}
}

// Magnitude returns the Euclidean length of v.
func (v Vec3) Magnitude() float64 { return r3.Norm(r3.Vec(v)) }

// Normalize returns v scaled to unit length, or the zero vector.
func (v Vec3) Normalize() Vec3 { return v.Div(v.Magnitude()) }

// Min returns the component-wise minimum of v and o.
func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{X: math.Min(v.X, o.X), Y: math.Min(v.Y, o.Y), Z: math.Min(v.Z, o.Z)}
}

// Max returns the component-wise maximum of v and o.
func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{X: math.Max(v.X, o.X), Y: math.Max(v.Y, o.Y), Z: math.Max(v.Z, o.Z)}
}

// Less reports whether v is strictly below o on every axis.
func (v Vec3) Less(o Vec3) bool { return v.X < o.X && v.Y < o.Y && v.Z < o.Z }

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool { return finite(v.X) && finite(v.Y) && finite(v.Z) }

// String formats v as a parenthesized tuple.
func (v Vec3) String() string { return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z) }
