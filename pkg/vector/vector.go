package vector

import (
	"math"
	"math/rand/v2"
)

// RandomSpread is the half-width of the interval used by Random2 and Random3.
// Each axis is drawn uniformly from [-RandomSpread, RandomSpread].
const RandomSpread = 5.0

// Vector is the constraint satisfied by Vec2 and Vec3.
// All methods return new values.
type Vector[V any] interface {
	comparable

	Add(V) V
	Sub(V) V
	Scale(float64) V
	// Div divides every component by f. Division by zero yields the zero vector.
	Div(f float64) V
	Magnitude() float64
	// Normalize returns the unit vector, or the zero vector if the magnitude is zero.
	Normalize() V
	Min(V) V
	Max(V) V
	// Less reports whether every component is strictly less than the other's.
	Less(V) bool
	IsFinite() bool
}

// jitter draws a value uniformly from [-RandomSpread, RandomSpread].
// A nil source falls back to the package-level generator.
func jitter(r *rand.Rand) float64 {
	var f float64
	if r == nil {
		f = rand.Float64()
	} else {
		f = r.Float64()
	}
	return (f*2 - 1) * RandomSpread
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
