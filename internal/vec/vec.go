// Package vec provides the 3D vector value type used throughout the
// simulation core. All operations return new values; a V3 is never
// mutated in place.
package vec

import "math"

type V3 struct {
	X, Y, Z float64
}

func New(x, y, z float64) V3 {
	return V3{X: x, Y: y, Z: z}
}

// Zero is the additive identity.
var Zero = V3{}

func (v V3) Add(o V3) V3 {
	return V3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v V3) Sub(o V3) V3 {
	return V3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v V3) Scale(s float64) V3 {
	return V3{v.X * s, v.Y * s, v.Z * s}
}

func (v V3) Dot(o V3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v V3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v V3) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns the unit vector in v's direction. A zero-length
// input yields the zero vector; callers treat that as "no well-defined
// direction" and skip directional effects.
func (v V3) Normalize() V3 {
	l := v.Length()
	if l == 0 {
		return Zero
	}
	return V3{v.X / l, v.Y / l, v.Z / l}
}

func (v V3) Neg() V3 {
	return V3{-v.X, -v.Y, -v.Z}
}

func (v V3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsValid reports whether all components are finite.
func (v V3) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
