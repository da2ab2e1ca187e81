// Package vec is the 2D vector type of the simulation. It is gfx.Vec with
// the few helpers steering needs on top: per-axis limiting, magnitude
// clamping and a normalize that leaves the zero vector alone.
package vec

import "github.com/peterhellberg/gfx"

// Vec2 is a 2D vector used for positions, velocities and accelerations.
type Vec2 gfx.Vec

// New returns the vector (x, y).
func New(x, y float64) Vec2 {
	return Vec2(gfx.V(x, y))
}

// Gfx returns v as a gfx vector.
func (v Vec2) Gfx() gfx.Vec {
	return gfx.Vec(v)
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2(v.Gfx().Add(o.Gfx()))
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2(v.Gfx().Sub(o.Gfx()))
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2(v.Gfx().Scaled(f))
}

// Len returns the Euclidean length.
func (v Vec2) Len() float64 {
	return v.Gfx().Len()
}

// LenSq returns the squared length without a sqrt.
func (v Vec2) LenSq() float64 {
	return v.Gfx().Dot(v.Gfx())
}

// Normalize returns the unit vector. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	if v.IsZero() {
		return Vec2{}
	}
	return Vec2(v.Gfx().Unit())
}

// ClampMagnitude limits the vector to max while preserving direction.
func (v Vec2) ClampMagnitude(max float64) Vec2 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// Limit clamps each axis independently to [-max, max].
// Velocities are limited this way, so a diagonal can exceed max in length.
func (v Vec2) Limit(max float64) Vec2 {
	return New(gfx.Clamp(v.X, -max, max), gfx.Clamp(v.Y, -max, max))
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
