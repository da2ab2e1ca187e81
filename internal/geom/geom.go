// Package geom holds the small geometry helpers shared by the simulation:
// distances, circle overlap, the camera rectangle and the arena boundary nudge.
package geom

import (
	"github.com/peterhellberg/gfx"

	"cellular/internal/vec"
)

// NudgeStep is the push applied on an axis whose move would leave the arena.
const NudgeStep = 1.0

// Distance returns the Euclidean distance between two points.
func Distance(a, b vec.Vec2) float64 {
	return a.Gfx().Sub(b.Gfx()).Len()
}

// Overlap reports whether two circles intersect (touching does not count).
func Overlap(a vec.Vec2, ra float64, b vec.Vec2, rb float64) bool {
	return Distance(a, b) < ra+rb
}

// Clamp constrains v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return gfx.Clamp(v, lo, hi)
}

// Nudge corrects a proposed move for a circle of radius r at pos inside a
// w x h arena. An axis whose move would cross the edge is replaced by a
// NudgeStep push back toward the interior instead of a hard clamp, so a cell
// that grew into a wall keeps moving out of it.
func Nudge(pos, delta vec.Vec2, r, w, h float64) vec.Vec2 {
	if x := pos.X + delta.X; x < r || x > w-r {
		if x < r {
			delta.X = NudgeStep
		} else {
			delta.X = -NudgeStep
		}
	}
	if y := pos.Y + delta.Y; y < r || y > h-r {
		if y < r {
			delta.Y = NudgeStep
		} else {
			delta.Y = -NudgeStep
		}
	}
	return delta
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// CenteredOn returns a w x h rectangle centered on c and shifted to stay
// within a boundsW x boundsH area.
func CenteredOn(c vec.Vec2, w, h, boundsW, boundsH float64) Rect {
	x := Clamp(c.X-w/2, 0, boundsW-w)
	y := Clamp(c.Y-h/2, 0, boundsH-h)
	return Rect{X: x, Y: y, W: w, H: h}
}

// Min returns the top-left corner.
func (r Rect) Min() vec.Vec2 {
	return vec.New(r.X, r.Y)
}

// Center returns the rectangle's center point.
func (r Rect) Center() vec.Vec2 {
	return vec.New(r.X+r.W/2, r.Y+r.H/2)
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p vec.Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// IntersectsCircle reports whether any part of the circle lies inside r.
func (r Rect) IntersectsCircle(c vec.Vec2, radius float64) bool {
	return c.X+radius > r.X && c.X-radius < r.X+r.W &&
		c.Y+radius > r.Y && c.Y-radius < r.Y+r.H
}

// ToWorld converts a point relative to the rectangle into absolute coordinates.
func (r Rect) ToWorld(local vec.Vec2) vec.Vec2 {
	return r.Min().Add(local)
}
