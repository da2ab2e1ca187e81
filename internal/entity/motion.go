package entity

import (
	"cellular/internal/geom"
	"cellular/internal/vec"
)

// Arena is the playable rectangle cells are kept inside.
type Arena struct {
	W, H float64
}

// Follow eases the player toward target. The per-axis step is
// (target - pos) * easing clamped to ±MaxSpeed, then corrected by the arena
// nudge before it is committed.
func (c *Cell) Follow(target vec.Vec2, easing float64, a Arena) {
	d := target.Sub(c.Pos).Scale(easing).Limit(c.MaxSpeed)
	d = geom.Nudge(c.Pos, d, c.Radius, a.W, a.H)
	c.Pos = c.Pos.Add(d)
}

// Seek adds a steering force toward target: the desired velocity points at
// the target with MaxSpeed length, the force is desired - Vel. A maxForce of
// zero leaves the force unclamped. A target on top of the cell is ignored.
func (c *Cell) Seek(target vec.Vec2, maxForce float64) {
	to := target.Sub(c.Pos)
	if to.LenSq() < 1e-12 {
		return
	}
	steer := to.Normalize().Scale(c.MaxSpeed).Sub(c.Vel)
	if maxForce > 0 {
		steer = steer.ClampMagnitude(maxForce)
	}
	c.Acc = c.Acc.Add(steer)
}

// Integrate applies the accumulated acceleration, limits the velocity and
// moves the cell through the arena nudge. Acceleration is reset afterwards.
func (c *Cell) Integrate(a Arena) {
	c.Vel = c.Vel.Add(c.Acc).Limit(c.MaxSpeed)
	d := geom.Nudge(c.Pos, c.Vel, c.Radius, a.W, a.H)
	c.Pos = c.Pos.Add(d)
	c.Acc = vec.Vec2{}
}
