package sim

import (
	"math"

	"cellular/internal/entity"
	"cellular/internal/geom"
)

// Events reports what happened during one tick.
type Events struct {
	PlayerAte     int  // Cells the player ate
	PlayerLeveled bool // Player multiplier went up
	PlayerEaten   bool // Player was eaten; the round is over
	Trails        int  // Boost trail cells dropped
	Replenished   int  // Cells replaced after cleanup
}

// Tick advances the world by dt seconds: motion, then collisions, then
// replenishment.
func (w *World) Tick(dt float64, in Input) Events {
	var ev Events

	w.updateBoostInput(in.Boost)
	w.move(dt, in, &ev)
	w.collide(&ev)
	ev.Replenished = w.replenish()

	return ev
}

func (w *World) move(dt float64, in Input, ev *Events) {
	for i := 0; i < len(w.cells); i++ {
		c := w.cells[i]
		if !c.Alive() {
			continue
		}
		c.FadeIn(w.cfg.Cells.FadeStep)

		switch c.Kind {
		case entity.KindEnemy:
			target := w.closestPrey(c)
			c.Target = target.ID
			c.Seek(target.Pos, w.cfg.Enemy.MaxForce)
			c.Integrate(w.arena)
		case entity.KindPlayer:
			if w.boost.active {
				ev.Trails += w.boostStep(dt)
			}
			if in.HasTarget {
				c.Follow(in.Target, w.cfg.Player.Easing, w.arena)
			}
			w.timeAlive += dt
		default:
			continue
		}

		c.ShrinkStep(w.rules)
	}
}

// closestPrey returns the nearest live cell strictly smaller than hunter,
// skipping points. Without one the player is the target.
func (w *World) closestPrey(hunter *entity.Cell) *entity.Cell {
	var best *entity.Cell
	minDist := math.Inf(1)
	for _, c := range w.cells {
		if c == hunter || !c.Alive() || c.Kind == entity.KindPoint || c.Radius >= hunter.Radius {
			continue
		}
		if d := geom.Distance(c.Pos, hunter.Pos); d < minDist {
			best, minDist = c, d
		}
	}
	if best == nil {
		return w.player
	}
	return best
}

// updateBoostInput handles press and release of the boost control.
func (w *World) updateBoostInput(held bool) {
	switch {
	case held && !w.boost.active:
		w.boost.active = true
		w.boost.used = true
		w.boost.anchor = w.player.Pos
	case !held && w.boost.active:
		w.boost.active = false
		w.player.MaxSpeed = w.cfg.Player.Speed
	}
}

// boostStep speeds the player up at the cost of radius and drops a trail
// cell every trail interval. At the radius floor the player drops back to
// normal speed. It returns the number of trail cells dropped.
func (w *World) boostStep(dt float64) int {
	p := w.player
	if p.Radius <= w.rules.Floor {
		p.MaxSpeed = w.cfg.Player.Speed
		return 0
	}
	p.MaxSpeed = w.cfg.Player.BoostSpeed
	p.Radius = math.Max(p.Radius-dt*w.cfg.Player.BoostShrink, w.rules.Floor)
	w.boost.timer += dt

	if w.boost.timer <= w.cfg.Player.TrailInterval {
		return 0
	}
	w.boost.timer = 0
	trail := entity.NewStatic(w.newID(), w.boost.anchor, w.cfg.Player.TrailRadius, p.BaseColor)
	w.cells = append(w.cells, trail)
	w.boost.anchor = p.Pos
	return 1
}
