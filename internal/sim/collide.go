package sim

import (
	"cellular/internal/entity"
	"cellular/internal/geom"
)

// collide runs the full pairwise pass. Every live enemy or player is checked
// against every other edible cell; on overlap the strictly larger one eats.
func (w *World) collide(ev *Events) {
	for _, a := range w.cells {
		if !a.CanEat() {
			continue
		}
		for _, b := range w.cells {
			if a == b || !b.Edible() {
				continue
			}
			if a.Radius <= b.Radius || !geom.Overlap(a.Pos, a.Radius, b.Pos, b.Radius) {
				continue
			}
			w.consume(a, b, ev)
		}
	}
}

func (w *World) consume(a, b *entity.Cell, ev *Events) {
	a.Eat(b)
	w.eaten++
	leveled := a.TryLevelUp(w.rules, w.palette)

	if a == w.player {
		ev.PlayerAte++
		ev.PlayerLeveled = ev.PlayerLeveled || leveled
	}
	if b.Kind == entity.KindEnemy {
		w.enemies--
	}
	if b == w.player {
		ev.PlayerEaten = true
	}
}
