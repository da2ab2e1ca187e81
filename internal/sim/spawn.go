package sim

import (
	"slices"

	"cellular/internal/entity"
	"cellular/internal/vec"
)

// spawn appends n cells. Enemies are created while the live enemy count is
// under the cap, static filler after that. Colors cycle through the palette
// by position in the batch.
func (w *World) spawn(n int) {
	for i := 0; i < n; i++ {
		c := w.palette[i%len(w.palette)]

		if w.enemies < w.cfg.Cells.MaxEnemies {
			r := w.rules.Floor
			e := entity.NewEnemy(w.newID(), w.randomPos(r), r, w.cfg.Enemy.Speed, c)
			w.cells = append(w.cells, e)
			w.enemies++
			continue
		}

		r := w.randRange(w.cfg.Cells.MinRadius, w.cfg.Cells.MaxRadius)
		w.cells = append(w.cells, entity.NewStatic(w.newID(), w.randomPos(r), r, c))
	}
}

// replenish drops eaten cells and spawns as many replacements once more than
// the configured number have been eaten.
func (w *World) replenish() int {
	if w.eaten <= w.cfg.Cells.ReplenishAfter {
		return 0
	}
	n := w.eaten
	w.cells = slices.DeleteFunc(w.cells, func(c *entity.Cell) bool {
		return !c.Alive() && c != w.player
	})
	w.spawn(n)
	w.eaten = 0
	return n
}

// randomPos picks a point at least 2r away from every arena edge.
func (w *World) randomPos(r float64) vec.Vec2 {
	return vec.New(
		w.randRange(r*2, w.arena.W-r*2),
		w.randRange(r*2, w.arena.H-r*2),
	)
}

func (w *World) randRange(lo, hi float64) float64 {
	return w.rng.Float64()*(hi-lo) + lo
}
