// Package sim owns the cell collection and advances it one tick at a time:
// motion, boosting, collisions and consumption, leveling and replenishment.
// It is single-threaded; callers drive it through Tick.
package sim

import (
	"math"
	"math/rand"

	"cellular/internal/config"
	"cellular/internal/entity"
	"cellular/internal/geom"
	"cellular/internal/vec"
)

// Input is the per-tick control state, already in world coordinates.
type Input struct {
	Target    vec.Vec2
	HasTarget bool
	Boost     bool
}

// Stats are the player numbers shown on the HUD.
type Stats struct {
	Score      float64
	Multiplier int
	NextLevel  float64
	TimeAlive  float64
	Cells      int
	Enemies    int
}

type boostState struct {
	active bool
	timer  float64
	anchor vec.Vec2 // Where the next trail cell is dropped
	used   bool
}

// World is the arena and everything in it.
type World struct {
	cfg     *config.Config
	rules   entity.Leveling
	palette []entity.Color
	arena   entity.Arena
	viewW   float64
	viewH   float64
	rng     *rand.Rand

	cells   []*entity.Cell
	player  *entity.Cell
	nextID  entity.ID
	enemies int // Live enemies
	eaten   int // Eaten since the last replenishment

	boost     boostState
	timeAlive float64
}

// New creates a world from cfg and generates the starting cells.
func New(cfg *config.Config, rng *rand.Rand) *World {
	w := &World{
		cfg:     cfg,
		rules:   cfg.LevelRules(),
		palette: cfg.Palette(),
		arena:   entity.Arena{W: cfg.Arena.Width, H: cfg.Arena.Height},
		rng:     rng,
	}
	w.SetViewport(float64(cfg.Window.Width), float64(cfg.Window.Height))
	w.Reset()
	return w
}

// Reset throws away every cell and generates a fresh set: the player at the
// arena center plus the configured number of cells.
func (w *World) Reset() {
	w.cells = make([]*entity.Cell, 0, w.cfg.Cells.StartCount+1)
	w.enemies = 0
	w.eaten = 0
	w.timeAlive = 0
	w.boost = boostState{}

	center := vec.New(w.arena.W/2, w.arena.H/2)
	w.player = entity.NewPlayer(w.newID(), center, w.cfg.Player.Radius, w.cfg.Player.Speed, w.palette[0])
	w.cells = append(w.cells, w.player)
	w.spawn(w.cfg.Cells.StartCount)
}

// SetViewport sets the camera size in world units, capped at the arena size.
func (w *World) SetViewport(width, height float64) {
	w.viewW = math.Min(width, w.arena.W)
	w.viewH = math.Min(height, w.arena.H)
}

// Player returns the player cell.
func (w *World) Player() *entity.Cell {
	return w.player
}

// Cells returns the live collection in order. Callers must not keep it
// across ticks.
func (w *World) Cells() []*entity.Cell {
	return w.cells
}

// Arena returns the arena size.
func (w *World) Arena() entity.Arena {
	return w.arena
}

// Camera returns the viewport centered on the player and clamped to the arena.
func (w *World) Camera() geom.Rect {
	return geom.CenteredOn(w.player.Pos, w.viewW, w.viewH, w.arena.W, w.arena.H)
}

// BoostUsed reports whether the player has boosted since the last reset.
func (w *World) BoostUsed() bool {
	return w.boost.used
}

// Stats returns the player's HUD numbers.
func (w *World) Stats() Stats {
	return Stats{
		Score:      w.player.Score,
		Multiplier: w.player.Multiplier,
		NextLevel:  math.Round(w.rules.Threshold(w.player.Multiplier)),
		TimeAlive:  w.timeAlive,
		Cells:      w.LiveCount(),
		Enemies:    w.enemies,
	}
}

// LiveCount returns the number of cells that are not eaten.
func (w *World) LiveCount() int {
	n := 0
	for _, c := range w.cells {
		if c.Alive() {
			n++
		}
	}
	return n
}

func (w *World) newID() entity.ID {
	w.nextID++
	return w.nextID
}
