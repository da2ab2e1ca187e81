package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellular/internal/config"
	"cellular/internal/entity"
	"cellular/internal/geom"
	"cellular/internal/vec"
)

const frameDt = 1.0 / 60

var grey = entity.Color{R: 128, G: 128, B: 128}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return cfg
}

func newWorld(t *testing.T, cfg *config.Config) *World {
	t.Helper()
	return New(cfg, rand.New(rand.NewSource(7)))
}

// bareWorld returns a world holding only the player at the arena center.
func bareWorld(t *testing.T) *World {
	t.Helper()
	w := newWorld(t, testConfig(t))
	w.cells = []*entity.Cell{w.player}
	w.enemies = 0
	return w
}

func addStatic(w *World, pos vec.Vec2, r float64) *entity.Cell {
	c := entity.NewStatic(w.newID(), pos, r, grey)
	w.cells = append(w.cells, c)
	return c
}

func addEnemy(w *World, pos vec.Vec2, r float64) *entity.Cell {
	c := entity.NewEnemy(w.newID(), pos, r, w.cfg.Enemy.Speed, grey)
	w.cells = append(w.cells, c)
	w.enemies++
	return c
}

func countKind(w *World, k entity.Kind) int {
	n := 0
	for _, c := range w.cells {
		if c.Kind == k && c.Alive() {
			n++
		}
	}
	return n
}

func TestResetGeneratesPlayerAndCells(t *testing.T) {
	w := newWorld(t, testConfig(t))

	require.Len(t, w.Cells(), 1001)
	p := w.Player()
	assert.Same(t, p, w.Cells()[0])
	assert.Equal(t, vec.New(5000, 5000), p.Pos)
	assert.Equal(t, 24.0, p.Radius)
	assert.Equal(t, 1, countKind(w, entity.KindPlayer))
	assert.Equal(t, 50, countKind(w, entity.KindEnemy))
	assert.Equal(t, 50, w.Stats().Enemies)

	for _, c := range w.Cells()[1:] {
		assert.GreaterOrEqual(t, c.Pos.X, 2*c.Radius)
		assert.LessOrEqual(t, c.Pos.X, w.arena.W-2*c.Radius)
		if c.Kind == entity.KindStatic {
			assert.GreaterOrEqual(t, c.Radius, 8.0)
			assert.Less(t, c.Radius, 15.0)
		} else {
			assert.Equal(t, 16.0, c.Radius)
			assert.Equal(t, entity.StateSeeking, c.State)
		}
	}

	w.player.Score = 500
	w.Reset()
	assert.Len(t, w.Cells(), 1001)
	assert.Equal(t, 0.0, w.Stats().Score)
	assert.Equal(t, 1, w.Stats().Multiplier)
}

func TestPlayerEatsSmallerCell(t *testing.T) {
	w := bareWorld(t)
	food := addStatic(w, vec.New(5030, 5000), 10)

	ev := w.Tick(frameDt, Input{})

	assert.Equal(t, 1, ev.PlayerAte)
	assert.Equal(t, entity.StateEaten, food.State)
	assert.InDelta(t, 25.0, w.player.Radius, 1e-9)
	assert.InDelta(t, 2.5, w.Stats().Score, 1e-9)
	assert.Equal(t, 1000.0, w.Stats().NextLevel)
}

func TestEqualOrLargerIsNotEaten(t *testing.T) {
	w := bareWorld(t)
	twin := addEnemy(w, vec.New(5030, 5000), 24)
	twin.MaxSpeed = 0

	ev := w.Tick(frameDt, Input{})

	assert.Zero(t, ev.PlayerAte)
	assert.True(t, twin.Alive())
	assert.True(t, w.player.Alive())
	assert.Equal(t, 24.0, w.player.Radius)
}

func TestLargerEnemyEatsPlayer(t *testing.T) {
	w := bareWorld(t)
	big := addEnemy(w, vec.New(5040, 5000), 30)

	ev := w.Tick(frameDt, Input{})

	assert.True(t, ev.PlayerEaten)
	assert.Equal(t, entity.StateEaten, w.player.State)
	assert.InDelta(t, 32.4, big.Radius, 1e-9)
	assert.InDelta(t, 3.24, big.Score, 1e-9)
}

func TestEatenCellsAreExcluded(t *testing.T) {
	w := bareWorld(t)
	ghost := addEnemy(w, vec.New(5200, 5000), 20)
	ghost.State = entity.StateEaten
	crumb := addStatic(w, vec.New(5210, 5000), 8)

	for i := 0; i < 5; i++ {
		w.Tick(frameDt, Input{})
	}

	assert.Equal(t, vec.New(5200, 5000), ghost.Pos, "eaten cells do not move")
	assert.Equal(t, 20.0, ghost.Radius)
	assert.True(t, crumb.Alive(), "eaten cells do not eat")

	for _, c := range w.Frame(nil).Circles {
		assert.NotEqual(t, 20.0, c.Radius, "eaten cells are not drawn")
	}
}

func TestPointsAreNeverEatenOrSought(t *testing.T) {
	w := bareWorld(t)
	pt := entity.NewPoint(w.newID(), vec.New(5010, 5000))
	w.cells = append(w.cells, pt)
	hunter := addEnemy(w, vec.New(2000, 2000), 16)

	w.Tick(frameDt, Input{})

	assert.Equal(t, entity.StateHidden, pt.State)
	assert.Equal(t, w.player.ID, hunter.Target, "no smaller prey falls back to the player")
}

func TestEnemyTargetsClosestSmaller(t *testing.T) {
	w := bareWorld(t)
	hunter := addEnemy(w, vec.New(1000, 1000), 16)
	addStatic(w, vec.New(1100, 1000), 10)
	near := addStatic(w, vec.New(1000, 1050), 10)
	addStatic(w, vec.New(1020, 1000), 16) // Same size: not prey

	w.Tick(frameDt, Input{})

	assert.Equal(t, near.ID, hunter.Target)
	assert.InDelta(t, 1000.0, hunter.Pos.X, 1e-9)
	assert.InDelta(t, 1004.0, hunter.Pos.Y, 1e-9)
}

func TestReplenishAfterMoreThanTenEats(t *testing.T) {
	w := bareWorld(t)
	center := w.player.Pos
	ring := func(n int) {
		for k := 0; k < n; k++ {
			a := 2 * math.Pi * float64(k) / float64(n)
			addStatic(w, center.Add(vec.New(math.Cos(a), math.Sin(a)).Scale(30)), 10)
		}
	}

	ring(10)
	ev := w.Tick(frameDt, Input{})
	assert.Equal(t, 10, ev.PlayerAte)
	assert.Zero(t, ev.Replenished, "ten eats is not enough")
	assert.Len(t, w.cells, 11)

	ring(1)
	before := len(w.cells)
	ev = w.Tick(frameDt, Input{})
	assert.Equal(t, 1, ev.PlayerAte)
	assert.Equal(t, 11, ev.Replenished)
	assert.Len(t, w.cells, before)
	assert.Equal(t, before, w.LiveCount())
	assert.Zero(t, w.eaten)
}

func TestEnemyEatingEnemyLowersEnemyCount(t *testing.T) {
	w := bareWorld(t)
	big := addEnemy(w, vec.New(2000, 2000), 30)
	small := addEnemy(w, vec.New(2005, 2000), 16)
	require.Equal(t, 2, w.Stats().Enemies)

	w.Tick(frameDt, Input{})

	assert.Equal(t, entity.StateEaten, small.State)
	assert.InDelta(t, 31.6, big.Radius, 1e-9)
	assert.Equal(t, 1, w.Stats().Enemies)
	assert.Equal(t, 1, countKind(w, entity.KindEnemy))
}

func TestReplenishRefillsEnemiesUpToCap(t *testing.T) {
	w := bareWorld(t)
	w.cfg.Cells.MaxEnemies = 3
	center := w.player.Pos

	addEnemy(w, vec.New(1000, 1000), 16)
	addEnemy(w, vec.New(9000, 9000), 16)
	prey := addEnemy(w, center.Add(vec.New(30, 0)), 16)
	for k := 1; k < 11; k++ {
		a := 2 * math.Pi * float64(k) / 11
		addStatic(w, center.Add(vec.New(math.Cos(a), math.Sin(a)).Scale(30)), 10)
	}
	require.Equal(t, 3, w.Stats().Enemies)

	ev := w.Tick(frameDt, Input{})

	require.Equal(t, 11, ev.PlayerAte)
	assert.Equal(t, entity.StateEaten, prey.State)
	require.Equal(t, 11, ev.Replenished)
	assert.Equal(t, 3, w.Stats().Enemies, "one enemy replaced, the rest is filler")
	assert.Equal(t, 3, countKind(w, entity.KindEnemy))
	assert.Equal(t, 10, countKind(w, entity.KindStatic))
	assert.Equal(t, 14, w.LiveCount())
}

func TestEndToEndThousandCells(t *testing.T) {
	cfg := testConfig(t)
	w := newWorld(t, cfg)
	total := cfg.Cells.StartCount + 1

	// Keep the neighborhood of the player clear so only placed food is eaten
	for _, c := range w.cells[1:] {
		for geom.Distance(c.Pos, w.player.Pos) < 400 {
			c.Pos = w.randomPos(c.Radius)
		}
	}

	used := map[entity.ID]bool{}
	nextFood := func() *entity.Cell {
		for _, c := range w.cells {
			if c.Kind == entity.KindStatic && c.Alive() && !used[c.ID] {
				used[c.ID] = true
				return c
			}
		}
		t.Fatal("no static cell left")
		return nil
	}

	first := nextFood()
	first.Radius = 10
	first.Pos = w.player.Pos.Add(vec.New(30, 0))

	scoreBefore := w.player.Score
	ev := w.Tick(frameDt, Input{})
	require.Equal(t, 1, ev.PlayerAte)
	assert.InDelta(t, 25.0, w.player.Radius, 1e-9)
	assert.InDelta(t, 2.5*float64(w.player.Multiplier), w.player.Score-scoreBefore, 1e-9)

	replenished := false
	for i := 0; i < 10; i++ {
		food := nextFood()
		food.Radius = 10
		food.Pos = w.player.Pos.Add(vec.New(0, w.player.Radius+5))

		ev = w.Tick(frameDt, Input{})
		require.GreaterOrEqual(t, ev.PlayerAte, 1)
		if ev.Replenished > 0 {
			replenished = true
			assert.Equal(t, total, w.LiveCount())
			assert.Len(t, w.cells, total)
		}
		assert.Equal(t, 1, countKind(w, entity.KindPlayer))
	}
	assert.True(t, replenished, "eleven eats must trigger a replenishment")
}

func TestBoostDropsTrailAndShrinks(t *testing.T) {
	w := bareWorld(t)
	w.player.Radius = 30
	start := w.player.Pos
	in := Input{Target: start.Add(vec.New(2000, 0)), HasTarget: true, Boost: true}

	trails := 0
	for i := 0; i < 11; i++ {
		trails += w.Tick(frameDt, in).Trails
	}
	assert.Zero(t, trails)
	assert.Equal(t, 6.0, w.player.MaxSpeed)
	assert.True(t, w.BoostUsed())

	for i := 0; i < 3; i++ {
		trails += w.Tick(frameDt, in).Trails
	}
	require.Equal(t, 1, trails)

	trail := w.cells[len(w.cells)-1]
	assert.Equal(t, entity.KindStatic, trail.Kind)
	assert.Equal(t, start, trail.Pos)
	assert.Equal(t, 10.0, trail.Radius)
	assert.Equal(t, w.player.BaseColor, trail.BaseColor)
	assert.True(t, trail.Alive())

	assert.InDelta(t, 30-14*frameDt*10, w.player.Radius, 1e-9)
	assert.InDelta(t, start.X+14*6, w.player.Pos.X, 1e-9)

	in.Boost = false
	w.Tick(frameDt, in)
	assert.Equal(t, 4.0, w.player.MaxSpeed)
}

func TestBoostStopsAtFloor(t *testing.T) {
	w := bareWorld(t)
	w.player.Radius = 16.1
	in := Input{Boost: true}

	w.Tick(1.0/12, in)
	assert.Equal(t, 16.0, w.player.Radius)

	w.Tick(1.0/12, in)
	assert.Equal(t, 16.0, w.player.Radius)
	assert.Equal(t, 4.0, w.player.MaxSpeed)
}

func TestLevelUpShrinksPlayer(t *testing.T) {
	w := bareWorld(t)
	w.player.Radius = 40
	w.player.Score = 999
	addStatic(w, w.player.Pos.Add(vec.New(45, 0)), 10)

	ev := w.Tick(frameDt, Input{})
	require.True(t, ev.PlayerLeveled)
	assert.Equal(t, 2, w.Stats().Multiplier)
	assert.Equal(t, 1500.0, w.Stats().NextLevel)
	assert.True(t, w.player.Shrinking)
	assert.InDelta(t, 41.0, w.player.Radius, 1e-9)

	radii := []float64{}
	for i := 0; i < 4; i++ {
		w.Tick(frameDt, Input{})
		radii = append(radii, w.player.Radius)
	}
	assert.InDeltaSlice(t, []float64{31, 21, 16, 16}, radii, 1e-9)
	assert.False(t, w.player.Shrinking)
	assert.Equal(t, 2, w.Stats().Multiplier, "multiplier never drops")
}

func TestBoundaryNudge(t *testing.T) {
	w := bareWorld(t)
	w.player.Pos = vec.New(25, 500)
	hunter := addEnemy(w, vec.New(17, 100), 16)
	hunter.Vel = vec.New(-4, 0)
	addStatic(w, vec.New(10, 100), 5)

	w.Tick(frameDt, Input{Target: vec.New(-100, 500), HasTarget: true})

	assert.Equal(t, 26.0, w.player.Pos.X)
	assert.Equal(t, 18.0, hunter.Pos.X)
	for _, c := range []*entity.Cell{w.player, hunter} {
		assert.GreaterOrEqual(t, c.Pos.X, c.Radius-geom.NudgeStep)
		assert.LessOrEqual(t, c.Pos.X, w.arena.W-c.Radius+geom.NudgeStep)
	}
}

func TestMissingTargetLeavesPlayerInPlace(t *testing.T) {
	w := bareWorld(t)
	start := w.player.Pos

	w.Tick(frameDt, Input{})
	assert.Equal(t, start, w.player.Pos)
	assert.InDelta(t, frameDt, w.Stats().TimeAlive, 1e-12)
}

func TestFrameExportsVisibleCells(t *testing.T) {
	w := bareWorld(t)
	onScreen := addStatic(w, w.player.Pos.Add(vec.New(300, 100)), 12)
	addStatic(w, vec.New(100, 100), 12)
	eaten := addStatic(w, w.player.Pos.Add(vec.New(-300, 0)), 12)
	eaten.State = entity.StateEaten

	f := w.Frame(make([]Circle, 0, 8))

	assert.Equal(t, geom.Rect{X: 4040, Y: 4460, W: 1920, H: 1080}, f.Camera)
	require.Len(t, f.Circles, 2)
	assert.Equal(t, entity.KindPlayer, f.Circles[0].Kind)
	assert.Equal(t, onScreen.Pos.X, f.Circles[1].X)
	assert.Equal(t, uint8(math.Round(0.1*255)), f.Circles[1].Color.A)
}

func TestViewportIsCappedByArena(t *testing.T) {
	w := bareWorld(t)
	w.SetViewport(20000, 500)
	cam := w.Camera()
	assert.Equal(t, 10000.0, cam.W)
	assert.Equal(t, 0.0, cam.X)
	assert.Equal(t, 500.0, cam.H)
}
