package terminal

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellular/internal/audio"
	"cellular/internal/clock"
	"cellular/internal/config"
	"cellular/internal/gamemode"
	"cellular/internal/input"
	"cellular/internal/log"
	"cellular/internal/sim"
	"cellular/internal/vec"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func newSession(t *testing.T) *gamemode.Session {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.Cells.StartCount = 0

	world := sim.New(cfg, rand.New(rand.NewSource(1)))
	clk := clock.New(clock.System(), cfg.Clock.MinFPS, cfg.Clock.MaxFPS)
	return gamemode.New(world, clk, audio.Nop{}, log.Nop())
}

func rowText(s tcell.Screen, row int) string {
	cols, _ := s.Size()
	out := make([]rune, 0, cols)
	for col := 0; col < cols; col++ {
		r, _, _, _ := s.GetContent(col, row)
		out = append(out, r)
	}
	return string(out)
}

func TestScale(t *testing.T) {
	v := NewView(newScreen(t, 192, 108), 1920, 1080)
	sx, sy := v.Scale()
	assert.Equal(t, 10.0, sx)
	assert.Equal(t, 10.0, sy)
}

func TestMouseMapsToViewport(t *testing.T) {
	v := NewView(newScreen(t, 192, 108), 1920, 1080)
	tr := NewTranslator(v)

	assert.False(t, tr.Snapshot().HasPointer)

	quit := tr.Handle(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	assert.False(t, quit)

	snap := tr.Snapshot()
	assert.True(t, snap.HasPointer)
	assert.Equal(t, vec.New(105, 55), snap.Pointer)
	assert.True(t, snap.Boost)

	tr.Handle(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	assert.False(t, tr.Snapshot().Boost)
}

func pressRune(tr *Translator, r rune) {
	tr.Handle(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func TestSnapshotReleasesKeys(t *testing.T) {
	tr := NewTranslator(NewView(newScreen(t, 80, 24), 1920, 1080))
	pressRune(tr, 'p')

	assert.True(t, tr.Snapshot().Keys.Down(input.KeyPause))
	assert.False(t, tr.Snapshot().Keys.Down(input.KeyPause))
	assert.False(t, tr.Snapshot().Keys.Down(input.KeyPause))
}

func TestConsecutivePressesAreSeparated(t *testing.T) {
	tr := NewTranslator(NewView(newScreen(t, 80, 24), 1920, 1080))
	var edges input.Edges
	presses := 0
	snapshot := func() {
		if edges.Pressed(tr.Snapshot().Keys).Down(input.KeyPause) {
			presses++
		}
	}

	// Pressed again right after the first press was delivered
	pressRune(tr, 'p')
	snapshot()
	pressRune(tr, 'p')
	snapshot()
	snapshot()
	assert.Equal(t, 2, presses)

	// Two presses between snapshots
	pressRune(tr, 'p')
	pressRune(tr, 'p')
	for i := 0; i < 4; i++ {
		snapshot()
	}
	assert.Equal(t, 4, presses)

	// Other keys are not held back by a queued press
	assert.False(t, tr.Snapshot().Keys.Down(input.KeyPause))
	pressRune(tr, 'p')
	pressRune(tr, 'p')
	assert.True(t, tr.Snapshot().Keys.Down(input.KeyPause))
	pressRune(tr, 'd')
	snap := tr.Snapshot()
	assert.False(t, snap.Keys.Down(input.KeyPause))
	assert.True(t, snap.Keys.Down(input.KeyDebug))
}

func TestDrawTitleScreen(t *testing.T) {
	screen := newScreen(t, 192, 108)
	v := NewView(screen, 1920, 1080)

	v.Draw(newSession(t))
	assert.Contains(t, rowText(screen, 51), "Cellular Contamination")
}

func TestDrawPlayerAtCenter(t *testing.T) {
	screen := newScreen(t, 192, 108)
	v := NewView(screen, 1920, 1080)
	s := newSession(t)
	s.ConfirmStart()
	s.Update(input.Snapshot{})

	v.Draw(s)

	_, style := contentStyle(screen, 96, 54)
	_, bg, _ := style.Decompose()
	assert.NotEqual(t, tcell.ColorDefault, bg)
	assert.NotEqual(t, tcell.ColorBlack, bg)

	_, style = contentStyle(screen, 10, 10)
	_, bg, _ = style.Decompose()
	assert.Equal(t, tcell.ColorDefault, bg, "empty arena stays unpainted")

	assert.Contains(t, rowText(screen, 0), "Score: 0(1000) x1")
}

func contentStyle(s tcell.Screen, col, row int) (rune, tcell.Style) {
	r, _, style, _ := s.GetContent(col, row)
	return r, style
}
