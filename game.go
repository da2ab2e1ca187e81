package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"cellular/internal/gamemode"
	"cellular/internal/input"
	"cellular/internal/render"
	"cellular/internal/vec"
)

// Tracked keys
var keyMap = map[input.Key]ebiten.Key{
	input.KeyPause:    ebiten.KeyP,
	input.KeyDebug:    ebiten.KeyD,
	input.KeyForceEnd: ebiten.KeyR,
	input.KeyConfirm:  ebiten.KeyEnter,
}

// Game adapts a session to ebiten's Update/Draw/Layout loop.
type Game struct {
	session  *gamemode.Session
	renderer *render.Renderer
	width    int
	height   int

	// ebiten reports (0, 0) until the cursor first moves
	seenPointer bool
}

func NewGame(session *gamemode.Session, renderer *render.Renderer, width, height int) *Game {
	return &Game{
		session:  session,
		renderer: renderer,
		width:    width,
		height:   height,
	}
}

// Update: one simulation tick per ebiten tick
func (g *Game) Update() error {
	var snap input.Snapshot
	for k, key := range keyMap {
		snap.Keys.Set(k, ebiten.IsKeyPressed(key))
	}

	x, y := ebiten.CursorPosition()
	cursor := vec.New(float64(x), float64(y))
	if x != 0 || y != 0 {
		g.seenPointer = true
	}
	snap.Pointer, snap.HasPointer = cursor, g.seenPointer
	snap.Boost = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	// Start / try-again button on the title and game-over screens
	if g.session.State != gamemode.StateDefault && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if render.ButtonRect(float64(g.width), float64(g.height)).Contains(cursor) {
			g.session.Confirm()
		}
	}

	g.session.Update(snap)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.session)
}

// Layout: the logical screen is the configured window size, scaled by ebiten
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
