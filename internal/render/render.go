// Package render draws a session onto an ebiten screen: the grid background,
// the cells around the player, the HUD and the title, pause and game-over
// screens.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"cellular/internal/gamemode"
	"cellular/internal/sim"
)

var (
	colBg     = color.RGBA{0x00, 0x00, 0x00, 0xff}
	colGrid   = color.RGBA{0xff, 0xff, 0xff, 0x60}
	colText   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colButton = color.RGBA{0x66, 0xff, 0x66, 0xff}
	colBorder = color.RGBA{0xfd, 0x5b, 0x78, 0xff}
)

// Text scales over the 7x13 bitmap face.
const (
	sizeTitle = 6.0
	sizeSub   = 2.5
	sizeBody  = 2.0
	sizeHUD   = 2.5
	sizePause = 4.0
)

var instructions = []string{
	"Move your mouse to control the cell",
	"Eat other cells to grow larger",
	"As your score and size increases, you level up",
	"Each level increases your multiplier but",
	"your size and max size is decreased",
	"How long can you last?",
}

// Renderer draws sessions. It keeps a reusable circle buffer, so one
// Renderer must not be shared between goroutines.
type Renderer struct {
	w, h    float64
	face    *text.GoXFace
	circles []sim.Circle
}

// New creates a renderer for a w x h logical screen.
func New(w, h int) *Renderer {
	return &Renderer{
		w:       float64(w),
		h:       float64(h),
		face:    text.NewGoXFace(basicfont.Face7x13),
		circles: make([]sim.Circle, 0, 256),
	}
}

// Draw renders one frame of s.
func (r *Renderer) Draw(screen *ebiten.Image, s *gamemode.Session) {
	screen.Fill(colBg)
	hud := s.HUD()

	switch {
	case hud.Paused:
		r.text(screen, "... PAUSED ...", r.w/2, r.h/2, sizePause, text.AlignCenter)
	case hud.State == gamemode.StateBegin:
		r.drawTitle(screen)
	case hud.State == gamemode.StateEnd:
		r.drawGameOver(screen, hud)
	default:
		frame := s.Frame(r.circles)
		r.circles = frame.Circles
		r.drawArena(screen, frame)
		r.drawHUD(screen, hud)
	}

	if hud.Debug {
		msg := fmt.Sprintf("dt: %.3f  tps: %.0f\ncells: %d  enemies: %d\nsession: %s",
			hud.Dt, ebiten.ActualTPS(), hud.Cells, hud.Enemies, hud.SessionID)
		ebitenutil.DebugPrintAt(screen, msg, 10, int(r.h)-50)
	}
}

func (r *Renderer) drawArena(screen *ebiten.Image, f sim.Frame) {
	cam := f.Camera
	w, h := float32(cam.W), float32(cam.H)

	for _, x := range gridLines(cam.X, cam.W, GridSpacing) {
		vector.StrokeLine(screen, float32(x), 0, float32(x), h, 0.5, colGrid, false)
	}
	for _, y := range gridLines(cam.Y, cam.H, GridSpacing) {
		vector.StrokeLine(screen, 0, float32(y), w, float32(y), 0.5, colGrid, false)
	}

	// Arena edges that fall inside the view
	vector.StrokeRect(screen, float32(-cam.X), float32(-cam.Y), float32(f.Arena.W), float32(f.Arena.H), 4, colBorder, false)

	for _, c := range f.Circles {
		x, y := c.X-cam.X, c.Y-cam.Y
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(c.Radius), c.Color, true)
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, hud gamemode.HUD) {
	r.text(screen, scoreLine(hud), 40, 40, sizeHUD, text.AlignStart)
	r.text(screen, timeLine(hud), r.w-40, 40, sizeHUD, text.AlignEnd)
	if hud.ShowHint {
		r.text(screen, "Try left-clicking the mouse to get out of tricky situations", r.w/2, r.h-40, sizeHUD, text.AlignCenter)
	}
}

func (r *Renderer) drawTitle(screen *ebiten.Image) {
	cx, cy := r.w/2, r.h/2
	r.text(screen, "Cellular Contamination", cx, cy-210, sizeTitle, text.AlignCenter)
	r.text(screen, "By Alex Cook", cx, cy-120, sizeSub, text.AlignCenter)
	for i, line := range instructions {
		r.text(screen, line, cx, cy+110+float64(i)*30, sizeBody, text.AlignCenter)
	}
	r.drawButton(screen, buttonLabel(gamemode.StateBegin))
}

func (r *Renderer) drawGameOver(screen *ebiten.Image, hud gamemode.HUD) {
	cx, cy := r.w/2, r.h/2
	r.text(screen, "GAME OVER", cx, cy-150, sizeTitle, text.AlignCenter)
	r.text(screen, fmt.Sprintf("Final Score: %.0f", hud.Score), cx, cy+110, sizeBody, text.AlignCenter)
	r.text(screen, timeLine(hud), cx, cy+140, sizeBody, text.AlignCenter)
	r.text(screen, "Do you want to try again?", cx, cy+170, sizeBody, text.AlignCenter)
	r.drawButton(screen, buttonLabel(gamemode.StateEnd))
}

func (r *Renderer) drawButton(screen *ebiten.Image, label string) {
	b := ButtonRect(r.w, r.h)
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), colButton, false)
	c := b.Center()
	op := r.textOptions(c.X, c.Y, sizeSub, text.AlignCenter)
	op.ColorScale.Reset()
	op.ColorScale.ScaleWithColor(colBg)
	text.Draw(screen, label, r.face, op)
}

func (r *Renderer) text(dst *ebiten.Image, s string, x, y, scale float64, align text.Align) {
	text.Draw(dst, s, r.face, r.textOptions(x, y, scale, align))
}

func (r *Renderer) textOptions(x, y, scale float64, align text.Align) *text.DrawOptions {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colText)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	return op
}
