// Package terminal plays a session in a text terminal through tcell. The
// viewport is squeezed onto the character grid: every terminal cell covers a
// fixed rectangle of world units.
package terminal

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"cellular/internal/gamemode"
	"cellular/internal/sim"
)

var (
	styleText = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleDim  = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
)

// View draws sessions onto a tcell screen.
type View struct {
	screen       tcell.Screen
	viewW, viewH float64
	circles      []sim.Circle
}

// NewView creates a view mapping a viewW x viewH world viewport onto screen.
func NewView(screen tcell.Screen, viewW, viewH float64) *View {
	return &View{screen: screen, viewW: viewW, viewH: viewH}
}

// Scale returns the world units covered by one terminal column and row.
func (v *View) Scale() (sx, sy float64) {
	cols, rows := v.screen.Size()
	return v.viewW / float64(max(cols, 1)), v.viewH / float64(max(rows, 1))
}

// Draw renders one frame of s and shows it.
func (v *View) Draw(s *gamemode.Session) {
	v.screen.Clear()
	cols, rows := v.screen.Size()
	hud := s.HUD()

	switch {
	case hud.Paused:
		v.center(rows/2, "... PAUSED ...", styleText)
	case hud.State == gamemode.StateBegin:
		v.center(rows/2-3, "Cellular Contamination", styleText.Bold(true))
		v.center(rows/2-1, "Move the mouse to steer, hold the left button to boost", styleDim)
		v.center(rows/2+1, "Press Enter to start, q to quit", styleText)
	case hud.State == gamemode.StateEnd:
		v.center(rows/2-3, "GAME OVER", styleText.Bold(true))
		v.center(rows/2-1, fmt.Sprintf("Final Score: %.0f  Time Alive: %.0f", hud.Score, hud.TimeAlive), styleText)
		v.center(rows/2+1, "Press Enter to try again, q to quit", styleText)
	default:
		frame := s.Frame(v.circles)
		v.circles = frame.Circles
		v.drawCells(frame)
		v.print(0, 0, fmt.Sprintf("Score: %.0f(%.0f) x%d", math.Round(hud.Score), hud.NextLevel, hud.Multiplier), styleText)
		v.print(cols-20, 0, fmt.Sprintf("Time Alive: %.0f", hud.TimeAlive), styleText)
	}

	if hud.Debug {
		v.print(0, rows-1, fmt.Sprintf("dt: %.3f cells: %d enemies: %d", hud.Dt, hud.Cells, hud.Enemies), styleDim)
	}
	v.screen.Show()
}

// drawCells fills every terminal cell whose center lies inside a circle.
// Circles too small to cover any center get a single dot.
func (v *View) drawCells(f sim.Frame) {
	cols, rows := v.screen.Size()
	sx, sy := v.Scale()
	cam := f.Camera

	for _, c := range f.Circles {
		x, y := c.X-cam.X, c.Y-cam.Y
		bg := tcell.NewRGBColor(blend(c.Color.R, c.Color.A), blend(c.Color.G, c.Color.A), blend(c.Color.B, c.Color.A))

		painted := false
		c0, c1 := max(int((x-c.Radius)/sx), 0), min(int((x+c.Radius)/sx), cols-1)
		r0, r1 := max(int((y-c.Radius)/sy), 0), min(int((y+c.Radius)/sy), rows-1)
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				px, py := (float64(col)+0.5)*sx, (float64(row)+0.5)*sy
				if math.Hypot(px-x, py-y) <= c.Radius {
					v.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(bg))
					painted = true
				}
			}
		}
		if !painted {
			col, row := int(x/sx), int(y/sy)
			if col >= 0 && col < cols && row >= 0 && row < rows {
				v.screen.SetContent(col, row, '•', nil, tcell.StyleDefault.Foreground(bg).Background(tcell.ColorBlack))
			}
		}
	}
}

// blend premultiplies a channel by alpha over black.
func blend(ch, a uint8) int32 {
	return int32(ch) * int32(a) / 255
}

func (v *View) center(row int, s string, style tcell.Style) {
	cols, _ := v.screen.Size()
	v.print((cols-len([]rune(s)))/2, row, s, style)
}

func (v *View) print(col, row int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(col, row, r, nil, style)
		col++
	}
}
