package render

import (
	"fmt"
	"math"

	"cellular/internal/gamemode"
	"cellular/internal/geom"
)

// GridSpacing is the distance between background grid lines in world units.
const GridSpacing = 50.0

const (
	buttonW = 320.0
	buttonH = 72.0
)

// gridLines returns the screen positions of the grid lines crossing a span of
// length size whose world origin is at offset.
func gridLines(offset, size, spacing float64) []float64 {
	first := spacing - math.Mod(offset, spacing)
	if first == spacing {
		first = 0
	}
	var out []float64
	for p := first; p < size; p += spacing {
		out = append(out, p)
	}
	return out
}

// ButtonRect is the start / try-again button, centered in a w x h screen.
func ButtonRect(w, h float64) geom.Rect {
	return geom.Rect{X: (w - buttonW) / 2, Y: (h - buttonH) / 2, W: buttonW, H: buttonH}
}

// buttonLabel returns the button text for state, or "" when there is none.
func buttonLabel(state gamemode.State) string {
	switch state {
	case gamemode.StateBegin:
		return "Start"
	case gamemode.StateEnd:
		return "Try Again"
	default:
		return ""
	}
}

func scoreLine(h gamemode.HUD) string {
	s := fmt.Sprintf("Score: %.0f(%.0f)", math.Round(h.Score), h.NextLevel)
	if h.Multiplier > 1 {
		s += fmt.Sprintf(" | Multiplier: x%d", h.Multiplier)
	}
	return s
}

func timeLine(h gamemode.HUD) string {
	return fmt.Sprintf("Time Alive: %.0f", math.Round(h.TimeAlive))
}
