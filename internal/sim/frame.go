package sim

import (
	"image/color"

	"cellular/internal/entity"
	"cellular/internal/geom"
)

// Circle is one drawable cell in world coordinates.
type Circle struct {
	X, Y   float64
	Radius float64
	Color  color.NRGBA
	Kind   entity.Kind
}

// Frame is everything a renderer needs for one tick.
type Frame struct {
	Camera  geom.Rect
	Arena   entity.Arena
	Circles []Circle
}

// Frame exports the visible cells in collection order. Eaten and hidden
// cells and cells outside the camera are left out. dst is reused when it
// has capacity.
func (w *World) Frame(dst []Circle) Frame {
	cam := w.Camera()
	out := dst[:0]
	for _, c := range w.cells {
		if !c.Visible() || !cam.IntersectsCircle(c.Pos, c.Radius) {
			continue
		}
		out = append(out, Circle{
			X:      c.Pos.X,
			Y:      c.Pos.Y,
			Radius: c.Radius,
			Color:  c.NRGBA(),
			Kind:   c.Kind,
		})
	}
	return Frame{Camera: cam, Arena: w.arena, Circles: out}
}
