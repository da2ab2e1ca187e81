package entity

import (
	"image/color"
	"math"

	"cellular/internal/geom"
	"cellular/internal/vec"
)

// Kind selects the behavior a Cell dispatches to.
type Kind uint8

const (
	KindStatic Kind = iota // Filler food, never moves
	KindEnemy              // Seeks the closest smaller cell
	KindPlayer             // Follows the pointer target
	KindPoint              // Marker only, never eats and is never sought
)

func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindEnemy:
		return "enemy"
	case KindPlayer:
		return "player"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// State is the lifecycle state of a Cell. StateEaten is terminal.
type State uint8

const (
	StateActive State = iota
	StateEaten
	StateSeeking
	StateHidden
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateEaten:
		return "eaten"
	case StateSeeking:
		return "seeking"
	case StateHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// ID identifies a cell within a world. Zero means "no cell".
type ID uint32

// Color is an opaque RGB triple; opacity is tracked per cell.
type Color struct {
	R, G, B uint8
}

// NRGBA combines the color with an opacity in [0, 1].
func (c Color) NRGBA(opacity float64) color.NRGBA {
	a := geom.Clamp(opacity, 0, 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a * 255))}
}

// Starting opacity of every new cell; FadeIn raises it to 1.
const spawnOpacity = 0.1

// Cell is the shared record of every circular game object. Motion fields are
// only read for enemies and the player.
type Cell struct {
	ID    ID
	Kind  Kind
	State State

	Pos     vec.Vec2
	Radius  float64
	Opacity float64

	BaseColor Color
	Color     Color // Display color, changes on level up

	Score      float64
	Multiplier int
	Shrinking  bool

	Vel      vec.Vec2
	Acc      vec.Vec2
	MaxSpeed float64
	Target   ID // Weak reference, re-resolved each tick
}

func newCell(id ID, kind Kind, state State, pos vec.Vec2, radius float64, c Color) *Cell {
	return &Cell{
		ID:         id,
		Kind:       kind,
		State:      state,
		Pos:        pos,
		Radius:     radius,
		Opacity:    spawnOpacity,
		BaseColor:  c,
		Color:      c,
		Multiplier: 1,
	}
}

// NewPlayer creates the player cell.
func NewPlayer(id ID, pos vec.Vec2, radius, speed float64, c Color) *Cell {
	p := newCell(id, KindPlayer, StateActive, pos, radius, c)
	p.MaxSpeed = speed
	return p
}

// NewEnemy creates a seeking enemy at rest.
func NewEnemy(id ID, pos vec.Vec2, radius, speed float64, c Color) *Cell {
	e := newCell(id, KindEnemy, StateSeeking, pos, radius, c)
	e.MaxSpeed = speed
	return e
}

// NewStatic creates a filler or trail cell.
func NewStatic(id ID, pos vec.Vec2, radius float64, c Color) *Cell {
	return newCell(id, KindStatic, StateActive, pos, radius, c)
}

// NewPoint creates a hidden marker cell.
func NewPoint(id ID, pos vec.Vec2) *Cell {
	return newCell(id, KindPoint, StateHidden, pos, 0, Color{})
}

// Alive reports whether the cell still takes part in the simulation.
func (c *Cell) Alive() bool {
	return c.State != StateEaten
}

// CanEat reports whether the cell may act as the eater in a collision.
func (c *Cell) CanEat() bool {
	return c.Alive() && (c.Kind == KindEnemy || c.Kind == KindPlayer)
}

// Edible reports whether the cell may be eaten.
func (c *Cell) Edible() bool {
	return c.State != StateEaten && c.State != StateHidden
}

// Visible reports whether the cell should be drawn.
func (c *Cell) Visible() bool {
	return c.State != StateEaten && c.State != StateHidden
}

// FadeIn raises opacity by step, capped at 1.
func (c *Cell) FadeIn(step float64) {
	if c.Opacity < 1 {
		c.Opacity = math.Min(1, c.Opacity+step)
	}
}

// NRGBA returns the display color at the current opacity.
func (c *Cell) NRGBA() color.NRGBA {
	return c.Color.NRGBA(c.Opacity)
}
