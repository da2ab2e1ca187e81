package entity

import "math"

// Leveling holds the score thresholds and the post level-up shrink.
type Leveling struct {
	Base       float64 // Threshold at multiplier 0
	Step       float64 // Threshold increase per multiplier
	ShrinkStep float64 // Radius lost per tick while shrinking
	Floor      float64 // Radius the shrink and boost stop at
}

// Threshold returns the score a cell with multiplier mult must exceed to level.
func (l Leveling) Threshold(mult int) float64 {
	return l.Base + l.Step*float64(mult)
}

// Eat consumes prey: prey becomes eaten, the eater grows by a tenth of the
// prey radius and scores a tenth of its new radius times its multiplier.
// It returns the score gained.
func (c *Cell) Eat(prey *Cell) float64 {
	prey.State = StateEaten
	c.Radius += prey.Radius / 10
	gain := (c.Radius / 10) * float64(c.Multiplier)
	c.Score += gain
	return gain
}

// TryLevelUp raises the multiplier once the score passes the current
// threshold and starts the shrink animation. The display color is picked
// from palette by the old multiplier.
func (c *Cell) TryLevelUp(l Leveling, palette []Color) bool {
	if c.Score <= l.Threshold(c.Multiplier) {
		return false
	}
	if len(palette) > 0 {
		c.Color = palette[c.Multiplier%len(palette)]
	}
	c.Multiplier++
	c.Shrinking = true
	return true
}

// ShrinkStep moves the radius one step toward the floor and clears
// Shrinking once it is reached.
func (c *Cell) ShrinkStep(l Leveling) {
	if !c.Shrinking {
		return
	}
	c.Radius = math.Max(c.Radius-l.ShrinkStep, l.Floor)
	if c.Radius <= l.Floor {
		c.Shrinking = false
	}
}
