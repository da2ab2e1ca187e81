package clock

import (
	"time"

	"cellular/internal/geom"
)

// TimeSource supplies wall-clock readings.
type TimeSource interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time { return time.Now() }

// System returns the real monotonic clock.
func System() TimeSource { return systemTime{} }

// Clock turns wall-clock deltas into a simulated step. The step is
// 1/fps with fps clamped to [minFPS, maxFPS], so a long stall never
// produces more than 1/minFPS seconds and a burst never less than 1/maxFPS.
type Clock struct {
	src            TimeSource
	minFPS, maxFPS float64
	last           time.Time
	dt             float64
}

// New creates a clock reading from src.
func New(src TimeSource, minFPS, maxFPS float64) *Clock {
	return &Clock{
		src:    src,
		minFPS: minFPS,
		maxFPS: maxFPS,
		last:   src.Now(),
		dt:     1 / maxFPS,
	}
}

// Tick measures the time since the previous tick and returns the clamped step.
func (c *Clock) Tick() float64 {
	now := c.src.Now()
	elapsed := now.Sub(c.last).Seconds()
	c.last = now

	if elapsed <= 0 {
		c.dt = 1 / c.maxFPS
		return c.dt
	}
	fps := geom.Clamp(1/elapsed, c.minFPS, c.maxFPS)
	c.dt = 1 / fps
	return c.dt
}

// Reset restarts measurement from now, dropping the time spent paused.
func (c *Clock) Reset() {
	c.last = c.src.Now()
}

// Last returns the step produced by the most recent Tick.
func (c *Clock) Last() float64 {
	return c.dt
}
