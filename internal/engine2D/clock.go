package engine2D

import (
	"time"

	"linux-starfield/internal/wallpaper"
)

// DefaultMaxStep caps a single frame delta so a stalled host does not make
// the animation jump.
const DefaultMaxStep = 0.1

// Clock turns frame deltas into animation ticks. T advances by TimeScale per
// second of frame time.
type Clock struct {
	TimeScale float64
	MaxStep   float64

	last    time.Time
	started bool
	tick    wallpaper.Tick
}

func NewClock(timeScale float64) *Clock {
	return &Clock{TimeScale: timeScale, MaxStep: DefaultMaxStep}
}

// Tick advances by the wall time since the previous call. The first call
// returns a zero delta.
func (c *Clock) Tick(now time.Time) wallpaper.Tick {
	dt := 0.0
	if c.started {
		dt = now.Sub(c.last).Seconds()
	}
	c.last, c.started = now, true
	return c.Step(dt)
}

// Hold marks now as the previous frame without advancing, so time spent
// paused is not replayed by the next Tick.
func (c *Clock) Hold(now time.Time) {
	c.last, c.started = now, true
}

// Step advances by a fixed delta in seconds.
func (c *Clock) Step(dt float64) wallpaper.Tick {
	if dt < 0 {
		dt = 0
	}
	if c.MaxStep > 0 && dt > c.MaxStep {
		dt = c.MaxStep
	}
	c.tick.T += dt * c.TimeScale
	c.tick.Dt = dt
	c.tick.Elapsed += dt
	return c.tick
}

func (c *Clock) Now() wallpaper.Tick {
	return c.tick
}
