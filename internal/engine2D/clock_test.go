package engine2D

import (
	"math"
	"testing"
	"time"
)

func TestClockTick(t *testing.T) {
	c := NewClock(0.3)
	start := time.Unix(1000, 0)

	first := c.Tick(start)
	if first.Dt != 0 || first.T != 0 {
		t.Fatalf("first Tick() = %+v, want zero", first)
	}

	second := c.Tick(start.Add(50 * time.Millisecond))
	if math.Abs(second.Dt-0.05) > 1e-9 || math.Abs(second.T-0.015) > 1e-9 {
		t.Errorf("second Tick() = %+v, want Dt 0.05 T 0.015", second)
	}

	// a stall is capped at MaxStep
	third := c.Tick(start.Add(10 * time.Second))
	if third.Dt != DefaultMaxStep {
		t.Errorf("Dt after a stall = %v, want %v", third.Dt, DefaultMaxStep)
	}
	if math.Abs(third.Elapsed-0.15) > 1e-9 {
		t.Errorf("Elapsed = %v, want 0.15", third.Elapsed)
	}
}

func TestClockStepMatchesFrameRate(t *testing.T) {
	c := NewClock(0.3)
	tick := c.Now()
	for i := 0; i < 60; i++ {
		tick = c.Step(1.0 / 60)
	}
	// 0.005 per frame at 60 fps
	if math.Abs(tick.T-0.3) > 1e-9 {
		t.Errorf("T after 60 frames = %v, want 0.3", tick.T)
	}
	if got := tick.Frames(); math.Abs(got-1) > 1e-9 {
		t.Errorf("Frames() = %v, want 1", got)
	}

	if c.Step(-1).Dt != 0 {
		t.Error("negative step was not clamped to zero")
	}
}

func TestClockHold(t *testing.T) {
	c := NewClock(0.3)
	start := time.Unix(1000, 0)
	c.Tick(start)
	before := c.Tick(start.Add(50 * time.Millisecond))

	for i := 1; i <= 300; i++ {
		c.Hold(start.Add(50*time.Millisecond + time.Duration(i)*16*time.Millisecond))
	}
	if c.Now() != before {
		t.Errorf("Hold() moved the clock to %+v, want %+v", c.Now(), before)
	}

	after := c.Tick(start.Add(50*time.Millisecond + 300*16*time.Millisecond + 20*time.Millisecond))
	if math.Abs(after.Dt-0.02) > 1e-9 || math.Abs(after.T-before.T-0.006) > 1e-9 {
		t.Errorf("Tick() after Hold = %+v, want Dt 0.02 and T +0.006", after)
	}
}
