package starfield

import (
	"math"

	"linux-starfield/internal/wallpaper"
)

func (f *Field) step(star *Star, in wallpaper.Input, tick wallpaper.Tick) {
	w, h := float64(in.Width), float64(in.Height)
	t, s := tick.T, in.Scroll
	v := math.Abs(s - star.LastScroll)
	prev := star.Pos

	restarted := false
	if star.Streak {
		star.StreakProgress += star.StreakSpeed * f.cfg.StreakRate * tick.Dt
		if star.StreakProgress > 1 {
			f.respawnStreak(star, w, h)
			restarted = true
		} else {
			travel := star.StreakSpeed * f.cfg.StreakTravel * tick.Dt
			star.Anchor.X += math.Cos(star.StreakAngle) * travel
			star.Anchor.Y += math.Sin(star.StreakAngle) * travel
		}
	}

	pos := f.Position(star, in, t, v)
	wrapped := wallpaper.Vec2{X: wrap(pos.X, -0.1*w, 1.1*w), Y: wrap(pos.Y, -0.1*h, 1.1*h)}
	star.Wrapped = wrapped != pos
	star.Pos = wrapped

	star.Brightness = f.brightness(star, t, s)

	if restarted {
		star.LastPos = star.Pos
	} else {
		star.LastPos = prev
	}
	star.ScrollSpeed = v
	star.LastScroll = s
}

// Position computes where a star is displayed at time t, before wrapping. It
// depends only on the star's anchor and the arguments.
func (f *Field) Position(star *Star, in wallpaper.Input, t, scrollSpeed float64) wallpaper.Vec2 {
	cfg := f.cfg
	w, h := float64(in.Width), float64(in.Height)
	s := in.Scroll
	center := in.Center()

	pos := star.Anchor
	if !star.Streak {
		d := displacement(star, t, w, h)
		pos.X += d.X
		pos.Y += d.Y
	}

	if cfg.PointerParallax {
		p := in.PointerOrCenter()
		pos.X += (p.X - center.X) * star.Parallax
		pos.Y += (p.Y - center.Y) * star.Parallax
	}

	layer := cfg.Layers[star.Layer]
	pos.Y += s * cfg.ScrollParallax * layer.Scroll
	pos.X += math.Sin(t*layer.SwayFreq+s*layer.SwayScroll) * layer.SwayAmp

	if cfg.Vortex && scrollSpeed > cfg.VortexThreshold {
		strength := math.Min(cfg.VortexMax, scrollSpeed*cfg.VortexGain)
		dx, dy := pos.X-center.X, pos.Y-center.Y
		dist := math.Hypot(dx, dy)
		pull := 1 - math.Min(1, dist/(math.Min(w, h)*cfg.VortexReach))
		effect := strength * pull * layer.VortexWeight

		angle := math.Atan2(dy, dx) + effect*2*math.Pi
		dist *= 1 - effect*0.1
		pos.X = center.X + math.Cos(angle)*dist
		pos.Y = center.Y + math.Sin(angle)*dist
	}

	if cfg.ScrollWave {
		k := clamp(scrollSpeed/50, 0.1, 1) * float64(star.Layer)
		pos.X += math.Sin(t+star.TwinklePhase+s*0.001) * 3 * k
		pos.Y += math.Cos(t*0.7+star.TwinklePhase+s*0.002) * 2 * k
	}
	return pos
}

func displacement(star *Star, t, w, h float64) wallpaper.Vec2 {
	phase := t*star.MoveSpeed + star.MovePhase
	switch star.Pattern {
	case PatternCircular:
		return wallpaper.Vec2{X: math.Cos(phase) * star.MoveRadius, Y: math.Sin(phase) * star.MoveRadius}
	case PatternWave:
		return wallpaper.Vec2{
			X: math.Sin(phase) * star.MoveRadius,
			Y: math.Cos(t*star.MoveSpeed*0.5+star.MovePhase) * star.MoveRadius,
		}
	case PatternLinear:
		drift := t * star.MoveSpeed * 0.1
		return wallpaper.Vec2{
			X: wrap(math.Cos(star.MovePhase)*drift, 0, 0.2*w),
			Y: wrap(math.Sin(star.MovePhase)*drift, 0, 0.2*h),
		}
	}
	return wallpaper.Vec2{}
}

func (f *Field) brightness(star *Star, t, s float64) float64 {
	twinkle := 0.85 + 0.15*math.Sin(t*star.TwinkleSpeed+star.TwinklePhase) +
		f.cfg.ScrollTwinkle*math.Sin(s*0.01+star.TwinklePhase)
	return clamp(star.BaseBrightness*twinkle, 0, 1)
}

// DrawBrightness brightens stars by up to boost while the page scrolls fast.
func DrawBrightness(b, scrollSpeed, boost float64) float64 {
	return math.Min(1, b+math.Min(1, scrollSpeed/30)*boost)
}

// wrap maps v into [lo, hi) with floor-modulo arithmetic. An empty range
// returns lo.
func wrap(v, lo, hi float64) float64 {
	span := hi - lo
	if span <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return lo
	}
	if v >= lo && v < hi {
		return v
	}
	r := v - span*math.Floor((v-lo)/span)
	if r >= hi || r < lo {
		return lo
	}
	return r
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
