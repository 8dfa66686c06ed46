package starfield

import (
	"math"

	"linux-starfield/internal/wallpaper"
)

// spawn creates a star for a width x height viewport.
func (f *Field) spawn(width, height int) Star {
	w, h := float64(width), float64(height)
	cfg := f.cfg

	star := Star{
		Pattern: f.patterns[f.rng.IntN(len(f.patterns))],
		Layer:   f.rng.IntN(Layers),
	}

	if len(cfg.Clusters) > 0 && f.rng.Float64() < cfg.ClusterChance {
		c := cfg.Clusters[f.rng.IntN(len(cfg.Clusters))]
		angle := f.rng.Float64() * 2 * math.Pi
		dist := f.rng.Float64() * c.Radius * math.Min(w, h)
		star.Anchor = wallpaper.Vec2{
			X: c.X*w + math.Cos(angle)*dist,
			Y: c.Y*h + math.Sin(angle)*dist,
		}
		star.InCluster = true
	} else {
		star.Anchor = wallpaper.Vec2{X: f.rng.Float64() * w, Y: f.rng.Float64() * h}
	}

	if f.rng.Float64() < cfg.StreakChance {
		star.Streak = true
		star.StreakSpeed = f.between(5, 10)
		star.StreakLength = f.between(10, 30)
		star.StreakAngle = f.rng.Float64() * 2 * math.Pi
	}

	if f.rng.Float64() < 0.8 {
		star.Radius = f.between(0.2, 1.0)
	} else {
		star.Radius = f.between(0.8, 2.3)
	}
	star.BaseBrightness = f.between(0.5, 1.0)
	star.Brightness = star.BaseBrightness
	star.TwinkleSpeed = f.between(0.003, 0.013)
	star.TwinklePhase = f.rng.Float64() * 2 * math.Pi
	star.Parallax = f.between(0.1, 0.3)

	star.MoveSpeed = f.between(0.1, 0.5)
	star.MoveRadius = f.between(2, 7)
	star.MovePhase = f.rng.Float64() * 2 * math.Pi

	star.Pos = star.Anchor
	star.LastPos = star.Anchor
	star.LastScroll = f.lastScroll
	return star
}

// respawnStreak restarts a finished streak somewhere else in the viewport.
func (f *Field) respawnStreak(star *Star, w, h float64) {
	star.StreakProgress = 0
	star.StreakAngle = f.rng.Float64() * 2 * math.Pi
	star.Anchor = wallpaper.Vec2{X: f.rng.Float64() * w, Y: f.rng.Float64() * h}
}

func (f *Field) between(lo, hi float64) float64 {
	return lo + f.rng.Float64()*(hi-lo)
}
