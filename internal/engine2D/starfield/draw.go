package starfield

import (
	"math"

	"linux-starfield/internal/engine2D/canvas"
	"linux-starfield/internal/wallpaper"
)

var white = canvas.RGB(255, 255, 255)

// Draw paints the background, nebulae, stars and the pointer ripple.
func (f *Field) Draw(s canvas.Surface, in wallpaper.Input, tick wallpaper.Tick) {
	if s == nil || in.Empty() {
		return
	}
	w, h := float64(in.Width), float64(in.Height)

	s.FillLinear(0, 0, w, h,
		canvas.Stop{Offset: 0, Color: f.colors.background[0]},
		canvas.Stop{Offset: 1, Color: f.colors.background[1]},
	)
	f.drawNebulae(s, w, h, tick.T)

	for i := range f.Stars {
		f.drawStar(s, &f.Stars[i])
	}

	if f.cfg.Ripple && in.HasPointer {
		f.drawRipple(s, in, tick.T)
	}
}

func (f *Field) drawNebulae(s canvas.Surface, w, h, t float64) {
	for i, c := range f.colors.nebulae {
		fi := float64(i)
		x := w * (0.2 + fi*0.3)
		y := h * (0.3 + math.Sin(t*0.1+fi)*0.1)
		r := math.Min(w, h) * (0.2 + math.Sin(t*0.05+fi)*0.05)
		s.FillRadial(x, y, 0, r,
			canvas.Stop{Offset: 0, Color: c},
			canvas.Stop{Offset: 1, Color: canvas.Transparent},
		)
	}
}

func (f *Field) tint(star *Star) canvas.Color {
	switch {
	case star.Pattern == PatternCircular && star.Layer == 0:
		return f.colors.circular
	case star.Streak:
		return f.colors.streak
	case star.InCluster && star.Layer == Layers-1:
		return f.colors.cluster
	}
	return f.colors.star
}

func (f *Field) drawStar(s canvas.Surface, star *Star) {
	c := f.tint(star)
	b := DrawBrightness(star.Brightness, star.ScrollSpeed, f.cfg.ScrollBrighten)
	x, y := star.Pos.X, star.Pos.Y

	if star.Streak && star.StreakProgress > 0 {
		tail := star.StreakLength * star.StreakProgress
		s.StrokeLineFade(x, y,
			x-math.Cos(star.StreakAngle)*tail, y-math.Sin(star.StreakAngle)*tail,
			star.Radius*2, c.WithAlpha(b), c.WithAlpha(0))
	}

	s.FillCircle(x, y, star.Radius, c.WithAlpha(b))

	if star.Radius > f.cfg.GlowThreshold {
		s.FillRadial(x, y, 0, star.Radius*5,
			canvas.Stop{Offset: 0, Color: c.WithAlpha(star.Brightness * 0.4)},
			canvas.Stop{Offset: 1, Color: white.WithAlpha(0)},
		)
	}

	if f.cfg.ScrollTrails && !star.Wrapped && star.ScrollSpeed > f.cfg.TrailThreshold &&
		(star.Layer == 0 || star.Streak) {
		alpha := math.Min(0.3, star.ScrollSpeed*0.005) * star.Brightness
		s.StrokeLine(x, y, star.LastPos.X, star.LastPos.Y, star.Radius*0.7, c.WithAlpha(alpha))
	}
}

func (f *Field) drawRipple(s canvas.Surface, in wallpaper.Input, t float64) {
	px, py := in.Pointer.X, in.Pointer.Y
	pulse := 30 + math.Sin(t*2)*10

	scroll := 0.0
	if f.cfg.RippleScroll {
		scroll = in.Scroll
	}
	influence := math.Min(150, scroll*0.05)

	s.StrokeCircle(px, py, pulse+influence*0.5, 1, white.WithAlpha(0.15))

	for i := 1; i <= f.cfg.RippleRings; i++ {
		fi := float64(i)
		alpha := 0.1 - fi*0.02 - scroll*0.0001
		if alpha <= 0 {
			continue
		}
		s.StrokeCircle(px, py, pulse+fi*15+influence*fi*0.2, 2/fi, white.WithAlpha(alpha))
	}

	if f.cfg.PointerTrail && math.Abs(scroll) > 10 {
		dir := 1.0
		if scroll < 0 {
			dir = -1
		}
		for i := 0; i < 5; i++ {
			fi := float64(i)
			s.FillCircle(px+math.Sin(t*10)*fi*2, py+fi*5*dir, 3-fi*0.5, white.WithAlpha(0.05))
		}
	}
}
