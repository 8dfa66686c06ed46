package shapes

import (
	"math"

	"linux-starfield/internal/engine2D/canvas"
	"linux-starfield/internal/wallpaper"
)

// Draw paints the gradient, the shapes and their links, the pointer glow and
// a slowly drifting grid on top.
func (o *Orbit) Draw(s canvas.Surface, in wallpaper.Input, tick wallpaper.Tick) {
	if s == nil || in.Empty() {
		return
	}
	w, h := float64(in.Width), float64(in.Height)
	cfg := o.cfg

	s.FillLinear(0, 0, w, h, o.colors.background...)

	shapes := o.Layout(in, tick.T)
	for _, sh := range shapes {
		drawShape(s, sh, sh.Color.WithAlpha(cfg.Alpha))
	}

	link := o.colors.link.WithAlpha(cfg.LinkAlpha)
	for _, l := range Links(shapes, cfg.LinkDistance) {
		a, b := shapes[l[0]].Center, shapes[l[1]].Center
		s.StrokeLine(a.X, a.Y, b.X, b.Y, 1, link)
	}

	glow := in.PointerOrCenter()
	g := o.colors.glow
	s.FillRadial(glow.X, glow.Y, 10, cfg.GlowRadius,
		canvas.Stop{Offset: 0, Color: g[0].WithAlpha(0.3 * cfg.GlowAlpha)},
		canvas.Stop{Offset: 0.5, Color: g[1].WithAlpha(0.1 * cfg.GlowAlpha)},
		canvas.Stop{Offset: 1, Color: g[2].WithAlpha(0)},
	)

	o.drawGrid(s, w, h, tick.T)
}

// Links pairs every two shapes whose centres are closer than limit.
func Links(shapes []Shape, limit float64) [][2]int {
	var links [][2]int
	for i := range shapes {
		for j := i + 1; j < len(shapes); j++ {
			a, b := shapes[i].Center, shapes[j].Center
			if math.Hypot(a.X-b.X, a.Y-b.Y) < limit {
				links = append(links, [2]int{i, j})
			}
		}
	}
	return links
}

// Outline returns the corners of a triangle or square around its centre,
// rotated by the shape's rotation. Circles have no outline.
func Outline(sh Shape) []canvas.Point {
	half := sh.Size / 2
	var corners []canvas.Point
	switch sh.Kind {
	case Triangle:
		corners = []canvas.Point{{X: 0, Y: -half}, {X: half, Y: half}, {X: -half, Y: half}}
	case Square:
		corners = []canvas.Point{{X: -half, Y: -half}, {X: half, Y: -half}, {X: half, Y: half}, {X: -half, Y: half}}
	default:
		return nil
	}
	sin, cos := math.Sincos(sh.Rotation)
	for i, p := range corners {
		corners[i] = canvas.Point{
			X: sh.Center.X + p.X*cos - p.Y*sin,
			Y: sh.Center.Y + p.X*sin + p.Y*cos,
		}
	}
	return corners
}

func drawShape(s canvas.Surface, sh Shape, c canvas.Color) {
	if sh.Kind == Circle {
		s.FillCircle(sh.Center.X, sh.Center.Y, sh.Size/2, c)
		return
	}
	s.FillPolygon(Outline(sh), c)
}

func (o *Orbit) drawGrid(s canvas.Surface, w, h, t float64) {
	size := o.cfg.GridSize
	ox := math.Sin(t*0.2) * o.cfg.GridDrift
	oy := math.Cos(t*0.2) * o.cfg.GridDrift
	c := o.colors.grid.WithAlpha(o.cfg.GridAlpha)
	for x := ox; x < w; x += size {
		s.StrokeLine(x, 0, x, h, 1, c)
	}
	for y := oy; y < h; y += size {
		s.StrokeLine(0, y, w, y, 1, c)
	}
}
