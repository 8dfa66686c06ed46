package network

import (
	"math"

	"linux-starfield/internal/engine2D/canvas"
	"linux-starfield/internal/wallpaper"
)

// Draw paints the background, grid, nodes, links and pointer effects.
func (g *Graph) Draw(s canvas.Surface, in wallpaper.Input, tick wallpaper.Tick) {
	if s == nil || in.Empty() {
		return
	}
	w, h := float64(in.Width), float64(in.Height)

	g.drawBackground(s, w, h, in.Scroll)

	switch g.cfg.Grid {
	case wallpaper.GridHex:
		g.drawHexGrid(s, w, h)
	case wallpaper.GridSquare:
		g.drawSquareGrid(s, w, h, in)
	}

	for _, n := range g.Nodes {
		s.FillCircle(n.Pos.X, n.Pos.Y, n.Radius, n.Color.WithAlpha(n.Alpha))
	}
	g.drawLinks(s)

	if g.cfg.Circuits > 0 {
		g.drawCircuits(s, w, h, tick.Elapsed)
	}
	g.drawBlobs(s, w, h, in)

	if g.cfg.Glow && in.HasPointer {
		p := in.Pointer
		s.FillRadial(p.X, p.Y, 5, g.cfg.GlowRadius,
			canvas.Stop{Offset: 0, Color: g.colors.glow.WithAlpha(0.4)},
			canvas.Stop{Offset: 0.5, Color: g.colors.glow.WithAlpha(0.1)},
			canvas.Stop{Offset: 1, Color: g.colors.glow.WithAlpha(0)},
		)
	}
}

func (g *Graph) drawBackground(s canvas.Surface, w, h, scroll float64) {
	bg := g.colors.background
	if len(bg) == 1 {
		s.FillSolid(bg[0])
		return
	}
	drift := scroll * g.cfg.BackgroundDrift
	stops := make([]canvas.Stop, len(bg))
	for i, c := range bg {
		stops[i] = canvas.Stop{Offset: float64(i) / float64(len(bg)-1), Color: c}
	}
	s.FillLinear(0, drift, w, h+drift, stops...)
}

// Links joins every pair of nodes closer than the link distance.
func (g *Graph) Links() [][2]int {
	limit := g.cfg.LinkDistance
	var links [][2]int
	for i := range g.Nodes {
		for j := i + 1; j < len(g.Nodes); j++ {
			a, b := g.Nodes[i].Pos, g.Nodes[j].Pos
			if math.Hypot(a.X-b.X, a.Y-b.Y) < limit {
				links = append(links, [2]int{i, j})
			}
		}
	}
	return links
}

func (g *Graph) drawLinks(s canvas.Surface) {
	limit := g.cfg.LinkDistance
	for _, l := range g.Links() {
		a, b := g.Nodes[l[0]].Pos, g.Nodes[l[1]].Pos
		alpha := g.cfg.LinkAlpha
		if g.cfg.LinkFade {
			alpha *= (limit - math.Hypot(a.X-b.X, a.Y-b.Y)) / limit
		}
		s.StrokeLine(a.X, a.Y, b.X, b.Y, g.cfg.LinkWidth, g.colors.link.WithAlpha(alpha))
	}
}

func (g *Graph) drawHexGrid(s canvas.Surface, w, h float64) {
	size := g.cfg.GridSize
	hexHeight := size * math.Sqrt(3)
	cols := int(math.Ceil(w/(size*1.5))) + 1
	rows := int(math.Ceil(h/hexHeight)) + 1
	c := g.colors.grid.WithAlpha(g.cfg.GridAlpha)

	hex := make([]canvas.Point, 6)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := float64(col) * size * 1.5
			y := float64(row) * hexHeight
			if col%2 == 1 {
				y += hexHeight / 2
			}
			for i := range hex {
				angle := math.Pi / 3 * float64(i)
				hex[i] = canvas.Point{X: x + size*math.Cos(angle), Y: y + size*math.Sin(angle)}
			}
			s.StrokePolygon(hex, g.cfg.GridWidth, c)
		}
	}
}

func (g *Graph) drawSquareGrid(s canvas.Surface, w, h float64, in wallpaper.Input) {
	size := g.cfg.GridSize
	var ox, oy float64
	if in.HasPointer {
		ox = math.Mod(in.Pointer.X*g.cfg.GridParallax, size)
		oy = math.Mod(in.Pointer.Y*g.cfg.GridParallax, size)
	}
	c := g.colors.grid.WithAlpha(g.cfg.GridAlpha)
	for x := ox; x <= w; x += size {
		s.StrokeLine(x, 0, x, h, g.cfg.GridWidth, c)
	}
	for y := oy; y <= h; y += size {
		s.StrokeLine(0, y, w, y, g.cfg.GridWidth, c)
	}
}

func (g *Graph) drawBlobs(s canvas.Surface, w, h float64, in wallpaper.Input) {
	p := in.Pointer
	if !in.HasPointer {
		p = wallpaper.Vec2{}
	}
	for _, b := range g.colors.blobs {
		x := b.OriginX*w + b.OffsetX + p.X*b.Follow
		y := b.OriginY*h + b.OffsetY + p.Y*b.Follow
		s.FillRadial(x, y, 0, b.Radius,
			canvas.Stop{Offset: 0, Color: b.color.WithAlpha(b.Alpha)},
			canvas.Stop{Offset: 1, Color: b.color.WithAlpha(0)},
		)
	}
}

// drawCircuits traces wandering circuit lines from the top edge with a pulse
// of light running along each of them. t is wall-clock seconds.
func (g *Graph) drawCircuits(s canvas.Surface, w, h, t float64) {
	c := g.colors.circuit
	for i := 0; i < g.cfg.Circuits; i++ {
		fi := float64(i)
		x, y := math.Sin(t*0.2+fi)*w*0.4+w*0.5, 0.0
		segments := 10 + i*2
		maxLen := h / float64(segments)

		points := []canvas.Point{{X: x, Y: y}}
		for j := 0; j < segments; j++ {
			fj := float64(j)
			if j%2 == 0 {
				dir := math.Floor(math.Sin(t*0.5+fi+fj) * 2)
				x += dir * (math.Sin(t*0.3+fi*0.7+fj)*0.5 + 0.5) * maxLen
			} else {
				y += (math.Sin(t*0.2+fi*0.5+fj)*0.3 + 0.7) * maxLen
			}
			points = append(points, canvas.Point{X: x, Y: y})

			if j%3 == 0 {
				drawComponent(s, x, y, 3+math.Sin(t+fi+fj)*2, (i+j)%3, c)
			}
		}

		pulse := math.Mod(t*0.8, 1)
		s.StrokePath(points, 1.5,
			canvas.Stop{Offset: math.Max(0, pulse-0.03), Color: c.WithAlpha(0.2)},
			canvas.Stop{Offset: pulse, Color: c.WithAlpha(0.8)},
			canvas.Stop{Offset: math.Min(1, pulse+0.03), Color: c.WithAlpha(0.2)},
		)
	}
}

func drawComponent(s canvas.Surface, x, y, size float64, kind int, c canvas.Color) {
	switch kind {
	case 0:
		s.FillPolygon([]canvas.Point{
			{X: x - size, Y: y - size}, {X: x + size, Y: y - size},
			{X: x + size, Y: y + size}, {X: x - size, Y: y + size},
		}, c)
	case 1:
		s.FillCircle(x, y, size, c)
	default:
		s.FillPolygon([]canvas.Point{
			{X: x, Y: y - size}, {X: x + size, Y: y},
			{X: x, Y: y + size}, {X: x - size, Y: y},
		}, c)
	}
}
