package shapes

import (
	"math"
	"testing"

	"linux-starfield/internal/engine2D/canvas"
	"linux-starfield/internal/wallpaper"
)

func newTestOrbit(t *testing.T) (*Orbit, wallpaper.ShapesSettings) {
	t.Helper()
	s, err := wallpaper.Preset(wallpaper.SceneGeometric)
	if err != nil {
		t.Fatal(err)
	}
	o, err := NewOrbit(s.Shapes)
	if err != nil {
		t.Fatalf("NewOrbit() = %v", err)
	}
	return o, s.Shapes
}

func near(a, b wallpaper.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestLayout(t *testing.T) {
	o, cfg := newTestOrbit(t)
	in := wallpaper.Input{Width: 800, Height: 600}

	shapes := o.Layout(in, 0)
	if len(shapes) != cfg.Count {
		t.Fatalf("Layout() = %d shapes, want %d", len(shapes), cfg.Count)
	}
	for i, sh := range shapes {
		if want := Kind(i % 3); sh.Kind != want {
			t.Errorf("shape %d kind = %s, want %s", i, sh.Kind, want)
		}
		d := math.Hypot(sh.Center.X-400, sh.Center.Y-300)
		if d < cfg.OrbitRadius-cfg.OrbitSwing-1e-9 || d > cfg.OrbitRadius+cfg.OrbitSwing+1e-9 {
			t.Errorf("shape %d orbits at %v, outside %v +- %v", i, d, cfg.OrbitRadius, cfg.OrbitSwing)
		}
		if sh.Size < cfg.Size-cfg.SizeSwing || sh.Size > cfg.Size+cfg.SizeSwing {
			t.Errorf("shape %d size %v outside %v +- %v", i, sh.Size, cfg.Size, cfg.SizeSwing)
		}
	}

	if got := o.Layout(wallpaper.Input{Width: 0, Height: 600}, 0); got != nil {
		t.Errorf("Layout() on an empty viewport = %v, want nil", got)
	}
}

func TestPointerOffset(t *testing.T) {
	o, cfg := newTestOrbit(t)
	tests := []struct {
		name string
		in   wallpaper.Input
		want wallpaper.Vec2
	}{
		{"no pointer yet", wallpaper.Input{Width: 800, Height: 600, Pointer: wallpaper.Vec2{X: 0, Y: 0}}, wallpaper.Vec2{}},
		{"centre", wallpaper.Input{Width: 800, Height: 600, Pointer: wallpaper.Vec2{X: 400, Y: 300}, HasPointer: true}, wallpaper.Vec2{}},
		{"bottom right", wallpaper.Input{Width: 800, Height: 600, Pointer: wallpaper.Vec2{X: 800, Y: 600}, HasPointer: true},
			wallpaper.Vec2{X: cfg.PointerOffset, Y: cfg.PointerOffset}},
		{"top left", wallpaper.Input{Width: 800, Height: 600, Pointer: wallpaper.Vec2{}, HasPointer: true},
			wallpaper.Vec2{X: -cfg.PointerOffset, Y: -cfg.PointerOffset}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := o.PointerOffset(tt.in); !near(got, tt.want) {
				t.Errorf("PointerOffset() = %+v, want %+v", got, tt.want)
			}

			still := o.Layout(wallpaper.Input{Width: 800, Height: 600}, 1.5)
			moved := o.Layout(tt.in, 1.5)
			for i := range still {
				want := wallpaper.Vec2{X: still[i].Center.X + tt.want.X, Y: still[i].Center.Y + tt.want.Y}
				if !near(moved[i].Center, want) {
					t.Fatalf("shape %d at %+v, want %+v", i, moved[i].Center, want)
				}
			}
		})
	}
}

func TestOutline(t *testing.T) {
	tri := Outline(Shape{Kind: Triangle, Center: wallpaper.Vec2{X: 10, Y: 10}, Size: 4})
	if len(tri) != 3 || math.Abs(tri[0].X-10) > 1e-9 || math.Abs(tri[0].Y-8) > 1e-9 {
		t.Errorf("unrotated triangle = %+v, want apex at (10, 8)", tri)
	}

	sq := Outline(Shape{Kind: Square, Size: 2, Rotation: math.Pi / 4})
	if len(sq) != 4 {
		t.Fatalf("square outline = %d points, want 4", len(sq))
	}
	for i, p := range sq {
		if d := math.Hypot(p.X, p.Y); math.Abs(d-math.Sqrt2) > 1e-9 {
			t.Errorf("corner %d at distance %v, want %v", i, d, math.Sqrt2)
		}
	}
	// an eighth turn puts the first corner straight above the centre
	if math.Abs(sq[0].X) > 1e-9 {
		t.Errorf("rotated corner = %+v, want x = 0", sq[0])
	}

	if got := Outline(Shape{Kind: Circle, Size: 5}); got != nil {
		t.Errorf("circle outline = %v, want nil", got)
	}
}

func TestDraw(t *testing.T) {
	o, cfg := newTestOrbit(t)
	in := wallpaper.Input{Width: 400, Height: 300}
	o.Update(in, wallpaper.Tick{Dt: 1.0 / 60})

	rec := canvas.NewRecorder(400, 300)
	o.Draw(rec, in, wallpaper.Tick{})

	if rec.Ops[0].Kind != canvas.OpFillLinear || len(rec.Ops[0].Colors) != 4 {
		t.Errorf("first op = %+v, want the 4-stop gradient", rec.Ops[0])
	}
	if got := rec.Count(canvas.OpFillPolygon); got != 8 {
		t.Errorf("triangles and squares = %d, want 8", got)
	}
	if got := rec.Count(canvas.OpFillCircle); got != 4 {
		t.Errorf("circles = %d, want 4", got)
	}

	glow := rec.Filter(canvas.OpFillRadial)
	if len(glow) != 1 || glow[0].Coords[0] != 200 || glow[0].Coords[1] != 150 {
		t.Fatalf("glow = %+v, want one at the centre", glow)
	}

	// grid at T=0 is shifted by (0, GridDrift): x = 0..350 and y = 10..260
	links := len(Links(o.Layout(in, 0), cfg.LinkDistance))
	if got := rec.Count(canvas.OpStrokeLine); got != links+8+6 {
		t.Errorf("stroked lines = %d, want %d links + 14 grid lines", got, links)
	}

	in.Pointer, in.HasPointer = wallpaper.Vec2{X: 40, Y: 60}, true
	rec.Reset()
	o.Draw(rec, in, wallpaper.Tick{})
	glow = rec.Filter(canvas.OpFillRadial)
	if len(glow) != 1 || glow[0].Coords[0] != 40 || glow[0].Coords[1] != 60 {
		t.Errorf("glow = %+v, want one at the pointer", glow)
	}

	rec.Reset()
	o.Draw(rec, wallpaper.Input{}, wallpaper.Tick{})
	if len(rec.Ops) != 0 {
		t.Errorf("empty viewport drew %d ops", len(rec.Ops))
	}
}

func TestNewOrbitRejectsBadSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*wallpaper.ShapesSettings)
	}{
		{"count", func(s *wallpaper.ShapesSettings) { s.Count = -1 }},
		{"grid size", func(s *wallpaper.ShapesSettings) { s.GridSize = 0 }},
		{"palette", func(s *wallpaper.ShapesSettings) { s.Palette = nil }},
		{"glow", func(s *wallpaper.ShapesSettings) { s.Glow = s.Glow[:2] }},
		{"stops", func(s *wallpaper.ShapesSettings) { s.BackgroundStops = []float64{0, 1} }},
		{"link colour", func(s *wallpaper.ShapesSettings) { s.LinkColor = "sky" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cfg := newTestOrbit(t)
			tt.mutate(&cfg)
			if _, err := NewOrbit(cfg); err == nil {
				t.Error("NewOrbit() = nil error")
			}
		})
	}
}
