package shapes

import (
	"fmt"
	"math"

	"linux-starfield/internal/engine2D/canvas"
	"linux-starfield/internal/wallpaper"
)

type Kind int

const (
	Triangle Kind = iota
	Square
	Circle
)

func (k Kind) String() string {
	switch k {
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	case Circle:
		return "circle"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Shape is one orbiting shape as placed for a frame.
type Shape struct {
	Kind     Kind
	Center   wallpaper.Vec2
	Size     float64
	Rotation float64
	Color    canvas.Color
}

type palette struct {
	shapes     []canvas.Color
	glow       []canvas.Color
	background []canvas.Stop
	link       canvas.Color
	grid       canvas.Color
}

// Orbit is a ring of shapes circling the viewport centre, pushed around by the
// pointer. Positions are a pure function of T and the input.
type Orbit struct {
	cfg    wallpaper.ShapesSettings
	colors palette

	width  int
	height int
}

func NewOrbit(cfg wallpaper.ShapesSettings) (*Orbit, error) {
	if cfg.Count < 0 {
		return nil, fmt.Errorf("shapes: negative count %d", cfg.Count)
	}
	if cfg.GridSize <= 0 {
		return nil, fmt.Errorf("shapes: grid size must be positive, got %v", cfg.GridSize)
	}
	colors, err := parsePalette(cfg)
	if err != nil {
		return nil, err
	}
	return &Orbit{cfg: cfg, colors: colors}, nil
}

func (o *Orbit) Resize(width, height int) {
	o.width, o.height = width, height
}

func (o *Orbit) Update(in wallpaper.Input, tick wallpaper.Tick) {
	if in.Empty() {
		return
	}
	o.Resize(in.Width, in.Height)
}

func (o *Orbit) Count() int {
	return o.cfg.Count
}

// PointerOffset maps the pointer to a shift of up to PointerOffset pixels in
// each axis, zero at the centre and while no pointer was reported.
func (o *Orbit) PointerOffset(in wallpaper.Input) wallpaper.Vec2 {
	if !in.HasPointer || in.Empty() {
		return wallpaper.Vec2{}
	}
	nx := in.Pointer.X/float64(in.Width)*2 - 1
	ny := in.Pointer.Y/float64(in.Height)*2 - 1
	return wallpaper.Vec2{X: nx * o.cfg.PointerOffset, Y: ny * o.cfg.PointerOffset}
}

// Layout places every shape at time t.
func (o *Orbit) Layout(in wallpaper.Input, t float64) []Shape {
	if in.Empty() {
		return nil
	}
	cfg := o.cfg
	center := in.Center()
	shift := o.PointerOffset(in)

	shapes := make([]Shape, cfg.Count)
	for i := range shapes {
		fi := float64(i)
		angle := fi/float64(cfg.Count)*2*math.Pi + t
		radius := cfg.OrbitRadius + math.Sin(t*0.5+fi*0.4)*cfg.OrbitSwing
		kind := Kind(i % 3)
		shapes[i] = Shape{
			Kind: kind,
			Center: wallpaper.Vec2{
				X: center.X + math.Cos(angle)*radius + shift.X,
				Y: center.Y + math.Sin(angle)*radius + shift.Y,
			},
			Size:     cfg.Size + math.Sin(t+fi)*cfg.SizeSwing,
			Rotation: t*cfg.Spin + fi*0.5,
			Color:    o.colors.shapes[i%len(o.colors.shapes)],
		}
	}
	return shapes
}

func parsePalette(cfg wallpaper.ShapesSettings) (palette, error) {
	var p palette
	var err error

	if p.shapes, err = wallpaper.ParsePalette(cfg.Palette); err != nil {
		return p, fmt.Errorf("shapes palette: %w", err)
	}
	if len(p.shapes) == 0 {
		return p, fmt.Errorf("shapes palette is empty")
	}
	if p.glow, err = wallpaper.ParsePalette(cfg.Glow); err != nil {
		return p, fmt.Errorf("shapes glow: %w", err)
	}
	if len(p.glow) != 3 {
		return p, fmt.Errorf("shapes glow needs 3 colours, got %d", len(p.glow))
	}

	bg, err := wallpaper.ParsePalette(cfg.Background)
	if err != nil {
		return p, fmt.Errorf("shapes background: %w", err)
	}
	if len(bg) == 0 {
		return p, fmt.Errorf("shapes background is empty")
	}
	if len(cfg.BackgroundStops) > 0 && len(cfg.BackgroundStops) != len(bg) {
		return p, fmt.Errorf("shapes background has %d stops for %d colours", len(cfg.BackgroundStops), len(bg))
	}
	for i, c := range bg {
		offset := 0.0
		switch {
		case len(cfg.BackgroundStops) > 0:
			offset = cfg.BackgroundStops[i]
		case len(bg) > 1:
			offset = float64(i) / float64(len(bg)-1)
		}
		p.background = append(p.background, canvas.Stop{Offset: offset, Color: c})
	}

	if p.link, err = wallpaper.ParseColor(cfg.LinkColor); err != nil {
		return p, fmt.Errorf("shapes link colour: %w", err)
	}
	if p.grid, err = wallpaper.ParseColor(cfg.GridColor); err != nil {
		return p, fmt.Errorf("shapes grid colour: %w", err)
	}
	return p, nil
}
