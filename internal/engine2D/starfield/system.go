package starfield

import (
	"fmt"

	"linux-starfield/internal/engine2D/canvas"
	"linux-starfield/internal/wallpaper"
)

// NewField creates an empty field. Stars are placed by the first Resize.
func NewField(cfg wallpaper.StarfieldSettings, rng Rand) (*Field, error) {
	if rng == nil {
		return nil, fmt.Errorf("starfield: nil random source")
	}
	if len(cfg.Layers) != Layers {
		return nil, fmt.Errorf("starfield: want %d layers, got %d", Layers, len(cfg.Layers))
	}
	if cfg.DensityDivisor <= 0 {
		return nil, fmt.Errorf("starfield: density divisor must be positive, got %v", cfg.DensityDivisor)
	}

	patterns, err := parsePatterns(cfg.Patterns)
	if err != nil {
		return nil, err
	}
	colors, err := parsePalette(cfg)
	if err != nil {
		return nil, err
	}

	return &Field{
		cfg:      cfg,
		patterns: patterns,
		colors:   colors,
		rng:      rng,
	}, nil
}

// Resize replaces the star slice for a new viewport. Calling it with the
// current size is a no-op.
func (f *Field) Resize(width, height int) {
	if width == f.width && height == f.height && f.Stars != nil {
		return
	}
	f.width, f.height = width, height

	count := StarCount(width, height, f.cfg.DensityDivisor)
	stars := make([]Star, count)
	for i := range stars {
		stars[i] = f.spawn(width, height)
	}
	f.Stars = stars
}

// StarCount is floor(width*height/divisor), zero for an empty viewport.
func StarCount(width, height int, divisor float64) int {
	if width <= 0 || height <= 0 || divisor <= 0 {
		return 0
	}
	return int(float64(width) * float64(height) / divisor)
}

// Update advances every star by one frame. A zero-area viewport is a no-op.
func (f *Field) Update(in wallpaper.Input, tick wallpaper.Tick) {
	if in.Empty() {
		return
	}
	f.Resize(in.Width, in.Height)

	for i := range f.Stars {
		f.step(&f.Stars[i], in, tick)
	}
	f.lastScroll = in.Scroll
}

func (f *Field) Count() int {
	return len(f.Stars)
}

func (f *Field) Size() (int, int) {
	return f.width, f.height
}

func parsePatterns(names []string) ([]Pattern, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("starfield: no motion patterns")
	}
	patterns := make([]Pattern, 0, len(names))
	for _, name := range names {
		switch name {
		case wallpaper.PatternStatic:
			patterns = append(patterns, PatternStatic)
		case wallpaper.PatternLinear:
			patterns = append(patterns, PatternLinear)
		case wallpaper.PatternCircular:
			patterns = append(patterns, PatternCircular)
		case wallpaper.PatternWave:
			patterns = append(patterns, PatternWave)
		default:
			return nil, fmt.Errorf("starfield: unknown motion pattern %q", name)
		}
	}
	return patterns, nil
}

func parsePalette(cfg wallpaper.StarfieldSettings) (palette, error) {
	var p palette
	if len(cfg.Background) != 2 {
		return p, fmt.Errorf("starfield: background needs 2 colours, got %d", len(cfg.Background))
	}
	bg, err := wallpaper.ParsePalette(cfg.Background)
	if err != nil {
		return p, fmt.Errorf("starfield background: %w", err)
	}
	p.background = [2]canvas.Color{bg[0], bg[1]}

	for _, n := range cfg.Nebulae {
		c, err := wallpaper.ParseColor(n.Color)
		if err != nil {
			return p, fmt.Errorf("starfield nebula: %w", err)
		}
		p.nebulae = append(p.nebulae, c.WithAlpha(n.Alpha))
	}

	tints, err := wallpaper.ParsePalette([]string{
		cfg.Colors.Default, cfg.Colors.Circular, cfg.Colors.Streak, cfg.Colors.Cluster,
	})
	if err != nil {
		return p, fmt.Errorf("starfield colours: %w", err)
	}
	p.star, p.circular, p.streak, p.cluster = tints[0], tints[1], tints[2], tints[3]
	return p, nil
}
