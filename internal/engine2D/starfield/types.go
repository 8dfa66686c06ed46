package starfield

import (
	"linux-starfield/internal/engine2D/canvas"
	"linux-starfield/internal/wallpaper"
)

type Pattern uint8

const (
	PatternStatic Pattern = iota
	PatternLinear
	PatternCircular
	PatternWave
)

func (p Pattern) String() string {
	switch p {
	case PatternLinear:
		return wallpaper.PatternLinear
	case PatternCircular:
		return wallpaper.PatternCircular
	case PatternWave:
		return wallpaper.PatternWave
	}
	return wallpaper.PatternStatic
}

// Layers is the number of depth layers. Layer 0 is nearest.
const Layers = 3

type Star struct {
	Anchor wallpaper.Vec2
	Pos    wallpaper.Vec2

	Radius         float64
	BaseBrightness float64
	Brightness     float64
	TwinkleSpeed   float64
	TwinklePhase   float64
	Parallax       float64
	Layer          int

	Pattern    Pattern
	MoveRadius float64
	MoveSpeed  float64
	MovePhase  float64
	InCluster  bool

	Streak         bool
	StreakSpeed    float64
	StreakLength   float64
	StreakAngle    float64
	StreakProgress float64

	LastPos    wallpaper.Vec2
	LastScroll float64
	// ScrollSpeed is |scroll - LastScroll| as measured by the last update.
	ScrollSpeed float64
	// Wrapped is set when the last update moved the star across a wrap edge.
	Wrapped bool
}

type palette struct {
	background [2]canvas.Color
	nebulae    []canvas.Color
	star       canvas.Color
	circular   canvas.Color
	streak     canvas.Color
	cluster    canvas.Color
}

type Field struct {
	cfg      wallpaper.StarfieldSettings
	patterns []Pattern
	colors   palette
	rng      Rand

	Stars  []Star
	width  int
	height int

	lastScroll float64
}

// Rand is the subset of math/rand/v2 the field draws from.
type Rand interface {
	Float64() float64
	IntN(n int) int
}
