package wallpaper

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	SceneDarkSpace = "darkspace"
	SceneCosmic    = "cosmic"
	SceneNetwork   = "network"
	SceneTech      = "tech"
	SceneGeometric = "geometric"
)

// Scenes lists every scene name Preset understands.
var Scenes = []string{SceneDarkSpace, SceneCosmic, SceneNetwork, SceneTech, SceneGeometric}

const (
	PatternStatic   = "static"
	PatternLinear   = "linear"
	PatternCircular = "circular"
	PatternWave     = "wave"
)

const (
	PointerAttract = "attract"
	PointerRepel   = "repel"
)

type Settings struct {
	Scene       string  `yaml:"scene"`
	FPS         int     `yaml:"fps"`
	RenderScale float64 `yaml:"render_scale"`
	// TimeScale is animation time per real second (0.005 per 60 Hz frame).
	TimeScale  float64 `yaml:"time_scale"`
	ScrollStep float64 `yaml:"scroll_step"`
	MaxScroll  float64 `yaml:"max_scroll"`
	Seed       uint64  `yaml:"seed"`

	Starfield StarfieldSettings `yaml:"starfield"`
	Network   NetworkSettings   `yaml:"network"`
	Shapes    ShapesSettings    `yaml:"shapes"`
}

type Cluster struct {
	X      float64 `yaml:"x"`      // fraction of width
	Y      float64 `yaml:"y"`      // fraction of height
	Radius float64 `yaml:"radius"` // fraction of min(width, height)
}

// LayerSettings tunes one depth layer, index 0 being nearest.
type LayerSettings struct {
	Scroll       float64 `yaml:"scroll"`
	SwayFreq     float64 `yaml:"sway_freq"`
	SwayScroll   float64 `yaml:"sway_scroll"`
	SwayAmp      float64 `yaml:"sway_amp"`
	VortexWeight float64 `yaml:"vortex_weight"`
}

type StarColors struct {
	Default  string `yaml:"default"`
	Circular string `yaml:"circular"`
	Streak   string `yaml:"streak"`
	Cluster  string `yaml:"cluster"`
}

type Nebula struct {
	Color string  `yaml:"color"`
	Alpha float64 `yaml:"alpha"`
}

type StarfieldSettings struct {
	DensityDivisor float64         `yaml:"density_divisor"`
	ClusterChance  float64         `yaml:"cluster_chance"`
	Clusters       []Cluster       `yaml:"clusters"`
	Patterns       []string        `yaml:"patterns"`
	Layers         []LayerSettings `yaml:"layers"`

	StreakChance float64 `yaml:"streak_chance"`
	StreakRate   float64 `yaml:"streak_rate"`   // progress per second per unit of streak speed
	StreakTravel float64 `yaml:"streak_travel"` // pixels per second per unit of streak speed

	ScrollParallax  float64 `yaml:"scroll_parallax"`
	ScrollWave      bool    `yaml:"scroll_wave"`
	ScrollTrails    bool    `yaml:"scroll_trails"`
	ScrollTwinkle   float64 `yaml:"scroll_twinkle"`
	ScrollBrighten  float64 `yaml:"scroll_brighten"`
	PointerParallax bool    `yaml:"pointer_parallax"`
	Vortex          bool    `yaml:"vortex"`
	VortexThreshold float64 `yaml:"vortex_threshold"`
	VortexGain      float64 `yaml:"vortex_gain"`
	VortexMax       float64 `yaml:"vortex_max"`
	VortexReach     float64 `yaml:"vortex_reach"`
	TrailThreshold  float64 `yaml:"trail_threshold"`
	GlowThreshold   float64 `yaml:"glow_threshold"`

	Background []string   `yaml:"background"`
	Nebulae    []Nebula   `yaml:"nebulae"`
	Colors     StarColors `yaml:"colors"`

	Ripple       bool `yaml:"ripple"`
	RippleRings  int  `yaml:"ripple_rings"`
	RippleScroll bool `yaml:"ripple_scroll"`
	PointerTrail bool `yaml:"pointer_trail"`
}

const (
	GridNone   = ""
	GridHex    = "hex"
	GridSquare = "square"
)

// Blob is a soft glow placed at Origin (fraction of the viewport) plus Offset
// pixels, drifting with the pointer by Follow.
type Blob struct {
	Color   string  `yaml:"color"`
	Alpha   float64 `yaml:"alpha"`
	Radius  float64 `yaml:"radius"`
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Follow  float64 `yaml:"follow"`
}

type NetworkSettings struct {
	DensityDivisor float64 `yaml:"density_divisor"`
	Count          int     `yaml:"count"`
	CompactWidth   int     `yaml:"compact_width"`
	CompactCount   int     `yaml:"compact_count"`

	RadiusMin   float64 `yaml:"radius_min"`
	RadiusMax   float64 `yaml:"radius_max"`
	AlphaMin    float64 `yaml:"alpha_min"`
	AlphaMax    float64 `yaml:"alpha_max"`
	MaxSpeed    float64 `yaml:"max_speed"`
	MaxVelocity float64 `yaml:"max_velocity"` // 0 disables the clamp

	PointerMode     string  `yaml:"pointer_mode"`
	PointerRange    float64 `yaml:"pointer_range"`
	AttractStrength float64 `yaml:"attract_strength"`
	RepelStrength   float64 `yaml:"repel_strength"`

	LinkDistance float64 `yaml:"link_distance"`
	LinkWidth    float64 `yaml:"link_width"`
	LinkColor    string  `yaml:"link_color"`
	LinkAlpha    float64 `yaml:"link_alpha"`
	LinkFade     bool    `yaml:"link_fade"`

	Grid         string  `yaml:"grid"`
	GridSize     float64 `yaml:"grid_size"`
	GridColor    string  `yaml:"grid_color"`
	GridAlpha    float64 `yaml:"grid_alpha"`
	GridWidth    float64 `yaml:"grid_width"`
	GridParallax float64 `yaml:"grid_parallax"`

	Glow       bool    `yaml:"glow"`
	GlowColor  string  `yaml:"glow_color"`
	GlowRadius float64 `yaml:"glow_radius"`

	Circuits     int    `yaml:"circuits"`
	CircuitColor string `yaml:"circuit_color"`

	Background      []string `yaml:"background"`
	BackgroundDrift float64  `yaml:"background_drift"`
	Blobs           []Blob   `yaml:"blobs"`
	Palette         []string `yaml:"palette"`
}

// ShapesSettings tunes the orbiting geometric shapes scene. Lengths are pixels.
type ShapesSettings struct {
	Count         int      `yaml:"count"`
	OrbitRadius   float64  `yaml:"orbit_radius"`
	OrbitSwing    float64  `yaml:"orbit_swing"`
	Size          float64  `yaml:"size"`
	SizeSwing     float64  `yaml:"size_swing"`
	Spin          float64  `yaml:"spin"` // radians per unit of T
	Alpha         float64  `yaml:"alpha"`
	PointerOffset float64  `yaml:"pointer_offset"` // shift at the viewport edge
	Palette       []string `yaml:"palette"`        // triangle, square, circle

	LinkDistance float64 `yaml:"link_distance"`
	LinkColor    string  `yaml:"link_color"`
	LinkAlpha    float64 `yaml:"link_alpha"`

	GlowRadius float64  `yaml:"glow_radius"`
	GlowAlpha  float64  `yaml:"glow_alpha"`
	Glow       []string `yaml:"glow"`

	GridSize  float64 `yaml:"grid_size"`
	GridDrift float64 `yaml:"grid_drift"`
	GridColor string  `yaml:"grid_color"`
	GridAlpha float64 `yaml:"grid_alpha"`

	Background      []string  `yaml:"background"`
	BackgroundStops []float64 `yaml:"background_stops"` // evenly spaced when empty
}

// Default returns the layered dark-space starfield settings.
func Default() Settings {
	return Settings{
		Scene:       SceneDarkSpace,
		FPS:         60,
		RenderScale: 1,
		TimeScale:   0.3,
		ScrollStep:  80,
		MaxScroll:   8000,
		Starfield:   darkSpaceStarfield(),
		Network:     portfolioNetwork(),
		Shapes:      geometricShapes(),
	}
}

// Preset returns the defaults for a named scene.
func Preset(scene string) (Settings, error) {
	s := Default()
	s.Scene = scene
	switch scene {
	case SceneDarkSpace:
	case SceneCosmic:
		s.Starfield = cosmicStarfield()
	case SceneNetwork:
		s.Network = portfolioNetwork()
	case SceneTech:
		s.Network = techNetwork()
	case SceneGeometric:
	default:
		return Settings{}, fmt.Errorf("unknown scene %q", scene)
	}
	return s, nil
}

func darkSpaceStarfield() StarfieldSettings {
	return StarfieldSettings{
		DensityDivisor: 900,
		ClusterChance:  0.3,
		Clusters: []Cluster{
			{X: 0.3, Y: 0.2, Radius: 0.3},
			{X: 0.7, Y: 0.8, Radius: 0.25},
			{X: 0.8, Y: 0.3, Radius: 0.2},
		},
		Patterns: []string{PatternLinear, PatternCircular, PatternWave, PatternStatic},
		Layers: []LayerSettings{
			{Scroll: 0.5, SwayFreq: 1, SwayScroll: 0.002, SwayAmp: 3, VortexWeight: 2},
			{Scroll: 0.25, SwayFreq: 0.5, SwayScroll: 0.001, SwayAmp: 2, VortexWeight: 1},
			{Scroll: 0.12, SwayFreq: 0.25, SwayScroll: 0.0005, SwayAmp: 1, VortexWeight: 0.5},
		},
		StreakChance:    0.01,
		StreakRate:      0.6,
		StreakTravel:    60,
		ScrollParallax:  0.5,
		ScrollWave:      true,
		ScrollTrails:    true,
		ScrollTwinkle:   0.1,
		ScrollBrighten:  0.2,
		PointerParallax: true,
		Vortex:          true,
		VortexThreshold: 15,
		VortexGain:      0.01,
		VortexMax:       0.3,
		VortexReach:     0.8,
		TrailThreshold:  10,
		GlowThreshold:   1,
		Background:      []string{"#0a0a12", "#050508"},
		Nebulae: []Nebula{
			{Color: "#301934", Alpha: 0.03},
			{Color: "#192634", Alpha: 0.02},
			{Color: "#341924", Alpha: 0.02},
		},
		Colors: StarColors{
			Default:  "#ffffff",
			Circular: "#dcebff",
			Streak:   "#fffadc",
			Cluster:  "#fff0dc",
		},
		Ripple:       true,
		RippleRings:  3,
		RippleScroll: true,
		PointerTrail: true,
	}
}

func cosmicStarfield() StarfieldSettings {
	s := darkSpaceStarfield()
	s.DensityDivisor = 1500
	s.ClusterChance = 0
	s.Patterns = []string{PatternStatic}
	s.StreakChance = 0
	s.ScrollParallax = 0
	s.Vortex = false
	s.ScrollWave = false
	s.ScrollTrails = false
	s.ScrollTwinkle = 0
	s.ScrollBrighten = 0
	s.PointerParallax = false
	s.Background = []string{"#000000", "#000000"}
	s.Nebulae = nil
	s.Colors = StarColors{Default: "#ffffff", Circular: "#ffffff", Streak: "#ffffff", Cluster: "#ffffff"}
	s.RippleRings = 0
	s.RippleScroll = false
	s.PointerTrail = false
	for i := range s.Layers {
		s.Layers[i] = LayerSettings{}
	}
	return s
}

func portfolioNetwork() NetworkSettings {
	return NetworkSettings{
		Count:           60,
		CompactWidth:    768,
		CompactCount:    30,
		RadiusMin:       1,
		RadiusMax:       5,
		AlphaMin:        0.3,
		AlphaMax:        0.8,
		MaxSpeed:        2,
		PointerMode:     PointerRepel,
		PointerRange:    150,
		RepelStrength:   2,
		LinkDistance:    120,
		LinkWidth:       0.5,
		LinkColor:       "#a0aec0",
		LinkAlpha:       0.2,
		Grid:            GridSquare,
		GridSize:        40,
		GridColor:       "#4f46e5",
		GridAlpha:       0.2,
		GridWidth:       1,
		GridParallax:    0.02,
		Background:      []string{"#111827", "#1f2937", "#111827"},
		BackgroundDrift: 0.1,
		Blobs: []Blob{
			{Color: "#3b82f6", Alpha: 0.1, Radius: 128, OffsetX: 128, OffsetY: 228, Follow: 0.1},
			{Color: "#6366f1", Alpha: 0.1, Radius: 192, OriginX: 1, OriginY: 1, OffsetX: -292, OffsetY: -292, Follow: -0.05},
		},
		Palette: []string{"#3b82f6", "#6366f1", "#8b5cf6"},
	}
}

func techNetwork() NetworkSettings {
	return NetworkSettings{
		DensityDivisor:  15000,
		RadiusMin:       0.5,
		RadiusMax:       2,
		AlphaMin:        1,
		AlphaMax:        1,
		MaxSpeed:        0.5,
		MaxVelocity:     1.5,
		PointerMode:     PointerAttract,
		PointerRange:    150,
		AttractStrength: 0.02,
		LinkDistance:    100,
		LinkWidth:       0.4,
		LinkColor:       "#ffffff",
		LinkAlpha:       0.1,
		LinkFade:        true,
		Grid:            GridHex,
		GridSize:        40,
		GridColor:       "#10b981",
		GridAlpha:       0.1,
		GridWidth:       1,
		Glow:            true,
		GlowColor:       "#8b5cf6",
		GlowRadius:      100,
		Circuits:        5,
		CircuitColor:    "#06b6d4",
		Background:      []string{"#0f0f0f"},
		Palette:         []string{"#10b981", "#06b6d4", "#8b5cf6"},
	}
}

func geometricShapes() ShapesSettings {
	return ShapesSettings{
		Count:           12,
		OrbitRadius:     150,
		OrbitSwing:      50,
		Size:            70,
		SizeSwing:       30,
		Spin:            0.2,
		Alpha:           0.15,
		PointerOffset:   100,
		Palette:         []string{"#e879f9", "#38bdf8", "#22c55e"},
		LinkDistance:    300,
		LinkColor:       "#f0f9ff",
		LinkAlpha:       0.05,
		GlowRadius:      200,
		GlowAlpha:       0.6,
		Glow:            []string{"#38bdf8", "#e879f9", "#22c55e"},
		GridSize:        50,
		GridDrift:       10,
		GridColor:       "#f8fafc",
		GridAlpha:       0.03,
		Background:      []string{"#0f172a", "#1e293b", "#1e1b4b", "#0f172a"},
		BackgroundStops: []float64{0, 0.3, 0.6, 1},
	}
}

// Load reads a YAML settings file. Values in the file are layered over the
// preset of the scene the file names (or the default scene).
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("cannot read settings %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates YAML settings.
func Parse(data []byte) (Settings, error) {
	var head struct {
		Scene string `yaml:"scene"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Settings{}, fmt.Errorf("cannot parse settings: %w", err)
	}
	if head.Scene == "" {
		head.Scene = SceneDarkSpace
	}

	s, err := Preset(head.Scene)
	if err != nil {
		return Settings{}, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("cannot parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports every invalid field at once.
func (s Settings) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	checkColor := func(field, value string) {
		if _, err := ParseColor(value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}

	if _, err := Preset(s.Scene); err != nil {
		errs = append(errs, err)
	}
	check(s.FPS > 0, "fps must be positive, got %d", s.FPS)
	check(s.RenderScale > 0 && s.RenderScale <= 1, "render_scale must be in (0, 1], got %v", s.RenderScale)
	check(s.TimeScale > 0, "time_scale must be positive, got %v", s.TimeScale)
	check(s.ScrollStep >= 0, "scroll_step must not be negative, got %v", s.ScrollStep)
	check(s.MaxScroll >= 0, "max_scroll must not be negative, got %v", s.MaxScroll)

	sf := s.Starfield
	check(sf.DensityDivisor > 0, "starfield.density_divisor must be positive, got %v", sf.DensityDivisor)
	check(sf.ClusterChance >= 0 && sf.ClusterChance <= 1, "starfield.cluster_chance must be in [0, 1], got %v", sf.ClusterChance)
	check(sf.ClusterChance == 0 || len(sf.Clusters) > 0, "starfield.clusters must not be empty when cluster_chance > 0")
	check(sf.StreakChance >= 0 && sf.StreakChance <= 1, "starfield.streak_chance must be in [0, 1], got %v", sf.StreakChance)
	check(len(sf.Layers) == 3, "starfield.layers must have 3 entries, got %d", len(sf.Layers))
	check(len(sf.Patterns) > 0, "starfield.patterns must not be empty")
	for _, p := range sf.Patterns {
		switch p {
		case PatternStatic, PatternLinear, PatternCircular, PatternWave:
		default:
			errs = append(errs, fmt.Errorf("starfield.patterns: unknown pattern %q", p))
		}
	}
	check(len(sf.Background) == 2, "starfield.background must have 2 colours, got %d", len(sf.Background))
	for i, c := range sf.Background {
		checkColor(fmt.Sprintf("starfield.background[%d]", i), c)
	}
	for i, n := range sf.Nebulae {
		checkColor(fmt.Sprintf("starfield.nebulae[%d].color", i), n.Color)
	}
	checkColor("starfield.colors.default", sf.Colors.Default)
	checkColor("starfield.colors.circular", sf.Colors.Circular)
	checkColor("starfield.colors.streak", sf.Colors.Streak)
	checkColor("starfield.colors.cluster", sf.Colors.Cluster)
	check(sf.ScrollBrighten >= 0, "starfield.scroll_brighten must not be negative, got %v", sf.ScrollBrighten)
	check(sf.RippleRings >= 0, "starfield.ripple_rings must not be negative, got %d", sf.RippleRings)

	nw := s.Network
	check(nw.Count > 0 || nw.DensityDivisor > 0, "network needs count or density_divisor")
	check(nw.RadiusMin > 0 && nw.RadiusMax >= nw.RadiusMin, "network radius range [%v, %v] is invalid", nw.RadiusMin, nw.RadiusMax)
	check(nw.AlphaMin >= 0 && nw.AlphaMax <= 1 && nw.AlphaMax >= nw.AlphaMin, "network alpha range [%v, %v] is invalid", nw.AlphaMin, nw.AlphaMax)
	check(nw.MaxVelocity >= 0, "network.max_velocity must not be negative, got %v", nw.MaxVelocity)
	check(nw.PointerMode == PointerAttract || nw.PointerMode == PointerRepel, "network.pointer_mode must be %q or %q, got %q", PointerAttract, PointerRepel, nw.PointerMode)
	check(nw.LinkDistance >= 0, "network.link_distance must not be negative, got %v", nw.LinkDistance)
	switch nw.Grid {
	case GridNone:
	case GridHex, GridSquare:
		check(nw.GridSize > 0, "network.grid_size must be positive, got %v", nw.GridSize)
		checkColor("network.grid_color", nw.GridColor)
	default:
		errs = append(errs, fmt.Errorf("network.grid must be %q, %q or empty, got %q", GridHex, GridSquare, nw.Grid))
	}
	check(len(nw.Palette) > 0, "network.palette must not be empty")
	for i, c := range nw.Palette {
		checkColor(fmt.Sprintf("network.palette[%d]", i), c)
	}
	check(len(nw.Background) > 0, "network.background must not be empty")
	for i, c := range nw.Background {
		checkColor(fmt.Sprintf("network.background[%d]", i), c)
	}
	for i, b := range nw.Blobs {
		checkColor(fmt.Sprintf("network.blobs[%d].color", i), b.Color)
	}
	checkColor("network.link_color", nw.LinkColor)
	if nw.Glow {
		checkColor("network.glow_color", nw.GlowColor)
	}
	if nw.Circuits > 0 {
		checkColor("network.circuit_color", nw.CircuitColor)
	}

	sh := s.Shapes
	check(sh.Count >= 0, "shapes.count must not be negative, got %d", sh.Count)
	check(sh.Size > 0 && sh.SizeSwing >= 0 && sh.SizeSwing < sh.Size,
		"shapes size %v +- %v must stay positive", sh.Size, sh.SizeSwing)
	check(sh.GridSize > 0, "shapes.grid_size must be positive, got %v", sh.GridSize)
	check(len(sh.Palette) > 0, "shapes.palette must not be empty")
	for i, c := range sh.Palette {
		checkColor(fmt.Sprintf("shapes.palette[%d]", i), c)
	}
	check(len(sh.Glow) == 3, "shapes.glow must have 3 colours, got %d", len(sh.Glow))
	for i, c := range sh.Glow {
		checkColor(fmt.Sprintf("shapes.glow[%d]", i), c)
	}
	check(len(sh.Background) > 0, "shapes.background must not be empty")
	for i, c := range sh.Background {
		checkColor(fmt.Sprintf("shapes.background[%d]", i), c)
	}
	check(len(sh.BackgroundStops) == 0 || len(sh.BackgroundStops) == len(sh.Background),
		"shapes.background_stops must match shapes.background, got %d for %d", len(sh.BackgroundStops), len(sh.Background))
	checkColor("shapes.link_color", sh.LinkColor)
	checkColor("shapes.grid_color", sh.GridColor)

	return errors.Join(errs...)
}
