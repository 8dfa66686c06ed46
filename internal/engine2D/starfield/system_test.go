package starfield

import (
	"math"
	"math/rand/v2"
	"testing"

	"linux-starfield/internal/engine2D/canvas"
	"linux-starfield/internal/wallpaper"
)

func newTestField(t *testing.T, cfg wallpaper.StarfieldSettings, seed uint64) *Field {
	t.Helper()
	f, err := NewField(cfg, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	if err != nil {
		t.Fatalf("NewField() = %v", err)
	}
	return f
}

func darkSpace() wallpaper.StarfieldSettings {
	return wallpaper.Default().Starfield
}

func TestStarCount(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"hd", 1920, 1080},
		{"small", 300, 200},
		{"tiny", 10, 10},
		{"odd", 1001, 777},
		{"empty", 0, 600},
		{"negative", -10, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestField(t, darkSpace(), 1)
			f.Resize(tt.width, tt.height)

			want := 0
			if tt.width > 0 && tt.height > 0 {
				want = int(math.Floor(float64(tt.width*tt.height) / 900))
			}
			if got := f.Count(); got < want-1 || got > want+1 {
				t.Errorf("Count() = %d, want %d +-1", got, want)
			}
		})
	}
}

func TestResizeReplacesStars(t *testing.T) {
	f := newTestField(t, darkSpace(), 2)
	f.Resize(600, 600)
	first := f.Stars

	f.Resize(600, 600)
	if &f.Stars[0] != &first[0] {
		t.Error("Resize with the same size replaced the stars")
	}

	f.Resize(900, 600)
	if f.Count() != 600 {
		t.Errorf("Count() after Resize(900, 600) = %d, want 600", f.Count())
	}
}

func TestResizeSeedsLastScroll(t *testing.T) {
	f := newTestField(t, darkSpace(), 3)
	f.Update(wallpaper.Input{Width: 300, Height: 300, Scroll: 420}, wallpaper.Tick{T: 0, Dt: 1.0 / 60})
	f.Resize(310, 300)
	for i, star := range f.Stars {
		if star.LastScroll != 420 {
			t.Fatalf("star %d LastScroll = %v, want 420", i, star.LastScroll)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 5},
		{10, 0, 10, 0},
		{25, 0, 10, 5},
		{-31, -10, 110, 89},
		{111, -10, 110, -9},
		{3, 0, 0, 0},
		{math.NaN(), -1, 1, -1},
	}
	for _, tt := range tests {
		if got := wrap(tt.v, tt.lo, tt.hi); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("wrap(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestPositionsStayInWrapRange(t *testing.T) {
	f := newTestField(t, darkSpace(), 4)
	const w, h = 640, 360

	scroll := 0.0
	for frame := 0; frame < 600; frame++ {
		// fast, uneven scrolling keeps the vortex and scroll wave engaged
		scroll += float64((frame*37)%90) - 20
		in := wallpaper.Input{
			Width: w, Height: h,
			Pointer:    wallpaper.Vec2{X: float64((frame * 13) % w), Y: float64((frame * 7) % h)},
			HasPointer: true,
			Scroll:     scroll,
		}
		f.Update(in, wallpaper.Tick{T: float64(frame) * 0.005, Dt: 1.0 / 60})

		for i, star := range f.Stars {
			if star.Pos.X < -0.1*w || star.Pos.X >= 1.1*w || star.Pos.Y < -0.1*h || star.Pos.Y >= 1.1*h {
				t.Fatalf("frame %d star %d at %+v outside wrap range", frame, i, star.Pos)
			}
		}
	}
}

func TestBrightnessBounded(t *testing.T) {
	cfg := darkSpace()
	f := newTestField(t, cfg, 5)
	f.Resize(400, 400)

	for _, tm := range []float64{0, 0.5, 3, 100, 1e4} {
		for _, s := range []float64{-5000, 0, 13, 157, 8000} {
			in := wallpaper.Input{Width: 400, Height: 400, Scroll: s}
			f.Update(in, wallpaper.Tick{T: tm, Dt: 1.0 / 60})
			for i, star := range f.Stars {
				if star.Brightness < 0 || star.Brightness > 1 {
					t.Fatalf("t=%v s=%v star %d brightness %v outside [0, 1]", tm, s, i, star.Brightness)
				}
				if b := DrawBrightness(star.Brightness, star.ScrollSpeed, cfg.ScrollBrighten); b < 0 || b > 1 {
					t.Fatalf("t=%v s=%v star %d drawn brightness %v outside [0, 1]", tm, s, i, b)
				}
			}
		}
	}
}

func TestStreakProgress(t *testing.T) {
	cfg := darkSpace()
	cfg.StreakChance = 1
	f := newTestField(t, cfg, 6)
	in := wallpaper.Input{Width: 500, Height: 500}
	f.Resize(in.Width, in.Height)

	star := &f.Stars[0]
	if !star.Streak {
		t.Fatal("StreakChance 1 produced a non-streak star")
	}
	star.StreakSpeed = 5
	star.StreakProgress = 0.5

	// 5 * 0.6 * 0.1 = 0.3: still under 1
	f.step(star, in, wallpaper.Tick{T: 0, Dt: 0.1})
	if math.Abs(star.StreakProgress-0.8) > 1e-9 {
		t.Fatalf("StreakProgress = %v, want 0.8", star.StreakProgress)
	}
	angle := star.StreakAngle
	anchor := star.Anchor

	// 0.8 + 0.3 overflows
	f.step(star, in, wallpaper.Tick{T: 0, Dt: 0.1})
	if star.StreakProgress != 0 {
		t.Errorf("StreakProgress after overflow = %v, want 0", star.StreakProgress)
	}
	if star.StreakAngle == angle && star.Anchor == anchor {
		t.Error("streak was not re-randomized after overflow")
	}
	if star.LastPos != star.Pos {
		t.Errorf("LastPos = %+v, want the new position %+v", star.LastPos, star.Pos)
	}
	if star.Anchor.X < 0 || star.Anchor.X >= 500 || star.Anchor.Y < 0 || star.Anchor.Y >= 500 {
		t.Errorf("restarted anchor %+v outside the viewport", star.Anchor)
	}
}

func TestStreakProgressExactlyOneDoesNotReset(t *testing.T) {
	cfg := darkSpace()
	cfg.StreakChance = 1
	f := newTestField(t, cfg, 7)
	in := wallpaper.Input{Width: 200, Height: 200}
	f.Resize(in.Width, in.Height)

	star := &f.Stars[0]
	star.StreakProgress = 1
	f.step(star, in, wallpaper.Tick{Dt: 0})
	if star.StreakProgress != 1 {
		t.Errorf("StreakProgress = %v, want 1 (no reset until it exceeds 1)", star.StreakProgress)
	}
}

func TestDeterministicPositions(t *testing.T) {
	cfg := darkSpace()
	a := newTestField(t, cfg, 8)
	b := newTestField(t, cfg, 8)

	inputs := []wallpaper.Input{
		{Width: 800, Height: 600},
		{Width: 800, Height: 600, Pointer: wallpaper.Vec2{X: 10, Y: 20}, HasPointer: true},
		{Width: 800, Height: 600, Pointer: wallpaper.Vec2{X: 700, Y: 20}, HasPointer: true, Scroll: 90},
		{Width: 800, Height: 600, Pointer: wallpaper.Vec2{X: 700, Y: 500}, HasPointer: true, Scroll: 200},
	}
	for i, in := range inputs {
		tick := wallpaper.Tick{T: float64(i) * 0.3, Dt: 1.0 / 60}
		a.Update(in, tick)
		b.Update(in, tick)
	}

	if a.Count() != b.Count() {
		t.Fatalf("Count() differs: %d vs %d", a.Count(), b.Count())
	}
	for i := range a.Stars {
		if a.Stars[i] != b.Stars[i] {
			t.Fatalf("star %d differs:\n%+v\n%+v", i, a.Stars[i], b.Stars[i])
		}
	}
}

func TestPositionIsNotAccumulated(t *testing.T) {
	cfg := darkSpace()
	cfg.StreakChance = 0
	f := newTestField(t, cfg, 9)
	in := wallpaper.Input{Width: 640, Height: 480, Pointer: wallpaper.Vec2{X: 100, Y: 100}, HasPointer: true, Scroll: 30}
	f.Resize(in.Width, in.Height)

	for i := range f.Stars {
		star := &f.Stars[i]
		first := f.Position(star, in, 2.5, 0)
		f.Position(star, in, 7, 0)
		if again := f.Position(star, in, 2.5, 0); again != first {
			t.Fatalf("star %d: Position at t=2.5 changed from %+v to %+v", i, first, again)
		}
	}
}

func TestParallaxNeutralWithoutPointer(t *testing.T) {
	cfg := darkSpace()
	cfg.StreakChance = 0
	f := newTestField(t, cfg, 10)
	f.Resize(400, 300)

	unknown := wallpaper.Input{Width: 400, Height: 300, Pointer: wallpaper.Vec2{X: 0, Y: 0}}
	centred := wallpaper.Input{Width: 400, Height: 300, Pointer: wallpaper.Vec2{X: 200, Y: 150}, HasPointer: true}
	for i := range f.Stars {
		star := &f.Stars[i]
		if f.Position(star, unknown, 1, 0) != f.Position(star, centred, 1, 0) {
			t.Fatalf("star %d: unknown pointer is not treated as the centre", i)
		}
	}
}

func TestEmptyViewportIsNoop(t *testing.T) {
	f := newTestField(t, darkSpace(), 11)
	f.Update(wallpaper.Input{}, wallpaper.Tick{T: 1, Dt: 0.016})
	if f.Count() != 0 {
		t.Errorf("Count() = %d after an empty update, want 0", f.Count())
	}

	rec := canvas.NewRecorder(0, 0)
	f.Draw(rec, wallpaper.Input{HasPointer: true}, wallpaper.Tick{})
	if len(rec.Ops) != 0 {
		t.Errorf("Draw on an empty viewport recorded %d ops", len(rec.Ops))
	}
	f.Draw(nil, wallpaper.Input{Width: 10, Height: 10}, wallpaper.Tick{})
}

func TestNewFieldRejectsBadSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*wallpaper.StarfieldSettings)
	}{
		{"layers", func(s *wallpaper.StarfieldSettings) { s.Layers = s.Layers[:2] }},
		{"divisor", func(s *wallpaper.StarfieldSettings) { s.DensityDivisor = 0 }},
		{"pattern", func(s *wallpaper.StarfieldSettings) { s.Patterns = []string{"zigzag"} }},
		{"colour", func(s *wallpaper.StarfieldSettings) { s.Colors.Streak = "#zzzzzz" }},
		{"background", func(s *wallpaper.StarfieldSettings) { s.Background = []string{"#000000"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := darkSpace()
			tt.mutate(&cfg)
			if _, err := NewField(cfg, rand.New(rand.NewPCG(1, 2))); err == nil {
				t.Error("NewField() = nil error")
			}
		})
	}

	if _, err := NewField(darkSpace(), nil); err == nil {
		t.Error("NewField(nil rng) = nil error")
	}
}

func TestCosmicPreset(t *testing.T) {
	s, err := wallpaper.Preset(wallpaper.SceneCosmic)
	if err != nil {
		t.Fatal(err)
	}
	f := newTestField(t, s.Starfield, 12)
	f.Resize(1500, 100)

	if f.Count() != 100 {
		t.Errorf("Count() = %d, want 100", f.Count())
	}
	for i, star := range f.Stars {
		if star.Pattern != PatternStatic || star.Streak || star.InCluster {
			t.Fatalf("star %d = %+v, want a plain static star", i, star)
		}
	}
}
