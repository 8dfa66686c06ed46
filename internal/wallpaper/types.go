package wallpaper

type Vec2 struct {
	X, Y float64
}

// Input is the host state sampled once at the top of a frame.
type Input struct {
	Width      int
	Height     int
	Pointer    Vec2
	HasPointer bool // false until the host reports a pointer position
	Scroll     float64
}

func (in Input) Empty() bool {
	return in.Width <= 0 || in.Height <= 0
}

func (in Input) Center() Vec2 {
	return Vec2{X: float64(in.Width) / 2, Y: float64(in.Height) / 2}
}

// PointerOrCenter falls back to the viewport centre while no pointer has
// been reported, so parallax stays neutral.
func (in Input) PointerOrCenter() Vec2 {
	if !in.HasPointer {
		return in.Center()
	}
	return in.Pointer
}

// Tick carries the animation clock. T is scaled animation time, Dt the real
// seconds elapsed since the previous frame and Elapsed the real seconds since
// the clock started.
type Tick struct {
	T       float64
	Dt      float64
	Elapsed float64
}

// Frames converts Dt into 60 Hz frame units.
func (t Tick) Frames() float64 {
	return t.Dt * 60
}
