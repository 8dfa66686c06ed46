package engine2D

import "linux-starfield/internal/wallpaper"

// InputState collects host events between frames. Hosts mutate it from their
// event handlers and take one Sample at the top of each frame.
type InputState struct {
	width, height int
	pointer       wallpaper.Vec2
	hasPointer    bool
	scroll        float64
	maxScroll     float64
}

// NewInputState clamps scrolling to [0, maxScroll]. A zero maxScroll leaves
// the offset unbounded above.
func NewInputState(maxScroll float64) *InputState {
	return &InputState{maxScroll: maxScroll}
}

func (s *InputState) MoveTo(x, y float64) {
	s.pointer = wallpaper.Vec2{X: x, Y: y}
	s.hasPointer = true
}

func (s *InputState) ScrollBy(delta float64) {
	s.ScrollTo(s.scroll + delta)
}

func (s *InputState) ScrollTo(offset float64) {
	offset = max(offset, 0)
	if s.maxScroll > 0 {
		offset = min(offset, s.maxScroll)
	}
	s.scroll = offset
}

func (s *InputState) Resize(width, height int) {
	s.width, s.height = width, height
}

func (s *InputState) Sample() wallpaper.Input {
	return wallpaper.Input{
		Width:      s.width,
		Height:     s.height,
		Pointer:    s.pointer,
		HasPointer: s.hasPointer,
		Scroll:     s.scroll,
	}
}
