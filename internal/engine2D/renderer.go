package engine2D

import (
	"image"
	"math"
	"math/rand/v2"
	"time"

	"linux-starfield/internal/engine2D/canvas"
	"linux-starfield/internal/utils"
	"linux-starfield/internal/wallpaper"
)

// Renderer drives a Scene into a software surface. Hosts feed it one Input
// per frame and present Pixels however they can.
type Renderer struct {
	Scene   Scene
	Clock   *Clock
	Surface *canvas.GG

	SceneName   string
	RenderScale float64

	screenWidth  int
	screenHeight int
	input        wallpaper.Input
	tick         wallpaper.Tick
	frames       uint64
	drawTime     time.Duration
}

// Stats describes the last rendered frame.
type Stats struct {
	Scene        string
	Count        int
	Width        int
	Height       int
	ScreenWidth  int
	ScreenHeight int
	Frame        uint64
	T            float64
	Scroll       float64
	DrawTime     time.Duration
}

// NewRenderer builds the configured scene seeded with seed.
func NewRenderer(settings wallpaper.Settings, seed uint64) (*Renderer, error) {
	rng := rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))
	scene, err := NewScene(settings, rng)
	if err != nil {
		return nil, err
	}

	scale := settings.RenderScale
	if scale <= 0 || scale > 1 {
		scale = 1
	}
	return &Renderer{
		Scene:       scene,
		Clock:       NewClock(settings.TimeScale),
		Surface:     canvas.NewGG(1, 1),
		SceneName:   settings.Scene,
		RenderScale: scale,
	}, nil
}

// UpdateViewport sizes the render surface for a screen of the given size.
func (r *Renderer) UpdateViewport(screenWidth, screenHeight int) {
	if screenWidth == r.screenWidth && screenHeight == r.screenHeight {
		return
	}
	r.screenWidth, r.screenHeight = screenWidth, screenHeight

	w, h := r.renderSize()
	if err := r.Surface.Resize(w, h); err != nil {
		utils.Error("Failed to resize render surface to %dx%d: %v", w, h, err)
		return
	}
	r.Scene.Resize(w, h)
	utils.Debug("Viewport %dx%d, rendering at %dx%d", screenWidth, screenHeight, w, h)
}

func (r *Renderer) renderSize() (int, int) {
	if r.screenWidth <= 0 || r.screenHeight <= 0 {
		return 0, 0
	}
	w := max(1, int(math.Round(float64(r.screenWidth)*r.RenderScale)))
	h := max(1, int(math.Round(float64(r.screenHeight)*r.RenderScale)))
	return w, h
}

// Update maps screen input into render coordinates and advances the scene.
func (r *Renderer) Update(in wallpaper.Input, tick wallpaper.Tick) {
	r.UpdateViewport(in.Width, in.Height)

	w, h := r.renderSize()
	mapped := in
	mapped.Width, mapped.Height = w, h
	if in.Width > 0 && in.Height > 0 {
		sx := float64(w) / float64(in.Width)
		sy := float64(h) / float64(in.Height)
		mapped.Pointer = wallpaper.Vec2{X: in.Pointer.X * sx, Y: in.Pointer.Y * sy}
		mapped.Scroll = in.Scroll * sy
	}

	r.input, r.tick = mapped, tick
	r.Scene.Update(mapped, tick)
}

// Render paints the current frame. Rasterizer errors are logged and dropped.
func (r *Renderer) Render() {
	if r.input.Empty() {
		return
	}
	start := time.Now()
	r.Scene.Draw(r.Surface, r.input, r.tick)
	if err := r.Surface.Flush(); err != nil {
		utils.Debug("Frame %d: %v", r.frames, err)
	}
	r.drawTime = time.Since(start)
	r.frames++
}

// Advance runs one Update and Render.
func (r *Renderer) Advance(in wallpaper.Input, tick wallpaper.Tick) {
	r.Update(in, tick)
	r.Render()
}

func (r *Renderer) Size() (int, int) {
	return r.Surface.Size()
}

// Pixels returns the surface's RGBA bytes. The slice is reused every frame.
func (r *Renderer) Pixels() []uint8 {
	return r.Surface.Pixels()
}

func (r *Renderer) Image() *image.RGBA {
	return r.Surface.Image()
}

func (r *Renderer) Stats() Stats {
	w, h := r.Size()
	return Stats{
		Scene:        r.SceneName,
		Count:        r.Scene.Count(),
		Width:        w,
		Height:       h,
		ScreenWidth:  r.screenWidth,
		ScreenHeight: r.screenHeight,
		Frame:        r.frames,
		T:            r.tick.T,
		Scroll:       r.input.Scroll,
		DrawTime:     r.drawTime,
	}
}

func (r *Renderer) Close() error {
	return r.Surface.Close()
}
