package main

import (
	"image/color"
	"time"
	"unsafe"

	"linux-starfield/internal/debug"
	"linux-starfield/internal/engine2D"
	"linux-starfield/internal/utils"
	"linux-starfield/internal/wallpaper"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window presents the renderer through raylib, either as a normal window or
// as a borderless wallpaper covering the root screen.
type Window struct {
	renderer  *engine2D.Renderer
	input     *engine2D.InputState
	settings  wallpaper.Settings
	wallpaper bool

	texture       rl.Texture2D
	textureWidth  int
	textureHeight int

	debugOverlay  *debug.DebugOverlay
	pointerFailed bool
}

// NewWindow opens with the debug overlay and pointer marker showing when
// utils.DebugMode is set.
func NewWindow(renderer *engine2D.Renderer, settings wallpaper.Settings, wallpaperMode bool) *Window {
	overlay := debug.NewDebugOverlay()
	overlay.ShowPointer = utils.DebugMode
	if utils.DebugMode {
		utils.ShowDebugUI = true
	}
	return &Window{
		renderer:     renderer,
		input:        engine2D.NewInputState(settings.MaxScroll),
		settings:     settings,
		wallpaper:    wallpaperMode,
		debugOverlay: overlay,
	}
}

func (window *Window) Run() {
	rl.SetTargetFPS(int32(window.settings.FPS))

	for !rl.WindowShouldClose() {
		window.Update()

		rl.BeginDrawing()
		window.Draw()
		rl.EndDrawing()
	}
}

func (window *Window) Update() {
	now := time.Now()
	window.input.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	window.updatePointer()

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		window.input.ScrollBy(-float64(wheel) * window.settings.ScrollStep)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		window.input.ScrollTo(0)
	}
	if rl.IsKeyPressed(rl.KeyF8) {
		utils.ShowDebugUI = !utils.ShowDebugUI
	}
	if utils.ShowDebugUI {
		window.debugOverlay.Update()
	}

	stepFrame(window.renderer, window.input.Sample(), now, window.debugOverlay.Paused)
}

// stepFrame advances the renderer to now. A paused frame only follows the
// viewport and holds the clock so unpausing resumes where it stopped.
func stepFrame(renderer *engine2D.Renderer, in wallpaper.Input, now time.Time, paused bool) {
	if paused {
		renderer.Clock.Hold(now)
		renderer.UpdateViewport(in.Width, in.Height)
		return
	}
	renderer.Advance(in, renderer.Clock.Tick(now))
}

// updatePointer reads the X11 pointer in wallpaper mode, where the window sits
// below everything else and never sees pointer events.
func (window *Window) updatePointer() {
	if !window.wallpaper {
		if rl.IsCursorOnScreen() {
			pos := rl.GetMousePosition()
			window.input.MoveTo(float64(pos.X), float64(pos.Y))
		}
		return
	}

	x, y, err := utils.GetGlobalMousePosition()
	if err != nil {
		if !window.pointerFailed {
			utils.Warn("Global pointer unavailable, parallax stays centred: %v", err)
			window.pointerFailed = true
		}
		return
	}
	window.input.MoveTo(float64(x), float64(y))
}

func (window *Window) ensureTexture(width, height int) {
	if width == window.textureWidth && height == window.textureHeight && window.texture.ID != 0 {
		return
	}
	if window.texture.ID != 0 {
		rl.UnloadTexture(window.texture)
	}

	img := rl.GenImageColor(width, height, rl.Black)
	window.texture = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(window.texture, rl.FilterBilinear)
	window.textureWidth, window.textureHeight = width, height
	utils.Debug("Frame texture %dx%d", width, height)
}

func (window *Window) Draw() {
	rl.ClearBackground(rl.Black)

	width, height := window.renderer.Size()
	pix := window.renderer.Pixels()
	if len(pix) < width*height*4 || width <= 0 || height <= 0 {
		return
	}
	window.ensureTexture(width, height)
	rl.UpdateTexture(window.texture, asColors(pix[:width*height*4]))

	source := rl.NewRectangle(0, 0, float32(width), float32(height))
	dest := rl.NewRectangle(0, 0, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	rl.DrawTexturePro(window.texture, source, dest, rl.NewVector2(0, 0), 0, rl.White)

	if utils.ShowDebugUI {
		in := window.input.Sample()
		pointer := rl.NewVector2(float32(in.Pointer.X), float32(in.Pointer.Y))
		window.debugOverlay.Draw(window.renderer.Stats(), float64(rl.GetFPS()), window.settings.FPS, pointer)
	}
}

func (window *Window) Close() {
	if window.texture.ID != 0 {
		rl.UnloadTexture(window.texture)
	}
}

// asColors reinterprets packed RGBA bytes without copying.
func asColors(pix []uint8) []color.RGBA {
	return unsafe.Slice((*color.RGBA)(unsafe.Pointer(unsafe.SliceData(pix))), len(pix)/4)
}

func runWindow(renderer *engine2D.Renderer, settings wallpaper.Settings, width, height int, wallpaperMode bool) error {
	rl.SetTraceLogCallback(utils.RaylibLogCallback)

	title := "Linux Starfield"
	if wallpaperMode {
		if err := utils.InitX11(); err != nil {
			return err
		}
		defer utils.CloseX11()

		rootWidth, rootHeight, err := utils.GetRootSize()
		if err != nil {
			return err
		}
		width, height = rootWidth, rootHeight
		rl.SetConfigFlags(rl.FlagWindowUndecorated | rl.FlagWindowMousePassthrough | rl.FlagVsyncHint)
		title = "Linux Starfield Wallpaper"
	} else {
		rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagVsyncHint)
	}

	utils.Info("Opening %dx%d window (%s)", width, height, settings.Scene)
	rl.InitWindow(int32(width), int32(height), title)
	defer rl.CloseWindow()
	if wallpaperMode {
		rl.SetWindowPosition(0, 0)
	}

	window := NewWindow(renderer, settings, wallpaperMode)
	defer window.Close()
	window.Run()
	return nil
}
