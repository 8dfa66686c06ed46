package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"linux-starfield/internal/engine2D"
	"linux-starfield/internal/term"
	"linux-starfield/internal/utils"
	"linux-starfield/internal/wallpaper"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"
)

const (
	ModeWindow    = "window"
	ModeWallpaper = "wallpaper"
	ModeTerminal  = "terminal"
	ModeSnapshot  = "snapshot"
	ModeCapture   = "capture"
)

var modes = []string{ModeWindow, ModeWallpaper, ModeTerminal, ModeSnapshot, ModeCapture}

func main() {
	configPath := flag.String("config", "", "Path to a settings file (default: search the XDG config paths)")
	scene := flag.String("scene", "", "Scene to run: "+strings.Join(wallpaper.Scenes, ", "))
	mode := flag.String("mode", ModeWindow, "Host: "+strings.Join(modes, ", "))
	width := flag.Int("width", 1280, "Window or output width")
	height := flag.Int("height", 720, "Window or output height")
	fps := flag.Int("fps", 0, "Target frame rate (default from settings)")
	scale := flag.Float64("scale", 0, "Render scale in (0, 1] (default from settings)")
	frames := flag.Int("frames", 120, "Frames to render in snapshot and capture modes")
	out := flag.String("out", "", "Output file for snapshot and capture modes")
	seed := flag.Uint64("seed", 0, "Random seed (default from settings, 0 for time based)")
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	verbose := flag.Bool("verbose", false, "Enable info logging, including raylib")
	flag.Parse()

	utils.DebugMode = *debugFlag
	switch {
	case *debugFlag:
		utils.CurrentLevel = utils.LevelDebug
	case *verbose:
		utils.CurrentLevel = utils.LevelInfo
		utils.ShowRaylibInfo = true
	}
	gg.SetLogger(utils.NewSlogLogger("gg"))

	utils.Info("--- Linux Starfield Start ---")
	if err := run(*mode, *configPath, Overrides{Scene: *scene, FPS: *fps, Scale: *scale, Seed: *seed}, *width, *height, *frames, *out); err != nil {
		utils.Error("%v", err)
		os.Exit(1)
	}
}

func run(mode, configPath string, o Overrides, width, height, frames int, out string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid size %dx%d", width, height)
	}
	if mode == ModeTerminal && o.Scale == 0 {
		o.Scale = 0.5
	}

	settings, err := loadSettings(configPath, o)
	if err != nil {
		return err
	}
	renderer, err := newRenderer(settings)
	if err != nil {
		return err
	}
	defer renderer.Close()

	switch mode {
	case ModeWindow:
		return runWindow(renderer, settings, width, height, false)
	case ModeWallpaper:
		return runWindow(renderer, settings, width, height, true)
	case ModeTerminal:
		return runTerminal(renderer, settings)
	case ModeSnapshot:
		return runSnapshot(renderer, settings, width, height, frames, outputPath(out, settings.Scene, ".png"))
	case ModeCapture:
		return runCapture(renderer, settings, width, height, frames, outputPath(out, settings.Scene, ".sfcap"))
	}
	return fmt.Errorf("unknown mode %q, want one of %s", mode, strings.Join(modes, ", "))
}

func outputPath(out, scene, ext string) string {
	if out != "" {
		return out
	}
	return "starfield-" + scene + ext
}

func runTerminal(renderer *engine2D.Renderer, settings wallpaper.Settings) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("cannot open terminal: %w", err)
	}

	// Log lines would tear the picture.
	utils.SetOutput(io.Discard)
	defer utils.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	input := engine2D.NewInputState(settings.MaxScroll)
	host := term.NewHost(screen, renderer, input, settings.FPS, settings.ScrollStep)
	return host.Run(ctx)
}
