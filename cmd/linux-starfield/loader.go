package main

import (
	"time"

	"linux-starfield/internal/engine2D"
	"linux-starfield/internal/utils"
	"linux-starfield/internal/wallpaper"
)

// Overrides are the command line values that replace settings file values.
// Zero values leave the file untouched.
type Overrides struct {
	Scene string
	FPS   int
	Scale float64
	Seed  uint64
}

func loadSettings(configPath string, o Overrides) (wallpaper.Settings, error) {
	settings := wallpaper.Default()
	if path := utils.DiscoverConfig(configPath); path != "" {
		loaded, err := wallpaper.Load(path)
		if err != nil {
			return settings, err
		}
		settings = loaded
	}

	if o.Scene != "" && o.Scene != settings.Scene {
		preset, err := wallpaper.Preset(o.Scene)
		if err != nil {
			return settings, err
		}
		utils.Info("Scene %s requested on the command line, using its preset", o.Scene)
		preset.FPS, preset.RenderScale = settings.FPS, settings.RenderScale
		preset.TimeScale, preset.Seed = settings.TimeScale, settings.Seed
		preset.ScrollStep, preset.MaxScroll = settings.ScrollStep, settings.MaxScroll
		settings = preset
	}
	if o.FPS > 0 {
		settings.FPS = o.FPS
	}
	if o.Scale > 0 {
		settings.RenderScale = o.Scale
	}
	if o.Seed != 0 {
		settings.Seed = o.Seed
	}

	return settings, settings.Validate()
}

func newRenderer(settings wallpaper.Settings) (*engine2D.Renderer, error) {
	seed := settings.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	utils.Debug("Scene %s, seed %d, render scale %.2f", settings.Scene, seed, settings.RenderScale)
	return engine2D.NewRenderer(settings, seed)
}
