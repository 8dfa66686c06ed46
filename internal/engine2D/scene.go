package engine2D

import (
	"fmt"

	"linux-starfield/internal/engine2D/canvas"
	"linux-starfield/internal/engine2D/network"
	"linux-starfield/internal/engine2D/shapes"
	"linux-starfield/internal/engine2D/starfield"
	"linux-starfield/internal/wallpaper"
)

// Scene is an animated background. Update advances it one frame, Draw paints
// the current frame. Both treat an empty viewport as a no-op.
type Scene interface {
	Resize(width, height int)
	Update(in wallpaper.Input, tick wallpaper.Tick)
	Draw(s canvas.Surface, in wallpaper.Input, tick wallpaper.Tick)
	Count() int
}

// NewScene builds the scene named by settings.Scene.
func NewScene(settings wallpaper.Settings, rng starfield.Rand) (Scene, error) {
	switch settings.Scene {
	case wallpaper.SceneDarkSpace, wallpaper.SceneCosmic:
		field, err := starfield.NewField(settings.Starfield, rng)
		if err != nil {
			return nil, err
		}
		return field, nil
	case wallpaper.SceneNetwork, wallpaper.SceneTech:
		graph, err := network.NewGraph(settings.Network, rng)
		if err != nil {
			return nil, err
		}
		return graph, nil
	case wallpaper.SceneGeometric:
		orbit, err := shapes.NewOrbit(settings.Shapes)
		if err != nil {
			return nil, err
		}
		return orbit, nil
	}
	return nil, fmt.Errorf("unknown scene %q", settings.Scene)
}
