package wallpaper

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"linux-starfield/internal/engine2D/canvas"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseColor accepts "#rrggbb" / "#rgb" hex strings or the engine's
// "r g b" triplets with components in [0, 1].
func ParseColor(colorStr string) (canvas.Color, error) {
	colorStr = strings.TrimSpace(colorStr)
	if strings.HasPrefix(colorStr, "#") {
		c, err := colorful.Hex(colorStr)
		if err != nil {
			return canvas.Color{}, fmt.Errorf("invalid hex colour %q: %w", colorStr, err)
		}
		r, g, b := c.RGB255()
		return canvas.RGB(r, g, b), nil
	}

	colorParts := strings.Fields(colorStr)
	if len(colorParts) != 3 {
		return canvas.Color{}, fmt.Errorf("invalid colour %q: want #rrggbb or \"r g b\"", colorStr)
	}
	var rgb [3]uint8
	for i, part := range colorParts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return canvas.Color{}, fmt.Errorf("invalid colour component %q: %w", part, err)
		}
		if v < 0 || v > 1 {
			return canvas.Color{}, fmt.Errorf("colour component %q outside [0, 1]", part)
		}
		rgb[i] = uint8(math.Round(v * 255))
	}
	return canvas.RGB(rgb[0], rgb[1], rgb[2]), nil
}

// ParsePalette parses every entry of a palette.
func ParsePalette(entries []string) ([]canvas.Color, error) {
	colors := make([]canvas.Color, 0, len(entries))
	for _, entry := range entries {
		c, err := ParseColor(entry)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}
