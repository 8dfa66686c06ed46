package term

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"linux-starfield/internal/convert"
	"linux-starfield/internal/engine2D"
	"linux-starfield/internal/utils"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Every cell stands for a CellWidth x CellHeight block of virtual screen
// pixels, so densities and scroll steps match a desktop window of the same
// text size.
const (
	CellWidth  = 8
	CellHeight = 16

	// Cells whose halves are closer than this in Lab space are drawn as a
	// plain background.
	mergeDistance = 0.01
)

const upperHalf = '▀'

// Host presents a Renderer on a terminal using half-block cells, two pixels
// per cell.
type Host struct {
	screen     tcell.Screen
	renderer   *engine2D.Renderer
	input      *engine2D.InputState
	fps        int
	scrollStep float64

	cols, rows int
	cells      *image.RGBA
}

func NewHost(screen tcell.Screen, renderer *engine2D.Renderer, input *engine2D.InputState, fps int, scrollStep float64) *Host {
	if fps <= 0 {
		fps = 30
	}
	return &Host{
		screen:     screen,
		renderer:   renderer,
		input:      input,
		fps:        fps,
		scrollStep: scrollStep,
	}
}

// Run owns the screen until ctx ends or the user quits.
func (h *Host) Run(ctx context.Context) error {
	if err := h.screen.Init(); err != nil {
		return fmt.Errorf("cannot initialise terminal: %w", err)
	}
	defer h.screen.Fini()

	h.screen.EnableMouse(tcell.MouseMotionEvents)
	h.screen.HideCursor()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go h.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Second / time.Duration(h.fps))
	defer ticker.Stop()

	utils.Info("Terminal: Running at %d fps", h.fps)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			h.Frame(now)
		}
	}
}

// HandleEvent applies one terminal event and reports whether the host should
// exit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			h.input.ScrollBy(-h.scrollStep)
		case tcell.KeyDown:
			h.input.ScrollBy(h.scrollStep)
		case tcell.KeyPgUp:
			h.input.ScrollBy(-h.scrollStep * 5)
		case tcell.KeyPgDn:
			h.input.ScrollBy(h.scrollStep * 5)
		case tcell.KeyHome:
			h.input.ScrollTo(0)
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return true
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		h.input.MoveTo((float64(x)+0.5)*CellWidth, (float64(y)+0.5)*CellHeight)

		buttons := ev.Buttons()
		if buttons&tcell.WheelUp != 0 {
			h.input.ScrollBy(-h.scrollStep)
		}
		if buttons&tcell.WheelDown != 0 {
			h.input.ScrollBy(h.scrollStep)
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return false
}

// Frame advances the scene to now and presents it.
func (h *Host) Frame(now time.Time) {
	h.cols, h.rows = h.screen.Size()
	h.input.Resize(h.cols*CellWidth, h.rows*CellHeight)

	tick := h.renderer.Clock.Tick(now)
	h.renderer.Advance(h.input.Sample(), tick)
	h.Present()
}

// Present downsamples the last rendered frame onto the cell grid.
func (h *Host) Present() {
	if h.cols <= 0 || h.rows <= 0 {
		return
	}
	h.cells = convert.Scale(h.renderer.Image(), h.cols, h.rows*2)

	for row := 0; row < h.rows; row++ {
		for col := 0; col < h.cols; col++ {
			top := h.cells.RGBAAt(col, row*2)
			bottom := h.cells.RGBAAt(col, row*2+1)
			h.screen.SetContent(col, row, cellRune(top, bottom), nil, cellStyle(top, bottom))
		}
	}
	h.screen.Show()
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func cellRune(top, bottom color.RGBA) rune {
	if toColorful(top).DistanceLab(toColorful(bottom)) < mergeDistance {
		return ' '
	}
	return upperHalf
}

func cellStyle(top, bottom color.RGBA) tcell.Style {
	t, b := toColorful(top), toColorful(bottom)
	if t.DistanceLab(b) < mergeDistance {
		return tcell.StyleDefault.Background(tcellColor(t.BlendLab(b, 0.5)))
	}
	return tcell.StyleDefault.Foreground(tcellColor(t)).Background(tcellColor(b))
}
