package term

import (
	"context"
	"image/color"
	"testing"
	"time"

	"linux-starfield/internal/engine2D"
	"linux-starfield/internal/wallpaper"

	"github.com/gdamore/tcell/v2"
)

func newTestHost(t *testing.T, scene string) (*Host, tcell.SimulationScreen, *engine2D.InputState) {
	t.Helper()
	settings, err := wallpaper.Preset(scene)
	if err != nil {
		t.Fatal(err)
	}
	settings.RenderScale = 0.5
	r, err := engine2D.NewRenderer(settings, 3)
	if err != nil {
		t.Fatalf("NewRenderer() = %v", err)
	}
	t.Cleanup(func() { r.Close() })

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(20, 6)

	input := engine2D.NewInputState(settings.MaxScroll)
	return NewHost(screen, r, input, 30, 80), screen, input
}

func TestHostFrame(t *testing.T) {
	h, screen, input := newTestHost(t, wallpaper.SceneDarkSpace)

	start := time.Unix(0, 0)
	for i := 0; i < 3; i++ {
		h.Frame(start.Add(time.Duration(i) * time.Second / 30))
	}

	if got := input.Sample(); got.Width != 20*CellWidth || got.Height != 6*CellHeight {
		t.Errorf("viewport = %dx%d, want %dx%d", got.Width, got.Height, 20*CellWidth, 6*CellHeight)
	}
	if rw, rh := h.renderer.Size(); rw != 80 || rh != 48 {
		t.Errorf("render size = %dx%d, want 80x48", rw, rh)
	}

	cells, w, hgt := screen.GetContents()
	if w != 20 || hgt != 6 {
		t.Fatalf("screen = %dx%d, want 20x6", w, hgt)
	}
	for i, cell := range cells {
		if len(cell.Runes) != 1 || (cell.Runes[0] != ' ' && cell.Runes[0] != upperHalf) {
			t.Fatalf("cell %d = %q, want a space or a half block", i, cell.Runes)
		}
		if _, bg, _ := cell.Style.Decompose(); bg == tcell.ColorDefault {
			t.Fatalf("cell %d has no background colour", i)
		}
	}
}

func TestHandleEvent(t *testing.T) {
	tests := []struct {
		name       string
		ev         tcell.Event
		quit       bool
		wantScroll float64
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true, 0},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), true, 0},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true, 0},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), false, 0},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), false, 80},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), false, 400},
		{"up clamps at zero", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), false, 0},
		{"wheel down", tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone), false, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, input := newTestHost(t, wallpaper.SceneCosmic)
			if got := h.HandleEvent(tt.ev); got != tt.quit {
				t.Errorf("HandleEvent() = %v, want %v", got, tt.quit)
			}
			if got := input.Sample().Scroll; got != tt.wantScroll {
				t.Errorf("scroll = %v, want %v", got, tt.wantScroll)
			}
		})
	}
}

func TestHandleMouseMovesPointer(t *testing.T) {
	h, _, input := newTestHost(t, wallpaper.SceneCosmic)
	h.HandleEvent(tcell.NewEventMouse(2, 3, tcell.ButtonNone, tcell.ModNone))

	in := input.Sample()
	if !in.HasPointer {
		t.Fatal("HasPointer = false after a mouse event")
	}
	if in.Pointer.X != 2.5*CellWidth || in.Pointer.Y != 3.5*CellHeight {
		t.Errorf("Pointer = %+v, want cell centre (%v, %v)", in.Pointer, 2.5*CellWidth, 3.5*CellHeight)
	}
}

func TestCellRune(t *testing.T) {
	black := color.RGBA{0, 0, 0, 255}
	white := color.RGBA{255, 255, 255, 255}

	if got := cellRune(black, black); got != ' ' {
		t.Errorf("cellRune(black, black) = %q, want space", got)
	}
	if got := cellRune(white, black); got != upperHalf {
		t.Errorf("cellRune(white, black) = %q, want upper half block", got)
	}

	fg, bg, _ := cellStyle(white, black).Decompose()
	if r, g, b := fg.RGB(); r != 255 || g != 255 || b != 255 {
		t.Errorf("foreground = (%d, %d, %d), want white", r, g, b)
	}
	if r, g, b := bg.RGB(); r != 0 || g != 0 || b != 0 {
		t.Errorf("background = (%d, %d, %d), want black", r, g, b)
	}
}

func TestRunStopsWithContext(t *testing.T) {
	settings, _ := wallpaper.Preset(wallpaper.SceneCosmic)
	r, err := engine2D.NewRenderer(settings, 3)
	if err != nil {
		t.Fatalf("NewRenderer() = %v", err)
	}
	defer r.Close()

	// Run initialises and finalises the screen itself.
	screen := tcell.NewSimulationScreen("UTF-8")
	h := NewHost(screen, r, engine2D.NewInputState(0), 30, 80)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- h.Run(ctx) }()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after the context ended")
	}
}
