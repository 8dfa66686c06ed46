package debug

import (
	"fmt"
	"runtime"
	"time"

	"linux-starfield/internal/engine2D"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const memRefresh = 500 * time.Millisecond

// Stat is one name/value row of the panel.
type Stat struct {
	Name  string
	Value string
}

// DebugOverlay is the F8 panel of the window host.
type DebugOverlay struct {
	Paused      bool
	ShowPointer bool

	fontHeight int
	lineHeight int
	panelWidth int

	prevLeftMouseButton bool
	mouseX              int
	mouseY              int
	clicked             bool

	lastMemUpdate time.Time
	memStats      runtime.MemStats
}

func NewDebugOverlay() *DebugOverlay {
	d := &DebugOverlay{
		fontHeight: 16,
		lineHeight: 20,
		panelWidth: 280,
	}
	runtime.ReadMemStats(&d.memStats)
	d.lastMemUpdate = time.Now()
	return d
}

func (d *DebugOverlay) Update() {
	pos := rl.GetMousePosition()
	d.mouseX, d.mouseY = int(pos.X), int(pos.Y)

	down := rl.IsMouseButtonDown(rl.MouseLeftButton)
	d.clicked = down && !d.prevLeftMouseButton
	d.prevLeftMouseButton = down

	if time.Since(d.lastMemUpdate) >= memRefresh {
		runtime.ReadMemStats(&d.memStats)
		d.lastMemUpdate = time.Now()
	}
}

// Draw paints the panel over the presented frame. pointer is in screen pixels.
func (d *DebugOverlay) Draw(stats engine2D.Stats, fps float64, targetFPS int, pointer rl.Vector2) {
	rows := Stats(stats, fps, d.memStats)
	height := (len(rows)+5)*d.lineHeight + 20
	rl.DrawRectangle(0, 0, int32(d.panelWidth), int32(height), rl.NewColor(10, 10, 20, 200))

	ui := NewUIContext(10, 10, d.panelWidth-20, d.lineHeight, d.fontHeight, d.mouseX, d.mouseY, d.clicked)
	ui.Header("Starfield")
	for _, row := range rows {
		ui.Row(row.Name, row.Value)
	}
	ui.Meter("Frame Budget", FrameBudget(stats.DrawTime, targetFPS))
	ui.Separator()
	ui.Toggle("Pause", &d.Paused)
	ui.Toggle("Show Pointer", &d.ShowPointer)

	if d.ShowPointer {
		rl.DrawCircleLines(int32(pointer.X), int32(pointer.Y), 12, rl.Yellow)
		rl.DrawRectangle(int32(pointer.X)-2, int32(pointer.Y)-2, 4, 4, rl.Red)
	}
}

// FrameBudget is the share of one frame interval spent drawing.
func FrameBudget(drawTime time.Duration, targetFPS int) float64 {
	if targetFPS <= 0 {
		return 0
	}
	return drawTime.Seconds() * float64(targetFPS)
}

// Stats formats the panel rows.
func Stats(stats engine2D.Stats, fps float64, mem runtime.MemStats) []Stat {
	rows := []Stat{
		{"Scene", stats.Scene},
		{"FPS", fmt.Sprintf("%.1f", fps)},
		{"Draw Time", fmt.Sprintf("%.2f ms", float64(stats.DrawTime.Microseconds())/1000)},
		{"Objects", fmt.Sprintf("%d", stats.Count)},
		{"Frame", fmt.Sprintf("%d", stats.Frame)},
		{"Time", fmt.Sprintf("%.2f", stats.T)},
		{"Scroll", fmt.Sprintf("%.0f", stats.Scroll)},
		{"Window", fmt.Sprintf("%dx%d", stats.ScreenWidth, stats.ScreenHeight)},
	}
	if stats.Width != stats.ScreenWidth || stats.Height != stats.ScreenHeight {
		rows = append(rows, Stat{"Render Size", fmt.Sprintf("%dx%d", stats.Width, stats.Height)})
	}
	return append(rows,
		Stat{"Heap Alloc", fmt.Sprintf("%.2f MB", float64(mem.HeapAlloc)/1024/1024)},
		Stat{"Goroutines", fmt.Sprintf("%d", runtime.NumGoroutine())},
	)
}
