package debug

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	headerColor = rl.NewColor(160, 200, 255, 255)
	nameColor   = rl.NewColor(170, 170, 190, 255)
	meterOK     = rl.NewColor(100, 255, 100, 255)
	meterOver   = rl.NewColor(255, 110, 90, 255)
)

// UIContext lays out panel rows top to bottom.
type UIContext struct {
	X, Y        int
	Width       int
	ValueOffset int
	LineHeight  int
	FontHeight  int

	mouseX, mouseY int
	clicked        bool
}

func NewUIContext(x, y, width, lineHeight, fontHeight int, mx, my int, clicked bool) *UIContext {
	return &UIContext{
		X:           x,
		Y:           y,
		Width:       width,
		ValueOffset: width / 2,
		LineHeight:  lineHeight,
		FontHeight:  fontHeight,
		mouseX:      mx,
		mouseY:      my,
		clicked:     clicked,
	}
}

func (ui *UIContext) drawText(text string, x, y int, color rl.Color) {
	rl.DrawText(text, int32(x), int32(y), int32(ui.FontHeight), color)
}

func (ui *UIContext) Header(text string) {
	ui.drawText(text, ui.X, ui.Y, headerColor)
	ui.Y += ui.LineHeight
}

// Row draws a name and its value in two columns.
func (ui *UIContext) Row(name, value string) {
	ui.drawText(name, ui.X+10, ui.Y, nameColor)
	ui.drawText(value, ui.X+ui.ValueOffset, ui.Y, rl.White)
	ui.Y += ui.LineHeight
}

// Meter draws a bar filled to frac, turning red past 1.
func (ui *UIContext) Meter(name string, frac float64) {
	ui.drawText(name, ui.X+10, ui.Y, nameColor)

	barX := ui.X + ui.ValueOffset
	barW := ui.Width - ui.ValueOffset - 10
	barH := ui.FontHeight - 4
	rl.DrawRectangleLines(int32(barX), int32(ui.Y+2), int32(barW), int32(barH), nameColor)

	color := meterOK
	if frac > 1 {
		frac, color = 1, meterOver
	}
	if frac > 0 {
		rl.DrawRectangle(int32(barX+1), int32(ui.Y+3), int32(float64(barW-2)*frac), int32(barH-2), color)
	}
	ui.Y += ui.LineHeight
}

func (ui *UIContext) Separator() {
	ui.Y += ui.LineHeight / 2
}

// Toggle draws a checkbox bound to on and flips it when clicked.
func (ui *UIContext) Toggle(label string, on *bool) {
	box := ui.FontHeight - 4
	boxX, boxY := ui.X+10, ui.Y+2

	if ui.clicked &&
		ui.mouseX >= boxX && ui.mouseX <= ui.X+ui.Width &&
		ui.mouseY >= boxY && ui.mouseY <= boxY+box {
		*on = !*on
	}

	rl.DrawRectangleLines(int32(boxX), int32(boxY), int32(box), int32(box), nameColor)
	if *on {
		rl.DrawRectangle(int32(boxX+2), int32(boxY+2), int32(box-4), int32(box-4), meterOK)
	}
	ui.drawText(label, boxX+box+8, ui.Y, rl.White)
	ui.Y += ui.LineHeight
}
