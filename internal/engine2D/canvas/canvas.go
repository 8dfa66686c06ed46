package canvas

import "math"

// Color is an 8-bit RGB colour with a floating point alpha in [0, 1],
// matching the rgba() colours the scenes are described with.
type Color struct {
	R, G, B uint8
	A       float64
}

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a colour with the given alpha.
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// WithAlpha returns c with its alpha replaced, clamped to [0, 1].
func (c Color) WithAlpha(a float64) Color {
	c.A = math.Max(0, math.Min(1, a))
	return c
}

// Transparent is fully transparent black.
var Transparent = Color{}

// Stop is a gradient colour stop at Offset in [0, 1].
type Stop struct {
	Offset float64
	Color  Color
}

// Point is a surface coordinate in pixels.
type Point struct {
	X, Y float64
}

// Surface is the drawable a scene paints into once per frame.
type Surface interface {
	Size() (width, height int)

	// FillLinear covers the whole surface with a linear gradient from
	// (x0,y0) to (x1,y1).
	FillLinear(x0, y0, x1, y1 float64, stops ...Stop)
	// FillSolid covers the whole surface with c.
	FillSolid(c Color)
	FillCircle(x, y, r float64, c Color)
	// FillRadial fills a disc of radius r1 centred at (x, y) with a radial
	// gradient running from r0 to r1.
	FillRadial(x, y, r0, r1 float64, stops ...Stop)
	StrokeCircle(x, y, r, width float64, c Color)
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
	// StrokeLineFade strokes a line whose colour fades from 'from' at the
	// first point to 'to' at the second.
	StrokeLineFade(x0, y0, x1, y1, width float64, from, to Color)
	StrokePolygon(points []Point, width float64, c Color)
	// StrokePath strokes an open polyline with a gradient running from the
	// first point to the last.
	StrokePath(points []Point, width float64, stops ...Stop)
	FillPolygon(points []Point, c Color)
}
