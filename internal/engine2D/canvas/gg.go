package canvas

import (
	"errors"
	"image"

	"github.com/gogpu/gg"
)

// GG is a Surface backed by a software gg.Context.
type GG struct {
	dc  *gg.Context
	err error
}

// NewGG allocates a surface of the given size. Sizes below one pixel are
// raised to one so a minimised window still owns a valid context.
func NewGG(width, height int) *GG {
	return &GG{dc: gg.NewContext(max(width, 1), max(height, 1))}
}

// Resize reallocates the pixel buffer when the size changes.
func (s *GG) Resize(width, height int) error {
	return s.dc.Resize(max(width, 1), max(height, 1))
}

func (s *GG) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

// Pixels exposes the raw RGBA buffer, four bytes per pixel, row major.
// The slice is owned by the surface and is rewritten every frame.
func (s *GG) Pixels() []uint8 {
	return s.dc.ResizeTarget().Data()
}

// Image returns a copy of the current frame.
func (s *GG) Image() *image.RGBA {
	return s.dc.ResizeTarget().ToImage()
}

// Flush returns rasterizer errors collected since the last call.
func (s *GG) Flush() error {
	err := s.err
	s.err = nil
	return err
}

// Close releases the underlying context.
func (s *GG) Close() error {
	return s.dc.Close()
}

func (s *GG) FillLinear(x0, y0, x1, y1 float64, stops ...Stop) {
	brush := gg.NewLinearGradientBrush(x0, y0, x1, y1)
	for _, stop := range stops {
		brush.AddColorStop(stop.Offset, toRGBA(stop.Color))
	}
	s.dc.SetFillBrush(brush)
	s.dc.DrawRectangle(0, 0, float64(s.dc.Width()), float64(s.dc.Height()))
	s.fill()
}

func (s *GG) FillSolid(c Color) {
	if c.A >= 1 {
		s.dc.ClearWithColor(toRGBA(c))
		return
	}
	s.dc.SetFillBrush(gg.Solid(toRGBA(c)))
	s.dc.DrawRectangle(0, 0, float64(s.dc.Width()), float64(s.dc.Height()))
	s.fill()
}

func (s *GG) FillCircle(x, y, r float64, c Color) {
	if r <= 0 || c.A <= 0 {
		return
	}
	s.dc.SetFillBrush(gg.Solid(toRGBA(c)))
	s.dc.DrawCircle(x, y, r)
	s.fill()
}

func (s *GG) FillRadial(x, y, r0, r1 float64, stops ...Stop) {
	if r1 <= 0 {
		return
	}
	brush := gg.NewRadialGradientBrush(x, y, r0, r1)
	for _, stop := range stops {
		brush.AddColorStop(stop.Offset, toRGBA(stop.Color))
	}
	s.dc.SetFillBrush(brush)
	s.dc.DrawCircle(x, y, r1)
	s.fill()
}

func (s *GG) StrokeCircle(x, y, r, width float64, c Color) {
	if r <= 0 || width <= 0 || c.A <= 0 {
		return
	}
	s.dc.SetStrokeBrush(gg.Solid(toRGBA(c)))
	s.dc.SetLineWidth(width)
	s.dc.DrawCircle(x, y, r)
	s.stroke()
}

func (s *GG) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	if width <= 0 || c.A <= 0 {
		return
	}
	s.dc.SetStrokeBrush(gg.Solid(toRGBA(c)))
	s.dc.SetLineWidth(width)
	s.dc.SetLineCap(gg.LineCapRound)
	s.dc.DrawLine(x0, y0, x1, y1)
	s.stroke()
}

func (s *GG) StrokeLineFade(x0, y0, x1, y1, width float64, from, to Color) {
	if width <= 0 || (x0 == x1 && y0 == y1) {
		return
	}
	brush := gg.NewLinearGradientBrush(x0, y0, x1, y1).
		AddColorStop(0, toRGBA(from)).
		AddColorStop(1, toRGBA(to))
	s.dc.SetStrokeBrush(brush)
	s.dc.SetLineWidth(width)
	s.dc.SetLineCap(gg.LineCapRound)
	s.dc.DrawLine(x0, y0, x1, y1)
	s.stroke()
}

func (s *GG) StrokePolygon(points []Point, width float64, c Color) {
	if len(points) < 2 || width <= 0 || c.A <= 0 {
		return
	}
	s.dc.SetStrokeBrush(gg.Solid(toRGBA(c)))
	s.dc.SetLineWidth(width)
	s.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.ClosePath()
	s.stroke()
}

func (s *GG) StrokePath(points []Point, width float64, stops ...Stop) {
	if len(points) < 2 || width <= 0 {
		return
	}
	first, last := points[0], points[len(points)-1]
	brush := gg.NewLinearGradientBrush(first.X, first.Y, last.X, last.Y)
	for _, stop := range stops {
		brush.AddColorStop(stop.Offset, toRGBA(stop.Color))
	}
	s.dc.SetStrokeBrush(brush)
	s.dc.SetLineWidth(width)
	s.dc.MoveTo(first.X, first.Y)
	for _, p := range points[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.stroke()
}

func (s *GG) FillPolygon(points []Point, c Color) {
	if len(points) < 3 || c.A <= 0 {
		return
	}
	s.dc.SetFillBrush(gg.Solid(toRGBA(c)))
	s.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.ClosePath()
	s.fill()
}

func (s *GG) fill() {
	if err := s.dc.Fill(); err != nil {
		s.err = errors.Join(s.err, err)
	}
}

func (s *GG) stroke() {
	if err := s.dc.Stroke(); err != nil {
		s.err = errors.Join(s.err, err)
	}
}

func toRGBA(c Color) gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: c.A,
	}
}
