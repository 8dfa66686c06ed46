package canvas

// OpKind names a recorded drawing call.
type OpKind string

const (
	OpFillLinear     OpKind = "fill-linear"
	OpFillSolid      OpKind = "fill-solid"
	OpFillCircle     OpKind = "fill-circle"
	OpFillRadial     OpKind = "fill-radial"
	OpStrokeCircle   OpKind = "stroke-circle"
	OpStrokeLine     OpKind = "stroke-line"
	OpStrokeLineFade OpKind = "stroke-line-fade"
	OpStrokePolygon  OpKind = "stroke-polygon"
	OpStrokePath     OpKind = "stroke-path"
	OpFillPolygon    OpKind = "fill-polygon"
)

// Op is one recorded call. Coords holds the call's numeric arguments in
// order, Colors its colours (stop colours for gradients).
type Op struct {
	Kind   OpKind
	Coords []float64
	Colors []Color
}

// Recorder is a Surface that keeps the calls made against it instead of
// rasterizing them. Scenes are tested against it.
type Recorder struct {
	Width, Height int
	Ops           []Op
}

// NewRecorder returns an empty recorder of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count returns how many calls of the given kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls of the given kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

func (r *Recorder) FillLinear(x0, y0, x1, y1 float64, stops ...Stop) {
	r.add(OpFillLinear, []float64{x0, y0, x1, y1}, stopColors(stops))
}

func (r *Recorder) FillSolid(c Color) {
	r.add(OpFillSolid, nil, []Color{c})
}

func (r *Recorder) FillCircle(x, y, rad float64, c Color) {
	r.add(OpFillCircle, []float64{x, y, rad}, []Color{c})
}

func (r *Recorder) FillRadial(x, y, r0, r1 float64, stops ...Stop) {
	r.add(OpFillRadial, []float64{x, y, r0, r1}, stopColors(stops))
}

func (r *Recorder) StrokeCircle(x, y, rad, width float64, c Color) {
	r.add(OpStrokeCircle, []float64{x, y, rad, width}, []Color{c})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	r.add(OpStrokeLine, []float64{x0, y0, x1, y1, width}, []Color{c})
}

func (r *Recorder) StrokeLineFade(x0, y0, x1, y1, width float64, from, to Color) {
	r.add(OpStrokeLineFade, []float64{x0, y0, x1, y1, width}, []Color{from, to})
}

func (r *Recorder) StrokePolygon(points []Point, width float64, c Color) {
	coords := pointCoords(points, 1)
	coords = append(coords, width)
	r.add(OpStrokePolygon, coords, []Color{c})
}

func (r *Recorder) StrokePath(points []Point, width float64, stops ...Stop) {
	coords := pointCoords(points, 1)
	coords = append(coords, width)
	r.add(OpStrokePath, coords, stopColors(stops))
}

func (r *Recorder) FillPolygon(points []Point, c Color) {
	r.add(OpFillPolygon, pointCoords(points, 0), []Color{c})
}

func (r *Recorder) add(kind OpKind, coords []float64, colors []Color) {
	r.Ops = append(r.Ops, Op{Kind: kind, Coords: coords, Colors: colors})
}

func stopColors(stops []Stop) []Color {
	colors := make([]Color, len(stops))
	for i, s := range stops {
		colors[i] = s.Color
	}
	return colors
}

func pointCoords(points []Point, extra int) []float64 {
	coords := make([]float64, 0, len(points)*2+extra)
	for _, p := range points {
		coords = append(coords, p.X, p.Y)
	}
	return coords
}
