package convert

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pierrec/lz4/v4"
)

func frame(width, height int, seed uint8) []uint8 {
	pix := make([]uint8, width*height*4)
	for i := range pix {
		pix[i] = seed + uint8(i)
	}
	return pix
}

func TestCaptureRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewCaptureWriter(&buf, 4, 3)
	if err != nil {
		t.Fatalf("NewCaptureWriter() = %v", err)
	}
	frames := [][]uint8{frame(4, 3, 0), frame(4, 3, 7), frame(4, 3, 200)}
	for _, f := range frames {
		if err := w.WriteFrame(f); err != nil {
			t.Fatalf("WriteFrame() = %v", err)
		}
	}
	if w.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", w.Frames())
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}

	r, err := NewCaptureReader(&buf)
	if err != nil {
		t.Fatalf("NewCaptureReader() = %v", err)
	}
	if h := r.Header(); h.Width != 4 || h.Height != 3 {
		t.Errorf("Header() = %+v, want 4x3", h)
	}

	var dst []uint8
	for i, want := range frames {
		dst, err = r.ReadFrame(dst)
		if err != nil {
			t.Fatalf("ReadFrame(%d) = %v", i, err)
		}
		if !bytes.Equal(dst, want) {
			t.Errorf("frame %d differs after round trip", i)
		}
	}
	if _, err := r.ReadFrame(dst); !errors.Is(err, io.EOF) {
		t.Errorf("ReadFrame() past the end = %v, want io.EOF", err)
	}
}

func TestCaptureWriterRejectsBadFrames(t *testing.T) {
	if _, err := NewCaptureWriter(io.Discard, 0, 10); err == nil {
		t.Error("NewCaptureWriter(0, 10) = nil error")
	}

	w, err := NewCaptureWriter(io.Discard, 2, 2)
	if err != nil {
		t.Fatalf("NewCaptureWriter() = %v", err)
	}
	if err := w.WriteFrame(make([]uint8, 15)); err == nil {
		t.Error("WriteFrame(short) = nil error")
	}
	if w.Frames() != 0 {
		t.Errorf("Frames() = %d after a rejected frame, want 0", w.Frames())
	}
}

func TestCaptureReaderRejectsForeignStreams(t *testing.T) {
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	io.WriteString(zw, "NOTCAP and some more bytes")
	zw.Close()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"wrong magic", buf.Bytes()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCaptureReader(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotCapture) {
				t.Errorf("NewCaptureReader() = %v, want ErrNotCapture", err)
			}
		})
	}
}

func TestCaptureTruncatedFrame(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewCaptureWriter(&buf, 2, 2)
	w.zw.Write(make([]uint8, 10))
	w.Close()

	r, err := NewCaptureReader(&buf)
	if err != nil {
		t.Fatalf("NewCaptureReader() = %v", err)
	}
	_, err = r.ReadFrame(nil)
	if err == nil || errors.Is(err, io.EOF) {
		t.Errorf("ReadFrame() = %v, want truncation error", err)
	}
}

func TestScale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for i := range src.Pix {
		src.Pix[i] = 255
	}

	if got := Scale(src, 8, 4); got != src {
		t.Error("Scale() to the same size did not return the source")
	}
	if got := Scale(src, 0, 0); got != src {
		t.Error("Scale(0, 0) did not keep the source size")
	}

	got := Scale(src, 4, 2)
	if b := got.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Fatalf("Scale() bounds = %v, want 4x2", b)
	}
	if c := got.RGBAAt(1, 1); c != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("scaled pixel = %v, want opaque white", c)
	}
}

func TestSavePNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	path := filepath.Join(t.TempDir(), "shots", "frame.png")

	if err := SavePNG(path, src, 20, 5); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig() = %v", err)
	}
	if cfg.Width != 20 || cfg.Height != 5 {
		t.Errorf("saved size = %dx%d, want 20x5", cfg.Width, cfg.Height)
	}
}
