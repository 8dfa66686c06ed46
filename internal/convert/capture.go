package convert

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"linux-starfield/internal/utils"

	"github.com/pierrec/lz4/v4"
)

// CaptureMagic opens every .sfcap stream, ahead of the frame size.
const CaptureMagic = "SFCAP1"

// CaptureHeader describes the frames in a capture. All frames share its size
// and hold Width*Height*4 bytes of RGBA.
type CaptureHeader struct {
	Width  uint32
	Height uint32
}

func (h CaptureHeader) FrameSize() int {
	return int(h.Width) * int(h.Height) * 4
}

// CaptureWriter appends raw RGBA frames to an lz4 compressed stream.
type CaptureWriter struct {
	zw     *lz4.Writer
	header CaptureHeader
	frames int
}

func NewCaptureWriter(w io.Writer, width, height int) (*CaptureWriter, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid capture size %dx%d", width, height)
	}

	zw := lz4.NewWriter(w)
	if err := zw.Apply(lz4.CompressionLevelOption(lz4.Fast)); err != nil {
		return nil, err
	}

	header := CaptureHeader{Width: uint32(width), Height: uint32(height)}
	if _, err := io.WriteString(zw, CaptureMagic); err != nil {
		return nil, err
	}
	if err := binary.Write(zw, binary.LittleEndian, header); err != nil {
		return nil, err
	}
	utils.Debug("Capture: Writing %dx%d frames", width, height)

	return &CaptureWriter{zw: zw, header: header}, nil
}

func (c *CaptureWriter) Header() CaptureHeader {
	return c.header
}

func (c *CaptureWriter) Frames() int {
	return c.frames
}

func (c *CaptureWriter) WriteFrame(pix []uint8) error {
	if len(pix) != c.header.FrameSize() {
		return fmt.Errorf("frame has %d bytes, want %d", len(pix), c.header.FrameSize())
	}
	if _, err := c.zw.Write(pix); err != nil {
		return fmt.Errorf("cannot write frame %d: %w", c.frames, err)
	}
	c.frames++
	return nil
}

// Close flushes the lz4 stream. It does not close the underlying writer.
func (c *CaptureWriter) Close() error {
	utils.Debug("Capture: Closing after %d frames", c.frames)
	return c.zw.Close()
}

// CaptureReader reads frames back from a stream made by CaptureWriter.
type CaptureReader struct {
	zr     *lz4.Reader
	header CaptureHeader
	frames int
}

var ErrNotCapture = errors.New("not a starfield capture")

func NewCaptureReader(r io.Reader) (*CaptureReader, error) {
	zr := lz4.NewReader(r)

	magic := make([]byte, len(CaptureMagic))
	if _, err := io.ReadFull(zr, magic); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotCapture, err)
	}
	if string(magic) != CaptureMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrNotCapture, magic)
	}

	var header CaptureHeader
	if err := binary.Read(zr, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotCapture, err)
	}
	if header.Width == 0 || header.Height == 0 {
		return nil, fmt.Errorf("%w: empty frame size %dx%d", ErrNotCapture, header.Width, header.Height)
	}
	utils.Debug("Capture: Reading %dx%d frames", header.Width, header.Height)

	return &CaptureReader{zr: zr, header: header}, nil
}

func (c *CaptureReader) Header() CaptureHeader {
	return c.header
}

// ReadFrame fills dst with the next frame, growing it when it is too small.
// It returns io.EOF once the stream ends on a frame boundary.
func (c *CaptureReader) ReadFrame(dst []uint8) ([]uint8, error) {
	size := c.header.FrameSize()
	if cap(dst) < size {
		dst = make([]uint8, size)
	}
	dst = dst[:size]

	if _, err := io.ReadFull(c.zr, dst); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("frame %d truncated: %w", c.frames, err)
		}
		return nil, err
	}
	c.frames++
	return dst, nil
}
