package convert

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"linux-starfield/internal/utils"

	xdraw "golang.org/x/image/draw"
)

// Scale returns img resized to width x height, or img itself when the size
// already matches. Non-positive sizes keep the source dimension.
func Scale(img *image.RGBA, width, height int) *image.RGBA {
	bounds := img.Bounds()
	if width <= 0 {
		width = bounds.Dx()
	}
	if height <= 0 {
		height = bounds.Dy()
	}
	if width == bounds.Dx() && height == bounds.Dy() {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}

func EncodePNG(w io.Writer, img *image.RGBA, width, height int) error {
	return png.Encode(w, Scale(img, width, height))
}

// SavePNG writes img to path, scaled to width x height.
func SavePNG(path string, img *image.RGBA, width, height int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create snapshot %s: %w", path, err)
	}
	if err := EncodePNG(f, img, width, height); err != nil {
		f.Close()
		return fmt.Errorf("cannot encode snapshot %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	utils.Debug("Snapshot: Saved %s", path)
	return nil
}
