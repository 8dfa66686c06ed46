package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"linux-starfield/internal/convert"
	"linux-starfield/internal/engine2D"
	"linux-starfield/internal/utils"
	"linux-starfield/internal/wallpaper"
)

// scriptedInput replays a pointer orbiting the centre while the page scrolls
// down, so offline renders exercise parallax, the vortex and the ripple.
type scriptedInput struct {
	input  *engine2D.InputState
	width  int
	height int
	step   float64
}

func newScriptedInput(settings wallpaper.Settings, width, height int) *scriptedInput {
	input := engine2D.NewInputState(settings.MaxScroll)
	input.Resize(width, height)
	return &scriptedInput{input: input, width: width, height: height, step: settings.ScrollStep}
}

func (s *scriptedInput) Frame(i int) wallpaper.Input {
	angle := float64(i) / 90 * 2 * math.Pi
	cx, cy := float64(s.width)/2, float64(s.height)/2
	r := math.Min(cx, cy) * 0.5
	s.input.MoveTo(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	if i > 0 && i%30 == 0 {
		s.input.ScrollBy(s.step)
	}
	return s.input.Sample()
}

func renderFrames(renderer *engine2D.Renderer, script *scriptedInput, frames, fps int, each func(i int) error) error {
	dt := 1 / float64(fps)
	for i := 0; i < frames; i++ {
		renderer.Advance(script.Frame(i), renderer.Clock.Step(dt))
		if each != nil {
			if err := each(i); err != nil {
				return err
			}
		}
	}
	return nil
}

func runSnapshot(renderer *engine2D.Renderer, settings wallpaper.Settings, width, height, frames int, out string) error {
	script := newScriptedInput(settings, width, height)
	if err := renderFrames(renderer, script, max(frames, 1), settings.FPS, nil); err != nil {
		return err
	}
	if err := convert.SavePNG(out, renderer.Image(), width, height); err != nil {
		return err
	}
	utils.Info("Snapshot of %s after %d frames written to %s", settings.Scene, frames, out)
	return nil
}

// closeInto closes c and reports its error through err unless an earlier
// error is already set.
func closeInto(c io.Closer, err *error, name string) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("cannot close %s: %w", name, cerr)
	}
}

func runCapture(renderer *engine2D.Renderer, settings wallpaper.Settings, width, height, frames int, out string) (err error) {
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("cannot create capture %s: %w", out, err)
	}
	defer closeInto(f, &err, out)
	buf := bufio.NewWriter(f)

	script := newScriptedInput(settings, width, height)
	renderer.UpdateViewport(width, height)
	rw, rh := renderer.Size()

	capture, err := convert.NewCaptureWriter(buf, rw, rh)
	if err != nil {
		return err
	}
	err = renderFrames(renderer, script, frames, settings.FPS, func(i int) error {
		if i%60 == 0 {
			utils.Debug("Capture: frame %d/%d", i+1, frames)
		}
		return capture.WriteFrame(renderer.Pixels())
	})
	if err != nil {
		return err
	}
	if err := capture.Close(); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}

	utils.Info("Captured %d frames of %s at %dx%d to %s", capture.Frames(), settings.Scene, rw, rh, out)
	return nil
}
