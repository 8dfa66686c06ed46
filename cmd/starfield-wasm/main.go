//go:build js && wasm

package main

import (
	"syscall/js"
	"time"

	"linux-starfield/internal/engine2D"
	"linux-starfield/internal/utils"
	"linux-starfield/internal/wallpaper"
)

const canvasID = "starfield"

// page binds a Renderer to a <canvas> element. The scene comes from the
// element's data-scene attribute.
type page struct {
	doc     js.Value
	win     js.Value
	canvas  js.Value
	ctx     js.Value
	pixels  js.Value
	image   js.Value
	imageW  int
	imageH  int
	frameID js.Value

	renderer *engine2D.Renderer
	input    *engine2D.InputState

	funcs []js.Func
	done  chan struct{}
}

func main() {
	doc := js.Global().Get("document")
	canvasEl := doc.Call("getElementById", canvasID)
	if canvasEl.IsNull() || canvasEl.IsUndefined() {
		utils.Error("Canvas #%s not found", canvasID)
		return
	}

	scene := canvasEl.Get("dataset").Get("scene")
	settings := wallpaper.Default()
	if scene.Truthy() {
		preset, err := wallpaper.Preset(scene.String())
		if err != nil {
			utils.Error("%v", err)
			return
		}
		settings = preset
	}

	renderer, err := engine2D.NewRenderer(settings, uint64(time.Now().UnixNano()))
	if err != nil {
		utils.Error("%v", err)
		return
	}
	defer renderer.Close()

	p := &page{
		doc:      doc,
		win:      js.Global(),
		canvas:   canvasEl,
		ctx:      canvasEl.Call("getContext", "2d"),
		renderer: renderer,
		input:    engine2D.NewInputState(0),
		done:     make(chan struct{}),
	}
	p.bind()
	p.frameID = p.win.Call("requestAnimationFrame", p.funcs[0])

	<-p.done
	for _, f := range p.funcs {
		f.Release()
	}
}

func (p *page) on(target js.Value, event string, fn func(js.Value)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	})
	p.funcs = append(p.funcs, f)
	target.Call("addEventListener", event, f)
}

// bind registers the frame callback first, then the event listeners and the
// stopStarfield hook.
func (p *page) bind() {
	var frame js.Func
	frame = js.FuncOf(func(this js.Value, args []js.Value) any {
		p.frame(time.Now())
		p.frameID = p.win.Call("requestAnimationFrame", frame)
		return nil
	})
	p.funcs = append(p.funcs, frame)

	p.on(p.doc, "mousemove", func(e js.Value) {
		p.input.MoveTo(e.Get("clientX").Float(), e.Get("clientY").Float())
	})
	p.on(p.win, "scroll", func(js.Value) {
		p.input.ScrollTo(p.win.Get("scrollY").Float())
	})

	stop := js.FuncOf(func(this js.Value, args []js.Value) any {
		p.win.Call("cancelAnimationFrame", p.frameID)
		p.win.Delete("stopStarfield")
		close(p.done)
		return nil
	})
	p.funcs = append(p.funcs, stop)
	p.win.Set("stopStarfield", stop)
}

func (p *page) frame(now time.Time) {
	width := p.win.Get("innerWidth").Int()
	height := p.win.Get("innerHeight").Int()
	if p.canvas.Get("width").Int() != width || p.canvas.Get("height").Int() != height {
		p.canvas.Set("width", width)
		p.canvas.Set("height", height)
	}
	p.input.Resize(width, height)

	p.renderer.Advance(p.input.Sample(), p.renderer.Clock.Tick(now))
	p.present()
}

func (p *page) present() {
	w, h := p.renderer.Size()
	pix := p.renderer.Pixels()
	if w <= 0 || h <= 0 || len(pix) < w*h*4 {
		return
	}
	pix = pix[:w*h*4]

	if p.imageW != w || p.imageH != h {
		p.pixels = js.Global().Get("Uint8ClampedArray").New(len(pix))
		p.image = js.Global().Get("ImageData").New(p.pixels, w, h)
		p.imageW, p.imageH = w, h
	}
	js.CopyBytesToJS(p.pixels, pix)

	cw, ch := p.canvas.Get("width").Int(), p.canvas.Get("height").Int()
	if w == cw && h == ch {
		p.ctx.Call("putImageData", p.image, 0, 0)
		return
	}
	// Scaled renders go through a bitmap so drawImage can stretch them.
	bitmap := js.Global().Call("createImageBitmap", p.image)
	var draw js.Func
	draw = js.FuncOf(func(this js.Value, args []js.Value) any {
		p.ctx.Call("drawImage", args[0], 0, 0, cw, ch)
		draw.Release()
		return nil
	})
	bitmap.Call("then", draw)
}
