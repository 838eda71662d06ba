package main

import (
	"image/color"
	"io"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"pinball/engine"
)

var keys = []struct {
	button pixelgl.Button
	key    engine.Key
}{
	{pixelgl.KeyEscape, engine.KeyEscape},
	{pixelgl.KeySpace, engine.KeySpace},
	{pixelgl.KeyEnter, engine.KeyEnter},
	{pixelgl.KeyLeft, engine.KeyLeft},
	{pixelgl.KeyRight, engine.KeyRight},
	{pixelgl.KeyUp, engine.KeyUp},
	{pixelgl.KeyDown, engine.KeyDown},
}

var mouseButtons = []struct {
	button pixelgl.Button
	mouse  engine.MouseButton
}{
	{pixelgl.MouseButtonLeft, engine.MouseLeft},
	{pixelgl.MouseButtonRight, engine.MouseRight},
	{pixelgl.MouseButtonMiddle, engine.MouseMiddle},
}

var _ engine.Window = (*Window)(nil)

// Window is the pixelgl implementation of engine.Window. Shapes are
// batched in an IMDraw and flushed on Present.
type Window struct {
	win    *pixelgl.Window
	imd    *imdraw.IMDraw
	camera *Camera
	vsync  bool

	width, height int
	mouse         pixel.Vec

	// debug, when set, writes the overlay text shown in the top-left corner.
	debug func(w io.Writer)
	txt   *text.Text
}

func NewWindow(cfg engine.Config) (*Window, error) {
	wcfg := pixelgl.WindowConfig{
		Title:     cfg.Title,
		Bounds:    pixel.R(0, 0, float64(cfg.Width), float64(cfg.Height)),
		Resizable: true,
		VSync:     cfg.WaitVerticalBlanking,
	}
	win, err := pixelgl.NewWindow(wcfg)
	if err != nil {
		return nil, errors.Wrap(err, "create window")
	}
	win.SetSmooth(true)

	w := &Window{
		win:    win,
		imd:    imdraw.New(nil),
		camera: NewCamera(win.Bounds()),
		vsync:  cfg.WaitVerticalBlanking,
		width:  cfg.Width,
		height: cfg.Height,
		txt:    text.New(pixel.ZV, text.NewAtlas(basicfont.Face7x13, text.ASCII)),
	}
	win.SetMatrix(w.camera.GetMatrix())
	return w, nil
}

func (w *Window) Clear(c color.Color) {
	w.win.Clear(c)
	w.imd.Clear()
}

func (w *Window) FillEllipse(cx, cy, rx, ry float32, c color.Color) {
	w.imd.Color = c
	w.imd.Push(pixel.V(float64(cx), float64(cy)))
	w.imd.Ellipse(pixel.V(float64(rx), float64(ry)), 0)
}

func (w *Window) DrawRectangle(left, top, right, bottom float32, c color.Color) {
	w.imd.Color = c
	drawRect(w.imd, pixel.R(float64(left), float64(top), float64(right), float64(bottom)))
}

func drawRect(imd *imdraw.IMDraw, r pixel.Rect) {
	a := r.Min
	b := pixel.V(r.Min.X, r.Max.Y)
	c := r.Max
	d := pixel.V(r.Max.X, r.Min.Y)
	imd.Push(a, b, c, d, a)
	imd.Line(1)
}

func (w *Window) Present(vsync bool) error {
	if vsync != w.vsync {
		w.win.SetVSync(vsync)
		w.vsync = vsync
	}
	w.imd.Draw(w.win)

	if w.debug != nil {
		w.txt.Clear()
		w.debug(w.txt)
		w.win.SetMatrix(pixel.IM)
		w.txt.Draw(w.win, pixel.IM.Moved(pixel.V(8, w.win.Bounds().H()-16)))
		w.win.SetMatrix(w.camera.GetMatrix())
	}

	w.win.Update()
	return nil
}

func (w *Window) Size() (int, int) {
	return w.width, w.height
}

func (w *Window) SetTitle(title string) {
	w.win.SetTitle(title)
}

// Poll turns the input state gathered by the last Update into events.
func (w *Window) Poll(dispatch func(engine.Event)) {
	if w.win.Closed() {
		dispatch(engine.Close{})
		return
	}

	b := w.win.Bounds()
	if width, height := int(b.W()), int(b.H()); width != w.width || height != w.height {
		w.width, w.height = width, height
		w.camera.Resize(b)
		w.win.SetMatrix(w.camera.GetMatrix())
		dispatch(engine.Resize{Width: width, Height: height})
	}

	pos := w.camera.Unproject(w.win.MousePosition())
	if pos != w.mouse {
		w.mouse = pos
		dispatch(engine.PointerMove{X: float32(pos.X), Y: float32(pos.Y)})
	}

	for _, k := range keys {
		if w.win.JustPressed(k.button) {
			dispatch(engine.KeyPress{Key: k.key})
		}
		if w.win.JustReleased(k.button) {
			dispatch(engine.KeyRelease{Key: k.key})
		}
	}
	for _, m := range mouseButtons {
		if w.win.JustPressed(m.button) {
			dispatch(engine.Click{X: float32(pos.X), Y: float32(pos.Y), Button: m.mouse})
		}
	}
}

func (w *Window) RequestClose() {
	w.win.SetClosed(true)
}

func (w *Window) Done() bool {
	return w.win.Closed()
}

func (w *Window) Close() error {
	w.win.Destroy()
	return nil
}
