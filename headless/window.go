// Package headless provides an off-screen engine.Window rendered in
// software with gg. Time advances by a fixed step on every tick, drawn or
// not, so runs are deterministic and end even while a resize holds drawing
// back.
package headless

import (
	"image"
	"image/color"
	"time"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"

	"pinball/engine"
)

const DefaultStep = time.Second / 60

var _ engine.Window = (*Window)(nil)

type Window struct {
	dc            *gg.Context
	width, height int
	title         string

	now    time.Time
	step   time.Duration
	ticks  int
	frames int
	limit  int
	script map[int][]engine.Event

	err    error
	done   bool
	closed bool
}

type Option func(*Window)

// WithStep sets the simulated time between two ticks.
func WithStep(d time.Duration) Option {
	return func(w *Window) { w.step = d }
}

// WithFrameLimit closes the window after n ticks, whether or not they
// presented a frame.
func WithFrameLimit(n int) Option {
	return func(w *Window) { w.limit = n }
}

// WithEvents queues events to be polled on tick n (0-based).
func WithEvents(tick int, evs ...engine.Event) Option {
	return func(w *Window) {
		w.script[tick] = append(w.script[tick], evs...)
	}
}

func New(width, height int, opts ...Option) *Window {
	w := &Window{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
		now:    time.Unix(0, 0),
		step:   DefaultStep,
		script: make(map[int][]engine.Event),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Now is the window's simulated clock, suitable for engine.WithTimeSource.
func (w *Window) Now() time.Time {
	return w.now
}

func (w *Window) Clear(c color.Color) {
	w.dc.ClearWithColor(gg.FromColor(c))
}

func (w *Window) FillEllipse(cx, cy, rx, ry float32, c color.Color) {
	w.dc.SetColor(c)
	w.dc.DrawEllipse(float64(cx), float64(cy), float64(rx), float64(ry))
	w.keep(w.dc.Fill())
}

func (w *Window) DrawRectangle(left, top, right, bottom float32, c color.Color) {
	w.dc.SetColor(c)
	w.dc.SetLineWidth(1)
	w.dc.DrawRectangle(float64(left), float64(top), float64(right-left), float64(bottom-top))
	w.keep(w.dc.Stroke())
}

func (w *Window) keep(err error) {
	if err != nil && w.err == nil {
		w.err = err
	}
}

// Present finishes the frame. The vsync flag has no meaning off-screen.
func (w *Window) Present(vsync bool) error {
	if w.err != nil {
		err := w.err
		w.err = nil
		return errors.Wrap(err, "headless: render")
	}
	w.frames++
	return nil
}

func (w *Window) Size() (int, int) {
	return w.width, w.height
}

func (w *Window) SetTitle(title string) {
	w.title = title
}

func (w *Window) Title() string {
	return w.title
}

// Poll starts a tick: time moves on by one step (the first tick sees the
// start time) and the events scripted for this tick are dispatched.
func (w *Window) Poll(dispatch func(engine.Event)) {
	if w.ticks > 0 {
		w.now = w.now.Add(w.step)
	}
	tick := w.ticks
	w.ticks++
	if w.limit > 0 && w.ticks >= w.limit {
		w.done = true
	}

	evs := w.script[tick]
	delete(w.script, tick)
	for _, ev := range evs {
		dispatch(ev)
	}
}

func (w *Window) RequestClose() {
	w.done = true
}

func (w *Window) Done() bool {
	return w.done
}

// Close releases the drawing context. The last frame stays readable.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.done = true
	return w.dc.Close()
}

// Frames returns the number of presented frames.
func (w *Window) Frames() int {
	return w.frames
}

// Ticks returns the number of polled ticks, including those that drew
// nothing.
func (w *Window) Ticks() int {
	return w.ticks
}

func (w *Window) Image() image.Image {
	return w.dc.Image()
}

func (w *Window) SavePNG(path string) error {
	return errors.Wrapf(w.dc.SavePNG(path), "headless: save %s", path)
}
