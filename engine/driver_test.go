package engine

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
)

type fakeWindow struct {
	width, height int
	title         string
	done          bool
	closed        int
	presented     int
	presentErr    error
	calls         []string
	pending       [][]Event
	ft            *fakeTime
	step          time.Duration
	maxFrames     int
}

func (w *fakeWindow) Clear(color.Color) { w.calls = append(w.calls, "clear") }
func (w *fakeWindow) FillEllipse(cx, cy, rx, ry float32, c color.Color) {
	w.calls = append(w.calls, "ellipse")
}
func (w *fakeWindow) DrawRectangle(l, t, r, b float32, c color.Color) {
	w.calls = append(w.calls, "rect")
}

func (w *fakeWindow) Present(vsync bool) error {
	w.calls = append(w.calls, "present")
	if w.presentErr != nil {
		return w.presentErr
	}
	w.presented++
	if w.ft != nil {
		w.ft.Advance(w.step)
	}
	if w.maxFrames > 0 && w.presented >= w.maxFrames {
		w.done = true
	}
	return nil
}

func (w *fakeWindow) Size() (int, int)      { return w.width, w.height }
func (w *fakeWindow) SetTitle(title string) { w.title = title }
func (w *fakeWindow) RequestClose()         { w.done = true }
func (w *fakeWindow) Done() bool            { return w.done }
func (w *fakeWindow) Close() error          { w.closed++; return nil }

func (w *fakeWindow) Poll(dispatch func(Event)) {
	if len(w.pending) == 0 {
		return
	}
	batch := w.pending[0]
	w.pending = w.pending[1:]
	for _, ev := range batch {
		dispatch(ev)
	}
}

type recordHandler struct {
	BaseHandler
	log     []string
	initErr error
	loadErr error
	pointer []PointerMove
	clicks  []Click
	keysUp  []Key
	deltas  []float32
	panicOn int
	updates int
}

func (h *recordHandler) Initialize(ctx *Context) error {
	h.log = append(h.log, "initialize")
	return h.initErr
}

func (h *recordHandler) LoadContent(ctx *Context) error {
	h.log = append(h.log, "load")
	return h.loadErr
}

func (h *recordHandler) UnloadContent(ctx *Context) { h.log = append(h.log, "unload") }
func (h *recordHandler) BeginRun(ctx *Context)      { h.log = append(h.log, "begin") }
func (h *recordHandler) EndRun(ctx *Context)        { h.log = append(h.log, "end") }

func (h *recordHandler) Update(ctx *Context) {
	h.updates++
	h.deltas = append(h.deltas, ctx.FrameDelta)
	if h.panicOn > 0 && h.updates == h.panicOn {
		panic("boom")
	}
}

func (h *recordHandler) Draw(ctx *Context, s Surface) {
	s.Clear(color.Black)
	s.DrawRectangle(0, 0, 1, 1, color.White)
	s.FillEllipse(0, 0, 1, 1, color.White)
}

func (h *recordHandler) OnPointerMove(ctx *Context, ev PointerMove) {
	h.pointer = append(h.pointer, ev)
}

func (h *recordHandler) OnClick(ctx *Context, ev Click) { h.clicks = append(h.clicks, ev) }
func (h *recordHandler) OnKeyUp(ctx *Context, key Key)  { h.keysUp = append(h.keysUp, key) }

func newTestDriver(h Handler, w *fakeWindow) *Driver {
	if w.ft == nil {
		w.ft = newFakeTime()
	}
	cfg := DefaultConfig()
	return NewDriver(cfg, h, w, WithTimeSource(w.ft.Now))
}

func TestDriverLifecycleOrder(t *testing.T) {
	h := &recordHandler{}
	w := &fakeWindow{width: 600, height: 800, step: time.Second / 4, maxFrames: 3}
	d := newTestDriver(h, w)

	if err := d.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "initialize load begin unload end"
	if got := strings.Join(h.log, " "); got != want {
		t.Fatalf("hooks = %q, want %q", got, want)
	}
	if w.closed != 1 {
		t.Fatalf("window closed %d times, want 1", w.closed)
	}
	if d.Frames() != 3 || h.updates != 3 {
		t.Fatalf("frames %d, updates %d; want 3, 3", d.Frames(), h.updates)
	}
	wantCalls := strings.Repeat("clear rect ellipse present ", 3)
	if got := strings.Join(w.calls, " ") + " "; got != wantCalls {
		t.Fatalf("draw calls = %q", got)
	}
	if h.deltas[0] != 0 || h.deltas[1] != 0.25 || h.deltas[2] != 0.25 {
		t.Fatalf("deltas = %v", h.deltas)
	}
	if d.Context().Clock.Running() {
		t.Fatal("clock still running after teardown")
	}
}

func TestDriverInitializeFailure(t *testing.T) {
	h := &recordHandler{initErr: errors.New("no device")}
	w := &fakeWindow{width: 600, height: 800}
	err := newTestDriver(h, w).Run()
	if err == nil || !strings.Contains(err.Error(), "no device") {
		t.Fatalf("err = %v", err)
	}
	if strings.Join(h.log, " ") != "initialize" {
		t.Fatalf("hooks = %v", h.log)
	}
	if w.closed != 1 {
		t.Fatalf("window closed %d times, want 1", w.closed)
	}
}

func TestDriverTeardownOnPanic(t *testing.T) {
	h := &recordHandler{panicOn: 2}
	w := &fakeWindow{width: 600, height: 800, step: time.Millisecond}
	d := newTestDriver(h, w)
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		d.Run()
	}()
	if got := strings.Join(h.log, " "); got != "initialize load begin unload end" {
		t.Fatalf("hooks = %q", got)
	}
	if w.closed != 1 {
		t.Fatalf("window closed %d times, want 1", w.closed)
	}
	if err := d.Run(); err == nil {
		t.Fatal("second run should fail")
	}
}

func TestDriverEscapeExits(t *testing.T) {
	h := &recordHandler{}
	w := &fakeWindow{
		width: 600, height: 800, step: time.Millisecond,
		pending: [][]Event{nil, {KeyPress{Key: KeyEscape}}},
	}
	d := newTestDriver(h, w)
	if err := d.Run(); err != nil {
		t.Fatal(err)
	}
	if !d.Context().Closed() {
		t.Fatal("context not closed")
	}
	// The tick after Escape is skipped.
	if h.updates != 1 || d.Frames() != 1 {
		t.Fatalf("updates %d, frames %d; want 1, 1", h.updates, d.Frames())
	}
}

func TestDriverCloseEventStopsTicks(t *testing.T) {
	h := &recordHandler{}
	w := &fakeWindow{width: 600, height: 800}
	d := newTestDriver(h, w)
	d.Context().Clock.Start()

	d.Dispatch(Close{})
	d.Tick()
	if h.updates != 0 || len(w.calls) != 0 {
		t.Fatalf("tick after close did work: %d updates, %v", h.updates, w.calls)
	}
}

func TestDriverResizeSkipsDraw(t *testing.T) {
	h := &recordHandler{}
	w := &fakeWindow{width: 600, height: 800}
	d := newTestDriver(h, w)
	ctx := d.Context()
	ctx.Clock.Start()

	d.Dispatch(ResizeBegin{})
	d.Tick()
	if h.updates != 1 || len(w.calls) != 0 {
		t.Fatalf("resizing tick: %d updates, calls %v", h.updates, w.calls)
	}

	d.Dispatch(Resize{Width: 0, Height: 0})
	if vw, vh := ctx.Viewport(); vw != 600 || vh != 800 {
		t.Fatalf("minimised resize changed viewport to %dx%d", vw, vh)
	}

	w.width, w.height = 1024, 700
	d.Dispatch(ResizeEnd{})
	if ctx.Resizing() {
		t.Fatal("still resizing")
	}
	if vw, vh := ctx.Viewport(); vw != 1024 || vh != 700 {
		t.Fatalf("viewport = %dx%d, want 1024x700", vw, vh)
	}
	d.Tick()
	if d.Frames() != 1 {
		t.Fatalf("frames = %d, want 1", d.Frames())
	}

	d.Dispatch(Resize{Width: 300, Height: 200})
	if vw, vh := ctx.Viewport(); vw != 300 || vh != 200 {
		t.Fatalf("viewport = %dx%d, want 300x200", vw, vh)
	}
}

func TestDriverRoutesInput(t *testing.T) {
	h := &recordHandler{}
	w := &fakeWindow{width: 600, height: 800}
	d := newTestDriver(h, w)

	d.Dispatch(PointerMove{X: 10, Y: 20})
	d.Dispatch(Click{X: 1, Y: 2, Button: MouseRight})
	d.Dispatch(KeyRelease{Key: KeySpace})
	d.Dispatch(KeyPress{Key: KeySpace})

	if len(h.pointer) != 1 || h.pointer[0] != (PointerMove{X: 10, Y: 20}) {
		t.Fatalf("pointer = %v", h.pointer)
	}
	if len(h.clicks) != 1 || h.clicks[0].Button != MouseRight {
		t.Fatalf("clicks = %v", h.clicks)
	}
	if len(h.keysUp) != 1 || h.keysUp[0] != KeySpace {
		t.Fatalf("keys up = %v", h.keysUp)
	}
	if d.Context().Closed() {
		t.Fatal("space must not exit")
	}
}

func TestDriverPublishesFPS(t *testing.T) {
	h := &recordHandler{}
	w := &fakeWindow{width: 600, height: 800, step: time.Second / 8, maxFrames: 10}
	d := newTestDriver(h, w)
	if err := d.Run(); err != nil {
		t.Fatal(err)
	}
	// Deltas are 0, then 1/8 each: the ninth frame completes one second.
	if got := d.Context().FramesPerSecond; got != 9 {
		t.Fatalf("fps = %v, want 9", got)
	}
	if w.title != "Game - FPS: 9" {
		t.Fatalf("title = %q", w.title)
	}
}

func TestDriverPresentFailure(t *testing.T) {
	h := &recordHandler{}
	w := &fakeWindow{width: 600, height: 800, presentErr: errors.New("device lost")}
	err := newTestDriver(h, w).Run()
	if err == nil || !strings.Contains(err.Error(), "device lost") {
		t.Fatalf("err = %v", err)
	}
	if w.closed != 1 {
		t.Fatalf("window closed %d times", w.closed)
	}
}

func TestDriverInvalidConfig(t *testing.T) {
	w := &fakeWindow{width: 600, height: 800}
	d := NewDriver(Config{Title: "x"}, &recordHandler{}, w)
	if err := d.Run(); err == nil {
		t.Fatal("expected config error")
	}
	if w.closed != 1 {
		t.Fatalf("window closed %d times", w.closed)
	}
}

func TestBaseHandlerEscape(t *testing.T) {
	w := &fakeWindow{}
	ctx := &Context{window: w}
	var h BaseHandler
	h.OnKeyDown(ctx, KeyEnter)
	if ctx.Closed() {
		t.Fatal("enter closed the context")
	}
	h.OnKeyDown(ctx, KeyEscape)
	if !ctx.Closed() || !w.Done() {
		t.Fatal("escape did not close")
	}
}
