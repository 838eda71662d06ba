package engine

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/pkg/errors"
)

// Driver runs the frame loop: it samples the clock, updates the handler and
// draws a frame for every tick until the window is closed.
type Driver struct {
	handler Handler
	window  Window
	ctx     *Context
	fps     FrameCounter
	logger  *log.Logger

	frames  int
	started bool
	err     error
}

type Option func(*Driver)

// WithTimeSource replaces time.Now as the clock's source.
func WithTimeSource(now func() time.Time) Option {
	return func(d *Driver) {
		d.ctx.Clock = NewClock(now)
	}
}

func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		d.logger = l
	}
}

func NewDriver(cfg Config, h Handler, w Window, opts ...Option) *Driver {
	width, height := w.Size()
	d := &Driver{
		handler: h,
		window:  w,
		logger:  log.New(io.Discard, "", 0),
		ctx: &Context{
			Config:         cfg,
			Clock:          NewClock(nil),
			window:         w,
			viewportWidth:  width,
			viewportHeight: height,
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Context returns the handle shared with the handler.
func (d *Driver) Context() *Context {
	return d.ctx
}

// Frames returns the number of frames presented so far.
func (d *Driver) Frames() int {
	return d.frames
}

// Run brings the handler up, loops until the window is done and tears
// everything down. Teardown runs once on every exit path: UnloadContent,
// then EndRun, then the window is closed.
func (d *Driver) Run() (err error) {
	if d.started {
		return errors.New("engine: driver already ran")
	}
	d.started = true
	ctx := d.ctx

	loader, _ := d.handler.(ContentLoader)
	hooks, _ := d.handler.(RunHooks)
	var loaded, begun bool
	defer func() {
		if loaded {
			loader.UnloadContent(ctx)
		}
		if begun {
			hooks.EndRun(ctx)
		}
		ctx.Clock.Stop()
		if cerr := d.window.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "engine: close window")
		}
		d.logger.Printf("engine: run finished after %d frames", d.frames)
	}()

	if err := ctx.Config.Validate(); err != nil {
		return err
	}
	if err := d.handler.Initialize(ctx); err != nil {
		return errors.Wrap(err, "engine: initialize")
	}
	if loader != nil {
		if err := loader.LoadContent(ctx); err != nil {
			return errors.Wrap(err, "engine: load content")
		}
		loaded = true
	}

	ctx.Clock.Start()
	if hooks != nil {
		hooks.BeginRun(ctx)
		begun = true
	}
	d.logger.Printf("engine: run started %q %dx%d", ctx.Config.Title, ctx.viewportWidth, ctx.viewportHeight)

	for !d.window.Done() {
		d.window.Poll(d.Dispatch)
		d.Tick()
	}
	return d.err
}

// Tick advances one frame. It does nothing once the window was closed and
// skips drawing while a resize is in progress.
func (d *Driver) Tick() {
	ctx := d.ctx
	if ctx.closed {
		return
	}
	ctx.FrameDelta = float32(ctx.Clock.Sample())
	d.handler.Update(ctx)
	if ctx.resizing {
		return
	}
	d.render()
}

func (d *Driver) render() {
	ctx := d.ctx
	if fps, ok := d.fps.Add(ctx.FrameDelta); ok {
		ctx.FramesPerSecond = fps
		d.window.SetTitle(fmt.Sprintf("%s - FPS: %.0f", ctx.Config.Title, fps))
	}

	d.handler.Draw(ctx, d.window)
	if err := d.window.Present(ctx.Config.WaitVerticalBlanking); err != nil {
		d.err = errors.Wrap(err, "engine: present")
		ctx.Exit()
		return
	}
	d.frames++
}

// Dispatch routes one window event. Platforms call it through Poll.
func (d *Driver) Dispatch(ev Event) {
	ctx := d.ctx
	switch ev := ev.(type) {
	case PointerMove:
		d.handler.OnPointerMove(ctx, ev)
	case Click:
		if c, ok := d.handler.(Clicker); ok {
			c.OnClick(ctx, ev)
		}
	case KeyPress:
		d.handler.OnKeyDown(ctx, ev.Key)
	case KeyRelease:
		d.handler.OnKeyUp(ctx, ev.Key)
	case ResizeBegin:
		ctx.resizing = true
	case ResizeEnd:
		ctx.resizing = false
		d.resize(d.window.Size())
	case Resize:
		d.resize(ev.Width, ev.Height)
	case Close:
		ctx.closed = true
	}
}

func (d *Driver) resize(width, height int) {
	// minimised
	if width <= 0 || height <= 0 {
		return
	}
	d.ctx.viewportWidth, d.ctx.viewportHeight = width, height
}
