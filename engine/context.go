package engine

// Context is the per-run handle passed to every Handler hook. It is created
// by the Driver at Run and dropped after teardown.
type Context struct {
	Config Config
	Clock  *Clock

	// FrameDelta is the seconds between the last two frames.
	FrameDelta float32
	// FramesPerSecond is republished about once per second.
	FramesPerSecond float32

	window         Window
	viewportWidth  int
	viewportHeight int
	closed         bool
	resizing       bool
}

// Viewport returns the current client area size.
func (c *Context) Viewport() (width, height int) {
	return c.viewportWidth, c.viewportHeight
}

// Exit closes the window. The frame loop stops on the next tick.
func (c *Context) Exit() {
	c.closed = true
	if c.window != nil {
		c.window.RequestClose()
	}
}

// Closed reports whether a close was observed or requested.
func (c *Context) Closed() bool {
	return c.closed
}

// Resizing reports whether an interactive resize is in progress.
func (c *Context) Resizing() bool {
	return c.resizing
}

// FrameCounter accumulates frame time and produces a frames-per-second
// figure every accumulated second.
type FrameCounter struct {
	accumulator float32
	count       int
}

// Add records one frame of length delta. It returns the new rate and true
// when an interval of at least one second completed, resetting the
// accumulator and the count.
func (f *FrameCounter) Add(delta float32) (float32, bool) {
	f.accumulator += delta
	f.count++
	if f.accumulator < 1 {
		return 0, false
	}
	fps := float32(f.count) / f.accumulator
	f.accumulator = 0
	f.count = 0
	return fps, true
}
