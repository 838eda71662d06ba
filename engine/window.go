package engine

import "image/color"

// Surface is the immediate-mode drawing target bound to the backbuffer.
// Coordinates are client pixels with the origin in the top-left corner.
type Surface interface {
	Clear(c color.Color)
	FillEllipse(cx, cy, rx, ry float32, c color.Color)
	DrawRectangle(left, top, right, bottom float32, c color.Color)
	// Present makes the backbuffer visible, waiting for vertical
	// blanking when vsync is set.
	Present(vsync bool) error
}

// Window is the platform side of the frame loop. All methods are called
// from the thread that created it.
type Window interface {
	Surface
	// Size returns the client area size.
	Size() (width, height int)
	SetTitle(title string)
	// Poll delivers pending events, in order, to dispatch.
	Poll(dispatch func(Event))
	// RequestClose asks the platform to close the window. Done reports
	// true once it has.
	RequestClose()
	Done() bool
	// Close releases the window and its device.
	Close() error
}
