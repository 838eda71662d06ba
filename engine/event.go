package engine

// Event is a window notification delivered to the Driver on the render
// thread. Platforms translate their native events into these.
type Event interface {
	isEvent()
}

type Key uint8

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

var keyNames = [...]string{
	KeyUnknown: "Unknown",
	KeyEscape:  "Escape",
	KeySpace:   "Space",
	KeyEnter:   "Enter",
	KeyLeft:    "Left",
	KeyRight:   "Right",
	KeyUp:      "Up",
	KeyDown:    "Down",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return keyNames[KeyUnknown]
}

type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// PointerMove carries the pointer position in client coordinates,
// origin top-left, y growing downwards.
type PointerMove struct {
	X, Y float32
}

type Click struct {
	X, Y   float32
	Button MouseButton
}

type KeyPress struct {
	Key Key
}

type KeyRelease struct {
	Key Key
}

// ResizeBegin and ResizeEnd bracket an interactive resize drag.
type ResizeBegin struct{}

type ResizeEnd struct{}

// Resize reports a new client size. Zero dimensions mean the window
// was minimised.
type Resize struct {
	Width, Height int
}

type Close struct{}

func (PointerMove) isEvent() {}
func (Click) isEvent()       {}
func (KeyPress) isEvent()    {}
func (KeyRelease) isEvent()  {}
func (ResizeBegin) isEvent() {}
func (ResizeEnd) isEvent()   {}
func (Resize) isEvent()      {}
func (Close) isEvent()       {}
