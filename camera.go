package main

import (
	"github.com/faiface/pixel"
)

// Camera maps playfield coordinates (origin top-left, y down) onto the
// window's (origin bottom-left, y up).
type Camera struct {
	Height float64
}

func NewCamera(bounds pixel.Rect) *Camera {
	return &Camera{Height: bounds.H()}
}

func (c *Camera) GetMatrix() pixel.Matrix {
	return pixel.IM.ScaledXY(pixel.ZV, pixel.V(1, -1)).Moved(pixel.V(0, c.Height))
}

// Unproject turns a window position, such as the mouse, into playfield
// coordinates.
func (c *Camera) Unproject(v pixel.Vec) pixel.Vec {
	return c.GetMatrix().Unproject(v)
}

func (c *Camera) Resize(bounds pixel.Rect) {
	c.Height = bounds.H()
}
