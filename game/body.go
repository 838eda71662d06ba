package game

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Body is the part shared by everything that moves on the playfield.
type Body struct {
	X, Y    float32
	Color   color.RGBA
	Visible bool // whether it should be drawn

	width, height float32
}

func newBody(x, y, width, height float32) Body {
	return Body{
		X:       x,
		Y:       y,
		Color:   colornames.Green,
		Visible: true,
		width:   width,
		height:  height,
	}
}

func (b *Body) Width() float32  { return b.width }
func (b *Body) Height() float32 { return b.height }

func (b *Body) Hide() {
	b.Visible = false
}

func (b *Body) Show() {
	b.Visible = true
}
