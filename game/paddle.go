package game

import "pinball/engine"

const DefaultPaddleSpeed = 500

// Paddle slides horizontally towards the pointer. X and Y are its
// top-left corner.
type Paddle struct {
	Body
	Speed   float32 // pixels per second
	TargetX float32
}

func NewPaddle(x, y, width, height float32) *Paddle {
	return &Paddle{
		Body:  newBody(x, y, width, height),
		Speed: DefaultPaddleSpeed,
	}
}

func (p *Paddle) Left() float32   { return p.X }
func (p *Paddle) Right() float32  { return p.X + p.width }
func (p *Paddle) Top() float32    { return p.Y }
func (p *Paddle) Bottom() float32 { return p.Y + p.height }

// SetTarget stores the pointer x as the new target, clamped to
// [0, viewportWidth-width/2].
func (p *Paddle) SetTarget(pointerX, viewportWidth float32) {
	p.TargetX = pointerX
	if p.TargetX < 0 {
		p.TargetX = 0
	}
	if p.TargetX+p.width/2 > viewportWidth {
		p.TargetX = viewportWidth - p.width/2
	}
}

// Advance moves the paddle at most Speed*dt towards the target and returns
// the new x. A target ahead within reach is snapped onto; a target at or
// behind the paddle always costs a full step back.
func (p *Paddle) Advance(dt float32) float32 {
	room := p.Speed * dt
	diff := p.TargetX - p.X
	switch {
	case diff > room:
		p.X += room
	case diff > 0:
		p.X = p.TargetX
	case diff < room:
		p.X -= room
	default:
		// zero room and zero distance
		p.X = p.TargetX
	}
	return p.X
}

func (p *Paddle) Draw(s engine.Surface) {
	if !p.Visible {
		return
	}
	s.DrawRectangle(p.Left(), p.Top(), p.Right(), p.Bottom(), p.Color)
}
