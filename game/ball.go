package game

import "pinball/engine"

const DefaultBallSpeed = 250

// Ball moves in a straight line and bounces off the viewport edges and the
// paddle. X and Y are its center.
type Ball struct {
	Body
	VelX, VelY float32 // pixels per second

	// Paddle is consulted for collisions only; it may be nil.
	Paddle *Paddle
}

func NewBall(x, y, width, height float32) *Ball {
	return &Ball{
		Body: newBody(x, y, width, height),
		VelX: DefaultBallSpeed,
		VelY: DefaultBallSpeed,
	}
}

// Advance moves the ball by its velocity scaled by dt. Turning is decided
// on the predicted position before moving, and a turn reverses the
// velocity for good. Horizontal limits are [0, viewportWidth]; vertically
// the top edge is tested against 0 but the center against viewportHeight.
func (b *Ball) Advance(dt, viewportWidth, viewportHeight float32) (float32, float32) {
	dx := b.VelX * dt
	dy := b.VelY * dt

	if b.mustTurnX(dx, viewportWidth) {
		dx = -dx
		b.VelX = -b.VelX
	}
	if b.mustTurnY(dy, viewportHeight) {
		dy = -dy
		b.VelY = -b.VelY
	}

	b.X += dx
	b.Y += dy
	return b.X, b.Y
}

func (b *Ball) mustTurnX(dx, viewportWidth float32) bool {
	left := b.X - b.width/2 + dx
	if left < 0 || left > viewportWidth {
		return true
	}
	if p := b.Paddle; p != nil {
		return p.Left() < left && left < p.Right() &&
			p.Top() < b.Y && b.Y < p.Bottom()
	}
	return false
}

func (b *Ball) mustTurnY(dy, viewportHeight float32) bool {
	if b.Y-b.height/2+dy < 0 {
		return true
	}
	if b.Y+dy > viewportHeight {
		return true
	}
	if p := b.Paddle; p != nil {
		lower := b.Y + b.height/2 + dy
		return p.Top() < lower && lower < p.Bottom() &&
			p.Left() < b.X && b.X < p.Right()
	}
	return false
}

func (b *Ball) Draw(s engine.Surface) {
	if !b.Visible {
		return
	}
	s.FillEllipse(b.X, b.Y, b.width/2, b.height/2, b.Color)
}
