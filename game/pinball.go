// Package game implements the pinball demo: one ball bouncing around the
// window and one paddle that follows the pointer.
package game

import (
	"image/color"

	"golang.org/x/image/colornames"

	"pinball/engine"
)

var background = color.RGBA{25, 25, 25, 255}

func DefaultConfig() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Title = "PinBall Game"
	return cfg
}

// PinBall is the engine.Handler driving the demo.
type PinBall struct {
	engine.BaseHandler

	Background color.RGBA
	Brush      color.RGBA
	Ball       *Ball
	Paddle     *Paddle
}

func New() *PinBall {
	return &PinBall{
		Background: background,
		Brush:      colornames.Green,
	}
}

func (g *PinBall) Initialize(ctx *engine.Context) error {
	w, h := ctx.Config.Width, ctx.Config.Height
	g.Paddle = NewPaddle(float32(w/2-15), float32(h-150), 50, 10)
	g.Ball = NewBall(float32(w/2-5), 100, 10, 10)
	g.Ball.Paddle = g.Paddle
	g.Paddle.Color = g.Brush
	g.Ball.Color = g.Brush
	return nil
}

// Update moves the paddle towards its target, then the ball.
func (g *PinBall) Update(ctx *engine.Context) {
	vw, _ := ctx.Viewport()
	g.Paddle.Advance(ctx.FrameDelta)
	g.Ball.Advance(ctx.FrameDelta, float32(vw), float32(ctx.Config.Height))
}

func (g *PinBall) Draw(ctx *engine.Context, s engine.Surface) {
	s.Clear(g.Background)
	g.Paddle.Draw(s)
	g.Ball.Draw(s)
}

func (g *PinBall) OnPointerMove(ctx *engine.Context, ev engine.PointerMove) {
	vw, _ := ctx.Viewport()
	g.Paddle.SetTarget(ev.X, float32(vw))
}
