package engine

// Handler is implemented by a concrete game. The Driver calls it from the
// render thread only.
type Handler interface {
	Initialize(ctx *Context) error
	Update(ctx *Context)
	Draw(ctx *Context, s Surface)
	OnPointerMove(ctx *Context, ev PointerMove)
	OnKeyDown(ctx *Context, key Key)
	OnKeyUp(ctx *Context, key Key)
}

// ContentLoader is an optional Handler extension. UnloadContent runs during
// teardown whenever LoadContent was reached.
type ContentLoader interface {
	LoadContent(ctx *Context) error
	UnloadContent(ctx *Context)
}

// RunHooks is an optional Handler extension called around the frame loop.
type RunHooks interface {
	BeginRun(ctx *Context)
	EndRun(ctx *Context)
}

// Clicker is an optional Handler extension receiving mouse clicks.
type Clicker interface {
	OnClick(ctx *Context, ev Click)
}

// BaseHandler provides the default behaviour for every hook. Embed it and
// override what the game needs.
type BaseHandler struct{}

func (BaseHandler) Initialize(*Context) error           { return nil }
func (BaseHandler) Update(*Context)                     {}
func (BaseHandler) Draw(*Context, Surface)              {}
func (BaseHandler) OnPointerMove(*Context, PointerMove) {}
func (BaseHandler) OnKeyUp(*Context, Key)               {}

// OnKeyDown exits on Escape.
func (BaseHandler) OnKeyDown(ctx *Context, key Key) {
	if key == KeyEscape {
		ctx.Exit()
	}
}
