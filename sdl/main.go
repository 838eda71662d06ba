// Command sdl runs the pinball demo in an SDL2 window.
package main

import (
	"flag"
	"image/color"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"

	"pinball/engine"
	"pinball/game"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	vsync      = flag.Bool("vsync", false, "wait for vertical blanking on present")
	debug      = flag.Bool("debug", false, "log engine lifecycle")
)

var keys = map[sdl.Keycode]engine.Key{
	sdl.K_ESCAPE: engine.KeyEscape,
	sdl.K_SPACE:  engine.KeySpace,
	sdl.K_RETURN: engine.KeyEnter,
	sdl.K_LEFT:   engine.KeyLeft,
	sdl.K_RIGHT:  engine.KeyRight,
	sdl.K_UP:     engine.KeyUp,
	sdl.K_DOWN:   engine.KeyDown,
}

var mouseButtons = map[uint8]engine.MouseButton{
	sdl.BUTTON_LEFT:   engine.MouseLeft,
	sdl.BUTTON_RIGHT:  engine.MouseRight,
	sdl.BUTTON_MIDDLE: engine.MouseMiddle,
}

var _ engine.Window = (*Window)(nil)

// Window implements engine.Window with an SDL window and accelerated
// renderer.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	quit     bool
}

func NewWindow(cfg engine.Config) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, errors.Wrap(err, "init SDL")
	}

	window, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width), int32(cfg.Height), sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrap(err, "create window")
	}

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.WaitVerticalBlanking {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	renderer, err := sdl.CreateRenderer(window, -1, flags)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, errors.Wrap(err, "create renderer")
	}
	if rInfo, err := renderer.GetInfo(); err == nil {
		log.Printf("Renderer: %v, Max texture: %v x %v", rInfo.Name, rInfo.RendererInfoData.MaxTextureWidth, rInfo.RendererInfoData.MaxTextureHeight)
	}
	return &Window{window: window, renderer: renderer}, nil
}

func rgba(c color.Color) (r, g, b, a uint8) {
	v := color.RGBAModel.Convert(c).(color.RGBA)
	return v.R, v.G, v.B, v.A
}

func (w *Window) Clear(c color.Color) {
	w.renderer.SetDrawColor(rgba(c))
	w.renderer.Clear()
}

func (w *Window) FillEllipse(cx, cy, rx, ry float32, c color.Color) {
	r, g, b, a := rgba(c)
	gfx.FilledEllipseRGBA(w.renderer, int32(cx), int32(cy), int32(rx), int32(ry), r, g, b, a)
}

func (w *Window) DrawRectangle(left, top, right, bottom float32, c color.Color) {
	w.renderer.SetDrawColor(rgba(c))
	w.renderer.DrawRect(&sdl.Rect{
		X: int32(left),
		Y: int32(top),
		W: int32(right - left),
		H: int32(bottom - top),
	})
}

// Present shows the frame. Vertical sync is fixed when the renderer is
// created.
func (w *Window) Present(bool) error {
	w.renderer.Present()
	return nil
}

func (w *Window) Size() (int, int) {
	width, height := w.window.GetSize()
	return int(width), int(height)
}

func (w *Window) SetTitle(title string) {
	w.window.SetTitle(title)
}

func (w *Window) Poll(dispatch func(engine.Event)) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.quit = true
			dispatch(engine.Close{})
		case *sdl.MouseMotionEvent:
			dispatch(engine.PointerMove{X: float32(e.X), Y: float32(e.Y)})
		case *sdl.MouseButtonEvent:
			if b, ok := mouseButtons[e.Button]; ok && e.Type == sdl.MOUSEBUTTONDOWN {
				dispatch(engine.Click{X: float32(e.X), Y: float32(e.Y), Button: b})
			}
		case *sdl.KeyboardEvent:
			k, ok := keys[e.Keysym.Sym]
			if !ok || e.Repeat != 0 {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				dispatch(engine.KeyPress{Key: k})
			} else {
				dispatch(engine.KeyRelease{Key: k})
			}
		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				dispatch(engine.Resize{Width: int(e.Data1), Height: int(e.Data2)})
			case sdl.WINDOWEVENT_MINIMIZED:
				dispatch(engine.Resize{})
			}
		}
	}
}

func (w *Window) RequestClose() {
	w.quit = true
}

func (w *Window) Done() bool {
	return w.quit
}

func (w *Window) Close() error {
	if err := w.renderer.Destroy(); err != nil {
		log.Printf("destroy renderer: %v", err)
	}
	if err := w.window.Destroy(); err != nil {
		log.Printf("destroy window: %v", err)
	}
	sdl.Quit()
	return nil
}

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	// SDL wants every call on the thread that initialised it.
	runtime.LockOSThread()

	cfg := game.DefaultConfig()
	cfg.WaitVerticalBlanking = *vsync

	win, err := NewWindow(cfg)
	if err != nil {
		log.Fatalf("Failed to open window: %v", err)
	}
	var opts []engine.Option
	if *debug {
		opts = append(opts, engine.WithLogger(log.Default()))
	}
	if err := engine.NewDriver(cfg, game.New(), win, opts...).Run(); err != nil {
		log.Fatal(err)
	}
}
