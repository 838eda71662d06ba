// Command tcell runs the pinball demo in a terminal. The playfield is
// scaled onto the character grid and the paddle follows the mouse.
// Press ESC to exit.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"pinball/engine"
	"pinball/game"
)

const frameTime = 33 * time.Millisecond

var keys = map[tcell.Key]engine.Key{
	tcell.KeyEscape: engine.KeyEscape,
	tcell.KeyEnter:  engine.KeyEnter,
	tcell.KeyLeft:   engine.KeyLeft,
	tcell.KeyRight:  engine.KeyRight,
	tcell.KeyUp:     engine.KeyUp,
	tcell.KeyDown:   engine.KeyDown,
}

var _ engine.Window = (*Screen)(nil)

// Screen implements engine.Window on a tcell screen. Playfield
// coordinates keep the configured size and are scaled to cells.
type Screen struct {
	s             tcell.Screen
	width, height int // playfield
	cols, rows    int
	title         string
	bg            tcell.Color
	evch          chan tcell.Event
	quit          bool
	buttons       tcell.ButtonMask
}

func NewScreen(cfg engine.Config) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	return newScreen(s, cfg), nil
}

// newScreen takes over an initialised tcell screen.
func newScreen(s tcell.Screen, cfg engine.Config) *Screen {
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.EnableMouse(tcell.MouseMotionEvents)
	s.HideCursor()
	s.Clear()

	sc := &Screen{
		s:      s,
		width:  cfg.Width,
		height: cfg.Height,
		title:  cfg.Title,
		bg:     tcell.ColorBlack,
		evch:   make(chan tcell.Event, 16),
	}
	sc.cols, sc.rows = s.Size()

	// launch polling goroutine
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			sc.evch <- ev
		}
	}()
	return sc
}

func (sc *Screen) toCell(x, y float32) (int, int) {
	col := int(math.Floor(float64(x) * float64(sc.cols) / float64(sc.width)))
	row := int(math.Floor(float64(y) * float64(sc.rows) / float64(sc.height)))
	return col, row
}

func (sc *Screen) fromCell(col, row int) (float32, float32) {
	x := (float32(col) + 0.5) * float32(sc.width) / float32(sc.cols)
	y := (float32(row) + 0.5) * float32(sc.height) / float32(sc.rows)
	return x, y
}

func (sc *Screen) Clear(c color.Color) {
	sc.bg = tcell.FromImageColor(c)
	sc.s.SetStyle(tcell.StyleDefault.Background(sc.bg))
	sc.s.Clear()
}

// shapeStyle draws in c over the cleared background.
func (sc *Screen) shapeStyle(c color.Color) tcell.Style {
	return tcell.StyleDefault.Background(sc.bg).Foreground(tcell.FromImageColor(c))
}

func (sc *Screen) FillEllipse(cx, cy, rx, ry float32, c color.Color) {
	style := sc.shapeStyle(c)
	x1, y1 := sc.toCell(cx-rx, cy-ry)
	x2, y2 := sc.toCell(cx+rx, cy+ry)
	for row := y1; row <= y2; row++ {
		for col := x1; col <= x2; col++ {
			x, y := sc.fromCell(col, row)
			dx, dy := (x-cx)/rx, (y-cy)/ry
			if dx*dx+dy*dy <= 1 {
				sc.s.SetContent(col, row, '█', nil, style)
			}
		}
	}
	// at least one cell, however small the ellipse
	col, row := sc.toCell(cx, cy)
	sc.s.SetContent(col, row, '●', nil, style)
}

func (sc *Screen) DrawRectangle(left, top, right, bottom float32, c color.Color) {
	style := sc.shapeStyle(c)
	x1, y1 := sc.toCell(left, top)
	x2, y2 := sc.toCell(right, bottom)
	drawBox(sc.s, x1, y1, x2, y2, style)
}

func (sc *Screen) Present(bool) error {
	emitStr(sc.s, 0, 0, sc.shapeStyle(color.White), sc.title)
	sc.s.Show()
	return nil
}

func (sc *Screen) Size() (int, int) {
	return sc.width, sc.height
}

func (sc *Screen) SetTitle(title string) {
	sc.title = title
}

// Poll waits up to one frame for the first event, then drains the rest.
func (sc *Screen) Poll(dispatch func(engine.Event)) {
	select {
	case ev := <-sc.evch:
		sc.handle(ev, dispatch)
	case <-time.After(frameTime):
		return
	}
	for {
		select {
		case ev := <-sc.evch:
			sc.handle(ev, dispatch)
		default:
			return
		}
	}
}

func (sc *Screen) handle(ev tcell.Event, dispatch func(engine.Event)) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		sc.s.Sync()
		sc.cols, sc.rows = ev.Size()
		// the playfield keeps its size, only the scale changes
		dispatch(engine.Resize{Width: sc.width, Height: sc.height})
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			sc.quit = true
			dispatch(engine.Close{})
			return
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
			dispatch(engine.KeyPress{Key: engine.KeySpace})
			return
		}
		if k, ok := keys[ev.Key()]; ok {
			dispatch(engine.KeyPress{Key: k})
		}
	case *tcell.EventMouse:
		x, y := sc.fromCell(ev.Position())
		dispatch(engine.PointerMove{X: x, Y: y})
		pressed := ev.Buttons() &^ sc.buttons
		sc.buttons = ev.Buttons()
		if pressed&tcell.Button1 != 0 {
			dispatch(engine.Click{X: x, Y: y, Button: engine.MouseLeft})
		}
		if pressed&tcell.Button2 != 0 {
			dispatch(engine.Click{X: x, Y: y, Button: engine.MouseRight})
		}
	}
}

func (sc *Screen) RequestClose() {
	sc.quit = true
}

func (sc *Screen) Done() bool {
	return sc.quit
}

func (sc *Screen) Close() error {
	sc.s.Fini()
	return nil
}

func emitStr(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for _, c := range str {
		s.SetContent(x, y, c, nil, style)
		x++
	}
}

func drawBox(s tcell.Screen, x1, y1, x2, y2 int, style tcell.Style) {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	if x2 < x1 {
		x1, x2 = x2, x1
	}

	for col := x1; col <= x2; col++ {
		s.SetContent(col, y1, tcell.RuneHLine, nil, style)
		s.SetContent(col, y2, tcell.RuneHLine, nil, style)
	}
	for row := y1 + 1; row < y2; row++ {
		s.SetContent(x1, row, tcell.RuneVLine, nil, style)
		s.SetContent(x2, row, tcell.RuneVLine, nil, style)
	}
	if y1 != y2 && x1 != x2 {
		// Only add corners if we need to
		s.SetContent(x1, y1, tcell.RuneULCorner, nil, style)
		s.SetContent(x2, y1, tcell.RuneURCorner, nil, style)
		s.SetContent(x1, y2, tcell.RuneLLCorner, nil, style)
		s.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)
	}
}

func main() {
	debug := flag.Bool("debug", false, "log engine lifecycle to stderr after exit")
	flag.Parse()

	cfg := game.DefaultConfig()
	sc, err := NewScreen(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	var opts []engine.Option
	var logs []string
	if *debug {
		// the screen owns the terminal until Fini, so collect lines
		opts = append(opts, engine.WithLogger(log.New(logWriter(func(p []byte) {
			logs = append(logs, string(p))
		}), "", log.LstdFlags)))
	}
	err = engine.NewDriver(cfg, game.New(), sc, opts...).Run()
	for _, l := range logs {
		fmt.Fprint(os.Stderr, l)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

type logWriter func(p []byte)

func (w logWriter) Write(p []byte) (int, error) {
	w(p)
	return len(p), nil
}
