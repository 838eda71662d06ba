package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime/pprof"

	"github.com/faiface/pixel/pixelgl"
	"github.com/gogpu/gg"

	"pinball/engine"
	"pinball/game"
	"pinball/headless"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	title      = flag.String("title", "", "window title (default \"PinBall Game\")")
	width      = flag.Int("width", 0, "window width (default 600)")
	height     = flag.Int("height", 0, "window height (default 800)")
	vsync      = flag.Bool("vsync", false, "wait for vertical blanking on present")
	debug      = flag.Bool("debug", false, "show ball and paddle state, log engine lifecycle")
	frames     = flag.Int("headless", 0, "render this many frames off-screen instead of opening a window")
	out        = flag.String("out", "frame.png", "file receiving the last headless frame")
)

func config() engine.Config {
	cfg := game.DefaultConfig()
	if *title != "" {
		cfg.Title = *title
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	cfg.WaitVerticalBlanking = *vsync
	return cfg
}

func driverOptions() []engine.Option {
	if !*debug {
		return nil
	}
	return []engine.Option{engine.WithLogger(log.Default())}
}

func run() {
	cfg := config()
	win, err := NewWindow(cfg)
	if err != nil {
		log.Fatalf("Failed to open window: %v", err)
	}

	pinball := game.New()
	driver := engine.NewDriver(cfg, pinball, win, driverOptions()...)
	if *debug {
		ctx := driver.Context()
		win.debug = func(w io.Writer) {
			fmt.Fprintf(w, "fps:    %6.1f\n", ctx.FramesPerSecond)
			fmt.Fprintf(w, "ball:   %6.1f %6.1f  vel %5.0f %5.0f\n", pinball.Ball.X, pinball.Ball.Y, pinball.Ball.VelX, pinball.Ball.VelY)
			fmt.Fprintf(w, "paddle: %6.1f -> %6.1f\n", pinball.Paddle.X, pinball.Paddle.TargetX)
		}
	}
	if err := driver.Run(); err != nil {
		log.Fatal(err)
	}
}

func runHeadless(n int) {
	cfg := config()
	if *debug {
		gg.SetLogger(slog.Default())
	}
	win := headless.New(cfg.Width, cfg.Height, headless.WithFrameLimit(n))
	pinball := game.New()
	opts := append(driverOptions(), engine.WithTimeSource(win.Now))
	driver := engine.NewDriver(cfg, pinball, win, opts...)
	if err := driver.Run(); err != nil {
		log.Fatal(err)
	}
	if err := win.SavePNG(*out); err != nil {
		log.Fatal(err)
	}
	log.Printf("%d frames rendered, ball at (%.1f, %.1f), saved %s",
		win.Frames(), pinball.Ball.X, pinball.Ball.Y, *out)
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
	if *frames > 0 {
		runHeadless(*frames)
		return
	}
	pixelgl.Run(run)
}
