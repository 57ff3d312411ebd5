package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"tinyrender/app"
	"tinyrender/hal"
	"tinyrender/internal/buildinfo"
	"tinyrender/internal/logging"
	"tinyrender/internal/snapshot"
	"tinyrender/mesh"
	"tinyrender/raster"
	"tinyrender/render"
)

type options struct {
	objPath    string
	width      int
	height     int
	scale      int
	clear      string
	projection string
	indices    string
	hud        bool
	headless   bool
	hz         int
	frames     uint64
	snapshot   string
	logLevel   string
	version    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.objPath, "obj", "./obj/african_head.obj", "Model file to render.")
	flag.IntVar(&opts.width, "width", hal.DefaultWidth, "Framebuffer width in pixels.")
	flag.IntVar(&opts.height, "height", hal.DefaultHeight, "Framebuffer height in pixels.")
	flag.IntVar(&opts.scale, "scale", 1, "Window (and snapshot) pixels per framebuffer pixel.")
	flag.StringVar(&opts.clear, "clear", "transparent", "Clear mode: transparent|opaque.")
	flag.StringVar(&opts.projection, "projection", "aspect", "Screen mapping: aspect|unit.")
	flag.StringVar(&opts.indices, "indices", "raw", "Face index lookup: raw|one-based.")
	flag.BoolVar(&opts.hud, "hud", false, "Draw the stats overlay (toggle with H).")
	flag.BoolVar(&opts.headless, "headless", false, "Run without a window.")
	flag.IntVar(&opts.hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&opts.frames, "frames", 0, "Stop after N frames in headless mode (0 = run until interrupted).")
	flag.StringVar(&opts.snapshot, "snapshot", "", "Write the last frame to this .png, .bmp or .tiff file on exit.")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug|info|warn|error.")
	flag.BoolVar(&opts.version, "version", false, "Print version and exit.")
	flag.Parse()

	if opts.version {
		fmt.Println(buildinfo.String())
		return
	}
	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	cfg := app.Config{HUD: opts.hud}
	if cfg.Clear, err = raster.ParseClearMode(opts.clear); err != nil {
		return err
	}
	if cfg.Projection, err = render.ParseProjection(opts.projection); err != nil {
		return err
	}
	if cfg.Indexing, err = render.ParseIndexing(opts.indices); err != nil {
		return err
	}
	if opts.snapshot != "" {
		if _, err := snapshot.FormatFromPath(opts.snapshot); err != nil {
			return err
		}
	}

	sink := hal.NewLogger(os.Stdout)
	log := logging.New(logging.Writer(sink), level)
	cfg.Logger = log
	log.Info("starting", "version", buildinfo.Short(), "obj", opts.objPath)

	parser := mesh.NewParser(mesh.MustPatterns(), mesh.WithLogger(log))
	model, diags, err := mesh.Load(opts.objPath, parser)
	if err != nil {
		return err
	}
	log.Info("model loaded",
		"vertices", model.NumVertices(),
		"faces", model.NumFaces(),
		"malformed", len(diags),
	)

	var fb hal.Framebuffer
	newApp := func(h hal.HAL) func() error {
		fb = h.Display().Framebuffer()
		return app.New(h, model, cfg)
	}

	if opts.headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{
			Width:  opts.width,
			Height: opts.height,
			Hz:     opts.hz,
			Ticks:  opts.frames,
			Logger: sink,
		})
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	} else {
		err = hal.RunWindow(hal.WindowConfig{
			Width:  opts.width,
			Height: opts.height,
			Scale:  opts.scale,
			Title:  app.DefaultTitle,
			Logger: sink,
		}, newApp)
	}
	if err != nil {
		return err
	}

	if opts.snapshot != "" && fb != nil {
		if err := snapshot.Write(opts.snapshot, snapshot.Scale(fb.Image(), opts.scale)); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		log.Info("snapshot written", "path", opts.snapshot)
	}
	return nil
}
