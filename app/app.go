// Package app wires a parsed model, the wireframe renderer and the HAL into
// the per-frame step driven by the hal runners.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"tinyrender/hal"
	"tinyrender/internal/logging"
	"tinyrender/mesh"
	"tinyrender/raster"
	"tinyrender/render"
)

const DefaultTitle = "tinyrender"

type Config struct {
	Clear      raster.ClearMode
	Color      raster.Color // zero means white
	Projection render.Projection
	Indexing   render.Indexing
	HUD        bool

	Title  string // window title prefix, defaults to DefaultTitle
	Logger *slog.Logger
}

type frameDriver struct {
	h     hal.HAL
	disp  hal.Display
	fb    hal.Framebuffer
	model *mesh.Model
	r     *render.Renderer
	hud   *hud
	log   *slog.Logger

	clear   raster.ClearMode
	title   string
	showHUD bool
	paused  bool

	lastFrame  time.Time
	deltaMS    int64
	frameCount int
	fps        int

	lastSkipped int
	last        render.Stats
}

// New returns the step function for one frame. The model is read-only from
// here on.
func New(h hal.HAL, model *mesh.Model, cfg Config) func() error {
	d := newFrameDriver(h, model, cfg)
	return d.step
}

func newFrameDriver(h hal.HAL, model *mesh.Model, cfg Config) *frameDriver {
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.Color == (raster.Color{}) {
		cfg.Color = raster.White
	}
	log := logging.OrNop(cfg.Logger)

	r := render.NewRenderer()
	r.Color = cfg.Color
	r.Projection = cfg.Projection
	r.Indexing = cfg.Indexing
	r.Logger = log

	d := &frameDriver{
		h:           h,
		model:       model,
		r:           r,
		log:         log,
		clear:       cfg.Clear,
		title:       cfg.Title,
		showHUD:     cfg.HUD,
		lastSkipped: -1,
	}
	if d.disp = h.Display(); d.disp != nil {
		d.fb = d.disp.Framebuffer()
		d.disp.SetTitle(cfg.Title)
	}
	if d.fb != nil && d.fb.Format() != hal.PixelFormatRGBA8 {
		log.Error("unsupported framebuffer format", "format", d.fb.Format())
		d.fb = nil
	}
	if d.fb != nil {
		d.hud = newHUD(d.fb.Pixels())
	}
	if t := h.Time(); t != nil {
		d.lastFrame = t.Now()
	}
	return d
}

func (d *frameDriver) step() error {
	if err := d.drainKeys(); err != nil {
		return err
	}
	if d.fb == nil {
		return nil
	}

	if !d.paused {
		d.draw(d.fb.Pixels())
	}
	if err := d.fb.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}

	d.tick()
	return nil
}

func (d *frameDriver) draw(buf *raster.Buffer) {
	buf.Clear(d.clear)
	st := d.r.DrawWireframe(buf, d.model)
	d.last = st
	if st.Skipped != d.lastSkipped {
		if st.Skipped > 0 {
			d.log.Warn("edges skipped", "skipped", st.Skipped, "drawn", st.Edges, "faces", st.Faces)
		}
		d.lastSkipped = st.Skipped
	}
	if d.showHUD && d.hud != nil {
		d.hud.draw(d.hudLine(), d.r.Color.RGBA())
	}
}

func (d *frameDriver) drainKeys() error {
	in := d.h.Input()
	if in == nil {
		return nil
	}
	kbd := in.Keyboard()
	if kbd == nil {
		return nil
	}
	ch := kbd.Events()
	for {
		select {
		case ev := <-ch:
			if !ev.Press {
				continue
			}
			switch ev.Code {
			case hal.KeyEscape, hal.KeyQ:
				d.log.Info("quit requested")
				return hal.ErrQuit
			case hal.KeyH:
				d.showHUD = !d.showHUD
			case hal.KeySpace:
				d.paused = !d.paused
			}
		default:
			return nil
		}
	}
}

// tick accumulates whole milliseconds between presented frames. Every full
// second the title shows the frames counted in it; the remainder carries over.
func (d *frameDriver) tick() {
	t := d.h.Time()
	if t == nil {
		return
	}
	now := t.Now()
	d.deltaMS += now.Sub(d.lastFrame).Milliseconds()
	d.lastFrame = now

	if d.deltaMS >= 1000 {
		d.fps = d.frameCount
		if d.disp != nil {
			d.disp.SetTitle(fmt.Sprintf("%s (%d fps)", d.title, d.fps))
		}
		d.log.Debug("frame rate", "fps", d.fps)
		d.deltaMS -= 1000
		d.frameCount = 0
	}
	d.frameCount++
}

func (d *frameDriver) hudLine() string {
	return fmt.Sprintf("%d FPS  F %d  E %d  SKIP %d", d.fps, d.last.Faces, d.last.Edges, d.last.Skipped)
}
