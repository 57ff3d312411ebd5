package app

import (
	"bytes"
	"errors"
	"image"
	"log/slog"
	"strings"
	"testing"
	"time"

	"tinyrender/hal"
	"tinyrender/internal/logging"
	"tinyrender/mesh"
	"tinyrender/raster"
	"tinyrender/render"
)

type fakeFramebuffer struct {
	buf      *raster.Buffer
	presents int
}

func (f *fakeFramebuffer) Width() int              { return f.buf.Width }
func (f *fakeFramebuffer) Height() int             { return f.buf.Height }
func (f *fakeFramebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGBA8 }
func (f *fakeFramebuffer) StrideBytes() int        { return f.buf.Width * raster.BytesPerPixel }
func (f *fakeFramebuffer) Buffer() []byte          { return f.buf.Pix }
func (f *fakeFramebuffer) Pixels() *raster.Buffer  { return f.buf }
func (f *fakeFramebuffer) Image() *image.RGBA      { return f.buf.Image() }

func (f *fakeFramebuffer) Present() error {
	f.presents++
	return nil
}

type fakeDisplay struct {
	fb     *fakeFramebuffer
	titles []string
}

func (d *fakeDisplay) Framebuffer() hal.Framebuffer { return d.fb }
func (d *fakeDisplay) SetTitle(title string)        { d.titles = append(d.titles, title) }

func (d *fakeDisplay) title() string {
	if len(d.titles) == 0 {
		return ""
	}
	return d.titles[len(d.titles)-1]
}

type fakeKeyboard struct{ ch chan hal.KeyEvent }

func (k fakeKeyboard) Events() <-chan hal.KeyEvent { return k.ch }
func (k fakeKeyboard) Keyboard() hal.Keyboard      { return k }

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fakeHAL struct {
	disp  *fakeDisplay
	kbd   fakeKeyboard
	clock *fakeClock
}

func newFakeHAL(w, h int) *fakeHAL {
	return &fakeHAL{
		disp:  &fakeDisplay{fb: &fakeFramebuffer{buf: raster.NewBuffer(w, h)}},
		kbd:   fakeKeyboard{ch: make(chan hal.KeyEvent, 8)},
		clock: &fakeClock{now: time.Unix(0, 0)},
	}
}

func (h *fakeHAL) Logger() hal.Logger   { return nil }
func (h *fakeHAL) Display() hal.Display { return h.disp }
func (h *fakeHAL) Input() hal.Input     { return h.kbd }
func (h *fakeHAL) Time() hal.Time       { return h.clock }

func (h *fakeHAL) press(code hal.KeyCode) {
	h.kbd.ch <- hal.KeyEvent{Code: code, Press: true}
}

func parse(t *testing.T, lines ...string) *mesh.Model {
	t.Helper()
	m, diags := mesh.NewParser(mesh.MustPatterns()).ParseLines(lines)
	if len(diags) != 0 {
		t.Fatalf("diags=%v", diags)
	}
	return m
}

var triangle = []string{
	"v -0.5 -0.5 0",
	"v 0.5 -0.5 0",
	"v 0 0.5 0",
	"f 1/1/1 2/2/2 3/3/3",
}

func TestStepQuitsOnEscape(t *testing.T) {
	for _, code := range []hal.KeyCode{hal.KeyEscape, hal.KeyQ} {
		h := newFakeHAL(16, 16)
		step := New(h, parse(t, triangle...), Config{})
		if err := step(); err != nil {
			t.Fatalf("first step: %v", err)
		}
		h.press(code)
		if err := step(); !errors.Is(err, hal.ErrQuit) {
			t.Fatalf("key %d: err=%v, want hal.ErrQuit", code, err)
		}
	}
}

func TestStepIgnoresKeyRelease(t *testing.T) {
	h := newFakeHAL(16, 16)
	step := New(h, nil, Config{})
	h.kbd.ch <- hal.KeyEvent{Code: hal.KeyEscape, Press: false}
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
}

func TestStepTitleAfterOneSecond(t *testing.T) {
	h := newFakeHAL(16, 16)
	step := New(h, parse(t, triangle...), Config{})
	if got := h.disp.title(); got != DefaultTitle {
		t.Fatalf("initial title=%q", got)
	}

	for i := 1; i <= 10; i++ {
		h.clock.now = h.clock.now.Add(100 * time.Millisecond)
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if i == 9 && h.disp.title() != DefaultTitle {
			t.Fatalf("title changed early: %q", h.disp.title())
		}
	}
	if got, want := h.disp.title(), "tinyrender (9 fps)"; got != want {
		t.Fatalf("title=%q, want %q", got, want)
	}
	if got := h.disp.fb.presents; got != 10 {
		t.Fatalf("presents=%d, want 10", got)
	}
}

func TestStepClearsAndDraws(t *testing.T) {
	h := newFakeHAL(100, 100)
	buf := h.disp.fb.buf
	buf.SetPixel(0, 99, raster.Red)

	step := New(h, parse(t, triangle...), Config{
		Clear:      raster.ClearOpaque,
		Projection: render.ProjectUnit,
		Indexing:   render.IndexOneBased,
		Color:      raster.Green,
	})
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if c, _ := buf.At(0, 99); c != raster.ClearOpaque.Color() {
		t.Fatalf("corner=%v, want cleared", c)
	}
	if c, _ := buf.At(50, 25); c != raster.Green {
		t.Fatalf("edge pixel=%v, want green", c)
	}
}

func TestStepHUDToggle(t *testing.T) {
	h := newFakeHAL(64, 32)
	buf := h.disp.fb.buf
	step := New(h, nil, Config{Clear: raster.ClearOpaque, HUD: true})

	// The first HUD glyph is '0'; its top row sits hudMargin pixels below
	// the top edge.
	topRow := buf.Height - 1 - hudMargin
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if c, _ := buf.At(hudMargin, topRow); c != raster.White {
		t.Fatalf("hud pixel=%v, want white", c)
	}

	h.press(hal.KeyH)
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if c, _ := buf.At(hudMargin, topRow); c != raster.ClearOpaque.Color() {
		t.Fatalf("hud pixel after toggle=%v, want cleared", c)
	}
}

func TestStepWarnsWhenSkippedCountChanges(t *testing.T) {
	var logged bytes.Buffer
	h := newFakeHAL(32, 32)
	step := New(h, parse(t, triangle...), Config{
		Indexing: render.IndexRaw,
		Logger:   logging.New(&logged, slog.LevelWarn),
	})
	for range 3 {
		if err := step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	if n := strings.Count(logged.String(), "edges skipped"); n != 1 {
		t.Fatalf("warnings=%d, want 1\n%s", n, logged.String())
	}
	if !strings.Contains(logged.String(), "skipped=2") {
		t.Fatalf("log missing skipped count:\n%s", logged.String())
	}
}

func TestStepSpacePausesDrawing(t *testing.T) {
	h := newFakeHAL(100, 100)
	buf := h.disp.fb.buf
	step := New(h, parse(t, triangle...), Config{Projection: render.ProjectUnit, Indexing: render.IndexOneBased})
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}

	h.press(hal.KeySpace)
	buf.SetPixel(0, 0, raster.Red)
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if c, _ := buf.At(0, 0); c != raster.Red {
		t.Fatalf("paused frame was redrawn: %v", c)
	}
	if got := h.disp.fb.presents; got != 2 {
		t.Fatalf("presents=%d, want 2", got)
	}

	h.press(hal.KeySpace)
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if c, _ := buf.At(0, 0); c != (raster.Color{}) {
		t.Fatalf("resumed frame not cleared: %v", c)
	}
}
