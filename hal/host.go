package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// HostConfig sizes the host framebuffer.
type HostConfig struct {
	Width  int
	Height int
	Log    io.Writer // defaults to os.Stdout
	Logger Logger    // overrides Log when set
}

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Width  int
	Height int
	Scale  int // window pixels per framebuffer pixel
	Title  string
	TPS    int
	Logger Logger
}

const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

type hostHAL struct {
	logger Logger
	disp   *hostDisplay
	kbd    *hostKeyboard
	t      *hostTime
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHost(cfg, newWallTime())
}

func newHost(cfg HostConfig, t *hostTime) *hostHAL {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Log == nil {
		cfg.Log = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = NewLogger(cfg.Log)
	}
	return &hostHAL{
		logger: cfg.Logger,
		disp:   &hostDisplay{fb: newHostFramebuffer(cfg.Width, cfg.Height)},
		kbd:    newHostKeyboard(),
		t:      t,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer

	mu    sync.Mutex
	title string
	dirty bool
}

func (d *hostDisplay) Framebuffer() Framebuffer { return d.fb }

func (d *hostDisplay) SetTitle(title string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if title == d.title {
		return
	}
	d.title = title
	d.dirty = true
}

// takeTitle returns the title if it changed since the last call.
func (d *hostDisplay) takeTitle() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.dirty {
		return "", false
	}
	d.dirty = false
	return d.title, true
}

// NewLogger returns a Logger writing newline-terminated lines to w. It is
// safe for concurrent use.
func NewLogger(w io.Writer) Logger {
	return &hostLogger{w: w}
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
