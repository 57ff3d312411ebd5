// Package hal is the only contact point between tinyrender and the host:
// logging, the presented framebuffer, keyboard input and time.
package hal

import (
	"errors"
	"image"
	"time"

	"tinyrender/raster"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	// ErrQuit is returned by an app step to end the run loop normally.
	ErrQuit = errors.New("quit")

	// ErrNoWindow is returned by RunWindow in builds without cgo.
	ErrNoWindow = errors.New("window mode requires cgo (build with CGO_ENABLED=1, or use -headless)")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8 is 32bpp, bytes in R, G, B, A order.
	PixelFormatRGBA8 PixelFormat = iota + 1
)

// Framebuffer is a back buffer plus a "present" hook.
//
// Drawing goes to Pixels (or the bytes of Buffer). Present publishes the
// back buffer; Image returns a copy of the last presented frame.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	Pixels() *raster.Buffer
	Present() error
	Image() *image.RGBA
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeyQ
	KeySpace
	KeyH
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer and the window decoration.
type Display interface {
	Framebuffer() Framebuffer
	SetTitle(title string)
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time is the frame clock.
//
// The window runner follows the wall clock; the headless runner advances a
// virtual clock by one tick per frame so runs are reproducible.
type Time interface {
	Now() time.Time
}

// HAL provides the only contact point between the renderer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
