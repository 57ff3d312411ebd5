package raster

import (
	"fmt"
	"image"
)

// BytesPerPixel is the size of one RGBA8 cell.
const BytesPerPixel = 4

// Buffer is an RGBA8 pixel buffer with an inverted vertical axis.
//
// Pix is row-major, Width*Height*4 bytes long, and row 0 of Pix holds the
// pixels with the largest logical y. A Buffer is not safe for concurrent use.
type Buffer struct {
	Pix    []byte
	Width  int
	Height int
}

// NewBuffer allocates a zeroed buffer of the given size.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		Pix:    make([]byte, width*height*BytesPerPixel),
		Width:  width,
		Height: height,
	}
}

// WrapBuffer uses pix as the backing store of a width×height buffer.
func WrapBuffer(pix []byte, width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid buffer size %dx%d", width, height)
	}
	if want := width * height * BytesPerPixel; len(pix) != want {
		return nil, fmt.Errorf("raster: buffer is %d bytes, want %d for %dx%d", len(pix), want, width, height)
	}
	return &Buffer{Pix: pix, Width: width, Height: height}, nil
}

// Offset maps a logical point to the byte offset of its pixel.
//
// The vertical axis is flipped: row = Height-1-y. ok is false for points
// outside the buffer.
func (b *Buffer) Offset(x, y int) (off int, ok bool) {
	if b == nil || x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0, false
	}
	row := b.Height - 1 - y
	off = (row*b.Width + x) * BytesPerPixel
	if off+BytesPerPixel > len(b.Pix) {
		return 0, false
	}
	return off, true
}

// SetPixel writes c at (x, y). Points outside the buffer are ignored.
func (b *Buffer) SetPixel(x, y int, c Color) {
	off, ok := b.Offset(x, y)
	if !ok {
		return
	}
	p := b.Pix[off : off+BytesPerPixel : off+BytesPerPixel]
	p[0] = c.R
	p[1] = c.G
	p[2] = c.B
	p[3] = c.A
}

// At returns the color stored at (x, y).
func (b *Buffer) At(x, y int) (Color, bool) {
	off, ok := b.Offset(x, y)
	if !ok {
		return Color{}, false
	}
	p := b.Pix[off : off+BytesPerPixel]
	return Color{R: p[0], G: p[1], B: p[2], A: p[3]}, true
}

// Clear overwrites every pixel with the color selected by m.
func (b *Buffer) Clear(m ClearMode) {
	b.Fill(m.Color())
}

// Fill overwrites every pixel with c.
func (b *Buffer) Fill(c Color) {
	if b == nil || len(b.Pix) == 0 {
		return
	}
	if c == (Color{}) {
		clear(b.Pix)
		return
	}
	// Seed one pixel, then double the filled prefix.
	px := c.bytes()
	n := copy(b.Pix, px[:])
	for n < len(b.Pix) {
		n += copy(b.Pix[n:], b.Pix[:n])
	}
}

// Image returns a copy of the buffer as an image.RGBA. Image row 0 is the
// top of the picture, which matches the byte layout of Pix.
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	copy(img.Pix, b.Pix)
	return img
}
