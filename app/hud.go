package app

import (
	"image/color"

	"tinyrender/fonts/font3x5"
	"tinyrender/raster"

	"tinygo.org/x/tinyfont"
)

const hudMargin = 2

// hud draws a single text line in the top-left corner of the buffer.
type hud struct {
	d    bufferDisplayer
	font tinyfont.Fonter
}

func newHUD(buf *raster.Buffer) *hud {
	return &hud{d: bufferDisplayer{buf: buf}, font: font3x5.Font}
}

func (h *hud) draw(s string, c color.RGBA) {
	tinyfont.WriteLine(&h.d, h.font, hudMargin, hudMargin+font3x5.Height-1, s, c)
}

// bufferDisplayer adapts a raster.Buffer to drivers.Displayer. Font code
// assumes y grows downward, so rows are flipped onto the buffer's
// bottom-up coordinates.
type bufferDisplayer struct {
	buf *raster.Buffer
}

func (d *bufferDisplayer) Size() (x, y int16) {
	if d.buf == nil {
		return 0, 0
	}
	return int16(d.buf.Width), int16(d.buf.Height)
}

func (d *bufferDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.buf == nil {
		return
	}
	d.buf.SetPixel(int(x), d.buf.Height-1-int(y), raster.RGBA(c.R, c.G, c.B, c.A))
}

func (d *bufferDisplayer) Display() error { return nil }
