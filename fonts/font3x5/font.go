package font3x5

import (
	"image/color"
	"unicode"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Font is a tiny monospace bitmap font (3x5 cells, 4px advance) covering
// digits, upper-case latin letters and common punctuation. Lower-case input
// is drawn upper-case and anything else as '?'.
//
// It implements tinyfont.Fonter. Concurrent access is not safe due to
// internal glyph reuse.
var Font tinyfont.Fonter = &font3x5{}

const (
	Width    = 3
	Height   = 5
	XAdvance = 4
	YAdvance = 6
)

type font3x5 struct {
	g glyph
}

type glyph struct {
	r    rune
	rows [Height]byte
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	for row, b := range g.rows {
		// Three bits per row, bit2 is the leftmost pixel.
		for col := 0; col < Width; col++ {
			if b&(0x4>>col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(Height-1-row), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    Width,
		Height:   Height,
		XAdvance: XAdvance,
		XOffset:  0,
		YOffset:  -(Height - 1),
	}
}

func (f *font3x5) GetYAdvance() uint8 { return YAdvance }

func (f *font3x5) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	f.g.rows = lookup(r)
	return &f.g
}

// Has reports whether r has its own glyph (after upper-casing).
func Has(r rune) bool {
	_, ok := glyphs[unicode.ToUpper(r)]
	return ok
}

func lookup(r rune) [Height]byte {
	if rows, ok := glyphs[unicode.ToUpper(r)]; ok {
		return rows
	}
	return glyphs['?']
}
