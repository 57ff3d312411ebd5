package raster

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// RGBA returns c as a color.RGBA for image and display APIs.
func (c Color) RGBA() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A} }

func (c Color) bytes() [4]byte { return [4]byte{c.R, c.G, c.B, c.A} }

var (
	White = Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Red   = Color{R: 0xFF, A: 0xFF}
	Green = Color{G: 0xFF, A: 0xFF}
)

// ClearMode selects the color written by Buffer.Clear.
type ClearMode uint8

const (
	// ClearTransparent clears to all-zero bytes.
	ClearTransparent ClearMode = iota
	// ClearOpaque clears to opaque black (0,0,0,255).
	ClearOpaque
)

// Color returns the clear color for m.
func (m ClearMode) Color() Color {
	if m == ClearOpaque {
		return Color{A: 0xFF}
	}
	return Color{}
}

func (m ClearMode) String() string {
	switch m {
	case ClearTransparent:
		return "transparent"
	case ClearOpaque:
		return "opaque"
	default:
		return fmt.Sprintf("ClearMode(%d)", uint8(m))
	}
}

// ParseClearMode parses "transparent" or "opaque".
func ParseClearMode(s string) (ClearMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "transparent", "zero":
		return ClearTransparent, nil
	case "opaque", "black":
		return ClearOpaque, nil
	}
	return 0, fmt.Errorf("unknown clear mode %q (want transparent|opaque)", s)
}
