// Package raster provides the pixel primitives of tinyrender.
//
// A Buffer is a flat RGBA8 pixel array with an inverted vertical axis: the
// logical origin is the bottom-left corner and y grows upward, while row 0 of
// the underlying bytes is the top of the image. All addressing goes through
// Buffer.Offset, so the flip lives in one place.
//
// Writes outside the buffer are dropped silently. Line relies on that and
// does no clipping of its own.
package raster
