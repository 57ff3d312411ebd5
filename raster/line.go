package raster

// Line draws a one pixel wide segment from (x0, y0) toward (x1, y1).
//
// It is integer-only Bresenham. The segment is half-open along its major
// axis: the end point on that axis is not drawn, so closed polygons rely on
// the next edge to cover the shared vertex. Drawing the segment in either
// direction touches the same pixels, and at most max(|dx|, |dy|) pixels are
// written.
func (b *Buffer) Line(x0, y0, x1, y1 int, c Color) {
	steep := absInt(x0-x1) < absInt(y0-y1)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0
	derror := absInt(dy) * 2
	ystep := 1
	if y1 < y0 {
		ystep = -1
	}

	// y is signed so a step below zero can be refused instead of wrapping.
	errAcc := 0
	y := y0
	for x := x0; x < x1; x++ {
		if steep {
			b.SetPixel(y, x, c)
		} else {
			b.SetPixel(x, y, c)
		}

		errAcc += derror
		if errAcc > dx {
			if !(ystep < 0 && y == 0) {
				y += ystep
			}
			errAcc -= dx * 2
		}
	}
}

// Point is a screen-space pixel coordinate.
type Point struct {
	X, Y int
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
