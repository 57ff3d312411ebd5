package render

import (
	"fmt"
	"log/slog"
	"strings"

	"tinyrender/internal/logging"
	"tinyrender/mesh"
	"tinyrender/raster"
)

// Indexing selects how face indices are turned into Model positions.
type Indexing uint8

const (
	// IndexRaw looks face indices up unchanged. Because faces are 1-based,
	// every edge is drawn one vertex off; this is the historical output.
	IndexRaw Indexing = iota
	// IndexOneBased subtracts one before lookup.
	IndexOneBased
)

func (ix Indexing) String() string {
	switch ix {
	case IndexRaw:
		return "raw"
	case IndexOneBased:
		return "one-based"
	default:
		return fmt.Sprintf("Indexing(%d)", uint8(ix))
	}
}

// ParseIndexing parses "raw" or "one-based".
func ParseIndexing(s string) (Indexing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw":
		return IndexRaw, nil
	case "one-based", "onebased", "1":
		return IndexOneBased, nil
	}
	return 0, fmt.Errorf("unknown indexing %q (want raw|one-based)", s)
}

func (ix Indexing) position(i uint32) int {
	if ix == IndexOneBased {
		return int(i) - 1
	}
	return int(i)
}

// Stats summarizes one DrawWireframe call.
type Stats struct {
	Faces   int // faces visited
	Edges   int // edges drawn
	Skipped int // edges dropped because an endpoint index was absent
}

// Renderer draws wireframes. The zero value draws transparent black lines
// with ProjectAspect and IndexRaw; use NewRenderer for the usual defaults.
type Renderer struct {
	Color      raster.Color
	Projection Projection
	Indexing   Indexing
	Logger     *slog.Logger
}

// NewRenderer returns a renderer drawing white lines.
func NewRenderer() *Renderer {
	return &Renderer{Color: raster.White}
}

// DrawWireframe draws the three edges of every face of m into buf.
//
// An edge whose endpoint index has no vertex is skipped and logged at debug
// level; drawing continues with the next edge.
func (r *Renderer) DrawWireframe(buf *raster.Buffer, m *mesh.Model) Stats {
	var st Stats
	if r == nil || buf == nil || m == nil || buf.Width <= 0 || buf.Height <= 0 {
		return st
	}
	log := logging.OrNop(r.Logger)
	proj := r.Projection.Matrix(buf.Width, buf.Height)

	for f := range m.Faces() {
		face := st.Faces
		st.Faces++
		for i := range 3 {
			i0 := f.Point[i]
			i1 := f.Point[(i+1)%3]
			v0, ok := m.Vertex(r.Indexing.position(i0))
			if !ok {
				st.Skipped++
				log.Debug("missing vertex", "face", face, "corner", i, "end", "v0", "index", i0)
				continue
			}
			v1, ok := m.Vertex(r.Indexing.position(i1))
			if !ok {
				st.Skipped++
				log.Debug("missing vertex", "face", face, "corner", i, "end", "v1", "index", i1)
				continue
			}
			p0 := Project(proj, v0)
			p1 := Project(proj, v1)
			buf.Line(p0.X, p0.Y, p1.X, p1.Y, r.Color)
			st.Edges++
		}
	}
	return st
}
