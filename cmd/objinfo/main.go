// Command objinfo parses a model file, prints record counts and malformed
// lines, and optionally renders one wireframe frame to an image.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"tinyrender/internal/snapshot"
	"tinyrender/mesh"
	"tinyrender/raster"
	"tinyrender/render"
)

func main() {
	var (
		inPath     = flag.String("in", "", "Model file (.obj).")
		renderPath = flag.String("render", "", "Render one frame to this .png, .bmp or .tiff file.")
		width      = flag.Int("width", 800, "Render width.")
		height     = flag.Int("height", 600, "Render height.")
		projection = flag.String("projection", "aspect", "aspect|unit.")
		indices    = flag.String("indices", "raw", "raw|one-based.")
		clearMode  = flag.String("clear", "opaque", "transparent|opaque.")
	)
	flag.Parse()

	if *inPath == "" {
		fatalf("usage: objinfo -in model.obj [-render out.png] [-width 800 -height 600] [-projection aspect|unit] [-indices raw|one-based]")
	}

	model, diags, err := mesh.Load(*inPath, mesh.NewParser(mesh.MustPatterns()))
	if err != nil {
		fatalf("load: %v", err)
	}
	report(os.Stdout, *inPath, model, diags)

	if *renderPath == "" {
		return
	}
	r := render.NewRenderer()
	if r.Projection, err = render.ParseProjection(*projection); err != nil {
		fatalf("%v", err)
	}
	if r.Indexing, err = render.ParseIndexing(*indices); err != nil {
		fatalf("%v", err)
	}
	cm, err := raster.ParseClearMode(*clearMode)
	if err != nil {
		fatalf("%v", err)
	}
	if *width <= 0 || *height <= 0 {
		fatalf("invalid size: %dx%d", *width, *height)
	}

	buf := raster.NewBuffer(*width, *height)
	buf.Clear(cm)
	st := r.DrawWireframe(buf, model)
	if err := snapshot.Write(*renderPath, buf.Image()); err != nil {
		fatalf("render: %v", err)
	}
	fmt.Printf("rendered %s: faces=%d edges=%d skipped=%d\n", *renderPath, st.Faces, st.Edges, st.Skipped)
}

func report(w io.Writer, path string, m *mesh.Model, diags []mesh.Diagnostic) {
	fmt.Fprintf(w, "%s\n", path)
	fmt.Fprintf(w, "  vertices:  %d\n", m.NumVertices())
	fmt.Fprintf(w, "  texcoords: %d\n", m.NumTexCoords())
	fmt.Fprintf(w, "  normals:   %d\n", m.NumNormals())
	fmt.Fprintf(w, "  faces:     %d\n", m.NumFaces())
	fmt.Fprintf(w, "  malformed: %d\n", len(diags))
	for _, d := range diags {
		fmt.Fprintf(w, "    %s\n", d)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
