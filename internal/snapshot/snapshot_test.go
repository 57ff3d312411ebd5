package snapshot

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.SetRGBA(1, 2, color.RGBA{R: 255, A: 255})
	img.SetRGBA(3, 0, color.RGBA{G: 255, A: 255})
	return img
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"out.png", FormatPNG},
		{"OUT.PNG", FormatPNG},
		{"frame.bmp", FormatBMP},
		{"a/b/c.tif", FormatTIFF},
		{"c.tiff", FormatTIFF},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if err != nil || got != tt.want {
			t.Fatalf("FormatFromPath(%q)=%v,%v; want %v", tt.path, got, err, tt.want)
		}
	}
	if _, err := FormatFromPath("out.jpg"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("jpg err=%v, want ErrUnknownFormat", err)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := testImage()

	decoders := map[string]func(*os.File) (image.Image, error){
		"frame.png":  func(f *os.File) (image.Image, error) { return png.Decode(f) },
		"frame.bmp":  func(f *os.File) (image.Image, error) { return bmp.Decode(f) },
		"frame.tiff": func(f *os.File) (image.Image, error) { return tiff.Decode(f) },
	}
	for name, decode := range decoders {
		path := filepath.Join(dir, name)
		if err := Write(path, src); err != nil {
			t.Fatalf("Write(%s): %v", name, err)
		}
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("Open(%s): %v", name, err)
		}
		got, err := decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if got.Bounds() != src.Bounds() {
			t.Fatalf("%s bounds=%v, want %v", name, got.Bounds(), src.Bounds())
		}
		for _, p := range []image.Point{{1, 2}, {3, 0}, {0, 0}} {
			r0, g0, b0, _ := src.At(p.X, p.Y).RGBA()
			r1, g1, b1, _ := got.At(p.X, p.Y).RGBA()
			if r0 != r1 || g0 != g1 || b0 != b1 {
				t.Fatalf("%s pixel %v differs", name, p)
			}
		}
	}
}

func TestWriteUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.gif")
	if err := Write(path, testImage()); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err=%v, want ErrUnknownFormat", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file created for unknown format")
	}
}

func TestScale(t *testing.T) {
	src := testImage()
	if Scale(src, 1) != image.Image(src) {
		t.Fatal("factor 1 must return the input")
	}
	got := Scale(src, 3)
	if b := got.Bounds(); b.Dx() != 12 || b.Dy() != 9 {
		t.Fatalf("bounds=%v", b)
	}
	for _, p := range []image.Point{{3, 6}, {5, 8}} {
		if r, _, _, _ := got.At(p.X, p.Y).RGBA(); r != 0xffff {
			t.Fatalf("pixel %v not red", p)
		}
	}
	if r, _, _, _ := got.At(2, 6).RGBA(); r != 0 {
		t.Fatal("pixel (2,6) bled red")
	}
}
