package font3x5

import (
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont"
)

type pixel struct{ x, y int16 }

type recorder struct {
	set map[pixel]bool
}

func (r *recorder) Size() (x, y int16) { return 32, 16 }
func (r *recorder) SetPixel(x, y int16, c color.RGBA) {
	if r.set == nil {
		r.set = make(map[pixel]bool)
	}
	r.set[pixel{x, y}] = true
}
func (r *recorder) Display() error { return nil }

func TestGlyphDrawsAboveBaseline(t *testing.T) {
	var d recorder
	Font.GetGlyph('I').Draw(&d, 0, 4, color.RGBA{255, 255, 255, 255})

	want := []pixel{
		{0, 0}, {1, 0}, {2, 0},
		{1, 1}, {1, 2}, {1, 3},
		{0, 4}, {1, 4}, {2, 4},
	}
	if len(d.set) != len(want) {
		t.Fatalf("set %d pixels, want %d", len(d.set), len(want))
	}
	for _, p := range want {
		if !d.set[p] {
			t.Fatalf("pixel %v not set", p)
		}
	}
}

func TestLowerCaseAndFallback(t *testing.T) {
	tests := []struct {
		r    rune
		want rune
	}{
		{'a', 'A'},
		{'z', 'Z'},
		{'7', '7'},
		{'~', '?'},
		{'ж', '?'},
	}
	for _, tt := range tests {
		if got, want := lookup(tt.r), glyphs[tt.want]; got != want {
			t.Fatalf("lookup(%q)=%v, want %v", tt.r, got, want)
		}
	}
	if Has('~') {
		t.Fatal("Has('~')=true")
	}
	if !Has('q') {
		t.Fatal("Has('q')=false")
	}
}

func TestMetrics(t *testing.T) {
	info := Font.GetGlyph('0').Info()
	if info.XAdvance != XAdvance || info.Height != Height || info.YOffset != -(Height-1) {
		t.Fatalf("info=%+v", info)
	}
	if Font.GetYAdvance() != YAdvance {
		t.Fatalf("YAdvance=%d", Font.GetYAdvance())
	}
	_, outbox := tinyfont.LineWidth(Font, "0")
	if outbox != XAdvance {
		t.Fatalf("LineWidth outbox=%d, want %d", outbox, XAdvance)
	}
}

func TestGlyphRowsFitCell(t *testing.T) {
	for r, rows := range glyphs {
		for i, b := range rows {
			if b > 7 {
				t.Fatalf("glyph %q row %d = %#x exceeds %d bits", r, i, b, Width)
			}
		}
	}
}
