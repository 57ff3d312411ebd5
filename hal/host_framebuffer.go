package hal

import (
	"image"
	"sync"

	"tinyrender/raster"
)

// hostFramebuffer is double buffered: the app draws into back, Present copies
// back to front, and the window reads front.
type hostFramebuffer struct {
	back *raster.Buffer

	mu    sync.Mutex
	front []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	back := raster.NewBuffer(width, height)
	return &hostFramebuffer{
		back:  back,
		front: make([]byte, len(back.Pix)),
	}
}

func (f *hostFramebuffer) Width() int             { return f.back.Width }
func (f *hostFramebuffer) Height() int            { return f.back.Height }
func (f *hostFramebuffer) Format() PixelFormat    { return PixelFormatRGBA8 }
func (f *hostFramebuffer) StrideBytes() int       { return f.back.Width * raster.BytesPerPixel }
func (f *hostFramebuffer) Buffer() []byte         { return f.back.Pix }
func (f *hostFramebuffer) Pixels() *raster.Buffer { return f.back }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.back.Pix)
	return nil
}

func (f *hostFramebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.back.Width, f.back.Height))
	f.snapshot(img.Pix)
	return img
}

func (f *hostFramebuffer) snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
}
