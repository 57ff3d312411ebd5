//go:build cgo

package hal

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that displays the framebuffer and forwards keyboard input.
// It blocks until the window closes or the app step returns ErrQuit.
func RunWindow(cfg WindowConfig, newApp func(HAL) func() error) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}

	h := newHost(HostConfig{Width: cfg.Width, Height: cfg.Height, Logger: cfg.Logger}, newWallTime())
	if cfg.Title != "" {
		h.disp.SetTitle(cfg.Title)
	}
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	g.applyTitle()
	fb := h.disp.fb
	ebiten.SetWindowSize(fb.Width()*cfg.Scale, fb.Height()*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	h       *hostHAL
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	g.applyTitle()
	return nil
}

func (g *hostGame) applyTitle() {
	if title, ok := g.h.disp.takeTitle(); ok {
		ebiten.SetWindowTitle(title)
	}
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.disp.fb
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != fb.Width() || g.fbImg.Bounds().Dy() != fb.Height() {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.Width(), fb.Height())
		g.scratch = make([]byte, len(fb.Buffer()))
	}

	fb.snapshot(g.scratch)
	g.fbImg.WritePixels(g.scratch)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.disp.fb.Width(), g.h.disp.fb.Height()
}
