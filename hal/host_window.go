//go:build !tinygo && cgo

package hal

import (
	"errors"
	"image"
	"os"

	"clockorange/clockwork/raster"
	"clockorange/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that displays the framebuffer and forwards keyboard input.
// It blocks until the window closes or the app stops.
func RunWindow(cfg WindowConfig, newApp NewAppFunc) error {
	h, err := newHost(cfg.Host, os.Stdout)
	if err != nil {
		return err
	}
	step, err := newApp(h)
	if err != nil {
		return err
	}

	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}

	g := &hostGame{h: h, loop: &hostLoop{kbd: h.kbd, logger: h.logger, step: step}}
	ebiten.SetWindowTitle(buildinfo.Title(cfg.Title))
	ebiten.SetWindowSize(h.fb.width*scale, h.fb.height*scale)
	ebiten.SetWindowDecorated(!cfg.Frameless)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(tpsFor(cfg.FrameCap))
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []uint32
	shown   uint64
	loop    *hostLoop
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	err := g.loop.tick()
	if errors.Is(err, ErrStop) {
		return ebiten.Termination
	}
	return err
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]uint32, len(fb.front))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.shown = 0
	}

	if fb.presented() != g.shown {
		g.shown = fb.snapshot(g.scratch)
		g.img = raster.Wrap(fb.width, fb.height, g.scratch).ToRGBA(g.img)
		g.fbImg.WritePixels(g.img.Pix)
	}
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
