package app

import (
	"errors"
	"fmt"

	"clockorange/clockwork/dial"
	"clockorange/clockwork/raster"
	"clockorange/hal"
	"clockorange/internal/config"
)

// New builds the clock on top of h and returns its step function.
//
// Each step is one loop iteration: drain input, read the time, and render at
// most once per wall-clock second. The runner paces the calls.
func New(h hal.HAL, cfg config.Clock) (func() error, error) {
	c, err := newClock(h, cfg)
	if err != nil {
		return nil, err
	}
	c.log(fmt.Sprintf("clock: %dx%d scheme=%d strategy=%s", c.geom.Width, c.geom.Height, c.scheme, c.strategy))
	return c.step, nil
}

func newClock(h hal.HAL, cfg config.Clock) (*clock, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if h == nil {
		return nil, errors.New("clock: nil HAL")
	}
	disp := h.Display()
	if disp == nil {
		return nil, errors.New("clock: no display")
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return nil, errors.New("clock: no framebuffer")
	}
	if fb.Format() != hal.PixelFormatRGB888 {
		return nil, fmt.Errorf("clock: unsupported pixel format %d", fb.Format())
	}
	buf := raster.Wrap(fb.Width(), fb.Height(), fb.Pixels())
	if buf.Width() <= 0 || buf.Height() <= 0 {
		return nil, fmt.Errorf("clock: unusable framebuffer %dx%d", fb.Width(), fb.Height())
	}
	clk := h.Clock()
	if clk == nil {
		return nil, errors.New("clock: no wall clock")
	}

	var keys <-chan hal.KeyEvent
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			keys = kbd.Events()
		}
	}

	pal, _ := dial.Scheme(cfg.Scheme)
	geom := dial.NewGeometry(buf.Width(), buf.Height())
	return &clock{
		logger:       h.Logger(),
		fb:           fb,
		wall:         clk,
		keys:         keys,
		buf:          buf,
		geom:         geom,
		pal:          pal,
		scheme:       cfg.Scheme,
		strategy:     cfg.Strategy,
		quitOnAnyKey: cfg.QuitOnAnyKey,
		hands:        dial.RestingHands(geom),
		state:        faceDirty,
	}, nil
}
