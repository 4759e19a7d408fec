package app

import (
	"fmt"
	"runtime/debug"

	"clockorange/clockwork/dial"
	"clockorange/clockwork/raster"
	"clockorange/hal"
	"clockorange/internal/config"
)

type faceState uint8

const (
	// faceDirty: the next render rebuilds background, outline and ticks.
	faceDirty faceState = iota
	// faceClean: only the hands need erasing and redrawing.
	faceClean
)

type clock struct {
	logger hal.Logger
	fb     hal.Framebuffer
	wall   hal.Clock
	keys   <-chan hal.KeyEvent

	buf  *raster.Buffer
	geom dial.Geometry

	pal          dial.Palette
	scheme       int
	strategy     config.RedrawStrategy
	quitOnAnyKey bool

	hands   dial.Hands
	state   faceState
	lastSec int64

	failed error
}

func (c *clock) step() (err error) {
	if c.failed != nil {
		return c.failed
	}
	defer func() {
		if r := recover(); r != nil {
			c.failed = fmt.Errorf("clock: panic: %v", r)
			c.showPanic(r, debug.Stack())
			err = c.failed
		}
	}()

	if stop := c.pollInput(); stop != "" {
		c.log("clock: quit (" + stop + ")")
		return hal.ErrStop
	}

	now := c.wall.Now()
	sec := now.Unix()
	if c.state == faceClean && sec == c.lastSec {
		return nil
	}

	c.render(dial.AnglesFor(now))
	c.lastSec = sec
	return c.fb.Present()
}

// pollInput drains every queued key event without blocking. It returns the
// reason to stop, or "" to keep running.
func (c *clock) pollInput() string {
	for {
		select {
		case ev, ok := <-c.keys:
			if !ok {
				c.keys = nil
				return ""
			}
			if stop := c.handleKey(ev); stop != "" {
				return stop
			}
		default:
			return ""
		}
	}
}

func (c *clock) handleKey(ev hal.KeyEvent) string {
	if !ev.Press {
		return ""
	}
	switch {
	case ev.Code == hal.KeyQuit:
		return "window closed"
	case ev.Code == hal.KeyEscape:
		return "escape"
	case ev.Code == hal.KeyUnknown && ev.Rune == ' ':
		return "space"
	}
	if c.quitOnAnyKey {
		return "key"
	}
	if ev.Code != hal.KeyUnknown {
		return ""
	}
	if n, ok := dial.SchemeForKey(ev.Rune); ok {
		c.setScheme(n)
	}
	return ""
}

func (c *clock) setScheme(n int) {
	pal, ok := dial.Scheme(n)
	if !ok {
		return
	}
	c.pal = pal
	c.scheme = n
	c.state = faceDirty
	c.log(fmt.Sprintf("clock: scheme %d", n))
}

func (c *clock) render(a dial.Angles) {
	if c.state == faceDirty || c.strategy == config.RedrawAlways {
		dial.BuildFace(c.buf, c.pal, c.geom)
		c.state = faceClean
	} else {
		c.hands.Erase(c.buf, c.geom.Origin, c.pal.BG)
	}

	c.hands = c.geom.HandsFor(a)
	c.hands.Draw(c.buf, c.geom.Origin, c.pal)
}

func (c *clock) log(s string) {
	if c.logger != nil {
		c.logger.WriteLineString(s)
	}
}
