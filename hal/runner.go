//go:build !tinygo

package hal

import (
	"errors"
	"time"
)

// NewAppFunc builds an app on top of a HAL and returns its step function.
//
// The runner calls step once per loop iteration. Returning ErrStop ends the run
// cleanly; any other error ends it with that error.
type NewAppFunc func(HAL) (step func() error, err error)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Host      HostConfig
	Title     string
	Scale     int
	Frameless bool
	// FrameCap is the interval between step calls.
	FrameCap time.Duration
}

func tpsFor(frameCap time.Duration) int {
	if frameCap <= 0 {
		return 30
	}
	tps := int(time.Second / frameCap)
	if tps < 1 {
		tps = 1
	}
	return tps
}

// hostLoop drives an app step from the window runner. Once step fails, the
// last presented frame stays on screen and input is polled here instead; the
// failure is returned on the next key press or window close.
type hostLoop struct {
	kbd    *hostKeyboard
	logger Logger
	step   func() error
	failed error
}

func (l *hostLoop) tick() error {
	if l.failed != nil {
		if l.kbd.drainPress() {
			return l.failed
		}
		return nil
	}
	if l.step == nil {
		return nil
	}
	err := l.step()
	if err == nil || errors.Is(err, ErrStop) {
		return err
	}
	l.failed = err
	if l.logger != nil {
		l.logger.WriteLineString("window: " + err.Error() + " (press any key to close)")
	}
	return nil
}
