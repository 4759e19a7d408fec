package app

import (
	"strings"
	"sync"
	"time"

	"clockorange/hal"
)

type fakeFramebuffer struct {
	w, h     int
	pix      []uint32
	presents int
	format   hal.PixelFormat
}

func newFakeFramebuffer(w, h int) *fakeFramebuffer {
	return &fakeFramebuffer{w: w, h: h, pix: make([]uint32, w*h), format: hal.PixelFormatRGB888}
}

func (f *fakeFramebuffer) Width() int              { return f.w }
func (f *fakeFramebuffer) Height() int             { return f.h }
func (f *fakeFramebuffer) Format() hal.PixelFormat { return f.format }
func (f *fakeFramebuffer) Pixels() []uint32        { return f.pix }
func (f *fakeFramebuffer) Present() error          { f.presents++; return nil }

func (f *fakeFramebuffer) at(x, y int) uint32 { return f.pix[y*f.w+x] }

type fakeClock struct {
	now time.Time
	fn  func() time.Time
}

func (c *fakeClock) Now() time.Time {
	if c.fn != nil {
		return c.fn()
	}
	return c.now
}

type fakeLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *fakeLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *fakeLogger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *fakeLogger) contains(sub string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

type fakeHAL struct {
	log   *fakeLogger
	fb    *fakeFramebuffer
	keys  chan hal.KeyEvent
	clock *fakeClock
}

func newFakeHAL(w, h int, now time.Time) *fakeHAL {
	return &fakeHAL{
		log:   &fakeLogger{},
		fb:    newFakeFramebuffer(w, h),
		keys:  make(chan hal.KeyEvent, 16),
		clock: &fakeClock{now: now},
	}
}

func (h *fakeHAL) Logger() hal.Logger   { return h.log }
func (h *fakeHAL) Display() hal.Display { return fakeDisplay{fb: h.fb} }
func (h *fakeHAL) Input() hal.Input     { return fakeInput{ch: h.keys} }
func (h *fakeHAL) Clock() hal.Clock     { return h.clock }

func (h *fakeHAL) press(r rune)            { h.keys <- hal.KeyEvent{Press: true, Rune: r} }
func (h *fakeHAL) pressCode(c hal.KeyCode) { h.keys <- hal.KeyEvent{Press: true, Code: c} }

type fakeDisplay struct{ fb *fakeFramebuffer }

func (d fakeDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type fakeInput struct{ ch chan hal.KeyEvent }

func (in fakeInput) Keyboard() hal.Keyboard { return fakeKeyboard{ch: in.ch} }

type fakeKeyboard struct{ ch chan hal.KeyEvent }

func (k fakeKeyboard) Events() <-chan hal.KeyEvent { return k.ch }
