//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFramebufferPresentCopiesBackToFront(t *testing.T) {
	fb := newHostFramebuffer(4, 2)
	fb.Pixels()[5] = 0xFF8800

	dst := make([]uint32, 8)
	if seq := fb.snapshot(dst); seq != 0 || dst[5] != 0 {
		t.Fatalf("unpresented snapshot seq=%d pix=%#x", seq, dst[5])
	}
	if err := fb.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	fb.Pixels()[5] = 0x000000 // drawing after present must not leak into front

	if seq := fb.snapshot(dst); seq != 1 || dst[5] != 0xFF8800 {
		t.Fatalf("snapshot seq=%d pix=%#x", seq, dst[5])
	}
}

func TestKeyboardQueueDropsWhenFull(t *testing.T) {
	k := newHostKeyboard()
	for i := 0; i < cap(k.ch); i++ {
		if !k.push(KeyEvent{Press: true, Rune: 'a'}) {
			t.Fatalf("push %d dropped early", i)
		}
	}
	if k.push(KeyEvent{Press: true, Rune: 'b'}) {
		t.Fatal("push into full queue succeeded")
	}
}

func TestPushRuneMapsControlKeys(t *testing.T) {
	k := newHostKeyboard()
	k.pushRune(0x1b)
	k.pushRune('3')
	if ev := <-k.Events(); ev.Code != KeyEscape || !ev.Press {
		t.Fatalf("escape mapped to %+v", ev)
	}
	if ev := <-k.Events(); ev.Code != KeyUnknown || ev.Rune != '3' {
		t.Fatalf("digit mapped to %+v", ev)
	}
}

func TestHostClockUsesLocation(t *testing.T) {
	loc := time.FixedZone("X", -5*3600)
	c := newHostClock(loc)
	c.now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }
	if h, _, _ := c.Now().Clock(); h != 7 {
		t.Fatalf("hour = %d, want 7", h)
	}
	if newHostClock(nil).loc != time.Local {
		t.Fatal("nil location should mean local time")
	}
}

func TestNewRejectsBadSize(t *testing.T) {
	if _, err := New(HostConfig{Width: 0, Height: 600}); err == nil {
		t.Fatal("expected error")
	}
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	var steps int
	var log bytes.Buffer
	err := RunHeadless(context.Background(), HeadlessConfig{
		Host:  HostConfig{Width: 8, Height: 8},
		Hz:    1000,
		Ticks: 3,
		Log:   &log,
	}, func(h HAL) (func() error, error) {
		return func() error { steps++; return nil }, nil
	})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps = %d, want 3", steps)
	}
}

func TestRunHeadlessFeedsKeysAndStops(t *testing.T) {
	var got []rune
	err := RunHeadless(context.Background(), HeadlessConfig{
		Host: HostConfig{Width: 8, Height: 8},
		Hz:   1000,
		Keys: "12\x1b",
		Log:  &bytes.Buffer{},
	}, func(h HAL) (func() error, error) {
		kbd := h.Input().Keyboard()
		return func() error {
			for {
				select {
				case ev := <-kbd.Events():
					if ev.Code == KeyEscape {
						return ErrStop
					}
					got = append(got, ev.Rune)
				default:
					return nil
				}
			}
		}, nil
	})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if string(got) != "12" {
		t.Fatalf("keys seen = %q", string(got))
	}
}

func TestRunHeadlessPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), HeadlessConfig{
		Host: HostConfig{Width: 8, Height: 8},
		Hz:   1000,
		Log:  &bytes.Buffer{},
	}, func(h HAL) (func() error, error) {
		return func() error { return boom }, nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	err = RunHeadless(context.Background(), HeadlessConfig{
		Host: HostConfig{Width: 8, Height: 8},
		Log:  &bytes.Buffer{},
	}, func(h HAL) (func() error, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("init err = %v, want boom", err)
	}
}

func TestRunHeadlessWritesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	var log bytes.Buffer
	err := RunHeadless(context.Background(), HeadlessConfig{
		Host:     HostConfig{Width: 8, Height: 8},
		Hz:       1000,
		Ticks:    1,
		Snapshot: path,
		Log:      &log,
	}, func(h HAL) (func() error, error) {
		fb := h.Display().Framebuffer()
		return func() error {
			for i := range fb.Pixels() {
				fb.Pixels()[i] = 0xFFFFFF
			}
			return fb.Present()
		}, nil
	})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("snapshot missing: %v", err)
	}
	if !strings.Contains(log.String(), "snapshot written") {
		t.Fatalf("log = %q", log.String())
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, HeadlessConfig{
		Host: HostConfig{Width: 8, Height: 8},
		Hz:   1,
		Log:  &bytes.Buffer{},
	}, func(h HAL) (func() error, error) {
		return func() error { return nil }, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestTPSFor(t *testing.T) {
	cases := map[time.Duration]int{
		0:                      30,
		33 * time.Millisecond:  30,
		300 * time.Millisecond: 3,
		2 * time.Second:        1,
	}
	for in, want := range cases {
		if got := tpsFor(in); got != want {
			t.Fatalf("tpsFor(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestHostLoopHoldsFailureFrameUntilKey(t *testing.T) {
	h, err := newHost(HostConfig{Width: 4, Height: 4}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("newHost: %v", err)
	}
	boom := errors.New("clock: panic: boom")
	calls := 0
	loop := &hostLoop{kbd: h.kbd, logger: h.logger, step: func() error {
		calls++
		h.fb.Pixels()[0] = 0xFFFFFF
		_ = h.fb.Present()
		return boom
	}}

	for i := 0; i < 3; i++ {
		if err := loop.tick(); err != nil {
			t.Fatalf("tick %d = %v, want nil while holding the failure", i, err)
		}
	}
	if calls != 1 {
		t.Fatalf("step called %d times after failing", calls)
	}
	dst := make([]uint32, 16)
	if seq := h.fb.snapshot(dst); seq != 1 || dst[0] != 0xFFFFFF {
		t.Fatalf("failure frame seq=%d pix=%#x", seq, dst[0])
	}

	h.kbd.push(KeyEvent{Code: KeyEscape, Press: false})
	if err := loop.tick(); err != nil {
		t.Fatalf("release closed the failure screen: %v", err)
	}
	h.kbd.push(KeyEvent{Code: KeyQuit, Press: true})
	if err := loop.tick(); !errors.Is(err, boom) {
		t.Fatalf("tick = %v, want the step failure", err)
	}
}

func TestHostLoopPassesStop(t *testing.T) {
	loop := &hostLoop{kbd: newHostKeyboard(), step: func() error { return ErrStop }}
	if err := loop.tick(); !errors.Is(err, ErrStop) {
		t.Fatalf("tick = %v, want ErrStop", err)
	}
	if loop.failed != nil {
		t.Fatalf("ErrStop recorded as a failure")
	}
}
