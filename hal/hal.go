package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrNotImplemented reports a runner or device missing from this build.
var ErrNotImplemented = errors.New("not implemented")

// ErrStop is returned by an app step to end the run loop cleanly.
var ErrStop = errors.New("stop requested")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB888 is one uint32 per pixel: 0x00rrggbb.
	PixelFormatRGB888 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// Callers draw into Pixels (row-major, stride == Width) and call Present
// once the frame is complete.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	Pixels() []uint32
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeyEnter
	// KeyQuit is synthesized when the window is asked to close.
	KeyQuit
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Clock reads wall-clock time.
type Clock interface {
	Now() time.Time
}

// HAL provides the only contact point between the app and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Clock() Clock
}
