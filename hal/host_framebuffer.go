//go:build !tinygo

package hal

import "sync"

// hostFramebuffer is double-buffered: the app draws into back, Present copies
// it to front, and the window or snapshot writer only ever reads front.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	back   []uint32
	front  []uint32
	frames uint64
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	return &hostFramebuffer{
		width:  width,
		height: height,
		back:   make([]uint32, width*height),
		front:  make([]uint32, width*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB888 }
func (f *hostFramebuffer) Pixels() []uint32    { return f.back }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.back)
	f.frames++
	return nil
}

// snapshot copies the last presented frame into dst and returns its sequence
// number (0 until the first Present).
func (f *hostFramebuffer) snapshot(dst []uint32) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
	return f.frames
}

func (f *hostFramebuffer) presented() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames
}
