package raster

import "image"

// Buffer is a fixed-size pixel array.
type Buffer struct {
	w   int
	h   int
	pix []uint32
}

// NewBuffer allocates a w×h buffer cleared to black.
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Buffer{w: w, h: h, pix: make([]uint32, w*h)}
}

// Wrap draws into a caller-owned backing slice (typically a display's back buffer).
//
// pix must hold at least w*h entries; shorter slices shrink the height.
func Wrap(w, h int, pix []uint32) *Buffer {
	if w <= 0 || h <= 0 {
		return &Buffer{}
	}
	if len(pix) < w*h {
		h = len(pix) / w
	}
	return &Buffer{w: w, h: h, pix: pix[:w*h]}
}

func (b *Buffer) Width() int  { return b.w }
func (b *Buffer) Height() int { return b.h }

// Pix exposes the backing slice, row-major, stride == Width.
func (b *Buffer) Pix() []uint32 { return b.pix }

// Set writes c at (x, y). Out-of-range coordinates are ignored.
func (b *Buffer) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	b.pix[y*b.w+x] = uint32(c)
}

func (b *Buffer) SetPoint(p Point, c Color) { b.Set(p.X, p.Y, c) }

// At returns the color at (x, y) and whether the coordinate is inside the buffer.
func (b *Buffer) At(x, y int) (Color, bool) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return 0, false
	}
	return Color(b.pix[y*b.w+x]), true
}

func (b *Buffer) Clear(c Color) {
	v := uint32(c)
	for i := range b.pix {
		b.pix[i] = v
	}
}

// ToRGBA converts the buffer into dst, reallocating when the size differs.
func (b *Buffer) ToRGBA(dst *image.RGBA) *image.RGBA {
	if dst == nil || dst.Bounds().Dx() != b.w || dst.Bounds().Dy() != b.h {
		dst = image.NewRGBA(image.Rect(0, 0, b.w, b.h))
	}
	for y := 0; y < b.h; y++ {
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < b.w; x++ {
			r, g, bb := Color(b.pix[y*b.w+x]).RGB()
			j := x * 4
			row[j+0] = r
			row[j+1] = g
			row[j+2] = bb
			row[j+3] = 0xFF
		}
	}
	return dst
}
