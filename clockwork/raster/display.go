package raster

import (
	"image/color"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Buffer)(nil)

func (b *Buffer) Size() (x, y int16) { return int16(b.w), int16(b.h) }

func (b *Buffer) SetPixel(x, y int16, c color.RGBA) { b.Set(int(x), int(y), FromRGBA(c)) }

// Display is a no-op; presenting belongs to whoever owns the framebuffer.
func (b *Buffer) Display() error { return nil }
