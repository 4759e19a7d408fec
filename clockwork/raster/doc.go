// Package raster provides the pixel buffer and line primitive the clock draws with.
//
// A Buffer is a flat row-major array of packed 0xRRGGBB values. Writes outside
// the buffer are dropped silently; that is the only clipping there is. Lines are
// stepped with a 16.16 fixed-point accumulator so repeated erase/redraw cycles
// always touch the same pixels.
package raster
