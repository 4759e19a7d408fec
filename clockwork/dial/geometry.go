package dial

import (
	"math"

	"clockorange/clockwork/raster"
)

// Radii as fractions of the buffer dimension (x scales with width, y with height).
const (
	OutlineRadius  = 0.45
	MajorTickInner = 0.41
	MinorTickInner = 0.43
	SecondHandLen  = 0.4
	MinuteHandLen  = 0.4
	HourHandLen    = 0.25
)

// Geometry is the fixed layout of a face on a w×h buffer.
type Geometry struct {
	Width  int
	Height int
	Origin raster.Point
}

func NewGeometry(w, h int) Geometry {
	return Geometry{Width: w, Height: h, Origin: raster.Pt(w/2, h/2)}
}

// Polar returns the pixel at angle theta and radius fraction frac from the origin.
// Coordinates truncate toward zero.
func (g Geometry) Polar(theta, frac float64) raster.Point {
	return raster.Pt(
		int(math.Cos(theta)*float64(g.Width)*frac+float64(g.Origin.X)),
		int(math.Sin(theta)*float64(g.Height)*frac+float64(g.Origin.Y)),
	)
}
