package dial

import (
	"math"

	"clockorange/clockwork/raster"
)

// OutlinePoints is the number of steps around the outline. At the default
// 600px face (radius 270) it leaves no gaps wider than a pixel.
const OutlinePoints = 2160

const ticks = 60

// BuildFace clears b to pal.BG and draws the outline and the 60 ticks in pal.FG.
func BuildFace(b *raster.Buffer, pal Palette, g Geometry) {
	b.Clear(pal.BG)

	for i := 0; i <= OutlinePoints; i++ {
		theta := float64(i) * 2 * math.Pi / OutlinePoints
		b.SetPoint(g.Polar(theta, OutlineRadius), pal.FG)
	}

	for i := 0; i < ticks; i++ {
		inner := MinorTickInner
		if i%5 == 0 {
			inner = MajorTickInner
		}
		theta := float64(i) * 2 * math.Pi / ticks
		raster.DrawLine(b, pal.FG, g.Polar(theta, inner), g.Polar(theta, OutlineRadius))
	}
}
