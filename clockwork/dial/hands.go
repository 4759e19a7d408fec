package dial

import "clockorange/clockwork/raster"

// Hands are the current hand endpoints; each hand is a segment from the origin.
type Hands struct {
	Second raster.Point
	Minute raster.Point
	Hour   raster.Point
}

// RestingHands collapses every hand onto the origin. Drawing or erasing them
// touches only the origin pixel.
func RestingHands(g Geometry) Hands {
	return Hands{Second: g.Origin, Minute: g.Origin, Hour: g.Origin}
}

// HandsFor computes the endpoints for a set of angles.
func (g Geometry) HandsFor(a Angles) Hands {
	return Hands{
		Second: g.Polar(a.Second, SecondHandLen),
		Minute: g.Polar(a.Minute, MinuteHandLen),
		Hour:   g.Polar(a.Hour, HourHandLen),
	}
}

// Draw paints the second hand in the accent color, then minute and hour in
// the foreground color.
func (h Hands) Draw(b *raster.Buffer, origin raster.Point, pal Palette) {
	raster.DrawLine(b, pal.AC, origin, h.Second)
	raster.DrawLine(b, pal.FG, origin, h.Minute)
	raster.DrawLine(b, pal.FG, origin, h.Hour)
}

// Erase overwrites the three hands with bg.
func (h Hands) Erase(b *raster.Buffer, origin raster.Point, bg raster.Color) {
	raster.DrawLine(b, bg, origin, h.Second)
	raster.DrawLine(b, bg, origin, h.Minute)
	raster.DrawLine(b, bg, origin, h.Hour)
}
