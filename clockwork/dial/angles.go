package dial

import (
	"math"
	"time"
)

// Angles are the three hand angles in radians; -π/2 is twelve o'clock.
type Angles struct {
	Second float64
	Minute float64
	Hour   float64
}

// AnglesAt maps hour (0-23), minute and second to hand angles. The minute hand
// carries the elapsed seconds and the hour hand the elapsed minutes and seconds,
// so both sweep instead of jumping at the top of each unit.
func AnglesAt(hour, minute, second int) Angles {
	s := float64(second)
	m := float64(minute)
	h := float64(((hour % 12) + 12) % 12)

	return Angles{
		Second: turn(s / 60),
		Minute: turn((m + s/60) / 60),
		Hour:   turn((h + m/60 + s/3600) / 12),
	}
}

// AnglesFor reads the calendar clock of t in its own location.
func AnglesFor(t time.Time) Angles {
	h, m, s := t.Clock()
	return AnglesAt(h, m, s)
}

// turn converts a fraction of a revolution into an angle offset to twelve o'clock.
func turn(frac float64) float64 {
	return 2*math.Pi*frac - math.Pi/2
}
