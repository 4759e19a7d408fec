package dial

import "clockorange/clockwork/raster"

const (
	Orange raster.Color = 0xFF8800
	Black  raster.Color = 0x000000
	White  raster.Color = 0xFFFFFF
)

// Palette holds the three colors of a face: background, foreground (outline,
// ticks, minute and hour hands) and accent (second hand).
type Palette struct {
	BG, FG, AC raster.Color
}

// Schemes are every permutation of {Orange, Black, White}, selected by keys 1..6.
var Schemes = [6]Palette{
	{BG: Orange, FG: Black, AC: White},
	{BG: Black, FG: Orange, AC: White},
	{BG: White, FG: Orange, AC: Black},
	{BG: Orange, FG: White, AC: Black},
	{BG: Black, FG: White, AC: Orange},
	{BG: White, FG: Black, AC: Orange},
}

// Scheme returns the 1-based scheme n.
func Scheme(n int) (Palette, bool) {
	if n < 1 || n > len(Schemes) {
		return Palette{}, false
	}
	return Schemes[n-1], true
}

// SchemeForKey maps the digit keys '1'..'6' to their scheme number.
func SchemeForKey(r rune) (int, bool) {
	if r < '1' || r > '0'+rune(len(Schemes)) {
		return 0, false
	}
	return int(r - '0'), true
}
