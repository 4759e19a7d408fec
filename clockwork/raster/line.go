package raster

const (
	fixedShift = 16
	fixedHalf  = 1 << (fixedShift - 1)
)

// DrawLine rasterizes the segment p1-p2 inclusive of both endpoints.
//
// The dominant axis is stepped one pixel at a time (dx == dy counts as
// x-dominant); the other axis follows a 16.16 fixed-point accumulator biased
// by one half so every plotted pixel is the nearest one to the true segment.
// Endpoints are ordered along the stepped axis first, which makes the pixel set
// independent of argument order: erasing a hand with the reverse segment
// removes exactly what was drawn.
func DrawLine(b *Buffer, c Color, p1, p2 Point) {
	if p1 == p2 {
		b.SetPoint(p1, c)
		return
	}

	dx := absInt(p2.X - p1.X)
	dy := absInt(p2.Y - p1.Y)

	if dx >= dy {
		if p1.X > p2.X {
			p1, p2 = p2, p1
		}
		slope := ((p2.Y - p1.Y) << fixedShift) / dx
		acc := p1.Y<<fixedShift + fixedHalf
		for x := p1.X; x <= p2.X; x++ {
			b.Set(x, acc>>fixedShift, c)
			acc += slope
		}
		return
	}

	if p1.Y > p2.Y {
		p1, p2 = p2, p1
	}
	slope := ((p2.X - p1.X) << fixedShift) / dy
	acc := p1.X<<fixedShift + fixedHalf
	for y := p1.Y; y <= p2.Y; y++ {
		b.Set(acc>>fixedShift, y, c)
		acc += slope
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
