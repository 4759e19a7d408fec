package app

import (
	"fmt"
	"strings"

	"clockorange/clockwork/raster"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// showPanic logs a recovered panic and paints it over the face so a windowed
// run does not just freeze on the last frame.
func (c *clock) showPanic(v any, stack []byte) {
	c.log(fmt.Sprintf("Clock Panic: %v", v))
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		c.log(line)
	}

	lines := []string{
		"Clock Panic:",
		fmt.Sprintf("%v", v),
	}
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
	}

	bg, fg := c.pal.FG, c.pal.BG
	c.buf.Clear(bg)
	drawLines(c.buf, lines, fg)
	_ = c.fb.Present()
}

func drawLines(b *raster.Buffer, lines []string, fg raster.Color) {
	font := &proggy.TinySZ8pt7b
	lineHeight := int16(font.GetYAdvance())
	if lineHeight <= 0 {
		lineHeight = 10
	}
	_, maxH := b.Size()
	c := fg.RGBA()

	y := lineHeight
	for _, line := range lines {
		if y > maxH {
			return
		}
		tinyfont.WriteLine(b, font, 2, y, line, c)
		y += lineHeight
	}
}
