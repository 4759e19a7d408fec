package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"clockorange/clockwork/dial"
	"clockorange/clockwork/raster"
)

func main() {
	var (
		outPath = flag.String("out", "clock.bmp", "Output file (.bmp or .png).")
		at      = flag.String("time", "", "Time of day as 15:04:05 (default: now).")
		width   = flag.Int("width", 600, "Face width in pixels.")
		height  = flag.Int("height", 600, "Face height in pixels.")
		scheme  = flag.Int("scheme", 1, "Color scheme 1-6.")
	)
	flag.Parse()

	pal, ok := dial.Scheme(*scheme)
	if !ok {
		fatalf("unknown scheme: %d", *scheme)
	}
	if *width <= 0 || *height <= 0 {
		fatalf("invalid size: %dx%d", *width, *height)
	}

	h, m, s := time.Now().Clock()
	if *at != "" {
		t, err := time.Parse("15:04:05", *at)
		if err != nil {
			fatalf("parse -time: %v", err)
		}
		h, m, s = t.Clock()
	}

	b := render(*width, *height, pal, h, m, s)
	if err := raster.WriteFile(*outPath, b); err != nil {
		fatalf("write: %v", err)
	}
}

func render(w, h int, pal dial.Palette, hour, minute, second int) *raster.Buffer {
	b := raster.NewBuffer(w, h)
	g := dial.NewGeometry(w, h)
	dial.BuildFace(b, pal, g)
	g.HandsFor(dial.AnglesAt(hour, minute, second)).Draw(b, g.Origin, pal)
	return b
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
