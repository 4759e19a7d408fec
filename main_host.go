//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"clockorange/app"
	"clockorange/hal"
	"clockorange/internal/config"
)

func main() {
	var (
		cfgPath  string
		headless hal.HeadlessConfig
	)
	flag.StringVar(&cfgPath, "config", config.DefaultPath, "YAML config file (optional).")
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&headless.Keys, "keys", "", "Keys to feed in headless mode, one per tick.")
	flag.StringVar(&headless.Snapshot, "snapshot", "", "Write the last frame to this .bmp/.png on exit (headless).")
	width := flag.Int("width", 0, "Override window.width.")
	height := flag.Int("height", 0, "Override window.height.")
	scheme := flag.Int("scheme", 0, "Override clock.scheme (1-6).")
	flag.Parse()

	cfg, err := config.LoadOptional(cfgPath)
	if err != nil {
		fatalf("config: %v", err)
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if *scheme != 0 {
		cfg.Clock.Scheme = *scheme
	}
	if err := cfg.Validate(); err != nil {
		fatalf("config: %v", err)
	}
	loc, err := cfg.Clock.TimeLocation()
	if err != nil {
		fatalf("config: %v", err)
	}

	host := hal.HostConfig{Width: cfg.Window.Width, Height: cfg.Window.Height, Location: loc}
	newApp := func(h hal.HAL) (func() error, error) {
		return app.New(h, cfg.Clock)
	}

	if headless.Enabled {
		headless.Host = host
		headless.Hz = int(time.Second / cfg.Clock.FrameCap())
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, headless, newApp); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(hal.WindowConfig{
		Host:      host,
		Title:     cfg.Window.Title,
		Scale:     cfg.Window.Scale,
		Frameless: cfg.Window.Frameless,
		FrameCap:  cfg.Clock.FrameCap(),
	}, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
