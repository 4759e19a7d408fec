//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"clockorange/clockwork/raster"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Host    HostConfig
	Hz      int
	Ticks   uint64
	// Keys are fed to the keyboard one rune per tick, starting with the first.
	Keys string
	// Snapshot, if set, receives the last presented frame (BMP or PNG by extension).
	Snapshot string
	// Log defaults to stdout.
	Log io.Writer
}

// RunHeadless runs the app without opening a window.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, newApp NewAppFunc) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	if cfg.Log == nil {
		cfg.Log = os.Stdout
	}

	h, err := newHost(cfg.Host, cfg.Log)
	if err != nil {
		return err
	}
	step, err := newApp(h)
	if err != nil {
		return err
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	keys := []rune(cfg.Keys)
	runErr := func() error {
		var tick uint64
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-t.C:
				if len(keys) > 0 {
					h.kbd.pushRune(keys[0])
					keys = keys[1:]
				}
				if step != nil {
					if err := step(); err != nil {
						if errors.Is(err, ErrStop) {
							return nil
						}
						return err
					}
				}
				tick++
				if cfg.Ticks > 0 && tick >= cfg.Ticks {
					return nil
				}
			}
		}
	}()

	if cfg.Snapshot != "" {
		if err := writeSnapshot(cfg.Snapshot, h.fb); err != nil {
			return errors.Join(runErr, err)
		}
		h.logger.WriteLineString("headless: snapshot written to " + cfg.Snapshot)
	}
	return runErr
}

func writeSnapshot(path string, fb *hostFramebuffer) error {
	pix := make([]uint32, fb.width*fb.height)
	if fb.snapshot(pix) == 0 {
		return fmt.Errorf("snapshot %s: no frame presented", path)
	}
	return raster.WriteFile(path, raster.Wrap(fb.width, fb.height, pix))
}
