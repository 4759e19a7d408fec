package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no -config flag is given.
const DefaultPath = "clockwork.yaml"

// RedrawStrategy selects how the face is refreshed each second.
type RedrawStrategy string

const (
	// RedrawOnChange rebuilds the face only after a palette change and
	// otherwise erases and redraws the hands.
	RedrawOnChange RedrawStrategy = "full-on-change"
	// RedrawAlways rebuilds the whole face every second.
	RedrawAlways RedrawStrategy = "always-full"
)

// Config represents the optional clockwork.yaml configuration.
type Config struct {
	Window Window `yaml:"window"`
	Clock  Clock  `yaml:"clock"`
}

// Window describes the display surface.
type Window struct {
	Width     int    `yaml:"width,omitempty"`
	Height    int    `yaml:"height,omitempty"`
	Title     string `yaml:"title,omitempty"`
	Scale     int    `yaml:"scale,omitempty"`
	Frameless bool   `yaml:"frameless,omitempty"`
}

// Clock controls the frame loop.
type Clock struct {
	Scheme       int            `yaml:"scheme,omitempty"`
	Strategy     RedrawStrategy `yaml:"redraw_strategy,omitempty"`
	FrameCapMS   int            `yaml:"frame_cap_ms,omitempty"`
	QuitOnAnyKey bool           `yaml:"quit_on_any_key,omitempty"`
	Location     string         `yaml:"location,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:  600,
			Height: 600,
			Title:  "A Clockwork Orange",
			Scale:  1,
		},
		Clock: Clock{
			Scheme:     1,
			Strategy:   RedrawOnChange,
			FrameCapMS: 33,
		},
	}
}

// LoadOptional reads path if present, layering it over Default.
// A missing file is not an error.
func LoadOptional(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.Clock.Strategy = RedrawStrategy(strings.TrimSpace(string(cfg.Clock.Strategy)))
	cfg.Clock.Location = strings.TrimSpace(cfg.Clock.Location)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window scale must be positive, got %d", c.Window.Scale)
	}
	return c.Clock.Validate()
}

func (c Clock) Validate() error {
	if c.Scheme < 1 || c.Scheme > 6 {
		return fmt.Errorf("clock scheme must be 1..6, got %d", c.Scheme)
	}
	switch c.Strategy {
	case RedrawOnChange, RedrawAlways:
	default:
		return fmt.Errorf("unknown redraw strategy %q", c.Strategy)
	}
	if c.FrameCapMS <= 0 || c.FrameCapMS > 1000 {
		return fmt.Errorf("frame cap must be 1..1000 ms, got %d", c.FrameCapMS)
	}
	if _, err := c.TimeLocation(); err != nil {
		return err
	}
	return nil
}

// FrameCap is the interval between loop iterations.
func (c Clock) FrameCap() time.Duration {
	return time.Duration(c.FrameCapMS) * time.Millisecond
}

// TimeLocation resolves Location; empty means the host's local zone.
func (c Clock) TimeLocation() (*time.Location, error) {
	if c.Location == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return nil, fmt.Errorf("clock location %q: %w", c.Location, err)
	}
	return loc, nil
}
