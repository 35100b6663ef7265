// Package config loads overlay settings from defaults, an optional YAML
// file and the environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/commentscreen/internal/domain"
)

// Surface kinds.
const (
	SurfaceWindow   = "window"
	SurfaceTerminal = "terminal"
)

// Config holds every recognized option.
type Config struct {
	TickIntervalMs        int     `yaml:"tick_interval_ms" env:"TICK_INTERVAL_MS"`
	LaneHeight            int     `yaml:"lane_height" env:"LANE_HEIGHT"`
	LaneWidth             int     `yaml:"lane_width" env:"LANE_WIDTH"`
	ScrollSpeed           int     `yaml:"scroll_speed_px_per_tick" env:"SCROLL_SPEED"`
	WrapPolicy            string  `yaml:"wrap_policy" env:"WRAP_POLICY"`
	FontSize              float64 `yaml:"font_size" env:"FONT_SIZE"`
	TextColor             string  `yaml:"text_color" env:"TEXT_COLOR"`
	BackgroundTransparent bool    `yaml:"background_transparent" env:"BACKGROUND_TRANSPARENT"`
	ClickThrough          bool    `yaml:"click_through" env:"CLICK_THROUGH"`
	Topmost               bool    `yaml:"topmost" env:"TOPMOST"`
	AllWorkspaces         bool    `yaml:"all_workspaces" env:"ALL_WORKSPACES"`
	ArrivalChime          bool    `yaml:"arrival_chime" env:"ARRIVAL_CHIME"`
	Surface               string  `yaml:"surface" env:"SURFACE"`
	PreviewWidth          int     `yaml:"preview_width"`
	PreviewHeight         int     `yaml:"preview_height"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		TickIntervalMs:        50,
		LaneHeight:            60,
		LaneWidth:             400,
		ScrollSpeed:           10,
		WrapPolicy:            "loop",
		FontSize:              36,
		TextColor:             "white",
		BackgroundTransparent: true,
		ClickThrough:          true,
		Topmost:               true,
		AllWorkspaces:         true,
		ArrivalChime:          false,
		Surface:               SurfaceWindow,
		PreviewWidth:          1920,
		PreviewHeight:         1080,
	}
}

// Load returns the defaults overlaid with the YAML file at path and then
// with the environment. A missing file is not an error; an empty path
// skips the file. The result is not validated, so callers can apply flag
// overrides first and then call Validate.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("reading %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing %s: %w", path, err)
			}
		}
	}

	if err := cfg.ApplyEnv(nil); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first invalid option.
func (c Config) Validate() error {
	switch {
	case c.TickIntervalMs <= 0:
		return fmt.Errorf("tick_interval_ms must be positive, got %d", c.TickIntervalMs)
	case c.LaneWidth <= 0 || c.LaneHeight <= 0:
		return fmt.Errorf("lane size must be positive, got %dx%d", c.LaneWidth, c.LaneHeight)
	case c.ScrollSpeed <= 0:
		return fmt.Errorf("scroll_speed_px_per_tick must be positive, got %d", c.ScrollSpeed)
	case c.FontSize <= 0:
		return fmt.Errorf("font_size must be positive, got %g", c.FontSize)
	case c.Surface != SurfaceWindow && c.Surface != SurfaceTerminal:
		return fmt.Errorf("unknown surface %q", c.Surface)
	case c.PreviewWidth <= 0 || c.PreviewHeight <= 0:
		return fmt.Errorf("preview size must be positive, got %dx%d", c.PreviewWidth, c.PreviewHeight)
	}
	if _, err := domain.ParseWrapPolicy(c.WrapPolicy); err != nil {
		return err
	}
	if _, err := ParseColor(c.TextColor); err != nil {
		return err
	}
	return nil
}

// TickInterval returns the tick cadence.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// Wrap returns the parsed wrap policy. Call Validate first.
func (c Config) Wrap() domain.WrapPolicy {
	p, _ := domain.ParseWrapPolicy(c.WrapPolicy)
	return p
}

// Style returns the default comment style. Call Validate first.
func (c Config) Style() domain.Style {
	clr, err := ParseColor(c.TextColor)
	if err != nil {
		clr = color.White
	}
	return domain.Style{FontSize: c.FontSize, Color: clr}
}

// SurfaceOptions returns the window attributes to request.
func (c Config) SurfaceOptions() domain.SurfaceOptions {
	return domain.SurfaceOptions{
		Transparent:   c.BackgroundTransparent,
		ClickThrough:  c.ClickThrough,
		Topmost:       c.Topmost,
		AllWorkspaces: c.AllWorkspaces,
	}
}

// PreviewRegion returns the virtual screen used by the terminal preview.
func (c Config) PreviewRegion() domain.Rect {
	return domain.Rect{Width: c.PreviewWidth, Height: c.PreviewHeight}
}

var namedColors = map[string]color.Color{
	"white":  color.White,
	"black":  color.Black,
	"red":    color.RGBA{R: 0xff, A: 0xff},
	"green":  color.RGBA{G: 0xff, A: 0xff},
	"blue":   color.RGBA{B: 0xff, A: 0xff},
	"yellow": color.RGBA{R: 0xff, G: 0xff, A: 0xff},
	"cyan":   color.RGBA{G: 0xff, B: 0xff, A: 0xff},
}

// ParseColor accepts a color name or a #rrggbb / #rgb hex string.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
