// Package config holds the run configuration of the pointsphere command.
package config

import (
	"math"

	"github.com/pkg/errors"
)

// Mode selects the host surface the sphere is rendered on.
type Mode string

const (
	ModeTerminal Mode = "term"
	ModeWindow   Mode = "window"
	ModeGIF      Mode = "gif"
	ModePNG      Mode = "png"
)

// Canvas size of the reference demo.
const (
	DefaultWidth  = 420
	DefaultHeight = 420
)

// Config describes one run.
type Config struct {
	Mode     Mode
	Radius   float64
	Width    int
	Height   int
	FPS      int
	Frames   int // 0 runs the live modes until stopped
	Out      string
	HUD      bool
	LogLevel string
}

// Default returns the reference demo configuration.
func Default() Config {
	return Config{
		Mode:     ModeTerminal,
		Radius:   20,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		FPS:      60,
		LogLevel: "info",
	}
}

// Normalize fills mode dependent defaults left unset.
func (c *Config) Normalize() {
	switch c.Mode {
	case ModeGIF:
		if c.Frames == 0 {
			c.Frames = 200
		}
		if c.Out == "" {
			c.Out = "sphere.gif"
		}
	case ModePNG:
		if c.Frames == 0 {
			c.Frames = 1
		}
		if c.Out == "" {
			c.Out = "frames"
		}
	}
}

// Exporting reports whether the mode renders offline to files.
func (c Config) Exporting() bool {
	return c.Mode == ModeGIF || c.Mode == ModePNG
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeTerminal, ModeWindow, ModeGIF, ModePNG:
	default:
		return errors.Errorf("unknown mode %q (want term, window, gif or png)", c.Mode)
	}
	if c.Radius <= 0 || math.IsNaN(c.Radius) || math.IsInf(c.Radius, 0) {
		return errors.Errorf("radius must be a positive finite number, got %v", c.Radius)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("canvas size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return errors.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Frames < 0 {
		return errors.Errorf("frames must not be negative, got %d", c.Frames)
	}
	if c.Exporting() {
		if c.Frames == 0 {
			return errors.Errorf("%s export needs at least one frame", c.Mode)
		}
		if c.Out == "" {
			return errors.Errorf("%s export needs an output path", c.Mode)
		}
	}
	return nil
}
