package animate

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"pointsphere/sphere"
)

// Captioner is implemented by canvases that can show a status line.
type Captioner interface {
	SetCaption(text string)
}

// Animator advances and renders one sphere onto one canvas.
type Animator struct {
	sphere *sphere.PointSphere
	canvas sphere.Canvas
	logger *zap.SugaredLogger

	hud       bool
	frames    uint64
	drawn     int
	saturated bool
}

// NewAnimator returns an Animator for s drawing onto c.
func NewAnimator(s *sphere.PointSphere, c sphere.Canvas, logger *zap.SugaredLogger) *Animator {
	return &Animator{sphere: s, canvas: c, logger: logger}
}

// SetHUD toggles the status line on canvases that support one.
func (a *Animator) SetHUD(on bool) { a.hud = on }

// Frames returns the number of completed ticks.
func (a *Animator) Frames() uint64 { return a.frames }

// Drawn returns how many dots the last frame drew.
func (a *Animator) Drawn() int { return a.drawn }

// Tick advances the sphere one frame, then redraws it.
func (a *Animator) Tick() error {
	a.sphere.Advance()
	a.canvas.Clear()
	a.drawn = a.sphere.RenderFrame(a.canvas)
	a.frames++

	if !a.saturated && a.sphere.Saturated() {
		a.saturated = true
		a.logger.Debugw("view distance saturated", "frame", a.frames, "distance", a.sphere.Distance())
	}

	if a.hud {
		if c, ok := a.canvas.(Captioner); ok {
			c.SetCaption(a.Status())
		}
	}

	if p, ok := a.canvas.(sphere.Presenter); ok {
		if err := p.Present(); err != nil {
			return errors.Wrapf(err, "presenting frame %d", a.frames)
		}
	}
	return nil
}

// Status summarises the current animation state.
func (a *Animator) Status() string {
	return fmt.Sprintf("Points: %d | Drawn: %d | Angle: %.3f | Distance: %.0f | Frame: %d",
		a.sphere.Len(), a.drawn, a.sphere.Rotation(), a.sphere.Distance(), a.frames)
}

// Run hands Tick to d and blocks until d stops.
func (a *Animator) Run(ctx context.Context, d Driver) error {
	a.logger.Infow("animation started", "points", a.sphere.Len(), "radius", a.sphere.Radius())
	err := d.Run(ctx, a.Tick)
	a.logger.Infow("animation stopped", "frames", a.frames)
	return err
}
