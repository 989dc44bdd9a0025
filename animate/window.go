package animate

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"

	"pointsphere/canvas"
)

// WindowDriver runs the animation in a desktop window, ticking once per
// ebiten update. Run must be called from the main goroutine.
type WindowDriver struct {
	stopper

	canvas *canvas.Window
	title  string
	tps    int
}

// NewWindowDriver returns a driver presenting c in a window titled title.
func NewWindowDriver(c *canvas.Window, title string, tps int) *WindowDriver {
	return &WindowDriver{stopper: newStopper(), canvas: c, title: title, tps: tps}
}

// Run blocks until the window closes, Stop is called or ctx is done.
func (d *WindowDriver) Run(ctx context.Context, tick func() error) error {
	w, h := d.canvas.Layout()
	ebiten.SetWindowTitle(d.title)
	ebiten.SetWindowSize(w, h)
	if d.tps > 0 {
		ebiten.SetTPS(d.tps)
	}
	if err := ebiten.RunGame(&windowGame{ctx: ctx, d: d, tick: tick}); err != nil {
		return err
	}
	return ctx.Err()
}

type windowGame struct {
	ctx  context.Context
	d    *WindowDriver
	tick func() error
}

func (g *windowGame) Update() error {
	if g.ctx.Err() != nil || g.d.stopped() {
		return ebiten.Termination
	}
	return g.tick()
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	g.d.canvas.Draw(screen)
}

func (g *windowGame) Layout(_, _ int) (int, int) {
	return g.d.canvas.Layout()
}
