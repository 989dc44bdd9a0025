package animate

import (
	"context"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"go.viam.com/test"

	"pointsphere/canvas"
)

func TestWindowGameUpdate(t *testing.T) {
	d := NewWindowDriver(canvas.NewWindow(420, 420), "sphere", 60)
	n := 0
	g := &windowGame{ctx: context.Background(), d: d, tick: func() error { n++; return nil }}

	w, h := g.Layout(1000, 800)
	test.That(t, w, test.ShouldEqual, 420)
	test.That(t, h, test.ShouldEqual, 420)

	test.That(t, g.Update(), test.ShouldBeNil)
	test.That(t, g.Update(), test.ShouldBeNil)
	test.That(t, n, test.ShouldEqual, 2)

	d.Stop()
	test.That(t, g.Update(), test.ShouldEqual, ebiten.Termination)
	test.That(t, n, test.ShouldEqual, 2)
}

func TestWindowGameUpdateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := NewWindowDriver(canvas.NewWindow(420, 420), "sphere", 60)
	g := &windowGame{ctx: ctx, d: d, tick: func() error { t.Error("tick after cancel"); return nil }}
	test.That(t, g.Update(), test.ShouldEqual, ebiten.Termination)
}
