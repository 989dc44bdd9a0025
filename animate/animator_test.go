package animate

import (
	"context"
	"image/color"
	"math"
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"go.viam.com/test"

	"pointsphere/sphere"
)

type fakeCanvas struct {
	width, height float64
	clears        int
	dots          int
	presents      int
	caption       string
	presentErr    error
}

func (c *fakeCanvas) Size() (float64, float64)               { return c.width, c.height }
func (c *fakeCanvas) Clear()                                 { c.clears++; c.dots = 0 }
func (c *fakeCanvas) DrawDot(_, _, _ float64, _ color.Color) { c.dots++ }
func (c *fakeCanvas) SetCaption(text string)                 { c.caption = text }
func (c *fakeCanvas) Present() error                         { c.presents++; return c.presentErr }

func newTestAnimator(t *testing.T) (*Animator, *sphere.PointSphere, *fakeCanvas) {
	t.Helper()
	s, err := sphere.New(20)
	test.That(t, err, test.ShouldBeNil)
	c := &fakeCanvas{width: 420, height: 420}
	return NewAnimator(s, c, zaptest.NewLogger(t).Sugar()), s, c
}

func TestAnimatorTick(t *testing.T) {
	a, s, c := newTestAnimator(t)

	test.That(t, a.Tick(), test.ShouldBeNil)
	test.That(t, s.Distance(), test.ShouldEqual, sphere.DistanceStep)
	test.That(t, s.Rotation(), test.ShouldAlmostEqual, sphere.RotationStep, 1e-12)
	test.That(t, c.clears, test.ShouldEqual, 1)
	test.That(t, c.presents, test.ShouldEqual, 1)
	test.That(t, c.dots, test.ShouldEqual, a.Drawn())
	test.That(t, a.Drawn(), test.ShouldEqual, s.Len())
	test.That(t, a.Frames(), test.ShouldEqual, uint64(1))
	test.That(t, c.caption, test.ShouldEqual, "")
}

func TestAnimatorHUD(t *testing.T) {
	a, _, c := newTestAnimator(t)
	a.SetHUD(true)

	test.That(t, a.Tick(), test.ShouldBeNil)
	test.That(t, a.Tick(), test.ShouldBeNil)
	test.That(t, c.caption, test.ShouldContainSubstring, "Frame: 2")
	test.That(t, c.caption, test.ShouldContainSubstring, "Distance: 20")
	test.That(t, c.caption, test.ShouldEqual, a.Status())
}

func TestAnimatorPresentError(t *testing.T) {
	a, _, c := newTestAnimator(t)
	c.presentErr = errors.New("broken pipe")

	err := a.Tick()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "presenting frame 1")
	test.That(t, errors.Cause(err), test.ShouldEqual, c.presentErr)
}

func TestAnimatorLogsSaturationOnce(t *testing.T) {
	s, err := sphere.New(20)
	test.That(t, err, test.ShouldBeNil)
	core, logs := observer.New(zap.DebugLevel)
	a := NewAnimator(s, &fakeCanvas{width: 420, height: 420}, zap.New(core).Sugar())

	for i := 0; i < 150; i++ {
		test.That(t, a.Tick(), test.ShouldBeNil)
	}
	entries := logs.FilterMessage("view distance saturated").All()
	test.That(t, entries, test.ShouldHaveLength, 1)
	test.That(t, entries[0].ContextMap()["frame"], test.ShouldEqual, uint64(100))
}

func TestAnimatorHundredFrames(t *testing.T) {
	a, s, _ := newTestAnimator(t)

	test.That(t, a.Run(context.Background(), NewFrames(100)), test.ShouldBeNil)
	test.That(t, a.Frames(), test.ShouldEqual, uint64(100))
	test.That(t, s.Distance(), test.ShouldEqual, 1000.0)
	test.That(t, s.Rotation(), test.ShouldAlmostEqual, 100*math.Pi/360, 1e-9)
	test.That(t, s.Rotation(), test.ShouldAlmostEqual, 0.8727, 1e-4)
}
