package canvas

import (
	"image"
	"testing"

	"go.viam.com/test"

	"pointsphere/sphere"
)

type countingSink struct {
	frames []image.Image
}

func (s *countingSink) AddFrame(img image.Image) error {
	s.frames = append(s.frames, img)
	return nil
}

func rgbAt(img image.Image, x, y int) [3]uint32 {
	r, g, b, _ := img.At(x, y).RGBA()
	return [3]uint32{r >> 8, g >> 8, b >> 8}
}

func TestImageCanvas(t *testing.T) {
	c := NewImage(420, 420)
	w, h := c.Size()
	test.That(t, w, test.ShouldEqual, 420.0)
	test.That(t, h, test.ShouldEqual, 420.0)
	test.That(t, rgbAt(c.Image(), 210, 210), test.ShouldResemble, [3]uint32{0, 0, 0})

	c.DrawDot(210.5, 210.5, 2, sphere.NearColor)
	test.That(t, rgbAt(c.Image(), 210, 210), test.ShouldResemble, [3]uint32{255, 255, 255})
	test.That(t, rgbAt(c.Image(), 100, 100), test.ShouldResemble, [3]uint32{0, 0, 0})

	c.DrawDot(50.5, 50.5, 2, sphere.FarColor)
	far := rgbAt(c.Image(), 50, 50)
	test.That(t, int(far[0]), test.ShouldBeBetweenOrEqual, 118, 122)

	c.Clear()
	test.That(t, rgbAt(c.Image(), 210, 210), test.ShouldResemble, [3]uint32{0, 0, 0})
}

func TestImagePresent(t *testing.T) {
	c := NewImage(64, 64)
	test.That(t, c.Present(), test.ShouldBeNil)

	sink := &countingSink{}
	c.SetSink(sink)
	test.That(t, c.Present(), test.ShouldBeNil)
	test.That(t, c.Present(), test.ShouldBeNil)
	test.That(t, sink.frames, test.ShouldHaveLength, 2)
}

func TestImageCaption(t *testing.T) {
	c := NewImage(200, 60)
	c.SetCaption("frame 12")
	test.That(t, c.Present(), test.ShouldBeNil)

	lit := 0
	img := c.Image()
	for y := 0; y < 30; y++ {
		for x := 0; x < 100; x++ {
			if rgbAt(img, x, y) != [3]uint32{0, 0, 0} {
				lit++
			}
		}
	}
	test.That(t, lit, test.ShouldBeGreaterThan, 0)
}
