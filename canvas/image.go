package canvas

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

var font *truetype.Font

func init() {
	var err error
	font, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
}

// FrameSink receives every completed frame of an Image canvas. The image is
// reused for the next frame, so sinks must copy or encode it before returning.
type FrameSink interface {
	AddFrame(img image.Image) error
}

// Image is an in-memory canvas backed by a gg context.
type Image struct {
	dc       *gg.Context
	sink     FrameSink
	caption  string
	fontSize float64
}

// NewImage returns a black canvas of the given pixel size.
func NewImage(width, height int) *Image {
	c := &Image{
		dc:       gg.NewContext(width, height),
		fontSize: 12,
	}
	c.Clear()
	return c
}

// SetSink routes presented frames to s. A nil sink drops them.
func (c *Image) SetSink(s FrameSink) { c.sink = s }

// SetCaption sets the HUD text drawn on the next Present.
func (c *Image) SetCaption(text string) { c.caption = text }

func (c *Image) Size() (float64, float64) {
	return float64(c.dc.Width()), float64(c.dc.Height())
}

func (c *Image) Clear() {
	c.dc.SetColor(Background)
	c.dc.Clear()
}

func (c *Image) DrawDot(x, y, radius float64, col color.Color) {
	c.dc.DrawCircle(x, y, radius)
	c.dc.SetColor(col)
	c.dc.Fill()
}

// Present draws the caption, if any, and hands the frame to the sink.
func (c *Image) Present() error {
	if c.caption != "" {
		c.drawCaption()
	}
	if c.sink == nil {
		return nil
	}
	return c.sink.AddFrame(c.dc.Image())
}

// Image returns the current frame.
func (c *Image) Image() image.Image {
	return c.dc.Image()
}

func (c *Image) drawCaption() {
	c.dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: c.fontSize}))
	c.dc.SetColor(color.NRGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF})
	c.dc.DrawStringWrapped(c.caption, 4, 4, 0, 0, float64(c.dc.Width())-8, 1, gg.AlignLeft)
}
