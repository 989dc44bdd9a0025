// Package export turns the frames of a canvas.Image into files.
package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// grayPalette covers the colours a sphere frame uses: black, greys and white.
var grayPalette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}()

// GIF collects frames into an animated GIF.
type GIF struct {
	delay  int // hundredths of a second
	frames []*image.Paletted
	delays []int
}

// NewGIF returns an encoder playing back at roughly fps frames per second.
func NewGIF(fps int) *GIF {
	delay := 100 / fps
	if delay < 2 {
		// most viewers clamp smaller delays to 10
		delay = 2
	}
	return &GIF{delay: delay}
}

// AddFrame quantises img and appends it to the animation.
func (g *GIF) AddFrame(img image.Image) error {
	b := img.Bounds()
	if b.Empty() {
		return errors.New("empty frame")
	}
	p := image.NewPaletted(b, grayPalette)
	draw.FloydSteinberg.Draw(p, b, img, b.Min)
	g.frames = append(g.frames, p)
	g.delays = append(g.delays, g.delay)
	return nil
}

// Len returns the number of frames collected so far.
func (g *GIF) Len() int { return len(g.frames) }

// Encode writes the animation to w, looping forever.
func (g *GIF) Encode(w io.Writer) error {
	if len(g.frames) == 0 {
		return errors.New("no frames to encode")
	}
	err := gif.EncodeAll(w, &gif.GIF{
		Image:     g.frames,
		Delay:     g.delays,
		LoopCount: 0,
	})
	return errors.Wrap(err, "encoding gif")
}

// WriteFile encodes the animation into the file at path.
func (g *GIF) WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating gif")
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	return g.Encode(f)
}
