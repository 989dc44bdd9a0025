package canvas

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Background is the colour every canvas clears to.
var Background = colorful.Color{R: 0, G: 0, B: 0}

// Composite returns c painted over bg with c's alpha, for surfaces that
// cannot blend on their own.
func Composite(c color.Color, bg colorful.Color) colorful.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	fg := colorful.Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}
	return bg.BlendRgb(fg, float64(n.A)/255).Clamped()
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
