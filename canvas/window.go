package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Window is an offscreen ebiten image that a window driver blits to the
// screen every frame. Drawing must happen on the ebiten game goroutine.
type Window struct {
	img           *ebiten.Image
	width, height int
	caption       string
}

// NewWindow returns a window canvas of the given pixel size. The backing
// image is allocated on first use, once the game loop runs.
func NewWindow(width, height int) *Window {
	return &Window{width: width, height: height}
}

// SetCaption sets the HUD text drawn over the frame.
func (w *Window) SetCaption(text string) { w.caption = text }

func (w *Window) Size() (float64, float64) {
	return float64(w.width), float64(w.height)
}

func (w *Window) Clear() {
	if w.img == nil {
		w.img = ebiten.NewImage(w.width, w.height)
	}
	w.img.Fill(Background)
}

func (w *Window) DrawDot(x, y, radius float64, c color.Color) {
	if w.img == nil {
		w.Clear()
	}
	vector.DrawFilledCircle(w.img, float32(x), float32(y), float32(radius), c, true)
}

// Layout reports the logical screen size.
func (w *Window) Layout() (int, int) { return w.width, w.height }

// Draw copies the last rendered frame onto screen.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.img != nil {
		screen.DrawImage(w.img, nil)
	}
	if w.caption != "" {
		ebitenutil.DebugPrint(screen, w.caption)
	}
}
