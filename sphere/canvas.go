// =======================
// sphere/canvas.go
// =======================

package sphere

import "image/color"

// Canvas is the drawing surface a sphere renders onto.
type Canvas interface {
	// Size reports the drawable area in canvas units.
	Size() (width, height float64)
	// Clear wipes the previous frame.
	Clear()
	// DrawDot fills a circle of the given radius centred on (x, y).
	DrawDot(x, y, radius float64, c color.Color)
}

// Presenter is implemented by canvases that need an explicit flush once a
// frame is complete.
type Presenter interface {
	Present() error
}

var (
	// NearColor is used for points on the half facing the viewer.
	NearColor color.Color = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	// FarColor is a translucent light grey (alpha 0.6) for receding points.
	FarColor color.Color = color.NRGBA{R: 200, G: 200, B: 200, A: 153}
)

// DotRadius is the radius every point is drawn with.
const DotRadius = 1.0
