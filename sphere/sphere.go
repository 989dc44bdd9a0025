// =======================
// sphere/sphere.go
// =======================

package sphere

import (
	"math"

	"github.com/pkg/errors"
)

const (
	// MaxDistance caps the view distance.
	MaxDistance = 1000.0
	// DistanceStep is how far the view distance grows per frame.
	DistanceStep = 10.0
	// RotationStep is the rotation added per frame, half a degree.
	RotationStep = math.Pi / 360.0
)

// ErrInvalidRadius is returned for radii that are not positive finite numbers.
var ErrInvalidRadius = errors.New("radius must be a positive finite number")

// PointSphere is a point cloud on a sphere surface together with its
// animation state. It is not safe for concurrent use; a single animation
// loop advances and renders it.
type PointSphere struct {
	points   []Point3D
	radius   float64
	rotation float64
	distance float64
}

// New generates the point cloud for a sphere of the given radius.
func New(radius float64) (*PointSphere, error) {
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, errors.Wrapf(ErrInvalidRadius, "got %v", radius)
	}
	return &PointSphere{
		points: Generate(radius),
		radius: radius,
	}, nil
}

// Radius returns the radius the sphere was built with.
func (s *PointSphere) Radius() float64 { return s.radius }

// Rotation returns the accumulated rotation angle in radians.
func (s *PointSphere) Rotation() float64 { return s.rotation }

// Distance returns the current view distance.
func (s *PointSphere) Distance() float64 { return s.distance }

// Len returns the number of points in the cloud.
func (s *PointSphere) Len() int { return len(s.points) }

// Points returns a copy of the generated cloud.
func (s *PointSphere) Points() []Point3D {
	out := make([]Point3D, len(s.points))
	copy(out, s.points)
	return out
}

// Saturated reports whether the view distance has reached its cap.
func (s *PointSphere) Saturated() bool { return s.distance >= MaxDistance }

// Advance moves the animation one frame forward. The rotation grows without
// bound; the view distance grows until it reaches MaxDistance and then holds.
func (s *PointSphere) Advance() {
	s.rotation += RotationStep
	if s.distance < MaxDistance {
		s.distance = math.Min(s.distance+DistanceStep, MaxDistance)
	}
}

// RenderFrame draws every point that projects inside the canvas and returns
// how many dots were drawn. Points are drawn in generation order; receding
// points get FarColor, the rest NearColor.
func (s *PointSphere) RenderFrame(c Canvas) int {
	width, height := c.Size()

	drawn := 0
	for _, p := range s.points {
		r := p.Rotate(s.rotation)
		x, y := ProjectPoint(r, s.distance, width, height)
		if !inBounds(x, y, width, height) {
			continue
		}
		if r.Z < 0 {
			c.DrawDot(x, y, DotRadius, FarColor)
		} else {
			c.DrawDot(x, y, DotRadius, NearColor)
		}
		drawn++
	}
	return drawn
}
