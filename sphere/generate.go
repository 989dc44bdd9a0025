// =======================
// sphere/generate.go
// =======================

package sphere

import "math"

const (
	// AngleStep is the angular spacing between neighbouring points, both along
	// a ring and between rings.
	AngleStep = 0.17

	// ringLimit is the longitude bound used while sweeping a ring. It is the
	// literal 6.28 rather than 2π; the equator sweep includes it, the polar
	// rings stop short of it.
	ringLimit = 6.28
)

// Generate samples the surface of a sphere of the given radius as stacked
// latitude rings: one equator ring, then rings towards the north pole and
// rings towards the south pole. Rings near the equator are wider and carry
// the same number of points, so the cloud is denser there.
//
// Angles are accumulated by repeated addition, so the exact point count
// follows floating-point rounding at the loop bounds.
func Generate(radius float64) []Point3D {
	points := make([]Point3D, 0, estimateCount())

	for alpha := 0.0; alpha <= ringLimit; alpha += AngleStep {
		points = append(points, Point3D{
			X: math.Cos(alpha) * radius,
			Y: 0,
			Z: math.Sin(alpha) * radius,
		})
	}

	for direction := 1.0; direction >= -1; direction -= 2 {
		for beta := AngleStep; beta < math.Pi; beta += AngleStep {
			ringRadius := math.Cos(beta) * radius
			y := math.Sin(beta) * radius * direction

			for alpha := 0.0; alpha < ringLimit; alpha += AngleStep {
				points = append(points, Point3D{
					X: math.Cos(alpha) * ringRadius,
					Y: y,
					Z: math.Sin(alpha) * ringRadius,
				})
			}
		}
	}

	return points
}

// estimateCount is a capacity hint, not the exact number of points.
func estimateCount() int {
	step := float64(AngleStep)
	perRing := int(ringLimit/step) + 1
	rings := int(math.Pi/step) + 1
	return perRing * (1 + 2*rings)
}
