// =======================
// sphere/project.go
// =======================

package sphere

// ZOffset is the fixed focal offset subtracted from a point's depth before
// the perspective divide.
const ZOffset = 100.0

// Project maps one object-space coordinate to a screen coordinate. depth is
// the rotated z of the point and is shared by both screen axes; offset is
// half the canvas dimension for the axis being projected.
//
// depth == ZOffset divides by zero and yields a non-finite result; callers
// are expected to reject it.
func Project(coord, depth, distance, offset float64) float64 {
	return (distance*coord)/(depth-ZOffset) + offset
}

// ProjectPoint projects p onto a canvas of the given size.
func ProjectPoint(p Point3D, distance, width, height float64) (x, y float64) {
	x = Project(p.X, p.Z, distance, width/2)
	y = Project(p.Y, p.Z, distance, height/2)
	return x, y
}

// inBounds reports whether (x, y) lies in [0,width) x [0,height).
// NaN and infinities fail every comparison and are rejected too.
func inBounds(x, y, width, height float64) bool {
	return x >= 0 && x < width && y >= 0 && y < height
}
