// =======================
// sphere/point3d.go
// =======================

package sphere

import (
	"math"

	"github.com/golang/geo/r3"
)

// Point3D holds a 3D coordinate in object space, centred on the sphere.
type Point3D struct{ X, Y, Z float64 }

// Norm returns the distance of p from the origin.
func (p Point3D) Norm() float64 {
	return r3.Vector(p).Norm()
}

// RotateX rotates p around the X axis by theta.
func (p Point3D) RotateX(theta float64) Point3D {
	cos, sin := math.Cos(theta), math.Sin(theta)
	y := p.Y*cos - p.Z*sin
	z := p.Y*sin + p.Z*cos
	p.Y, p.Z = y, z
	return p
}

// RotateY rotates p around the Y axis by theta.
func (p Point3D) RotateY(theta float64) Point3D {
	cos, sin := math.Cos(theta), math.Sin(theta)
	x := p.X*cos - p.Z*sin
	z := p.X*sin + p.Z*cos
	p.X, p.Z = x, z
	return p
}

// RotateZ rotates p around the Z axis by theta.
func (p Point3D) RotateZ(theta float64) Point3D {
	cos, sin := math.Cos(theta), math.Sin(theta)
	x := p.X*cos - p.Y*sin
	y := p.X*sin + p.Y*cos
	p.X, p.Y = x, y
	return p
}

// Rotate applies the X, Y and Z rotations in that order, all by the same angle.
// Each step reads the output of the previous one.
func (p Point3D) Rotate(theta float64) Point3D {
	return p.RotateX(theta).RotateY(theta).RotateZ(theta)
}
