// Package canvas provides the drawing surfaces a sphere.PointSphere renders
// onto: an in-memory image (exportable as PNG or GIF frames), a terminal
// screen and an ebiten window.
package canvas
