// Package animate drives a sphere.PointSphere frame by frame. An Animator
// owns the sphere and its canvas; a Driver decides when the next frame
// happens and keeps calling Animator.Tick until it is stopped.
package animate
