package raycast

import (
	"errors"
	"math"
)

// ErrDegenerateCamera is returned for cameras whose direction or plane is
// zero, non-finite, or parallel to the other.
var ErrDegenerateCamera = errors.New("raycast: degenerate camera")

// Vec is a 2-D vector in map-cell units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Cross returns the z component of v × o.
func (v Vec) Cross(o Vec) float64 { return v.X*o.Y - v.Y*o.X }

// Rotate returns v rotated by a radians.
func (v Vec) Rotate(a float64) Vec {
	s, c := math.Sincos(a)
	return Vec{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

func (v Vec) finite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Camera is a viewpoint on the map. Dir is the view axis and Plane the
// half-width of the view plane; the ray for screen offset t in [-1, 1] is
// Dir + Plane*t, so |Plane|/|Dir| sets the field of view.
type Camera struct {
	Pos   Vec
	Dir   Vec
	Plane Vec
}

// NewCamera returns a validated camera.
func NewCamera(pos, dir, plane Vec) (Camera, error) {
	c := Camera{Pos: pos, Dir: dir, Plane: plane}
	return c, c.Validate()
}

// CameraAt returns a camera at pos looking along angle theta (radians, 0 is
// +x, increasing toward +y) with horizontal field of view fov.
func CameraAt(pos Vec, theta, fov float64) Camera {
	dir := Vec{1, 0}.Rotate(theta)
	return Camera{
		Pos:   pos,
		Dir:   dir,
		Plane: Vec{-dir.Y, dir.X}.Scale(math.Tan(fov / 2)),
	}
}

// Validate reports ErrDegenerateCamera for cameras the caster cannot use.
func (c Camera) Validate() error {
	switch {
	case !c.Pos.finite() || !c.Dir.finite() || !c.Plane.finite():
		return ErrDegenerateCamera
	case c.Dir.Len() == 0 || c.Plane.Len() == 0:
		return ErrDegenerateCamera
	case math.Abs(c.Dir.Cross(c.Plane)) < 1e-12:
		return ErrDegenerateCamera
	}
	return nil
}

// Rotate turns the camera by a radians.
func (c *Camera) Rotate(a float64) {
	c.Dir = c.Dir.Rotate(a)
	c.Plane = c.Plane.Rotate(a)
}

// Theta returns the heading in radians.
func (c Camera) Theta() float64 { return math.Atan2(c.Dir.Y, c.Dir.X) }

// FOV returns the horizontal field of view in radians.
func (c Camera) FOV() float64 { return 2 * math.Atan(c.Plane.Len()/c.Dir.Len()) }

// Ray returns the world-space ray for screen offset t.
func (c Camera) Ray(t float64) Vec { return c.Dir.Add(c.Plane.Scale(t)) }
