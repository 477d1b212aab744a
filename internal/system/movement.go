package system

import (
	"math"

	"termcaster/internal/gamemap"
	"termcaster/internal/raycast"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // full step taken
	MoveSlid                      // one axis blocked, slid along the wall
	MoveBlocked                   // both axes blocked; position unchanged
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveSlid:
		return "slid"
	default:
		return "blocked"
	}
}

// DefaultRadius is the body radius of a walking camera, in cells.
const DefaultRadius = 0.2

// TryMove moves cam by (dx, dy) on m, keeping a body of the given radius
// out of wall cells. The axes are resolved separately so a diagonal step
// into a wall slides along it.
func TryMove(m *gamemap.Map, cam *raycast.Camera, dx, dy, radius float64) MoveResult {
	pos := cam.Pos
	movedX, movedY := false, false
	if dx != 0 && fits(m, pos.X+dx, pos.Y, radius) {
		pos.X += dx
		movedX = true
	}
	if dy != 0 && fits(m, pos.X, pos.Y+dy, radius) {
		pos.Y += dy
		movedY = true
	}
	cam.Pos = pos

	switch {
	case (dx == 0 || movedX) && (dy == 0 || movedY):
		return MoveOK
	case movedX || movedY:
		return MoveSlid
	default:
		return MoveBlocked
	}
}

// Walk returns the displacement for moving forward along the view axis and
// strafing to the right, both in cells.
func Walk(cam raycast.Camera, forward, strafe float64) (dx, dy float64) {
	dir := unit(cam.Dir)
	right := unit(cam.Plane)
	return dir.X*forward + right.X*strafe, dir.Y*forward + right.Y*strafe
}

func unit(v raycast.Vec) raycast.Vec {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// fits reports whether a square body of half-width radius centred on
// (x, y) overlaps only open cells.
func fits(m *gamemap.Map, x, y, radius float64) bool {
	x0, x1 := int(math.Floor(x-radius)), int(math.Floor(x+radius))
	y0, y1 := int(math.Floor(y-radius)), int(math.Floor(y+radius))
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			if !m.IsOpen(cx, cy) {
				return false
			}
		}
	}
	return true
}
