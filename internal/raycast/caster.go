package raycast

import (
	"math"

	"termcaster/internal/gamemap"
)

// Side is the grid axis of the cell boundary a ray hit.
type Side uint8

const (
	// SideX walls lie on a vertical grid line; the ray stepped along x.
	SideX Side = iota
	// SideY walls lie on a horizontal grid line; the ray stepped along y.
	SideY
)

func (s Side) String() string {
	if s == SideX {
		return "x"
	}
	return "y"
}

// Hit describes where a column's ray met a wall.
type Hit struct {
	// Distance is the perpendicular distance to the camera plane, in units
	// of the camera direction length.
	Distance float64
	Side     Side
	// Texture is the wall texture index, cell code - 1.
	Texture int
	CellX   int
	CellY   int
	// Point is the exact world position of the hit.
	Point Vec
	// WallX is the fractional position of the hit along the wall face.
	WallX float64
	Ray   Vec
}

// Cast walks the ray of column through the grid one cell per hop until it
// enters a wall cell. It reports false when the hop budget runs out or the
// ray leaves the map.
func (r *Renderer) Cast(column int) (Hit, bool) {
	pos, ray := r.cam.Pos, r.rays[column]
	cellX, cellY := int(math.Floor(pos.X)), int(math.Floor(pos.Y))

	deltaX, deltaY := invAbs(ray.X), invAbs(ray.Y)
	stepX, sideX := 1, (float64(cellX)+1-pos.X)*deltaX
	if ray.X < 0 {
		stepX, sideX = -1, (pos.X-float64(cellX))*deltaX
	}
	stepY, sideY := 1, (float64(cellY)+1-pos.Y)*deltaY
	if ray.Y < 0 {
		stepY, sideY = -1, (pos.Y-float64(cellY))*deltaY
	}

	for range r.opts.Hops {
		var side Side
		if sideY < sideX {
			sideY += deltaY
			cellY += stepY
			side = SideY
		} else {
			sideX += deltaX
			cellX += stepX
			side = SideX
		}
		if !r.world.InBounds(cellX, cellY) {
			return Hit{}, false
		}
		code := r.world.At(cellX, cellY)
		if code == gamemap.Open {
			continue
		}

		// Perpendicular rather than Euclidean distance keeps flat walls flat.
		var dist float64
		if side == SideX {
			dist = (float64(cellX) - pos.X + float64(1-stepX)/2) / ray.X
		} else {
			dist = (float64(cellY) - pos.Y + float64(1-stepY)/2) / ray.Y
		}
		point := pos.Add(ray.Scale(dist))
		wallX := point.Y
		if side == SideY {
			wallX = point.X
		}
		return Hit{
			Distance: dist,
			Side:     side,
			Texture:  code - 1,
			CellX:    cellX,
			CellY:    cellY,
			Point:    point,
			WallX:    wallX - math.Floor(wallX),
			Ray:      ray,
		}, true
	}
	return Hit{}, false
}

// invAbs returns |1/v|, +Inf for zero.
func invAbs(v float64) float64 {
	if v == 0 {
		return math.Inf(1)
	}
	return math.Abs(1 / v)
}
