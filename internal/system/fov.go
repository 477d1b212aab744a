package system

import "termcaster/internal/gamemap"

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//
//	worldX = cx + dx*xx + dy*xy
//	worldY = cy + dx*yx + dy*yy
//
// where dx sweeps horizontally within the row and dy is the fixed row index.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// Visibility records which cells of a map are in view now and which have
// ever been seen. The minimap draws only explored cells.
type Visibility struct {
	Width, Height int
	visible       []bool
	explored      []bool
}

// NewVisibility returns an all-dark record sized for m.
func NewVisibility(m *gamemap.Map) *Visibility {
	n := m.Width() * m.Height()
	return &Visibility{
		Width:    m.Width(),
		Height:   m.Height(),
		visible:  make([]bool, n),
		explored: make([]bool, n),
	}
}

func (v *Visibility) index(x, y int) (int, bool) {
	if x < 0 || x >= v.Width || y < 0 || y >= v.Height {
		return 0, false
	}
	return y*v.Width + x, true
}

// Visible reports whether (x, y) was lit by the last update.
func (v *Visibility) Visible(x, y int) bool {
	i, ok := v.index(x, y)
	return ok && v.visible[i]
}

// Explored reports whether (x, y) has ever been lit.
func (v *Visibility) Explored(x, y int) bool {
	i, ok := v.index(x, y)
	return ok && v.explored[i]
}

func (v *Visibility) light(x, y int) {
	if i, ok := v.index(x, y); ok {
		v.visible[i] = true
		v.explored[i] = true
	}
}

// UpdateVisibility resets visibility and runs recursive shadowcasting from
// cell (x, y). Walls are lit but block everything behind them.
func UpdateVisibility(m *gamemap.Map, vis *Visibility, x, y, radius int) {
	clear(vis.visible)
	vis.light(x, y)
	for _, o := range octants {
		castLight(m, vis, x, y, 1, 1.0, 0.0, radius, o[0], o[1], o[2], o[3])
	}
}

// castLight casts light for one octant using recursive shadowcasting.
//
//   - j is the current row (distance from origin along the main axis)
//   - dy = -j is fixed for the entire inner sweep
//   - dx sweeps from -j to 0 within the row
//   - lSlope = (dx - 0.5) / (dy + 0.5), rSlope = (dx + 0.5) / (dy - 0.5)
func castLight(m *gamemap.Map, vis *Visibility, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := float64(radius * radius)
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if float64(dx*dx+dy*dy) < radiusSq {
				vis.light(wx, wy)
			}

			opaque := !m.IsOpen(wx, wy)
			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < radius {
				blocked = true
				castLight(m, vis, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
