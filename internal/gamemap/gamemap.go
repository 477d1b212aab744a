// Package gamemap holds the immutable occupancy grid walked by the ray caster.
package gamemap

import (
	"errors"
	"fmt"
)

// Open is the cell code for traversable space. Any other code v > 0 is a
// wall drawn with wall texture v-1.
const Open = 0

var (
	// ErrEmpty is returned for a grid with no rows or no columns.
	ErrEmpty = errors.New("gamemap: empty grid")
	// ErrRagged is returned when rows have different lengths.
	ErrRagged = errors.New("gamemap: rows have different lengths")
	// ErrInvalidCell is returned for negative codes or codes without a texture.
	ErrInvalidCell = errors.New("gamemap: invalid cell code")
)

// Map is a read-only grid of cell codes. Cells are addressed (x, y) with x
// the column and y the row.
type Map struct {
	w, h    int
	cells   []int
	maxCode int
}

// New copies rows into a Map. rows[y][x] is the code of cell (x, y).
func New(rows [][]int) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	w, h := len(rows[0]), len(rows)
	m := &Map{w: w, h: h, cells: make([]int, 0, w*h)}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRagged, y, len(row), w)
		}
		for x, code := range row {
			if code < 0 {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidCell, code, x, y)
			}
			m.maxCode = max(m.maxCode, code)
		}
		m.cells = append(m.cells, row...)
	}
	return m, nil
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.w }

// Height returns the number of rows.
func (m *Map) Height() int { return m.h }

// MustNew is New for grids known to be well formed, such as built-in scenes.
func MustNew(rows [][]int) *Map {
	m, err := New(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.w && y >= 0 && y < m.h
}

// At returns the code at (x, y). Panics if out of bounds.
func (m *Map) At(x, y int) int {
	return m.cells[y*m.w+x]
}

// IsOpen returns true when (x, y) is in bounds and traversable.
func (m *Map) IsOpen(x, y int) bool {
	return m.InBounds(x, y) && m.cells[y*m.w+x] == Open
}

// MaxCode returns the largest cell code in the map.
func (m *Map) MaxCode() int { return m.maxCode }

// Rows returns a copy of the grid in the layout accepted by New.
func (m *Map) Rows() [][]int {
	rows := make([][]int, m.h)
	for y := range rows {
		rows[y] = append([]int(nil), m.cells[y*m.w:(y+1)*m.w]...)
	}
	return rows
}

// Validate checks that every wall code has one of textures wall textures.
func (m *Map) Validate(textures int) error {
	if m.maxCode <= textures {
		return nil
	}
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if code := m.At(x, y); code > textures {
				return fmt.Errorf("%w: %d at (%d,%d) but only %d wall textures", ErrInvalidCell, code, x, y, textures)
			}
		}
	}
	return nil
}
