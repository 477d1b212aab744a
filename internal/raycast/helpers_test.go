package raycast

import (
	"testing"

	"termcaster/internal/gamemap"
	"termcaster/internal/texture"
)

var (
	red   = texture.RGB{R: 255}
	green = texture.RGB{G: 255}
	blue  = texture.RGB{B: 255}
	sky   = texture.RGB{R: 10, G: 20, B: 90}
	dirt  = texture.RGB{R: 60, G: 50, B: 40}
)

// ringRows returns a w×h grid of open cells enclosed by code-1 walls.
func ringRows(w, h int) [][]int {
	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
		for x := range rows[y] {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				rows[y][x] = 1
			}
		}
	}
	return rows
}

func solidRed() texture.Texture { return texture.Solid(red, 4) }

func flatSet(walls ...texture.Texture) *texture.Set {
	return &texture.Set{Walls: walls, CeilingColor: sky, FloorColor: dirt}
}

func newTestRenderer(t *testing.T, rows [][]int, set *texture.Set, opts Options) *Renderer {
	t.Helper()
	m, err := gamemap.New(rows)
	if err != nil {
		t.Fatalf("gamemap.New: %v", err)
	}
	r, err := New(m, set, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

// texturedSet exercises every sampling path: checker walls with a light
// variant, tiled floor and ceiling.
func texturedSet() *texture.Set {
	wall := texture.Checker(red, blue, 16, 4)
	return &texture.Set{
		Walls:      []texture.Texture{wall, texture.Brick(green, texture.White, 16)},
		LightWalls: []texture.Texture{texture.Lighten(wall, 0.3), texture.Brick(blue, texture.White, 16)},
		Floor:      texture.Checker(dirt, texture.Black, 8, 2),
		Ceiling:    texture.Gradient(sky, texture.White, 8, 8),
	}
}

func roomWithPillar() [][]int {
	rows := ringRows(12, 12)
	rows[5][6] = 2
	rows[6][6] = 2
	return rows
}
