package raycast

import (
	"math"
	"testing"

	"termcaster/internal/texture"
)

func TestColumnHeight(t *testing.T) {
	r := newTestRenderer(t, ringRows(5, 5), flatSet(solidRed()), Options{})
	r.Resize(10, 10)
	cases := []struct {
		distance float64
		want     int
	}{
		{1, 20},
		{2, 10},
		{3, 6},
		{0.5, 40},
		{0.01, DefaultMaxColumnHeight},
		{1e-300, DefaultMaxColumnHeight},
		{0, DefaultMaxColumnHeight},
		{-1, DefaultMaxColumnHeight},
	}
	for _, tc := range cases {
		if got := r.ColumnHeight(tc.distance); got != tc.want {
			t.Errorf("ColumnHeight(%v) = %d, want %d", tc.distance, got, tc.want)
		}
	}

	// The clamp never leaves a gap on buffers taller than the limit.
	r.Resize(10, 600)
	if got := r.ColumnHeight(0); got != 1200 {
		t.Errorf("ColumnHeight(0) on a 1200-row buffer = %d, want 1200", got)
	}
}

func TestWallSpan(t *testing.T) {
	r := newTestRenderer(t, ringRows(5, 5), flatSet(solidRed()), Options{})
	r.Resize(10, 10)
	cases := []struct {
		height     int
		start, end int
	}{
		{0, 10, 10},
		{7, 7, 13},
		{10, 5, 15},
		{20, 0, 20},
		{40, 0, 20},
		{DefaultMaxColumnHeight, 0, 20},
	}
	for _, tc := range cases {
		start, end := r.WallSpan(tc.height)
		if start != tc.start || end != tc.end {
			t.Errorf("WallSpan(%d) = [%d, %d), want [%d, %d)", tc.height, start, end, tc.start, tc.end)
		}
	}
}

func TestAdjacentWallFillsColumn(t *testing.T) {
	r := newTestRenderer(t, ringRows(5, 5), flatSet(solidRed()), Options{})
	r.Resize(5, 10)
	buf := r.Render(Camera{Pos: Vec{1.5, 2.5}, Dir: Vec{-1, 0}, Plane: Vec{0, -0.66}})

	for y := range buf.Height {
		if c := buf.At(2, y); c.R < 200 || c.G != 0 || c.B != 0 {
			t.Errorf("row %d = %v, want wall red", y, c)
		}
	}
}

func TestFogDarkensWithDistance(t *testing.T) {
	rows := ringRows(12, 5)
	cam := Camera{Pos: Vec{1.5, 2.5}, Dir: Vec{1, 0}, Plane: Vec{0, 0.66}}

	foggy := newTestRenderer(t, rows, flatSet(solidRed()), Options{})
	foggy.Resize(3, 20)
	got := foggy.Render(cam).At(1, 20)
	want := uint8(255 * math.Exp(-9.5*DefaultFog))
	if got.R != want {
		t.Errorf("fogged wall = %v, want R=%d", got, want)
	}

	clear := newTestRenderer(t, rows, flatSet(solidRed()), Options{Fog: -1})
	clear.Resize(3, 20)
	if got := clear.Render(cam).At(1, 20); got != red {
		t.Errorf("wall without fog = %v, want %v", got, red)
	}
}

func TestDarken(t *testing.T) {
	cases := []struct {
		in    texture.RGB
		shade float64
		want  texture.RGB
	}{
		{texture.RGB{R: 200, G: 100, B: 50}, 0.5, texture.RGB{R: 100, G: 50, B: 25}},
		{texture.White, 1, texture.White},
		{texture.White, 0, texture.Black},
		{texture.RGB{R: 200}, 2, texture.RGB{R: 255}},
	}
	for _, tc := range cases {
		if got := darken(tc.in, tc.shade); got != tc.want {
			t.Errorf("darken(%v, %v) = %v, want %v", tc.in, tc.shade, got, tc.want)
		}
	}
}

// rowStripes is 8×8 with every texel of row y colored R = 10·y.
func rowStripes() *texture.Image {
	img := texture.NewImage(8, 8)
	for y := range 8 {
		for x := range 8 {
			img.Set(x, y, texture.RGB{R: uint8(10 * y)})
		}
	}
	return img
}

func TestTallWallSamplesMiddleSlice(t *testing.T) {
	rows := [][]int{
		{1, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 1, 1},
	}
	r := newTestRenderer(t, rows, flatSet(rowStripes()), Options{Fog: -1})
	r.Resize(1, 10)
	buf := r.Render(Camera{Pos: Vec{1.5, 1.5}, Dir: Vec{1, 0}, Plane: Vec{0, 0.66}})

	// Distance 0.5 on a 20-row buffer asks for a 40-row strip; only texel
	// rows 2 through 5 are visible.
	cases := []struct {
		row  int
		want texture.RGB
	}{
		{0, texture.RGB{R: 20}},
		{10, texture.RGB{R: 40}},
		{19, texture.RGB{R: 50}},
	}
	for _, tc := range cases {
		if got := buf.At(0, tc.row); got != tc.want {
			t.Errorf("row %d = %v, want %v", tc.row, got, tc.want)
		}
	}
}

// texelGrid is 8×8 with texel (x, y) colored R = 30·x, G = 30·y.
func texelGrid() *texture.Image {
	img := texture.NewImage(8, 8)
	for y := range 8 {
		for x := range 8 {
			img.Set(x, y, texture.RGB{R: uint8(30 * x), G: uint8(30 * y), B: 7})
		}
	}
	return img
}

func TestFloorProjectsThroughRay(t *testing.T) {
	grid := texelGrid()
	set := flatSet(solidRed())
	set.Floor, set.Ceiling = grid, grid
	r := newTestRenderer(t, ringRows(7, 3), set, Options{Fog: -1})
	r.Resize(1, 10)
	cam := Camera{Pos: Vec{1.5, 1.3}, Dir: Vec{1, 0}, Plane: Vec{0, 0.66}}
	buf := r.Render(cam)

	// The wall at x=6 is 4.5 away: a 4-row strip over rows [8, 12).
	half := buf.Height / 2
	checked := 0
	for k := 2; k < half; k++ {
		x := cam.Pos.X + r.floorDist[k]*cam.Dir.X
		y := cam.Pos.Y + r.floorDist[k]*cam.Dir.Y
		fx, fy := (x-math.Floor(x))*8, (y-math.Floor(y))*8
		if nearInt(fx) || nearInt(fy) {
			continue
		}
		want := grid.At(int(fx), int(fy))
		if got := buf.At(0, half+k); got != want {
			t.Errorf("floor row %d = %v, want texel (%d, %d) = %v", half+k, got, int(fx), int(fy), want)
		}
		if got := buf.At(0, half-1-k); got != buf.At(0, half+k) {
			t.Errorf("ceiling row %d = %v, want the mirror of floor row %d", half-1-k, got, half+k)
		}
		checked++
	}
	if checked == 0 {
		t.Fatal("every floor row fell on a texel boundary")
	}
}

func nearInt(v float64) bool { return math.Abs(v-math.Round(v)) < 1e-6 }
