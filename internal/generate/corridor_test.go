package generate

import "testing"

// openRow checks that every cell at y between x1 and x2 (inclusive) is open.
func openRow(g *grid, x1, x2, y int) bool {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if g.cells[y][x] != 0 {
			return false
		}
	}
	return true
}

// openCol checks that every cell at x between y1 and y2 (inclusive) is open.
func openCol(g *grid, y1, y2, x int) bool {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if g.cells[y][x] != 0 {
			return false
		}
	}
	return true
}

func TestCarveH(t *testing.T) {
	g := newGrid(20, 20)
	carveH(g, 3, 8, 5)

	if !openRow(g, 3, 8, 5) {
		t.Error("carveH(3,8,5) should open cells from x=3 to x=8 at y=5")
	}
	if g.cells[5][2] == 0 || g.cells[5][9] == 0 {
		t.Error("cells outside the segment must remain walls")
	}
}

func TestCarveHReversedArgs(t *testing.T) {
	g := newGrid(20, 20)
	carveH(g, 8, 3, 5)
	if !openRow(g, 3, 8, 5) {
		t.Error("carveH with reversed x args should still carve x=3..8")
	}
}

func TestCarveV(t *testing.T) {
	g := newGrid(20, 20)
	carveV(g, 2, 7, 4)

	if !openCol(g, 2, 7, 4) {
		t.Error("carveV(2,7,4) should open cells from y=2 to y=7 at x=4")
	}
	if g.cells[1][4] == 0 || g.cells[8][4] == 0 {
		t.Error("cells outside the segment must remain walls")
	}
}

func TestCarveVReversedArgs(t *testing.T) {
	g := newGrid(20, 20)
	carveV(g, 7, 2, 4)
	if !openCol(g, 2, 7, 4) {
		t.Error("carveV with reversed y args should still carve y=2..7")
	}
}

func TestCarveZShaped(t *testing.T) {
	g := newGrid(20, 20)
	carveZShaped(g, 2, 2, 8, 10)
	midY := (2 + 10) / 2

	if !openCol(g, 2, midY, 2) {
		t.Errorf("first vertical segment (x=2, y=2..%d) should be open", midY)
	}
	if !openRow(g, 2, 8, midY) {
		t.Errorf("horizontal segment (y=%d, x=2..8) should be open", midY)
	}
	if !openCol(g, midY, 10, 8) {
		t.Errorf("last vertical segment (x=8, y=%d..10) should be open", midY)
	}
}

func TestCarveKeepsRing(t *testing.T) {
	g := newGrid(10, 10)
	carveH(g, -5, 15, 0)
	carveV(g, -5, 15, 9)
	carveH(g, -5, 15, 4)
	if g.cells[0][3] == 0 || g.cells[4][9] == 0 || g.cells[4][0] == 0 {
		t.Error("carving must never open the outer ring")
	}
	if !openRow(g, 1, 8, 4) {
		t.Error("interior cells of row 4 should be open")
	}
}
