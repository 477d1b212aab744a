// Package generate builds random maze maps: BSP rooms joined by corridors,
// enclosed by a wall ring so every ray terminates.
package generate

import (
	"errors"
	"fmt"
	"math/rand"

	"termcaster/internal/gamemap"
)

// ErrConfig is returned for generator settings that cannot produce a map.
var ErrConfig = errors.New("generate: invalid config")

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// Config drives procedural generation for one map.
type Config struct {
	MapWidth, MapHeight int
	MinLeafSize         int
	MaxLeafSize         int
	MinRoomSize         int
	RoomPadding         int
	CorridorStyle       CorridorStyle
	// Textures is the number of wall textures; walls use codes 1..Textures.
	Textures int
	// Props is how many sprites Populate scatters, of PropKinds kinds.
	Props     int
	PropKinds int
	Rand      *rand.Rand
}

// DefaultConfig returns settings for a w×h map seeded with seed.
func DefaultConfig(w, h int, seed int64) *Config {
	return &Config{
		MapWidth:    w,
		MapHeight:   h,
		MinLeafSize: 6,
		MaxLeafSize: 16,
		MinRoomSize: 3,
		RoomPadding: 1,
		Textures:    1,
		Rand:        rand.New(rand.NewSource(seed)),
	}
}

// Level is a generated map plus the rooms it was carved from.
type Level struct {
	Map    *gamemap.Map
	Rooms  []gamemap.Rect
	StartX int
	StartY int
}

// bspLeaf is a node in the BSP tree.
type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
	room        *gamemap.Rect
}

// grid is the mutable cell buffer the generator carves into.
type grid struct {
	w, h  int
	cells [][]int
	rooms []gamemap.Rect
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, cells: make([][]int, h)}
	for y := range g.cells {
		g.cells[y] = make([]int, w)
		for x := range g.cells[y] {
			g.cells[y][x] = 1
		}
	}
	return g
}

// interior reports whether (x, y) is inside the outer wall ring.
func (g *grid) interior(x, y int) bool {
	return x > 0 && x < g.w-1 && y > 0 && y < g.h-1
}

func (g *grid) carve(x, y int) {
	if g.interior(x, y) {
		g.cells[y][x] = gamemap.Open
	}
}

// paint sets the wall code of every solid cell inside the leaf.
func (g *grid) paint(l *bspLeaf, code int) {
	for y := l.Y; y < l.Y+l.H; y++ {
		for x := l.X; x < l.X+l.W; x++ {
			if g.cells[y][x] != gamemap.Open {
				g.cells[y][x] = code
			}
		}
	}
}

// split divides the leaf into two children, returning false when leaf is too small.
func (l *bspLeaf) split(cfg *Config) bool {
	if l.left != nil || l.right != nil {
		return false
	}
	// Horizontal when taller, vertical when wider.
	splitH := cfg.Rand.Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		splitH = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		splitH = true
	}

	maxSize := l.H
	if !splitH {
		maxSize = l.W
	}
	if maxSize <= cfg.MinLeafSize*2 {
		return false
	}

	lo := cfg.MinLeafSize
	hi := maxSize - cfg.MinLeafSize
	if lo >= hi {
		return false
	}
	split := lo + cfg.Rand.Intn(hi-lo+1)

	if splitH {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: l.W, H: split}
		l.right = &bspLeaf{X: l.X, Y: l.Y + split, W: l.W, H: l.H - split}
	} else {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: split, H: l.H}
		l.right = &bspLeaf{X: l.X + split, Y: l.Y, W: l.W - split, H: l.H}
	}
	return true
}

// createRooms recursively carves rooms inside terminal leaves.
func (l *bspLeaf) createRooms(g *grid, cfg *Config) {
	if l.left != nil || l.right != nil {
		if l.left != nil {
			l.left.createRooms(g, cfg)
		}
		if l.right != nil {
			l.right.createRooms(g, cfg)
		}
		return
	}
	pad := cfg.RoomPadding
	minSize := cfg.MinRoomSize

	availW := max(l.W-2*pad, minSize)
	availH := max(l.H-2*pad, minSize)
	rw := minSize + cfg.Rand.Intn(max(1, availW-minSize+1))
	rh := minSize + cfg.Rand.Intn(max(1, availH-minSize+1))

	rw = max(min(rw, l.W-2*pad), 2)
	rh = max(min(rh, l.H-2*pad), 2)

	rx := l.X + pad + cfg.Rand.Intn(max(1, l.W-rw-2*pad+1))
	ry := l.Y + pad + cfg.Rand.Intn(max(1, l.H-rh-2*pad+1))

	// Keep the outer ring solid.
	rx, ry = max(rx, 1), max(ry, 1)
	if rx+rw >= g.w {
		rw = g.w - rx - 1
	}
	if ry+rh >= g.h {
		rh = g.h - ry - 1
	}
	if rw < 2 || rh < 2 {
		return
	}

	room := gamemap.Rect{X1: rx, Y1: ry, X2: rx + rw - 1, Y2: ry + rh - 1}
	l.room = &room
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			g.carve(x, y)
		}
	}
	g.rooms = append(g.rooms, room)
}

// getRoom returns a room from this leaf or its descendants.
func (l *bspLeaf) getRoom() *gamemap.Rect {
	if l.room != nil {
		return l.room
	}
	var lRoom, rRoom *gamemap.Rect
	if l.left != nil {
		lRoom = l.left.getRoom()
	}
	if l.right != nil {
		rRoom = l.right.getRoom()
	}
	if lRoom == nil {
		return rRoom
	}
	return lRoom
}

// connectChildren carves corridors between the two children of a split leaf.
func (l *bspLeaf) connectChildren(g *grid, cfg *Config) {
	if l.left == nil || l.right == nil {
		return
	}
	l.left.connectChildren(g, cfg)
	l.right.connectChildren(g, cfg)

	lRoom := l.left.getRoom()
	rRoom := l.right.getRoom()
	if lRoom == nil || rRoom == nil {
		return
	}
	lCX, lCY := lRoom.Center()
	rCX, rCY := rRoom.Center()
	carveCorridor(g, lCX, lCY, rCX, rCY, cfg)
}

// terminals appends the leaves of the tree rooted at l.
func (l *bspLeaf) terminals(out []*bspLeaf) []*bspLeaf {
	if l.left == nil && l.right == nil {
		return append(out, l)
	}
	if l.left != nil {
		out = l.left.terminals(out)
	}
	if l.right != nil {
		out = l.right.terminals(out)
	}
	return out
}

func (cfg *Config) validate() error {
	switch {
	case cfg.Rand == nil:
		return fmt.Errorf("%w: nil Rand", ErrConfig)
	case cfg.Textures < 1:
		return fmt.Errorf("%w: %d wall textures", ErrConfig, cfg.Textures)
	case cfg.MinRoomSize < 2 || cfg.MinLeafSize < cfg.MinRoomSize+2*cfg.RoomPadding:
		return fmt.Errorf("%w: leaf %d cannot hold room %d with padding %d",
			ErrConfig, cfg.MinLeafSize, cfg.MinRoomSize, cfg.RoomPadding)
	case cfg.MapWidth < cfg.MinLeafSize+2 || cfg.MapHeight < cfg.MinLeafSize+2:
		return fmt.Errorf("%w: map %dx%d smaller than one leaf", ErrConfig, cfg.MapWidth, cfg.MapHeight)
	}
	return nil
}

// Generate runs BSP generation and returns the map with the start cell at
// the center of the first room. Each leaf paints its walls with one of the
// configured textures; the outer ring is always solid.
func Generate(cfg *Config) (*Level, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	g := newGrid(cfg.MapWidth, cfg.MapHeight)
	root := &bspLeaf{X: 0, Y: 0, W: cfg.MapWidth, H: cfg.MapHeight}

	leaves := []*bspLeaf{root}
	splitAny := true
	for splitAny {
		splitAny = false
		var next []*bspLeaf
		for _, leaf := range leaves {
			if leaf.left != nil || leaf.right != nil {
				next = append(next, leaf.left, leaf.right)
				continue
			}
			if leaf.W > cfg.MaxLeafSize || leaf.H > cfg.MaxLeafSize ||
				cfg.Rand.Float64() > 0.25 {
				if leaf.split(cfg) {
					next = append(next, leaf.left, leaf.right)
					splitAny = true
					continue
				}
			}
			next = append(next, leaf)
		}
		leaves = next
	}

	root.createRooms(g, cfg)
	root.connectChildren(g, cfg)
	for _, leaf := range root.terminals(nil) {
		g.paint(leaf, 1+cfg.Rand.Intn(cfg.Textures))
	}
	if len(g.rooms) == 0 {
		return nil, fmt.Errorf("%w: no room fits", ErrConfig)
	}

	m, err := gamemap.New(g.cells)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	sx, sy := g.rooms[0].Center()
	return &Level{Map: m, Rooms: g.rooms, StartX: sx, StartY: sy}, nil
}
