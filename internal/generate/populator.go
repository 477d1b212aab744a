package generate

import "termcaster/internal/gamemap"

// Prop is a decoration sprite placed on a cell center.
type Prop struct {
	X, Y float64
	Kind int
}

// Populate scatters cfg.Props props over every room except the first, where
// the viewer starts. No two props share a cell.
func Populate(lv *Level, cfg *Config) []Prop {
	if cfg.Props <= 0 || cfg.PropKinds <= 0 || len(lv.Rooms) < 2 {
		return nil
	}
	placeable := lv.Rooms[1:]

	type pt = [2]int
	occupied := make(map[pt]bool)
	props := make([]Prop, 0, cfg.Props)
	for i := range cfg.Props {
		room := placeable[i%len(placeable)]
		x, y, ok := pickFreeInRoom(room, cfg, occupied)
		if !ok {
			continue
		}
		occupied[pt{x, y}] = true
		props = append(props, Prop{
			X:    float64(x) + 0.5,
			Y:    float64(y) + 0.5,
			Kind: cfg.Rand.Intn(cfg.PropKinds),
		})
	}
	return props
}

// pickFreeInRoom tries up to 20 times to find an unoccupied cell inside
// room, reporting false when the room is too crowded.
func pickFreeInRoom(room gamemap.Rect, cfg *Config, occupied map[[2]int]bool) (int, int, bool) {
	const maxAttempts = 20
	for range maxAttempts {
		x, y := randomInRoom(room, cfg)
		if !occupied[[2]int{x, y}] {
			return x, y, true
		}
	}
	return 0, 0, false
}

func randomInRoom(room gamemap.Rect, cfg *Config) (int, int) {
	// Shrink by 1 from each edge so nothing blocks a corridor mouth.
	x1, y1 := room.X1+1, room.Y1+1
	x2, y2 := room.X2-1, room.Y2-1
	if x1 > x2 || y1 > y2 {
		x1, y1 = room.X1, room.Y1
		x2, y2 = room.X2, room.Y2
	}
	x := x1 + cfg.Rand.Intn(max(1, x2-x1+1))
	y := y1 + cfg.Rand.Intn(max(1, y2-y1+1))
	return x, y
}
