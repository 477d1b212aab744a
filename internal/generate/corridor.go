package generate

// carveCorridor digs a tunnel between (x1,y1) and (x2,y2) in the configured style.
func carveCorridor(g *grid, x1, y1, x2, y2 int, cfg *Config) {
	switch cfg.CorridorStyle {
	case CorridorZShaped:
		carveZShaped(g, x1, y1, x2, y2)
	case CorridorStraight:
		carveH(g, x1, x2, y1)
		carveV(g, y1, y2, x2)
	default: // LShaped
		if cfg.Rand.Intn(2) == 0 {
			carveH(g, x1, x2, y1)
			carveV(g, y1, y2, x2)
		} else {
			carveV(g, y1, y2, x1)
			carveH(g, x1, x2, y2)
		}
	}
}

func carveH(g *grid, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		g.carve(x, y)
	}
}

func carveV(g *grid, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		g.carve(x, y)
	}
}

func carveZShaped(g *grid, x1, y1, x2, y2 int) {
	midY := (y1 + y2) / 2
	carveV(g, y1, midY, x1)
	carveH(g, x1, x2, midY)
	carveV(g, midY, y2, x2)
}
