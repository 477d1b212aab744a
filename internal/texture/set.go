package texture

import "fmt"

// Set is everything the renderer paints with. Nil Floor or Ceiling means the
// matching flat color is used instead.
type Set struct {
	Walls []Texture
	// LightWalls, when set, holds a variant per wall used for one wall
	// orientation. Nil falls back to Walls.
	LightWalls []Texture

	Floor        Texture
	FloorColor   RGB
	Ceiling      Texture
	CeilingColor RGB

	Sprites []Texture
}

// Validate checks every configured texture. A set needs at least one wall.
func (s *Set) Validate() error {
	if len(s.Walls) == 0 {
		return ErrNoWalls
	}
	for i, t := range s.Walls {
		if err := checkSize(t); err != nil {
			return fmt.Errorf("wall %d: %w", i, err)
		}
	}
	if s.LightWalls != nil {
		if len(s.LightWalls) != len(s.Walls) {
			return fmt.Errorf("%w: %d light walls for %d walls", ErrLightMismatch, len(s.LightWalls), len(s.Walls))
		}
		for i, t := range s.LightWalls {
			if err := checkSize(t); err != nil {
				return fmt.Errorf("light wall %d: %w", i, err)
			}
		}
	}
	for name, t := range map[string]Texture{"floor": s.Floor, "ceiling": s.Ceiling} {
		if t == nil {
			continue
		}
		if err := checkSize(t); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	for i, t := range s.Sprites {
		if err := checkSize(t); err != nil {
			return fmt.Errorf("sprite %d: %w", i, err)
		}
	}
	return nil
}

// Wall returns wall texture index, or its light variant when light is true.
func (s *Set) Wall(index int, light bool) Texture {
	if light && s.LightWalls != nil {
		return s.LightWalls[index]
	}
	return s.Walls[index]
}

// Step advances every animated texture in the set by one frame. Textures
// shared between slots are advanced once.
func (s *Set) Step() {
	seen := make(map[*Animated]bool)
	step := func(t Texture) {
		if a, ok := t.(*Animated); ok && !seen[a] {
			seen[a] = true
			a.Step()
		}
	}
	for _, t := range s.Walls {
		step(t)
	}
	for _, t := range s.LightWalls {
		step(t)
	}
	step(s.Floor)
	step(s.Ceiling)
	for _, t := range s.Sprites {
		step(t)
	}
}
