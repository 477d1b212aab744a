package assets

import (
	"fmt"
	"sort"
)

// Palette is a named set of fallback colors and wall textures.
type Palette struct {
	Ceiling string
	Floor   string
	Walls   []string
}

// Palettes maps palette name to its colors.
var Palettes = map[string]Palette{
	"classic": {
		Ceiling: "#384860",
		Floor:   "#505050",
		Walls:   []string{"spinner", "brick", "wood"},
	},
	"dungeon": {
		Ceiling: "#101010",
		Floor:   "#3a2e22",
		Walls:   []string{"greystone", "brick"},
	},
	"night": {
		Ceiling: "#0b1026",
		Floor:   "#1c1c1c",
		Walls:   []string{"bluestone", "dusk"},
	},
}

// PaletteNames returns the palette names in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(Palettes))
	for name := range Palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPalette returns the named palette.
func LookupPalette(name string) (Palette, error) {
	p, ok := Palettes[name]
	if !ok {
		return Palette{}, fmt.Errorf("assets: unknown palette %q (have %v)", name, PaletteNames())
	}
	return p, nil
}
