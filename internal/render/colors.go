package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"
)

// MinimapTheme holds the glyphs and colors of the minimap overlay. Wall
// glyphs are two columns wide in total, one map cell each.
type MinimapTheme struct {
	Wall      string
	Floor     string
	WallFG    tcell.Color
	DimWallFG tcell.Color
	FloorFG   tcell.Color
	ViewerFG  tcell.Color
	Prop      string
}

// MinimapThemes maps a theme name to its overlay style.
var MinimapThemes = map[string]MinimapTheme{
	"classic": {
		Wall:      "██",
		Floor:     "··",
		WallFG:    tcell.ColorSilver,
		DimWallFG: tcell.ColorGray,
		FloorFG:   tcell.ColorDarkGray,
		ViewerFG:  tcell.ColorYellow,
		Prop:      "◆",
	},
	"amber": {
		Wall:      "▓▓",
		Floor:     "  ",
		WallFG:    tcell.ColorOrange,
		DimWallFG: tcell.ColorMaroon,
		FloorFG:   tcell.ColorMaroon,
		ViewerFG:  tcell.ColorWhite,
		Prop:      "•",
	},
	"emoji": {
		Wall:      "🧱",
		Floor:     "  ",
		WallFG:    tcell.ColorWhite,
		DimWallFG: tcell.ColorGray,
		FloorFG:   tcell.ColorGray,
		ViewerFG:  tcell.ColorYellow,
		Prop:      "🪴",
	},
}

// ThemeNames returns the names of MinimapThemes in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(MinimapThemes))
	for name := range MinimapThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
