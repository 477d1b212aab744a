// Package assets holds the built-in scene, procedural textures and color
// palettes used when a scene file does not name its own.
package assets

// DefaultMap is a 10×10 room with a 2×2 pillar in the middle.
var DefaultMap = [][]int{
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 1, 1, 0, 0, 0, 1},
	{1, 0, 0, 0, 1, 1, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// DefaultSprites stand in the four corners of DefaultMap around the pillar.
var DefaultSprites = [][2]float64{
	{2.5, 2.5},
	{2.5, 7.5},
	{7.5, 7.5},
	{7.5, 2.5},
}

// Default scene values.
const (
	DefaultX       = 1.5
	DefaultY       = 1.5
	DefaultAngle   = 45.0 // degrees
	DefaultFOV     = 66.0 // degrees
	DefaultWall    = "spinner"
	DefaultFloor   = "greystone"
	DefaultCeiling = "bluestone"
	DefaultSprite  = "python"
	DefaultPalette = "classic"
	DefaultSize    = 32
)
