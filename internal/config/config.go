// Package config loads scene settings from a file, the environment and
// command-line flags, and resolves them into a renderable world.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"termcaster/assets"
)

// EnvPrefix prefixes environment overrides, e.g. TERMCASTER_RENDER_FOG.
const EnvPrefix = "TERMCASTER"

// ErrScene is returned for scene settings that cannot be built.
var ErrScene = errors.New("config: invalid scene")

// Scene is the decoded scene description.
type Scene struct {
	// Map rows; ignored when Generate.Width > 0.
	Map      [][]int        `mapstructure:"map"`
	Generate GenerateConfig `mapstructure:"generate"`
	Camera   CameraConfig   `mapstructure:"camera"`

	// Texture specs: a builtin name, a "#rrggbb" color or an image path
	// relative to the scene file.
	Walls      []string `mapstructure:"walls"`
	LightWalls []string `mapstructure:"light_walls"`
	// Lighten derives light walls when LightWalls is empty; 0 disables.
	Lighten      float64        `mapstructure:"lighten"`
	Floor        string         `mapstructure:"floor"`
	Ceiling      string         `mapstructure:"ceiling"`
	FloorColor   string         `mapstructure:"floor_color"`
	CeilingColor string         `mapstructure:"ceiling_color"`
	Palette      string         `mapstructure:"palette"`
	TextureSize  int            `mapstructure:"texture_size"`
	Sprites      []SpriteConfig `mapstructure:"sprites"`
	// SpriteTextures are texture specs indexed by SpriteConfig.Texture.
	SpriteTextures []string `mapstructure:"sprite_textures"`

	Render  RenderConfig  `mapstructure:"render"`
	Frame   time.Duration `mapstructure:"frame"`
	Minimap MinimapConfig `mapstructure:"minimap"`

	// dir is the directory image paths are resolved against.
	dir string
}

// GenerateConfig asks for a random maze instead of fixed map rows.
type GenerateConfig struct {
	Width  int   `mapstructure:"width"`
	Height int   `mapstructure:"height"`
	Seed   int64 `mapstructure:"seed"`
	Props  int   `mapstructure:"props"`
}

// CameraConfig places the viewer. Angles are in degrees.
type CameraConfig struct {
	X     float64 `mapstructure:"x"`
	Y     float64 `mapstructure:"y"`
	Angle float64 `mapstructure:"angle"`
	FOV   float64 `mapstructure:"fov"`
}

// SpriteConfig is one billboard.
type SpriteConfig struct {
	X       float64 `mapstructure:"x"`
	Y       float64 `mapstructure:"y"`
	Texture int     `mapstructure:"texture"`
}

// RenderConfig mirrors raycast.Options.
type RenderConfig struct {
	Hops            int     `mapstructure:"hops"`
	Fog             float64 `mapstructure:"fog"`
	Workers         int     `mapstructure:"workers"`
	MaxColumnHeight int     `mapstructure:"max_column_height"`
}

// MinimapConfig controls the overlay.
type MinimapConfig struct {
	Theme  string `mapstructure:"theme"`
	Radius int    `mapstructure:"radius"`
	Show   bool   `mapstructure:"show"`
}

// flagKeys maps flag names to their configuration keys.
var flagKeys = map[string]string{
	"hops":          "render.hops",
	"fog":           "render.fog",
	"workers":       "render.workers",
	"fov":           "camera.fov",
	"frame":         "frame",
	"palette":       "palette",
	"seed":          "generate.seed",
	"maze-width":    "generate.width",
	"maze-height":   "generate.height",
	"props":         "generate.props",
	"minimap-theme": "minimap.theme",
	"texture-size":  "texture_size",
}

// Flags registers the scene flags on fs.
func Flags(fs *pflag.FlagSet) {
	fs.StringP("config", "c", "", "scene file (yaml, toml or json)")
	fs.Int("hops", 20, "cells a ray may cross before giving up")
	fs.Float64("fog", 0.05, "distance darkening rate; negative disables")
	fs.Int("workers", 1, "render column bands concurrently")
	fs.Float64("fov", assets.DefaultFOV, "horizontal field of view in degrees")
	fs.Duration("frame", 50*time.Millisecond, "frame interval")
	fs.String("palette", assets.DefaultPalette, "color palette: "+strings.Join(assets.PaletteNames(), ", "))
	fs.Int64("seed", 0, "maze generator seed (0 picks from the clock)")
	fs.Int("maze-width", 0, "generate a random maze this many cells wide")
	fs.Int("maze-height", 0, "generated maze height")
	fs.Int("props", 0, "sprites scattered in a generated maze")
	fs.String("minimap-theme", "classic", "minimap overlay theme")
	fs.Int("texture-size", assets.DefaultSize, "size of builtin textures")
}

// setDefaults registers the built-in scene.
func setDefaults(v *viper.Viper) {
	rows := make([][]int, len(assets.DefaultMap))
	for i, row := range assets.DefaultMap {
		rows[i] = slices.Clone(row)
	}
	v.SetDefault("map", rows)
	v.SetDefault("camera.x", assets.DefaultX)
	v.SetDefault("camera.y", assets.DefaultY)
	v.SetDefault("camera.angle", assets.DefaultAngle)
	v.SetDefault("camera.fov", assets.DefaultFOV)
	v.SetDefault("walls", []string{assets.DefaultWall})
	v.SetDefault("lighten", 0.25)
	v.SetDefault("floor", assets.DefaultFloor)
	v.SetDefault("ceiling", assets.DefaultCeiling)
	v.SetDefault("palette", assets.DefaultPalette)
	v.SetDefault("texture_size", assets.DefaultSize)
	v.SetDefault("sprite_textures", []string{assets.DefaultSprite})
	sprites := make([]map[string]any, len(assets.DefaultSprites))
	for i, s := range assets.DefaultSprites {
		sprites[i] = map[string]any{"x": s[0], "y": s[1], "texture": 0}
	}
	v.SetDefault("sprites", sprites)
	v.SetDefault("render.hops", 20)
	v.SetDefault("render.fog", 0.05)
	v.SetDefault("render.workers", 1)
	v.SetDefault("frame", 50*time.Millisecond)
	v.SetDefault("minimap.theme", "classic")
	v.SetDefault("minimap.radius", 8)
	v.SetDefault("minimap.show", true)
}

// New returns a viper instance with the built-in defaults, TERMCASTER_*
// environment overrides, and, when fs is non-nil, the flags of Flags bound.
// The scene file named by --config is read if given.
func New(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs == nil {
		return v, nil
	}
	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}
	if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
		v.SetConfigFile(f.Value.String())
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read scene: %w", err)
		}
	}
	return v, nil
}

// Load decodes the scene held by v.
func Load(v *viper.Viper) (*Scene, error) {
	var s Scene
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if file := v.ConfigFileUsed(); file != "" {
		s.dir = filepath.Dir(file)
	}
	return &s, nil
}
