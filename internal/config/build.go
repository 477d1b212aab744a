package config

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"termcaster/assets"
	"termcaster/internal/gamemap"
	"termcaster/internal/generate"
	"termcaster/internal/raycast"
	"termcaster/internal/texture"
)

// World is a scene resolved into everything a viewer needs.
type World struct {
	Map      *gamemap.Map
	Textures *texture.Set
	Camera   raycast.Camera
	Sprites  []raycast.Sprite
	Options  raycast.Options
	Frame    time.Duration
	Minimap  MinimapConfig
}

// Build resolves textures, the map and the camera. Every problem is
// reported up front, wrapped with the setting it came from.
func (s *Scene) Build() (*World, error) {
	if s.Frame <= 0 {
		return nil, fmt.Errorf("%w: frame interval %v", ErrScene, s.Frame)
	}
	if s.TextureSize <= 0 {
		s.TextureSize = assets.DefaultSize
	}
	palette, err := assets.LookupPalette(cmp.Or(s.Palette, assets.DefaultPalette))
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}

	set, err := s.textures(palette)
	if err != nil {
		return nil, err
	}

	w := &World{
		Textures: set,
		Options: raycast.Options{
			Hops:            s.Render.Hops,
			Fog:             s.Render.Fog,
			Workers:         s.Render.Workers,
			MaxColumnHeight: s.Render.MaxColumnHeight,
		},
		Frame:   s.Frame,
		Minimap: s.Minimap,
	}

	pos := raycast.Vec{X: s.Camera.X, Y: s.Camera.Y}
	if s.Generate.Width > 0 {
		lv, props, err := s.generate(len(set.Walls), len(set.Sprites))
		if err != nil {
			return nil, err
		}
		w.Map = lv.Map
		pos = raycast.Vec{X: float64(lv.StartX) + 0.5, Y: float64(lv.StartY) + 0.5}
		for _, p := range props {
			w.Sprites = append(w.Sprites, raycast.Sprite{Pos: raycast.Vec{X: p.X, Y: p.Y}, Texture: p.Kind})
		}
	} else {
		if w.Map, err = gamemap.New(s.Map); err != nil {
			return nil, fmt.Errorf("map: %w", err)
		}
		for i, sp := range s.Sprites {
			if sp.Texture < 0 || sp.Texture >= len(set.Sprites) {
				return nil, fmt.Errorf("%w: sprite %d uses texture %d of %d", ErrScene, i, sp.Texture, len(set.Sprites))
			}
			w.Sprites = append(w.Sprites, raycast.Sprite{Pos: raycast.Vec{X: sp.X, Y: sp.Y}, Texture: sp.Texture})
		}
	}
	if err := w.Map.Validate(len(set.Walls)); err != nil {
		return nil, fmt.Errorf("map: %w", err)
	}

	if s.Camera.FOV <= 0 || s.Camera.FOV >= 180 {
		return nil, fmt.Errorf("%w: field of view %v° not in (0, 180)", ErrScene, s.Camera.FOV)
	}
	w.Camera = raycast.CameraAt(pos, s.Camera.Angle*math.Pi/180, s.Camera.FOV*math.Pi/180)
	if err := w.Camera.Validate(); err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	if !w.Map.IsOpen(int(math.Floor(pos.X)), int(math.Floor(pos.Y))) {
		return nil, fmt.Errorf("%w: camera at (%v, %v) is not in an open cell", ErrScene, pos.X, pos.Y)
	}
	return w, nil
}

func (s *Scene) generate(textures, spriteKinds int) (*generate.Level, []generate.Prop, error) {
	seed := s.Generate.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := generate.DefaultConfig(s.Generate.Width, cmp.Or(s.Generate.Height, s.Generate.Width), seed)
	cfg.Textures = textures
	cfg.Props = s.Generate.Props
	cfg.PropKinds = spriteKinds
	lv, err := generate.Generate(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("generate: %w", err)
	}
	return lv, generate.Populate(lv, cfg), nil
}

func (s *Scene) textures(palette assets.Palette) (*texture.Set, error) {
	set := &texture.Set{}
	walls := s.Walls
	if len(walls) == 0 {
		walls = palette.Walls
	}
	var err error
	if set.Walls, err = s.resolveAll("wall", walls); err != nil {
		return nil, err
	}

	switch {
	case len(s.LightWalls) > 0:
		if set.LightWalls, err = s.resolveAll("light wall", s.LightWalls); err != nil {
			return nil, err
		}
	case s.Lighten > 0:
		set.LightWalls = make([]texture.Texture, len(set.Walls))
		for i, t := range set.Walls {
			set.LightWalls[i] = lighten(t, s.Lighten)
		}
	}

	if s.Floor != "" {
		if set.Floor, err = s.resolve(s.Floor); err != nil {
			return nil, fmt.Errorf("floor: %w", err)
		}
	}
	if s.Ceiling != "" {
		if set.Ceiling, err = s.resolve(s.Ceiling); err != nil {
			return nil, fmt.Errorf("ceiling: %w", err)
		}
	}
	if set.FloorColor, err = texture.ParseColor(cmp.Or(s.FloorColor, palette.Floor)); err != nil {
		return nil, fmt.Errorf("floor color: %w", err)
	}
	if set.CeilingColor, err = texture.ParseColor(cmp.Or(s.CeilingColor, palette.Ceiling)); err != nil {
		return nil, fmt.Errorf("ceiling color: %w", err)
	}
	if set.Sprites, err = s.resolveAll("sprite texture", s.SpriteTextures); err != nil {
		return nil, err
	}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("textures: %w", err)
	}
	return set, nil
}

// lighten returns a lighter variant of t. Textures that cannot be
// lightened are reused as they are.
func lighten(t texture.Texture, amount float64) texture.Texture {
	switch t := t.(type) {
	case *texture.Image:
		return texture.Lighten(t, amount)
	case *texture.Animated:
		return t.Lighten(amount)
	}
	return t
}

func (s *Scene) resolveAll(what string, specs []string) ([]texture.Texture, error) {
	out := make([]texture.Texture, len(specs))
	for i, spec := range specs {
		t, err := s.resolve(spec)
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w", what, i, err)
		}
		out[i] = t
	}
	return out, nil
}

// resolve turns a texture spec into a texture: "#rrggbb" is a solid color,
// a builtin name a procedural texture, anything else an image file scaled
// to the scene texture size.
func (s *Scene) resolve(spec string) (texture.Texture, error) {
	if strings.HasPrefix(spec, "#") {
		c, err := texture.ParseColor(spec)
		if err != nil {
			return nil, err
		}
		return texture.Solid(c, s.TextureSize), nil
	}
	t, err := assets.Builtin(spec, s.TextureSize)
	if !errors.Is(err, assets.ErrUnknownTexture) {
		return t, err
	}
	path := spec
	if !filepath.IsAbs(path) && s.dir != "" {
		path = filepath.Join(s.dir, path)
	}
	img, err := texture.Load(path)
	if err != nil {
		return nil, err
	}
	return texture.Resize(img, s.TextureSize, s.TextureSize), nil
}
