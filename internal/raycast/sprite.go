package raycast

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"termcaster/internal/texture"
)

// ErrSpriteTexture is returned for sprites whose texture index is not in the
// texture set.
var ErrSpriteTexture = errors.New("raycast: sprite texture out of range")

// Sprite is a one-cell billboard standing on the map.
type Sprite struct {
	Pos     Vec
	Texture int
}

// CheckSprites reports the first sprite whose texture is not in tex.
func CheckSprites(sprites []Sprite, tex *texture.Set) error {
	for i, s := range sprites {
		if s.Texture < 0 || s.Texture >= len(tex.Sprites) {
			return fmt.Errorf("sprite %d: %w", i, ErrSpriteTexture)
		}
	}
	return nil
}

// SetSprites replaces the sprites drawn by Render.
func (r *Renderer) SetSprites(sprites []Sprite) error {
	if err := CheckSprites(sprites, r.tex); err != nil {
		return err
	}
	r.sprites = append(r.sprites[:0], sprites...)
	return nil
}

// drawSprites paints sprites far to near over the walls, hiding columns
// where a wall is nearer than the sprite.
func (r *Renderer) drawSprites() {
	if len(r.sprites) == 0 || r.cols == 0 {
		return
	}
	cam := r.cam
	r.order = r.order[:0]
	for i := range r.sprites {
		r.order = append(r.order, i)
	}
	sqDist := func(i int) float64 {
		d := r.sprites[i].Pos.Sub(cam.Pos)
		return d.X*d.X + d.Y*d.Y
	}
	slices.SortStableFunc(r.order, func(a, b int) int {
		return cmp.Compare(sqDist(b), sqDist(a))
	})

	invDet := 1 / cam.Plane.Cross(cam.Dir)
	planeLen := cam.Plane.Len()
	for _, i := range r.order {
		s := r.sprites[i]
		rel := s.Pos.Sub(cam.Pos)
		// rel = t*depth*Plane + depth*Dir, solved for depth and t*depth.
		across := invDet * (cam.Dir.Y*rel.X - cam.Dir.X*rel.Y)
		depth := invDet * (cam.Plane.X*rel.Y - cam.Plane.Y*rel.X)
		if depth <= minDistance {
			continue
		}
		r.drawSprite(s, across/depth, depth, planeLen)
	}
}

func (r *Renderer) drawSprite(s Sprite, t, depth, planeLen float64) {
	tex := r.tex.Sprites[s.Texture]
	tw, th := tex.Size()

	center := (t + 1) * float64(r.cols-1) / 2
	width := float64(r.cols-1) / (2 * depth * planeLen)
	left := int(math.Floor(center - width/2))
	spanW := max(1, int(width))

	height := r.ColumnHeight(depth)
	top, bottom := r.WallSpan(height)
	first := (height - (bottom - top)) / 2
	shade := math.Exp(-depth * r.opts.Fog)

	for c := max(0, left); c < min(r.cols, left+spanW); c++ {
		if depth >= r.zbuf[c] {
			continue
		}
		texX := min((c-left)*tw/spanW, tw-1)
		for y := top; y < bottom; y++ {
			texY := min((first+y-top)*th/max(1, height), th-1)
			if !tex.Opaque(texX, texY) {
				continue
			}
			r.buf.Set(c, y, darken(tex.At(texX, texY), shade))
		}
	}
}
