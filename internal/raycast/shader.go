package raycast

import (
	"math"

	"termcaster/internal/texture"
)

// ColumnHeight returns the wall strip height in buffer rows for a wall at
// distance. Near-zero distances clamp to a height that covers the buffer.
func (r *Renderer) ColumnHeight(distance float64) int {
	limit := max(r.opts.MaxColumnHeight, r.buf.Height)
	if distance <= minDistance {
		return limit
	}
	h := float64(r.buf.Height) / distance
	if h >= float64(limit) {
		return limit
	}
	return int(h)
}

// WallSpan returns the rows [start, end) covered by a strip of height
// columnHeight centered on the horizon.
func (r *Renderer) WallSpan(columnHeight int) (start, end int) {
	half := r.buf.Height >> 1
	halfColumn := min(columnHeight>>1, half)
	return half - halfColumn, half + halfColumn
}

// TextureColumn returns the texel column of hit on a texture w texels wide.
// Faces seen from the positive side of an axis are mirrored so a texture
// reads the same way from either side of a wall.
func TextureColumn(hit Hit, w int) int {
	x := min(int(hit.WallX*float64(w)), w-1)
	if (hit.Side == SideX && hit.Ray.X > 0) || (hit.Side == SideY && hit.Ray.Y < 0) {
		x = w - x - 1
	}
	return x
}

// Shade paints column of the buffer: wall strip for a hit, then ceiling
// above and floor below.
func (r *Renderer) Shade(column int, hit Hit, ok bool) {
	half := r.buf.Height >> 1
	start, end := half, half
	if ok {
		columnHeight := r.ColumnHeight(hit.Distance)
		start, end = r.WallSpan(columnHeight)
		r.paintWall(column, hit, columnHeight, start, end)
	}
	r.paintFlats(column, hit, ok, start, end)
}

func (r *Renderer) paintWall(column int, hit Hit, columnHeight, start, end int) {
	drawn := end - start
	if drawn <= 0 {
		return
	}
	tex := r.tex.Wall(hit.Texture, hit.Side == SideY)
	tw, th := tex.Size()
	texX := TextureColumn(hit, tw)

	// Sample only the visible middle of a strip taller than the buffer.
	offset := float64(columnHeight-drawn) / 2
	ratio := float64(th) / float64(columnHeight)
	texStart := offset * ratio

	shade := math.Exp(-hit.Distance * r.opts.Fog)
	for i := range drawn {
		texY := min(int(texStart+float64(i)*ratio), th-1)
		r.buf.Set(column, start+i, darken(tex.At(texX, texY), shade))
	}
}

func (r *Renderer) paintFlats(column int, hit Hit, ok bool, start, end int) {
	floor, ceiling := r.tex.Floor, r.tex.Ceiling
	if floor == nil && ceiling == nil {
		for y := 0; y < start; y++ {
			r.buf.Set(column, y, r.tex.CeilingColor)
		}
		for y := end; y < r.buf.Height; y++ {
			r.buf.Set(column, y, r.tex.FloorColor)
		}
		return
	}

	// Project from the camera through the wall hit; without a hit, through
	// the point one ray length away.
	pos := r.cam.Pos
	anchor, dist := hit.Point, hit.Distance
	if !ok {
		anchor, dist = pos.Add(r.rays[column]), 1
	}

	half := r.buf.Height >> 1
	for k := half - start; k < half; k++ {
		w := r.floorDist[k] / dist
		fx := frac(w*anchor.X + (1-w)*pos.X)
		fy := frac(w*anchor.Y + (1-w)*pos.Y)

		ceilingRow, floorRow := half-1-k, half+k
		if ceiling != nil {
			r.buf.Set(column, ceilingRow, sample(ceiling, fx, fy))
		} else {
			r.buf.Set(column, ceilingRow, r.tex.CeilingColor)
		}
		if floor != nil {
			r.buf.Set(column, floorRow, sample(floor, fx, fy))
		} else {
			r.buf.Set(column, floorRow, r.tex.FloorColor)
		}
	}
}

// sample reads tiled texture t at fractional coordinates (fx, fy).
func sample(t texture.Texture, fx, fy float64) texture.RGB {
	w, h := t.Size()
	return t.At(min(int(fx*float64(w)), w-1), min(int(fy*float64(h)), h-1))
}

func darken(c texture.RGB, shade float64) texture.RGB {
	return texture.RGB{R: scale(c.R, shade), G: scale(c.G, shade), B: scale(c.B, shade)}
}

func scale(v uint8, s float64) uint8 {
	return uint8(max(0, min(255, float64(v)*s)))
}

func frac(v float64) float64 { return v - math.Floor(v) }
