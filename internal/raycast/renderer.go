// Package raycast renders a first-person view of a grid map with the DDA
// raycasting algorithm. A Renderer produces a color buffer with two buffer
// rows per host character row; presenting it is up to the host.
package raycast

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"termcaster/internal/gamemap"
	"termcaster/internal/texture"
)

const (
	// DefaultHops is how many cells a ray may cross before giving up.
	DefaultHops = 20
	// DefaultFog is the distance darkening rate k in exp(-distance*k).
	DefaultFog = 0.05
	// DefaultMaxColumnHeight clamps wall strips for near-zero distances.
	DefaultMaxColumnHeight = 1000

	minDistance = 1e-9
	// horizonBias keeps the first floor distance finite.
	horizonBias = 0.001
)

// Options tunes a Renderer. Zero fields take the defaults.
type Options struct {
	// Hops is how many cells a ray may cross.
	Hops int
	// Fog is k in exp(-distance*k). Negative disables darkening.
	Fog float64
	// MaxColumnHeight clamps strips of walls nearer than one row.
	MaxColumnHeight int
	// Workers > 1 renders column bands concurrently. Output is identical
	// to a sequential render.
	Workers int
}

func (o Options) withDefaults() Options {
	if o.Hops <= 0 {
		o.Hops = DefaultHops
	}
	if o.Fog < 0 || math.IsNaN(o.Fog) {
		o.Fog = 0
	} else if o.Fog == 0 {
		o.Fog = DefaultFog
	}
	if o.MaxColumnHeight <= 0 {
		o.MaxColumnHeight = DefaultMaxColumnHeight
	}
	return o
}

// Renderer is the frame compositor. It is not safe for concurrent use; a
// host serving several viewers gives each its own Renderer, sharing the
// read-only map and textures.
type Renderer struct {
	world *gamemap.Map
	tex   *texture.Set
	opts  Options

	cols, rows int
	buf        *Buffer
	// offsets[c] is the view-plane offset t of column c, in [-1, 1].
	offsets []float64
	// floorDist[k] is the floor distance seen k buffer rows from the horizon.
	floorDist []float64
	zbuf      []float64

	sprites []Sprite
	order   []int

	cam  Camera
	rays []Vec
}

// New returns a Renderer for m painted with tex. Every wall code in m must
// have a texture in tex.
func New(m *gamemap.Map, tex *texture.Set, opts Options) (*Renderer, error) {
	r := &Renderer{opts: opts.withDefaults()}
	if err := r.SetScene(m, tex); err != nil {
		return nil, err
	}
	r.Resize(0, 0)
	return r, nil
}

// SetScene swaps the map and textures. It must not be called during Render.
func (r *Renderer) SetScene(m *gamemap.Map, tex *texture.Set) error {
	if m == nil || tex == nil {
		return fmt.Errorf("raycast: nil map or texture set")
	}
	if err := tex.Validate(); err != nil {
		return fmt.Errorf("texture set: %w", err)
	}
	if err := m.Validate(len(tex.Walls)); err != nil {
		return fmt.Errorf("map: %w", err)
	}
	if err := CheckSprites(r.sprites, tex); err != nil {
		return err
	}
	r.world, r.tex = m, tex
	return nil
}

// Options returns the effective options.
func (r *Renderer) Options() Options { return r.opts }

// Size returns the host size in columns and character rows.
func (r *Renderer) Size() (cols, rows int) { return r.cols, r.rows }

// Buffer returns the color buffer of the last render.
func (r *Renderer) Buffer() *Buffer { return r.buf }

// Resize reallocates the buffer for cols×rows character cells and
// recomputes the per-column ray table and floor distance table.
func (r *Renderer) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	r.cols, r.rows = cols, rows
	r.buf = NewBuffer(cols, rows*2)
	r.zbuf = make([]float64, cols)
	r.rays = make([]Vec, cols)

	r.offsets = make([]float64, cols)
	if cols > 1 {
		step := 2 / float64(cols-1)
		for c := range r.offsets {
			r.offsets[c] = -1 + float64(c)*step
		}
		r.offsets[cols-1] = 1
	}

	// Floor distance is inversely proportional to the offset from the
	// horizon; half is the horizon row of the doubled buffer.
	half := rows
	r.floorDist = make([]float64, half)
	step := (float64(half) - horizonBias) / float64(half)
	for k := range r.floorDist {
		r.floorDist[k] = float64(half) / (horizonBias + float64(k)*step)
	}
}

// RayTable returns a copy of the per-column view-plane offsets.
func (r *Renderer) RayTable() []float64 {
	return append([]float64(nil), r.offsets...)
}

// Prepare computes the world-space ray of every column for cam. Render
// calls it; Cast and Shade may be used directly after it.
func (r *Renderer) Prepare(cam Camera) {
	r.cam = cam
	for c, t := range r.offsets {
		r.rays[c] = cam.Ray(t)
	}
}

// Render draws one frame from cam and returns the buffer. The buffer is
// reused by the next Render.
func (r *Renderer) Render(cam Camera) *Buffer {
	r.Prepare(cam)

	half := r.buf.Height / 2
	r.buf.FillRows(0, half, r.tex.CeilingColor)
	r.buf.FillRows(half, r.buf.Height, r.tex.FloorColor)

	if r.opts.Workers > 1 && r.cols > 1 {
		band := (r.cols + r.opts.Workers - 1) / r.opts.Workers
		var g errgroup.Group
		g.SetLimit(r.opts.Workers)
		for lo := 0; lo < r.cols; lo += band {
			hi := min(lo+band, r.cols)
			g.Go(func() error {
				r.renderColumns(lo, hi)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		r.renderColumns(0, r.cols)
	}

	r.drawSprites()
	return r.buf
}

func (r *Renderer) renderColumns(lo, hi int) {
	for c := lo; c < hi; c++ {
		hit, ok := r.Cast(c)
		if ok {
			r.zbuf[c] = hit.Distance
		} else {
			r.zbuf[c] = math.Inf(1)
		}
		r.Shade(c, hit, ok)
	}
}
