package raycast

import (
	"slices"

	"termcaster/internal/texture"
)

// Buffer is a row-major color buffer. A renderer's buffer has twice as many
// rows as the host has character rows; rows 2r and 2r+1 share one cell.
type Buffer struct {
	Width, Height int
	Pix           []texture.RGB
}

// NewBuffer returns a black w×h buffer.
func NewBuffer(w, h int) *Buffer {
	return &Buffer{Width: w, Height: h, Pix: make([]texture.RGB, w*h)}
}

// At returns pixel (x, y).
func (b *Buffer) At(x, y int) texture.RGB { return b.Pix[y*b.Width+x] }

// Set replaces pixel (x, y).
func (b *Buffer) Set(x, y int, c texture.RGB) { b.Pix[y*b.Width+x] = c }

// FillRows paints rows [y0, y1) with c.
func (b *Buffer) FillRows(y0, y1 int, c texture.RGB) {
	for i := y0 * b.Width; i < y1*b.Width; i++ {
		b.Pix[i] = c
	}
}

// Rows returns the number of character rows the buffer packs into.
func (b *Buffer) Rows() int { return b.Height / 2 }

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{Width: b.Width, Height: b.Height, Pix: slices.Clone(b.Pix)}
}

// Equal reports whether both buffers have the same size and pixels.
func (b *Buffer) Equal(o *Buffer) bool {
	return b.Width == o.Width && b.Height == o.Height && slices.Equal(b.Pix, o.Pix)
}
