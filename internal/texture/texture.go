// Package texture provides the wall, floor, ceiling and sprite images read by
// the ray caster.
package texture

import (
	"errors"
	"fmt"
)

var (
	// ErrNilTexture is returned when a Set slot holds a nil texture.
	ErrNilTexture = errors.New("texture: nil texture")
	// ErrZeroSize is returned for textures without pixels.
	ErrZeroSize = errors.New("texture: zero-sized texture")
	// ErrLightMismatch is returned when LightWalls and Walls differ in length.
	ErrLightMismatch = errors.New("texture: light walls do not match walls")
	// ErrFrameSize is returned when animation frames differ in size.
	ErrFrameSize = errors.New("texture: animation frames differ in size")
	// ErrPixelCount is returned when an image's pixel or alpha slice does not
	// hold Width*Height entries.
	ErrPixelCount = errors.New("texture: pixel count does not match size")
	// ErrNoWalls is returned for a Set without wall textures.
	ErrNoWalls = errors.New("texture: no wall textures")
)

// RGB is one 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Common flat colors.
var (
	Black = RGB{}
	White = RGB{255, 255, 255}
)

// Texture is a fixed-size image sampled by the renderer. Implementations
// must be safe for concurrent reads while no host mutation is in flight.
type Texture interface {
	// Size returns the width and height in texels.
	Size() (w, h int)
	// At returns the color of texel (x, y).
	At(x, y int) RGB
	// Opaque reports whether texel (x, y) is drawn. Walls ignore it; sprites
	// skip transparent texels.
	Opaque(x, y int) bool
}

// Image is a row-major RGB image with an optional alpha mask.
type Image struct {
	Width, Height int
	Pix           []RGB
	// Alpha is nil for fully opaque images.
	Alpha []uint8
}

// NewImage returns a black, opaque w×h image.
func NewImage(w, h int) *Image {
	return &Image{Width: w, Height: h, Pix: make([]RGB, w*h)}
}

// Size returns the image dimensions.
func (im *Image) Size() (int, int) { return im.Width, im.Height }

// At returns texel (x, y). Panics if out of bounds.
func (im *Image) At(x, y int) RGB { return im.Pix[y*im.Width+x] }

// Set replaces texel (x, y).
func (im *Image) Set(x, y int, c RGB) { im.Pix[y*im.Width+x] = c }

// Opaque reports whether texel (x, y) has non-zero alpha.
func (im *Image) Opaque(x, y int) bool {
	return im.Alpha == nil || im.Alpha[y*im.Width+x] != 0
}

// SetAlpha sets the alpha of texel (x, y), allocating the mask on first use.
func (im *Image) SetAlpha(x, y int, a uint8) {
	if im.Alpha == nil {
		if a == 255 {
			return
		}
		im.Alpha = make([]uint8, len(im.Pix))
		for i := range im.Alpha {
			im.Alpha[i] = 255
		}
	}
	im.Alpha[y*im.Width+x] = a
}

// checkSize rejects textures the renderer could index out of range.
func checkSize(t Texture) error {
	switch t := t.(type) {
	case nil:
		return ErrNilTexture
	case *Image:
		if t == nil {
			return ErrNilTexture
		}
		return t.check()
	case *Animated:
		if t == nil {
			return ErrNilTexture
		}
		for i, f := range t.frames {
			if err := checkSize(f); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
		}
		return nil
	}
	if w, h := t.Size(); w <= 0 || h <= 0 {
		return ErrZeroSize
	}
	return nil
}

func (im *Image) check() error {
	if im.Width <= 0 || im.Height <= 0 {
		return ErrZeroSize
	}
	n := im.Width * im.Height
	if len(im.Pix) != n {
		return fmt.Errorf("%w: %d texels for %dx%d", ErrPixelCount, len(im.Pix), im.Width, im.Height)
	}
	if im.Alpha != nil && len(im.Alpha) != n {
		return fmt.Errorf("%w: %d alpha values for %dx%d", ErrPixelCount, len(im.Alpha), im.Width, im.Height)
	}
	return nil
}
