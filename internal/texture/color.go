package texture

import (
	"fmt"
	"slices"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a "#rrggbb" (or "#rgb") hex color.
func ParseColor(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return fromColorful(c), nil
}

// Hex formats c as "#rrggbb".
func (c RGB) Hex() string { return toColorful(c).Hex() }

// Lighten returns a copy of img blended toward white in Lab space by amount
// (0 keeps the image, 1 is pure white). Alpha is preserved.
func Lighten(img *Image, amount float64) *Image {
	out := &Image{
		Width:  img.Width,
		Height: img.Height,
		Pix:    make([]RGB, len(img.Pix)),
		Alpha:  slices.Clone(img.Alpha),
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	for i, p := range img.Pix {
		out.Pix[i] = fromColorful(toColorful(p).BlendLab(white, amount))
	}
	return out
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}
