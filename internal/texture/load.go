package texture

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Load decodes the image file at path into an Image.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()
	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", path, err)
	}
	return img, nil
}

// Decode reads any registered image format (PNG, JPEG, GIF, BMP, WebP).
func Decode(r io.Reader) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return FromImage(src), nil
}

// FromImage converts a standard library image.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	img := NewImage(b.Dx(), b.Dy())
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			img.Set(x, y, RGB{c.R, c.G, c.B})
			img.SetAlpha(x, y, c.A)
		}
	}
	return img
}

// ToNRGBA converts img to a standard library image.
func ToNRGBA(img *Image) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			a := uint8(255)
			if img.Alpha != nil {
				a = img.Alpha[y*img.Width+x]
			}
			out.SetNRGBA(x, y, color.NRGBA{c.R, c.G, c.B, a})
		}
	}
	return out
}

// Resize scales img to w×h with nearest-neighbour sampling.
func Resize(img *Image, w, h int) *Image {
	if img.Width == w && img.Height == h {
		return img
	}
	src := ToNRGBA(img)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return FromImage(dst)
}
