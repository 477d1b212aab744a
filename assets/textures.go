package assets

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"termcaster/internal/texture"
)

// ErrUnknownTexture is returned by Builtin for names it does not know.
var ErrUnknownTexture = errors.New("assets: unknown builtin texture")

// SpinnerFrames is the number of frames in the "spinner" animation.
const SpinnerFrames = 8

var builtins = map[string]func(size int) (texture.Texture, error){
	"brick": func(size int) (texture.Texture, error) {
		return texture.Brick(hex("#a23c2c"), hex("#c9c1b3"), size), nil
	},
	"bluestone": func(size int) (texture.Texture, error) {
		return texture.Checker(hex("#1f2f5c"), hex("#2f4680"), size, 4), nil
	},
	"greystone": func(size int) (texture.Texture, error) {
		return texture.Checker(hex("#5c5c5c"), hex("#777777"), size, 4), nil
	},
	"wood": func(size int) (texture.Texture, error) {
		return texture.Stripes(size, hex("#6b4423"), hex("#7d5330"), hex("#5a3a1e")), nil
	},
	"dusk": func(size int) (texture.Texture, error) {
		return texture.Gradient(hex("#141e46"), hex("#e07a5f"), size, size), nil
	},
	"spinner": spinner,
	"python":  python,
}

// Names returns the builtin texture names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns a fresh size×size instance of the named texture.
func Builtin(name string, size int) (texture.Texture, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTexture, name)
	}
	if size <= 0 {
		return nil, fmt.Errorf("builtin %q: %w", name, texture.ErrZeroSize)
	}
	return build(size)
}

// spinner is a ring of dots with one bright dot walking around it.
func spinner(size int) (texture.Texture, error) {
	bg, dim, lit := hex("#202028"), hex("#4a4a6a"), hex("#f2cc8f")
	c := float64(size) / 2
	dotR := math.Max(1, float64(size)/10)
	frames := make([]*texture.Image, SpinnerFrames)
	for f := range frames {
		img := texture.Solid(bg, size)
		for d := range SpinnerFrames {
			a := 2 * math.Pi * float64(d) / SpinnerFrames
			dx, dy := c+math.Cos(a)*c*0.6, c+math.Sin(a)*c*0.6
			col := dim
			if d == f {
				col = lit
			}
			disc(img, dx, dy, dotR, col)
		}
		frames[f] = img
	}
	return texture.NewAnimated(frames...)
}

// python is a two-tone snake head on a transparent background.
func python(size int) (texture.Texture, error) {
	img := texture.NewImage(size, size)
	for y := range size {
		for x := range size {
			img.SetAlpha(x, y, 0)
		}
	}
	s := float64(size)
	disc(img, s*0.4, s*0.4, s*0.3, hex("#3776ab"))
	disc(img, s*0.6, s*0.6, s*0.3, hex("#ffd43b"))
	disc(img, s*0.32, s*0.3, math.Max(0.5, s/16), texture.White)
	return img, nil
}

// disc paints an opaque filled circle.
func disc(img *texture.Image, cx, cy, r float64, c texture.RGB) {
	for y := range img.Height {
		for x := range img.Width {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, c)
				img.SetAlpha(x, y, 255)
			}
		}
	}
}

func hex(s string) texture.RGB {
	c, err := texture.ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
