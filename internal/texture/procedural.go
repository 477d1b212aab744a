package texture

// Solid returns a size×size texture of a single color.
func Solid(c RGB, size int) *Image {
	img := NewImage(size, size)
	for i := range img.Pix {
		img.Pix[i] = c
	}
	return img
}

// Checker returns a size×size checkerboard with cells squares per side.
func Checker(a, b RGB, size, cells int) *Image {
	img := NewImage(size, size)
	cell := max(1, size/max(1, cells))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.Set(x, y, a)
			} else {
				img.Set(x, y, b)
			}
		}
	}
	return img
}

// Brick returns a size×size running-bond brick pattern.
func Brick(brick, mortar RGB, size int) *Image {
	img := NewImage(size, size)
	rowH := max(2, size/4)
	brickW := max(2, size/2)
	for y := 0; y < size; y++ {
		row := y / rowH
		shift := 0
		if row%2 == 1 {
			shift = brickW / 2
		}
		for x := 0; x < size; x++ {
			if y%rowH == 0 || (x+shift)%brickW == 0 {
				img.Set(x, y, mortar)
			} else {
				img.Set(x, y, brick)
			}
		}
	}
	return img
}

// Gradient returns a w×h vertical gradient from top to bottom.
func Gradient(top, bottom RGB, w, h int) *Image {
	img := NewImage(w, h)
	lerp := func(a, b uint8, t float64) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		c := RGB{lerp(top.R, bottom.R, t), lerp(top.G, bottom.G, t), lerp(top.B, bottom.B, t)}
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// Stripes returns a size×size texture of vertical stripes, one column of
// colors[i%len(colors)] per texel column. Useful for telling texture columns
// apart.
func Stripes(size int, colors ...RGB) *Image {
	img := NewImage(size, size)
	if len(colors) == 0 {
		return img
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, colors[x%len(colors)])
		}
	}
	return img
}
