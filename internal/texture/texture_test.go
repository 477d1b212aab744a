package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestCheckerAlternates(t *testing.T) {
	a, b := RGB{255, 0, 0}, RGB{0, 0, 255}
	img := Checker(a, b, 8, 2)
	cases := []struct {
		x, y int
		want RGB
	}{
		{0, 0, a},
		{3, 3, a},
		{4, 0, b},
		{0, 4, b},
		{7, 7, a},
	}
	for _, c := range cases {
		if got := img.At(c.x, c.y); got != c.want {
			t.Errorf("At(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestStripesColumns(t *testing.T) {
	img := Stripes(4, RGB{1, 0, 0}, RGB{2, 0, 0})
	if img.At(0, 3).R != 1 || img.At(1, 3).R != 2 || img.At(2, 0).R != 1 {
		t.Fatalf("stripes should repeat per column, got %v %v %v", img.At(0, 3), img.At(1, 3), img.At(2, 0))
	}
}

func TestOpaque(t *testing.T) {
	img := Solid(White, 2)
	if !img.Opaque(1, 1) {
		t.Fatal("images start opaque")
	}
	img.SetAlpha(1, 1, 255)
	if img.Alpha != nil {
		t.Fatal("setting full alpha should not allocate a mask")
	}
	img.SetAlpha(1, 1, 0)
	if img.Opaque(1, 1) {
		t.Error("texel with zero alpha should be transparent")
	}
	if !img.Opaque(0, 0) {
		t.Error("other texels should stay opaque")
	}
}

func TestSetValidate(t *testing.T) {
	wall := Solid(White, 4)
	cases := []struct {
		name string
		set  Set
		want error
	}{
		{"ok", Set{Walls: []Texture{wall}}, nil},
		{"no walls", Set{}, ErrNoWalls},
		{"nil wall", Set{Walls: []Texture{nil}}, ErrNilTexture},
		{"zero size", Set{Walls: []Texture{NewImage(0, 4)}}, ErrZeroSize},
		{"light mismatch", Set{Walls: []Texture{wall}, LightWalls: []Texture{}}, ErrLightMismatch},
		{"bad floor", Set{Walls: []Texture{wall}, Floor: NewImage(3, 0)}, ErrZeroSize},
		{"nil sprite", Set{Walls: []Texture{wall}, Sprites: []Texture{nil}}, ErrNilTexture},
		{"nil image", Set{Walls: []Texture{(*Image)(nil)}}, ErrNilTexture},
		{"short pixels", Set{Walls: []Texture{&Image{Width: 4, Height: 4}}}, ErrPixelCount},
		{"short alpha", Set{Walls: []Texture{&Image{Width: 2, Height: 2, Pix: make([]RGB, 4), Alpha: []uint8{255}}}}, ErrPixelCount},
		{"long pixels", Set{Walls: []Texture{&Image{Width: 1, Height: 1, Pix: make([]RGB, 2)}}}, ErrPixelCount},
		{"bad animation frame", Set{Walls: []Texture{&Animated{frames: []*Image{NewImage(2, 2), {Width: 2, Height: 2}}}}}, ErrPixelCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.set.Validate()
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestWallFallsBackToWalls(t *testing.T) {
	dark, light := Solid(Black, 2), Solid(White, 2)
	s := Set{Walls: []Texture{dark}}
	if s.Wall(0, true) != Texture(dark) {
		t.Error("without LightWalls the light variant should be the wall itself")
	}
	s.LightWalls = []Texture{light}
	if s.Wall(0, true) != Texture(light) {
		t.Error("light variant should come from LightWalls")
	}
	if s.Wall(0, false) != Texture(dark) {
		t.Error("normal variant should come from Walls")
	}
}

func TestAnimatedStepAndTwin(t *testing.T) {
	red, green := Solid(RGB{255, 0, 0}, 2), Solid(RGB{0, 255, 0}, 2)
	anim, err := NewAnimated(red, green)
	if err != nil {
		t.Fatal(err)
	}
	twin := anim.Lighten(0.5)

	s := Set{Walls: []Texture{anim, anim}, LightWalls: []Texture{twin, twin}}
	s.Step()
	if anim.Frame() != 1 {
		t.Fatalf("shared animation should step once, frame = %d", anim.Frame())
	}
	if twin.Frame() != 1 {
		t.Errorf("twin frame = %d, want 1", twin.Frame())
	}
	if got := anim.At(0, 0); got != (RGB{0, 255, 0}) {
		t.Errorf("frame 1 color = %v", got)
	}
	s.Step()
	if anim.Frame() != 0 {
		t.Errorf("animation should wrap, frame = %d", anim.Frame())
	}
}

func TestNewAnimatedRejectsMixedSizes(t *testing.T) {
	_, err := NewAnimated(Solid(White, 2), Solid(White, 3))
	if !errors.Is(err, ErrFrameSize) {
		t.Errorf("NewAnimated() = %v, want ErrFrameSize", err)
	}
	if _, err := NewAnimated(); !errors.Is(err, ErrNilTexture) {
		t.Errorf("NewAnimated() with no frames = %v, want ErrNilTexture", err)
	}
}

func TestLightenBrightens(t *testing.T) {
	img := Solid(RGB{80, 40, 20}, 2)
	out := Lighten(img, 0.4)
	got, src := out.At(0, 0), img.At(0, 0)
	if int(got.R)+int(got.G)+int(got.B) <= int(src.R)+int(src.G)+int(src.B) {
		t.Errorf("Lighten(%v) = %v, want brighter", src, got)
	}
	if img.At(0, 0) != src {
		t.Error("Lighten must not modify its input")
	}
	if w := Lighten(Solid(White, 1), 0.5).At(0, 0); w != White {
		t.Errorf("white should stay white, got %v", w)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#ff0000", RGB{255, 0, 0}, false},
		{"#00ff80", RGB{0, 255, 128}, false},
		{"#fff", RGB{255, 255, 255}, false},
		{"red", RGB{}, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseColor(c.in)
			if (err != nil) != c.wantErr {
				t.Fatalf("ParseColor(%q) error = %v", c.in, err)
			}
			if !c.wantErr && got != c.want {
				t.Errorf("ParseColor(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
	if h := (RGB{255, 0, 128}).Hex(); h != "#ff0080" {
		t.Errorf("Hex() = %q", h)
	}
}

func TestDecodePNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{10, 20, 30, 255})
	src.SetNRGBA(1, 0, color.NRGBA{0, 0, 0, 0})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}
	img, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if w, h := img.Size(); w != 2 || h != 1 {
		t.Fatalf("size = %dx%d, want 2x1", w, h)
	}
	if got := img.At(0, 0); got != (RGB{10, 20, 30}) {
		t.Errorf("At(0,0) = %v", got)
	}
	if img.Opaque(1, 0) {
		t.Error("transparent pixel should decode as transparent")
	}
}

func TestResizeNearest(t *testing.T) {
	img := Checker(White, Black, 2, 2)
	out := Resize(img, 4, 4)
	if w, h := out.Size(); w != 4 || h != 4 {
		t.Fatalf("size = %dx%d", w, h)
	}
	if out.At(0, 0) != White || out.At(1, 1) != White || out.At(2, 0) != Black || out.At(3, 3) != White {
		t.Errorf("nearest-neighbour upscale lost the checker pattern")
	}
	if Resize(img, 2, 2) != img {
		t.Error("resizing to the same size should return the input")
	}
}
