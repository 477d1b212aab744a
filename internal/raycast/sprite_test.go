package raycast

import (
	"errors"
	"testing"

	"termcaster/internal/texture"
)

func spriteScene(t *testing.T, rows [][]int) *Renderer {
	t.Helper()
	clear := texture.NewImage(4, 4)
	for y := range 4 {
		for x := range 4 {
			clear.SetAlpha(x, y, 0)
		}
	}
	set := flatSet(solidRed())
	set.Sprites = []texture.Texture{texture.Solid(green, 4), texture.Solid(blue, 4), clear}
	r := newTestRenderer(t, rows, set, Options{})
	r.Resize(21, 10)
	return r
}

var eastCamera = Camera{Pos: Vec{1.5, 5.5}, Dir: Vec{1, 0}, Plane: Vec{0, 0.66}}

func TestSpriteIsDrawnInFrontOfFarWall(t *testing.T) {
	r := spriteScene(t, ringRows(10, 10))
	if err := r.SetSprites([]Sprite{{Pos: Vec{5.5, 5.5}, Texture: 0}}); err != nil {
		t.Fatal(err)
	}
	buf := r.Render(eastCamera)

	if px := buf.At(10, 10); px.G < 150 || px.R != 0 || px.B != 0 {
		t.Errorf("sprite center = %v, want green", px)
	}
	if px := buf.At(0, 10); px.R < 100 || px.G != 0 {
		t.Errorf("edge column = %v, want wall red", px)
	}
}

func TestSpriteBehindWallIsHidden(t *testing.T) {
	rows := ringRows(10, 10)
	rows[5][3] = 1
	r := spriteScene(t, rows)
	if err := r.SetSprites([]Sprite{{Pos: Vec{5.5, 5.5}, Texture: 0}}); err != nil {
		t.Fatal(err)
	}
	buf := r.Render(eastCamera)
	if px := buf.At(10, 10); px.G != 0 || px.R < 200 {
		t.Errorf("occluded sprite center = %v, want wall red", px)
	}
}

func TestNearerSpriteWins(t *testing.T) {
	r := spriteScene(t, ringRows(10, 10))
	// Listed near first; drawing order must not depend on it.
	err := r.SetSprites([]Sprite{
		{Pos: Vec{4.5, 5.5}, Texture: 0},
		{Pos: Vec{7.5, 5.5}, Texture: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	if px := r.Render(eastCamera).At(10, 10); px.G == 0 || px.B != 0 {
		t.Errorf("overlap = %v, want the nearer green sprite", px)
	}
}

func TestTransparentSpriteTexelsAreSkipped(t *testing.T) {
	r := spriteScene(t, ringRows(10, 10))
	want := r.Render(eastCamera).Clone()

	if err := r.SetSprites([]Sprite{{Pos: Vec{5.5, 5.5}, Texture: 2}}); err != nil {
		t.Fatal(err)
	}
	if got := r.Render(eastCamera); !got.Equal(want) {
		t.Error("fully transparent sprite changed the frame")
	}
}

func TestSpriteBehindCameraIsSkipped(t *testing.T) {
	r := spriteScene(t, ringRows(10, 10))
	cam := eastCamera
	cam.Pos = Vec{5.5, 5.5}
	want := r.Render(cam).Clone()

	if err := r.SetSprites([]Sprite{{Pos: Vec{3.5, 5.5}, Texture: 0}}); err != nil {
		t.Fatal(err)
	}
	if got := r.Render(cam); !got.Equal(want) {
		t.Error("sprite behind the camera was drawn")
	}
}

func TestSetSpritesRejectsUnknownTexture(t *testing.T) {
	r := spriteScene(t, ringRows(10, 10))
	for _, idx := range []int{-1, 3} {
		err := r.SetSprites([]Sprite{{Pos: Vec{2, 2}, Texture: idx}})
		if !errors.Is(err, ErrSpriteTexture) {
			t.Errorf("texture %d: err = %v, want ErrSpriteTexture", idx, err)
		}
	}
}
