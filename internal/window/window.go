// Package window hosts the raycaster in a desktop window through ebiten.
package window

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"termcaster/internal/config"
	"termcaster/internal/raycast"
	"termcaster/internal/system"
)

const (
	moveSpeed = 0.05 // cells per tick
	turnSpeed = 0.04 // radians per tick
)

// Game implements ebiten.Game over a raycast Renderer.
type Game struct {
	world    *config.World
	renderer *raycast.Renderer
	cam      raycast.Camera
	width    int
	height   int

	image     *ebiten.Image
	pix       []byte
	ticks     int
	stepEvery int
}

// New returns a game rendering w at width×height pixels. Height is rounded
// down to an even number since the renderer fills rows in pairs.
func New(w *config.World, width, height int) (*Game, error) {
	if width <= 0 || height < 2 {
		return nil, fmt.Errorf("window: bad size %dx%d", width, height)
	}
	r, err := raycast.New(w.Map, w.Textures, w.Options)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	if err := r.SetSprites(w.Sprites); err != nil {
		return nil, fmt.Errorf("sprites: %w", err)
	}
	height &^= 1
	r.Resize(width, height/2)
	return &Game{
		world:     w,
		renderer:  r,
		cam:       w.Camera,
		width:     width,
		height:    height,
		pix:       make([]byte, 4*width*height),
		stepEvery: ticksPer(w),
	}, nil
}

// ticksPer converts the world frame interval to update ticks.
func ticksPer(w *config.World) int {
	tick := float64(ebiten.DefaultTPS)
	return max(int(w.Frame.Seconds()*tick+0.5), 1)
}

// Update applies held keys and advances animated textures.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	forward, strafe, turn := motion(ebiten.IsKeyPressed)
	g.move(forward, strafe, turn)

	g.ticks++
	if g.ticks%g.stepEvery == 0 {
		g.world.Textures.Step()
	}
	return nil
}

func (g *Game) move(forward, strafe, turn float64) {
	if turn != 0 {
		g.cam.Rotate(turn * turnSpeed)
	}
	if forward != 0 || strafe != 0 {
		dx, dy := system.Walk(g.cam, forward*moveSpeed, strafe*moveSpeed)
		system.TryMove(g.world.Map, &g.cam, dx, dy, system.DefaultRadius)
	}
}

// Draw renders a frame and uploads it to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.image == nil {
		g.image = ebiten.NewImage(g.width, g.height)
	}
	fillRGBA(g.pix, g.renderer.Render(g.cam))
	g.image.WritePixels(g.pix)

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.image, op)
}

// Layout keeps the logical screen at the render size; ebiten scales it to
// the window.
func (g *Game) Layout(_, _ int) (int, int) { return g.width, g.height }

// Run opens a window scale times the render size.
func Run(g *Game, title string, scale int) error {
	ebiten.SetWindowSize(g.width*scale, g.height*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// motion reads the movement keys through pressed.
func motion(pressed func(ebiten.Key) bool) (forward, strafe, turn float64) {
	if pressed(ebiten.KeyW) || pressed(ebiten.KeyUp) {
		forward++
	}
	if pressed(ebiten.KeyS) || pressed(ebiten.KeyDown) {
		forward--
	}
	if pressed(ebiten.KeyD) {
		strafe++
	}
	if pressed(ebiten.KeyA) {
		strafe--
	}
	if pressed(ebiten.KeyE) || pressed(ebiten.KeyRight) {
		turn++
	}
	if pressed(ebiten.KeyQ) || pressed(ebiten.KeyLeft) {
		turn--
	}
	return forward, strafe, turn
}

// fillRGBA writes buf into dst as opaque RGBA bytes.
func fillRGBA(dst []byte, buf *raycast.Buffer) {
	for i, c := range buf.Pix {
		p := dst[4*i : 4*i+4 : 4*i+4]
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, 0xff
	}
}
