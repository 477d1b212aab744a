// Package game runs an interactive raycasting viewer on a tcell screen.
package game

import (
	"cmp"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"termcaster/internal/config"
	"termcaster/internal/raycast"
	"termcaster/internal/render"
	"termcaster/internal/system"
)

const (
	// DefaultMoveStep is the distance walked per key press, in cells.
	DefaultMoveStep = 0.2
	// DefaultTurnStep is the rotation per key press, in radians.
	DefaultTurnStep = math.Pi / 36
)

// Options tune a Viewer.
type Options struct {
	// Name labels the session log entry.
	Name string
	// Reload rebuilds the world for ActionReload; nil disables reloading.
	Reload func() (*config.World, error)
	// Animator steps shared textures. When nil the viewer owns a private
	// animator and steps it once per frame.
	Animator *Animator
	Logger   *slog.Logger

	MoveStep float64
	TurnStep float64
}

// Viewer shows a world through a raycasting camera. It does not own the
// screen: callers Init and Fini it.
type Viewer struct {
	screen   tcell.Screen
	surface  *render.Surface
	renderer *raycast.Renderer
	world    *config.World
	cam      raycast.Camera
	vis      *system.Visibility
	opts     Options
	animator *Animator
	ownAnim  bool

	showMap bool
	message string
	fps     float64
	stats   SessionLog
	drawn   time.Duration
}

// NewViewer prepares a viewer for w on screen.
func NewViewer(screen tcell.Screen, w *config.World, opts Options) (*Viewer, error) {
	opts.Logger = cmp.Or(opts.Logger, slog.Default())
	opts.MoveStep = cmp.Or(opts.MoveStep, DefaultMoveStep)
	opts.TurnStep = cmp.Or(opts.TurnStep, DefaultTurnStep)

	v := &Viewer{
		screen:   screen,
		surface:  render.NewSurface(screen),
		opts:     opts,
		animator: opts.Animator,
	}
	if v.animator == nil {
		v.animator = NewAnimator(w.Textures)
		v.ownAnim = true
	}
	r, err := raycast.New(w.Map, w.Textures, w.Options)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	v.renderer = r
	if err := v.load(w); err != nil {
		return nil, err
	}
	return v, nil
}

// load installs w as the current world and resets the camera.
// On error the renderer keeps the current world.
func (v *Viewer) load(w *config.World) error {
	if err := raycast.CheckSprites(w.Sprites, w.Textures); err != nil {
		return fmt.Errorf("sprites: %w", err)
	}
	// Old sprites may index textures the new set lacks.
	v.renderer.SetSprites(nil) //nolint:errcheck
	if err := v.renderer.SetScene(w.Map, w.Textures); err != nil {
		if v.world != nil {
			v.renderer.SetSprites(v.world.Sprites) //nolint:errcheck
		}
		return fmt.Errorf("renderer: %w", err)
	}
	v.renderer.SetSprites(w.Sprites) //nolint:errcheck
	if v.ownAnim {
		v.animator.Swap(w.Textures)
	}
	v.world = w
	v.cam = w.Camera
	v.showMap = w.Minimap.Show
	v.vis = system.NewVisibility(w.Map)
	v.look()
	return nil
}

// Camera returns the current camera.
func (v *Viewer) Camera() raycast.Camera { return v.cam }

// Stats returns the session statistics gathered so far.
func (v *Viewer) Stats() SessionLog { return v.stats }

// Run draws a frame every world frame interval and applies key presses
// until the viewer quits or the screen is finalized. The session log is
// written on return.
func (v *Viewer) Run() {
	start := time.Now()
	defer func() {
		v.stats.Timestamp = start
		v.stats.Name = v.opts.Name
		v.stats.Seconds = time.Since(start).Seconds()
		if v.stats.Frames > 0 {
			v.stats.MeanFrameMS = float64(v.drawn.Microseconds()) / 1000 / float64(v.stats.Frames)
		}
		v.opts.Logger.Info("session ended", "name", v.opts.Name, "frames", v.stats.Frames, "seconds", v.stats.Seconds)
		saveSessionLog(v.stats, v.opts.Logger)
	}()

	done := make(chan struct{})
	defer close(done)
	eventCh := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			select {
			case eventCh <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(v.world.Frame)
	defer ticker.Stop()
	last := time.Now()
	v.draw()

	for {
		select {
		case ev, ok := <-eventCh:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				v.screen.Sync()
				v.draw()
			case *tcell.EventKey:
				if !v.apply(keyToAction(ev)) {
					return
				}
			}
		case now := <-ticker.C:
			if dt := now.Sub(last).Seconds(); dt > 0 {
				v.fps = 0.9*v.fps + 0.1/dt
			}
			last = now
			if v.ownAnim {
				v.animator.Step()
			}
			v.draw()
		}
	}
}

// apply performs a; it returns false when the viewer should stop.
func (v *Viewer) apply(a Action) bool {
	switch a {
	case ActionQuit:
		return false
	case ActionToggleMap:
		v.showMap = !v.showMap
	case ActionReload:
		v.reload()
	case ActionNone:
	default:
		forward, strafe, turn := actionToMotion(a)
		if turn != 0 {
			v.cam.Rotate(turn * v.opts.TurnStep)
			v.stats.Turns++
			return true
		}
		before := v.cam.Pos
		dx, dy := system.Walk(v.cam, forward*v.opts.MoveStep, strafe*v.opts.MoveStep)
		switch system.TryMove(v.world.Map, &v.cam, dx, dy, system.DefaultRadius) {
		case system.MoveBlocked:
			v.stats.Bumps++
		case system.MoveSlid:
			v.stats.Bumps++
			fallthrough
		default:
			v.stats.Walked += v.cam.Pos.Sub(before).Len()
			v.look()
		}
	}
	return true
}

func (v *Viewer) reload() {
	if v.opts.Reload == nil {
		v.message = "reload unavailable"
		return
	}
	w, err := v.opts.Reload()
	if err == nil {
		err = v.load(w)
	}
	if err != nil {
		v.opts.Logger.Warn("reload failed", "error", err)
		v.message = "reload failed: " + err.Error()
		return
	}
	v.stats.Reloads++
	v.message = "scene reloaded"
}

// look refreshes the cells seen from the camera.
func (v *Viewer) look() {
	radius := max(v.world.Minimap.Radius, 1)
	x, y := int(math.Floor(v.cam.Pos.X)), int(math.Floor(v.cam.Pos.Y))
	system.UpdateVisibility(v.world.Map, v.vis, x, y, radius)
}

// draw renders the 3D view above the HUD, the minimap overlay and the HUD.
func (v *Viewer) draw() {
	began := time.Now()
	w, h := v.screen.Size()
	viewRows := max(h-render.HUDRows, 0)
	if cols, rows := v.renderer.Size(); cols != w || rows != viewRows {
		v.renderer.Resize(w, viewRows)
	}

	v.animator.RLock()
	buf := v.renderer.Render(v.cam)
	v.surface.Present(buf, render.Rect{W: w, H: viewRows})
	v.animator.RUnlock()

	if v.showMap {
		v.drawMinimap(w, viewRows)
	}
	v.surface.DrawHUD(render.Status{
		Pos:     v.cam.Pos,
		Heading: v.cam.Theta(),
		FPS:     v.fps,
		Message: v.message,
	})
	v.screen.Show()

	v.stats.Frames++
	v.drawn += time.Since(began)
}

// drawMinimap places the overlay in the top-right corner of the view.
func (v *Viewer) drawMinimap(w, viewRows int) {
	theme, ok := render.MinimapThemes[v.world.Minimap.Theme]
	if !ok {
		theme = render.MinimapThemes["classic"]
	}
	side := 2*max(v.world.Minimap.Radius, 1) + 1
	mw, mh := min(2*side, w), min(side, viewRows)
	props := make([]raycast.Vec, len(v.world.Sprites))
	for i, s := range v.world.Sprites {
		props[i] = s.Pos
	}
	v.surface.Minimap(v.world.Map, v.vis, v.cam, props, theme, render.Rect{X: w - mw, W: mw, H: mh})
}
