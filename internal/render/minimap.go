package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"termcaster/internal/gamemap"
	"termcaster/internal/raycast"
	"termcaster/internal/system"
)

// headingArrows index eight compass headings starting at +x, turning toward
// +y (clockwise on screen).
var headingArrows = [8]string{"→", "↘", "↓", "↙", "←", "↖", "↑", "↗"}

// Arrow returns the arrow glyph closest to heading theta.
func Arrow(theta float64) string {
	i := int(math.Round(theta/(math.Pi/4))) % 8
	if i < 0 {
		i += 8
	}
	return headingArrows[i]
}

// Minimap draws explored cells around the camera inside dst. Cells in view
// use the bright colors, remembered ones the dim colors; unexplored cells
// and the floor under props are left to whatever is beneath.
func (s *Surface) Minimap(m *gamemap.Map, vis *system.Visibility, cam raycast.Camera, props []raycast.Vec, theme MinimapTheme, dst Rect) {
	cx, cy := int(math.Floor(cam.Pos.X)), int(math.Floor(cam.Pos.Y))
	vp := NewViewport(cx, cy, dst.W, dst.H)

	for y := vp.OffsetY; y < vp.OffsetY+dst.H; y++ {
		for x := vp.OffsetX; x < vp.OffsetX+dst.W/2; x++ {
			if !vis.Explored(x, y) {
				continue
			}
			sx, sy, ok := vp.WorldToScreen(x, y)
			if !ok {
				continue
			}
			lit := vis.Visible(x, y)
			glyph, fg := theme.Floor, theme.FloorFG
			if !m.IsOpen(x, y) {
				glyph, fg = theme.Wall, theme.WallFG
				if !lit {
					fg = theme.DimWallFG
				}
			}
			s.drawText(dst.X+sx, dst.Y+sy, glyph, tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack))
		}
	}

	propStyle := tcell.StyleDefault.Foreground(theme.ViewerFG).Background(tcell.ColorBlack)
	for _, p := range props {
		px, py := int(math.Floor(p.X)), int(math.Floor(p.Y))
		if !vis.Visible(px, py) {
			continue
		}
		if sx, sy, ok := vp.WorldToScreen(px, py); ok {
			s.putGlyph(dst.X+sx, dst.Y+sy, theme.Prop, propStyle)
		}
	}

	if sx, sy, ok := vp.WorldToScreen(cx, cy); ok {
		style := tcell.StyleDefault.Foreground(theme.ViewerFG).Background(tcell.ColorBlack).Bold(true)
		s.putGlyph(dst.X+sx, dst.Y+sy, Arrow(cam.Theta()), style)
	}
}
