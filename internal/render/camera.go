package render

// Viewport translates between map cells and minimap screen cells. Every
// map cell is two columns wide so the overlay keeps a square aspect.
type Viewport struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewViewport creates a viewport centered on cell (cx, cy).
func NewViewport(cx, cy, viewW, viewH int) *Viewport {
	v := &Viewport{ViewWidth: viewW, ViewHeight: viewH}
	v.Center(cx, cy)
	return v
}

// Center repositions the viewport so that cell (cx, cy) is in the middle.
func (v *Viewport) Center(cx, cy int) {
	v.OffsetX = cx - (v.ViewWidth/2)/2
	v.OffsetY = cy - v.ViewHeight/2
}

// WorldToScreen converts cell (wx, wy) to viewport-relative (sx, sy).
// visible is false when the result falls outside the viewport.
func (v *Viewport) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - v.OffsetX) * 2
	sy = wy - v.OffsetY
	visible = sx >= 0 && sx+1 < v.ViewWidth && sy >= 0 && sy < v.ViewHeight
	return
}

// ScreenToWorld converts viewport-relative (sx, sy) to a map cell.
func (v *Viewport) ScreenToWorld(sx, sy int) (int, int) {
	return sx/2 + v.OffsetX, sy + v.OffsetY
}
