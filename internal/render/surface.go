// Package render presents raycast buffers and overlays on a character-cell
// screen. Each cell packs two buffer rows as an upper half block.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"termcaster/internal/raycast"
	"termcaster/internal/texture"
)

// HalfBlock is drawn in every presented cell: its foreground paints the
// upper buffer row and its background the lower one.
const HalfBlock = '▀'

// Screen is the part of tcell.Screen a Surface draws on.
type Screen interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Rect is a destination rectangle in character cells.
type Rect struct {
	X, Y, W, H int
}

// Surface draws frames and overlays onto a Screen.
type Surface struct {
	screen Screen
}

// NewSurface creates a Surface for the given screen.
func NewSurface(screen Screen) *Surface {
	return &Surface{screen: screen}
}

// Size returns the screen size in cells.
func (s *Surface) Size() (int, int) { return s.screen.Size() }

// Present copies buf into dst, two buffer rows per character row. Parts of
// dst beyond the buffer or the screen are left untouched.
func (s *Surface) Present(buf *raycast.Buffer, dst Rect) {
	sw, sh := s.screen.Size()
	cols := min(dst.W, buf.Width, sw-dst.X)
	rows := min(dst.H, buf.Rows(), sh-dst.Y)
	for r := max(0, -dst.Y); r < rows; r++ {
		for c := max(0, -dst.X); c < cols; c++ {
			style := tcell.StyleDefault.
				Foreground(Color(buf.At(c, 2*r))).
				Background(Color(buf.At(c, 2*r+1)))
			s.screen.SetContent(dst.X+c, dst.Y+r, HalfBlock, nil, style)
		}
	}
}

// Color converts a buffer color to a true-color tcell color.
func Color(c texture.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (s *Surface) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	s.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		s.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// drawText writes text from (x, y), advancing by each rune's display width,
// and returns the column after the last rune.
func (s *Surface) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		s.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
	return col
}

func (s *Surface) drawHLine(y int, color tcell.Color) {
	w, _ := s.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		s.screen.SetContent(x, y, '─', nil, style)
	}
}
