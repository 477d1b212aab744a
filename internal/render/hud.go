package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"termcaster/internal/raycast"
)

// HUDRows is the number of screen rows DrawHUD occupies at the bottom.
const HUDRows = 3

// Status is the viewer state shown on the HUD.
type Status struct {
	Pos     raycast.Vec
	Heading float64 // radians
	FPS     float64
	Message string
}

// HelpLine lists the viewer key bindings.
const HelpLine = "w/s ↑/↓ move  a/d strafe  ←/→ q/e turn  m map  r reload  esc quit"

// DrawHUD renders the separator, the status line and the message or help
// line on the bottom HUDRows rows. Lines wider than the screen are
// truncated by display width.
func (s *Surface) DrawHUD(st Status) {
	screenW, screenH := s.screen.Size()
	hudY := screenH - HUDRows
	if hudY < 0 {
		return
	}

	s.drawHLine(hudY, tcell.ColorGray)

	deg := math.Mod(st.Heading*180/math.Pi+360, 360)
	status := fmt.Sprintf("%s (%.1f, %.1f)  %3.0f°  %4.1f fps",
		Arrow(st.Heading), st.Pos.X, st.Pos.Y, deg, st.FPS)
	s.clearRow(hudY+1, screenW)
	s.drawText(0, hudY+1, runewidth.Truncate(status, screenW, "…"), tcell.StyleDefault.Foreground(tcell.ColorWhite))

	line, color := HelpLine, tcell.ColorGray
	if st.Message != "" {
		line, color = st.Message, tcell.ColorLightYellow
	}
	s.clearRow(hudY+2, screenW)
	s.drawText(0, hudY+2, runewidth.Truncate(line, screenW, "…"), tcell.StyleDefault.Foreground(color))
}

func (s *Surface) clearRow(y, w int) {
	for x := 0; x < w; x++ {
		s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}
