package sim

import (
	"fmt"

	"github.com/skyhop-game/skyhop/internal/core"
)

// Glyphs used when projecting world entities onto the cell grid.
const (
	barrierChar   = '█'
	barrierCapTop = '▄'
	barrierCapBot = '▀'
	groundChar    = '═'
	playerBody    = '●'
)

// Render projects the world onto a screen buffer. The playfield is scaled
// to the full screen minus one row reserved for the ground line.
func (m *Match) Render(dst *core.Screen) {
	dst.Clear()

	fieldH := dst.Height() - 1
	if fieldH < 1 || dst.Width() < 1 {
		return
	}
	sx := float64(dst.Width()) / m.world.Width
	sy := float64(fieldH) / m.world.Height

	dst.DrawHLine(0, fieldH, dst.Width(), groundChar, core.ColorGray)

	for _, o := range m.obstacles {
		m.drawObstacle(dst, o, sx, sy, fieldH)
	}
	m.drawPlayer(dst, sx, sy)

	hud := fmt.Sprintf(" Score: %d  Streak: %d/%d  [%s] ",
		m.score, m.backwardStreak, BackwardMilestoneCount, m.tier)
	dst.DrawTextColored(2, 0, hud, core.ColorBrightYellow)

	switch m.state {
	case StateStart:
		m.drawCenteredMessage(dst, "SKYHOP",
			fmt.Sprintf("Difficulty: %s (1/2/3)  |  Space to launch", m.tier))
	case StateGameOver:
		m.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d  |  R to restart", m.score, m.boards.Best(m.tier)))
	case StatePlaying:
		if m.paused {
			m.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
		}
	}
}

// drawObstacle renders both barriers of one obstacle as scaled columns.
func (m *Match) drawObstacle(dst *core.Screen, o Obstacle, sx, sy float64, fieldH int) {
	left := int(o.X * sx)
	right := int((o.X + o.Width) * sx)
	if right <= left {
		right = left + 1
	}
	gapTop := int(o.GapTopY * sy)
	gapBot := int((o.GapTopY + m.profile.VerticalGap) * sy)

	for x := left; x < right; x++ {
		for y := 0; y < gapTop && y < fieldH; y++ {
			dst.SetColored(x, y, barrierChar, core.ColorGreen)
		}
		if gapTop > 0 {
			dst.SetColored(x, gapTop-1, barrierCapTop, core.ColorGreen)
		}
		for y := gapBot; y < fieldH; y++ {
			dst.SetColored(x, y, barrierChar, core.ColorGreen)
		}
		if gapBot < fieldH {
			dst.SetColored(x, gapBot, barrierCapBot, core.ColorGreen)
		}
	}
}

// drawPlayer renders the player block with a nose glyph that follows the
// tilt angle.
func (m *Match) drawPlayer(dst *core.Screen, sx, sy float64) {
	left := int(m.player.X * sx)
	top := int(m.player.Y * sy)
	w := core.Max(1, int(m.player.Width*sx))
	h := core.Max(1, int(m.player.Height*sy))

	nose := '▶'
	switch {
	case m.player.Angle < -0.15:
		nose = '◥'
	case m.player.Angle > 0.5:
		nose = '◢'
	}

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			r := playerBody
			if dx == w-1 && dy == h/2 {
				r = nose
			}
			dst.SetColored(left+dx, top+dy, r, core.ColorBrightYellow)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (m *Match) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
