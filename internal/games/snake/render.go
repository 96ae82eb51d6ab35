package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyphs used on the terminal board.
const (
	glyphHead  = '▓'
	glyphBody  = '█'
	glyphFood  = '●'
	glyphEmpty = '·'
)

const (
	hudHeight    = 1 // Status line above the board
	footerHeight = 1 // Instruction line below the board
)

// Instructions is the help line shown until the first food is eaten.
const Instructions = "Arrow keys/WASD to move, eat red food, don't crash! SPACE to restart."

// cellWidth returns how many terminal columns one board cell uses.
// Two columns keep cells roughly square; one is the fallback for narrow screens.
func cellWidth(boardW, screenW int) int {
	if boardW*2+2 <= screenW {
		return 2
	}
	return 1
}

// RequiredSize returns the minimum screen size that fits a board.
func RequiredSize(boardW, boardH int) (w, h int) {
	return boardW + 2, boardH + 2 + hudHeight + footerHeight
}

// Fits reports whether a screen of the given size can show the board.
func Fits(boardW, boardH, screenW, screenH int) bool {
	w, h := RequiredSize(boardW, boardH)
	return screenW >= w && screenH >= h
}

// Render draws the current state into dst.
func (g *Game) Render(dst *core.Screen) {
	DrawSnapshot(dst, g.Snapshot())
}

// DrawSnapshot draws a snapshot into dst: HUD, bordered board, snake, food,
// instructions and the game-over overlay.
func DrawSnapshot(dst *core.Screen, s Snapshot) {
	dst.Clear()
	drawHUD(dst, s)

	if !Fits(s.Width, s.Height, dst.Width(), dst.Height()) {
		w, h := RequiredSize(s.Width, s.Height)
		drawOverlay(dst, []string{
			"Window too small",
			fmt.Sprintf("Need %dx%d, resize to continue", w, h),
		})
		return
	}

	cw := cellWidth(s.Width, dst.Width())
	boardW := s.Width*cw + 2
	boardH := s.Height + 2
	offX := (dst.Width() - boardW) / 2
	offY := hudHeight

	dst.DrawBox(core.NewRect(offX, offY, boardW, boardH), core.ColorGray)

	// cell maps a board cell to its first terminal column and row.
	cell := func(p core.Point) (int, int) {
		return offX + 1 + p.X*cw, offY + 1 + p.Y
	}

	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			sx, sy := cell(core.Point{X: x, Y: y})
			dst.SetColored(sx, sy, glyphEmpty, core.ColorGray)
		}
	}

	if s.HasFood {
		sx, sy := cell(s.Food)
		dst.SetColored(sx, sy, glyphFood, core.ColorRed)
	}

	// Body first so the head wins if a dead snake overlaps itself.
	for i := len(s.Segments) - 1; i >= 0; i-- {
		seg := s.Segments[i]
		if !seg.In(s.Width, s.Height) {
			continue
		}
		r, c := glyphBody, core.ColorGreen
		if i == 0 {
			r, c = glyphHead, core.ColorDarkGreen
		}
		sx, sy := cell(seg)
		for k := 0; k < cw; k++ {
			dst.SetColored(sx+k, sy, r, c)
		}
	}

	if s.ShowInstructions {
		dst.DrawTextCentered(offY+boardH, Instructions, core.ColorWhite)
	}

	if s.Status == StateGameOver {
		drawOverlay(dst, []string{
			"Game Over",
			fmt.Sprintf("Final Score: %d", s.Score),
			fmt.Sprintf("High Score: %d", s.HighScore),
			"Press SPACE or R to restart",
		})
	}
}

// drawHUD draws the top status line.
func drawHUD(dst *core.Screen, s Snapshot) {
	hud := fmt.Sprintf(" Snake | Score: %d  High: %d  Speed: %d fps  Time: %s",
		s.Score, s.HighScore, s.FrameRate, formatElapsed(s.Elapsed))
	dst.DrawText(0, 0, hud, core.ColorYellow)
}

func formatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// drawOverlay draws a centered box with one line of text per row.
func drawOverlay(dst *core.Screen, lines []string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, core.ColorWhite)
	}
}
