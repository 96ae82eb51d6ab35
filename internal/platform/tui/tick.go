// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, frame pacing, input mapping, menus,
// the scoreboard and remote play over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// TickMsg is sent to trigger a game frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next tick after one
// frame at the given rate.
func tickCmd(fps int) tea.Cmd {
	return tea.Tick(snake.FrameInterval(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
