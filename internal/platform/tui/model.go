package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/render/raster"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// ScoreRecorder stores finished rounds. *storage.Store satisfies it.
type ScoreRecorder interface {
	SaveScore(r storage.Result) (int64, error)
}

// ModelOptions configures a Model.
type ModelOptions struct {
	Width  int // Initial terminal size; updated by resize messages
	Height int

	History       ScoreRecorder // nil skips the history
	Player        string        // Recorded with each round
	ScreenshotDir string        // Defaults to DefaultScreenshotDir
	Raster        *raster.Renderer
	Logger        *log.Logger

	// AllowBack enables esc/b on the game over screen to leave the round.
	AllowBack bool
	// NoScreenshots disables ctrl+s, for sessions that do not own the host.
	NoScreenshots bool
}

// Model is the Bubble Tea model that drives one snake game.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	keys     KeyMap
	opts     ModelOptions
	logger   *log.Logger
	frame    core.InputFrame
	lastTick time.Time
	fps      int
	recorded bool // Whether the finished round has been recorded
	quitting bool
	back     bool
	status   string // Last screenshot message
}

// NewModel creates a Bubble Tea model for the game.
func NewModel(game *snake.Game, opts ModelOptions) Model {
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = DefaultScreenshotDir
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	keys.Back.SetEnabled(opts.AllowBack)
	keys.Screenshot.SetEnabled(!opts.NoScreenshots)

	return Model{
		game:   game,
		screen: core.NewScreen(opts.Width, opts.Height),
		keys:   keys,
		opts:   opts,
		logger: logger,
		frame:  core.NewInputFrame(),
		fps:    game.FrameRate(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The board size is fixed; only the viewport changes.
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records intents for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.keys.Screenshot.Enabled() && key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case m.keys.Back.Enabled() && key.Matches(msg, m.keys.Back):
		if m.game.Status() == snake.StateGameOver {
			m.back = true
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.frame.Set(action)
	return m, nil
}

// handleTick runs one frame and schedules the next at the game's rate.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	// Hold the round while the board does not fit; keys pressed meanwhile are dropped.
	w, h := m.game.Size()
	if !snake.Fits(w, h, m.screen.Width(), m.screen.Height()) {
		m.frame.Clear()
		return m, tickCmd(m.fps)
	}

	sig := m.game.Advance(m.frame, elapsed)
	m.frame.Clear()
	m.fps = sig.FrameRate

	if sig.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	if sig.Restarted {
		m.recorded = false
		m.status = ""
	}
	if m.game.Status() == snake.StateGameOver && !m.recorded {
		m.recordRound()
		m.recorded = true
	}

	return m, tickCmd(m.fps)
}

// recordRound appends a finished round with a positive score to the history.
func (m *Model) recordRound() {
	if m.opts.History == nil || m.game.Score() <= 0 {
		return
	}
	result := storage.Result{
		GameID:   snake.GameID,
		Score:    m.game.Score(),
		Duration: m.game.Elapsed(),
		Player:   m.opts.Player,
	}
	if _, err := m.opts.History.SaveScore(result); err != nil {
		m.logger.Warn("could not record score", "score", result.Score, "error", err)
		return
	}
	m.logger.Debug("round recorded", "score", result.Score, "duration", result.Duration)
}

// saveScreenshot writes the current frame to the screenshot directory.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)
	paths, err := Screenshot(m.opts.ScreenshotDir, time.Now(), m.screen, m.game.Snapshot(), m.opts.Raster)
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.status = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "paths", paths)
	m.status = fmt.Sprintf("saved %s", paths[len(paths)-1])
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	w, h := m.game.Size()
	_, needH := snake.RequiredSize(w, h)
	if m.status != "" && m.screen.Height() > needH {
		m.screen.DrawText(1, m.screen.Height()-1, m.status, core.ColorGray)
	}
	return RenderScreen(m.screen)
}

// Game returns the driven game.
func (m Model) Game() *snake.Game {
	return m.game
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the round.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program for the game.
func Run(game *snake.Game, opts ModelOptions) error {
	p := tea.NewProgram(NewModel(game, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
