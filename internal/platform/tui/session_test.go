package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

type memHighScores struct {
	value int
}

func (m *memHighScores) LoadHighScore() int     { return m.value }
func (m *memHighScores) SaveHighScore(score int) { m.value = score }

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return got, cmd
}

func smallSessionConfig() config.SnakeConfig {
	cfg := config.DefaultConfig()
	cfg.Board.Width = 10
	cfg.Board.Height = 5
	return cfg
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(SessionOptions{
		Config: smallSessionConfig(),
		Width:  80,
		Height: 24,
		Seed:   7,
	})

	if !strings.Contains(m.View(), "S N A K E") {
		t.Fatal("session should open on the menu")
	}

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame {
		t.Fatalf("view = %v, expected game", m.view)
	}
	if cmd == nil {
		t.Error("starting a round should schedule the first tick")
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("game view should show the HUD")
	}

	// Drive the snake into the top wall.
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	for i := 0; i < 5; i++ {
		m, _ = sessionUpdate(t, m, TickMsg(time.Unix(0, 0).Add(time.Duration(i)*100*time.Millisecond)))
	}
	if !strings.Contains(m.View(), "Game Over") {
		t.Fatal("expected the game over overlay")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Fatalf("view = %v, expected menu after back", m.view)
	}

	// The tick still in flight is swallowed and drives the next round.
	m, _ = sessionUpdate(t, m, TickMsg(time.Unix(1, 0)))
	if m.tickLive {
		t.Error("stale tick should be consumed by the menu")
	}
	m, cmd = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("a new round without a pending tick should schedule one")
	}
}

func TestSessionPendingTickDrivesNextRound(t *testing.T) {
	m := NewSessionModel(SessionOptions{Config: smallSessionConfig(), Width: 80, Height: 24, Seed: 1})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	for i := 0; i < 5; i++ {
		m, _ = sessionUpdate(t, m, TickMsg(time.Unix(0, 0).Add(time.Duration(i)*100*time.Millisecond)))
	}
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame {
		t.Fatalf("view = %v, expected game", m.view)
	}
	if cmd != nil {
		t.Error("a pending tick should drive the new round without a second loop")
	}
}

func TestSessionQuitFromGame(t *testing.T) {
	m := NewSessionModel(SessionOptions{Config: smallSessionConfig(), Width: 80, Height: 24})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := sessionUpdate(t, m, runeKey("q"))
	if !m.quitting || cmd == nil {
		t.Error("q in game should end the session")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestSessionScoreboard(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/scores.db")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	m := NewSessionModel(SessionOptions{Store: store, Config: smallSessionConfig(), Width: 100, Height: 30})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores {
		t.Fatalf("view = %v, expected scores", m.view)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("expected the scoreboard")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Errorf("view = %v, expected menu", m.view)
	}
}

func TestSessionHighScoreOverride(t *testing.T) {
	hs := &memHighScores{value: 330}
	m := NewSessionModel(SessionOptions{HighScores: hs, Config: smallSessionConfig(), Width: 80, Height: 24})
	if !strings.Contains(m.View(), "High score: 330") {
		t.Error("menu should show the configured high score")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.gameModel.Game().HighScore(); got != 330 {
		t.Errorf("round high score = %d, expected 330", got)
	}
}

func TestSessionAppliesPreset(t *testing.T) {
	m := NewSessionModel(SessionOptions{
		Config: smallSessionConfig(),
		Preset: config.DifficultyHard,
		Width:  80,
		Height: 24,
	})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.gameModel.Game().FrameRate(); got != 14 {
		t.Errorf("frame rate = %d, expected the hard start of 14", got)
	}
}

func TestSSHServerConfigFrom(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SSH.Address = ":2222"
	cfg.Storage.DBPath = "/tmp/x.db"

	got := SSHServerConfigFrom(cfg)
	if got.Address != ":2222" || got.DBPath != "/tmp/x.db" || got.IdleTimeout != cfg.SSH.IdleTimeout {
		t.Errorf("SSHServerConfigFrom = %+v", got)
	}
}
