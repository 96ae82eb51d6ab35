package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

type fakeSource struct {
	entries []storage.ScoreEntry
	stats   *storage.GameStats
	err     error
}

func (f fakeSource) TopScores(string, int) ([]storage.ScoreEntry, error) {
	return f.entries, f.err
}

func (f fakeSource) GetGameStats(gameID string) (*storage.GameStats, error) {
	if f.stats == nil {
		return &storage.GameStats{GameID: gameID}, nil
	}
	return f.stats, nil
}

func TestScoreboardShowsHistory(t *testing.T) {
	at := time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)
	src := fakeSource{
		entries: []storage.ScoreEntry{
			{ID: 2, Score: 120, Duration: 95 * time.Second, Player: "bob", CreatedAt: at},
			{ID: 1, Score: 40, Duration: 20 * time.Second, CreatedAt: at},
		},
		stats: &storage.GameStats{
			GamesCount:   2,
			HighScore:    120,
			AvgScore:     80,
			TotalPlayed:  115 * time.Second,
			LongestRound: 95 * time.Second,
		},
	}

	m := NewScoreboardModel(src, 100, 30)
	view := m.View()

	for _, want := range []string{"HIGH SCORES", "120", "01:35", "bob", "Rounds: 2", "Avg: 80.0", "Played: 01:55"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}
}

func TestScoreboardNarrowDropsPlayer(t *testing.T) {
	src := fakeSource{entries: []storage.ScoreEntry{{Score: 10, Player: "carol"}}}
	m := NewScoreboardModel(src, 40, 30)
	if strings.Contains(m.View(), "carol") {
		t.Error("narrow scoreboard should not show the Player column")
	}
}

func TestScoreboardEmptyStates(t *testing.T) {
	tests := []struct {
		name   string
		source ScoreSource
		want   string
	}{
		{"no store", nil, "unavailable"},
		{"load error", fakeSource{err: errors.New("boom")}, "Could not load"},
		{"no rounds", fakeSource{}, "No scores recorded yet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(tt.source, 80, 24)
			if !strings.Contains(m.View(), tt.want) {
				t.Errorf("View missing %q", tt.want)
			}
		})
	}
}

func TestScoreboardKeys(t *testing.T) {
	m := NewScoreboardModel(fakeSource{}, 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	sb := next.(ScoreboardModel)
	if !sb.IsGoingBack() || sb.IsQuitting() {
		t.Error("esc should go back")
	}
	if cmd == nil {
		t.Error("back should end the scoreboard program")
	}

	next, _ = m.Update(runeKey("q"))
	sb = next.(ScoreboardModel)
	if !sb.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestScoreboardWithStore(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/scores.db")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore(storage.Result{GameID: "snake", Score: 70, Duration: time.Minute, Player: "dave"}); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	m := NewScoreboardModel(store, 100, 30)
	view := m.View()
	if !strings.Contains(view, "70") || !strings.Contains(view, "dave") {
		t.Errorf("View does not show the stored round:\n%s", view)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{61*time.Second + 900*time.Millisecond, "01:01"},
		{75 * time.Minute, "75:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, expected %q", tt.d, got, tt.want)
		}
	}
}
