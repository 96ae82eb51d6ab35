package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const (
	playerColumnMin = 50  // inner width needed before the Player column shows
	historyLimit    = 100 // rounds loaded into the table
	fixedColumns    = 44  // Rank + Score + Time + Date including cell padding
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
	boardStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreSource is the read side of the score history. *storage.Store satisfies it.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// ScoreboardKeyMap holds the scoreboard bindings.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap scrolls with arrows or j/k and leaves with esc, b or tab.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	bind := func(help, desc string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
	}
	return ScoreboardKeyMap{
		Up:   bind("↑/k", "scroll up", "up", "k"),
		Down: bind("↓/j", "scroll down", "down", "j"),
		Back: bind("esc/b", "back", "esc", "b", "tab"),
		Quit: bind("q", "quit", "q", "ctrl+c"),
	}
}

// ScoreboardModel lists past rounds with a summary line below the table.
type ScoreboardModel struct {
	source   ScoreSource
	scores   []storage.ScoreEntry
	stats    *storage.GameStats
	loadErr  error
	table    table.Model
	withUser bool
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int

	quitting bool
	back     bool
}

// NewScoreboardModel loads the history from source. A nil source shows an
// "unavailable" notice instead of the table.
func NewScoreboardModel(source ScoreSource, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		source: source,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width

	if source != nil {
		m.scores, m.loadErr = source.TopScores(snake.GameID, historyLimit)
		if m.loadErr == nil {
			m.stats, m.loadErr = source.GetGameStats(snake.GameID)
		}
	}
	m.layout()
	return m
}

// layout rebuilds the table for the current size and refills it.
func (m *ScoreboardModel) layout() {
	m.withUser = m.width-4 >= playerColumnMin

	cols := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 14},
	}
	if m.withUser {
		cols = append(cols, table.Column{Title: "Player", Width: min(m.width-4-fixedColumns, 16)})
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color("240"))
	styles.Selected = styles.Selected.
		Bold(false).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("28"))

	m.table = table.New(
		table.WithColumns(cols),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
		table.WithStyles(styles),
	)
}

func (m ScoreboardModel) rows() []table.Row {
	out := make([]table.Row, 0, len(m.scores))
	for rank, e := range m.scores {
		row := table.Row{
			fmt.Sprintf("#%d", rank+1),
			fmt.Sprint(e.Score),
			formatDuration(e.Duration),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
		if m.withUser {
			player := e.Player
			if player == "" {
				player = "-"
			}
			row = append(row, player)
		}
		out = append(out, row)
	}
	return out
}

// formatDuration renders a round length as mm:ss.
func formatDuration(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Back) {
			m.back = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	parts := []string{
		boardTitleStyle.Render(centerText("HIGH SCORES - Snake", m.width)),
		boardFrameStyle.Render(m.body()),
	}
	if line := m.statsLine(); line != "" {
		parts = append(parts, boardStatsStyle.Render(line))
	}
	parts = append(parts, "", boardHelpStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// body is the table, or a notice when there is nothing to list.
func (m ScoreboardModel) body() string {
	switch {
	case m.source == nil:
		return boardEmptyStyle.Render("Score history is unavailable.")
	case m.loadErr != nil:
		return boardEmptyStyle.Render("Could not load scores.")
	case len(m.scores) == 0:
		return boardEmptyStyle.Render("No scores recorded yet.\nPlay a round to set a high score!")
	default:
		return m.table.View()
	}
}

// statsLine summarizes the history, or returns "" when there is none.
func (m ScoreboardModel) statsLine() string {
	st := m.stats
	if st == nil || st.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Rounds: %d  Best: %d  Avg: %.1f  Longest: %s  Played: %s",
		st.GamesCount, st.HighScore, st.AvgScore,
		formatDuration(st.LongestRound), formatDuration(st.TotalPlayed))
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.back }

// IsQuitting reports whether the player asked to leave the program.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

// RunScoreboard shows the scoreboard until the player leaves. goBack is true
// when they chose back rather than quit.
func RunScoreboard(source ScoreSource, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(source, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	sb, ok := final.(ScoreboardModel)
	return ok && sb.back, nil
}
