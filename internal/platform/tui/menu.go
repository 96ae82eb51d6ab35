package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// MenuChoice is what the user picked in the start menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// Menu rows, top to bottom.
const (
	rowPlay = iota
	rowDifficulty
	rowScores
	rowQuit
	rowCount
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("40"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCurStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	cursor    int
	preset    int // Index into config.Presets
	highScore int
	width     int
	height    int
	keys      MenuKeyMap
	help      help.Model
	choice    MenuChoice
}

// NewMenuModel creates the start menu with the given preset selected.
func NewMenuModel(width, height int, preset config.DifficultyPreset, highScore int) MenuModel {
	idx, ok := presetIndex(preset)
	if !ok {
		idx, _ = presetIndex(config.DifficultyNormal)
	}

	h := help.New()
	h.Width = width

	return MenuModel{
		preset:    idx,
		highScore: highScore,
		width:     width,
		height:    height,
		keys:      DefaultMenuKeyMap(),
		help:      h,
	}
}

func presetIndex(p config.DifficultyPreset) (int, bool) {
	for i, q := range config.Presets {
		if q == p {
			return i, true
		}
	}
	return 0, false
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = ChoiceQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < rowCount-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Left):
		if m.cursor == rowDifficulty {
			m.cyclePreset(-1)
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor == rowDifficulty {
			m.cyclePreset(1)
		}

	case key.Matches(msg, m.keys.Scores):
		m.choice = ChoiceScores
		return m, tea.Quit

	case key.Matches(msg, m.keys.Select):
		switch m.cursor {
		case rowPlay:
			m.choice = ChoicePlay
			return m, tea.Quit
		case rowDifficulty:
			m.cyclePreset(1)
		case rowScores:
			m.choice = ChoiceScores
			return m, tea.Quit
		case rowQuit:
			m.choice = ChoiceQuit
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *MenuModel) cyclePreset(step int) {
	n := len(config.Presets)
	m.preset = ((m.preset+step)%n + n) % n
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != ChoiceNone {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuHintStyle.Render(fmt.Sprintf("High score: %d", m.highScore)), m.width))
	b.WriteString("\n\n")

	rows := [rowCount]string{
		"Play",
		fmt.Sprintf("Difficulty: < %s >", m.Preset()),
		"High Scores",
		"Quit",
	}
	for i, row := range rows {
		line := "  " + row
		if i == m.cursor {
			line = menuCurStyle.Render("> " + row)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the user picked, or ChoiceNone while still choosing.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Preset returns the selected difficulty.
func (m MenuModel) Preset() config.DifficultyPreset {
	return config.Presets[m.preset]
}

// Size returns the last known terminal size.
func (m MenuModel) Size() (width, height int) {
	return m.width, m.height
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Preset config.DifficultyPreset
	Width  int
	Height int
}

// RunMenu runs the start menu and returns the selection.
func RunMenu(width, height int, preset config.DifficultyPreset, highScore int) (MenuResult, error) {
	model := NewMenuModel(width, height, preset, highScore)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceQuit, Preset: preset, Width: width, Height: height}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: ChoiceQuit, Preset: preset, Width: width, Height: height}, nil
	}

	w, h := m.Size()
	result := MenuResult{Choice: m.Choice(), Preset: m.Preset(), Width: w, Height: h}
	if result.Choice == ChoiceNone {
		result.Choice = ChoiceQuit
	}
	return result, nil
}
