package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// DifficultyMenuModel lets users choose a difficulty before a game.
type DifficultyMenuModel struct {
	options   []config.Difficulty
	periods   map[config.Difficulty]time.Duration
	highScore int
	cursor    int
	width     int
	height    int
	selected  *config.Difficulty
	quitting  bool
}

// NewDifficultyMenuModel creates the menu with the cursor on current.
func NewDifficultyMenuModel(periods map[config.Difficulty]time.Duration, current config.Difficulty, highScore, width, height int) DifficultyMenuModel {
	options := config.Difficulties()
	cursor := 0
	for i, d := range options {
		if d == current {
			cursor = i
		}
	}
	return DifficultyMenuModel{
		options:   options,
		periods:   periods,
		highScore: highScore,
		cursor:    cursor,
		width:     width,
		height:    height,
	}
}

// Init initializes the model.
func (m DifficultyMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Number keys pick directly.
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && int(s[0]-'1') < len(m.options) {
		m.cursor = int(s[0] - '1')
		return m.choose()
	}

	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = core.Clamp(m.cursor-1, 0, len(m.options)-1)
	case MenuActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, len(m.options)-1)
	case MenuActionSelect:
		return m.choose()
	}
	return m, nil
}

func (m DifficultyMenuModel) choose() (tea.Model, tea.Cmd) {
	d := m.options[m.cursor]
	m.selected = &d
	return m, tea.Quit
}

// View renders the difficulty selection.
func (m DifficultyMenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("High score: %d", m.highScore), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, d := range m.options {
		line := fmt.Sprintf("%d. %-8s %4dms", i+1, d.Label(), m.periods[d].Milliseconds())
		if i == m.cursor {
			line = activeStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))
	return b.String()
}

// Selected returns the chosen difficulty, or false while choosing or after
// the user backed out.
func (m DifficultyMenuModel) Selected() (config.Difficulty, bool) {
	if m.selected == nil {
		return "", false
	}
	return *m.selected, true
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyMenuModel) IsQuitting() bool {
	return m.quitting
}

// RunDifficultyMenu shows the menu and returns the choice. ok is false when
// the user quit.
func RunDifficultyMenu(periods map[config.Difficulty]time.Duration, current config.Difficulty, highScore int, rt core.RuntimeConfig) (config.Difficulty, bool, error) {
	model := NewDifficultyMenuModel(periods, current, highScore, rt.ScreenW, rt.ScreenH)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, ok := finalModel.(DifficultyMenuModel)
	if !ok {
		return "", false, nil
	}
	d, ok := m.Selected()
	return d, ok, nil
}
