package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/effects"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Session bundles a game with the pieces the screen drives or draws.
// Particles and Audio are optional.
type Session struct {
	Game      *snake.Game
	Clock     *TeaClock
	Particles *effects.System
	Audio     *audio.Player
	Logger    *log.Logger
	Runtime   core.RuntimeConfig
}

// status is mutated by the game observer; Model holds it by pointer so the
// Bubble Tea value copies share it.
type status struct {
	last     *snake.GameOverEvent
	message  string
	messageT time.Time
}

// Model is the Bubble Tea model for a game session.
type Model struct {
	session Session
	router  *snake.InputRouter
	screen  *core.Screen
	status  *status
	keys    GameKeyMap
	help    help.Model
	logger  *log.Logger

	quitting bool
}

// NewModel creates the game screen and subscribes it to the game.
func NewModel(s Session) Model {
	if s.Runtime.ScreenW == 0 || s.Runtime.ScreenH == 0 {
		s.Runtime = core.DefaultConfig()
	}
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	st := &status{}
	s.Game.Subscribe(snake.ObserverFunc(func(e snake.Event) {
		switch ev := e.(type) {
		case snake.GameOverEvent:
			st.last = &ev
		case snake.ResetEvent:
			st.last = nil
		}
	}))

	h := help.New()
	h.ShowAll = false

	return Model{
		session: s,
		router:  snake.NewInputRouter(s.Game),
		screen:  core.NewScreen(s.Runtime.ScreenW, boardRows(s.Runtime.ScreenH, s.Game.Grid().TileCount)),
		status:  st,
		keys:    DefaultGameKeyMap(),
		help:    h,
		logger:  logger,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.session.Clock.Drain()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.session.Runtime.ScreenW = msg.Width
		m.session.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, boardRows(msg.Height, m.session.Game.Grid().TileCount))
		m.help.Width = msg.Width
		return m, nil

	case clockTickMsg:
		return m, m.session.Clock.Handle(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Host keys are handled here; the rest
// goes through the input router.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.session.Game.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Mute):
		if a := m.session.Audio; a != nil {
			a.SetMuted(a.Enabled())
			switch {
			case a.Enabled():
				m.flash("sound on")
			case a.Muted():
				m.flash("muted")
			default:
				m.flash("audio unavailable")
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if intent := m.router.Route(msg.String()); intent != snake.IntentNone {
		m.logger.Debug("input", "key", msg.String(), "intent", intent)
	}
	return m, m.session.Clock.Drain()
}

func (m Model) flash(text string) {
	m.status.message = text
	m.status.messageT = m.session.Clock.Now()
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.flash("saved " + filepath.Base(path))
}

// draw renders the current game state into the screen buffer.
func (m Model) draw() {
	g := m.session.Game
	snap := g.Snapshot()

	m.screen.Clear()
	layout := LayoutBoard(m.screen.Width(), m.screen.Height(), snap.TileCount)
	if !layout.Fits {
		DrawTooSmall(m.screen, snap.TileCount)
		return
	}

	DrawBoard(m.screen, snap, layout)
	if p := m.session.Particles; p != nil {
		p.Draw(m.screen, layout.Area, layout.CellW)
	}

	extra := ""
	if m.status.message != "" && m.session.Clock.Now().Sub(m.status.messageT) < 2*time.Second {
		extra = m.status.message
	}
	DrawHUD(m.screen, snap, layout, extra)

	switch snap.Phase {
	case snake.PhaseIdle:
		DrawOverlay(m.screen, layout, []string{"SNAKE", "arrows or enter to start"}, core.ColorOverlay)
	case snake.PhasePaused:
		DrawOverlay(m.screen, layout, []string{"PAUSED", "space to resume"}, core.ColorOverlay)
	case snake.PhaseGameOver:
		DrawOverlay(m.screen, layout, gameOverLines(snap, m.status.last), core.ColorOverlay)
	}
}

func gameOverLines(snap snake.Snapshot, ev *snake.GameOverEvent) []string {
	title := "GAME OVER"
	if snap.Won {
		title = "BOARD CLEARED"
	}
	lines := []string{title, fmt.Sprintf("score %d", snap.Score)}
	if ev != nil && ev.NewHighScore {
		lines = append(lines, "new high score!")
	}
	return append(lines, "r to restart")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()

	out := RenderScreen(m.screen)
	if m.screen.Height() < m.session.Runtime.ScreenH {
		helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		out = lipgloss.JoinVertical(lipgloss.Left, out, helpStyle.Render(centerText(m.help.View(m.keys), m.screen.Width())))
	}
	return out
}

// boardRows leaves the bottom row for the help bar when the board still
// fits without it.
func boardRows(screenH, tileCount int) int {
	_, need := RequiredSize(tileCount)
	if screenH > need {
		return screenH - 1
	}
	return screenH
}

// Run starts the Bubble Tea program for a session.
func Run(s Session) error {
	model := NewModel(s)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	s.Game.Close()
	return err
}
