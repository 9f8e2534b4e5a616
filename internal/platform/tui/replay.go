package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

const (
	minSpeed = 0.25
	maxSpeed = 8
)

// replayTickMsg advances the replay by one frame. gen discards ticks from a
// superseded schedule after a pause or speed change.
type replayTickMsg struct {
	gen int
}

// ReplayKeyMap defines the replay viewer bindings.
type ReplayKeyMap struct {
	Toggle  key.Binding
	Step    key.Binding
	Back    key.Binding
	Faster  key.Binding
	Slower  key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Step, k.Back, k.Faster, k.Slower, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ReplayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultReplayKeyMap returns the default replay bindings.
func DefaultReplayKeyMap() ReplayKeyMap {
	return ReplayKeyMap{
		Toggle:  key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "play/pause")),
		Step:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "step")),
		Back:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "back")),
		Faster:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		Slower:  key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
		Restart: key.NewBinding(key.WithKeys("r", "home"), key.WithHelp("r", "rewind")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ReplayModel plays a recording back at its original tick period.
type ReplayModel struct {
	rec     *replay.Recording
	frame   int
	playing bool
	speed   float64
	gen     int
	screen  *core.Screen
	rt      core.RuntimeConfig
	keys    ReplayKeyMap
	help    help.Model
	quit    bool
}

// NewReplayModel creates a viewer positioned on the first frame.
func NewReplayModel(rec *replay.Recording, rt core.RuntimeConfig) ReplayModel {
	if rt.ScreenW == 0 || rt.ScreenH == 0 {
		rt = core.DefaultConfig()
	}
	return ReplayModel{
		rec:     rec,
		playing: true,
		speed:   1,
		screen:  core.NewScreen(rt.ScreenW, boardRows(rt.ScreenH, rec.TileCount)),
		rt:      rt,
		keys:    DefaultReplayKeyMap(),
		help:    help.New(),
	}
}

// Init starts playback.
func (m ReplayModel) Init() tea.Cmd {
	return m.next()
}

func (m ReplayModel) interval() time.Duration {
	period := m.rec.Period()
	if period <= 0 {
		period = 100 * time.Millisecond
	}
	return time.Duration(float64(period) / m.speed)
}

func (m ReplayModel) next() tea.Cmd {
	if !m.playing {
		return nil
	}
	gen := m.gen
	return tea.Tick(m.interval(), func(time.Time) tea.Msg {
		return replayTickMsg{gen: gen}
	})
}

// reschedule invalidates the in-flight tick and starts a new one.
func (m ReplayModel) reschedule() (ReplayModel, tea.Cmd) {
	m.gen++
	return m, m.next()
}

// Update handles messages.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case replayTickMsg:
		if msg.gen != m.gen || !m.playing {
			return m, nil
		}
		if m.frame >= len(m.rec.Frames)-1 {
			m.playing = false
			return m, nil
		}
		m.frame++
		return m, m.next()

	case tea.WindowSizeMsg:
		m.rt.ScreenW, m.rt.ScreenH = msg.Width, msg.Height
		m.screen.Resize(msg.Width, boardRows(msg.Height, m.rec.TileCount))
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			if !m.playing && m.frame >= len(m.rec.Frames)-1 {
				m.frame = 0
			}
			m.playing = !m.playing
			return m.reschedule()
		case key.Matches(msg, m.keys.Step):
			m.playing = false
			m.frame = min(m.frame+1, len(m.rec.Frames)-1)
			return m.reschedule()
		case key.Matches(msg, m.keys.Back):
			m.playing = false
			m.frame = max(m.frame-1, 0)
			return m.reschedule()
		case key.Matches(msg, m.keys.Faster):
			m.speed = core.ClampF(m.speed*2, minSpeed, maxSpeed)
			return m.reschedule()
		case key.Matches(msg, m.keys.Slower):
			m.speed = core.ClampF(m.speed/2, minSpeed, maxSpeed)
			return m.reschedule()
		case key.Matches(msg, m.keys.Restart):
			m.frame = 0
			m.playing = true
			return m.reschedule()
		}
	}
	return m, nil
}

// Frame returns the index of the frame on screen.
func (m ReplayModel) Frame() int {
	return m.frame
}

// Playing reports whether playback is running.
func (m ReplayModel) Playing() bool {
	return m.playing
}

// View renders the current frame.
func (m ReplayModel) View() string {
	if m.quit {
		return ""
	}

	snap := m.rec.Snapshot(m.frame)
	last := m.frame == len(m.rec.Frames)-1
	if last {
		snap.Phase = snake.PhaseGameOver
		snap.Won = m.rec.Won
	}

	m.screen.Clear()
	layout := LayoutBoard(m.screen.Width(), m.screen.Height(), m.rec.TileCount)
	if !layout.Fits {
		DrawTooSmall(m.screen, m.rec.TileCount)
		return RenderScreen(m.screen)
	}
	DrawBoard(m.screen, snap, layout)

	state := "▶"
	if !m.playing {
		state = "⏸"
	}
	DrawHUD(m.screen, snap, layout, fmt.Sprintf("%s %d/%d x%g", state, m.frame+1, len(m.rec.Frames), m.speed))
	if last && !m.playing {
		DrawOverlay(m.screen, layout, gameOverLines(snap, nil)[:2], core.ColorOverlay)
	}

	out := RenderScreen(m.screen)
	if m.screen.Height() < m.rt.ScreenH {
		helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		out = lipgloss.JoinVertical(lipgloss.Left, out, helpStyle.Render(centerText(m.help.View(m.keys), m.screen.Width())))
	}
	return out
}

// RunReplay plays a recording in the terminal.
func RunReplay(rec *replay.Recording, rt core.RuntimeConfig) error {
	p := tea.NewProgram(NewReplayModel(rec, rt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
