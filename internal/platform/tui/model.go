package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Toggler switches sound on and off. Toggle reports the new state.
type Toggler interface {
	Toggle() bool
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one game.
type Model struct {
	game   *flappy.Game
	screen *core.Screen
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	sound  Toggler

	lastTick  time.Time
	paused    bool // Suspended by the player
	blurred   bool // Suspended because the terminal lost focus
	muted     bool
	newBest   bool
	prevPhase flappy.Phase
	quitting  bool
}

// NewModel creates a model for the given game. sound may be nil.
func NewModel(game *flappy.Game, cfg core.RuntimeConfig, sound Toggler) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		sound:     sound,
		muted:     cfg.Muted,
		prevPhase: game.Phase(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if cmd := MouseCommand(msg); cmd != flappy.CommandNone && !m.suspended() {
			m.game.Submit(cmd)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		// Last row is the help bar
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case tea.BlurMsg:
		m.blurred = true
		return m, nil

	case tea.FocusMsg:
		m.blurred = false
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		return m, nil

	case key.Matches(msg, m.keys.Mute):
		if m.sound != nil {
			m.muted = !m.sound.Toggle()
		}
		return m, nil
	}

	if m.suspended() {
		return m, nil
	}
	if cmd := m.keys.Command(msg); cmd != flappy.CommandNone {
		m.game.Submit(cmd)
	}
	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
// While suspended the time is dropped, so the game resumes where it stopped.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	if !m.suspended() {
		best := m.game.Best()
		m.game.Tick(elapsed)

		phase := m.game.Phase()
		if phase == flappy.PhaseEnded && m.prevPhase == flappy.PhaseRunning {
			m.newBest = m.game.Best() > best
		}
		if phase == flappy.PhaseRunning {
			m.newBest = false
		}
		m.prevPhase = phase
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) suspended() bool {
	return m.paused || m.blurred
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.game.Snapshot(), Overlay{
		Paused:  m.suspended(),
		NewBest: m.newBest,
		Muted:   m.muted,
	})
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(game *flappy.Game, cfg core.RuntimeConfig, sound Toggler) error {
	model := NewModel(game, cfg, sound)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks flap
		tea.WithReportFocus(),     // Suspend when the terminal loses focus
	)

	_, err := p.Run()
	return err
}
