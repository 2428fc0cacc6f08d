package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nebula-runner/internal/config"
	"github.com/vovakirdan/nebula-runner/internal/core"
	"github.com/vovakirdan/nebula-runner/internal/runner"
)

// statusLines is the number of rows below the playfield.
const statusLines = 1

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for playing one session.
type Model struct {
	session    *runner.Session
	screen     *core.Screen
	canvas     *Canvas
	clock      *tickClock
	keys       KeyMap
	help       help.Model
	config     config.RunnerConfig
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a model playing session on a width x height terminal.
func NewModel(session *runner.Session, cfg config.RunnerConfig, logger *log.Logger, width, height int) Model {
	screen := core.NewScreen(max(width, 1), max(height-statusLines, 1))

	return Model{
		session:    session,
		screen:     screen,
		canvas:     NewCanvas(screen, cfg.Window.Width, cfg.Window.Height),
		clock:      newTickClock(cfg.Window.TargetFPS),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		config:     cfg,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		gameState:  session.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.Window.TargetFPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleResize refits the playfield; the world keeps its own size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(max(msg.Width, 1), max(msg.Height-statusLines, 1))
	m.canvas.SetWorld(m.config.Window.Width, m.config.Window.Height)
	m.help.Width = msg.Width
	m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick steps the session by the wall time since the previous tick.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if m.gameState.Paused {
		// Time spent paused is not simulated.
		m.clock.reset()
	}
	m.clock.observe(t)

	m.gameState = m.session.Step(m.inputFrame, m.clock.FrameDelta()).State

	m.inputFrame.Clear()
	return m, tickCmd(m.config.Window.TargetFPS)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Clear()
	m.session.Render(m.canvas)

	var b strings.Builder
	b.WriteString(m.canvas.Render())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.statusLine()))
	return b.String()
}

func (m Model) statusLine() string {
	status := fmt.Sprintf("%6.2fs  ", m.gameState.Elapsed)
	if m.gameState.Outcome.Finished() {
		status = fmt.Sprintf("%6.2fs %s  ", m.gameState.Elapsed, m.gameState.Outcome)
	}
	return status + m.help.View(m.keys)
}
