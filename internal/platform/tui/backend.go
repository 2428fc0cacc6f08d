package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/nebula-runner/assets"
	"github.com/vovakirdan/nebula-runner/internal/registry"
	"github.com/vovakirdan/nebula-runner/internal/runner"
)

const backendID = "tui"

// Fallback terminal size when stdout is not a terminal.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

func init() {
	registry.Register(backendID, func() registry.Backend { return &Backend{} })
}

// Backend plays the runner in the terminal.
type Backend struct{}

// ID returns "tui".
func (b *Backend) ID() string { return backendID }

// Title returns the display name.
func (b *Backend) Title() string { return "Terminal (glyph renderer)" }

// Run loads the textures and runs the Bubble Tea program until quit.
func (b *Backend) Run(opts registry.RunOptions) error {
	loader := assets.NewLoader(opts.Config.Assets.Dir)
	tex, err := runner.LoadTextures(loader, opts.Config)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	defer tex.Release(loader)
	opts.Logger.Debug("textures loaded", "dir", opts.Config.Assets.Dir)

	width, height := terminalSize()
	session := runner.NewSession(runner.NewWorld(opts.Config, tex))
	session.OnFinish = opts.Recorder(backendID)
	model := NewModel(session, opts.Config, opts.Logger, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// terminalSize returns the size of stdout, or a default when it is not a terminal.
func terminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return defaultWidth, defaultHeight
	}
	return w, h
}
