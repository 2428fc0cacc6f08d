package window

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/nebula-runner/internal/registry"
	"github.com/vovakirdan/nebula-runner/internal/runner"
)

const backendID = "window"

func init() {
	registry.Register(backendID, func() registry.Backend { return &Backend{} })
}

// Backend plays the runner in a desktop window.
type Backend struct{}

// ID returns "window".
func (b *Backend) ID() string { return backendID }

// Title returns the display name.
func (b *Backend) Title() string { return "Desktop window (ebiten)" }

// Run opens the window and blocks until it is closed.
func (b *Backend) Run(opts registry.RunOptions) error {
	cfg := opts.Config
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TargetFPS)

	loader := textureLoader{dir: cfg.Assets.Dir}
	tex, err := runner.LoadTextures(loader, cfg)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	defer tex.Release(loader)
	opts.Logger.Debug("textures loaded", "dir", cfg.Assets.Dir)

	session := runner.NewSession(runner.NewWorld(cfg, tex))
	session.OnFinish = opts.Recorder(backendID)

	if err := ebiten.RunGame(newGame(session, cfg)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
