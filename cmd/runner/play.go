package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nebula-runner/internal/config"
	"github.com/vovakirdan/nebula-runner/internal/registry"
	"github.com/vovakirdan/nebula-runner/internal/storage"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start playing in a desktop window or in the terminal.

Controls:
  Space/Up/W - Jump (only while on the ground)
  P          - Pause
  R          - Restart (after the round is decided)
  Q/Esc      - Quit

The terminal backend owns the screen, so its logs are discarded unless
--log-file is set.

Examples:
  runner play
  runner play --backend tui
  runner play --config ./configs/runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "window", "Frontend: window or tui")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagBackend) {
		return fmt.Errorf("unknown backend %q (run 'runner list' to see available backends)", flagBackend)
	}

	var fallback io.Writer = os.Stderr
	if flagBackend == "tui" {
		fallback = io.Discard
	}
	logger, closeLog, err := newLogger(fallback)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	backend, err := registry.Create(flagBackend)
	if err != nil {
		return err
	}

	opts := registry.RunOptions{Config: cfg, Logger: logger}

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		// Continue without storage - the game still works
	} else {
		defer store.Close()
		opts.Store = store
	}

	logger.Info("starting", "backend", backend.ID(), "fps", cfg.Window.TargetFPS)
	return backend.Run(opts)
}
