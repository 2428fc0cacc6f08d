// runner is a side-scrolling runner: jump over the nebulae until the last
// one has passed.
//
// Usage:
//
//	runner play               - Play in a desktop window
//	runner play --backend tui - Play in the terminal
//	runner list               - List available backends
//	runner scores             - Show run history
//	runner simulate           - Replay a round headlessly with a fixed clock
//
// Global flags:
//
//	--config <path>     - Runner config YAML (default: search order)
//	--db <path>         - Set database path (default: ~/.runner/runs.db)
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/nebula-runner/internal/platform/tui"
	_ "github.com/vovakirdan/nebula-runner/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner - jump over the nebulae",
	Long: `Runner is a side-scrolling runner. Scarfy runs on the spot while
three parallax layers and a row of animated nebulae scroll past. Touch a
nebula and you lose; let the last one pass and you win.

Available commands:
  play      - Play a round (window or terminal)
  list      - Show available backends
  scores    - View run history
  simulate  - Replay a round headlessly

Examples:
  runner play
  runner play --backend tui --log-file runner.log
  runner scores --interactive
  runner simulate --seconds 15 --dt 0.015625 --jump-every 1.6`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
