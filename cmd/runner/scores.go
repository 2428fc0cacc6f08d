package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/nebula-runner/internal/platform/tui"
	"github.com/vovakirdan/nebula-runner/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history",
	Long: `Display the fastest wins and the most recent runs.

Examples:
  runner scores
  runner scores --limit 20
  runner scores --interactive
  runner scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole run history")
	scoresCmd.MarkFlagsMutuallyExclusive("interactive", "clear")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunResults(store, flagLimit, width, height)
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	top, err := store.TopRuns(flagLimit)
	if err != nil {
		return err
	}
	recent, err := store.RecentRuns(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Fastest Wins")
	fmt.Println()
	if len(top) == 0 {
		fmt.Println("  No wins recorded yet.")
	} else {
		printRuns(top)
	}

	fmt.Println()
	fmt.Println("Recent Runs")
	fmt.Println()
	if len(recent) == 0 {
		fmt.Println("  No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to record the first run!")
		return nil
	}
	printRuns(recent)

	fmt.Println()
	fmt.Printf("Runs: %d  Wins: %d  Losses: %d  Avg: %.2fs\n",
		stats.Runs, stats.Wins, stats.Losses, stats.AvgElapsed)
	if stats.Wins > 0 {
		fmt.Printf("Best win: %.2fs\n", stats.BestWin)
	}
	return nil
}

func printRuns(runs []storage.RunEntry) {
	fmt.Printf("  %-4s  %-7s  %-9s  %-7s  %-7s  %s\n", "Rank", "Outcome", "Time", "Frames", "Backend", "Date")
	fmt.Printf("  %-4s  %-7s  %-9s  %-7s  %-7s  %s\n", "----", "-------", "----", "------", "-------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-7s  %-9s  %-7d  %-7s  %s\n",
			i+1, r.Outcome, fmt.Sprintf("%.2fs", r.ElapsedSecs), r.Frames, r.Backend,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
