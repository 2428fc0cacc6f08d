package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nebula-runner/assets"
	"github.com/vovakirdan/nebula-runner/internal/registry"
)

var flagListAssets bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available backends",
	Long: `Shows every frontend the runner can be played on.

With --assets, lists the embedded textures instead. Any of them can be
overridden by a file with the same relative path under assets.dir.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListAssets, "assets", false, "List embedded textures")
}

func runList(cmd *cobra.Command, args []string) error {
	if flagListAssets {
		return listAssets()
	}

	backends := registry.List()

	if len(backends) == 0 {
		fmt.Println("No backends available.")
		return nil
	}

	fmt.Println("Available backends:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, b := range backends {
		if len(b.ID) > maxIDLen {
			maxIDLen = len(b.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, b := range backends {
		fmt.Printf("  %-*s  %s\n", maxIDLen, b.ID, b.Title)
	}

	fmt.Println()
	fmt.Println("Run 'runner play --backend <id>' to play.")
	return nil
}

func listAssets() error {
	paths, err := assets.List()
	if err != nil {
		return fmt.Errorf("listing assets: %w", err)
	}

	fmt.Println("Embedded textures:")
	fmt.Println()
	for _, p := range paths {
		fmt.Printf("  %s\n", p)
	}
	return nil
}
