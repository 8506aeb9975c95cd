package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyfall/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows every registered rule-set of the game.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // Header widths
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
		maxTitleLen = max(maxTitleLen, len(v.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Rules")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----")
	for _, v := range variants {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, v.ID, maxTitleLen, v.Title, v.Description)
	}

	fmt.Println()
	fmt.Println("Run 'skyfall play <id>' to play a variant.")
}
