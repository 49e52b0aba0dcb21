package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/portfolio-runner/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows every registered variant, including ones defined in the config file.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-6s  %-7s  %s\n", maxIDLen, "ID", "Stages", "Source", "Title")
	fmt.Printf("  %-*s  %-6s  %-7s  %s\n", maxIDLen, "--", "------", "------", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %-6d  %-7s  %s\n", maxIDLen, g.ID, g.Stages, g.Origin, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'runner play <id>' or 'runner window <id>' to play.")
}
