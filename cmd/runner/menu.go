package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/portfolio-runner/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant interactively",
	Long:  `Shows the variant picker; the chosen variant starts in the terminal.`,
	RunE:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	cols, rows := terminalSize()

	result, err := tui.RunMenu(cols, rows)
	if err != nil {
		return fmt.Errorf("menu failed: %w", err)
	}
	if result.Quit {
		return nil
	}
	return playInTerminal(result.GameID)
}
